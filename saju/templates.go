package saju

// Narrative content. Every table here is data only; selection happens through
// banded.pick and pick in seed.go.

// band is one score band of a banded table. Bands are ordered by descending
// min; the last band is the floor and also catches out-of-range scores.
type band[T any] struct {
	min      int
	variants []T
}

type banded[T any] []band[T]

func (b banded[T]) at(score int) []T {
	for _, v := range b {
		if score >= v.min {
			return v.variants
		}
	}
	return b[len(b)-1].variants
}

func (b banded[T]) pick(score int, seed Seed) T {
	return pick(seed, b.at(score))
}

// levelText holds the high (level 4-5), middle (3) and low (1-2) variant
type levelText [3]string

func (t levelText) at(level int) string {
	switch {
	case level >= 4:
		return t[0]
	case level == 3:
		return t[1]
	default:
		return t[2]
	}
}

// ============================================================================
// Lucky attributes
// ============================================================================

type luckyLists struct {
	colors     []string
	numbers    []int
	foods      []string
	activities []string
}

var luckyTable = [5]luckyLists{
	Wood:  {[]string{"초록색", "연두색", "청록색"}, []int{3, 8}, []string{"채소 샐러드", "녹즙", "브로콜리"}, []string{"산책", "원예", "독서"}},
	Fire:  {[]string{"빨간색", "주황색", "보라색"}, []int{2, 7}, []string{"매운 음식", "토마토", "고추"}, []string{"운동", "노래", "친구 모임"}},
	Earth: {[]string{"노란색", "갈색", "베이지색"}, []int{5, 10}, []string{"현미밥", "감자", "고구마"}, []string{"요리", "정리정돈", "등산"}},
	Metal: {[]string{"흰색", "은색", "금색"}, []int{4, 9}, []string{"흰 쌀밥", "두부", "배"}, []string{"악기 연주", "명상", "계획 세우기"}},
	Water: {[]string{"검정색", "파란색", "남색"}, []int{1, 6}, []string{"미역국", "해산물", "콩나물"}, []string{"수영", "음악 감상", "일기 쓰기"}},
}

// ============================================================================
// Daily
// ============================================================================

var dailyScores = scoreTable{SameElement: 70, Generates: 75, GeneratedBy: 95, Controls: 85, ControlledBy: 45}

var dailySummaries = [5]string{
	SameElement:  "평온한 하루",
	Generates:    "순탄한 하루",
	GeneratedBy:  "대길일",
	Controls:     "재물운 상승",
	ControlledBy: "조심할 하루",
}

var dailyOverallAdvice = [5][]string{
	GeneratedBy: {
		"오늘은 귀인의 도움이 있는 날입니다. 중요한 결정을 내리기 좋습니다.",
		"에너지가 충만한 날입니다. 새로운 일을 시작하기에 좋습니다.",
		"운이 따르는 하루입니다. 적극적으로 행동하세요.",
	},
	Generates: {
		"마음이 편안한 하루입니다. 여유를 즐기세요.",
		"창의력이 높아지는 날입니다. 아이디어를 정리해보세요.",
		"순탄한 흐름이 예상됩니다. 계획대로 진행하세요.",
	},
	Controls: {
		"재물운이 상승하는 날입니다. 거래나 계약에 유리합니다.",
		"금전적 기회가 올 수 있습니다. 눈을 크게 뜨세요.",
		"투자에 관심을 가져볼 만한 날입니다.",
	},
	SameElement: {
		"평온하게 자신을 돌아보는 하루가 좋겠습니다.",
		"경쟁보다는 협력이 유리한 날입니다.",
		"무리하지 말고 꾸준히 나아가세요.",
	},
	ControlledBy: {
		"조심스럽게 행동하는 것이 좋겠습니다.",
		"큰 결정은 내일로 미루세요.",
		"감정 조절에 신경 쓰세요. 충돌을 피하세요.",
	},
}

// dailyOffsets shift the base score per category before jitter
var dailyOffsets = map[Category]int{
	CategoryLove:   0,
	CategoryWealth: 5,
	CategoryCareer: -5,
	CategoryHealth: 0,
}

// dailyBias is the per-element adjustment of each daily category
var dailyBias = map[Category][5]int{
	CategoryLove:   {Wood: 0, Fire: 5, Earth: 0, Metal: -3, Water: 3},
	CategoryWealth: {Wood: -5, Fire: 0, Earth: 5, Metal: 5, Water: 0},
	CategoryCareer: {Wood: 3, Fire: 3, Earth: 0, Metal: 5, Water: -3},
	CategoryHealth: {Wood: 2, Fire: -3, Earth: 3, Metal: 0, Water: 2},
}

var categoryTitles = map[Category]string{
	CategoryOverall:  "종합운",
	CategoryLove:     "연애운",
	CategoryWealth:   "금전운",
	CategoryCareer:   "직장/학업운",
	CategoryHealth:   "건강운",
	CategoryRelation: "관계운",
}

var dailyNarratives = map[Category]banded[string]{
	CategoryLove: {
		{85, []string{"로맨틱한 만남이 기대되는 하루입니다.", "연인과의 관계가 더욱 깊어지는 날입니다.", "새로운 인연이 다가올 수 있습니다."}},
		{60, []string{"평온한 관계가 유지되는 하루입니다.", "소소한 데이트가 즐거울 날입니다.", "서로를 이해하는 대화를 나눠보세요."}},
		{0, []string{"오해가 생기기 쉬운 날입니다. 말조심하세요.", "감정적인 대화는 피하는 것이 좋겠습니다.", "혼자만의 시간이 필요할 수 있습니다."}},
	},
	CategoryWealth: {
		{85, []string{"뜻밖의 수입이 있을 수 있습니다.", "투자에 좋은 기회가 보입니다.", "금전적 협상에서 유리한 위치에 있습니다."}},
		{60, []string{"계획된 지출은 무방합니다.", "안정적인 재정 상태가 유지됩니다.", "작은 행운이 따를 수 있습니다."}},
		{0, []string{"충동구매를 자제하세요.", "예상치 못한 지출에 주의하세요.", "금전 거래는 신중하게 하세요."}},
	},
	CategoryCareer: {
		{85, []string{"업무 능력이 인정받는 날입니다.", "중요한 프로젝트에서 성과를 낼 수 있습니다.", "상사나 동료와의 관계가 좋아집니다."}},
		{60, []string{"묵묵히 할 일을 하면 됩니다.", "팀워크가 중요한 하루입니다.", "학습에 집중하기 좋은 날입니다."}},
		{0, []string{"업무 실수에 주의하세요.", "동료와의 갈등을 피하세요.", "무리한 야근은 피하는 것이 좋습니다."}},
	},
}

var dailyAdvice = map[Category]banded[string]{
	CategoryLove: {
		{85, []string{"적극적으로 마음을 표현하세요."}},
		{60, []string{"상대방의 이야기에 귀 기울이세요."}},
		{0, []string{"차분하게 감정을 정리하는 시간을 가지세요."}},
	},
	CategoryWealth: {
		{85, []string{"기회를 놓치지 마세요."}},
		{60, []string{"현재 상태를 유지하세요."}},
		{0, []string{"지출을 줄이고 저축에 집중하세요."}},
	},
	CategoryCareer: {
		{85, []string{"자신감을 가지고 임하세요."}},
		{60, []string{"꾸준함이 답입니다."}},
		{0, []string{"한 발 물러서서 상황을 살피세요."}},
	},
}

// Health text is keyed by the deficient element
var (
	healthWarnings = [5]string{
		Wood:  "간, 눈의 피로에 주의하세요.",
		Fire:  "심장, 혈압 관리에 신경 쓰세요.",
		Earth: "소화기 건강에 주의하세요.",
		Metal: "호흡기, 피부 관리에 신경 쓰세요.",
		Water: "신장, 허리 건강에 주의하세요.",
	}
	healthAdvice = [5]string{
		Wood:  "녹색 채소를 섭취하고 눈 휴식을 취하세요.",
		Fire:  "가벼운 운동과 명상을 추천합니다.",
		Earth: "규칙적인 식사와 소화가 잘 되는 음식을 드세요.",
		Metal: "심호흡 운동을 하고 피부 보습에 신경 쓰세요.",
		Water: "충분한 수분 섭취와 허리 스트레칭을 하세요.",
	}
)

var dailyQuotes = banded[Quote]{
	{80, []Quote{
		{"천리길도 한 걸음부터", "큰 일도 작은 시작에서 비롯됩니다."},
		{"우공이산(愚公移山)", "꾸준한 노력은 결국 산도 옮깁니다."},
		{"호시우행(虎視牛行)", "호랑이처럼 살피고 소처럼 꾸준히 나아가세요."},
		{"일취월장(日就月將)", "날로 달로 발전하고 있습니다."},
	}},
	{55, []Quote{
		{"화이부동(和而不同)", "조화를 이루되 자기 색깔을 잃지 마세요."},
		{"중용지도(中庸之道)", "극단을 피하고 균형을 유지하세요."},
		{"안분지족(安分知足)", "분수를 알고 만족할 줄 알아야 합니다."},
		{"삼사일언(三思一言)", "세 번 생각하고 한 번 말하세요."},
	}},
	{0, []Quote{
		{"지피지기(知彼知己)", "상대와 자신을 알면 위태롭지 않습니다."},
		{"인내무적(忍耐無敵)", "참고 견디면 적이 없습니다."},
		{"유비무환(有備無患)", "준비가 있으면 걱정이 없습니다."},
		{"전화위복(轉禍爲福)", "화가 바뀌어 복이 됩니다."},
	}},
}

// ============================================================================
// Family
// ============================================================================

type parentChildInfo struct {
	key            string
	name           string
	score          int
	description    string // %[1]s parent element, %[2]s child element
	advice         string
	relationAdvice string
}

// parentChildTable is indexed by the class of the parent element against the
// child element
var parentChildTable = [5]parentChildInfo{
	Generates: {
		key: "nurturing", name: "상생(相生)의 관계", score: 90,
		description:    "%[1]s의 기운이 %[2]s을 자연스럽게 북돋아주는 형국입니다. 부모님의 기운이 자녀에게 긍정적인 영향을 주어, 자녀가 성장하는 데 큰 힘이 되어주십니다.",
		advice:         "자녀의 결정을 믿고 지켜봐 주시면 좋은 결과가 있을 것입니다.",
		relationAdvice: "부모님의 지지가 자녀에게 특히 큰 힘이 되는 관계이니, 응원의 말씀을 아끼지 마시길 바랍니다.",
	},
	GeneratedBy: {
		key: "supporting", name: "역생(逆生)의 관계", score: 85,
		description:    "자녀의 %[2]s 기운이 부모님의 %[1]s 기운을 도와주는 형국입니다. 자녀가 부모님께 기쁨과 활력을 드리는 관계이며, 서로에게 힘이 되어줍니다.",
		advice:         "자녀와 함께하는 시간이 부모님께도 활력이 될 것입니다.",
		relationAdvice: "자녀가 부모님께 기쁨을 드리고 싶어하는 마음이 있으니, 자녀의 작은 노력도 알아봐 주시면 좋겠습니다.",
	},
	Controls: {
		key: "guiding", name: "상극(相克)의 관계", score: 65,
		description:    "%[1]s의 기운이 %[2]s을 제어하는 형국입니다. 부모님이 자녀를 올바른 길로 이끌 수 있는 관계이나, 때로는 갈등이 생길 수 있습니다.",
		advice:         "자녀의 의견을 충분히 들어주신 후 조언해 주시면 좋겠습니다.",
		relationAdvice: "때로는 한 발 물러서서 지켜봐 주시는 것도 좋은 방법입니다. 자녀 스스로 깨달을 시간을 주시기 바랍니다.",
	},
	ControlledBy: {
		key: "challenging", name: "역극(逆克)의 관계", score: 60,
		description:    "자녀의 %[2]s 기운이 부모님의 %[1]s 기운과 충돌할 수 있는 형국입니다. 서로 다른 성향으로 인해 이해가 필요한 관계입니다.",
		advice:         "서로의 다름을 인정하고, 대화를 통해 마음을 나누시는 것이 중요합니다.",
		relationAdvice: "서로의 마음을 이해하려는 노력이 필요한 날입니다. 대화를 통해 마음을 나누시면 좋겠습니다.",
	},
	SameElement: {
		key: "harmonious", name: "비화(比和)의 관계", score: 80,
		description:    "같은 %[1]s의 기운을 공유하는 형국입니다. 서로를 잘 이해하며, 뜻이 통하는 관계입니다.",
		advice:         "같은 관심사를 나누며 함께하는 시간을 늘려보시기 바랍니다.",
		relationAdvice: "마음이 잘 통하는 사이이니, 함께하는 시간을 통해 더 깊은 유대를 쌓아가시기 바랍니다.",
	},
}

// childDailyScores rate the child's core element against the day
var childDailyScores = scoreTable{SameElement: 75, Generates: 80, GeneratedBy: 90, Controls: 70, ControlledBy: 55}

// Season indexes the seasonal tables
type Season int

const (
	Spring Season = iota
	Summer
	Autumn
	Winter
)

// SeasonOf returns the season of a calendar month
func SeasonOf(m int) Season {
	switch {
	case m >= 3 && m <= 5:
		return Spring
	case m >= 6 && m <= 8:
		return Summer
	case m >= 9 && m <= 11:
		return Autumn
	default:
		return Winter
	}
}

var seasonNames = [4]string{"봄", "여름", "가을", "겨울"}
var seasonMoods = [4]string{"만물이 소생하는", "활기찬", "결실의", "차분한"}

func (s Season) String() string { return seasonNames[s] }

// seasonalAdjustments is indexed by season then by the child's core element
var seasonalAdjustments = [4][5]int{
	Spring: {Wood: 5, Fire: 3, Earth: -2, Metal: -3, Water: 2},
	Summer: {Wood: -2, Fire: 5, Earth: 3, Metal: -3, Water: -2},
	Autumn: {Wood: -3, Fire: -2, Earth: 2, Metal: 5, Water: 3},
	Winter: {Wood: 2, Fire: -3, Earth: -2, Metal: 3, Water: 5},
}

type storyTemplate struct {
	intros      []string
	bodies      []string
	effects     []string
	conclusions []string
}

var storyTemplates = banded[storyTemplate]{
	{85, []storyTemplate{{
		intros: []string{
			"오늘은 하늘의 별들이 특별히 {child}님을 위해 빛나는 날입니다.",
			"{parent}님의 따뜻한 기운이 {child}님의 운을 한층 더 높여주고 있습니다.",
			"천지의 기운이 조화를 이루며 {child}님에게 행운을 가져다주는 날입니다.",
			"오늘 {child}님의 사주팔자에는 대길(大吉)의 징조가 나타나고 있습니다.",
			"천간지지가 완벽한 조화를 이루어, 모든 일이 순조롭게 진행될 것입니다.",
		},
		bodies: []string{
			"{childIlgan}의 기운과 {parentIlgan}의 기운이 만나 시너지를 발휘합니다. 두 기운이 서로를 북돋아주며, 평소보다 더 큰 성과를 이루실 수 있을 것입니다.",
			"오행의 흐름이 원활하여, 하고자 하는 일마다 물 흐르듯 자연스럽게 이루어질 것입니다. 특히 대인관계에서 귀인의 도움을 받을 수 있습니다.",
			"오늘은 {child}님의 타고난 재능이 빛을 발하는 날입니다. 자신감을 가지고 적극적으로 행동하시면 예상치 못한 기쁜 일이 생길 것입니다.",
			"사주의 삼합(三合)이 이루어져, 귀인의 도움과 행운이 동시에 찾아옵니다. 중요한 결정을 내리기에 최적의 시기입니다.",
			"천을귀인(天乙貴人)의 기운이 함께하여, 어려운 일도 쉽게 해결될 것입니다.",
		},
		effects: []string{
			"{parent}님의 {parentIlgan} 기운이 {child}님에게 든든한 보호막이 되어줍니다. 오늘은 부모님과 함께하는 시간이 특별한 행운을 가져올 것입니다.",
			"부모님의 따뜻한 관심이 자녀의 운을 몇 배로 증폭시킵니다. 감사한 마음을 표현하면 더욱 큰 복이 찾아올 것입니다.",
			"가족의 화목한 기운이 모든 장애물을 녹여줍니다. 집안의 평화가 곧 행운의 근원입니다.",
			"{parent}님의 축복이 하늘에 닿아, {child}님에게 특별한 은총이 내려집니다.",
			"부모자식 간의 깊은 정이 천지신명을 감동시켜, 온 우주가 {child}님을 돕고 있습니다.",
		},
		conclusions: []string{
			"오늘 하루를 감사한 마음으로 시작하시면, 기쁜 소식이 연이어 들려올 것입니다.",
			"긍정적인 마음가짐이 행운을 더욱 크게 만들 것입니다. 자신감을 가지세요!",
			"오늘의 좋은 기운을 주변 사람들과 나누면, 복이 배가 될 것입니다.",
			"하늘이 {child}님의 편입니다. 망설이지 말고 과감하게 도전하세요.",
			"오늘은 꿈을 현실로 만드는 날입니다. 당신이 원하는 것을 이룰 수 있습니다.",
		},
	}}},
	{70, []storyTemplate{{
		intros: []string{
			"오늘은 전반적으로 안정되고 평화로운 하루가 될 것입니다.",
			"{child}님에게 조용하지만 확실한 행운이 찾아오는 날입니다.",
			"차분하게 하루를 보내면서도 작은 기쁨들을 발견하실 수 있을 것입니다.",
			"오늘의 운세는 고요한 호수와 같습니다. 평온 속에서 내면의 힘을 발견하세요.",
			"특별히 큰 변화는 없지만, 일상의 소소한 행복을 누리기 좋은 날입니다.",
		},
		bodies: []string{
			"{childIlgan}의 안정적인 기운이 하루를 평온하게 이끌어갑니다. 급하게 서두르기보다는 자신의 페이스대로 움직이는 것이 좋습니다.",
			"오늘은 새로운 시작보다는 지금 하고 있는 일을 착실히 마무리하는 것이 중요합니다. 꾸준함이 성공의 열쇠입니다.",
			"대인관계에서 작은 오해가 있을 수 있으나, 성실한 태도로 풀어나갈 수 있습니다.",
			"오행의 균형이 안정적이어서, 큰 위험이나 문제는 없을 것입니다.",
			"평범해 보이는 오늘이지만, 그 속에 작지만 소중한 기회들이 숨어 있습니다.",
		},
		effects: []string{
			"{parent}님의 조언에 귀 기울이면 올바른 방향을 찾을 수 있습니다.",
			"부모님과의 대화 속에서 문제 해결의 실마리를 찾을 수 있습니다.",
			"가족의 지지가 {child}님에게 힘이 되는 날입니다.",
			"부모님의 경험이 담긴 조언이 특별히 도움이 될 것입니다.",
			"집안의 평화로운 분위기가 {child}님의 마음을 안정시켜 줍니다.",
		},
		conclusions: []string{
			"평범한 하루에도 작은 행복은 숨어 있습니다. 그것을 발견하는 것이 오늘의 과제입니다.",
			"조급해하지 마세요. 인생은 마라톤이지 단거리 달리기가 아닙니다.",
			"오늘 하루를 성실히 보내는 것 자체가 큰 성공입니다.",
			"작은 것에 감사하면, 큰 복이 찾아옵니다.",
			"평온한 하루를 즐기세요. 그것도 축복입니다.",
		},
	}}},
	{55, []storyTemplate{{
		intros: []string{
			"오늘은 주의가 필요한 하루입니다. 하지만 너무 걱정하지 마세요.",
			"{child}님에게 작은 시련이 있을 수 있지만, 이는 성장의 기회입니다.",
			"오늘은 조금 더 신중하게 행동해야 하는 날입니다.",
			"도전과 기회가 공존하는 날입니다. 지혜롭게 대처하세요.",
			"순탄치만은 않은 하루이지만, 그만큼 배울 것도 많은 날입니다.",
		},
		bodies: []string{
			"{childIlgan}의 기운이 다소 약해진 상태입니다. 무리한 일정은 피하고 건강 관리에 신경 쓰세요.",
			"감정 기복이 있을 수 있습니다. 중요한 결정은 좀 더 신중하게 내리는 것이 좋습니다.",
			"대인관계에서 오해가 생길 수 있으니, 말과 행동에 조심하세요.",
			"계획했던 일이 예상대로 풀리지 않을 수 있지만, 당황하지 말고 차분히 대처하세요.",
			"작은 장애물들이 나타날 수 있지만, 이를 극복하면 더 강해질 것입니다.",
		},
		effects: []string{
			"{parent}님의 도움과 조언이 절실히 필요한 시기입니다. 부모님께 조언을 구하세요.",
			"부모님과의 대화가 문제 해결의 열쇠가 될 수 있습니다.",
			"혼자 고민하지 말고 가족의 지혜를 빌리세요.",
			"{parent}님의 경험이 {child}님에게 큰 도움이 될 것입니다.",
			"가족의 응원이 {child}님에게 힘을 줄 것입니다.",
		},
		conclusions: []string{
			"어려움은 일시적입니다. 인내하면 반드시 좋은 날이 올 것입니다.",
			"시련은 성장의 기회입니다. 포기하지 마세요.",
			"오늘의 경험이 내일의 지혜가 될 것입니다.",
			"힘든 시기일수록 긍정적인 마인드를 유지하세요.",
			"모든 구름 뒤에는 태양이 있습니다. 희망을 잃지 마세요.",
		},
	}}},
	{50, []storyTemplate{{
		intros: []string{
			"오늘은 특별히 조심해야 하는 날입니다.",
			"{child}님, 오늘은 평소보다 더 신중하게 행동하세요.",
			"시련의 시기이지만, 이를 지혜롭게 넘기면 큰 성장이 있을 것입니다.",
			"오늘은 휴식과 재충전이 필요한 날입니다.",
			"급한 일은 미루고, 몸과 마음을 돌보는 시간을 가지세요.",
		},
		bodies: []string{
			"{childIlgan}의 기운이 많이 약해진 상태입니다. 무리하지 말고 충분한 휴식을 취하세요.",
			"오늘은 새로운 일을 시작하기보다는 현상 유지에 집중하세요.",
			"감정적으로 예민해질 수 있으니, 중요한 대화나 결정은 미루는 것이 좋습니다.",
			"건강 관리에 특별히 신경 쓰세요. 작은 징후를 무시하지 마세요.",
			"대인관계에서 갈등이 생길 수 있으니, 말과 행동을 조심하세요.",
		},
		effects: []string{
			"{parent}님의 보호와 도움이 절대적으로 필요한 시기입니다.",
			"부모님께 의지하는 것이 부끄러운 일이 아닙니다. 도움을 요청하세요.",
			"가족의 사랑과 지지가 {child}님을 지켜줄 것입니다.",
			"{parent}님과 함께 있으면 마음이 편안해질 것입니다.",
			"부모님의 기도와 축복이 {child}님을 보호합니다.",
		},
		conclusions: []string{
			"폭풍도 언젠가는 잦아듭니다. 조금만 더 힘내세요.",
			"오늘의 어려움은 내일의 축복을 위한 준비입니다.",
			"쉬는 것도 용기입니다. 잠시 멈추고 재충전하세요.",
			"어두운 밤이 길수록 새벽은 더욱 찬란합니다.",
			"이 또한 지나갈 것입니다. 희망을 잃지 마세요.",
		},
	}}},
}

var familyMessages = banded[string]{
	{85, []string{
		"오늘은 부모님의 따스한 기운이 자녀에게 고스란히 전해지는 형국입니다. 하고자 하는 일에 순풍이 불 것이니, 자신감을 갖고 나아가시길 바랍니다.",
		"부모님과 자녀 사이에 좋은 기운이 흐르는 날입니다. 가족 간의 대화가 자녀에게 큰 힘이 되어줄 것입니다.",
		"오늘 자녀에게 흐르는 기운이 매우 맑고 밝습니다. 새로운 시도를 하기에 좋은 날이니, 격려의 말씀을 건네주시면 좋겠습니다.",
	}},
	{70, []string{
		"오늘은 평온하고 안정적인 기운이 흐르는 형국입니다. 무리하지 않는 선에서 꾸준히 나아가면 좋은 결실을 맺을 것입니다.",
		"부모님의 격려가 자녀에게 특히 힘이 되는 날입니다. 작은 칭찬 한마디가 큰 용기가 되어줄 것입니다.",
		"자녀에게 잔잔한 행운이 찾아오는 날입니다. 평소 하던 일을 성실히 해나가면 좋은 결과가 있을 것입니다.",
	}},
	{60, []string{
		"오늘은 큰 변화보다는 안정을 추구하는 것이 좋겠습니다. 무리한 결정은 피하고, 차분히 하루를 보내시길 권합니다.",
		"평범한 듯하지만 내실을 다지기 좋은 날입니다. 급하게 서두르기보다 한 걸음씩 나아가는 것이 현명하겠습니다.",
		"마음을 편히 갖고 순리대로 흘러가는 것이 좋겠습니다. 가족과 함께하는 시간이 마음의 안정을 줄 것입니다.",
	}},
	{0, []string{
		"오늘은 다소 조심해야 할 기운이 흐르는 형국입니다. 중요한 결정은 하루 미루시고, 충분히 생각한 후 행동하시길 권합니다.",
		"자녀가 힘들어할 수 있는 날이니, 따뜻한 말씀으로 감싸주시면 좋겠습니다. 부모님의 위로가 큰 힘이 될 것입니다.",
		"잠시 쉬어가는 것도 현명한 선택입니다. 무리하지 말고 내일을 기약하시는 것이 좋겠습니다.",
	}},
}

var familyLevels = banded[string]{
	{85, []string{"excellent"}},
	{70, []string{"good"}},
	{60, []string{"neutral"}},
	{0, []string{"caution"}},
}

var shareLevels = banded[string]{
	{85, []string{"대길"}},
	{70, []string{"길"}},
	{55, []string{"평"}},
	{0, []string{"주의"}},
}

// HexagonAxis names one axis of the family six-axis breakdown
type HexagonAxis string

const (
	AxisAcademic HexagonAxis = "academic"
	AxisHealth   HexagonAxis = "health"
	AxisWealth   HexagonAxis = "wealth"
	AxisSocial   HexagonAxis = "social"
	AxisLove     HexagonAxis = "love"
	AxisCareer   HexagonAxis = "career"
)

// HexagonAxes lists the axes in display order
var HexagonAxes = [6]HexagonAxis{AxisAcademic, AxisHealth, AxisWealth, AxisSocial, AxisLove, AxisCareer}

// hexagonBias is indexed by the child's core element, then by axis
var hexagonBias = [5]map[HexagonAxis]int{
	Wood:  {AxisAcademic: 15, AxisHealth: 5, AxisWealth: -5, AxisSocial: 0, AxisLove: 0, AxisCareer: 5},
	Fire:  {AxisAcademic: 0, AxisHealth: -5, AxisWealth: 0, AxisSocial: 15, AxisLove: 10, AxisCareer: 0},
	Earth: {AxisAcademic: 0, AxisHealth: 10, AxisWealth: 10, AxisSocial: 5, AxisLove: -5, AxisCareer: 0},
	Metal: {AxisAcademic: 5, AxisHealth: 0, AxisWealth: 5, AxisSocial: -5, AxisLove: -5, AxisCareer: 15},
	Water: {AxisAcademic: 10, AxisHealth: 0, AxisWealth: 0, AxisSocial: 0, AxisLove: 10, AxisCareer: -5},
}

// hexagonSpread is the jitter spread of each axis
var hexagonSpread = map[HexagonAxis]int{
	AxisAcademic: 10,
	AxisHealth:   7,
	AxisWealth:   10,
	AxisSocial:   10,
	AxisLove:     10,
	AxisCareer:   12,
}

// ============================================================================
// Annual
// ============================================================================

type annualType struct {
	name  string
	level int
}

var annualTypes = [5]annualType{
	SameElement:  {"비견운(比肩運)", 3},
	Generates:    {"식상운(食傷運)", 4},
	GeneratedBy:  {"인성운(印星運)", 5},
	Controls:     {"재성운(財星運)", 4},
	ControlledBy: {"관성운(官星運)", 2},
}

// annualLevelScores is the base score of each fortune level
var annualLevelScores = [6]int{1: 40, 2: 55, 3: 70, 4: 80, 5: 92}

var annualLevelSummaries = [6]string{
	1: "흉(凶)한 해입니다. 큰 결정은 미루고 몸조심하세요.",
	2: "소흉(小凶)의 해입니다. 조심하며 내실을 다지세요.",
	3: "평운(平運)의 해입니다. 안정을 추구하며 기반을 다지세요.",
	4: "길(吉)한 해입니다. 노력한 만큼 좋은 결과가 따릅니다.",
	5: "대길(大吉)의 해입니다. 하늘이 돕고 귀인이 나타나는 운입니다.",
}

// annualBias is the per-element adjustment of each annual category
var annualBias = map[Category][5]int{
	CategoryOverall: {},
	CategoryWealth:  {Wood: 0, Fire: -3, Earth: 5, Metal: 3, Water: 0},
	CategoryHealth:  {Wood: 3, Fire: -5, Earth: 2, Metal: 0, Water: 0},
	CategoryLove:    {Wood: 0, Fire: 5, Earth: -2, Metal: -3, Water: 3},
	CategoryCareer:  {Wood: 2, Fire: 2, Earth: 0, Metal: 5, Water: -2},
}

var annualTitles = map[Category]string{
	CategoryOverall: "총운",
	CategoryWealth:  "재물운 & 사업운",
	CategoryHealth:  "건강운 & 가정운",
	CategoryLove:    "연애운 & 결혼운",
	CategoryCareer:  "직장운 & 사업운",
}

var elementYearOutlook = [5]string{
	Wood:  "새로운 시작과 성장의 기운이 있습니다. 봄철에 좋은 일이 시작됩니다.",
	Fire:  "열정과 활력이 넘치는 해입니다. 여름에 특히 운이 상승합니다.",
	Earth: "안정과 신뢰를 바탕으로 기반을 다지는 해입니다.",
	Metal: "결실과 수확의 기운입니다. 가을에 성과가 나타납니다.",
	Water: "지혜와 통찰력이 빛나는 해입니다. 겨울에 좋은 기회가 옵니다.",
}

var stemTemperaments = [10]string{
	"큰 나무처럼 곧고 강직한 성품",
	"덩굴처럼 유연하고 적응력 있는 성품",
	"태양처럼 밝고 활발한 성품",
	"촛불처럼 따뜻하고 섬세한 성품",
	"큰 산처럼 믿음직하고 안정된 성품",
	"논밭처럼 겸손하고 수용적인 성품",
	"바위처럼 강하고 결단력 있는 성품",
	"보석처럼 섬세하고 예리한 성품",
	"큰 바다처럼 포용력 있고 지혜로운 성품",
	"시냇물처럼 맑고 총명한 성품",
}

var (
	annualKeywords = levelText{"도약, 성장, 결실", "안정, 준비, 기반", "인내, 수양, 절제"}
	annualAdvice   = levelText{
		"적극적으로 기회를 잡으세요. 귀인의 도움이 따릅니다.",
		"무리하지 말고 꾸준히 나아가세요. 때를 기다리는 지혜가 필요합니다.",
		"조심하고 또 조심하세요. 큰 결정은 다음 해로 미루는 것이 좋습니다.",
	}
	wealthSummaries = levelText{"재물이 모이고 사업이 번창하는 해", "현상 유지하며 기반을 다지는 해", "지출을 줄이고 저축에 힘쓸 해"}
	wealthAdvice    = levelText{
		"적극적인 투자가 가능한 시기입니다. 단, 7-8월이 가장 유리합니다.",
		"안정적인 상품 위주로 투자하세요. 고위험 상품은 피하세요.",
		"투자보다는 저축에 집중하세요. 원금 보장 상품이 좋습니다.",
	}
	loveSummaries   = levelText{"좋은 인연을 만날 가능성이 높은 해", "기존 관계가 깊어지는 해", "연애보다 자기 발전에 집중할 해"}
	careerSummaries = levelText{"승진, 이직에 유리한 해", "현 직장에서 실력을 키울 해", "변화보다 안정을 추구할 해"}
	careerAdvice    = levelText{
		"승진, 이직, 창업 모두 유리한 시기입니다. 새로운 프로젝트에 적극 참여하세요.",
		"현 위치에서 실력을 쌓는 것이 중요합니다. 자격증 취득이나 스킬업에 투자하세요.",
		"현 직장을 지키는 것이 우선입니다. 상사와의 갈등을 피하세요.",
	}
)

// wealthOutlook is indexed by the class of the core element against the year element
var wealthOutlook = [5]string{
	SameElement:  "경쟁이 치열합니다. 차별화 전략이 필요합니다.",
	Generates:    "재물운이 상승합니다. 적극적인 투자가 유리합니다.",
	GeneratedBy:  "안정적인 수입이 기대됩니다. 부동산에 관심을 가지세요.",
	Controls:     "기회를 잘 포착하세요. 예상치 못한 수입이 있을 수 있습니다.",
	ControlledBy: "재물 손실에 주의하세요. 보수적인 투자가 필요합니다.",
}

// PeriodLuck is the luck label of a span of months
type PeriodLuck struct {
	Period      string `json:"period"`
	Luck        string `json:"luck"`
	Description string `json:"description"`
}

func wealthPeriods(level int) []PeriodLuck {
	choose := func(ok bool, yes, no string) string {
		if ok {
			return yes
		}
		return no
	}
	return []PeriodLuck{
		{"1-2월", choose(level >= 3, "평", "하"), "지출 관리 필요"},
		{"3-4월", choose(level >= 4, "상", "중"), "새로운 수입원 기대"},
		{"5-6월", "상", "투자 기회 포착"},
		{"7-8월", choose(level >= 4, "대길", "상"), "큰 재물운"},
		{"9-10월", "중", "안정적 수입"},
		{"11-12월", choose(level >= 3, "상", "중"), "연말 보너스 기대"},
	}
}

// HealthNote describes the organ system tied to an element
type HealthNote struct {
	Organ   string `json:"organ"`
	Symptom string `json:"symptom"`
	Remedy  string `json:"remedy"`
}

var healthNotes = [5]HealthNote{
	Wood:  {"간, 담", "눈 피로, 근육 경련, 분노 조절", "녹색 채소 섭취, 산책"},
	Fire:  {"심장, 소장", "불면증, 가슴 두근거림", "붉은색 음식, 명상"},
	Earth: {"비장, 위장", "소화불량, 식욕부진", "노란색 음식, 규칙적 식사"},
	Metal: {"폐, 대장", "피부 트러블, 호흡기 질환", "흰색 음식, 심호흡 운동"},
	Water: {"신장, 방광", "부종, 허리 통증, 탈모", "검은색 음식, 충분한 수분"},
}

var homeLuck = [2]string{
	Male:   "가장으로서의 책임감이 커지는 해입니다. 가족과의 대화 시간을 늘리세요.",
	Female: "가정 내 화합운이 있습니다. 자녀에게 경사스러운 일이 있을 수 있습니다.",
}

// loveMatches is indexed by gender, then by day stem
var loveMatches = [2][10]string{
	Male: {
		"자신을 따르는 순한 여성이 인연",
		"당당하고 독립적인 여성과 궁합",
		"조용하고 내조형 여성이 좋음",
		"활발하고 사교적인 여성에게 끌림",
		"가정적이고 안정적인 여성이 인연",
		"지적이고 현명한 여성과 궁합",
		"부드럽고 여성스러운 타입이 좋음",
		"예술적 감각이 있는 여성에게 끌림",
		"따뜻하고 포용력 있는 여성이 인연",
		"밝고 긍정적인 여성과 궁합",
	},
	Female: {
		"강한 남성보다 부드러운 남성이 인연",
		"든든하게 지켜주는 남성과 궁합",
		"차분한 남성과 보완적 관계",
		"열정적인 만남이 기대됨",
		"성실하고 믿음직한 인연 예상",
		"자상하고 배려심 많은 남성이 좋음",
		"유머러스하고 밝은 남성과 궁합",
		"지적이고 세련된 남성에게 끌림",
		"자유로운 영혼의 남성이 인연",
		"감성적이고 로맨틱한 만남 예상",
	},
}

var loveDirections = [2]string{Male: "동쪽, 남동쪽", Female: "서쪽, 북서쪽"}

var marriageOutlook = [2]levelText{
	Male:   {"결혼을 결심하기 좋은 해입니다. 가정을 이룰 준비가 되었습니다.", "결혼은 조금 더 신중히 생각하세요.", "결혼은 조금 더 신중히 생각하세요."},
	Female: {"결혼하기 좋은 해입니다. 좋은 신랑감을 만날 수 있습니다.", "결혼보다는 연애에 집중하는 것이 좋습니다.", "결혼보다는 연애에 집중하는 것이 좋습니다."},
}

var careerFields = [5][]string{
	Wood:  {"교육", "법조", "의료", "환경", "출판", "패션"},
	Fire:  {"IT", "마케팅", "엔터테인먼트", "스포츠", "광고", "요식업"},
	Earth: {"부동산", "건설", "농업", "공무원", "금융", "유통"},
	Metal: {"제조업", "금속", "기계", "법률", "군경", "금융"},
	Water: {"무역", "운송", "여행", "수산업", "미디어", "컨설팅"},
}

// ============================================================================
// Monthly breakdown and calendar
// ============================================================================

var monthlyScores = scoreTable{SameElement: 80, Generates: 78, GeneratedBy: 95, Controls: 72, ControlledBy: 50}

var monthlyLabels = banded[string]{
	{90, []string{"대길"}},
	{75, []string{"상"}},
	{65, []string{"길"}},
	{55, []string{"중"}},
	{0, []string{"주의"}},
}

var monthlyDescriptions = [5]string{
	SameElement:  "자신감이 넘치는 달",
	Generates:    "노력이 결실을 맺는 달",
	GeneratedBy:  "귀인의 도움이 있는 달",
	Controls:     "재물운이 좋은 달",
	ControlledBy: "신중함이 필요한 달",
}

var calendarLabels = [5]string{
	SameElement:  "평",
	Generates:    "길",
	GeneratedBy:  "대길",
	Controls:     "길",
	ControlledBy: "주의",
}

// ============================================================================
// Compatibility
// ============================================================================

type compatibilityInfo struct {
	level       string
	score       int
	description string
	advice      string
}

var compatibilityTable = [5]compatibilityInfo{
	GeneratedBy:  {"천생연분", 95, "하늘이 맺어준 인연입니다. 서로를 완벽하게 보완하며 함께할 때 더욱 빛나는 관계입니다.", "이 인연을 소중히 여기세요. 서로에 대한 믿음을 잃지 마세요."},
	Generates:    {"상생궁합", 85, "서로에게 좋은 기운을 주는 관계입니다. 함께하면 성장하고 발전할 수 있습니다.", "서로의 장점을 인정하고 칭찬하세요. 시너지 효과가 큽니다."},
	SameElement:  {"길한 인연", 75, "무난하고 안정적인 관계입니다. 노력하면 좋은 결과를 얻을 수 있습니다.", "소통에 더 노력을 기울이면 관계가 더욱 깊어집니다."},
	Controls:     {"평범한 인연", 60, "특별히 좋거나 나쁘지 않은 관계입니다. 서로의 노력 여하에 따라 달라집니다.", "서로 다른 점을 이해하고 존중하는 자세가 필요합니다."},
	ControlledBy: {"노력형 인연", 45, "서로 다른 기질로 인해 갈등이 있을 수 있습니다. 많은 노력과 이해가 필요합니다.", "감정적 충돌을 피하고 이성적인 대화를 나누세요."},
}
