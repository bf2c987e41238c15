package saju

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Gender conditions the annual narrative
type Gender int

const (
	Male Gender = iota
	Female
)

// ParseGender maps "female", "f", "여" and "여성" to Female and anything else to Male
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "female", "f", "여", "여성", "woman":
		return Female
	default:
		return Male
	}
}

func (g Gender) String() string {
	if g == Female {
		return "female"
	}
	return "male"
}

func (g Gender) MarshalJSON() ([]byte, error) { return json.Marshal(g.String()) }

// AnnualDetail carries the year-specific readings of an annual result
type AnnualDetail struct {
	ForecastYear    int          `json:"forecast_year"`
	YearPillar      Pillar       `json:"year_pillar"`
	YearElement     Element      `json:"year_element"`
	Gender          Gender       `json:"gender"`
	Type            string       `json:"type"`
	Level           int          `json:"level"`
	Summary         string       `json:"summary"`
	Keywords        string       `json:"keywords"`
	WealthElement   Element      `json:"wealth_element"`
	WealthDirection string       `json:"wealth_direction"`
	WealthPeriods   []PeriodLuck `json:"wealth_periods"`
	Health          HealthNote   `json:"health"`
	LoveMatch       string       `json:"love_match"`
	LoveDirection   string       `json:"love_direction"`
	CareerFields    []string     `json:"career_fields"`
}

var annualCategories = []Category{CategoryOverall, CategoryWealth, CategoryHealth, CategoryLove, CategoryCareer}

// ComputeAnnualFortune rates a subject against the year stem of forecastYear
func ComputeAnnualFortune(birthDate, birthTime string, forecastYear int, gender Gender) (FortuneResult, error) {
	s, err := SubjectInput{BirthDate: birthDate, BirthTime: birthTime}.Parse()
	if err != nil {
		return FortuneResult{}, err
	}
	return annualFortune(s, forecastYear, gender), nil
}

func annualFortune(s Subject, forecastYear int, gender Gender) FortuneResult {
	yp := YearPillar(forecastYear)
	yearElement := yp.Stem.Element()
	core := s.core()

	class := Classify(core, yearElement)
	at := annualTypes[class]
	level := at.level
	// 관성 reads as spouse and career luck for women
	if gender == Female && class == ControlledBy {
		level = 4
	}
	base := annualLevelScores[level]

	rel := Relation{
		Class:       class,
		Label:       class.Label(),
		Subject:     core,
		Reference:   yearElement,
		Score:       base,
		Description: at.name,
		Advice:      annualAdvice.at(level),
	}

	seed := s.seed().Plus(Seed(forecastYear))
	score := func(c Category) int {
		j := seed.Derive(string(c)).Jitter(10)
		return annualBounds.clamp(base + annualBias[c][core] + j)
	}

	yearName := fmt.Sprintf("%d년 %s년(%s年)", forecastYear, yp.Name(), yp.Hanja())
	wealthElement := core.Controls()
	weak := s.Profile.Deficient
	stem := s.Pillars.DayStem()

	detail := AnnualDetail{
		ForecastYear:    forecastYear,
		YearPillar:      yp,
		YearElement:     yearElement,
		Gender:          gender,
		Type:            at.name,
		Level:           level,
		Summary:         annualLevelSummaries[level],
		Keywords:        annualKeywords.at(level),
		WealthElement:   wealthElement,
		WealthDirection: wealthElement.Properties().Direction,
		WealthPeriods:   wealthPeriods(level),
		Health:          healthNotes[weak],
		LoveMatch:       loveMatches[gender][stem],
		LoveDirection:   loveDirections[gender],
		CareerFields:    careerFields[core],
	}

	narratives := map[Category]string{
		CategoryOverall: fmt.Sprintf("%s띠 %s일간의 %s 총운. 당신은 %s을 가지고 태어났습니다. %s는 %s에 해당하는 해로, %s %s",
			s.Pillars.Zodiac(), stem, yearName, stemTemperaments[stem], yearName, at.name,
			annualLevelSummaries[level], elementYearOutlook[core]),
		CategoryWealth: fmt.Sprintf("일간 %s(%s)을 기준으로 재성(財星)은 %s(%s)에 해당합니다. %s 재물 길방은 %s입니다.",
			core, core.Properties().Hanja, wealthElement, wealthElement.Properties().Hanja,
			wealthOutlook[class], detail.WealthDirection),
		CategoryHealth: fmt.Sprintf("사주에서 %s(%s)의 기운이 부족합니다. 주의할 장기는 %s, 나타날 수 있는 증상은 %s입니다. %s",
			weak, weak.Properties().Hanja, detail.Health.Organ, detail.Health.Symptom, homeLuck[gender]),
		CategoryLove: fmt.Sprintf("일간 %s의 특성상, %s. 좋은 인연이 올 방향은 %s입니다. %s",
			stem, detail.LoveMatch, detail.LoveDirection, marriageOutlook[gender].at(level)),
		CategoryCareer: fmt.Sprintf("일간 %s(%s) 기준 적합한 분야: %s.",
			stem, core, strings.Join(detail.CareerFields, ", ")),
	}
	advice := map[Category]string{
		CategoryOverall: annualAdvice.at(level),
		CategoryWealth:  wealthAdvice.at(level),
		CategoryHealth:  fmt.Sprintf("보완 방법: %s. %s 방향으로 산책하고 %s에 특히 건강 관리를 철저히 하세요.", detail.Health.Remedy, weak.Properties().Direction, weak.Properties().Season),
		CategoryLove:    loveSummaries.at(level),
		CategoryCareer:  careerAdvice.at(level),
	}
	summaries := map[Category]string{
		CategoryWealth: wealthSummaries.at(level),
		CategoryCareer: careerSummaries.at(level),
	}

	categories := make(map[Category]CategoryFortune, len(annualCategories))
	for _, c := range annualCategories {
		narrative := narratives[c]
		if sum, ok := summaries[c]; ok {
			narrative = sum + ". " + narrative
		}
		categories[c] = CategoryFortune{
			Score:     score(c),
			Bounds:    annualBounds,
			Title:     annualTitles[c],
			Narrative: narrative,
			Advice:    advice[c],
		}
	}

	return FortuneResult{
		Mode:           ModeAnnual,
		EvaluationDate: Date{Year: forecastYear, Month: 1, Day: 1},
		Pillars:        s.Pillars,
		Profile:        s.Profile,
		Reference:      yp,
		Relation:       rel,
		Categories:     categories,
		Lucky:          luckFor(core, seed),
		Monthly:        MonthlyBreakdown(core),
		Annual:         &detail,
	}
}

// MonthlyBreakdown rates each calendar month's nominal branch against core.
// Month m uses branch m mod 12, so January is 축 and December is 자.
func MonthlyBreakdown(core Element) []MonthFortune {
	months := make([]MonthFortune, 0, 12)
	for m := 1; m <= 12; m++ {
		b := Branch(m % 12)
		class := Classify(core, b.Element())
		score := monthlyScores.of(class)
		label := monthlyLabels.pick(score, 0)

		advice := "평소대로 꾸준히 하세요"
		switch label {
		case "대길", "상":
			advice = "적극적으로 행동하세요"
		case "주의":
			advice = "큰 결정은 피하세요"
		}
		months = append(months, MonthFortune{
			Month:       m,
			Branch:      b,
			Element:     b.Element(),
			Class:       class,
			Score:       score,
			Label:       label,
			Description: monthlyDescriptions[class],
			Advice:      advice,
		})
	}
	return months
}
