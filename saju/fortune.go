package saju

// EngineVersion changes whenever a table or formula changes computed output
const EngineVersion = "2.1.0"

// Mode names the entry point that produced a FortuneResult
type Mode string

const (
	ModeDaily  Mode = "daily"
	ModeFamily Mode = "family"
	ModeAnnual Mode = "annual"
)

// Category keys the scored sections of a FortuneResult
type Category string

const (
	CategoryOverall  Category = "overall"
	CategoryWealth   Category = "wealth"
	CategoryHealth   Category = "health"
	CategoryLove     Category = "love"
	CategoryCareer   Category = "career"
	CategoryRelation Category = "relation"
)

// Score bounds per call site
var (
	dailyBounds   = ScoreBand{20, 100}
	annualBounds  = ScoreBand{30, 100}
	familyBounds  = ScoreBand{0, 100}
	storyBounds   = ScoreBand{50, 98}
	hexagonBounds = ScoreBand{30, 100}
)

func (b ScoreBand) clamp(v int) int { return clamp(v, b.Min, b.Max) }

// Contains reports whether v lies in the band
func (b ScoreBand) Contains(v int) bool { return v >= b.Min && v <= b.Max }

// CategoryFortune is one scored narrative section
type CategoryFortune struct {
	Score     int       `json:"score"`
	Bounds    ScoreBand `json:"bounds"`
	Title     string    `json:"title"`
	Narrative string    `json:"narrative"`
	Advice    string    `json:"advice"`
}

// LuckyAttributes are the seeded lucky picks of a result
type LuckyAttributes struct {
	Color     string `json:"color"`
	Number    int    `json:"number"`
	Direction string `json:"direction"`
	Food      string `json:"food"`
	Activity  string `json:"activity"`
}

// StorySections is the four-part family narrative
type StorySections struct {
	Intro      string `json:"intro"`
	Body       string `json:"body"`
	Effect     string `json:"effect"`
	Conclusion string `json:"conclusion"`
}

// Quote is a four-character idiom with its reading
type Quote struct {
	Text    string `json:"text"`
	Meaning string `json:"meaning"`
}

// MonthFortune is one entry of the twelve-month breakdown
type MonthFortune struct {
	Month       int           `json:"month"`
	Branch      Branch        `json:"branch"`
	Element     Element       `json:"element"`
	Class       RelationClass `json:"class"`
	Score       int           `json:"score"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Advice      string        `json:"advice"`
}

// FortuneResult is the immutable output of every fortune entry point.
// Pillars and Profile describe the primary subject (the child in family mode).
type FortuneResult struct {
	Mode           Mode                         `json:"mode"`
	EvaluationDate Date                         `json:"evaluation_date"`
	Pillars        FourPillars                  `json:"pillars"`
	Profile        ElementProfile               `json:"element_profile"`
	Reference      Pillar                       `json:"reference"`
	Relation       Relation                     `json:"relation"`
	Categories     map[Category]CategoryFortune `json:"categories"`
	Lucky          LuckyAttributes              `json:"lucky"`
	Story          *StorySections               `json:"story,omitempty"`
	Quote          *Quote                       `json:"quote,omitempty"`
	Monthly        []MonthFortune               `json:"monthly,omitempty"`
	Hexagon        *Hexagon                     `json:"hexagon,omitempty"`
	Family         *FamilyDetail                `json:"family,omitempty"`
	Annual         *AnnualDetail                `json:"annual,omitempty"`
}

// Has reports whether the result carries the category
func (r FortuneResult) Has(c Category) bool {
	_, ok := r.Categories[c]
	return ok
}

// Subject holds the parsed data of one person
type Subject struct {
	Name    string         `json:"name,omitempty"`
	Pillars FourPillars    `json:"pillars"`
	Profile ElementProfile `json:"element_profile"`
}

// SubjectInput is the raw input of one person
type SubjectInput struct {
	Name      string `json:"name,omitempty" yaml:"name,omitempty"`
	BirthDate string `json:"birth_date" yaml:"birth_date"`
	BirthTime string `json:"birth_time,omitempty" yaml:"birth_time,omitempty"`
	Gender    string `json:"gender,omitempty" yaml:"gender,omitempty"`
}

// Parse computes the pillars and profile of the input
func (in SubjectInput) Parse() (Subject, error) {
	fp, err := ComputePillars(in.BirthDate, in.BirthTime)
	if err != nil {
		return Subject{}, err
	}
	return Subject{Name: in.Name, Pillars: fp, Profile: ComputeElementProfile(fp)}, nil
}

// seed returns the birth seed of the subject
func (s Subject) seed() Seed {
	return SubjectSeed(s.Pillars.BirthDate, s.Pillars.BirthTime)
}

// core returns the day stem element
func (s Subject) core() Element { return s.Profile.CoreElement }

// luckFor picks lucky attributes from the lists of element e
func luckFor(e Element, seed Seed) LuckyAttributes {
	l := luckyTable[e]
	return LuckyAttributes{
		Color:     pick(seed.Derive("color"), l.colors),
		Number:    pick(seed.Derive("number"), l.numbers),
		Direction: e.Properties().Direction,
		Food:      pick(seed.Derive("food"), l.foods),
		Activity:  pick(seed.Derive("activity"), l.activities),
	}
}
