package saju

import "encoding/json"

// RelationClass is how a subject element stands to a reference element
type RelationClass int

const (
	SameElement RelationClass = iota
	Generates
	GeneratedBy
	Controls
	ControlledBy
)

// RelationClasses lists every class in classification precedence order
var RelationClasses = [5]RelationClass{SameElement, GeneratedBy, Generates, Controls, ControlledBy}

// ScoreBand is the inclusive range of base scores a class may carry
type ScoreBand struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type relationInfo struct {
	key   string
	label string
	band  ScoreBand
	base  int
}

var relationTable = [5]relationInfo{
	SameElement:  {"same_element", "비화(比和)/Same-Element", ScoreBand{70, 70}, 70},
	Generates:    {"generates", "설기(洩氣)/Mutual-Generation", ScoreBand{75, 80}, 75},
	GeneratedBy:  {"generated_by", "생부(生扶)/Nourished", ScoreBand{90, 95}, 95},
	Controls:     {"controls", "극재(剋財)/Dominating", ScoreBand{80, 85}, 85},
	ControlledBy: {"controlled_by", "극살(剋殺)/Suppressed", ScoreBand{45, 55}, 45},
}

func (r RelationClass) String() string { return relationTable[r].key }

// Label returns the bilingual name of the class
func (r RelationClass) Label() string { return relationTable[r].label }

// Band returns the base-score band of the class
func (r RelationClass) Band() ScoreBand { return relationTable[r].band }

// BaseScore returns the default base score of the class
func (r RelationClass) BaseScore() int { return relationTable[r].base }

func (r RelationClass) MarshalJSON() ([]byte, error) { return json.Marshal(r.String()) }

// Classify returns the relation of subject to reference. With a single
// five-node cycle exactly one branch matches every ordered pair.
func Classify(subject, reference Element) RelationClass {
	switch {
	case reference == subject:
		return SameElement
	case reference.Generates() == subject:
		return GeneratedBy
	case subject.Generates() == reference:
		return Generates
	case subject.Controls() == reference:
		return Controls
	default:
		return ControlledBy
	}
}

// ClassifyRelation classifies a pair and returns the class's base score
func ClassifyRelation(subject, reference Element) (RelationClass, int) {
	class := Classify(subject, reference)
	return class, class.BaseScore()
}

// Relation is a classified comparison together with its call-site score
type Relation struct {
	Class       RelationClass `json:"class"`
	Label       string        `json:"label"`
	Subject     Element       `json:"subject_element"`
	Reference   Element       `json:"reference_element"`
	Score       int           `json:"score"`
	Description string        `json:"description,omitempty"`
	Advice      string        `json:"advice,omitempty"`
}

// scoreTable maps each class to a call-site specific base score
type scoreTable [5]int

func (t scoreTable) of(r RelationClass) int { return t[r] }

func newRelation(subject, reference Element, scores scoreTable) Relation {
	class := Classify(subject, reference)
	return Relation{
		Class:     class,
		Label:     class.Label(),
		Subject:   subject,
		Reference: reference,
		Score:     scores.of(class),
	}
}
