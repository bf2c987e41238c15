package saju

import "strings"

// Compatibility is the reading of two people's core elements
type Compatibility struct {
	A           Subject  `json:"a"`
	B           Subject  `json:"b"`
	Relation    Relation `json:"relation"`
	Level       string   `json:"level"`
	Score       int      `json:"score"`
	Description string   `json:"description"`
	Advice      string   `json:"advice"`
}

// ComputeCompatibility classifies a's core element against b's
func ComputeCompatibility(a, b SubjectInput) (Compatibility, error) {
	if strings.TrimSpace(a.BirthDate) == "" || strings.TrimSpace(b.BirthDate) == "" {
		return Compatibility{}, ErrMissingSecondSubject
	}
	sa, err := a.Parse()
	if err != nil {
		return Compatibility{}, err
	}
	sb, err := b.Parse()
	if err != nil {
		return Compatibility{}, err
	}

	class := Classify(sa.core(), sb.core())
	info := compatibilityTable[class]
	return Compatibility{
		A: sa,
		B: sb,
		Relation: Relation{
			Class:       class,
			Label:       class.Label(),
			Subject:     sa.core(),
			Reference:   sb.core(),
			Score:       info.score,
			Description: info.description,
			Advice:      info.advice,
		},
		Level:       info.level,
		Score:       info.score,
		Description: info.description,
		Advice:      info.advice,
	}, nil
}
