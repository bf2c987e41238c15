package saju

import (
	"fmt"
	"math"
	"strings"
)

// Display names used when a family input leaves a name empty
const (
	DefaultParentName = "부모"
	DefaultChildName  = "자녀"
)

// FamilyInput is the raw input of a parent and child pair
type FamilyInput struct {
	Parent SubjectInput `json:"parent" yaml:"parent"`
	Child  SubjectInput `json:"child" yaml:"child"`
}

// Hexagon is the six-axis breakdown of the family fortune
type Hexagon struct {
	Scores map[HexagonAxis]int `json:"scores"`
	Bounds ScoreBand           `json:"bounds"`
}

// SeasonNote is the seasonal adjustment applied to the story score
type SeasonNote struct {
	Name       string `json:"name"`
	Adjustment int    `json:"adjustment"`
	Effect     string `json:"effect"`
}

// FamilyDetail carries the parent-child specifics of a family result
type FamilyDetail struct {
	Parent         Subject    `json:"parent"`
	Child          Subject    `json:"child"`
	RelationType   string     `json:"relation_type"`
	RelationName   string     `json:"relation_name"`
	ChildBase      int        `json:"child_base_score"`
	Influence      float64    `json:"parent_influence"`
	OverallScore   int        `json:"overall_score"`
	StoryScore     int        `json:"story_score"`
	Season         SeasonNote `json:"season"`
	Level          string     `json:"level"`
	MainMessage    string     `json:"main_message"`
	RelationAdvice string     `json:"relation_advice"`
	ShareLevel     string     `json:"share_level"`
}

// ComputeFamilyFortune rates a child against the day of eval with the
// parent's element as an influence
func ComputeFamilyFortune(parentBirthDate, parentBirthTime, childBirthDate, childBirthTime string, eval Date) (FortuneResult, error) {
	return ComputeFamily(FamilyInput{
		Parent: SubjectInput{BirthDate: parentBirthDate, BirthTime: parentBirthTime},
		Child:  SubjectInput{BirthDate: childBirthDate, BirthTime: childBirthTime},
	}, eval)
}

// ComputeFamily is ComputeFamilyFortune with optional display names
func ComputeFamily(in FamilyInput, eval Date) (FortuneResult, error) {
	if strings.TrimSpace(in.Parent.BirthDate) == "" {
		return FortuneResult{}, fmt.Errorf("parent birth date: %w", ErrMissingSecondSubject)
	}
	if strings.TrimSpace(in.Child.BirthDate) == "" {
		return FortuneResult{}, fmt.Errorf("child birth date: %w", ErrMissingSecondSubject)
	}
	parent, err := in.Parent.Parse()
	if err != nil {
		return FortuneResult{}, err
	}
	child, err := in.Child.Parse()
	if err != nil {
		return FortuneResult{}, err
	}
	if parent.Name == "" {
		parent.Name = DefaultParentName
	}
	if child.Name == "" {
		child.Name = DefaultChildName
	}
	return familyFortune(parent, child, eval), nil
}

func familyFortune(parent, child Subject, eval Date) FortuneResult {
	info := parentChildTable[Classify(parent.core(), child.core())]
	rel := Relation{
		Class:       Classify(parent.core(), child.core()),
		Subject:     parent.core(),
		Reference:   child.core(),
		Score:       info.score,
		Description: fmt.Sprintf(info.description, parent.core(), child.core()),
		Advice:      info.advice,
	}
	rel.Label = rel.Class.Label()

	today := DayPillar(eval)
	childBase := childDailyScores.of(Classify(child.core(), today.Branch.Element()))
	influence := float64(info.score-70) / 3
	overall := familyBounds.clamp(int(math.Round(float64(childBase) + influence)))

	day := DateSeed(eval)
	childSeed := child.seed().Plus(day)
	parentSeed := parent.seed().Plus(day)
	combined := child.seed().Plus(parent.seed()).Plus(day)

	season := SeasonOf(int(eval.Month))
	adj := seasonalAdjustments[season][child.core()]
	weekdayAdj := combined.Plus(Seed(eval.Weekday())).Between(-3, 3)
	storyScore := storyBounds.clamp(overall + adj + weekdayAdj)

	r := strings.NewReplacer(
		"{parentIlgan}", parent.Pillars.DayStem().String(),
		"{childIlgan}", child.Pillars.DayStem().String(),
		"{parent}", parent.Name,
		"{child}", child.Name,
	)
	tmpl := storyTemplates.at(storyScore)[0]
	story := StorySections{
		Intro:      r.Replace(pick(childSeed.Derive("intro"), tmpl.intros)),
		Body:       r.Replace(pick(combined.Derive("body"), tmpl.bodies)),
		Effect:     r.Replace(pick(parentSeed.Derive("effect"), tmpl.effects)),
		Conclusion: r.Replace(pick(childSeed.Derive("conclusion"), tmpl.conclusions)),
	}

	hex := Hexagon{Scores: make(map[HexagonAxis]int, len(HexagonAxes)), Bounds: hexagonBounds}
	for _, axis := range HexagonAxes {
		j := combined.Derive(string(axis)).Jitter(hexagonSpread[axis])
		hex.Scores[axis] = hexagonBounds.clamp(overall + hexagonBias[child.core()][axis] + j)
	}

	mood := "긍정적인"
	if adj < 0 {
		mood = "주의가 필요한"
	}
	detail := FamilyDetail{
		Parent:       parent,
		Child:        child,
		RelationType: info.key,
		RelationName: info.name,
		ChildBase:    childBase,
		Influence:    influence,
		OverallScore: overall,
		StoryScore:   storyScore,
		Season: SeasonNote{
			Name:       season.String(),
			Adjustment: adj,
			Effect:     fmt.Sprintf("%s %s 영향을 주고 있습니다.", seasonMoods[season], mood),
		},
		Level:          familyLevels.pick(overall, 0),
		MainMessage:    familyMessages.pick(overall, combined.Derive("message")),
		RelationAdvice: info.relationAdvice,
		ShareLevel:     shareLevels.pick(storyScore, 0),
	}

	categories := map[Category]CategoryFortune{
		CategoryOverall: {
			Score:     overall,
			Bounds:    familyBounds,
			Title:     categoryTitles[CategoryOverall],
			Narrative: detail.MainMessage,
			Advice:    info.relationAdvice,
		},
		CategoryRelation: {
			Score:     storyScore,
			Bounds:    storyBounds,
			Title:     categoryTitles[CategoryRelation],
			Narrative: rel.Description,
			Advice:    info.advice,
		},
	}

	return FortuneResult{
		Mode:           ModeFamily,
		EvaluationDate: eval,
		Pillars:        child.Pillars,
		Profile:        child.Profile,
		Reference:      today,
		Relation:       rel,
		Categories:     categories,
		Lucky:          luckFor(child.core().GeneratedBy(), combined),
		Story:          &story,
		Hexagon:        &hex,
		Family:         &detail,
	}
}
