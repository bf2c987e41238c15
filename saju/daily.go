package saju

// dailyCategories are the jittered categories of the single-subject fortune
var dailyCategories = []Category{CategoryLove, CategoryWealth, CategoryCareer, CategoryHealth}

// ComputeDailyFortune rates one subject against the day pillar of eval
func ComputeDailyFortune(birthDate, birthTime string, eval Date) (FortuneResult, error) {
	s, err := SubjectInput{BirthDate: birthDate, BirthTime: birthTime}.Parse()
	if err != nil {
		return FortuneResult{}, err
	}
	return dailyFortune(s, eval), nil
}

func dailyFortune(s Subject, eval Date) FortuneResult {
	today := DayPillar(eval)
	rel := newRelation(s.core(), today.Branch.Element(), dailyScores)
	rel.Description = dailySummaries[rel.Class]

	seed := s.seed().Plus(DateSeed(eval))
	base := rel.Score

	categories := make(map[Category]CategoryFortune, len(dailyCategories)+1)
	categories[CategoryOverall] = CategoryFortune{
		Score:     dailyBounds.clamp(base),
		Bounds:    dailyBounds,
		Title:     categoryTitles[CategoryOverall],
		Narrative: rel.Description,
		Advice:    pick(seed.Derive("overall"), dailyOverallAdvice[rel.Class]),
	}
	rel.Advice = categories[CategoryOverall].Advice

	for _, c := range dailyCategories {
		cs := seed.Derive(string(c))
		bias := dailyBias[c][s.core()]
		score := dailyBounds.clamp(base + dailyOffsets[c] + bias + cs.Jitter(15))

		cf := CategoryFortune{Score: score, Bounds: dailyBounds, Title: categoryTitles[c]}
		if c == CategoryHealth {
			cf.Narrative = healthWarnings[s.Profile.Deficient]
			cf.Advice = healthAdvice[s.Profile.Deficient]
		} else {
			cf.Narrative = dailyNarratives[c].pick(base, cs)
			cf.Advice = dailyAdvice[c].pick(base, cs)
		}
		categories[c] = cf
	}

	quote := dailyQuotes.pick(base, seed.Derive("quote"))
	return FortuneResult{
		Mode:           ModeDaily,
		EvaluationDate: eval,
		Pillars:        s.Pillars,
		Profile:        s.Profile,
		Reference:      today,
		Relation:       rel,
		Categories:     categories,
		Lucky:          luckFor(s.core(), seed),
		Quote:          &quote,
	}
}
