package saju

// Reference points of the sexagenary cycle
const (
	// 1984 is a 갑자 (stem 0, branch 0) year
	referenceYear = 1984

	// 1900-01-01 is taken as a 갑진 day: stem 0, branch 4
	dayBranchPhaseShift = 4
)

var referenceDay = Date{Year: 1900, Month: 1, Day: 1}

// Pillar is a (stem, branch) pair
type Pillar struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}

// Known reports whether both symbols are set
func (p Pillar) Known() bool { return p.Stem.Valid() && p.Branch.Valid() }

// Name returns the Korean reading, e.g. 갑자
func (p Pillar) Name() string { return p.Stem.String() + p.Branch.String() }

// Hanja returns the Chinese characters, e.g. 甲子
func (p Pillar) Hanja() string { return p.Stem.Hanja() + p.Branch.Hanja() }

// FourPillars is the Year/Month/Day/Hour profile of one birth moment
type FourPillars struct {
	BirthDate Date      `json:"birth_date"`
	BirthTime BirthTime `json:"birth_time"`
	Year      Pillar    `json:"year"`
	Month     Pillar    `json:"month"`
	Day       Pillar    `json:"day"`
	Hour      Pillar    `json:"hour"`
}

// DayStem returns the ilgan, the core identity symbol of the subject
func (fp FourPillars) DayStem() Stem { return fp.Day.Stem }

// Zodiac returns the animal of the year branch
func (fp FourPillars) Zodiac() string { return fp.Year.Branch.Zodiac() }

// Pillars returns the four pillars in Year, Month, Day, Hour order
func (fp FourPillars) Pillars() [4]Pillar {
	return [4]Pillar{fp.Year, fp.Month, fp.Day, fp.Hour}
}

// ComputePillars parses an ISO date and an "HH:MM" or "unknown" time and
// derives the four pillars
func ComputePillars(birthDate, birthTime string) (FourPillars, error) {
	d, err := ParseDate(birthDate)
	if err != nil {
		return FourPillars{}, err
	}
	t, err := ParseBirthTime(birthTime)
	if err != nil {
		return FourPillars{}, err
	}
	return PillarsFor(d, t), nil
}

// PillarsFor derives the four pillars of an already parsed birth moment
func PillarsFor(d Date, t BirthTime) FourPillars {
	year := YearPillar(d.Year)
	day := DayPillar(d)
	return FourPillars{
		BirthDate: d,
		BirthTime: t,
		Year:      year,
		Month:     MonthPillar(year.Stem, int(d.Month)),
		Day:       day,
		Hour:      HourPillar(day.Stem, t),
	}
}

// YearPillar returns the pillar of a calendar year. The year boundary is
// January 1, not ipchun.
func YearPillar(year int) Pillar {
	diff := year - referenceYear
	return Pillar{Stem: Stem(mod(diff, 10)), Branch: Branch(mod(diff, 12))}
}

// MonthPillar approximates the month pillar from the calendar month. Solar-term
// boundaries are ignored, so dates near a month edge can disagree with a
// manseryeok table.
func MonthPillar(yearStem Stem, month int) Pillar {
	stem := mod(mod(int(yearStem), 5)*2+month-1, 10)
	return Pillar{Stem: Stem(stem), Branch: Branch(mod(month+1, 12))}
}

// DayPillar returns the pillar of a day in the 60-day cycle
func DayPillar(d Date) Pillar {
	offset := daysBetween(referenceDay, d)
	return Pillar{
		Stem:   Stem(mod(offset, 10)),
		Branch: Branch(mod(offset+dayBranchPhaseShift, 12)),
	}
}

// HourPillar returns the hour pillar, or a pair of sentinels when t is unknown
func HourPillar(dayStem Stem, t BirthTime) Pillar {
	if !t.Known || !dayStem.Valid() {
		return Pillar{Stem: StemUnknown, Branch: BranchUnknown}
	}
	branch := t.Branch()
	stem := mod(mod(int(dayStem), 5)*2+int(branch), 10)
	return Pillar{Stem: Stem(stem), Branch: branch}
}
