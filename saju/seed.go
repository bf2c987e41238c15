package saju

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
)

// Seed drives every variant and jitter choice. Equal inputs give equal seeds.
type Seed uint64

// SubjectSeed folds a birth moment into a seed. An unknown time counts as 12:00.
func SubjectSeed(d Date, t BirthTime) Seed {
	hour, minute := 12, 0
	if t.Known {
		hour, minute = t.Hour, t.Minute
	}
	v := mod(d.Year, 100)*1000 + int(d.Month)*100 + d.Day*10 + hour + minute
	return Seed(v)
}

// DateSeed folds the evaluation date into a seed with day granularity
func DateSeed(d Date) Seed {
	return Seed(mod(d.Year, 100)*372 + int(d.Month)*31 + d.Day)
}

// Plus combines two seeds additively
func (s Seed) Plus(o Seed) Seed { return s + o }

// Derive returns an independent sub-seed for the named use
func (s Seed) Derive(salt string) Seed {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(s))
	data := append(buf[:], []byte(salt)...)
	hash := sha256.Sum256(data)
	return Seed(binary.BigEndian.Uint64(hash[0:8]))
}

// Index reduces the seed to [0, n)
func (s Seed) Index(n int) int {
	if n <= 0 {
		return 0
	}
	return int(uint64(s) % uint64(n))
}

// Between returns a stable value in [min, max] taken from the fractional
// part of a scaled sine of the seed
func (s Seed) Between(min, max int) int {
	if max <= min {
		return min
	}
	x := math.Sin(float64(uint64(s)%(1<<31))) * 10000
	frac := x - math.Floor(x)
	v := int(math.Floor(frac*float64(max-min+1))) + min
	if v > max {
		v = max
	}
	return v
}

// Jitter returns a stable offset in [-spread, spread]
func (s Seed) Jitter(spread int) int { return s.Between(-spread, spread) }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// pick selects one variant of a list by seed
func pick[T any](s Seed, variants []T) T {
	return variants[s.Index(len(variants))]
}
