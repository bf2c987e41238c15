// Package saju computes Four Pillars (saju) profiles and the fortunes derived
// from them. Every function is a pure function of its arguments: the evaluation
// date is always passed in, never read from the clock.
package saju

import (
	"encoding/json"
	"fmt"
)

// Stem is one of the ten heavenly stems (cheongan), index 0-9
type Stem int

// Branch is one of the twelve earthly branches (jiji), index 0-11
type Branch int

// Element is one of the five elements (ohang) in generation-cycle order
type Element int

// Unknown sentinels used by the Hour pillar when the birth time is not known
const (
	StemUnknown   Stem   = -1
	BranchUnknown Branch = -1
)

const (
	Wood Element = iota
	Fire
	Earth
	Metal
	Water
)

// Elements lists the five elements in generation-cycle order
var Elements = [5]Element{Wood, Fire, Earth, Metal, Water}

var stemNames = [10]string{"갑", "을", "병", "정", "무", "기", "경", "신", "임", "계"}
var stemHanja = [10]string{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var branchNames = [12]string{"자", "축", "인", "묘", "진", "사", "오", "미", "신", "유", "술", "해"}
var branchHanja = [12]string{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var zodiacAnimals = [12]string{"쥐", "소", "호랑이", "토끼", "용", "뱀", "말", "양", "원숭이", "닭", "개", "돼지"}

// Two stems per element, yang then yin
var stemElements = [10]Element{Wood, Wood, Fire, Fire, Earth, Earth, Metal, Metal, Water, Water}

// Earth claims the four seasonal-transition branches (축 진 미 술)
var branchElements = [12]Element{Water, Earth, Wood, Wood, Earth, Fire, Fire, Earth, Metal, Metal, Earth, Water}

var elementNames = [5]string{"목", "화", "토", "금", "수"}
var elementEnglish = [5]string{"wood", "fire", "earth", "metal", "water"}

// Valid reports whether s is one of the ten stems
func (s Stem) Valid() bool { return s >= 0 && s < 10 }

// Element returns the element of the stem
func (s Stem) Element() Element { return stemElements[s] }

// Hanja returns the Chinese character of the stem, or "?" for the sentinel
func (s Stem) Hanja() string {
	if !s.Valid() {
		return "?"
	}
	return stemHanja[s]
}

func (s Stem) String() string {
	if !s.Valid() {
		return "?"
	}
	return stemNames[s]
}

func (s Stem) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// Valid reports whether b is one of the twelve branches
func (b Branch) Valid() bool { return b >= 0 && b < 12 }

// Element returns the element of the branch
func (b Branch) Element() Element { return branchElements[b] }

// Zodiac returns the zodiac animal of the branch
func (b Branch) Zodiac() string {
	if !b.Valid() {
		return ""
	}
	return zodiacAnimals[b]
}

// Hanja returns the Chinese character of the branch, or "?" for the sentinel
func (b Branch) Hanja() string {
	if !b.Valid() {
		return "?"
	}
	return branchHanja[b]
}

func (b Branch) String() string {
	if !b.Valid() {
		return "?"
	}
	return branchNames[b]
}

func (b Branch) MarshalJSON() ([]byte, error) { return json.Marshal(b.String()) }

// Valid reports whether e is one of the five elements
func (e Element) Valid() bool { return e >= Wood && e <= Water }

// Generates returns the element e feeds in the generation cycle
func (e Element) Generates() Element { return (e + 1) % 5 }

// GeneratedBy returns the element that feeds e
func (e Element) GeneratedBy() Element { return (e + 4) % 5 }

// Controls returns the element e suppresses, two steps ahead in the cycle
func (e Element) Controls() Element { return (e + 2) % 5 }

// ControlledBy returns the element that suppresses e
func (e Element) ControlledBy() Element { return (e + 3) % 5 }

// Properties returns the static attribute row of the element
func (e Element) Properties() ElementProperties { return elementProperties[e] }

// English returns the lowercase English name used by the HTTP API
func (e Element) English() string { return elementEnglish[e] }

func (e Element) String() string {
	if !e.Valid() {
		return "?"
	}
	return elementNames[e]
}

func (e Element) MarshalJSON() ([]byte, error) { return json.Marshal(e.String()) }

// ParseElement accepts the Korean name, the hanja or the English name
func ParseElement(s string) (Element, error) {
	for _, e := range Elements {
		if s == elementNames[e] || s == elementEnglish[e] || s == elementProperties[e].Hanja {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown element %q", s)
}

// ElementProperties holds the correspondences of one element
type ElementProperties struct {
	Hanja       string `json:"hanja"`
	Color       string `json:"color"`
	Direction   string `json:"direction"`
	Season      string `json:"season"`
	Organ       string `json:"organ"`
	Emotion     string `json:"emotion"`
	Personality string `json:"personality"`
}

var elementProperties = [5]ElementProperties{
	Wood:  {Hanja: "木", Color: "청색", Direction: "동쪽", Season: "봄", Organ: "간/담", Emotion: "분노", Personality: "창의적, 진취적, 성장 지향"},
	Fire:  {Hanja: "火", Color: "적색", Direction: "남쪽", Season: "여름", Organ: "심장/소장", Emotion: "기쁨", Personality: "열정적, 활발, 사교적"},
	Earth: {Hanja: "土", Color: "황색", Direction: "중앙", Season: "환절기", Organ: "비장/위장", Emotion: "사려", Personality: "안정적, 신뢰감, 중재자"},
	Metal: {Hanja: "金", Color: "백색", Direction: "서쪽", Season: "가을", Organ: "폐/대장", Emotion: "슬픔", Personality: "결단력, 의지력, 정의로움"},
	Water: {Hanja: "水", Color: "흑색", Direction: "북쪽", Season: "겨울", Organ: "신장/방광", Emotion: "공포", Personality: "지혜로움, 유연함, 통찰력"},
}

// StemMeaning describes the character read from a day stem
type StemMeaning struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

var stemMeanings = [10]StemMeaning{
	{"갑목(甲木)", "큰 나무", "곧고 강직하며 리더십이 있습니다. 정의감이 강하고 독립적입니다."},
	{"을목(乙木)", "덩굴/꽃", "유연하고 적응력이 뛰어납니다. 섬세하고 예술적 감각이 있습니다."},
	{"병화(丙火)", "태양", "밝고 활발하며 카리스마가 있습니다. 낙천적이고 리더 기질이 있습니다."},
	{"정화(丁火)", "촛불", "따뜻하고 섬세합니다. 직관력이 뛰어나고 배려심이 깊습니다."},
	{"무토(戊土)", "큰 산", "믿음직하고 안정적입니다. 포용력이 크고 신뢰를 줍니다."},
	{"기토(己土)", "논밭", "겸손하고 수용적입니다. 실용적이고 꾸준합니다."},
	{"경금(庚金)", "바위/광석", "강하고 결단력이 있습니다. 의지가 굳고 정의로웁니다."},
	{"신금(辛金)", "보석", "섬세하고 예리합니다. 완벽주의 성향이 있고 심미안이 뛰어납니다."},
	{"임수(壬水)", "큰 바다", "포용력이 크고 지혜롭습니다. 통찰력이 있고 야심이 있습니다."},
	{"계수(癸水)", "시냇물", "맑고 총명합니다. 감수성이 풍부하고 적응력이 좋습니다."},
}

// Meaning returns the character reading of a day stem
func (s Stem) Meaning() StemMeaning {
	if !s.Valid() {
		return StemMeaning{}
	}
	return stemMeanings[s]
}

// Hour bins: the Rat hour starts at 23:30 and every bin spans two hours
const (
	hourBinStartMinute = 23*60 + 30
	hourBinWidth       = 120
	minutesPerDay      = 24 * 60
)

// BranchForClock maps a local clock time to the branch of its two-hour bin
func BranchForClock(hour, minute int) Branch {
	m := hour*60 + minute
	return Branch(mod(m-hourBinStartMinute, minutesPerDay) / hourBinWidth)
}

// mod is the mathematical modulo, always in [0, n)
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
