package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"saju-lab/saju"
)

// SubjectRecordVersion is the current stored subject schema
const SubjectRecordVersion = 2

var (
	// ErrUnrecognizedRecord is returned when a stored value matches no known shape
	ErrUnrecognizedRecord = errors.New("unrecognized subject record")

	// subjectNamespace scopes person IDs derived from birth data
	subjectNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("saju-lab/subjects"))
)

// PersonRecord is one person inside a stored subject record
type PersonRecord struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	BirthDate string    `json:"birth_date"`
	BirthTime string    `json:"birth_time,omitempty"`
	Gender    string    `json:"gender,omitempty"`
}

// Input converts the person to engine input
func (p PersonRecord) Input() saju.SubjectInput {
	return saju.SubjectInput{
		Name:      p.Name,
		BirthDate: p.BirthDate,
		BirthTime: p.BirthTime,
		Gender:    p.Gender,
	}
}

// SubjectRecord is the v2 stored shape
// Self holds a single user, Parent and Child a family pair
type SubjectRecord struct {
	Version int           `json:"version"`
	Self    *PersonRecord `json:"self,omitempty"`
	Parent  *PersonRecord `json:"parent,omitempty"`
	Child   *PersonRecord `json:"child,omitempty"`
}

// Primary returns the person used for single-subject fortunes
func (r SubjectRecord) Primary() (*PersonRecord, error) {
	switch {
	case r.Self != nil:
		return r.Self, nil
	case r.Parent != nil:
		return r.Parent, nil
	case r.Child != nil:
		return r.Child, nil
	}
	return nil, fmt.Errorf("record has no person: %w", saju.ErrMissingSecondSubject)
}

// Family returns the parent and child pair
func (r SubjectRecord) Family() (saju.FamilyInput, error) {
	if r.Parent == nil || r.Child == nil {
		return saju.FamilyInput{}, fmt.Errorf("record is not a family pair: %w", saju.ErrMissingSecondSubject)
	}
	return saju.FamilyInput{Parent: r.Parent.Input(), Child: r.Child.Input()}, nil
}

// personProbe accepts both snake_case and the older camelCase keys
type personProbe struct {
	Name           string `json:"name"`
	BirthDate      string `json:"birth_date"`
	BirthDateCamel string `json:"birthDate"`
	BirthTime      string `json:"birth_time"`
	BirthTimeCamel string `json:"birthTime"`
	Gender         string `json:"gender"`
}

func (p *personProbe) record() *PersonRecord {
	if p == nil {
		return nil
	}
	return newPersonRecord(p.Name, firstNonEmpty(p.BirthDate, p.BirthDateCamel), firstNonEmpty(p.BirthTime, p.BirthTimeCamel), p.Gender)
}

// recordProbe is the union of every shape that has been stored
type recordProbe struct {
	Version int          `json:"version"`
	Self    *personProbe `json:"self"`
	Parent  *personProbe `json:"parent"`
	Child   *personProbe `json:"child"`

	// v1 flat family
	ParentName      string `json:"parentName"`
	ParentBirthDate string `json:"parentBirthDate"`
	ParentBirthTime string `json:"parentBirthTime"`
	ChildName       string `json:"childName"`
	ChildBirthDate  string `json:"childBirthDate"`
	ChildBirthTime  string `json:"childBirthTime"`

	// single user
	personProbe
}

// NormalizeSubjectRecord reads any stored subject shape into the v2 record
func NormalizeSubjectRecord(raw json.RawMessage) (SubjectRecord, error) {
	var probe recordProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return SubjectRecord{}, fmt.Errorf("%w: %v", ErrUnrecognizedRecord, err)
	}
	if probe.Version > SubjectRecordVersion {
		return SubjectRecord{}, fmt.Errorf("%w: version %d is newer than %d", ErrUnrecognizedRecord, probe.Version, SubjectRecordVersion)
	}

	rec := SubjectRecord{Version: SubjectRecordVersion}
	switch {
	case probe.Self != nil || probe.Parent != nil || probe.Child != nil:
		rec.Self = probe.Self.record()
		rec.Parent = probe.Parent.record()
		rec.Child = probe.Child.record()
	case probe.ParentBirthDate != "" || probe.ChildBirthDate != "":
		if probe.ParentBirthDate != "" {
			rec.Parent = newPersonRecord(probe.ParentName, probe.ParentBirthDate, probe.ParentBirthTime, "")
		}
		if probe.ChildBirthDate != "" {
			rec.Child = newPersonRecord(probe.ChildName, probe.ChildBirthDate, probe.ChildBirthTime, "")
		}
	case probe.personProbe.BirthDate != "" || probe.personProbe.BirthDateCamel != "":
		rec.Self = probe.personProbe.record()
	default:
		return SubjectRecord{}, ErrUnrecognizedRecord
	}
	return rec, nil
}

// newPersonRecord trims the fields and derives the stable person ID
func newPersonRecord(name, birthDate, birthTime, gender string) *PersonRecord {
	p := &PersonRecord{
		Name:      strings.TrimSpace(name),
		BirthDate: strings.TrimSpace(birthDate),
		BirthTime: strings.TrimSpace(birthTime),
		Gender:    strings.TrimSpace(gender),
	}
	p.ID = uuid.NewSHA1(subjectNamespace, []byte(p.Name+"|"+p.BirthDate+"|"+p.BirthTime))
	return p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
