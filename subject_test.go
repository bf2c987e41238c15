package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saju-lab/saju"
)

func TestNormalizeSubjectRecord_Shapes(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantSelf   string
		wantParent string
		wantChild  string
	}{
		{
			name:     "single user",
			raw:      `{"name":"지민","birthDate":"1990-01-15","birthTime":"10:30","gender":"female"}`,
			wantSelf: "1990-01-15",
		},
		{
			name:       "v1 flat family",
			raw:        `{"parentName":"엄마","parentBirthDate":"1985-03-02","parentBirthTime":"","childName":"하늘","childBirthDate":"2015-07-20","childBirthTime":"unknown"}`,
			wantParent: "1985-03-02",
			wantChild:  "2015-07-20",
		},
		{
			name:       "nested family without version",
			raw:        `{"parent":{"name":"엄마","birthDate":"1985-03-02"},"child":{"name":"하늘","birthDate":"2015-07-20"}}`,
			wantParent: "1985-03-02",
			wantChild:  "2015-07-20",
		},
		{
			name:       "v2",
			raw:        `{"version":2,"parent":{"birth_date":"1985-03-02"},"child":{"birth_date":"2015-07-20","birth_time":"08:00"}}`,
			wantParent: "1985-03-02",
			wantChild:  "2015-07-20",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NormalizeSubjectRecord(json.RawMessage(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, SubjectRecordVersion, rec.Version)

			check := func(p *PersonRecord, want string) {
				if want == "" {
					assert.Nil(t, p)
					return
				}
				require.NotNil(t, p)
				assert.Equal(t, want, p.BirthDate)
				assert.NotZero(t, p.ID)
			}
			check(rec.Self, tt.wantSelf)
			check(rec.Parent, tt.wantParent)
			check(rec.Child, tt.wantChild)
		})
	}
}

func TestNormalizeSubjectRecord_Idempotent(t *testing.T) {
	rec, err := NormalizeSubjectRecord(json.RawMessage(`{"parentName":"엄마","parentBirthDate":"1985-03-02","childName":"하늘","childBirthDate":"2015-07-20"}`))
	require.NoError(t, err)

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	again, err := NormalizeSubjectRecord(data)
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}

func TestNormalizeSubjectRecord_StableIDs(t *testing.T) {
	a, err := NormalizeSubjectRecord(json.RawMessage(`{"name":"지민","birthDate":"1990-01-15"}`))
	require.NoError(t, err)
	b, err := NormalizeSubjectRecord(json.RawMessage(`{"version":2,"self":{"name":"지민","birth_date":"1990-01-15"}}`))
	require.NoError(t, err)
	c, err := NormalizeSubjectRecord(json.RawMessage(`{"name":"지민","birthDate":"1990-01-16"}`))
	require.NoError(t, err)

	assert.Equal(t, a.Self.ID, b.Self.ID)
	assert.NotEqual(t, a.Self.ID, c.Self.ID)
}

func TestNormalizeSubjectRecord_Rejects(t *testing.T) {
	for _, raw := range []string{
		`{}`,
		`[1,2]`,
		`"fortune"`,
		`{"version":3,"self":{"birth_date":"1990-01-15"}}`,
		`{"note":"nothing useful"}`,
	} {
		_, err := NormalizeSubjectRecord(json.RawMessage(raw))
		assert.ErrorIs(t, err, ErrUnrecognizedRecord, raw)
	}
}

func TestSubjectRecord_Accessors(t *testing.T) {
	single, err := NormalizeSubjectRecord(json.RawMessage(`{"birthDate":"1990-01-15"}`))
	require.NoError(t, err)

	p, err := single.Primary()
	require.NoError(t, err)
	assert.Equal(t, "1990-01-15", p.BirthDate)

	_, err = single.Family()
	assert.True(t, errors.Is(err, saju.ErrMissingSecondSubject))

	family, err := NormalizeSubjectRecord(json.RawMessage(`{"parentBirthDate":"1985-03-02","childBirthDate":"2015-07-20"}`))
	require.NoError(t, err)
	in, err := family.Family()
	require.NoError(t, err)
	assert.Equal(t, "1985-03-02", in.Parent.BirthDate)
	assert.Equal(t, "2015-07-20", in.Child.BirthDate)

	p, err = family.Primary()
	require.NoError(t, err)
	assert.Equal(t, "1985-03-02", p.BirthDate, "a family record falls back to the parent")

	_, err = SubjectRecord{Version: SubjectRecordVersion}.Primary()
	assert.ErrorIs(t, err, saju.ErrMissingSecondSubject)
}
