package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saju-lab/internal/apiversion"
)

// newTestAPI returns a server pinned to 2026-10-19 over a temp sqlite store
func newTestAPI(t *testing.T, limiter *ipRateLimiter) (*API, http.Handler) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	api := NewAPI(newTestStorage(t), logger, NewMetrics(), limiter)
	api.now = func() time.Time { return time.Date(2026, time.October, 19, 9, 0, 0, 0, time.Local) }
	return api, api.Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	}
	return rec, decoded
}

// =============================================================================
// FORTUNE ENDPOINTS
// =============================================================================

func TestAPI_Pillars(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, body := do(t, h, "GET", "/api/pillars?birth_date=1990-01-15&birth_time=unknown", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{"경오", "병인", "경술", ""}, body["names"])
	assert.Equal(t, "말", body["zodiac"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestAPI_Profile(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, body := do(t, h, "GET", "/api/profile?birth_date=1990-01-15", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "화", body["dominant"])
	assert.Equal(t, "수", body["deficient"])
	assert.Equal(t, "금", body["core_element"])
}

func TestAPI_Relation(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, body := do(t, h, "GET", "/api/relation?subject=water&reference=금", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "generated_by", body["class"])
	assert.EqualValues(t, 95, body["score"])

	rec, _ = do(t, h, "GET", "/api/relation?subject=aether&reference=금", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_DailyDefaultsToToday(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, body := do(t, h, "GET", "/api/daily?birth_date=1990-01-15&birth_time=unknown", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-10-19", body["evaluation_date"])
	assert.Equal(t, "daily", body["mode"])

	relation := body["relation"].(map[string]any)
	assert.Equal(t, "same_element", relation["class"])

	// an explicit date gives the same result as the pinned clock
	rec2, body2 := do(t, h, "GET", "/api/daily?birth_date=1990-01-15&birth_time=unknown&date=2026-10-19", "")
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Equal(t, body, body2)
}

func TestAPI_InputErrors(t *testing.T) {
	_, h := newTestAPI(t, nil)

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"missing birth date", "/api/daily", http.StatusBadRequest},
		{"bad birth date", "/api/daily?birth_date=1990-13-01", http.StatusBadRequest},
		{"bad birth time", "/api/daily?birth_date=1990-01-15&birth_time=25:00", http.StatusBadRequest},
		{"bad eval date", "/api/daily?birth_date=1990-01-15&date=tomorrow", http.StatusBadRequest},
		{"family without child", "/api/family?parent_birth_date=1960-03-03", http.StatusBadRequest},
		{"bad year", "/api/annual?birth_date=1990-01-15&year=next", http.StatusBadRequest},
		{"bad month", "/api/calendar?birth_date=1990-01-15&month=13", http.StatusBadRequest},
		{"compatibility without b", "/api/compatibility?a_birth_date=1990-01-15", http.StatusBadRequest},
		{"unknown route", "/api/horoscope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := do(t, h, "GET", tt.target, "")
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestAPI_Family(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, body := do(t, h, "GET", "/api/family?parent_birth_date=1960-03-03&child_birth_date=1990-01-15&date=2026-10-19&parent_name=엄마&child_name=하늘", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "family", body["mode"])

	family := body["family"].(map[string]any)
	assert.Equal(t, "엄마", family["parent"].(map[string]any)["name"])
	assert.Equal(t, "하늘", family["child"].(map[string]any)["name"])
	assert.Contains(t, body, "hexagon")
	assert.Contains(t, body, "story")
}

func TestAPI_Annual(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, body := do(t, h, "GET", "/api/annual?birth_date=1990-01-15&gender=female", "")
	require.Equal(t, http.StatusOK, rec.Code)

	annual := body["annual"].(map[string]any)
	assert.EqualValues(t, 2026, annual["forecast_year"])
	assert.EqualValues(t, 4, annual["level"])
	assert.Len(t, body["monthly"], 12)
}

func TestAPI_CalendarAndCompatibility(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, body := do(t, h, "GET", "/api/calendar?birth_date=1990-01-15&year=2024&month=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["days"], 29)

	rec, body = do(t, h, "GET", "/api/compatibility?a_birth_date=1990-01-15&b_birth_date=1990-01-15", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "길한 인연", body["level"])
}

// =============================================================================
// STORE AND SUBJECT ENDPOINTS
// =============================================================================

func TestAPI_StoreRoundTrip(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, _ := do(t, h, "GET", "/api/store/fortuneUserData", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "null", rec.Body.String())

	rec, _ = do(t, h, "PUT", "/api/store/fortuneUserData", `{"birthDate":"1990-01-15"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(t, h, "GET", "/api/store/fortuneUserData", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"birthDate":"1990-01-15"}`, rec.Body.String())

	rec, _ = do(t, h, "PUT", "/api/store/fortuneUserData", `{"birthDate":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_Subjects(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, _ := do(t, h, "GET", "/api/subjects/home", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// legacy flat family shape is stored normalized
	rec, body := do(t, h, "PUT", "/api/subjects/home", `{"parentName":"엄마","parentBirthDate":"1960-03-03","childName":"하늘","childBirthDate":"1990-01-15"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, SubjectRecordVersion, body["version"])

	rec, body = do(t, h, "GET", "/api/subjects/home", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "하늘", body["child"].(map[string]any)["name"])

	rec, body = do(t, h, "GET", "/api/subjects/home/family?date=2026-10-19", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "family", body["mode"])

	rec, body = do(t, h, "GET", "/api/subjects/home/daily", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "daily", body["mode"])

	// a single-user record has no family pair
	rec, _ = do(t, h, "PUT", "/api/subjects/me", `{"name":"지민","birthDate":"1990-01-15"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, h, "GET", "/api/subjects/me/family", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = do(t, h, "PUT", "/api/subjects/junk", `{"note":"nothing"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// =============================================================================
// MIDDLEWARE AND INFO ENDPOINTS
// =============================================================================

func TestAPI_CORSPreflight(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, _ := do(t, h, "OPTIONS", "/api/daily", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAPI_RateLimit(t *testing.T) {
	_, h := newTestAPI(t, newIPRateLimiter(60, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec, _ := do(t, h, "GET", "/health", "")
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestAPI_VersionHealthMetrics(t *testing.T) {
	_, h := newTestAPI(t, nil)

	rec, body := do(t, h, "GET", "/api/version", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, apiversion.Current.String(), body["api"])

	rec, body = do(t, h, "GET", "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])

	do(t, h, "GET", "/api/daily?birth_date=1990-01-15&date=2026-10-19", "")
	rec, _ = do(t, h, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `saju_fortunes_computed_total{mode="daily"} 1`)
	assert.Contains(t, rec.Body.String(), `saju_relations_total{class="same_element"} 1`)
	assert.Contains(t, rec.Body.String(), `route="/api/daily"`)
}

func TestAPI_MetricsCountUnroutedRequests(t *testing.T) {
	api, h := newTestAPI(t, newIPRateLimiter(60, 3))

	do(t, h, "GET", "/api/nope", "")
	do(t, h, "OPTIONS", "/api/daily", "")
	do(t, h, "GET", "/health", "")
	do(t, h, "GET", "/health", "")
	rec, _ := do(t, h, "GET", "/health", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec, _ = do(t, api.metrics.Handler(), "GET", "/metrics", "")
	body := rec.Body.String()
	assert.Contains(t, body, `saju_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, `saju_http_requests_total{method="OPTIONS",route="unmatched",status="200"} 1`)
	assert.Contains(t, body, `saju_http_requests_total{method="GET",route="/health",status="200"} 2`)
	assert.Contains(t, body, `saju_http_requests_total{method="GET",route="unmatched",status="429"} 1`)
}
