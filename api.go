package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"saju-lab/internal/apiversion"
	"saju-lab/saju"
)

// errBadParameter marks a malformed query parameter
var errBadParameter = errors.New("bad parameter")

// maxBodyBytes bounds PUT bodies
const maxBodyBytes = 64 << 10

type API struct {
	store   Store
	logger  *logrus.Logger
	metrics *Metrics
	limiter *ipRateLimiter
	router  *mux.Router

	// now is read once per request to fix the evaluation date
	now func() time.Time
}

// NewAPI creates a new API server
func NewAPI(store Store, logger *logrus.Logger, metrics *Metrics, limiter *ipRateLimiter) *API {
	api := &API{
		store:   store,
		logger:  logger,
		metrics: metrics,
		limiter: limiter,
		router:  mux.NewRouter(),
		now:     time.Now,
	}

	api.setupRoutes()
	return api
}

func (api *API) setupRoutes() {
	api.router.Use(tagRoute)

	// Fortune computations
	api.router.HandleFunc("/api/pillars", api.getPillars).Methods("GET")
	api.router.HandleFunc("/api/profile", api.getProfile).Methods("GET")
	api.router.HandleFunc("/api/relation", api.getRelation).Methods("GET")
	api.router.HandleFunc("/api/daily", api.getDaily).Methods("GET")
	api.router.HandleFunc("/api/family", api.getFamily).Methods("GET")
	api.router.HandleFunc("/api/annual", api.getAnnual).Methods("GET")
	api.router.HandleFunc("/api/calendar", api.getCalendar).Methods("GET")
	api.router.HandleFunc("/api/compatibility", api.getCompatibility).Methods("GET")

	// Key-value store
	api.router.HandleFunc("/api/store/{key}", api.getStoreValue).Methods("GET")
	api.router.HandleFunc("/api/store/{key}", api.putStoreValue).Methods("PUT")

	// Stored subjects
	api.router.HandleFunc("/api/subjects/{key}", api.getSubject).Methods("GET")
	api.router.HandleFunc("/api/subjects/{key}", api.putSubject).Methods("PUT")
	api.router.HandleFunc("/api/subjects/{key}/daily", api.getSubjectDaily).Methods("GET")
	api.router.HandleFunc("/api/subjects/{key}/family", api.getSubjectFamily).Methods("GET")

	api.router.HandleFunc("/api/version", api.getVersion).Methods("GET")
	api.router.HandleFunc("/health", api.healthCheck).Methods("GET")
	api.router.Handle("/metrics", api.metrics.Handler()).Methods("GET")

	api.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})
}

// Handler returns the router wrapped in the outer middleware chain
func (api *API) Handler() http.Handler {
	return withRequestID(withLogging(api.logger, api.metrics,
		withCORS(withRateLimit(api.limiter, api.router))))
}

// =============================================================================
// FORTUNE HANDLERS
// =============================================================================

type pillarsResponse struct {
	Pillars saju.FourPillars `json:"pillars"`
	Names   [4]string        `json:"names"`
	Hanja   [4]string        `json:"hanja"`
	Zodiac  string           `json:"zodiac"`
}

// getPillars returns the four pillars of a birth date and time
func (api *API) getPillars(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fp, err := saju.ComputePillars(q.Get("birth_date"), q.Get("birth_time"))
	if err != nil {
		api.respondErr(w, r, err)
		return
	}

	resp := pillarsResponse{Pillars: fp, Zodiac: fp.Zodiac()}
	for i, p := range fp.Pillars() {
		if p.Known() {
			resp.Names[i] = p.Name()
			resp.Hanja[i] = p.Hanja()
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// getProfile returns the five-element profile of a birth date and time
func (api *API) getProfile(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fp, err := saju.ComputePillars(q.Get("birth_date"), q.Get("birth_time"))
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, saju.ComputeElementProfile(fp))
}

type relationResponse struct {
	Subject   saju.Element       `json:"subject"`
	Reference saju.Element       `json:"reference"`
	Class     saju.RelationClass `json:"class"`
	Label     string             `json:"label"`
	Score     int                `json:"score"`
	Band      saju.ScoreBand     `json:"band"`
}

// getRelation classifies two element names
func (api *API) getRelation(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	subject, err := saju.ParseElement(q.Get("subject"))
	if err != nil {
		api.respondErr(w, r, fmt.Errorf("subject: %w: %v", errBadParameter, err))
		return
	}
	reference, err := saju.ParseElement(q.Get("reference"))
	if err != nil {
		api.respondErr(w, r, fmt.Errorf("reference: %w: %v", errBadParameter, err))
		return
	}

	class, score := saju.ClassifyRelation(subject, reference)
	respondJSON(w, http.StatusOK, relationResponse{
		Subject:   subject,
		Reference: reference,
		Class:     class,
		Label:     class.Label(),
		Score:     score,
		Band:      class.Band(),
	})
}

// getDaily computes the daily fortune of one subject
func (api *API) getDaily(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	eval, err := api.evalDate(q.Get("date"))
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	result, err := saju.ComputeDailyFortune(q.Get("birth_date"), q.Get("birth_time"), eval)
	api.respondFortune(w, r, result, err)
}

// getFamily computes the parent and child fortune
func (api *API) getFamily(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	eval, err := api.evalDate(q.Get("date"))
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	result, err := saju.ComputeFamily(saju.FamilyInput{
		Parent: saju.SubjectInput{
			Name:      q.Get("parent_name"),
			BirthDate: q.Get("parent_birth_date"),
			BirthTime: q.Get("parent_birth_time"),
		},
		Child: saju.SubjectInput{
			Name:      q.Get("child_name"),
			BirthDate: q.Get("child_birth_date"),
			BirthTime: q.Get("child_birth_time"),
		},
	}, eval)
	api.respondFortune(w, r, result, err)
}

// getAnnual computes the forecast for a year, the current year by default
func (api *API) getAnnual(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	year, err := intParam(q.Get("year"), api.now().Year(), "year")
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	result, err := saju.ComputeAnnualFortune(q.Get("birth_date"), q.Get("birth_time"), year, saju.ParseGender(q.Get("gender")))
	api.respondFortune(w, r, result, err)
}

// getCalendar labels every day of a month, the current month by default
func (api *API) getCalendar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := api.now()
	year, err := intParam(q.Get("year"), now.Year(), "year")
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	month, err := intParam(q.Get("month"), int(now.Month()), "month")
	if err != nil {
		api.respondErr(w, r, err)
		return
	}

	cal, err := saju.ComputeMonthCalendar(q.Get("birth_date"), q.Get("birth_time"), year, time.Month(month))
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	api.metrics.observeFortune("calendar", "")
	respondJSON(w, http.StatusOK, cal)
}

// getCompatibility rates two people against each other
func (api *API) getCompatibility(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := saju.ComputeCompatibility(
		saju.SubjectInput{Name: q.Get("a_name"), BirthDate: q.Get("a_birth_date"), BirthTime: q.Get("a_birth_time")},
		saju.SubjectInput{Name: q.Get("b_name"), BirthDate: q.Get("b_birth_date"), BirthTime: q.Get("b_birth_time")},
	)
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	api.metrics.observeFortune("compatibility", c.Relation.Class.String())
	respondJSON(w, http.StatusOK, c)
}

// =============================================================================
// STORE HANDLERS
// =============================================================================

// getStoreValue returns the raw value under key, or null when absent
func (api *API) getStoreValue(w http.ResponseWriter, r *http.Request) {
	value, err := api.store.Get(r.Context(), mux.Vars(r)["key"])
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	if value == nil {
		value = json.RawMessage("null")
	}
	respondJSON(w, http.StatusOK, value)
}

// putStoreValue stores the request body under key
func (api *API) putStoreValue(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	if err := api.store.Set(r.Context(), mux.Vars(r)["key"], body); err != nil {
		api.respondErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getSubject returns the stored subject normalized to the current schema
func (api *API) getSubject(w http.ResponseWriter, r *http.Request) {
	rec, ok := api.loadSubject(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// putSubject normalizes the body and stores it as a current record
func (api *API) putSubject(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	rec, err := NormalizeSubjectRecord(body)
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	if err := api.store.Set(r.Context(), subjectKey(mux.Vars(r)["key"]), data); err != nil {
		api.respondErr(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

// getSubjectDaily computes the daily fortune of a stored subject
func (api *API) getSubjectDaily(w http.ResponseWriter, r *http.Request) {
	eval, err := api.evalDate(r.URL.Query().Get("date"))
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	rec, ok := api.loadSubject(w, r)
	if !ok {
		return
	}
	person, err := rec.Primary()
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	result, err := saju.ComputeDailyFortune(person.BirthDate, person.BirthTime, eval)
	api.respondFortune(w, r, result, err)
}

// getSubjectFamily computes the family fortune of a stored pair
func (api *API) getSubjectFamily(w http.ResponseWriter, r *http.Request) {
	eval, err := api.evalDate(r.URL.Query().Get("date"))
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	rec, ok := api.loadSubject(w, r)
	if !ok {
		return
	}
	in, err := rec.Family()
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	result, err := saju.ComputeFamily(in, eval)
	api.respondFortune(w, r, result, err)
}

// loadSubject reads and normalizes the subject under the route key
// Writes the response itself and returns false when there is nothing to use
func (api *API) loadSubject(w http.ResponseWriter, r *http.Request) (SubjectRecord, bool) {
	raw, err := api.store.Get(r.Context(), subjectKey(mux.Vars(r)["key"]))
	if err != nil {
		api.respondErr(w, r, err)
		return SubjectRecord{}, false
	}
	if raw == nil {
		respondError(w, http.StatusNotFound, "subject not found")
		return SubjectRecord{}, false
	}
	rec, err := NormalizeSubjectRecord(raw)
	if err != nil {
		api.respondErr(w, r, err)
		return SubjectRecord{}, false
	}
	return rec, true
}

func subjectKey(key string) string { return "subject:" + key }

// =============================================================================
// INFO HANDLERS
// =============================================================================

// getVersion returns version information
func (api *API) getVersion(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, GetVersionInfo())
}

// healthCheck returns the health status
func (api *API) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": apiversion.Current.String(),
	})
}

// =============================================================================
// HELPERS
// =============================================================================

// evalDate parses the date parameter, defaulting to today in server local time
func (api *API) evalDate(s string) (saju.Date, error) {
	if strings.TrimSpace(s) == "" {
		return saju.DateOf(api.now()), nil
	}
	d, err := saju.ParseDate(s)
	if err != nil {
		return saju.Date{}, &saju.InputError{Field: "date", Value: s, Err: saju.ErrInvalidDateInput}
	}
	return d, nil
}

func intParam(s string, def int, name string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, s, errBadParameter)
	}
	return v, nil
}

func readBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w: %v", errBadParameter, err)
	}
	if !json.Valid(body) {
		return nil, ErrInvalidValue
	}
	return body, nil
}

func (api *API) respondFortune(w http.ResponseWriter, r *http.Request, result saju.FortuneResult, err error) {
	if err != nil {
		api.respondErr(w, r, err)
		return
	}
	api.metrics.observeFortune(string(result.Mode), result.Relation.Class.String())
	respondJSON(w, http.StatusOK, result)
}

// respondErr maps an error to its HTTP status
func (api *API) respondErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, saju.ErrInvalidDateInput),
		errors.Is(err, saju.ErrMissingSecondSubject),
		errors.Is(err, errBadParameter),
		errors.Is(err, ErrInvalidValue),
		errors.Is(err, ErrUnrecognizedRecord):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		api.logger.WithFields(logrus.Fields{
			"request_id": requestIDFrom(r.Context()),
			"path":       r.URL.Path,
		}).WithError(err).Error("internal error")
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// Helper functions for JSON responses
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
