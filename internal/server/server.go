package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/dpa-navigator/internal/catalog"
	"github.com/iwvelando/dpa-navigator/internal/directory"
	"github.com/iwvelando/dpa-navigator/internal/navigator"
	"github.com/iwvelando/dpa-navigator/internal/profile"
	"github.com/iwvelando/dpa-navigator/internal/provider"
	"github.com/iwvelando/dpa-navigator/pkg/constants"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

type handler struct {
	logger      *zap.Logger
	engine      *navigator.Engine
	maxBodySize int64
	version     string
}

// NewHandler constructs the HTTP handler that serves the recommendation API.
func NewHandler(logger *zap.Logger, engine *navigator.Engine, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = navigator.New(logger, nil, navigator.Options{})
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, engine: engine, maxBodySize: maxBodySize, version: trimmedVersion}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/programs", instrument("programs", h.handlePrograms))
	mux.HandleFunc("/api/counties", instrument("counties", h.handleCounties))
	mux.HandleFunc("/api/options", instrument("options", h.handleOptions))
	mux.HandleFunc("/api/recommend", instrument("recommend", h.handleRecommend))
	mux.HandleFunc("/api/profile", instrument("profile", h.handleProfileUpdate))
	mux.HandleFunc("/api/combinations/validate", instrument("combinations", h.handleValidateCombination))
	mux.HandleFunc("/api/lenders", instrument("lenders", h.handleLenders))
	mux.HandleFunc("/api/realtors", instrument("realtors", h.handleRealtors))
	mux.HandleFunc("/api/credit", instrument("credit", h.handleCredit))
	mux.HandleFunc("/api/version", instrument("version", h.handleVersion))
	mux.Handle("/metrics", promhttp.Handler())

	return withRequestID(mux)
}

// withRequestID assigns a correlation id to requests that arrive without one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.New().String()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

type programsResponse struct {
	Programs  []catalog.Program `json:"programs"`
	Conflicts []catalog.Pair    `json:"conflicts"`
}

type profileUpdateResponse struct {
	Profile        profile.Profile          `json:"profile"`
	Recommendation navigator.Recommendation `json:"recommendation"`
}

type combinationRequest struct {
	ProgramIDs []string `json:"programIds"`
}

type combinationResponse struct {
	Valid     bool           `json:"valid"`
	Conflicts []catalog.Pair `json:"conflicts"`
	Unknown   []string       `json:"unknown,omitempty"`
}

type lendersResponse struct {
	Programs []string              `json:"programs"`
	Lenders  []directory.Lender    `json:"lenders"`
	Match    *provider.LenderMatch `json:"match,omitempty"`
}

type realtorsResponse struct {
	County   string              `json:"county"`
	Realtors []directory.Realtor `json:"realtors"`
}

func (h *handler) handlePrograms(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	cat := h.engine.Catalog()
	conflicts := cat.Conflicts().Pairs()
	if conflicts == nil {
		conflicts = []catalog.Pair{}
	}
	h.writeJSON(w, http.StatusOK, programsResponse{Programs: cat.Programs(), Conflicts: conflicts})
}

func (h *handler) handleCounties(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string][]string{
		"counties": catalog.ColoradoCounties(),
	})
}

type optionsResponse struct {
	Counties       []string         `json:"counties"`
	CreditBrackets []profile.Option `json:"creditBrackets"`
	Occupations    []profile.Option `json:"occupations"`
	HouseholdSizes []profile.Option `json:"householdSizes"`
}

func (h *handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, optionsResponse{
		Counties:       catalog.ColoradoCounties(),
		CreditBrackets: profile.CreditOptions(),
		Occupations:    profile.OccupationOptions(),
		HouseholdSizes: profile.HouseholdSizeOptions(),
	})
}

func (h *handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRecommend"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	body, ok := h.readBody(w, r, profileSchema, op)
	if !ok {
		return
	}

	var p profile.Profile
	if err := json.Unmarshal(body, &p); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode profile: %v", err), op)
		return
	}

	rec, err := h.engine.Recommend(r.Context(), p)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to compute recommendation: %v", err), op)
		return
	}
	observeRecommendation(rec.Complete, len(rec.Eligible))

	h.logger.Info("recommendation computed",
		zap.String("op", op),
		zap.String("requestId", r.Header.Get(RequestIDHeader)),
		zap.Bool("complete", rec.Complete),
		zap.Int("eligible", len(rec.Eligible)),
		zap.Int("packages", len(rec.Packages)),
		zap.Duration("duration", time.Since(start)),
	)

	h.writeJSON(w, http.StatusOK, rec)
}

func (h *handler) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleProfileUpdate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	body, ok := h.readBody(w, r, profileUpdateSchema, op)
	if !ok {
		return
	}

	var payload struct {
		Profile json.RawMessage `json:"profile"`
		Update  json.RawMessage `json:"update"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode payload: %v", err), op)
		return
	}

	current := profile.New()
	if len(payload.Profile) > 0 {
		if err := validateDocument(profileSchema, payload.Profile); err != nil {
			h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("profile: %v", err), op)
			return
		}
		if err := json.Unmarshal(payload.Profile, &current); err != nil {
			h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode profile: %v", err), op)
			return
		}
	}

	if err := validateDocument(profileSchema, payload.Update); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("update: %v", err), op)
		return
	}
	update, err := profile.UpdateFromJSON(payload.Update)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	next, rec, err := h.engine.Update(r.Context(), current, update)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to compute recommendation: %v", err), op)
		return
	}
	observeRecommendation(rec.Complete, len(rec.Eligible))

	h.writeJSON(w, http.StatusOK, profileUpdateResponse{Profile: next, Recommendation: rec})
}

func (h *handler) handleValidateCombination(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleValidateCombination"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	body, ok := h.readBody(w, r, combinationSchema, op)
	if !ok {
		return
	}

	var req combinationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	cat := h.engine.Catalog()
	conflicts := cat.Conflicts()
	resp := combinationResponse{
		Valid:     h.engine.IsValidCombination(req.ProgramIDs),
		Conflicts: []catalog.Pair{},
	}
	for i := 0; i < len(req.ProgramIDs); i++ {
		if _, known := cat.Lookup(req.ProgramIDs[i]); !known {
			resp.Unknown = append(resp.Unknown, req.ProgramIDs[i])
		}
		for j := i + 1; j < len(req.ProgramIDs); j++ {
			if conflicts.Conflicts(req.ProgramIDs[i], req.ProgramIDs[j]) {
				resp.Conflicts = append(resp.Conflicts, catalog.Pair{req.ProgramIDs[i], req.ProgramIDs[j]})
			}
		}
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleLenders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	ids := splitList(r.URL.Query().Get("programs"))
	resp := lendersResponse{
		Programs: ids,
		Lenders:  h.engine.MatchLenders(ids),
	}
	if len(ids) > 0 {
		match := provider.Summarize(resp.Lenders)
		resp.Match = &match
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleRealtors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	county := strings.TrimSpace(r.URL.Query().Get("county"))
	if canonical, ok := catalog.CanonicalCounty(county); ok {
		county = canonical
	}
	h.writeJSON(w, http.StatusOK, realtorsResponse{
		County:   county,
		Realtors: h.engine.MatchRealtorsByCounty(county),
	})
}

func (h *handler) handleCredit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	bracket, _ := profile.ParseCreditBracket(r.URL.Query().Get("bracket"))
	h.writeJSON(w, http.StatusOK, h.engine.AssessCreditReadiness(bracket))
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// readBody reads a size-limited request body and validates it against
// schema. On failure the error response has been written.
func (h *handler) readBody(w http.ResponseWriter, r *http.Request, schema *gojsonschema.Schema, op string) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return nil, false
		}
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return nil, false
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, "request body is empty", op)
		return nil, false
	}

	if err := validateDocument(schema, body); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return nil, false
	}
	return body, true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.String("requestId", r.Header.Get(RequestIDHeader)),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func splitList(raw string) []string {
	ids := []string{}
	for _, part := range strings.Split(raw, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
