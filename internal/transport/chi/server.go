// Package chi exposes the search engine over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/auditgov/auditdex/internal/domain"
	"github.com/auditgov/auditdex/internal/domain/search/diag"
	"github.com/auditgov/auditdex/internal/domain/search/filters"
	"github.com/auditgov/auditdex/internal/domain/search/result"
	"github.com/auditgov/auditdex/internal/report"
	answeruc "github.com/auditgov/auditdex/internal/usecase/answer"
	healthuc "github.com/auditgov/auditdex/internal/usecase/health"
	searchuc "github.com/auditgov/auditdex/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// Server is the HTTP API server.
type Server struct {
	search        *searchuc.Service
	answer        *answeruc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	answer *answeruc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search: search,
		answer: answer,
		health: health,
		logger: logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, codeEmptyQuery),
		sentinelHandler(domain.ErrCorpusEmpty, http.StatusServiceUnavailable, codeCorpusEmpty),
		sentinelHandler(domain.ErrAnswerNotConfigured, http.StatusNotImplemented, codeAnswerNotConfigured),
		sentinelHandler(domain.ErrAnswerProviderError, http.StatusBadGateway, codeAnswerProviderError),
	}
	return s
}

// Routes mounts all API handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/search", s.handleSearch)
	r.Get("/v1/facets", s.handleFacets)
	r.Post("/v1/answer", s.handleAnswer)
	r.Post("/v1/report", s.handleReport)
	r.Get("/healthz", s.handleHealth)
}

type searchRequest struct {
	Query  string `json:"query"`
	UF     string `json:"uf,omitempty"`
	Year   string `json:"year,omitempty"`
	Source string `json:"source,omitempty"`
}

type resultItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	UF           string `json:"uf,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	Source       string `json:"source"`
	Link         string `json:"link"`
	Snippet      string `json:"snippet"`
	Score        int    `json:"score"`
	SourceFile   string `json:"source_file"`
}

type findingItem struct {
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
	Source      string   `json:"source"`
	Link        string   `json:"link,omitempty"`
}

type facetsBody struct {
	UFs   []string `json:"ufs"`
	Years []string `json:"years"`
}

type diagnosticsBody struct {
	NormalizedQuery string   `json:"normalized_query"`
	Mode            string   `json:"mode"`
	ExpandedTerms   []string `json:"expanded_terms"`
	FilesScanned    int      `json:"files_scanned"`
	RowsScanned     int      `json:"rows_scanned"`
	Matched         int      `json:"matched"`
	ElapsedMS       int64    `json:"elapsed_ms"`
	InferredUF      string   `json:"inferred_uf,omitempty"`
	InferredYear    string   `json:"inferred_year,omitempty"`
	ZeroResults     string   `json:"zero_results,omitempty"`
	Suggestion      string   `json:"suggestion,omitempty"`
}

type searchResponse struct {
	CGU      []resultItem    `json:"cgu"`
	TCU      []resultItem    `json:"tcu"`
	Context  string          `json:"context"`
	Facets   facetsBody      `json:"facets"`
	Findings []findingItem   `json:"findings"`
	Diag     diagnosticsBody `json:"diagnostics"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	res, err := s.search.Search(r.Context(), req.Query, filters.New(req.UF, req.Year, req.Source))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResultToBody(res))
}

func (s *Server) handleFacets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := filters.New(q.Get("uf"), q.Get("year"), q.Get("source"))

	fs, err := s.search.Facets(r.Context(), q.Get("q"), f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, facetsBody{
		UFs:   emptyIfNil(fs.UFs()),
		Years: emptyIfNil(fs.Years()),
	})
}

type answerRequest struct {
	Query   string           `json:"query"`
	History []historyMessage `json:"history,omitempty"`
	UF      string           `json:"uf,omitempty"`
	Year    string           `json:"year,omitempty"`
	Source  string           `json:"source,omitempty"`
}

type historyMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type answerResponse struct {
	Answer      string          `json:"answer"`
	SearchQuery string          `json:"search_query"`
	Context     string          `json:"context"`
	Diag        diagnosticsBody `json:"diagnostics"`
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	history := make([]answeruc.Message, len(req.History))
	for i, m := range req.History {
		history[i] = answeruc.Message{Role: m.Role, Content: m.Content}
	}

	resp, err := s.answer.Answer(r.Context(), answeruc.Request{
		Query:   req.Query,
		History: history,
		Filters: filters.New(req.UF, req.Year, req.Source),
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		Answer:      resp.Text,
		SearchQuery: resp.SearchQuery,
		Context:     resp.Context,
		Diag:        diagToBody(&resp.Diag),
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	f := filters.New(req.UF, req.Year, req.Source)
	res, err := s.search.Search(r.Context(), req.Query, f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	data := report.Data{
		Query:       req.Query,
		FilterDesc:  filterDesc(&f),
		GeneratedAt: time.Now(),
		Matched:     res.Diag.Matched,
		CGU:         report.FromItems(res.CGU),
		TCU:         report.FromItems(res.TCU),
		Findings:    res.Findings,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="dossie-auditoria.html"`)
	if err := report.Generate(w, data); err != nil {
		s.logger.Error("report generation failed", zap.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	rep := s.health.Check(r.Context())

	status := http.StatusOK
	if rep.Status == healthuc.Unhealthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": rep.Status,
		"checks": rep.Checks,
	})
}

func searchResultToBody(res *searchuc.Result) searchResponse {
	return searchResponse{
		CGU:     itemsToBody(res.CGU),
		TCU:     itemsToBody(res.TCU),
		Context: res.Context,
		Facets: facetsBody{
			UFs:   emptyIfNil(res.Facets.UFs()),
			Years: emptyIfNil(res.Facets.Years()),
		},
		Findings: findingsToBody(res.Findings),
		Diag:     diagToBody(&res.Diag),
	}
}

func itemsToBody(items []result.Item) []resultItem {
	out := make([]resultItem, len(items))
	for i := range items {
		out[i] = resultItem{
			ID:           items[i].ID(),
			Title:        items[i].Title(),
			Date:         items[i].Date(),
			UF:           items[i].UF(),
			Municipality: items[i].Municipality(),
			Source:       string(items[i].Source()),
			Link:         items[i].Link(),
			Snippet:      items[i].Snippet(),
			Score:        items[i].Score(),
			SourceFile:   items[i].SourceFile(),
		}
	}
	return out
}

func findingsToBody(fs []result.Finding) []findingItem {
	out := make([]findingItem, len(fs))
	for i, f := range fs {
		out[i] = findingItem{
			Kind:        string(f.Kind),
			Description: f.Description,
			Keywords:    f.Keywords,
			Source:      f.Source,
			Link:        f.Link,
		}
	}
	return out
}

func diagToBody(d *diag.Diagnostics) diagnosticsBody {
	body := diagnosticsBody{
		NormalizedQuery: d.NormalizedQuery,
		Mode:            string(d.Mode),
		ExpandedTerms:   emptyIfNil(d.ExpandedTerms),
		FilesScanned:    d.FilesScanned,
		RowsScanned:     d.RowsScanned,
		Matched:         d.Matched,
		ElapsedMS:       d.Elapsed.Milliseconds(),
		InferredUF:      d.InferredUF,
		InferredYear:    d.InferredYear,
	}
	if d.ZeroResults != nil {
		body.ZeroResults = d.ZeroResults.Message
		body.Suggestion = d.ZeroResults.Suggestion
	}
	return body
}

func filterDesc(f *filters.Filters) string {
	var desc string
	if f.HasUF() {
		desc = "UF=" + f.UF()
	}
	if f.HasYear() {
		if desc != "" {
			desc += ", "
		}
		desc += "Ano=" + f.Year()
	}
	if f.HasSource() {
		if desc != "" {
			desc += ", "
		}
		desc += "Fonte=" + string(f.Source())
	}
	return desc
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// handleDomainError maps domain sentinel errors to HTTP responses.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, safeDomainMessage(err, sentinel))
		return true
	}
}

// safeDomainMessage returns the error text for client display. Wrapped
// detail is kept because these errors never carry internals the caller
// should not see.
func safeDomainMessage(err, sentinel error) string {
	if err.Error() != "" {
		return err.Error()
	}
	return sentinel.Error()
}

// API error codes.
const (
	codeBadRequest          = "bad_request"
	codeEmptyQuery          = "empty_query"
	codeCorpusEmpty         = "corpus_empty"
	codeAnswerNotConfigured = "answer_not_configured"
	codeAnswerProviderError = "answer_provider_error"
	codeInternalError       = "internal_error"
	codeUnauthorized        = "unauthorized"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
