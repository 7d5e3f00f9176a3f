package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/auditgov/auditdex/internal/domain/record"
	"github.com/auditgov/auditdex/internal/lexicon"
	"github.com/auditgov/auditdex/internal/normalizer"
	answeruc "github.com/auditgov/auditdex/internal/usecase/answer"
	healthuc "github.com/auditgov/auditdex/internal/usecase/health"
	searchuc "github.com/auditgov/auditdex/internal/usecase/search"
)

type corpusStub struct {
	records []record.Record
}

func (c *corpusStub) Records() []record.Record { return c.records }
func (c *corpusStub) Files() int               { return 1 }
func (c *corpusStub) Len() int                 { return len(c.records) }

type completerStub struct {
	text string
	err  error
}

func (c *completerStub) Complete(context.Context, string, string) (string, error) {
	return c.text, c.err
}

func testCorpus() *corpusStub {
	ts := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC).UnixMilli()
	text := "Reforma da UBS de Salvador"
	rec := record.New("cgu.csv:0", record.SourceCGU, "cgu.csv", nil,
		normalizer.Normalize(text), ts, record.Attrs{
			Title:   text,
			Summary: text,
			UF:      "BA",
		})
	return &corpusStub{records: []record.Record{rec}}
}

func newTestRouter(completer answeruc.Completer) http.Handler {
	log := zap.NewNop()
	corpus := testCorpus()
	searchSvc := searchuc.New(corpus, lexicon.Default(), log)
	answerSvc := answeruc.New(searchSvc, completer, log)
	healthSvc := healthuc.New(corpus, nil)

	srv := NewServer(searchSvc, answerSvc, healthSvc, log)
	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func TestHandleSearch(t *testing.T) {
	router := newTestRouter(&completerStub{})

	body := strings.NewReader(`{"query":"reforma salvador"}`)
	req := httptest.NewRequest("POST", "/v1/search", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var resp struct {
		CGU []struct {
			ID    string `json:"id"`
			Score int    `json:"score"`
		} `json:"cgu"`
		Context string `json:"context"`
		Diag    struct {
			Matched int `json:"matched"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.CGU) != 1 || resp.CGU[0].ID != "cgu.csv:0" {
		t.Errorf("cgu items = %+v", resp.CGU)
	}
	if !strings.Contains(resp.Context, "[ID: #1]") {
		t.Error("context missing record marker")
	}
	if resp.Diag.Matched != 1 {
		t.Errorf("matched = %d, want 1", resp.Diag.Matched)
	}
}

func TestHandleSearchEmptyQuery(t *testing.T) {
	router := newTestRouter(&completerStub{})

	req := httptest.NewRequest("POST", "/v1/search", strings.NewReader(`{"query":"  "}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	var errResp errorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if errResp.Code != codeEmptyQuery {
		t.Errorf("code = %q, want %q", errResp.Code, codeEmptyQuery)
	}
}

func TestHandleSearchInvalidBody(t *testing.T) {
	router := newTestRouter(&completerStub{})

	req := httptest.NewRequest("POST", "/v1/search", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestHandleFacets(t *testing.T) {
	router := newTestRouter(&completerStub{})

	req := httptest.NewRequest("GET", "/v1/facets?q=reforma", http.NoBody)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp facetsBody
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.UFs) != 1 || resp.UFs[0] != "BA" {
		t.Errorf("ufs = %v, want [BA]", resp.UFs)
	}
	if len(resp.Years) != 1 || resp.Years[0] != "2023" {
		t.Errorf("years = %v, want [2023]", resp.Years)
	}
}

func TestHandleFacetsShortQuery(t *testing.T) {
	router := newTestRouter(&completerStub{})

	req := httptest.NewRequest("GET", "/v1/facets?q=BA", http.NoBody)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp facetsBody
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.UFs) != 0 || len(resp.Years) != 0 {
		t.Errorf("short query facets = %v/%v, want empty", resp.UFs, resp.Years)
	}
}

func TestHandleAnswer(t *testing.T) {
	router := newTestRouter(&completerStub{text: "Resposta fundamentada [ID: #1]."})

	body := strings.NewReader(`{"query":"irregularidades na reforma da ubs de salvador"}`)
	req := httptest.NewRequest("POST", "/v1/answer", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	var resp struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.Contains(resp.Answer, "[ID: #1]") {
		t.Errorf("answer = %q", resp.Answer)
	}
}

func TestHandleAnswerNotConfigured(t *testing.T) {
	router := newTestRouter(nil)

	body := strings.NewReader(`{"query":"reforma salvador"}`)
	req := httptest.NewRequest("POST", "/v1/answer", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotImplemented {
		t.Errorf("status = %d, want 501", rr.Code)
	}
}

func TestHandleReport(t *testing.T) {
	router := newTestRouter(&completerStub{})

	body := strings.NewReader(`{"query":"reforma salvador","uf":"BA"}`)
	req := httptest.NewRequest("POST", "/v1/report", body)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rr.Body.String(), "Reforma da UBS de Salvador") {
		t.Error("report missing result row")
	}
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(&completerStub{})

	req := httptest.NewRequest("GET", "/healthz", http.NoBody)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var resp struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want ok", resp.Status)
	}
}

func TestHandleHealthEmptyCorpus(t *testing.T) {
	log := zap.NewNop()
	empty := &corpusStub{}
	searchSvc := searchuc.New(empty, lexicon.Default(), log)
	answerSvc := answeruc.New(searchSvc, nil, log)
	srv := NewServer(searchSvc, answerSvc, healthuc.New(empty, nil), log)

	r := chi.NewRouter()
	srv.Routes(r)

	req := httptest.NewRequest("GET", "/healthz", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rr.Code)
	}
}
