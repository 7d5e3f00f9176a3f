// Package answer composes grounded natural-language answers: it reuses the
// previous conversation turn for follow-up questions, runs the corpus
// search, and hands the ranked context to the completion provider.
package answer

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/auditgov/auditdex/internal/domain"
	"github.com/auditgov/auditdex/internal/domain/search/diag"
	"github.com/auditgov/auditdex/internal/domain/search/filters"
	"github.com/auditgov/auditdex/internal/normalizer"
)

// continuationMaxWords marks short follow-ups ("e em 2023?") that carry no
// topic of their own.
const continuationMaxWords = 5

// continuationTriggers are openings that refer back to the previous turn.
var continuationTriggers = []string{
	"resuma", "resumir", "continuar", "continue", "explique", "detalhe",
	"listar", "quais", "e o", "sobre o que", "disso", "analise", "analisar",
	"descreva", "comente", "fale sobre",
}

const systemInstruction = `Você é um auditor sênior especializado em controle externo e fiscalização de recursos públicos da saúde. Responda exclusivamente com base no contexto de busca fornecido. Cite os registros pelo marcador [ID: #n]. Se o contexto não sustentar a resposta, diga isso claramente. Nunca invente números, datas ou conclusões.`

// Message is one prior conversation turn.
type Message struct {
	Role    string
	Content string
}

// Request carries the question, the conversation history, and the active
// filters.
type Request struct {
	Query   string
	History []Message
	Filters filters.Filters
}

// Response carries the generated answer together with the grounding
// material that produced it.
type Response struct {
	Text        string
	Context     string
	SearchQuery string
	Diag        diag.Diagnostics
}

// Service composes answers over the search engine.
type Service struct {
	searcher  Searcher
	completer Completer
	log       *zap.Logger
}

// New creates the answer service. completer may be nil when no provider is
// configured; Answer then fails with ErrAnswerNotConfigured.
func New(searcher Searcher, completer Completer, log *zap.Logger) *Service {
	return &Service{searcher: searcher, completer: completer, log: log}
}

// Answer resolves follow-up references, searches the corpus, and generates
// the grounded answer.
func (s *Service) Answer(ctx context.Context, req Request) (*Response, error) {
	if s.completer == nil {
		return nil, domain.ErrAnswerNotConfigured
	}
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	searchQuery := query
	if prev := lastUserMessage(req.History); prev != "" && isContinuation(query) {
		searchQuery = prev + " " + query
		s.log.Debug("follow-up merged with previous turn",
			zap.String("query", query),
			zap.String("search_query", searchQuery),
		)
	}

	res, err := s.searcher.Search(ctx, searchQuery, req.Filters)
	if err != nil {
		return nil, fmt.Errorf("grounding search: %w", err)
	}

	prompt := buildPrompt(query, &req.Filters, res.Context)
	text, err := s.completer.Complete(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, fmt.Errorf("completion: %w", err)
	}

	return &Response{
		Text:        text,
		Context:     res.Context,
		SearchQuery: searchQuery,
		Diag:        res.Diag,
	}, nil
}

// isContinuation reports whether the question depends on the previous turn:
// either it opens with a back-reference trigger or it is too short to carry
// its own topic.
func isContinuation(query string) bool {
	norm := normalizer.Normalize(query)
	for _, trig := range continuationTriggers {
		if norm == trig || strings.HasPrefix(norm, trig+" ") {
			return true
		}
	}
	return len(strings.Fields(norm)) < continuationMaxWords
}

func lastUserMessage(history []Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if strings.EqualFold(history[i].Role, "user") {
			return strings.TrimSpace(history[i].Content)
		}
	}
	return ""
}

// buildPrompt prepends the filter-strictness preamble so the model does not
// drift outside the active filter scope.
func buildPrompt(query string, f *filters.Filters, searchContext string) string {
	var b strings.Builder
	if !f.IsZero() {
		b.WriteString("ATENÇÃO: filtros ativos")
		var parts []string
		if f.HasUF() {
			parts = append(parts, "UF="+f.UF())
		}
		if f.HasYear() {
			parts = append(parts, "Ano="+f.Year())
		}
		if f.HasSource() {
			parts = append(parts, "Fonte="+string(f.Source()))
		}
		b.WriteString(" (" + strings.Join(parts, ", ") + "). ")
		b.WriteString("Responda somente com registros dentro desses filtros.\n\n")
	}
	b.WriteString(searchContext)
	b.WriteString("\n\nPergunta do usuário: ")
	b.WriteString(query)
	return b.String()
}
