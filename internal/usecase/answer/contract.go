package answer

import (
	"context"

	"github.com/auditgov/auditdex/internal/domain/search/filters"
	"github.com/auditgov/auditdex/internal/usecase/search"
)

// Searcher runs the ranked corpus search that grounds the answer.
type Searcher interface {
	Search(ctx context.Context, query string, f filters.Filters) (*search.Result, error)
}

// Completer produces the model's answer text from a system instruction and
// a user prompt.
type Completer interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
