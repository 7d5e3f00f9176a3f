package health

import "context"

// CorpusChecker reports whether the in-memory corpus is loaded.
type CorpusChecker interface {
	Len() int
}

// AnswerChecker checks answer provider availability.
type AnswerChecker interface {
	HealthCheck(ctx context.Context) error
}
