package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	corpus CorpusChecker
	answer AnswerChecker
}

// New creates a Service. answer can be nil.
func New(corpus CorpusChecker, answer AnswerChecker) *Service {
	return &Service{corpus: corpus, answer: answer}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.corpus.Len() == 0 {
		checks["corpus"] = CheckError
	} else {
		checks["corpus"] = CheckOK
	}

	if s.answer != nil {
		if err := s.answer.HealthCheck(ctx); err != nil {
			checks["answer"] = CheckError
		} else {
			checks["answer"] = CheckOK
		}
	}

	status := Healthy
	if checks["corpus"] == CheckError {
		// The engine cannot serve anything without records.
		status = Unhealthy
	} else if checks["answer"] == CheckError {
		status = Degraded
	}

	return Report{Status: status, Checks: checks}
}
