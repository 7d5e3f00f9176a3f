// Package domain holds errors and contracts shared across use cases.
package domain

import "errors"

var (
	// ErrEmptyQuery signals a blank search query.
	ErrEmptyQuery = errors.New("query is required")
	// ErrCorpusEmpty signals that no records were loaded at startup.
	ErrCorpusEmpty = errors.New("record corpus is empty")
	// ErrInvalidDictionary signals a synonym dictionary with non-normalized entries.
	ErrInvalidDictionary = errors.New("invalid synonym dictionary")
	// ErrAnswerProviderError signals a chat completion provider failure.
	ErrAnswerProviderError = errors.New("answer provider error")
	// ErrAnswerNotConfigured signals that no completion provider was configured.
	ErrAnswerNotConfigured = errors.New("answer provider not configured")
)
