package domain

import "errors"

var (
	// ErrEmptyQuery rejects empty or whitespace-only query text.
	ErrEmptyQuery = errors.New("query is empty")

	// ErrInvalidQuery rejects query text that is syntactically a URL.
	ErrInvalidQuery = errors.New("query is not searchable text")

	// ErrInterpretationFailed surfaces an NLU backend failure or timeout.
	// Never retried automatically; the caller decides.
	ErrInterpretationFailed = errors.New("query interpretation failed")

	// ErrInvalidFilter is a Filter schema violation.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrUnderspecifiedFilter blocks an all-empty Filter from dumping the
	// whole catalog.
	ErrUnderspecifiedFilter = errors.New("filter has no constraints")

	// ErrWebSearchUnavailable is a web provider failure. Non-fatal: the
	// pipeline absorbs it and degrades to local results.
	ErrWebSearchUnavailable = errors.New("web search unavailable")

	ErrNotFound = errors.New("not found")
)
