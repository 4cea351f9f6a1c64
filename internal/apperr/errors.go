// Package apperr defines the failure classes surfaced by the advisory
// pipelines so handlers can map them to transport status codes.
package apperr

import "errors"

var (
	// ErrInputInvalid marks a request missing required fields, detected
	// before any model call is made.
	ErrInputInvalid = errors.New("invalid input")

	// ErrUpstreamUnavailable marks an LLM service failure, including an
	// exhausted retry budget on overload.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrMalformedOutput marks a model reply that failed schema or format
	// parsing. The wrapping error carries the raw reply text.
	ErrMalformedOutput = errors.New("malformed model output")

	// ErrRendererUnavailable marks a missing or failing PDF engine.
	ErrRendererUnavailable = errors.New("renderer unavailable")

	// ErrSummarizerFailure marks a summarization model failure.
	ErrSummarizerFailure = errors.New("summarizer failure")
)
