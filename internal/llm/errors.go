package llm

import "errors"

// Sentinel errors for LLM call failures. Callers treat all of them as
// "no enrichment today" rather than surfacing them to the farmer.
var (
	// ErrOllamaUnavailable indicates the Ollama server is unreachable.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates every attempt exceeded the task timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrRetryExhausted indicates all retry attempts failed for a reason
	// other than timeout or connectivity.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
