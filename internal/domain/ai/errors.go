package ai

import "errors"

// ErrQuotaExceeded indicates the model provider rejected the call with a
// quota/rate limit error (HTTP 429 or similar). Surfaced to clients as 429.
var ErrQuotaExceeded = errors.New("model quota exceeded")
