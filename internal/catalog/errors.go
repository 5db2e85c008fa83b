package catalog

import (
	"github.com/pricescout/pricescout/internal/platform/httpx"
)

// The catalog surfaces the shared platform sentinels so that callers can map
// outcomes to transport responses without importing two error vocabularies.
var (
	ErrNotFound   = httpx.ErrNotFound
	ErrDuplicate  = httpx.ErrDuplicate
	ErrValidation = httpx.ErrValidation
)
