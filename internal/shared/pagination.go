package shared

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ClampLimit bounds a caller-supplied page size to [1,500]; out-of-range
// values fall back to the default rather than erroring.
func ClampLimit(limit int) int {
	if limit < 1 || limit > 500 {
		return 50
	}
	return limit
}

// ClampOffset floors a caller-supplied offset at zero.
func ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

// Page applies limit/offset over an already ordered full result.
func Page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
