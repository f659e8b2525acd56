package report

// Pagination describes the slice a Page holds. Page and Limit are 1-based;
// callers validate them before calling Paginate.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is one slice of a fully materialized, ordered result set.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Paginate slices items into the requested page. There is no internal
// clamping: an out-of-range page returns an empty Data slice with the
// correct Total and TotalPages. An empty input yields TotalPages 0.
func Paginate[T any](items []T, page, limit int) Page[T] {
	total := len(items)
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	out := Page[T]{
		Data:       []T{},
		Pagination: Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages},
	}
	start := (page - 1) * limit
	if start < 0 || start >= total {
		return out
	}
	end := start + limit
	if end > total {
		end = total
	}
	out.Data = items[start:end]
	return out
}
