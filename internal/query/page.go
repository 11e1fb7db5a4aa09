package query

// Pagination mirrors the paginated response envelope fields verbatim.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// Page is one page of a listed resource plus its pagination envelope.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}
