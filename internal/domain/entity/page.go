package entity

// Page is the envelope for paginated results: one slice of content plus exact
// pagination metadata derived from a separate count query.
type Page[T any] struct {
	Content       []T `json:"content"`
	PageNumber    int `json:"pageNumber"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

func NewPage[T any](content []T, pageNumber, pageSize, totalElements int) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalElements + pageSize - 1) / pageSize
	}
	return Page[T]{
		Content:       content,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}
