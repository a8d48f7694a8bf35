package models

// Paging defaults and limits for list endpoints.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// PageParams is embedded in every paged query.
type PageParams struct {
	PageNumber int `query:"pageNumber" validate:"min=1"`
	PageSize   int `query:"pageSize" validate:"min=1,max=50"`
}

// DefaultPageParams returns the first page with the default size.
func DefaultPageParams() PageParams {
	return PageParams{PageNumber: 1, PageSize: DefaultPageSize}
}
