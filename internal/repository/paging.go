package repository

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// PagingParams carries 1-based page selection for listing queries.
type PagingParams struct {
	PageNumber int `query:"pageNumber"`
	PageSize   int `query:"pageSize"`
}

// normalize clamps out-of-range values so the page math never divides
// by zero or computes a negative offset.
func (p *PagingParams) normalize() {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
}

// PagedList wraps one page of an ordered, filtered result set together
// with the count metadata callers forward in pagination headers.
type PagedList[T any] struct {
	Items       []T   `json:"items"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
}

// newPagedList materializes one page of the already filtered and
// ordered query. The count is taken before the slice so TotalPages
// reflects the unpaginated set; a page past the end yields an empty
// slice, not an error.
func newPagedList[T any](query *gorm.DB, params PagingParams) (*PagedList[T], error) {
	params.normalize()

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count result set: %w", err)
	}

	totalPages := int((total + int64(params.PageSize) - 1) / int64(params.PageSize))

	items := make([]T, 0, params.PageSize)
	offset := (params.PageNumber - 1) * params.PageSize
	if err := query.Offset(offset).Limit(params.PageSize).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	return &PagedList[T]{
		Items:       items,
		CurrentPage: params.PageNumber,
		PageSize:    params.PageSize,
		TotalCount:  total,
		TotalPages:  totalPages,
	}, nil
}
