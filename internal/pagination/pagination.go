// Package pagination slices an already filtered and ordered gorm query into
// one page and reports the totals of the whole filtered set.
package pagination

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrInvalidRange is returned when the page number or page size is below one.
var ErrInvalidRange = errors.New("pagination: page number and page size must be at least 1")

// Scope narrows a query. It has the same shape as the functions accepted by gorm's Scopes.
type Scope = func(*gorm.DB) *gorm.DB

// Query describes the filtered and ordered sequence to paginate.
// Filters drive both the count and the slice; Order and Preloads only affect the slice.
type Query struct {
	Filters  []Scope
	Order    []string
	Preloads []string
}

// PagedResult is one page of T plus the totals of the sequence it was cut from.
type PagedResult[T any] struct {
	Items       []T
	CurrentPage int
	PageSize    int
	TotalCount  int64
	TotalPages  int
}

// Metadata is the pagination contract exposed at the API boundary.
type Metadata struct {
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// New builds a result from a slice and the count it was taken from.
func New[T any](items []T, total int64, pageNumber, pageSize int) *PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return &PagedResult[T]{
		Items:       items,
		CurrentPage: pageNumber,
		PageSize:    pageSize,
		TotalCount:  total,
		TotalPages:  TotalPages(total, pageSize),
	}
}

// Metadata returns the page's totals without the items.
func (p *PagedResult[T]) Metadata() Metadata {
	return Metadata{
		PageNumber: p.CurrentPage,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}

// Map projects every item of p into a new result with the same metadata.
func Map[T, U any](p *PagedResult[T], fn func(T) U) *PagedResult[U] {
	items := make([]U, len(p.Items))
	for i, item := range p.Items {
		items[i] = fn(item)
	}
	return &PagedResult[U]{
		Items:       items,
		CurrentPage: p.CurrentPage,
		PageSize:    p.PageSize,
		TotalCount:  p.TotalCount,
		TotalPages:  p.TotalPages,
	}
}

// TotalPages is ceil(total/pageSize).
func TotalPages(total int64, pageSize int) int {
	if pageSize < 1 || total <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// Validate rejects page numbers and sizes below one.
func Validate(pageNumber, pageSize int) error {
	if pageNumber < 1 || pageSize < 1 {
		return fmt.Errorf("%w (page %d, size %d)", ErrInvalidRange, pageNumber, pageSize)
	}
	return nil
}

// Paginate counts the rows of T matching q and loads the requested page.
// Both statements run in one transaction so they observe the same snapshot;
// txOpts chooses its isolation level. A page past the end yields no items and
// the true totals.
func Paginate[T any](ctx context.Context, db *gorm.DB, pageNumber, pageSize int, q Query, txOpts ...*sql.TxOptions) (*PagedResult[T], error) {
	if err := Validate(pageNumber, pageSize); err != nil {
		return nil, err
	}

	var (
		total int64
		items []T
	)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(new(T)).Scopes(q.Filters...).Count(&total).Error; err != nil {
			return fmt.Errorf("count: %w", err)
		}
		if int64(pageNumber-1) >= int64(TotalPages(total, pageSize)) {
			return nil
		}

		slice := tx.Model(new(T)).Scopes(q.Filters...)
		for _, order := range q.Order {
			slice = slice.Order(order)
		}
		for _, preload := range q.Preloads {
			slice = slice.Preload(preload)
		}
		if err := slice.Offset((pageNumber - 1) * pageSize).Limit(pageSize).Find(&items).Error; err != nil {
			return fmt.Errorf("slice: %w", err)
		}
		return nil
	}, txOpts...)
	if err != nil {
		return nil, err
	}

	return New(items, total, pageNumber, pageSize), nil
}
