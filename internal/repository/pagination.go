package repository

import (
	"context"
	"strings"

	"portal/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PageRequest is a 0-based page selector with an optional sort key.
// Sort is the JSON field name of the entity; it is mapped to a column
// through a per-repository whitelist.
type PageRequest struct {
	Page      int
	Size      int
	Sort      string
	Direction string // asc | desc
}

// Normalize clamps page and size to sane bounds.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = domain.DefaultPageSize
	}
	if p.Size > domain.MaxPageSize {
		p.Size = domain.MaxPageSize
	}
	if !strings.EqualFold(p.Direction, "asc") {
		p.Direction = "desc"
	} else {
		p.Direction = "asc"
	}
	return p
}

func (p PageRequest) Offset() int { return p.Page * p.Size }

// Page mirrors the page envelope the portal frontend consumes.
type Page[T any] struct {
	Content          []T   `json:"content"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	Size             int   `json:"size"`
	Number           int   `json:"number"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	NumberOfElements int   `json:"numberOfElements"`
}

func NewPage[T any](content []T, total int64, req PageRequest) *Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return &Page[T]{
		Content:          content,
		TotalElements:    total,
		TotalPages:       totalPages,
		Size:             req.Size,
		Number:           req.Page,
		First:            req.Page == 0,
		Last:             req.Page >= totalPages-1,
		NumberOfElements: len(content),
	}
}

// sortColumns maps a JSON sort key to its column name.
type sortColumns map[string]string

func (s sortColumns) column(key string) (string, bool) {
	if key == "" {
		return "", false
	}
	col, ok := s[key]
	return col, ok
}

var commonSort = sortColumns{
	"id":        "id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func (s sortColumns) with(extra sortColumns) sortColumns {
	out := make(sortColumns, len(s)+len(extra))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// findPage counts and fetches one page of T. scope applies filters to both
// queries. When req.Sort is not whitelisted, fallback orders the rows; id is
// always the final tie-breaker so pages are stable.
func findPage[T any](ctx context.Context, db *gorm.DB, req PageRequest, sortable sortColumns, fallback []clause.OrderByColumn, scope func(*gorm.DB) *gorm.DB) (*Page[T], error) {
	req = req.Normalize()
	if scope == nil {
		scope = func(q *gorm.DB) *gorm.DB { return q }
	}

	var total int64
	if err := scope(db.WithContext(ctx).Model(new(T))).Count(&total).Error; err != nil {
		return nil, err
	}

	q := scope(db.WithContext(ctx).Model(new(T)))
	order := fallback
	if col, ok := sortable.column(req.Sort); ok {
		order = []clause.OrderByColumn{{Column: clause.Column{Name: col}, Desc: req.Direction == "desc"}}
	}
	if len(order) == 0 {
		order = []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}}
	}
	for _, o := range order {
		q = q.Order(o)
	}
	if order[len(order)-1].Column.Name != "id" {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true})
	}

	var list []T
	if err := q.Limit(req.Size).Offset(req.Offset()).Find(&list).Error; err != nil {
		return nil, err
	}
	return NewPage(list, total, req), nil
}

func desc(col string) []clause.OrderByColumn {
	return []clause.OrderByColumn{{Column: clause.Column{Name: col}, Desc: true}}
}
