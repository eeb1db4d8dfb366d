package queries

import "tutorhive/internal/pkg/errs"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var ErrInvalidSortField = errs.New("invalid sort field")

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PageRequest carries offset pagination and sorting as supplied by the
// caller. Sort fields are resolved against a per-query whitelist so no
// caller input ever reaches SQL directly.
type PageRequest struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
}

func (p PageRequest) normalized() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.SortOrder != SortAsc && p.SortOrder != SortDesc {
		p.SortOrder = SortDesc
	}
	return p
}

func (p PageRequest) Offset() int {
	p = p.normalized()
	return (p.Page - 1) * p.Limit
}

// OrderClause resolves the requested sort field against allowed (a map
// of exposed field name to column expression) and returns a safe ORDER
// BY fragment.
func (p PageRequest) OrderClause(allowed map[string]string, fallback string) (string, error) {
	p = p.normalized()
	column := allowed[fallback]
	if p.SortBy != "" {
		c, ok := allowed[p.SortBy]
		if !ok {
			return "", ErrInvalidSortField
		}
		column = c
	}
	dir := "DESC"
	if p.SortOrder == SortAsc {
		dir = "ASC"
	}
	return column + " " + dir, nil
}

type PageInfo struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"total_pages"`
}

func NewPageInfo(req PageRequest, total int64) PageInfo {
	req = req.normalized()
	totalPages := total / int64(req.Limit)
	if total%int64(req.Limit) != 0 {
		totalPages++
	}
	return PageInfo{
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}
}

func (p PageRequest) NormalizedLimit() int {
	return p.normalized().Limit
}
