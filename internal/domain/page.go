package domain

const (
	DefaultPerPage = 10
	MaxPerPage     = 100
	// MaxPage keeps (page-1)*perPage far from int64 overflow.
	MaxPage = 1_000_000
)

type Page struct {
	Page    int64
	PerPage int64
}

// NewPage clamps page and perPage into their accepted ranges.
func NewPage(page, perPage int64) Page {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return Page{Page: page, PerPage: perPage}
}

func (p Page) Offset() int64 {
	return (p.Page - 1) * p.PerPage
}

func (p Page) TotalPages(total int64) int64 {
	if total <= 0 || p.PerPage <= 0 {
		return 0
	}
	return (total + p.PerPage - 1) / p.PerPage
}

type UserPage struct {
	Users      []*User `json:"users"`
	Total      int64   `json:"total"`
	TotalPages int64   `json:"totalPages"`
	Page       int64   `json:"page"`
	PerPage    int64   `json:"perPage"`
}

type OrderPage struct {
	Orders     []*Order `json:"orders"`
	Total      int64    `json:"total"`
	TotalPages int64    `json:"totalPages"`
	Page       int64    `json:"page"`
	PerPage    int64    `json:"perPage"`
}
