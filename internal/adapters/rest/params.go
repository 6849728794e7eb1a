package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
)

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.InvalidField("id", "id must be a valid UUID")
	}
	return id, nil
}

func queryInt(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		return 0, domain.InvalidField(name, name+" must be a positive integer")
	}
	return n, nil
}

// pageParams reads page and perPage. Missing values fall back to defaults.
func pageParams(r *http.Request) (domain.Page, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return domain.Page{}, err
	}
	if page > domain.MaxPage {
		return domain.Page{}, domain.InvalidField("page", fmt.Sprintf("page must be at most %d", domain.MaxPage))
	}
	perPage, err := queryInt(r, "perPage")
	if err != nil {
		return domain.Page{}, err
	}
	return domain.NewPage(page, perPage), nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.InvalidField(name, name+" must be true or false")
	}
	return &b, nil
}
