package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"dsr-service/internal/usecase"
)

const (
	defaultPage  = 1
	defaultLimit = 100
)

// positiveInt reads a 1-based integer query parameter. Missing values take
// def; anything else that is not a positive integer is rejected.
func positiveInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, usecase.ErrInvalidPage
	}
	return n, nil
}

func parsePagination(r *http.Request) (page, limit int, err error) {
	if page, err = positiveInt(r, "page", defaultPage); err != nil {
		return 0, 0, err
	}
	if limit, err = positiveInt(r, "limit", defaultLimit); err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

func parseListQuery(r *http.Request) (usecase.ListQuery, error) {
	page, limit, err := parsePagination(r)
	if err != nil {
		return usecase.ListQuery{}, err
	}
	q := r.URL.Query()
	return usecase.ListQuery{
		Year:           strings.TrimSpace(q.Get("year")),
		Search:         q.Get("search"),
		Importer:       q.Get("importer"),
		SelectedICD:    q.Get("selectedICD"),
		OblTelexBl:     q.Get("obl_telex_bl"),
		Status:         q.Get("status"),
		DetailedStatus: q.Get("detailedStatus"),
		Page:           page,
		Limit:          limit,
	}, nil
}
