package dto

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"playcourt/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the HTTP request. Non-positive or unparsable
// page and limit values are ignored. With defaultRequest set, missing page and limit fall
// back to 1 and 10 and the listing is ordered by insertion.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := queryParams.Get(constant.RequestParamSortDir); strings.ToUpper(sortDir) == SortDirAsc || strings.ToUpper(sortDir) == SortDirDesc {
		q.SortDir = strings.ToUpper(sortDir)
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}

		if q.SortBy == "" {
			q.SortBy = constant.DefaultValueSortBy
			q.SortDir = constant.DefaultValueSortDir
		}
	}
}

// Skip returns the number of documents preceding the requested page,
// saturating at math.MaxInt64 for pages past any addressable offset.
func (q *QueryParams) Skip() int64 {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	page, limit := int64(q.Page-1), int64(q.Limit)
	if page > math.MaxInt64/limit {
		return math.MaxInt64
	}

	return page * limit
}

// SortOrder maps SortDir onto the bson sort value.
func (q *QueryParams) SortOrder() int {
	if q.SortDir == SortDirDesc {
		return -1
	}

	return 1
}
