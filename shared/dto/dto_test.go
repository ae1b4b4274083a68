package dto_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"playcourt/shared/constant"
	"playcourt/shared/dto"
	"playcourt/shared/model"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		CreatedBy:  "creator@example.com",
		ModifiedBy: "modifier@example.com",
	})

	assert.Equal(t, createdAt.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Empty(t, metadata.ModifiedAt, "zero times are omitted")
	assert.Equal(t, "creator@example.com", metadata.CreatedBy)
	assert.Equal(t, "modifier@example.com", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		rawQuery       string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "with all valid parameters",
			rawQuery: "page=2&limit=20&sort_by=name&sort_dir=desc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "name", SortDir: "DESC"},
		},
		{
			name:           "defaults when nothing is provided",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10, SortBy: "_id", SortDir: "ASC"},
		},
		{
			name:     "no defaults when disabled",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid page uses default",
			rawQuery:       "page=invalid&limit=-10",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10, SortBy: "_id", SortDir: "ASC"},
		},
		{
			name:           "zero page uses default",
			rawQuery:       "page=0&limit=5",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 5, SortBy: "_id", SortDir: "ASC"},
		},
		{
			name:           "unknown sort direction is ignored",
			rawQuery:       "sort_by=date&sort_dir=sideways",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: 1, Limit: 10, SortBy: "date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/bookings/confirmed?"+tt.rawQuery, nil)

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, queryParams)
		})
	}
}

func TestQueryParams_Skip(t *testing.T) {
	tests := []struct {
		name     string
		rawQuery string
		expected int64
	}{
		{name: "first page", rawQuery: "page=1&limit=5", expected: 0},
		{name: "second page", rawQuery: "page=2&limit=5", expected: 5},
		{name: "largest page saturates", rawQuery: "page=9223372036854775807&limit=10", expected: math.MaxInt64},
		{name: "page just past the last addressable offset", rawQuery: "page=922337203685477582&limit=10", expected: math.MaxInt64},
		{name: "largest addressable offset", rawQuery: "page=922337203685477581&limit=10", expected: 9223372036854775800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/bookings/confirmed?"+tt.rawQuery, nil)

			queryParams := dto.QueryParams{}
			queryParams.FromRequest(req, true)

			skip := queryParams.Skip()

			assert.GreaterOrEqual(t, skip, int64(0))
			assert.Equal(t, tt.expected, skip)
		})
	}
}

func TestQueryParams_SortOrder(t *testing.T) {
	assert.Equal(t, -1, (&dto.QueryParams{SortDir: dto.SortDirDesc}).SortOrder())
	assert.Equal(t, 1, (&dto.QueryParams{SortDir: dto.SortDirAsc}).SortOrder())
	assert.Equal(t, 1, (&dto.QueryParams{}).SortOrder())
}

func TestFilter_GetQuery(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		expected bson.D
	}{
		{
			name:     "eq",
			filter:   dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
			expected: bson.D{{Key: "status", Value: "pending"}},
		},
		{
			name:     "in",
			filter:   dto.Filter{Field: "status", Value: []string{"confirmed", "approved"}, Operator: dto.FilterOperatorIn},
			expected: bson.D{{Key: "status", Value: bson.D{{Key: "$in", Value: bson.A{"confirmed", "approved"}}}}},
		},
		{
			name:     "not eq",
			filter:   dto.Filter{Field: "role", Value: "admin", Operator: dto.FilterOperatorNotEq},
			expected: bson.D{{Key: "role", Value: bson.D{{Key: "$ne", Value: "admin"}}}},
		},
		{
			name:   "unknown operator",
			filter: dto.Filter{Field: "name", Value: "a.b", Operator: "like"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.GetQuery())
		})
	}
}

func TestFilterGroup_GetQuery(t *testing.T) {
	status := dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq}
	email := dto.Filter{Field: "userEmail", Value: "a@example.com", Operator: dto.FilterOperatorEq}

	t.Run("empty group matches everything", func(t *testing.T) {
		group := dto.FilterGroup{}

		assert.Equal(t, bson.D{}, group.GetQuery())
	})

	t.Run("single condition is unwrapped", func(t *testing.T) {
		group := dto.FilterGroup{Filters: []any{status}}

		assert.Equal(t, bson.D{{Key: "status", Value: "pending"}}, group.GetQuery())
	})

	t.Run("and of two conditions", func(t *testing.T) {
		group := dto.FilterGroup{Filters: []any{status, email}, Operator: dto.FilterGroupOperatorAnd}

		assert.Equal(t, bson.D{{Key: "$and", Value: bson.A{
			bson.D{{Key: "status", Value: "pending"}},
			bson.D{{Key: "userEmail", Value: "a@example.com"}},
		}}}, group.GetQuery())
	})

	t.Run("nested or group", func(t *testing.T) {
		group := dto.FilterGroup{Filters: []any{
			dto.FilterGroup{Filters: []any{status}, Operator: dto.FilterGroupOperatorOr},
		}}

		assert.Equal(t, bson.D{{Key: "$or", Value: bson.A{
			bson.D{{Key: "status", Value: "pending"}},
		}}}, group.GetQuery())
	})
}
