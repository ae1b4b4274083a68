package dto

import (
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	FilterOperatorEq    = "eq"
	FilterOperatorIn    = "in"
	FilterOperatorNotEq = "not_eq"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq in not_eq"`
}

// GetQuery translates the filter into a single-field bson condition.
func (f *Filter) GetQuery() bson.D {
	switch f.Operator {
	case FilterOperatorEq:
		return bson.D{{Key: f.Field, Value: f.Value}}
	case FilterOperatorIn:
		return bson.D{{Key: f.Field, Value: bson.D{{Key: "$in", Value: toSlice(f.Value)}}}}
	case FilterOperatorNotEq:
		return bson.D{{Key: f.Field, Value: bson.D{{Key: "$ne", Value: f.Value}}}}
	default:
		return nil
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// GetQuery combines the nested filters with $and (default) or $or.
// An empty group yields an empty document which matches everything.
func (f *FilterGroup) GetQuery() bson.D {
	conditions := bson.A{}

	for _, filter := range f.Filters {
		var query bson.D

		switch fill := filter.(type) {
		case Filter:
			query = fill.GetQuery()
		case FilterGroup:
			query = fill.GetQuery()
		}

		if len(query) > 0 {
			conditions = append(conditions, query)
		}
	}

	switch len(conditions) {
	case 0:
		return bson.D{}
	case 1:
		if f.Operator != FilterGroupOperatorOr {
			query, _ := conditions[0].(bson.D)

			return query
		}
	}

	if f.Operator == FilterGroupOperatorOr {
		return bson.D{{Key: "$or", Value: conditions}}
	}

	return bson.D{{Key: "$and", Value: conditions}}
}

func toSlice(value any) bson.A {
	val := reflect.ValueOf(value)

	switch val.Kind() {
	case reflect.Array, reflect.Slice:
		values := make(bson.A, val.Len())

		for idx := range val.Len() {
			values[idx] = val.Index(idx).Interface()
		}

		return values
	default:
		return bson.A{value}
	}
}
