package shared

import (
	"math"
	"reflect"
	"strings"

	"playcourt/shared/constant"
	"playcourt/shared/dto"
	"playcourt/shared/failure"
	"playcourt/shared/timezone"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const cacheKeySeparator = ":"

// CalculateTotalPage returns ceil(total/limit). No matching documents means no pages.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}

	return int(math.Ceil(float64(total) / float64(limit)))
}

// TransformFields converts the non-zero fields of a struct into a $set document keyed by bson tag.
func TransformFields(data any, email string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName, _, _ := strings.Cut(typ.Field(index).Tag.Get("bson"), ",")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Ptr {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	if len(updatedFields) == 0 {
		return updatedFields
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()

	if email != "" {
		updatedFields[constant.FieldModifiedBy] = email
	}

	return updatedFields
}

// ParseID converts a hex identifier from the URL into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, failure.InvalidIDParam
	}

	return objectID, nil
}

// FilterByID builds the filter matching a single document by its hex identifier.
func FilterByID(id string) (dto.FilterGroup, error) {
	objectID, err := ParseID(id)
	if err != nil {
		return dto.FilterGroup{}, err
	}

	return FilterByObjectID(objectID), nil
}

func FilterByObjectID(id primitive.ObjectID) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    constant.FieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
			},
		},
	}
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}
