package repository

import (
	"context"
	"errors"
	"fmt"

	"playcourt/infras/mongo"
	"playcourt/infras/otel"
	"playcourt/shared/constant"
	"playcourt/shared/dto"
	"playcourt/shared/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrRequiredFilter = errors.New("required filter")
	ErrDuplicateKey   = errors.New("duplicate key")
)

// UpdateResult reports how many documents an update matched and changed.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}

// Repository is a typed view over one collection. Every call runs detached from
// request cancellation so a started store operation always completes.
type Repository[T any] struct {
	collection *mongoDriver.Collection
	otel       otel.Otel
	entitas    string
}

func NewRepository[T any](entitasName, collectionName string, conn *mongo.Connection, otl otel.Otel) Repository[T] {
	return Repository[T]{
		collection: conn.Collection(collectionName),
		otel:       otl,
		entitas:    entitasName,
	}
}

func (repo *Repository[T]) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, operation)
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) (primitive.ObjectID, error) {
	ctx, scope := repo.otel.NewScope(context.WithoutCancel(ctx), constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	result, err := repo.collection.InsertOne(ctx, model)
	if err != nil {
		scope.TraceError(err)

		if mongoDriver.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("failed to insert data (%s): %w", repo.entitas, ErrDuplicateKey)
		}

		logger.ErrorWithStack(err)

		return primitive.NilObjectID, fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	id, _ := result.InsertedID.(primitive.ObjectID)

	return id, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(context.WithoutCancel(ctx), constant.OtelRepositoryScopeName, repo.spanName("Exist"))
	defer scope.End()

	query := filter.GetQuery()
	if len(query) == 0 {
		return false, ErrRequiredFilter
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	count, err := repo.collection.CountDocuments(ctx, query, options.Count().SetLimit(1))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entitas, err)
	}

	return count > 0, nil
}

// Get returns the first matching document, or the zero value when none matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(context.WithoutCancel(ctx), constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	query := filter.GetQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var model T

	err := repo.collection.FindOne(ctx, query).Decode(&model)
	if errors.Is(err, mongoDriver.ErrNoDocuments) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(context.WithoutCancel(ctx), constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	query := filter.GetQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	opts := options.Find()

	if params.Limit > 0 {
		opts.SetLimit(int64(params.Limit))
		opts.SetSkip(params.Skip())
	}

	if params.SortBy != "" {
		opts.SetSort(bson.D{{Key: params.SortBy, Value: params.SortOrder()}})
	}

	models := []T{}

	cursor, err := repo.collection.Find(ctx, query, opts)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	err = cursor.All(ctx, &models)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return models, fmt.Errorf("failed to decode all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(context.WithoutCancel(ctx), constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer scope.End()

	query := filter.GetQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	count, err := repo.collection.CountDocuments(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entitas, err)
	}

	return int(count), nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (UpdateResult, error) {
	ctx, scope := repo.otel.NewScope(context.WithoutCancel(ctx), constant.OtelRepositoryScopeName, repo.spanName("Update"))
	defer scope.End()

	query := filter.GetQuery()
	if len(query) == 0 {
		return UpdateResult{}, ErrRequiredFilter
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.collection.UpdateOne(ctx, query, bson.M{"$set": mod})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return UpdateResult{}, fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
	}

	return UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// FindOneAndUpdate applies mod to the first match and returns the document as
// stored afterwards, or the zero value when nothing matched.
func (repo *Repository[T]) FindOneAndUpdate(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(context.WithoutCancel(ctx), constant.OtelRepositoryScopeName, repo.spanName("FindOneAndUpdate"))
	defer scope.End()

	var model T

	query := filter.GetQuery()
	if len(query) == 0 {
		return model, ErrRequiredFilter
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	err := repo.collection.FindOneAndUpdate(ctx, query, bson.M{"$set": mod}, opts).Decode(&model)
	if errors.Is(err, mongoDriver.ErrNoDocuments) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to find and update data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.otel.NewScope(context.WithoutCancel(ctx), constant.OtelRepositoryScopeName, repo.spanName("Delete"))
	defer scope.End()

	query := filter.GetQuery()
	if len(query) == 0 {
		return 0, ErrRequiredFilter
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.collection.DeleteOne(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete data (%s): %w", repo.entitas, err)
	}

	return result.DeletedCount, nil
}
