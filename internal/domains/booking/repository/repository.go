package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"playcourt/infras/mongo"
	"playcourt/infras/otel"
	"playcourt/internal/domains/booking/model"
	gDto "playcourt/shared/dto"
	gRepo "playcourt/shared/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (primitive.ObjectID, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	FindOneAndUpdate(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (model.Booking, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *mongo.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.CollectionName, db, otel),
	}
}
