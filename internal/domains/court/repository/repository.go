package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"playcourt/infras/mongo"
	"playcourt/infras/otel"
	"playcourt/internal/domains/court/model"
	gDto "playcourt/shared/dto"
	gRepo "playcourt/shared/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Court interface {
	Insert(ctx context.Context, model model.Court) (primitive.ObjectID, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Court, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Court, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (gRepo.UpdateResult, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Court]
}

func New(db *mongo.Connection, otel otel.Otel) Court {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Court](model.EntityName, model.CollectionName, db, otel),
	}
}
