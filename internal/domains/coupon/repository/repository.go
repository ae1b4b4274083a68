package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"playcourt/infras/mongo"
	"playcourt/infras/otel"
	"playcourt/internal/domains/coupon/model"
	gDto "playcourt/shared/dto"
	gRepo "playcourt/shared/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Coupon interface {
	Insert(ctx context.Context, model model.Coupon) (primitive.ObjectID, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Coupon, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (gRepo.UpdateResult, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Coupon]
}

func New(db *mongo.Connection, otel otel.Otel) Coupon {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Coupon](model.EntityName, model.CollectionName, db, otel),
	}
}
