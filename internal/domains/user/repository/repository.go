package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"playcourt/infras/mongo"
	"playcourt/infras/otel"
	"playcourt/internal/domains/user/model"
	gDto "playcourt/shared/dto"
	gRepo "playcourt/shared/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User interface {
	Insert(ctx context.Context, model model.User) (primitive.ObjectID, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (gRepo.UpdateResult, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(db *mongo.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.CollectionName, db, otel),
	}
}
