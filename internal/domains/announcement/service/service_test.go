package service_test

import (
	"context"
	"net/http"
	"testing"

	"playcourt/infras/otel/mocks"
	announcementMocks "playcourt/internal/domains/announcement/mocks"
	"playcourt/internal/domains/announcement/model"
	"playcourt/internal/domains/announcement/model/dto"
	"playcourt/internal/domains/announcement/service"
	gDto "playcourt/shared/dto"
	"playcourt/shared/failure"
	gRepo "playcourt/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestAnnouncementService(t *testing.T) {
	repo := announcementMocks.NewMockAnnouncement(gomock.NewController(t))
	svc := service.New(repo, mocks.NewOtel())
	ctx := context.Background()

	id := primitive.NewObjectID()
	title := "Closed for maintenance"

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(id, nil)
	repo.EXPECT().GetAll(gomock.Any(), gDto.QueryParams{}, gDto.FilterGroup{}).Return([]model.Announcement{{ID: id, Title: title}}, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update map[string]any, _ gDto.FilterGroup) (gRepo.UpdateResult, error) {
			assert.Equal(t, title, update["title"])

			return gRepo.UpdateResult{MatchedCount: 1}, nil
		})
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	created, err := svc.Create(ctx, dto.CreateAnnouncementRequest{Title: title})
	require.NoError(t, err)
	assert.Equal(t, id, created.InsertedID)

	list, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, title, list[0].Title)

	updated, err := svc.Update(ctx, dto.UpdateAnnouncementRequest{Title: &title}, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated.ModifiedCount)

	_, err = svc.Delete(ctx, id.Hex())
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	_, err = svc.Update(ctx, dto.UpdateAnnouncementRequest{}, id.Hex())
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
