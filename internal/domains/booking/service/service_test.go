package service_test

import (
	"context"
	"errors"
	"math"
	"net/http"
	"testing"
	"time"

	"playcourt/config"
	"playcourt/infras/kafka"
	kafkaMocks "playcourt/infras/kafka/mocks"
	"playcourt/infras/otel/mocks"
	bookingMocks "playcourt/internal/domains/booking/mocks"
	"playcourt/internal/domains/booking/model"
	"playcourt/internal/domains/booking/model/dto"
	"playcourt/internal/domains/booking/service"
	"playcourt/shared/constant"
	gDto "playcourt/shared/dto"
	"playcourt/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

const testEmail = "player@example.com"

type fixture struct {
	repo  *bookingMocks.MockBooking
	kafka *kafkaMocks.MockClient
	svc   service.Booking
}

func newFixture(t *testing.T, strict bool) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topics.Booking = "booking-events"
	cfg.App.Booking.StrictLifecycle = strict

	repo := bookingMocks.NewMockBooking(ctrl)
	kafkaClient := kafkaMocks.NewMockClient(ctrl)

	return fixture{
		repo:  repo,
		kafka: kafkaClient,
		svc:   service.New(repo, cfg, kafkaClient, mocks.NewOtel()),
	}
}

func (f fixture) ignoreEvents() {
	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func authContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserEmail, testEmail)
}

func TestBookingService_Create(t *testing.T) {
	statuses := []string{"", "pending", "confirmed", "approved", "rejected"}

	for _, clientStatus := range statuses {
		t.Run("client status "+clientStatus+" is stored as pending", func(t *testing.T) {
			f := newFixture(t, false)
			f.ignoreEvents()

			id := primitive.NewObjectID()

			var stored model.Booking

			f.repo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, booking model.Booking) (primitive.ObjectID, error) {
					stored = booking

					return id, nil
				})

			res, err := f.svc.Create(authContext(), dto.CreateBookingRequest{
				CourtID: "court-1",
				Date:    "2024-06-01",
				Slots:   []string{"08:00-09:00"},
				Status:  clientStatus,
			})

			require.NoError(t, err)
			assert.Equal(t, model.StatusPending, stored.Status)
			assert.Equal(t, model.StatusPending, res.Status)
			assert.Equal(t, id, res.ID)
			assert.Equal(t, testEmail, res.UserEmail)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t, false)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(primitive.NilObjectID, errors.New("connection refused"))

		_, err := f.svc.Create(authContext(), dto.CreateBookingRequest{CourtID: "court-1", Date: "2024-06-01"})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_Create_PublishesEvent(t *testing.T) {
	f := newFixture(t, false)

	id := primitive.NewObjectID()
	events := make(chan kafka.Message, 1)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(id, nil)
	f.kafka.EXPECT().
		SendMessages(gomock.Any(), "booking-events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			events <- messages[0]

			return errors.New("broker unavailable")
		})

	_, err := f.svc.Create(authContext(), dto.CreateBookingRequest{CourtID: "court-1", Date: "2024-06-01"})
	require.NoError(t, err, "publish failures never fail the request")

	select {
	case message := <-events:
		event, ok := message.Value.(model.Event)
		require.True(t, ok)
		assert.Equal(t, id.Hex(), message.Key)
		assert.Equal(t, model.EventCreated, event.Type)
		assert.Equal(t, model.StatusPending, event.Status)
		assert.Equal(t, testEmail, event.Actor)
	case <-time.After(time.Second):
		t.Fatal("booking.created was not published")
	}
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t, false)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gDto.QueryParams{}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error) {
			assert.Equal(t, bson.D{{Key: "$and", Value: bson.A{
				bson.D{{Key: "status", Value: "pending"}},
				bson.D{{Key: "userEmail", Value: testEmail}},
			}}}, filter.GetQuery())

			return []model.Booking{{ID: primitive.NewObjectID(), Status: model.StatusPending}}, nil
		})

	res, err := f.svc.GetAll(context.Background(), dto.ListFilter{Status: "pending", Email: testEmail})

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestBookingService_GetConfirmed(t *testing.T) {
	all := make([]model.Booking, 12)
	for idx := range all {
		all[idx] = model.Booking{ID: primitive.NewObjectID(), Status: model.StatusConfirmed, Price: float64(idx + 1)}
	}

	tests := []struct {
		name           string
		params         gDto.QueryParams
		expectedParams gDto.QueryParams
		total          int
		page           []model.Booking
		expectedPages  int
		expectedFirst  float64
	}{
		{
			name:           "page 2 of 5 out of 12",
			params:         gDto.QueryParams{Page: 2, Limit: 5},
			expectedParams: gDto.QueryParams{Page: 2, Limit: 5, SortBy: "_id", SortDir: "ASC"},
			total:          12,
			page:           all[5:10],
			expectedPages:  3,
			expectedFirst:  6,
		},
		{
			name:           "defaults to first page of 10",
			expectedParams: gDto.QueryParams{Page: 1, Limit: 10, SortBy: "_id", SortDir: "ASC"},
			total:          12,
			page:           all[:10],
			expectedPages:  2,
			expectedFirst:  1,
		},
		{
			name:           "client sort is ignored",
			params:         gDto.QueryParams{Page: 3, Limit: 5, SortBy: "price", SortDir: "DESC"},
			expectedParams: gDto.QueryParams{Page: 3, Limit: 5, SortBy: "_id", SortDir: "ASC"},
			total:          12,
			page:           all[10:],
			expectedPages:  3,
			expectedFirst:  11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)

			f.repo.EXPECT().Count(gomock.Any(), dto.ConfirmedFilter()).Return(tt.total, nil)
			f.repo.EXPECT().GetAll(gomock.Any(), tt.expectedParams, dto.ConfirmedFilter()).Return(tt.page, nil)

			res, err := f.svc.GetConfirmed(context.Background(), tt.params)

			require.NoError(t, err)
			assert.Len(t, res.Bookings, len(tt.page))
			assert.Equal(t, tt.expectedPages, res.TotalPages)
			assert.InDelta(t, tt.expectedFirst, res.Bookings[0].Price, 0)
		})
	}

	t.Run("no confirmed bookings", func(t *testing.T) {
		f := newFixture(t, false)

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)

		res, err := f.svc.GetConfirmed(context.Background(), gDto.QueryParams{})

		require.NoError(t, err)
		assert.NotNil(t, res.Bookings)
		assert.Empty(t, res.Bookings)
		assert.Equal(t, 0, res.TotalPages)
	})

	t.Run("page past the end is empty without a query", func(t *testing.T) {
		for _, page := range []int{4, math.MaxInt} {
			f := newFixture(t, false)

			f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)

			res, err := f.svc.GetConfirmed(context.Background(), gDto.QueryParams{Page: page, Limit: 5})

			require.NoError(t, err)
			assert.NotNil(t, res.Bookings)
			assert.Empty(t, res.Bookings)
			assert.Equal(t, 3, res.TotalPages)
		}
	})

	t.Run("count failure", func(t *testing.T) {
		f := newFixture(t, false)

		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("timeout"))

		_, err := f.svc.GetConfirmed(context.Background(), gDto.QueryParams{})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("status outside the allowed set leaves the record untouched", func(t *testing.T) {
		for _, status := range []string{"", "cancelled", "APPROVED"} {
			f := newFixture(t, false)

			_, err := f.svc.UpdateStatus(authContext(), dto.UpdateStatusRequest{Status: status}, id.Hex())

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, "status must be one of pending confirmed approved rejected", err.Error())
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.svc.UpdateStatus(authContext(), dto.UpdateStatusRequest{Status: "confirmed"}, "42")

		assert.ErrorIs(t, err, failure.InvalidIDParam)
	})

	t.Run("permissive lifecycle moves any status", func(t *testing.T) {
		f := newFixture(t, false)
		f.ignoreEvents()

		f.repo.EXPECT().
			FindOneAndUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update map[string]any, filter gDto.FilterGroup) (model.Booking, error) {
				assert.Equal(t, model.StatusPending, update["status"])
				assert.Equal(t, testEmail, update[constant.FieldModifiedBy])
				assert.Equal(t, bson.D{{Key: "_id", Value: id}}, filter.GetQuery())

				return model.Booking{ID: id, Status: model.StatusPending}, nil
			})

		res, err := f.svc.UpdateStatus(authContext(), dto.UpdateStatusRequest{Status: "pending"}, id.Hex())

		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture(t, false)

		f.repo.EXPECT().FindOneAndUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.UpdateStatus(authContext(), dto.UpdateStatusRequest{Status: "confirmed"}, id.Hex())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(t, false)

		f.repo.EXPECT().FindOneAndUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("timeout"))

		_, err := f.svc.UpdateStatus(authContext(), dto.UpdateStatusRequest{Status: "confirmed"}, id.Hex())

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_UpdateStatus_Strict(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("allowed transition matches on the source statuses", func(t *testing.T) {
		f := newFixture(t, true)
		f.ignoreEvents()

		f.repo.EXPECT().
			FindOneAndUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ map[string]any, filter gDto.FilterGroup) (model.Booking, error) {
				assert.Equal(t, bson.D{{Key: "$and", Value: bson.A{
					bson.D{{Key: "_id", Value: id}},
					bson.D{{Key: "status", Value: bson.D{{Key: "$in", Value: bson.A{model.StatusPending, model.StatusConfirmed}}}}},
				}}}, filter.GetQuery())

				return model.Booking{ID: id, Status: model.StatusRejected}, nil
			})

		res, err := f.svc.UpdateStatus(authContext(), dto.UpdateStatusRequest{Status: "rejected"}, id.Hex())

		require.NoError(t, err)
		assert.Equal(t, model.StatusRejected, res.Status)
	})

	t.Run("refused transition is a conflict", func(t *testing.T) {
		f := newFixture(t, true)

		f.repo.EXPECT().FindOneAndUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: id, Status: model.StatusRejected}, nil)

		_, err := f.svc.UpdateStatus(authContext(), dto.UpdateStatusRequest{Status: "confirmed"}, id.Hex())

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.Equal(t, "booking cannot move from rejected to confirmed", err.Error())
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		f := newFixture(t, true)

		f.repo.EXPECT().FindOneAndUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.UpdateStatus(authContext(), dto.UpdateStatusRequest{Status: "confirmed"}, id.Hex())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Approve(t *testing.T) {
	id := primitive.NewObjectID()

	for _, strict := range []bool{false, true} {
		t.Run("approves a rejected booking", func(t *testing.T) {
			f := newFixture(t, strict)
			f.ignoreEvents()

			f.repo.EXPECT().
				FindOneAndUpdate(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, update map[string]any, filter gDto.FilterGroup) (model.Booking, error) {
					assert.Equal(t, model.StatusApproved, update["status"])
					assert.Equal(t, bson.D{{Key: "_id", Value: id}}, filter.GetQuery(), "approve never matches on the current status")

					return model.Booking{ID: id, Status: model.StatusApproved}, nil
				})

			res, err := f.svc.Approve(context.Background(), id.Hex())

			require.NoError(t, err)
			assert.Equal(t, model.StatusApproved, res.Status)
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		f := newFixture(t, true)

		f.repo.EXPECT().FindOneAndUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Approve(context.Background(), id.Hex())

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	id := primitive.NewObjectID()

	tests := []struct {
		name         string
		id           string
		setupMock    func(f fixture)
		expectedCode int
	}{
		{
			name: "deleted",
			id:   id.Hex(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.ignoreEvents()
			},
		},
		{
			name: "unknown id",
			id:   id.Hex(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed id",
			id:           "booking-1",
			setupMock:    func(_ fixture) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			id:   id.Hex(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			tt.setupMock(f)

			res, err := f.svc.Delete(authContext(), tt.id)

			if tt.expectedCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, int64(1), res.DeletedCount)

				return
			}

			assert.Equal(t, tt.expectedCode, failure.GetCode(err))
		})
	}
}
