//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"testing"

	"playcourt/config"
	"playcourt/infras/mongo"
	"playcourt/infras/otel/mocks"
	"playcourt/shared/dto"
	"playcourt/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoPort = "27017"

type item struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Code   string             `bson:"code"`
	Status string             `bson:"status"`
	Seq    int                `bson:"seq"`
}

func startMongo(t *testing.T) *mongo.Connection {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{mongoPort + "/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections"),
		},
		Started: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, mongoPort)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Name = "playcourt-test"
	cfg.DB.Mongo.URI = fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	cfg.DB.Mongo.Name = "playcourt_test"
	cfg.DB.Mongo.MaxRetry = 5
	cfg.DB.Mongo.RetryWaitTime = 1

	conn, err := mongo.New(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Disconnect(ctx)
	})

	_, err = conn.Collection("items").Indexes().CreateOne(ctx, mongoDriver.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	require.NoError(t, err)

	return conn
}

func statusFilter(status string) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "status", Value: status, Operator: dto.FilterOperatorEq},
	}}
}

func idFilter(id primitive.ObjectID) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "_id", Value: id, Operator: dto.FilterOperatorEq},
	}}
}

func TestRepository(t *testing.T) {
	conn := startMongo(t)
	repo := repository.NewRepository[item]("item", "items", conn, mocks.NewOtel())
	ctx := context.Background()

	ids := make([]primitive.ObjectID, 0, 12)

	for seq := 1; seq <= 12; seq++ {
		id, err := repo.Insert(ctx, item{Code: fmt.Sprintf("code-%02d", seq), Status: "confirmed", Seq: seq})
		require.NoError(t, err)
		require.False(t, id.IsZero())

		ids = append(ids, id)
	}

	t.Run("duplicate key is reported", func(t *testing.T) {
		_, err := repo.Insert(ctx, item{Code: "code-01", Status: "pending"})

		assert.ErrorIs(t, err, repository.ErrDuplicateKey)
	})

	t.Run("page two of five in insertion order", func(t *testing.T) {
		params := dto.QueryParams{Page: 2, Limit: 5, SortBy: "_id", SortDir: dto.SortDirAsc}

		items, err := repo.GetAll(ctx, params, statusFilter("confirmed"))
		require.NoError(t, err)
		require.Len(t, items, 5)

		for idx, got := range items {
			assert.Equal(t, idx+6, got.Seq)
		}

		count, err := repo.Count(ctx, statusFilter("confirmed"))
		require.NoError(t, err)
		assert.Equal(t, 12, count)
	})

	t.Run("get and exist", func(t *testing.T) {
		got, err := repo.Get(ctx, idFilter(ids[0]))
		require.NoError(t, err)
		assert.Equal(t, "code-01", got.Code)

		missing, err := repo.Get(ctx, idFilter(primitive.NewObjectID()))
		require.NoError(t, err)
		assert.True(t, missing.ID.IsZero())

		exist, err := repo.Exist(ctx, idFilter(ids[1]))
		require.NoError(t, err)
		assert.True(t, exist)
	})

	t.Run("find one and update returns the new document", func(t *testing.T) {
		updated, err := repo.FindOneAndUpdate(ctx, map[string]any{"status": "approved"}, idFilter(ids[2]))
		require.NoError(t, err)
		assert.Equal(t, "approved", updated.Status)

		none, err := repo.FindOneAndUpdate(ctx, map[string]any{"status": "approved"}, idFilter(primitive.NewObjectID()))
		require.NoError(t, err)
		assert.True(t, none.ID.IsZero())
	})

	t.Run("update reports matched and modified", func(t *testing.T) {
		result, err := repo.Update(ctx, map[string]any{"status": "rejected"}, idFilter(ids[3]))
		require.NoError(t, err)
		assert.Equal(t, repository.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, result)

		result, err = repo.Update(ctx, map[string]any{"status": "rejected"}, idFilter(ids[3]))
		require.NoError(t, err)
		assert.Equal(t, repository.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, result)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, idFilter(ids[4]))
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		deleted, err = repo.Delete(ctx, idFilter(ids[4]))
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})

	t.Run("empty filter is refused for writes", func(t *testing.T) {
		_, err := repo.Delete(ctx, dto.FilterGroup{})

		assert.ErrorIs(t, err, repository.ErrRequiredFilter)
	})
}
