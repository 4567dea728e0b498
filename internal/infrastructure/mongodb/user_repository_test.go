package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/jhoicas/payslip-api/internal/domain"
	"github.com/jhoicas/payslip-api/internal/domain/entity"
)

func TestUserRepo_Mongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create asigna ID", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		u := &entity.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "hash", Role: entity.RoleAdmin}
		require.NoError(mt, NewUserRepository(mt.Coll).Create(context.Background(), u))
		_, err := primitive.ObjectIDFromHex(u.ID)
		assert.NoError(mt, err)
	})

	mt.Run("create con email duplicado", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 11000, Message: "E11000 duplicate key error",
		}))

		err := NewUserRepository(mt.Coll).Create(context.Background(), &entity.User{Email: "ada@example.com"})
		assert.ErrorIs(mt, err, domain.ErrEmailAlreadyExists)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Ada"},
			{Key: "email", Value: "ada@example.com"},
			{Key: "password", Value: "hash"},
			{Key: "role", Value: "admin"},
			{Key: "createdAt", Value: time.Now()},
		}))

		u, err := NewUserRepository(mt.Coll).FindByEmail(context.Background(), "ada@example.com")
		require.NoError(mt, err)
		require.NotNil(mt, u)
		assert.Equal(mt, oid.Hex(), u.ID)
		assert.Equal(mt, "hash", u.PasswordHash)
		assert.Equal(mt, "admin", u.Role)
	})

	mt.Run("find by email inexistente", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		u, err := NewUserRepository(mt.Coll).FindByEmail(context.Background(), "nadie@example.com")
		require.NoError(mt, err)
		assert.Nil(mt, u)
	})

	mt.Run("list", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "a@example.com"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "b@example.com"}},
		)
		last := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, last)

		users, err := NewUserRepository(mt.Coll).List(context.Background())
		require.NoError(mt, err)
		require.Len(mt, users, 2)
		assert.Equal(mt, "b@example.com", users[1].Email)
	})

	mt.Run("update password inexistente", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}))

		err := NewUserRepository(mt.Coll).UpdatePassword(context.Background(), primitive.NewObjectID().Hex(), "h")
		assert.ErrorIs(mt, err, domain.ErrUserNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
		)
		repo := NewUserRepository(mt.Coll)
		id := primitive.NewObjectID().Hex()

		require.NoError(mt, repo.Delete(context.Background(), id))
		assert.ErrorIs(mt, repo.Delete(context.Background(), id), domain.ErrUserNotFound)
	})

	mt.Run("IDs mal formados", func(mt *mtest.T) {
		repo := NewUserRepository(mt.Coll)
		u, err := repo.GetByID(context.Background(), "no-es-hex")
		assert.NoError(mt, err)
		assert.Nil(mt, u)
		assert.ErrorIs(mt, repo.Delete(context.Background(), "no-es-hex"), domain.ErrUserNotFound)
	})
}
