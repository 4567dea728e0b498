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

	"github.com/jhoicas/payslip-api/internal/domain/entity"
	"github.com/jhoicas/payslip-api/internal/domain/repository"
)

func ptr(s string) *string { return &s }

func TestLookupFilter_EscapaRegex(t *testing.T) {
	f := lookupFilter("A1.(x)")
	or := f["$or"].(bson.A)
	re := or[0].(bson.M)["ippis_no"].(primitive.Regex)
	assert.Equal(t, `^A1\.\(x\)$`, re.Pattern)
	assert.Equal(t, "i", re.Options)
	assert.Equal(t, "A1.(x)", or[1].(bson.M)["service_no"])
}

func TestMergeFilter_SoloIdentificadoresNoVacios(t *testing.T) {
	f := mergeFilter(repository.PayrollUpsert{ServiceNo: "NIS/002"})
	or := f["$or"].(bson.A)
	require.Len(t, or, 1)
	assert.Equal(t, bson.M{"service_no": "NIS/002"}, or[0])

	f = mergeFilter(repository.PayrollUpsert{IppisNo: "A1", ServiceNo: "NIS/001"})
	assert.Len(t, f["$or"].(bson.A), 2)

	assert.Nil(t, mergeFilter(repository.PayrollUpsert{}))
}

func TestMergePipeline_Estructura(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	op := repository.PayrollUpsert{
		IppisNo:  "A1",
		Identity: entity.EmployeeIdentity{Name: ptr("Jane Doe"), IppisNo: ptr("A1")},
		Records:  []entity.MonthlyRecord{{"year": 2019, "month": "August", "basic": float64(50000)}},
	}
	p := mergePipeline(op, now)
	require.Len(t, p, 1)
	require.Equal(t, "$set", p[0][0].Key)

	set := p[0][0].Value.(bson.D).Map()
	assert.Equal(t, bson.M{"$literal": "Jane Doe"}, set["name"])
	assert.Equal(t, bson.M{"$literal": nil}, set["service_no"], "la identidad ausente se escribe como null")
	assert.Equal(t, now, set["updated_at"])

	concat := set["records"].(bson.M)["$concatArrays"].(bson.A)
	require.Len(t, concat, 2)
	newRecords := concat[1].(bson.M)["$literal"].(bson.A)
	require.Len(t, newRecords, 1)
	assert.Equal(t, float64(50000), newRecords[0].(bson.M)["basic"])

	cond := concat[0].(bson.M)["$filter"].(bson.M)["cond"].(bson.M)
	periods := cond["$not"].(bson.A)[0].(bson.M)["$or"].(bson.A)
	require.Len(t, periods, 1)
	and := periods[0].(bson.M)["$and"].(bson.A)
	assert.Equal(t, bson.M{"$eq": bson.A{bson.M{"$toString": "$$r.year"}, "2019"}}, and[0])
	assert.Equal(t, bson.M{"$eq": bson.A{bson.M{"$toLower": "$$r.month"}, bson.M{"$literal": "august"}}}, and[1])
}

func TestToEmployeePayroll(t *testing.T) {
	oid := primitive.NewObjectID()
	born := primitive.NewDateTimeFromTime(time.Date(1980, 5, 17, 0, 0, 0, 0, time.UTC))
	raw := bson.M{
		"_id":           oid,
		"name":          "Jane Doe",
		"date_of_birth": born,
		"records": bson.A{
			bson.M{"year": int32(2019), "month": "August", "basic": 50000.0},
			bson.D{{Key: "year", Value: int32(2019)}, {Key: "month", Value: "September"}},
			"basura",
		},
	}
	doc := toEmployeePayroll(raw)
	assert.Equal(t, oid.Hex(), doc.ID)
	assert.Equal(t, "Jane Doe", doc.Get("name"))
	assert.Equal(t, "1980-05-17", doc.Get("date_of_birth"))
	require.Len(t, doc.Records, 2)
	assert.Equal(t, "September", doc.Records[1]["month"])
}

func TestPayrollRepo_Mongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("encuentra por identificador", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "ippis_no", Value: "A1"},
			{Key: "name", Value: "Jane Doe"},
			{Key: "records", Value: bson.A{bson.D{
				{Key: "year", Value: int32(2019)},
				{Key: "month", Value: "August"},
				{Key: "basic", Value: 50000.0},
			}}},
		}))

		repo := NewPayrollRepository(mt.Coll)
		doc, err := repo.FindByIdentifier(context.Background(), "a1")
		require.NoError(mt, err)
		require.NotNil(mt, doc)
		assert.Equal(mt, "A1", doc.Get("ippis_no"))
		require.Len(mt, doc.Records, 1)
		assert.Equal(mt, 50000.0, doc.Records[0]["basic"])
	})

	mt.Run("no encontrado", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		doc, err := NewPayrollRepository(mt.Coll).FindByIdentifier(context.Background(), "Z9")
		require.NoError(mt, err)
		assert.Nil(mt, doc)
	})

	mt.Run("bulk upsert", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 2},
			bson.E{Key: "nModified", Value: 1},
			bson.E{Key: "upserted", Value: bson.A{
				bson.D{{Key: "index", Value: 1}, {Key: "_id", Value: primitive.NewObjectID()}},
			}},
		))

		ops := []repository.PayrollUpsert{
			{IppisNo: "A1", Identity: entity.EmployeeIdentity{IppisNo: ptr("A1")},
				Records: []entity.MonthlyRecord{{"year": 2019, "month": "August"}}},
			{ServiceNo: "NIS/002", Identity: entity.EmployeeIdentity{ServiceNo: ptr("NIS/002")},
				Records: []entity.MonthlyRecord{{"year": 2019, "month": "August"}}},
		}
		res, err := NewPayrollRepository(mt.Coll).BulkUpsert(context.Background(), ops)
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.Inserted)
		assert.EqualValues(mt, 1, res.Modified)
	})

	mt.Run("bulk upsert sin operaciones no llama al servidor", func(mt *mtest.T) {
		res, err := NewPayrollRepository(mt.Coll).BulkUpsert(context.Background(), nil)
		require.NoError(mt, err)
		assert.Equal(mt, repository.BulkResult{}, res)
	})
}
