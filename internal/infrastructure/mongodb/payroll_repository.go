package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/payslip-api/internal/domain/entity"
	"github.com/jhoicas/payslip-api/internal/domain/payroll"
	"github.com/jhoicas/payslip-api/internal/domain/repository"
)

var _ repository.PayrollRepository = (*PayrollRepo)(nil)

const recordsField = "records"

// PayrollRepo documentos de nómina por empleado sobre MongoDB (colección "payrolls").
type PayrollRepo struct {
	coll *mongo.Collection
}

// NewPayrollRepository construye el adaptador de nóminas.
func NewPayrollRepository(coll *mongo.Collection) *PayrollRepo {
	return &PayrollRepo{coll: coll}
}

// FindByIdentifier busca por ippis_no sin distinguir mayúsculas o por service_no exacto.
func (r *PayrollRepo) FindByIdentifier(ctx context.Context, id string) (*entity.EmployeePayroll, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	var raw bson.M
	if err := r.coll.FindOne(ctx, lookupFilter(id)).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find payroll: %w", err)
	}
	return toEmployeePayroll(raw), nil
}

// BulkUpsert aplica las operaciones como un único BulkWrite ordenado.
func (r *PayrollRepo) BulkUpsert(ctx context.Context, ops []repository.PayrollUpsert) (repository.BulkResult, error) {
	models := make([]mongo.WriteModel, 0, len(ops))
	for _, op := range ops {
		filter := mergeFilter(op)
		if filter == nil {
			continue
		}
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(filter).
			SetUpdate(mergePipeline(op, time.Now().UTC())).
			SetUpsert(true))
	}
	if len(models) == 0 {
		return repository.BulkResult{}, nil
	}

	res, err := r.coll.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return repository.BulkResult{}, fmt.Errorf("bulk upsert payrolls: %w", err)
	}
	return repository.BulkResult{
		Matched:  res.MatchedCount,
		Inserted: res.UpsertedCount,
		Modified: res.ModifiedCount,
	}, nil
}

func lookupFilter(id string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"ippis_no": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(id) + "$", Options: "i"}},
		bson.M{"service_no": id},
	}}
}

// mergeFilter solo usa identificadores no vacíos; nil si no hay ninguno.
func mergeFilter(op repository.PayrollUpsert) bson.M {
	var or bson.A
	if op.IppisNo != "" {
		or = append(or, bson.M{"ippis_no": op.IppisNo})
	}
	if op.ServiceNo != "" {
		or = append(or, bson.M{"service_no": op.ServiceNo})
	}
	if len(or) == 0 {
		return nil
	}
	return bson.M{"$or": or}
}

// mergePipeline escribe la identidad y reemplaza en records los periodos que trae la operación.
// Los valores van envueltos en $literal para que un texto que empiece con "$" no se
// interprete como ruta de campo.
func mergePipeline(op repository.PayrollUpsert, now time.Time) mongo.Pipeline {
	set := bson.D{}
	for _, key := range identityKeys {
		set = append(set, bson.E{Key: key, Value: bson.M{"$literal": op.Identity.Fields()[key]}})
	}

	newRecords := make(bson.A, 0, len(op.Records))
	periods := make(bson.A, 0, len(op.Records))
	for _, rec := range op.Records {
		newRecords = append(newRecords, bson.M(rec))
		periods = append(periods, bson.M{"$and": bson.A{
			bson.M{"$eq": bson.A{bson.M{"$toString": "$$r.year"}, payroll.Text(rec.Get(payroll.ColYear))}},
			bson.M{"$eq": bson.A{
				bson.M{"$toLower": "$$r.month"},
				bson.M{"$literal": strings.ToLower(payroll.Text(rec.Get(payroll.ColMonth)))},
			}},
		}})
	}

	existing := bson.M{"$cond": bson.A{bson.M{"$isArray": "$" + recordsField}, "$" + recordsField, bson.A{}}}
	kept := bson.M{"$filter": bson.M{
		"input": existing,
		"as":    "r",
		"cond":  bson.M{"$not": bson.A{bson.M{"$or": periods}}},
	}}

	set = append(set,
		bson.E{Key: recordsField, Value: bson.M{"$concatArrays": bson.A{kept, bson.M{"$literal": newRecords}}}},
		bson.E{Key: "updated_at", Value: now},
	)
	return mongo.Pipeline{{{Key: "$set", Value: set}}}
}

var identityKeys = []string{
	"name", "ippis_no", "service_no", "gender", "tax_state",
	"date_of_first_appointment", "date_of_birth", "retirement_date",
}

func toEmployeePayroll(raw bson.M) *entity.EmployeePayroll {
	out := &entity.EmployeePayroll{Fields: make(map[string]any, len(raw))}
	for k, v := range raw {
		switch k {
		case "_id":
			out.ID = idString(v)
		case recordsField:
			out.Records = toRecords(v)
		default:
			out.Fields[k] = plainValue(v)
		}
	}
	return out
}

func toRecords(v any) []entity.MonthlyRecord {
	arr, ok := v.(bson.A)
	if !ok {
		return nil
	}
	out := make([]entity.MonthlyRecord, 0, len(arr))
	for _, item := range arr {
		m := toMap(item)
		if m == nil {
			continue
		}
		rec := make(entity.MonthlyRecord, len(m))
		for k, val := range m {
			rec[k] = plainValue(val)
		}
		out = append(out, rec)
	}
	return out
}

func toMap(v any) map[string]any {
	switch t := v.(type) {
	case bson.M:
		return t
	case map[string]any:
		return t
	case bson.D:
		return t.Map()
	default:
		return nil
	}
}

// plainValue convierte tipos BSON a valores Go simples para el mapeo canónico.
func plainValue(v any) any {
	switch t := v.(type) {
	case primitive.DateTime:
		return t.Time().UTC().Format("2006-01-02")
	case primitive.ObjectID:
		return t.Hex()
	case primitive.Decimal128:
		if f, err := strconv.ParseFloat(t.String(), 64); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

func idString(v any) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return payroll.Text(v)
}
