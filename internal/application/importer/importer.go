package importer

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/payslip-api/internal/domain/payroll"
	"github.com/jhoicas/payslip-api/internal/domain/repository"
	"github.com/jhoicas/payslip-api/pkg/logger"
)

// Report resumen de una corrida del import.
type Report struct {
	BatchID    string                     `json:"batch_id"`
	RowsRead   int                        `json:"rows_read"`
	Accepted   int                        `json:"accepted"`
	Skipped    map[payroll.SkipReason]int `json:"skipped"`
	Superseded []int                      `json:"superseded"`
	Operations int                        `json:"operations"`
	Matched    int64                      `json:"matched"`
	Inserted   int64                      `json:"inserted"`
	Modified   int64                      `json:"modified"`
}

// SkippedTotal filas descartadas por cualquier motivo.
func (r Report) SkippedTotal() int {
	n := 0
	for _, c := range r.Skipped {
		n += c
	}
	return n
}

// Importer limpia las filas del export y las fusiona en el historial de cada empleado.
type Importer struct {
	repo repository.PayrollRepository
	log  *logger.Logger
}

// New construye el importador.
func New(repo repository.PayrollRepository, log *logger.Logger) *Importer {
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{repo: repo, log: log}
}

type accepted struct {
	line int
	row  payroll.ParsedRow
}

// Run procesa las filas y escribe un único lote ordenado.
// Dentro de una corrida, la última fila de cada (clave, año, mes) gana; las anteriores
// se informan como reemplazadas. Un error del repositorio aborta la corrida.
func (im *Importer) Run(ctx context.Context, rows []Row) (Report, error) {
	report := Report{
		BatchID:  uuid.NewString(),
		RowsRead: len(rows),
		Skipped:  make(map[payroll.SkipReason]int),
	}
	log := im.log.WithStr("batch_id", report.BatchID)

	latest := make(map[string]accepted, len(rows))
	for _, r := range rows {
		parsed, reason := payroll.ParseRow(r.Values)
		if reason != payroll.SkipNone {
			report.Skipped[reason]++
			log.Debug().Int("line", r.Line).Str("reason", string(reason)).Msg("import: fila omitida")
			continue
		}
		report.Accepted++
		pk := parsed.PeriodKey()
		if prev, dup := latest[pk]; dup {
			report.Superseded = append(report.Superseded, prev.line)
			log.Warn().
				Int("line", prev.line).
				Int("replaced_by", r.Line).
				Str("key", parsed.Key).
				Msg("import: fila duplicada reemplazada por una posterior")
		}
		latest[pk] = accepted{line: r.Line, row: parsed}
	}
	sort.Ints(report.Superseded)

	ops := buildOperations(latest)
	report.Operations = len(ops)
	if len(ops) == 0 {
		log.Info().Int("rows", report.RowsRead).Msg("import: no hay filas válidas para escribir")
		return report, nil
	}

	res, err := im.repo.BulkUpsert(ctx, ops)
	if err != nil {
		return report, fmt.Errorf("import: escritura del lote: %w", err)
	}
	report.Matched = res.Matched
	report.Inserted = res.Inserted
	report.Modified = res.Modified

	log.Info().
		Int("rows", report.RowsRead).
		Int("accepted", report.Accepted).
		Int("skipped", report.SkippedTotal()).
		Int("superseded", len(report.Superseded)).
		Int("operations", report.Operations).
		Int64("inserted", report.Inserted).
		Int64("modified", report.Modified).
		Msg("import: lote aplicado")
	return report, nil
}

// buildOperations agrupa por clave de fusión en el orden de la última aparición en el archivo.
// La identidad viene de la última fila del empleado y los registros se pliegan con
// payroll.UpsertRecord (un registro por periodo).
func buildOperations(latest map[string]accepted) []repository.PayrollUpsert {
	entries := make([]accepted, 0, len(latest))
	for _, a := range latest {
		entries = append(entries, a)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].line < entries[j].line })

	index := make(map[string]int)
	var ops []repository.PayrollUpsert
	for _, a := range entries {
		i, ok := index[a.row.Key]
		if !ok {
			i = len(ops)
			index[a.row.Key] = i
			ops = append(ops, repository.PayrollUpsert{})
		}
		op := &ops[i]
		op.Identity = a.row.Identity
		op.IppisNo = deref(a.row.Identity.IppisNo)
		op.ServiceNo = deref(a.row.Identity.ServiceNo)
		op.Records = payroll.UpsertRecord(op.Records, a.row.Record)
	}
	return ops
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
