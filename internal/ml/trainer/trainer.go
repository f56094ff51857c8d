// Package trainer runs the offline training batch: read the full line-item
// history, build the three feature tables, fit, persist. One model's bad
// data or failed fit never stops the others.
package trainer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/smartsales/smartsales-backend/internal/logger"
	"github.com/smartsales/smartsales-backend/internal/ml/artifact"
	"github.com/smartsales/smartsales-backend/internal/ml/dataset"
	"github.com/smartsales/smartsales-backend/internal/ml/features"
	"github.com/smartsales/smartsales-backend/internal/ml/forest"
	"github.com/smartsales/smartsales-backend/internal/ml/mlconfig"
	"github.com/smartsales/smartsales-backend/internal/repos"
	"github.com/smartsales/smartsales-backend/internal/types"
)

type Status string

const (
	StatusTrained Status = "trained"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Result records one model's outcome, success or not, so per-model failures
// stay observable instead of being swallowed.
type Result struct {
	Role   artifact.Role `json:"role"`
	Status Status        `json:"status"`
	Rows   int           `json:"rows"`
	Err    string        `json:"error,omitempty"`
}

type Trainer struct {
	log      *logger.Logger
	cfg      *mlconfig.Config
	detalles repos.DetalleVentaRepo
	runs     repos.EntrenamientoRunRepo
}

func New(log *logger.Logger, cfg *mlconfig.Config, detalles repos.DetalleVentaRepo, runs repos.EntrenamientoRunRepo) *Trainer {
	return &Trainer{
		log:      log.With("component", "Trainer"),
		cfg:      cfg,
		detalles: detalles,
		runs:     runs,
	}
}

// Run executes the whole batch synchronously and returns one Result per
// model role. Only the initial history read is fatal.
func (t *Trainer) Run(ctx context.Context) ([]Result, error) {
	startedAt := time.Now().UTC()

	rows, err := t.detalles.GetAllLines(ctx, nil)
	if err != nil {
		return nil, err
	}
	lines := make([]dataset.Line, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, dataset.Line{
			SaleID:        r.VentaID,
			ProductID:     r.ProductoID,
			SubcategoryID: r.SubcategoriaID,
			Quantity:      r.Cantidad,
			Date:          r.Fecha,
		})
	}
	t.log.Info("Transaction history loaded", "lines", len(lines))

	opt := forest.Options{Trees: t.cfg.Trees, Seed: t.cfg.Seed}
	results := []Result{
		t.trainCategory(lines, opt),
		t.trainProduct(lines, opt),
		t.trainAffinity(lines, opt),
	}

	t.recordRun(ctx, startedAt, results)
	return results, nil
}

func (t *Trainer) trainCategory(lines []dataset.Line, opt forest.Options) Result {
	res := Result{Role: artifact.RoleCategoryDemand}
	table := dataset.BuildCategoryMonthly(lines)
	res.Rows = len(table)
	if len(table) == 0 {
		t.log.Warn("Category demand: no feature rows, skipping training")
		res.Status = StatusSkipped
		return res
	}

	x := make([][]float64, len(table))
	y := make([]float64, len(table))
	for i, row := range table {
		x[i] = features.CategoryDemand{
			SubcategoriaID:    row.SubcategoryID,
			Mes:               row.Month,
			VentasMesAnterior: row.PriorMonthQty,
		}.Vector()
		y[i] = row.Qty
	}

	model, err := forest.TrainRegressor(x, y, opt)
	if err != nil {
		t.log.Error("Category demand: training failed", "error", err)
		res.Status = StatusFailed
		res.Err = err.Error()
		return res
	}
	if err := artifact.SaveRegressor(t.cfg.ModelDir, artifact.RoleCategoryDemand, model); err != nil {
		t.log.Error("Category demand: persisting artifact failed", "error", err)
		res.Status = StatusFailed
		res.Err = err.Error()
		return res
	}
	t.log.Info("Category demand model trained", "rows", len(table), "trees", len(model.Trees))
	res.Status = StatusTrained
	return res
}

func (t *Trainer) trainProduct(lines []dataset.Line, opt forest.Options) Result {
	res := Result{Role: artifact.RoleProductDemand}
	table := dataset.BuildProductWeekly(lines)
	res.Rows = len(table)
	if len(table) == 0 {
		t.log.Warn("Product demand: no feature rows, skipping training")
		res.Status = StatusSkipped
		return res
	}

	x := make([][]float64, len(table))
	y := make([]float64, len(table))
	for i, row := range table {
		x[i] = features.ProductDemand{
			ProductoID:           row.ProductID,
			Mes:                  row.Month,
			SemanaDelAnio:        row.Week,
			VentasSemanaAnterior: row.PriorWeekQty,
		}.Vector()
		y[i] = row.Qty
	}

	model, err := forest.TrainRegressor(x, y, opt)
	if err != nil {
		t.log.Error("Product demand: training failed", "error", err)
		res.Status = StatusFailed
		res.Err = err.Error()
		return res
	}
	if err := artifact.SaveRegressor(t.cfg.ModelDir, artifact.RoleProductDemand, model); err != nil {
		t.log.Error("Product demand: persisting artifact failed", "error", err)
		res.Status = StatusFailed
		res.Err = err.Error()
		return res
	}
	t.log.Info("Product demand model trained", "rows", len(table), "trees", len(model.Trees))
	res.Status = StatusTrained
	return res
}

func (t *Trainer) trainAffinity(lines []dataset.Line, opt forest.Options) Result {
	res := Result{Role: artifact.RoleAffinity}
	table := dataset.BuildAffinityPairs(lines)
	res.Rows = len(table)
	if len(table) == 0 {
		t.log.Warn("Recommendation: no product pairs, skipping training")
		res.Status = StatusSkipped
		return res
	}

	x := make([][]float64, len(table))
	y := make([]float64, len(table))
	for i, row := range table {
		x[i] = features.Affinity{ProductoA: row.ProductA, ProductoB: row.ProductB}.Vector()
		y[i] = row.Together
	}

	model, err := forest.TrainClassifier(x, y, opt)
	if err != nil {
		t.log.Error("Recommendation: training failed", "error", err)
		res.Status = StatusFailed
		res.Err = err.Error()
		return res
	}
	if err := artifact.SaveClassifier(t.cfg.ModelDir, artifact.RoleAffinity, model); err != nil {
		t.log.Error("Recommendation: persisting artifact failed", "error", err)
		res.Status = StatusFailed
		res.Err = err.Error()
		return res
	}
	t.log.Info("Recommendation model trained", "pairs", len(table), "trees", len(model.Trees))
	res.Status = StatusTrained
	return res
}

// recordRun writes the audit row. Best effort: a failed insert must not fail
// a training run that already persisted its artifacts.
func (t *Trainer) recordRun(ctx context.Context, startedAt time.Time, results []Result) {
	if t.runs == nil {
		return
	}
	blob, err := json.Marshal(results)
	if err != nil {
		t.log.Warn("Could not marshal training results", "error", err)
		return
	}
	run := &types.EntrenamientoRun{
		ID:         uuid.New(),
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
		Resultados: datatypes.JSON(blob),
	}
	if err := t.runs.Create(ctx, nil, run); err != nil {
		t.log.Warn("Could not persist training run audit row", "error", err)
	}
}
