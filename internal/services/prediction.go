package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"gorm.io/gorm"

	redisclient "github.com/smartsales/smartsales-backend/internal/clients/redis"
	"github.com/smartsales/smartsales-backend/internal/logger"
	"github.com/smartsales/smartsales-backend/internal/ml/features"
	"github.com/smartsales/smartsales-backend/internal/ml/registry"
	"github.com/smartsales/smartsales-backend/internal/repos"
)

var (
	// ErrModelNotLoaded means the registry slot for the requested model is
	// empty (artifact missing or corrupt at startup).
	ErrModelNotLoaded = errors.New("modelo no cargado")
	// ErrNoCandidates means there is no other product to recommend.
	ErrNoCandidates = errors.New("no se encontraron otros productos para recomendar")
)

const recoCacheTTL = 60 * time.Second

type CategoryInputs struct {
	MesActual             int   `json:"mes_actual"`
	VentasRealesMesPasado int64 `json:"ventas_reales_mes_pasado"`
}

type CategoryPrediction struct {
	SubcategoriaID       uint           `json:"subcategoria_id"`
	PrediccionProximoMes int            `json:"prediccion_proximo_mes"`
	DatosUsados          CategoryInputs `json:"datos_usados_para_predecir"`
}

type ProductInputs struct {
	MesActual                int   `json:"mes_actual"`
	SemanaActual             int   `json:"semana_actual"`
	VentasRealesUltimos7Dias int64 `json:"ventas_reales_ultimos_7_dias"`
}

type ProductPrediction struct {
	ProductoID              uint          `json:"producto_id"`
	PrediccionProximaSemana int           `json:"prediccion_proxima_semana"`
	DatosUsados             ProductInputs `json:"datos_usados_para_predecir"`
}

type Recomendacion struct {
	ProductoIDRecomendado uint   `json:"producto_id_recomendado"`
	Probabilidad          string `json:"probabilidad"`
}

type Recommendations struct {
	ProductoConsultado uint            `json:"producto_consultado"`
	Recomendaciones    []Recomendacion `json:"recomendaciones"`
}

type PredictionService interface {
	PredictVentasCategoria(ctx context.Context, subcategoriaID uint) (*CategoryPrediction, error)
	PredictDemandaProducto(ctx context.Context, productoID uint) (*ProductPrediction, error)
	RecommendProductos(ctx context.Context, productoID uint) (*Recommendations, error)
}

type predictionService struct {
	db        *gorm.DB
	log       *logger.Logger
	reg       *registry.Registry
	detalles  repos.DetalleVentaRepo
	productos repos.ProductoRepo
	cache     redisclient.Cache
	now       func() time.Time
}

// NewPredictionService wires the inference layer. The registry is injected
// fully loaded; reg must not change afterward. cache may be nil.
func NewPredictionService(db *gorm.DB, log *logger.Logger, reg *registry.Registry, detalles repos.DetalleVentaRepo, productos repos.ProductoRepo, cache redisclient.Cache) PredictionService {
	return &predictionService{
		db:        db,
		log:       log.With("service", "PredictionService"),
		reg:       reg,
		detalles:  detalles,
		productos: productos,
		cache:     cache,
		now:       time.Now,
	}
}

func (s *predictionService) PredictVentasCategoria(ctx context.Context, subcategoriaID uint) (*CategoryPrediction, error) {
	model := s.reg.CategoryModel()
	if model == nil {
		return nil, fmt.Errorf("ventas por categoría: %w", ErrModelNotLoaded)
	}

	hoy := s.now()
	mesActual := int(hoy.Month())

	// Previous calendar month, month boundaries, not a rolling window.
	primerDiaMesActual := time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, hoy.Location())
	primerDiaMesPasado := primerDiaMesActual.AddDate(0, -1, 0)

	ventasMesAnterior, err := s.detalles.SumCantidadBySubcategoria(ctx, nil, subcategoriaID, primerDiaMesPasado, primerDiaMesActual)
	if err != nil {
		return nil, fmt.Errorf("sumar ventas del mes pasado: %w", err)
	}

	vec := features.CategoryDemand{
		SubcategoriaID:    subcategoriaID,
		Mes:               mesActual,
		VentasMesAnterior: float64(ventasMesAnterior),
	}.Vector()
	pred, err := model.Predict(vec)
	if err != nil {
		return nil, fmt.Errorf("predecir ventas por categoría: %w", err)
	}

	return &CategoryPrediction{
		SubcategoriaID:       subcategoriaID,
		PrediccionProximoMes: int(math.Round(pred)),
		DatosUsados: CategoryInputs{
			MesActual:             mesActual,
			VentasRealesMesPasado: ventasMesAnterior,
		},
	}, nil
}

func (s *predictionService) PredictDemandaProducto(ctx context.Context, productoID uint) (*ProductPrediction, error) {
	model := s.reg.ProductModel()
	if model == nil {
		return nil, fmt.Errorf("demanda por producto: %w", ErrModelNotLoaded)
	}

	hoy := s.now()
	mesActual := int(hoy.Month())
	_, semanaActual := hoy.ISOWeek()

	// Trailing 7 days, rolling. The category endpoint is calendar-aligned;
	// this one is not, matching how each model was trained.
	hace7Dias := hoy.AddDate(0, 0, -7)
	ventasSemanaAnterior, err := s.detalles.SumCantidadByProducto(ctx, nil, productoID, hace7Dias)
	if err != nil {
		return nil, fmt.Errorf("sumar ventas de los últimos 7 días: %w", err)
	}

	vec := features.ProductDemand{
		ProductoID:           productoID,
		Mes:                  mesActual,
		SemanaDelAnio:        semanaActual,
		VentasSemanaAnterior: float64(ventasSemanaAnterior),
	}.Vector()
	pred, err := model.Predict(vec)
	if err != nil {
		return nil, fmt.Errorf("predecir demanda por producto: %w", err)
	}

	return &ProductPrediction{
		ProductoID:              productoID,
		PrediccionProximaSemana: int(math.Round(pred)),
		DatosUsados: ProductInputs{
			MesActual:                mesActual,
			SemanaActual:             semanaActual,
			VentasRealesUltimos7Dias: ventasSemanaAnterior,
		},
	}, nil
}

func (s *predictionService) RecommendProductos(ctx context.Context, productoID uint) (*Recommendations, error) {
	model := s.reg.AffinityModel()
	if model == nil {
		return nil, fmt.Errorf("recomendación: %w", ErrModelNotLoaded)
	}

	cacheKey := fmt.Sprintf("smartsales:reco:%d", productoID)
	if s.cache != nil {
		if b, ok := s.cache.Get(ctx, cacheKey); ok {
			var cached Recommendations
			if err := json.Unmarshal(b, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	otros, err := s.productos.GetOtherIDs(ctx, nil, productoID)
	if err != nil {
		return nil, fmt.Errorf("buscar otros productos: %w", err)
	}
	if len(otros) == 0 {
		return nil, ErrNoCandidates
	}

	type scored struct {
		id    uint
		proba float64
	}
	scores := make([]scored, 0, len(otros))
	for _, otro := range otros {
		vec := features.Affinity{ProductoA: productoID, ProductoB: otro}.Vector()
		proba, err := model.PredictProba(vec)
		if err != nil {
			return nil, fmt.Errorf("calcular afinidad: %w", err)
		}
		scores = append(scores, scored{id: otro, proba: proba})
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].proba > scores[j].proba })

	top := scores
	if len(top) > 3 {
		top = top[:3]
	}
	recos := make([]Recomendacion, 0, len(top))
	for _, sc := range top {
		recos = append(recos, Recomendacion{
			ProductoIDRecomendado: sc.id,
			Probabilidad:          fmt.Sprintf("%.2f%%", sc.proba*100),
		})
	}

	result := &Recommendations{ProductoConsultado: productoID, Recomendaciones: recos}
	if s.cache != nil {
		if b, err := json.Marshal(result); err == nil {
			s.cache.Set(ctx, cacheKey, b, recoCacheTTL)
		}
	}
	return result, nil
}
