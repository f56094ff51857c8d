package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/smartsales/smartsales-backend/internal/services"
)

type stubPredictionService struct {
	categoryErr error
	productErr  error
	recoErr     error
}

func (s *stubPredictionService) PredictVentasCategoria(_ context.Context, id uint) (*services.CategoryPrediction, error) {
	if s.categoryErr != nil {
		return nil, s.categoryErr
	}
	return &services.CategoryPrediction{SubcategoriaID: id, PrediccionProximoMes: 12}, nil
}

func (s *stubPredictionService) PredictDemandaProducto(_ context.Context, id uint) (*services.ProductPrediction, error) {
	if s.productErr != nil {
		return nil, s.productErr
	}
	return &services.ProductPrediction{ProductoID: id, PrediccionProximaSemana: 3}, nil
}

func (s *stubPredictionService) RecommendProductos(_ context.Context, id uint) (*services.Recommendations, error) {
	if s.recoErr != nil {
		return nil, s.recoErr
	}
	return &services.Recommendations{
		ProductoConsultado: id,
		Recomendaciones: []services.Recomendacion{
			{ProductoIDRecomendado: 2, Probabilidad: "84.00%"},
		},
	}, nil
}

func newTestRouter(svc services.PredictionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ph := NewPredictionHandler(svc)
	router := gin.New()
	router.GET("/api/predict/sales/category/:subcategoria_id", ph.PredictSalesCategory)
	router.GET("/api/predict/demand/:producto_id", ph.PredictDemand)
	router.GET("/api/predict/recommend/:producto_id", ph.Recommend)
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPredictionEndpointsOK(t *testing.T) {
	router := newTestRouter(&stubPredictionService{})

	w := doGet(t, router, "/api/predict/sales/category/5")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	var cat services.CategoryPrediction
	if err := json.Unmarshal(w.Body.Bytes(), &cat); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cat.SubcategoriaID != 5 || cat.PrediccionProximoMes != 12 {
		t.Fatalf("body = %+v", cat)
	}

	w = doGet(t, router, "/api/predict/recommend/1")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
}

func TestInvalidIDsAre400(t *testing.T) {
	router := newTestRouter(&stubPredictionService{})

	for _, path := range []string{
		"/api/predict/sales/category/abc",
		"/api/predict/demand/-4",
		"/api/predict/recommend/0",
	} {
		w := doGet(t, router, path)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d, want 400", path, w.Code)
		}
		var env ErrorEnvelope
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s: decode: %v", path, err)
		}
		if env.Error.Code != "invalid_id" {
			t.Fatalf("%s: code %q, want invalid_id", path, env.Error.Code)
		}
	}
}

func TestModelNotLoadedIs500(t *testing.T) {
	router := newTestRouter(&stubPredictionService{categoryErr: services.ErrModelNotLoaded})

	w := doGet(t, router, "/api/predict/sales/category/1")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", w.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Code != "model_not_loaded" {
		t.Fatalf("code %q, want model_not_loaded", env.Error.Code)
	}
}

func TestNoCandidatesIs404(t *testing.T) {
	router := newTestRouter(&stubPredictionService{recoErr: services.ErrNoCandidates})

	w := doGet(t, router, "/api/predict/recommend/1")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	var env ErrorEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Error.Code != "no_candidates" {
		t.Fatalf("code %q, want no_candidates", env.Error.Code)
	}
}
