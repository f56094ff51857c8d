package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartsales/smartsales-backend/internal/services"
)

type PredictionHandler struct {
	predictionService services.PredictionService
}

func NewPredictionHandler(predictionService services.PredictionService) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService}
}

// PredictSalesCategory handles GET /api/predict/sales/category/:subcategoria_id.
func (ph *PredictionHandler) PredictSalesCategory(c *gin.Context) {
	subcategoriaID, ok := parseID(c, "subcategoria_id")
	if !ok {
		return
	}

	pred, err := ph.predictionService.PredictVentasCategoria(c.Request.Context(), subcategoriaID)
	if err != nil {
		respondPredictionError(c, err)
		return
	}
	RespondOK(c, pred)
}

// PredictDemand handles GET /api/predict/demand/:producto_id.
func (ph *PredictionHandler) PredictDemand(c *gin.Context) {
	productoID, ok := parseID(c, "producto_id")
	if !ok {
		return
	}

	pred, err := ph.predictionService.PredictDemandaProducto(c.Request.Context(), productoID)
	if err != nil {
		respondPredictionError(c, err)
		return
	}
	RespondOK(c, pred)
}

// Recommend handles GET /api/predict/recommend/:producto_id.
func (ph *PredictionHandler) Recommend(c *gin.Context) {
	productoID, ok := parseID(c, "producto_id")
	if !ok {
		return
	}

	recos, err := ph.predictionService.RecommendProductos(c.Request.Context(), productoID)
	if err != nil {
		respondPredictionError(c, err)
		return
	}
	RespondOK(c, recos)
}

// parseID reads a positive integer path parameter, answering 400 itself on
// anything else. The upstream system accepted ids on faith; here they are
// validated at the edge.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("%s debe ser un entero positivo", name))
		return 0, false
	}
	return uint(id), true
}

func respondPredictionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrModelNotLoaded):
		RespondError(c, http.StatusInternalServerError, "model_not_loaded", err)
	case errors.Is(err, services.ErrNoCandidates):
		RespondError(c, http.StatusNotFound, "no_candidates", err)
	default:
		RespondError(c, http.StatusInternalServerError, "prediction_failed", err)
	}
}
