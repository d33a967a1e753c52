package handler

import (
	"net/http"

	"github.com/webplotcentersj-hash/stock2/internal/apierror"
	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler { return &StockHandler{svc: svc} }

// Listar godoc
// @Summary Lista los artículos del stock
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param search query string false "Busca en código y descripción"
// @Param sector query string false "Filtra por sector"
// @Success 200 {array} dto.ArticuloResponse
// @Router /v1/stock [get]
func (h *StockHandler) Listar(c *gin.Context) {
	var filter dto.ArticuloFilter
	_ = c.ShouldBindQuery(&filter)

	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error consultando el stock"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StockHandler) Crear(c *gin.Context) {
	var req dto.CrearArticuloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StockHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarArticuloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StockHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
