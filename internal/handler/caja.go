package handler

import (
	"net/http"

	"github.com/webplotcentersj-hash/stock2/internal/apierror"
	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/middleware"
	"github.com/webplotcentersj-hash/stock2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// Listar godoc
// @Summary Lista movimientos de caja o devuelve el resumen agregado
// @Tags caja
// @Produce json
// @Security BearerAuth
// @Param tipo query string false "Ingreso | Egreso (acepta legacy minúsculas)"
// @Param fecha_desde query string false "YYYY-MM-DD"
// @Param fecha_hasta query string false "YYYY-MM-DD"
// @Param summary query bool false "true devuelve totales en lugar del listado"
// @Success 200 {array} dto.MovimientoResponse
// @Router /v1/caja [get]
func (h *CajaHandler) Listar(c *gin.Context) {
	var filter dto.MovimientoFilter
	_ = c.ShouldBindQuery(&filter)

	if filter.Summary {
		resp, err := h.svc.Resumen(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error calculando el resumen de caja"))
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error consultando movimientos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CajaHandler) Crear(c *gin.Context) {
	var req dto.CrearMovimientoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuario := middleware.GetUser(c)
	resp, err := h.svc.Crear(c.Request.Context(), usuario, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CajaHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	usuario := middleware.GetUser(c)
	if err := h.svc.Eliminar(c.Request.Context(), usuario, id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
