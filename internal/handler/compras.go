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

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// Listar godoc
// @Summary Lista las órdenes de compra
// @Tags compras
// @Produce json
// @Security BearerAuth
// @Param status query string false "Canónico o legacy (pendiente/aprobada/recibida)"
// @Success 200 {array} dto.OrdenCompraResponse
// @Router /v1/compras [get]
func (h *ComprasHandler) Listar(c *gin.Context) {
	var filter dto.OrdenCompraFilter
	_ = c.ShouldBindQuery(&filter)

	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error consultando órdenes de compra"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ComprasHandler) Crear(c *gin.Context) {
	var req dto.CrearOrdenCompraRequest
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

func (h *ComprasHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarOrdenCompraRequest
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

func (h *ComprasHandler) Eliminar(c *gin.Context) {
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

// DescargarPDF renders the printable purchase order and streams it back.
func (h *ComprasHandler) DescargarPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	path, err := h.svc.GenerarPDF(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=orden_compra_"+id.String()+".pdf")
	c.File(path)
}
