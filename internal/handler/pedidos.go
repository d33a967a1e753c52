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

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

// Listar godoc
// @Summary Lista pedidos según el rol del usuario
// @Tags pedidos
// @Produce json
// @Security BearerAuth
// @Param approval_status query string false "Pendiente | Aprobado | Rechazado | all"
// @Param status query string false "Pendiente | En Proceso | Finalizado | all"
// @Success 200 {array} dto.PedidoResponse
// @Router /v1/pedidos [get]
func (h *PedidosHandler) Listar(c *gin.Context) {
	var filter dto.PedidoFilter
	_ = c.ShouldBindQuery(&filter)

	usuario := middleware.GetUser(c)
	resp, err := h.svc.Listar(c.Request.Context(), usuario, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error consultando pedidos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear godoc
// @Summary Crea un pedido con sus items; genera órdenes de compra por faltantes
// @Tags pedidos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CrearPedidoRequest true "Pedido"
// @Success 201 {object} dto.PedidoResponse
// @Failure 400 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Router /v1/pedidos [post]
func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
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

func (h *PedidosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuario := middleware.GetUser(c)
	resp, err := h.svc.Actualizar(c.Request.Context(), usuario, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidosHandler) Eliminar(c *gin.Context) {
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

// ListarItems serves /v1/pedidos-items?pedido_id= — items joined with the
// current articulo row so the UI can contrast snapshot vs live stock.
func (h *PedidosHandler) ListarItems(c *gin.Context) {
	raw := c.Query("pedido_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, apierror.New("pedido_id es requerido"))
		return
	}
	pedidoID, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("pedido_id inválido"))
		return
	}
	resp, err := h.svc.ListarItems(c.Request.Context(), pedidoID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error consultando items"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
