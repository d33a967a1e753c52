package handler

import (
	"net/http"

	"github.com/webplotcentersj-hash/stock2/internal/apierror"
	"github.com/webplotcentersj-hash/stock2/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Obtener serves the aggregated dashboard; responses are cached for 60s.
func (h *DashboardHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error calculando el dashboard"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
