package handler

import (
	"net/http"

	"github.com/webplotcentersj-hash/stock2/internal/apierror"
	"github.com/webplotcentersj-hash/stock2/internal/middleware"
	"github.com/webplotcentersj-hash/stock2/internal/service"

	"github.com/gin-gonic/gin"
)

type UsuariosHandler struct{ svc service.UsuarioService }

func NewUsuariosHandler(svc service.UsuarioService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

// Listar returns every user except the caller, for assignment pickers.
func (h *UsuariosHandler) Listar(c *gin.Context) {
	usuario := middleware.GetUser(c)
	resp, err := h.svc.Listar(c.Request.Context(), usuario.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error consultando usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
