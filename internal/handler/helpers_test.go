package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/webplotcentersj-hash/stock2/internal/authz"
	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBindAndValidate_JSONInvalido(t *testing.T) {
	c, w := testContext("{no es json")
	var req dto.LoginRequest
	ok := bindAndValidate(c, &req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBindAndValidate_CamposInvalidos(t *testing.T) {
	c, w := testContext(`{"email":"no-es-email","password":""}`)
	var req dto.LoginRequest
	ok := bindAndValidate(c, &req)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "fields")
}

func TestBindAndValidate_DecimalComoNumero(t *testing.T) {
	// decimal.Decimal fields must pass numeric validator tags (gt=0)
	c, w := testContext(`{"tipo":"Ingreso","concepto":"venta","monto":"150.50"}`)
	var req dto.CrearMovimientoRequest
	ok := bindAndValidate(c, &req)
	assert.True(t, ok, w.Body.String())

	c, w = testContext(`{"tipo":"Ingreso","concepto":"venta","monto":"-5"}`)
	var req2 dto.CrearMovimientoRequest
	ok = bindAndValidate(c, &req2)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestWriteServiceError_Mapeo(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{authz.ErrForbidden, http.StatusForbidden},
		{service.ErrSinCampos, http.StatusBadRequest},
		{service.ErrMotivoRequerido, http.StatusBadRequest},
		{service.ErrOrdenYaCompletada, http.StatusBadRequest},
		{service.ErrPedidoNoEncontrado, http.StatusNotFound},
		{service.ErrOrdenNoEncontrada, http.StatusNotFound},
		{&service.EntradaInvalidaError{Detalle: "id inválido"}, http.StatusBadRequest},
	}
	for _, tc := range cases {
		c, w := testContext("")
		writeServiceError(c, tc.err)
		assert.Equal(t, tc.status, w.Code, tc.err.Error())
		assert.Contains(t, w.Body.String(), "detail")
	}
}

func TestWriteServiceError_ErroresInternosNoFiltran(t *testing.T) {
	c, w := testContext("")
	writeServiceError(c, errors.New(`pq: duplicate key value violates unique constraint "uni_movimientos_caja"`))

	// Generic 500, driver message only in c.Errors for the logging middleware
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Error interno del servidor")
	assert.NotContains(t, w.Body.String(), "pq:")
	assert.Len(t, c.Errors, 1)
}
