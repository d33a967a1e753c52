package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/webplotcentersj-hash/stock2/internal/apierror"
	"github.com/webplotcentersj-hash/stock2/internal/authz"
	"github.com/webplotcentersj-hash/stock2/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// writeServiceError maps well-known service errors to their HTTP status.
// Anything unexpected becomes a 500 with a generic detail.
func writeServiceError(c *gin.Context, err error) {
	var entrada *service.EntradaInvalidaError
	switch {
	case errors.Is(err, authz.ErrForbidden):
		c.JSON(http.StatusForbidden, apierror.New(err.Error()))
	case errors.Is(err, service.ErrSinCampos), errors.Is(err, service.ErrMotivoRequerido),
		errors.Is(err, service.ErrOrdenYaCompletada):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrPedidoNoEncontrado), errors.Is(err, service.ErrOrdenNoEncontrada):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.As(err, &entrada):
		c.JSON(http.StatusBadRequest, apierror.New(entrada.Detalle))
	default:
		// DB and other unexpected errors: log via the error middleware, answer
		// with a generic detail so driver messages never reach the client.
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}
