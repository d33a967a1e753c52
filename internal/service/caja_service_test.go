package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/webplotcentersj-hash/stock2/internal/authz"
	"github.com/webplotcentersj-hash/stock2/internal/dto"
	"github.com/webplotcentersj-hash/stock2/internal/model"
	"github.com/webplotcentersj-hash/stock2/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMovimiento(r *stubCajaRepo, tipo string, monto float64, createdAt time.Time) {
	r.movimientos = append(r.movimientos, model.MovimientoCaja{
		ID:        uuid.New(),
		Tipo:      tipo,
		Concepto:  "test",
		Monto:     decimal.NewFromFloat(monto),
		UserID:    uuid.New(),
		CreatedAt: createdAt,
	})
}

func TestCrearMovimiento_Defaults(t *testing.T) {
	repo := &stubCajaRepo{}
	svc := service.NewCajaService(repo)
	usuario := &model.Usuario{ID: uuid.New(), Name: "Cajero", Role: "ventas"}

	resp, err := svc.Crear(context.Background(), usuario, dto.CrearMovimientoRequest{
		Tipo:     "Ingreso",
		Concepto: "Venta mostrador",
		Monto:    decimal.NewFromFloat(1500),
	})
	require.NoError(t, err)
	assert.Equal(t, "General", resp.Categoria)
	assert.Equal(t, "Efectivo", resp.MetodoPago)
	assert.Equal(t, usuario.ID.String(), resp.UserID)
}

func TestResumenCaja_SaldoEsIngresosMenosEgresos(t *testing.T) {
	repo := &stubCajaRepo{}
	svc := service.NewCajaService(repo)
	ahora := time.Now()

	seedMovimiento(repo, "Ingreso", 1000, ahora)
	seedMovimiento(repo, "Ingreso", 250.50, ahora)
	seedMovimiento(repo, "Egreso", 400.25, ahora)

	resumen, err := svc.Resumen(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1250.5", resumen.Resumen.TotalIngresos.String())
	assert.Equal(t, "400.25", resumen.Resumen.TotalEgresos.String())
	assert.Equal(t, "850.25", resumen.Resumen.SaldoActual.String())
	// property: saldo == ingresos - egresos
	assert.True(t, resumen.Resumen.SaldoActual.Equal(
		resumen.Resumen.TotalIngresos.Sub(resumen.Resumen.TotalEgresos)))
}

func TestResumenCaja_HoyExcluyeDiasAnteriores(t *testing.T) {
	repo := &stubCajaRepo{}
	svc := service.NewCajaService(repo)

	seedMovimiento(repo, "Ingreso", 100, time.Now())
	seedMovimiento(repo, "Ingreso", 900, time.Now().AddDate(0, 0, -1)) // yesterday
	seedMovimiento(repo, "Egreso", 50, time.Now())
	seedMovimiento(repo, "Egreso", 700, time.Now().AddDate(0, 0, -2)) // two days ago

	resumen, err := svc.Resumen(context.Background())
	require.NoError(t, err)
	// lifetime totals include everything
	assert.Equal(t, "1000", resumen.Resumen.TotalIngresos.String())
	// "hoy" only counts rows at or after local midnight
	assert.Equal(t, "100", resumen.Hoy.Ingreso.String())
	assert.Equal(t, "50", resumen.Hoy.Egreso.String())
}

func TestListarMovimientos_RemapeaTipoLegacy(t *testing.T) {
	repo := &stubCajaRepo{}
	svc := service.NewCajaService(repo)
	seedMovimiento(repo, "Ingreso", 10, time.Now())
	seedMovimiento(repo, "Egreso", 20, time.Now())

	out, err := svc.Listar(context.Background(), dto.MovimientoFilter{Tipo: "egreso"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Egreso", out[0].Tipo)
}

func TestEliminarMovimiento_SoloAdministracion(t *testing.T) {
	repo := &stubCajaRepo{}
	svc := service.NewCajaService(repo)
	seedMovimiento(repo, "Ingreso", 10, time.Now())
	id := repo.movimientos[0].ID

	ventas := &model.Usuario{ID: uuid.New(), Role: "ventas"}
	err := svc.Eliminar(context.Background(), ventas, id)
	assert.ErrorIs(t, err, authz.ErrForbidden)
	assert.Len(t, repo.movimientos, 1)

	admin := &model.Usuario{ID: uuid.New(), Role: authz.RolAdministracion}
	require.NoError(t, svc.Eliminar(context.Background(), admin, id))
	assert.Empty(t, repo.movimientos)
}
