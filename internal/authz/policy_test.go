package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	duenio := uuid.New()
	otro := uuid.New()

	cases := []struct {
		name    string
		role    string
		action  Action
		ownerID uuid.UUID
		caller  uuid.UUID
		allowed bool
	}{
		{"ventas crea pedidos", "ventas", ActionCrearPedido, uuid.Nil, otro, true},
		{"administración crea pedidos", RolAdministracion, ActionCrearPedido, uuid.Nil, otro, true},
		{"compras no crea pedidos", RolCompras, ActionCrearPedido, uuid.Nil, otro, false},

		{"administración ve todos", RolAdministracion, ActionVerTodosPedidos, uuid.Nil, otro, true},
		{"compras ve todos", RolCompras, ActionVerTodosPedidos, uuid.Nil, otro, true},
		{"ventas no ve todos", "ventas", ActionVerTodosPedidos, uuid.Nil, otro, false},

		{"compras aprueba", RolCompras, ActionAprobarPedido, duenio, otro, true},
		{"administración no aprueba", RolAdministracion, ActionAprobarPedido, duenio, otro, false},
		{"ventas no aprueba", "ventas", ActionAprobarPedido, duenio, otro, false},

		{"administración elimina cualquier pedido", RolAdministracion, ActionEliminarPedido, duenio, otro, true},
		{"creador elimina su pedido", "ventas", ActionEliminarPedido, duenio, duenio, true},
		{"tercero no elimina", "ventas", ActionEliminarPedido, duenio, otro, false},

		{"administración elimina caja", RolAdministracion, ActionEliminarCaja, uuid.Nil, otro, true},
		{"compras no elimina caja", RolCompras, ActionEliminarCaja, uuid.Nil, otro, false},

		{"acción desconocida denegada", RolAdministracion, Action("otra:cosa"), uuid.Nil, otro, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.role, tc.action, tc.ownerID, tc.caller)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrForbidden)
			}
		})
	}
}
