// Package authz centralizes every role/ownership decision in a single policy
// function so handlers and services never duplicate role string comparisons.
package authz

import (
	"errors"

	"github.com/google/uuid"
)

// Roles con privilegios especiales. Cualquier otro rol solo puede crear y
// consultar sus propios pedidos.
const (
	RolAdministracion = "administración"
	RolCompras        = "compras"
)

// Action identifies an operation subject to a policy decision.
type Action string

const (
	ActionCrearPedido     Action = "pedidos:crear"
	ActionVerTodosPedidos Action = "pedidos:ver_todos"
	ActionAprobarPedido   Action = "pedidos:aprobar"
	ActionEliminarPedido  Action = "pedidos:eliminar"
	ActionEliminarCaja    Action = "caja:eliminar"
)

// ErrForbidden is returned for every denied decision; handlers map it to 403.
var ErrForbidden = errors.New("permisos insuficientes")

// Authorize evaluates (role, action, resource owner, caller) and returns nil
// when allowed or ErrForbidden otherwise. ownerID is only consulted for
// ownership-scoped actions and may be uuid.Nil elsewhere.
func Authorize(role string, action Action, ownerID, callerID uuid.UUID) error {
	switch action {
	case ActionCrearPedido:
		// Compras raises purchase orders; it never creates sales orders.
		if role == RolCompras {
			return ErrForbidden
		}
		return nil
	case ActionVerTodosPedidos:
		if role == RolAdministracion || role == RolCompras {
			return nil
		}
		return ErrForbidden
	case ActionAprobarPedido:
		if role == RolCompras {
			return nil
		}
		return ErrForbidden
	case ActionEliminarPedido:
		if role == RolAdministracion || ownerID == callerID {
			return nil
		}
		return ErrForbidden
	case ActionEliminarCaja:
		if role == RolAdministracion {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}
