package service

import "fmt"

// EntradaInvalidaError marks failures caused by the request itself: malformed
// ids, references to rows that do not exist. Handlers answer these with 400;
// any other unexpected error is internal and never reaches the client verbatim.
type EntradaInvalidaError struct {
	Detalle string
}

func (e *EntradaInvalidaError) Error() string { return e.Detalle }

func errEntrada(format string, args ...interface{}) error {
	return &EntradaInvalidaError{Detalle: fmt.Sprintf(format, args...)}
}
