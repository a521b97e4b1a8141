package backend

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable el backend no respondió (timeout, DNS, conexión
// rechazada). El borrador queda intacto y el usuario puede reintentar.
var ErrBackendUnavailable = errors.New("no se puede conectar con el backend")

// RemoteError el backend respondió con un estado de error (4xx/5xx distinto
// de 404). Conserva el mensaje del servidor para mostrarlo al usuario.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("backend respondió %d: %s", e.Status, e.Message)
}

// AsRemoteError desenvuelve un *RemoteError de la cadena de errores.
func AsRemoteError(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
