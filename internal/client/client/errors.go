package client

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/solarplan/internal/common"
)

var ErrUnavailable = errors.New("could not reach the server")

// APIError is a non-2xx answer. Message is the server's "error" field, or
// the status text when the body had none.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusBadRequest:
		return common.ErrorValidation
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	case http.StatusConflict:
		return common.ErrorConflict
	default:
		return common.ErrorInternal
	}
}
