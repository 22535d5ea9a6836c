package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/solarplan/internal/common"
	"github.com/gin-gonic/gin"
)

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

// statusOf maps a domain error to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error. Client errors carry the domain message;
// anything else is logged and answered with a generic text.
func (s *HTTPServer) fail(c *gin.Context, err error) {
	code := statusOf(err)

	msg := clientMessage(err)
	if code == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err.Error())
		msg = common.ErrorInternal.Error()
	}

	c.AbortWithStatusJSON(code, errorResponse{Error: msg})
}

// clientMessage strips the wrapping added between the sentinel and the
// detail, so "error creating project: validation error: missing nome"
// reads "validation error: missing nome".
func clientMessage(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{common.ErrorValidation, common.ErrorNotFound, common.ErrorUnauthorized, common.ErrorConflict} {
		if i := strings.Index(msg, sentinel.Error()); i >= 0 {
			return msg[i:]
		}
	}
	return msg
}

func badBody(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "validation error: malformed JSON body"})
}
