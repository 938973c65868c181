package httperr

import (
	"net/http"

	"candidate-assistance/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError picks the status from the error's classification and
// uses the error text as the message. Unclassified errors are not echoed.
func AbortWithDomainError(c *gin.Context, err error) {
	AbortWithDomainErrorDetail(c, err, nil)
}

func AbortWithDomainErrorDetail(c *gin.Context, err error, detail any) {
	status := StatusFor(err)
	AbortWithError(c, status, err, MessageFor(status, err), detail)
}

// MessageFor is the client-facing message for err sent with status.
func MessageFor(status int, err error) string {
	if status >= http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}

var statusTable = []struct {
	sentinel error
	status   int
}{
	{errs.ErrNotFound, http.StatusNotFound},
	{errs.ErrInsufficientResources, http.StatusNotFound},
	{errs.ErrConfiguration, http.StatusNotFound},
	{errs.ErrConflict, http.StatusConflict},
	{errs.ErrAllocationFailed, http.StatusConflict},
	{errs.ErrImportFailed, http.StatusBadRequest},
	{errs.ErrDomainValidation, http.StatusBadRequest},
}

func StatusFor(err error) int {
	for _, e := range statusTable {
		if errs.Is(err, e.sentinel) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
