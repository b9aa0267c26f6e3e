package httperr

import (
	"net/http"

	"lending-ledger/internal/pkg/errs"

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
		err = errs.New(msg)
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

var kindStatuses = []struct {
	kind   error
	status int
	msg    string
}{
	{errs.ErrNotFound, http.StatusNotFound, "Not found"},
	{errs.ErrInvalidTransition, http.StatusConflict, "Request was already handled"},
	{errs.ErrInsufficientAvailability, http.StatusConflict, "Item is no longer available, refresh and try again"},
	{errs.ErrValidation, http.StatusBadRequest, "Invalid request"},
	{errs.ErrInvalidState, http.StatusConflict, "Request is not in a state that allows this change"},
	{errs.ErrForbidden, http.StatusForbidden, "Forbidden"},
	{errs.ErrConflict, http.StatusConflict, "Conflict"},
	{errs.ErrUnauthorized, http.StatusUnauthorized, "Invalid credentials"},
}

// StatusOf maps an error kind to its HTTP status and a public message.
// Unclassified errors are internal.
func StatusOf(err error) (int, string) {
	for _, ks := range kindStatuses {
		if errs.Is(err, ks.kind) {
			return ks.status, ks.msg
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// AbortWithKind aborts with the status of err's kind. Validation failures
// carry the precise cause as the message.
func AbortWithKind(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	var detail any
	if status == http.StatusBadRequest {
		detail = errs.Cause(err).Error()
	}
	AbortWithError(c, status, err, msg, detail)
}
