package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/i18n"
)

// ContextLang is the gin context key holding the negotiated language.
const ContextLang = "lang"

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Lang returns the language negotiated for the request.
func Lang(c *gin.Context) string {
	if v, ok := c.Get(ContextLang); ok {
		if lang, ok := v.(string); ok {
			return lang
		}
	}
	return i18n.Negotiate(c.Query("lang"), c.GetHeader("Accept-Language"))
}

func Write(c *gin.Context, status int, code string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: i18n.Message(Lang(c), code),
	})
}

func BadRequest(c *gin.Context, code string) {
	Write(c, http.StatusBadRequest, code)
}

// Invalid reports a binding failure together with the validator output.
func Invalid(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
		Code:    "invalid_request",
		Message: i18n.Message(Lang(c), "invalid_request"),
		Details: err.Error(),
	})
}

func NotFound(c *gin.Context, code string) {
	Write(c, http.StatusNotFound, code)
}

func Conflict(c *gin.Context, code string) {
	Write(c, http.StatusConflict, code)
}

func Internal(c *gin.Context, code string) {
	Write(c, http.StatusInternalServerError, code)
}

func TooManyRequests(c *gin.Context) {
	Write(c, http.StatusTooManyRequests, "rate_limited")
}

var businessStatus = map[string]int{
	"store_not_found":       http.StatusNotFound,
	"worker_not_found":      http.StatusNotFound,
	"slot_not_found":        http.StatusNotFound,
	"client_not_found":      http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,
	"friend_not_found":      http.StatusNotFound,

	"slot_taken":          http.StatusConflict,
	"slot_already_exists": http.StatusConflict,
	"slot_in_use":         http.StatusConflict,
	"store_slug_taken":    http.StatusConflict,
	"email_taken":         http.StatusConflict,
	"already_friends":     http.StatusConflict,
	"invalid_state":       http.StatusConflict,
}

// Respond writes err as a localized JSON error. Business errors map to
// their status (400 when unlisted), anything else becomes a 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		status, ok := businessStatus[be.Code]
		if !ok {
			status = http.StatusBadRequest
		}
		Write(c, status, be.Code)
		return
	}
	Internal(c, "internal_error")
}
