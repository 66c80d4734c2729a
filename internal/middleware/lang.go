package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/i18n"
)

// Language negotiates hu/en once per request from ?lang= or
// Accept-Language.
func Language() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(httperr.ContextLang, i18n.Negotiate(c.Query("lang"), c.GetHeader("Accept-Language")))
		c.Next()
	}
}
