package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/michemobile/marketplace-api/internal/httperr"
)

// respondUsecaseError maps use-case failures onto the HTTP envelope.
// Business codes become 400s (404 for *_not_found); anything else is a 500.
func respondUsecaseError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		if strings.HasSuffix(code, "_not_found") {
			httperr.NotFound(c, code, "Not found.")
			return
		}
		httperr.BadRequest(c, code, "Request rejected.")
		return
	}
	httperr.Internal(c, "internal_error", "Something went wrong.")
}
