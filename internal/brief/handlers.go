package brief

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDailyBriefHandler serves GET /api/daily-brief. The response is
// always HTTP 200; failures travel in the Brief's status field so the
// client can branch on it.
func GetDailyBriefHandler(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		b := svc.Build(c.Request.Context())
		c.JSON(http.StatusOK, b)
	}
}
