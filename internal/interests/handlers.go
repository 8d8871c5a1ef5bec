package interests

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHandler returns the stored topic map
func GetHandler(store *Store, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := store.Load()
		if err != nil {
			logger.Error("Failed to load interests", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load interests"})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// SaveHandler validates and persists a new topic map
func SaveHandler(store *Store, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]interface{}
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		if err := ValidatePayload(payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m := make(map[string]bool, len(payload))
		for topic, value := range payload {
			enabled, ok := value.(bool)
			if !ok {
				// Schema validation already rejects non-booleans
				c.JSON(http.StatusBadRequest, gin.H{"error": "interest values must be boolean"})
				return
			}
			m[topic] = enabled
		}

		if err := store.Save(m); err != nil {
			logger.Error("Failed to save interests", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save interests"})
			return
		}

		logger.Info("Interests updated", "topics", len(m))
		c.JSON(http.StatusOK, gin.H{"status": "saved"})
	}
}
