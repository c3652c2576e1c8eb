package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/krvjanand/physician-directory/internal/settings"
)

// Handler carries the dependencies shared by all HTTP handlers: the database,
// the visibility settings store, and a logger.
type Handler struct {
	DB       *mongo.Database
	Settings settings.Store
	Log      zerolog.Logger
}

func NewHandler(db *mongo.Database, store settings.Store, logger zerolog.Logger) *Handler {
	return &Handler{
		DB:       db,
		Settings: store,
		Log:      logger,
	}
}

// requireAdmin aborts with 403 unless the authenticated caller has the admin
// role. Returns false when the request was aborted.
func requireAdmin(c *gin.Context) bool {
	role, _ := c.Get("userRole")
	if role != "admin" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permission denied."})
		return false
	}
	return true
}
