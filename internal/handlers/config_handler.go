package handlers

import (
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/krvjanand/physician-directory/internal/models"
	"github.com/krvjanand/physician-directory/internal/settings"
)

// GetBranding serves the current brand name and logo. The logo goes out as a
// hex dump of the stored bytes; clients decode it via the branding package.
func (h *Handler) GetBranding(c *gin.Context) {
	ctx := c.Request.Context()

	var cfg models.BrandingConfig
	collection := h.DB.Collection("branding")
	err := collection.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})).Decode(&cfg)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, gin.H{"brand_name": "", "logo": nil})
		return
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("loading branding failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve configuration"})
		return
	}

	var logo interface{}
	if len(cfg.Logo) > 0 {
		logo = hex.EncodeToString(cfg.Logo)
	}
	c.JSON(http.StatusOK, gin.H{"brand_name": cfg.BrandName, "logo": logo})
}

// UpdateBranding accepts a multipart form with the brand name and an optional
// logo file, overwriting the latest branding record. Admin only.
func (h *Handler) UpdateBranding(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	ctx := c.Request.Context()

	brandName := c.PostForm("brand_name")
	if brandName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brand name is required"})
		return
	}

	var logo []byte
	if file, err := c.FormFile("logo"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read logo file"})
			return
		}
		defer f.Close()
		logo, err = io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read logo file"})
			return
		}
	}

	collection := h.DB.Collection("branding")

	update := bson.M{"brandName": brandName, "updatedAt": time.Now()}
	if len(logo) > 0 {
		update["logo"] = logo
	}

	var latest models.BrandingConfig
	err := collection.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "updatedAt", Value: -1}})).Decode(&latest)
	switch err {
	case nil:
		_, err = collection.UpdateOne(ctx, bson.M{"_id": latest.ID}, bson.M{"$set": update})
	case mongo.ErrNoDocuments:
		_, err = collection.InsertOne(ctx, models.BrandingConfig{
			BrandName: brandName,
			Logo:      logo,
			UpdatedAt: time.Now(),
		})
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("saving branding failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save configuration"})
		return
	}

	h.Log.Info().Str("brand_name", brandName).Bool("logo", len(logo) > 0).Msg("branding updated")
	c.JSON(http.StatusOK, gin.H{"message": "Configuration updated successfully!"})
}

// GetSettings serves the visibility toggle mapping the listing UI renders
// against. Absent persisted state yields the defaults (everything visible).
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"config": h.Settings.Load(c.Request.Context())})
}

// SaveSettings overwrites the visibility mapping wholesale. Unknown keys are
// dropped and missing ones filled back in from the defaults. Admin only.
func (h *Handler) SaveSettings(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}

	var incoming settings.Settings
	if err := c.ShouldBindJSON(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	normalized := settings.Normalize(incoming)
	if err := h.Settings.Save(c.Request.Context(), normalized); err != nil {
		h.Log.Error().Err(err).Msg("saving settings failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save configuration"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Configuration saved", "config": normalized})
}
