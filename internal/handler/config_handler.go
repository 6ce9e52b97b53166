package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MarloFC/ArchProj/internal/model"
	"github.com/MarloFC/ArchProj/pkg/database"
	"github.com/MarloFC/ArchProj/pkg/logger"
	"github.com/MarloFC/ArchProj/prometheus"
)

// SaveConfigRequest is the config write envelope. Type selects which disjoint
// field subset of the singleton the write touches; Data carries the fields as
// raw JSON so the handler can tell an explicit null (clear the field) apart
// from an absent key (leave the stored value untouched).
type SaveConfigRequest struct {
	Type string                     `json:"type"`
	Data map[string]json.RawMessage `json:"data"`
}

// GetConfig returns the singleton configuration row, or a fully populated
// default object when no row exists. A missing row is not an error.
func GetConfig(c echo.Context) error {
	log := logger.FromEcho(c)

	var cfg model.SiteConfig
	result := database.GetDB().Where("id = ?", model.SiteConfigID).First(&cfg)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusOK, model.DefaultSiteConfig())
		}
		log.Error("Failed to fetch site config", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to fetch configuration",
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// SaveConfig upserts the singleton row keyed on the fixed identifier. Present
// payload keys override stored values, explicit nulls clear them, absent keys
// are untouched. Concurrent writes with the same type are last-writer-wins.
func SaveConfig(c echo.Context) error {
	log := logger.FromEcho(c)

	var req SaveConfigRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid config payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var fields map[string]string
	switch req.Type {
	case "content":
		fields = model.ContentFields
	case "colors":
		fields = model.ColorFields
	default:
		log.Warn("Unknown config type", zap.String("type", req.Type))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid type"})
	}

	updates, badField := collectUpdates(req.Type, req.Data, fields)
	if badField != "" {
		log.Warn("Malformed config field",
			zap.String("type", req.Type),
			zap.String("field", badField))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid field value",
			"field": badField,
		})
	}

	log.Info("Saving site config",
		zap.String("type", req.Type),
		zap.Int("fields", len(updates)))

	db := database.GetDB()
	defer prometheus.TrackDBOperation("upsert")(time.Now())

	var cfg model.SiteConfig
	err := db.Where("id = ?", model.SiteConfigID).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = model.SiteConfig{ID: model.SiteConfigID}
		if createErr := db.Create(&cfg).Error; createErr != nil {
			// A concurrent write may have created the row first; the
			// Updates below still lands on the fixed key either way.
			log.Warn("Config row create raced", zap.Error(createErr))
		}
	} else if err != nil {
		log.Error("Failed to load site config for write",
			zap.String("type", req.Type),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to save configuration",
			"type":  req.Type,
		})
	}

	if len(updates) > 0 {
		if err := db.Model(&model.SiteConfig{}).
			Where("id = ?", model.SiteConfigID).
			Updates(updates).Error; err != nil {
			log.Error("Failed to save site config",
				zap.String("type", req.Type),
				zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error": "Failed to save configuration",
				"type":  req.Type,
			})
		}
	}

	prometheus.ContentWriteCounter.WithLabelValues("site_config", "upsert").Inc()

	// Config feeds every public page.
	invalidateAll()

	var saved model.SiteConfig
	if err := db.Where("id = ?", model.SiteConfigID).First(&saved).Error; err != nil {
		log.Error("Failed to reload saved config", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to save configuration",
			"type":  req.Type,
		})
	}

	log.Info("Site config saved", zap.String("type", req.Type))
	return c.JSON(http.StatusOK, echo.Map{"success": true, "config": saved})
}

// collectUpdates turns the raw payload into a column update map for the
// requested field subset. Returns the offending payload key when a value has
// the wrong JSON type.
func collectUpdates(reqType string, data map[string]json.RawMessage, fields map[string]string) (map[string]interface{}, string) {
	updates := make(map[string]interface{})

	for key, column := range fields {
		raw, ok := data[key]
		if !ok {
			continue
		}
		if string(raw) == "null" {
			updates[column] = nil
			continue
		}

		if reqType == "content" && model.IntFields[key] {
			var v int
			if err := json.Unmarshal(raw, &v); err != nil {
				return nil, key
			}
			updates[column] = v
			continue
		}

		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, key
		}
		updates[column] = s
	}

	return updates, ""
}
