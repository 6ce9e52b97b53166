package handler

import (
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

// ServiceRequest defines the structure for service creation/update requests.
// Pointer fields distinguish omitted optional values, which clear to null on
// update; callers resend the full object.
type ServiceRequest struct {
	Title               *string `json:"title"`
	Description         *string `json:"description"`
	DetailedDescription *string `json:"detailedDescription"`
	Icon                *string `json:"icon"`
	IconSvg             *string `json:"iconSvg"`
	IconImageUrl        *string `json:"iconImageUrl"`
	Order               *int    `json:"order"`
}

// nextOrder returns max(display_order)+1 for append-to-end creation, so new
// rows never collide with survivors of earlier deletes or reorders.
func nextOrder(db *gorm.DB, entity interface{}) (int, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())
	var next int
	err := db.Model(entity).Select("COALESCE(MAX(display_order), -1) + 1").Scan(&next).Error
	return next, err
}

func iconOrDefault(icon *string) string {
	if icon == nil || *icon == "" {
		return model.DefaultIconName
	}
	return *icon
}

// ListServices returns all services ordered ascending by display order.
func ListServices(c echo.Context) error {
	log := logger.FromEcho(c)

	var services []model.Service
	if result := database.GetDB().Order("display_order asc").Find(&services); result.Error != nil {
		log.Error("Failed to list services", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch services"})
	}

	return c.JSON(http.StatusOK, services)
}

// CreateService creates a new service. A missing icon falls back to the
// default icon name; a missing order appends to the end of the list.
func CreateService(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid service payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	db := database.GetDB()

	order := 0
	if req.Order != nil {
		order = *req.Order
	} else {
		next, err := nextOrder(db, &model.Service{})
		if err != nil {
			log.Error("Failed to compute service order", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create service"})
		}
		order = next
	}

	service := model.Service{
		Title:               req.Title,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Icon:                iconOrDefault(req.Icon),
		IconSvg:             req.IconSvg,
		IconImageUrl:        req.IconImageUrl,
		Order:               order,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := db.Create(&service); result.Error != nil {
		log.Error("Failed to create service", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create service"})
	}

	prometheus.ContentWriteCounter.WithLabelValues("service", "create").Inc()
	invalidateHome()

	log.Info("Service created",
		zap.Uint("service_id", service.ID),
		zap.Int("order", service.Order))
	return c.JSON(http.StatusCreated, service)
}

// UpdateService replaces the full field set of an existing service. Omitted
// optional fields clear to null.
func UpdateService(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid service payload", zap.String("service_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var service model.Service
	if result := database.GetDB().First(&service, id); result.Error != nil {
		log.Warn("Service not found for update", zap.String("service_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Service not found"})
	}

	service.Title = req.Title
	service.Description = req.Description
	service.DetailedDescription = req.DetailedDescription
	service.Icon = iconOrDefault(req.Icon)
	service.IconSvg = req.IconSvg
	service.IconImageUrl = req.IconImageUrl
	if req.Order != nil {
		service.Order = *req.Order
	} else {
		service.Order = 0
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&service); result.Error != nil {
		log.Error("Failed to update service", zap.String("service_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update service"})
	}

	prometheus.ContentWriteCounter.WithLabelValues("service", "update").Inc()
	invalidateHome()

	log.Info("Service updated", zap.Uint("service_id", service.ID))
	return c.JSON(http.StatusOK, service)
}

// DeleteService removes a service unconditionally.
func DeleteService(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.Service{}, id)
	if result.Error != nil {
		log.Error("Failed to delete service", zap.String("service_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete service"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Service not found for deletion", zap.String("service_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Service not found"})
	}

	prometheus.ContentWriteCounter.WithLabelValues("service", "delete").Inc()
	invalidateHome()

	log.Info("Service deleted", zap.String("service_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
