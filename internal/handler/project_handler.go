package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/MarloFC/ArchProj/internal/model"
	"github.com/MarloFC/ArchProj/pkg/database"
	"github.com/MarloFC/ArchProj/pkg/logger"
	"github.com/MarloFC/ArchProj/prometheus"
)

// ProjectRequest defines the structure for project creation/update requests.
type ProjectRequest struct {
	Title       string           `json:"title"`
	Description *string          `json:"description"`
	Details     *string          `json:"details"`
	Category    string           `json:"category"`
	ImageUrl    *string          `json:"imageUrl"`
	Images      model.StringList `json:"images"`
	Featured    bool             `json:"featured"`
	Order       *int             `json:"order"`
}

// ListProjects returns all projects ordered ascending by display order.
func ListProjects(c echo.Context) error {
	log := logger.FromEcho(c)

	var projects []model.Project
	if result := database.GetDB().Order("display_order asc").Find(&projects); result.Error != nil {
		log.Error("Failed to list projects", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch projects"})
	}

	return c.JSON(http.StatusOK, projects)
}

// CreateProject creates a new portfolio entry.
func CreateProject(c echo.Context) error {
	log := logger.FromEcho(c)

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid project payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title is required"})
	}

	db := database.GetDB()

	order := 0
	if req.Order != nil {
		order = *req.Order
	} else {
		next, err := nextOrder(db, &model.Project{})
		if err != nil {
			log.Error("Failed to compute project order", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create project"})
		}
		order = next
	}

	category := req.Category
	if category == "" {
		category = "residential"
	}

	project := model.Project{
		Title:       req.Title,
		Description: req.Description,
		Details:     req.Details,
		Category:    category,
		ImageUrl:    req.ImageUrl,
		Images:      req.Images,
		Featured:    req.Featured,
		Order:       order,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := db.Create(&project); result.Error != nil {
		log.Error("Failed to create project", zap.String("title", req.Title), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create project"})
	}

	prometheus.ContentWriteCounter.WithLabelValues("project", "create").Inc()
	invalidateHome()

	log.Info("Project created",
		zap.Uint("project_id", project.ID),
		zap.String("title", project.Title),
		zap.Int("order", project.Order))
	return c.JSON(http.StatusCreated, project)
}

// UpdateProject replaces the full field set of an existing project.
func UpdateProject(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid project payload", zap.String("project_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Title is required"})
	}

	var project model.Project
	if result := database.GetDB().First(&project, id); result.Error != nil {
		log.Warn("Project not found for update", zap.String("project_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Project not found"})
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Details = req.Details
	project.Category = req.Category
	project.ImageUrl = req.ImageUrl
	project.Images = req.Images
	project.Featured = req.Featured
	if req.Order != nil {
		project.Order = *req.Order
	} else {
		project.Order = 0
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&project); result.Error != nil {
		log.Error("Failed to update project", zap.String("project_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update project"})
	}

	prometheus.ContentWriteCounter.WithLabelValues("project", "update").Inc()
	invalidateHome()

	log.Info("Project updated", zap.Uint("project_id", project.ID))
	return c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project unconditionally.
func DeleteProject(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.Project{}, id)
	if result.Error != nil {
		log.Error("Failed to delete project", zap.String("project_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete project"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Project not found for deletion", zap.String("project_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Project not found"})
	}

	prometheus.ContentWriteCounter.WithLabelValues("project", "delete").Inc()
	invalidateHome()

	log.Info("Project deleted", zap.String("project_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
