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

// TeamMemberRequest defines the structure for team member creation/update requests.
type TeamMemberRequest struct {
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	ImageUrl  *string `json:"imageUrl"`
	Linkedin  *string `json:"linkedin"`
	Instagram *string `json:"instagram"`
	Email     *string `json:"email"`
	Order     *int    `json:"order"`
}

// ListTeamMembers returns all team members ordered ascending by display order.
func ListTeamMembers(c echo.Context) error {
	log := logger.FromEcho(c)

	var members []model.TeamMember
	if result := database.GetDB().Order("display_order asc").Find(&members); result.Error != nil {
		log.Error("Failed to list team members", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch team members"})
	}

	return c.JSON(http.StatusOK, members)
}

// CreateTeamMember creates a new team member profile.
func CreateTeamMember(c echo.Context) error {
	log := logger.FromEcho(c)

	var req TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid team member payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name is required"})
	}

	db := database.GetDB()

	order := 0
	if req.Order != nil {
		order = *req.Order
	} else {
		next, err := nextOrder(db, &model.TeamMember{})
		if err != nil {
			log.Error("Failed to compute team member order", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create team member"})
		}
		order = next
	}

	member := model.TeamMember{
		Name:      req.Name,
		Role:      req.Role,
		ImageUrl:  req.ImageUrl,
		Linkedin:  req.Linkedin,
		Instagram: req.Instagram,
		Email:     req.Email,
		Order:     order,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := db.Create(&member); result.Error != nil {
		log.Error("Failed to create team member", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create team member"})
	}

	prometheus.ContentWriteCounter.WithLabelValues("team_member", "create").Inc()
	invalidateTeam()

	log.Info("Team member created",
		zap.Uint("member_id", member.ID),
		zap.String("name", member.Name))
	return c.JSON(http.StatusCreated, member)
}

// UpdateTeamMember replaces the full field set of an existing team member.
func UpdateTeamMember(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var req TeamMemberRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid team member payload", zap.String("member_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name is required"})
	}

	var member model.TeamMember
	if result := database.GetDB().First(&member, id); result.Error != nil {
		log.Warn("Team member not found for update", zap.String("member_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Team member not found"})
	}

	member.Name = req.Name
	member.Role = req.Role
	member.ImageUrl = req.ImageUrl
	member.Linkedin = req.Linkedin
	member.Instagram = req.Instagram
	member.Email = req.Email
	if req.Order != nil {
		member.Order = *req.Order
	} else {
		member.Order = 0
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&member); result.Error != nil {
		log.Error("Failed to update team member", zap.String("member_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update team member"})
	}

	prometheus.ContentWriteCounter.WithLabelValues("team_member", "update").Inc()
	invalidateTeam()

	log.Info("Team member updated", zap.Uint("member_id", member.ID))
	return c.JSON(http.StatusOK, member)
}

// DeleteTeamMember removes a team member unconditionally.
func DeleteTeamMember(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	result := database.GetDB().Delete(&model.TeamMember{}, id)
	if result.Error != nil {
		log.Error("Failed to delete team member", zap.String("member_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete team member"})
	}
	if result.RowsAffected == 0 {
		log.Warn("Team member not found for deletion", zap.String("member_id", id))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Team member not found"})
	}

	prometheus.ContentWriteCounter.WithLabelValues("team_member", "delete").Inc()
	invalidateTeam()

	log.Info("Team member deleted", zap.String("member_id", id))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
