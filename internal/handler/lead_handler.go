package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/MarloFC/ArchProj/internal/model"
	"github.com/MarloFC/ArchProj/pkg/database"
	"github.com/MarloFC/ArchProj/pkg/logger"
	"github.com/MarloFC/ArchProj/pkg/mailer"
	"github.com/MarloFC/ArchProj/prometheus"
)

// LeadRequest is a contact-form submission.
type LeadRequest struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Project   string `json:"project"`
}

// CreateLead persists a contact-form submission, then relays it by email on a
// best-effort basis. The persisted row is the durable source of truth: once
// it commits, mail problems surface only as a warning on a success response.
func CreateLead(c echo.Context) error {
	log := logger.FromEcho(c)

	var req LeadRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid lead payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "error": "Invalid request data"})
	}
	if req.Firstname == "" || req.Email == "" || req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "error": "Missing required fields"})
	}

	fullName := strings.TrimSpace(req.Firstname + " " + req.Lastname)

	lead := model.Lead{
		Name:    fullName,
		Email:   req.Email,
		Message: req.Message,
		Project: req.Project,
	}

	db := database.GetDB()
	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := db.Create(&lead); result.Error != nil {
		log.Error("Failed to persist lead", zap.String("email", req.Email), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"ok": false, "error": "Failed to process request"})
	}

	prometheus.LeadCounter.Inc()
	log.Info("Lead captured",
		zap.Uint("lead_id", lead.ID),
		zap.String("name", fullName),
		zap.String("project", req.Project))

	// Recipient comes from the site configuration.
	var recipient string
	var cfg model.SiteConfig
	if err := db.Where("id = ?", model.SiteConfigID).First(&cfg).Error; err == nil && cfg.ContactEmail != nil {
		recipient = *cfg.ContactEmail
	}

	if recipient == "" {
		log.Warn("Lead notification skipped: recipient not configured")
		prometheus.LeadMailWarningCounter.WithLabelValues("no_recipient").Inc()
		return c.JSON(http.StatusOK, echo.Map{"ok": true, "warning": "Email not sent - recipient not configured"})
	}

	if mailSender == nil || !mailSender.Configured() {
		log.Warn("Lead notification skipped: SMTP not configured")
		prometheus.LeadMailWarningCounter.WithLabelValues("not_configured").Inc()
		return c.JSON(http.StatusOK, echo.Map{"ok": true, "warning": "Email not sent - SMTP not configured"})
	}

	err := mailSender.SendLeadNotification(recipient, mailer.Lead{
		Name:    fullName,
		Email:   req.Email,
		Message: req.Message,
		Project: req.Project,
	})
	if err != nil {
		log.Warn("Lead notification failed",
			zap.String("recipient", recipient),
			zap.Error(err))
		prometheus.LeadMailWarningCounter.WithLabelValues("send_failed").Inc()
		return c.JSON(http.StatusOK, echo.Map{"ok": true, "warning": "Lead saved but email failed to send"})
	}

	log.Info("Lead notification sent", zap.String("recipient", recipient))
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
