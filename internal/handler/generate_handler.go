package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/MarloFC/ArchProj/pkg/gemini"
	"github.com/MarloFC/ArchProj/pkg/logger"
	"github.com/MarloFC/ArchProj/prometheus"
)

// GenerateContentRequest asks for suggested copy for a form field.
type GenerateContentRequest struct {
	Prompt      string `json:"prompt"`
	ContentType string `json:"contentType"`
}

// GenerateContent passes the instruction through to the generative-text
// provider and returns the raw suggestion. No retry, no caching, no
// persistence; a missing provider credential fails this operation only.
func GenerateContent(c echo.Context) error {
	log := logger.FromEcho(c)

	var req GenerateContentRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid generate payload", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	if req.Prompt == "" || req.ContentType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Missing prompt or contentType"})
	}

	prometheus.GenerateCounter.Inc()

	if aiClient == nil {
		log.Error("Copy suggestion requested but provider is not configured")
		prometheus.GenerateErrorCounter.WithLabelValues("not_configured").Inc()
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": gemini.ErrNotConfigured.Error()})
	}

	content, err := aiClient.Generate(c.Request().Context(), req.ContentType, req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, gemini.ErrNotConfigured):
			log.Error("Copy suggestion requested but provider is not configured")
			prometheus.GenerateErrorCounter.WithLabelValues("not_configured").Inc()
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": gemini.ErrNotConfigured.Error()})
		case errors.Is(err, gemini.ErrUnknownContentType):
			log.Warn("Unknown content type", zap.String("content_type", req.ContentType))
			prometheus.GenerateErrorCounter.WithLabelValues("bad_content_type").Inc()
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unknown contentType"})
		default:
			log.Error("Copy suggestion failed",
				zap.String("content_type", req.ContentType),
				zap.Error(err))
			prometheus.GenerateErrorCounter.WithLabelValues("provider_error").Inc()
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to generate content"})
		}
	}

	log.Info("Copy suggestion generated", zap.String("content_type", req.ContentType))
	return c.JSON(http.StatusOK, echo.Map{"content": content})
}
