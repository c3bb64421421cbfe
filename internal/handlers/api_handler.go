package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/repurposer-ui/internal/config"
	"github.com/onegreenvn/repurposer-ui/internal/middleware"
	"github.com/onegreenvn/repurposer-ui/internal/models"
	"github.com/onegreenvn/repurposer-ui/internal/services"
	"github.com/onegreenvn/repurposer-ui/internal/utils"
)

// APIHandler exposes the session state as JSON
type APIHandler struct {
	sessions *services.SessionStore
	webhook  *config.WebhookConfig
}

func NewAPIHandler(sessions *services.SessionStore, webhook *config.WebhookConfig) *APIHandler {
	return &APIHandler{
		sessions: sessions,
		webhook:  webhook,
	}
}

func (h *APIHandler) controller(c *gin.Context) *services.FormController {
	return h.sessions.Get(middleware.SessionID(c))
}

// GetState godoc
// @Summary Get the UI state of the session
// @Tags ui
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} services.UIState
// @Router /api/v1/state [get]
func (h *APIHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.controller(c).State())
}

// GetEndpoint godoc
// @Summary Resolve the webhook endpoint
// @Description Returns the endpoint of the test or active workflow and the missing configuration keys
// @Tags ui
// @Produce json
// @Param useActiveWorkflow query bool false "Use the active workflow"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/endpoint [get]
func (h *APIHandler) GetEndpoint(c *gin.Context) {
	useActive := c.Query("useActiveWorkflow") == "true"
	c.JSON(http.StatusOK, gin.H{
		"endpoint":          h.webhook.Endpoint(useActive),
		"useActiveWorkflow": useActive,
		"missing":           h.webhook.Missing(),
	})
}

// Submit godoc
// @Summary Submit a video for clipping
// @Description Posts the form to the webhook and waits for the result. A failed webhook status is reported in state.error while a parsed body is still returned in state.response.
// @Tags ui
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param request body models.FormInput true "Form input"
// @Success 200 {object} services.UIState
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/submit [post]
func (h *APIHandler) Submit(c *gin.Context) {
	var in models.FormInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	// the webhook call is not cancelled if the caller goes away
	ctx := context.WithoutCancel(c.Request.Context())
	c.JSON(http.StatusOK, h.controller(c).Submit(ctx, in))
}

// CopyClip godoc
// @Summary Copy a clip caption to the clipboard
// @Tags clips
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param idx path int true "Clip index"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/clips/{idx}/copy [post]
func (h *APIHandler) CopyClip(c *gin.Context) {
	idx, err := utils.StringToIndex(c.Param("idx"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid clip index", "details": err.Error()})
		return
	}

	copied, err := h.controller(c).CopyClip(idx)
	if err != nil {
		if errors.Is(err, services.ErrClipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"index": idx, "copied": copied})
}
