package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/repurposer-ui/internal/middleware"
	"github.com/onegreenvn/repurposer-ui/internal/models"
	"github.com/onegreenvn/repurposer-ui/internal/services"
	"github.com/onegreenvn/repurposer-ui/internal/utils"
	"github.com/onegreenvn/repurposer-ui/internal/views"
	"github.com/sirupsen/logrus"
)

const (
	stateEvent          = "state"
	requestedWithHeader = "X-Requested-With"
)

// UIHandler serves the HTML page and its browser interactions
type UIHandler struct {
	sessions  *services.SessionStore
	sseHub    *services.SSEHub
	basePath  string
	heartbeat time.Duration
}

func NewUIHandler(sessions *services.SessionStore, sseHub *services.SSEHub, basePath string, heartbeat time.Duration) *UIHandler {
	return &UIHandler{
		sessions:  sessions,
		sseHub:    sseHub,
		basePath:  basePath,
		heartbeat: heartbeat,
	}
}

// BroadcastState returns a session hook that streams re-rendered fragments
// to the session's open pages after every state change
func BroadcastState(sseHub *services.SSEHub, basePath string) func(sessionID string, fc *services.FormController) {
	return func(sessionID string, fc *services.FormController) {
		fc.Subscribe(func(state services.UIState) {
			if sseHub.GetClientCount(sessionID) == 0 {
				return
			}
			fragments, err := views.RenderFragments(views.BuildPage(state, basePath))
			if err != nil {
				logrus.Errorf("Failed to render fragments for %s: %v", sessionID, err)
				return
			}
			sseHub.Broadcast(sessionID, stateEvent, fragments)
		})
	}
}

func (h *UIHandler) controller(c *gin.Context) *services.FormController {
	return h.sessions.Get(middleware.SessionID(c))
}

// Index handles GET /
func (h *UIHandler) Index(c *gin.Context) {
	page := views.BuildPage(h.controller(c).State(), h.basePath)
	c.HTML(http.StatusOK, views.PageTemplate, page)
}

// Submit handles POST /submit. The webhook call continues in the background
// and its outcome reaches the page over the event stream.
func (h *UIHandler) Submit(c *gin.Context) {
	fc := h.controller(c)

	var in models.FormInput
	if err := c.ShouldBind(&in); err != nil {
		var draft models.FormDraft
		if bindErr := c.ShouldBind(&draft); bindErr == nil {
			fc.UpdateForm(draft.Input())
		}
		fc.Reject(fmt.Sprintf("Invalid form: %v", err))
		h.respond(c)
		return
	}

	fc.SubmitAsync(in)
	h.respond(c)
}

// UpdateForm handles POST /form, sent whenever a field changes
func (h *UIHandler) UpdateForm(c *gin.Context) {
	var draft models.FormDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data", "details": err.Error()})
		return
	}
	h.controller(c).UpdateForm(draft.Input())
	h.respond(c)
}

// CopyClip handles POST /clips/:idx/copy
func (h *UIHandler) CopyClip(c *gin.Context) {
	idx, err := utils.StringToIndex(c.Param("idx"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid clip index", "details": err.Error()})
		return
	}

	if _, err := h.controller(c).CopyClip(idx); err != nil {
		if errors.Is(err, services.ErrClipNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.respond(c)
}

// Events handles GET /events, streaming the page fragments of this session
func (h *UIHandler) Events(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	fc := h.sessions.Get(sessionID)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	clientChan := h.sseHub.RegisterClient(sessionID)
	defer h.sseHub.UnregisterClient(sessionID, clientChan)

	// Send the current state so a reconnecting page catches up
	fragments, err := views.RenderFragments(views.BuildPage(fc.State(), h.basePath))
	if err != nil {
		logrus.Errorf("Failed to render fragments for %s: %v", sessionID, err)
		return
	}
	c.SSEvent(stateEvent, fragments)
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Debugf("SSE client disconnected: %s", sessionID)
			return
		case <-ticker.C:
			heartbeat := fmt.Sprintf(": heartbeat %s\n\n", time.Now().Format(time.RFC3339))
			if _, err := c.Writer.Write([]byte(heartbeat)); err != nil {
				return
			}
			c.Writer.Flush()
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(message); err != nil {
				logrus.Errorf("Failed to write SSE message: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}

// respond answers script requests with 204 and plain form posts with a
// redirect back to the page
func (h *UIHandler) respond(c *gin.Context) {
	if c.GetHeader(requestedWithHeader) != "" {
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, h.basePath+"/")
}
