package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/application/service"
	"portfolio-core/internal/content"
	"portfolio-core/internal/domain/assistant"
	"portfolio-core/internal/middleware"
)

const msgIngested = "✅ Document successfully ingested! Ready for RAG queries."

// wallView is the state of the wall page
type wallView struct {
	Enabled   bool
	Unlocked  bool
	Error     string
	Success   string
	MaxUpload int64
}

// WallHandler serves the passcode-gated upload page
type WallHandler struct {
	wallService      *service.WallService
	assistantService *service.AssistantService
	auth             *middleware.WallAuth
	site             content.Site
	maxUpload        int64
	logger           hclog.Logger
}

// NewWallHandler creates a new wall handler
func NewWallHandler(
	wallService *service.WallService,
	assistantService *service.AssistantService,
	auth *middleware.WallAuth,
	site content.Site,
	maxUpload int64,
	logger hclog.Logger,
) *WallHandler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &WallHandler{
		wallService:      wallService,
		assistantService: assistantService,
		auth:             auth,
		site:             site,
		maxUpload:        maxUpload,
		logger:           logger,
	}
}

// Show handles GET /wall
func (h *WallHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, "", "")
}

// Unlock handles POST /wall/unlock
func (h *WallHandler) Unlock(c *gin.Context) {
	if err := h.wallService.Unlock(c.ClientIP(), c.PostForm("passcode")); err != nil {
		status, msg := assistantErrorStatus(err)
		middleware.Logger(c, h.logger).Warn("wall unlock rejected", "client_ip", c.ClientIP(), "status", status)
		h.render(c, status, msg, "")
		return
	}

	token, err := h.auth.Issue()
	if err != nil {
		middleware.Logger(c, h.logger).Error("issuing wall session", "error", err)
		h.render(c, http.StatusInternalServerError, msgInternalError, "")
		return
	}

	h.auth.SetSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/wall")
}

// Lock handles POST /wall/lock
func (h *WallHandler) Lock(c *gin.Context) {
	h.auth.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/wall")
}

// Upload handles POST /wall/upload. The source id defaults to document_<uuid>.
func (h *WallHandler) Upload(c *gin.Context) {
	if _, ok := middleware.SessionFrom(c); !ok {
		h.render(c, http.StatusUnauthorized, "Session expired. Please unlock again.", "")
		return
	}

	sourceID := c.PostForm("source_id")
	if sourceID == "" {
		sourceID = service.NewSourceID()
	}

	doc, cleanup, err := documentFromForm(c, sourceID, h.maxUpload)
	if err != nil {
		var domainErr *assistant.DomainError
		if errors.As(err, &domainErr) {
			status, msg := assistantErrorStatus(err)
			h.render(c, status, msg, "")
			return
		}
		h.render(c, http.StatusBadRequest, "Please select a file first.", "")
		return
	}
	defer cleanup()

	reply, err := h.assistantService.Ingest(c.Request.Context(), doc)
	if err != nil {
		status, msg := assistantErrorStatus(err)
		if status >= http.StatusInternalServerError {
			middleware.Logger(c, h.logger).Error("wall upload failed", "error", err)
		}
		h.render(c, status, msg, "")
		return
	}
	if !reply.OK() {
		msg := reply.Field("error")
		if msg == "" {
			msg = msgIngestFailed
		}
		h.render(c, reply.StatusCode, msg, "")
		return
	}

	middleware.Logger(c, h.logger).Info("document ingested", "source_id", doc.SourceID, "file", doc.FileName)
	h.render(c, http.StatusOK, "", msgIngested)
}

func (h *WallHandler) render(c *gin.Context, status int, errMsg, success string) {
	_, unlocked := middleware.SessionFrom(c)
	c.HTML(status, "wall.html", pageView{
		Title: "Wall",
		Site:  h.site,
		Wall: wallView{
			Enabled:   h.wallService.Enabled(),
			Unlocked:  unlocked,
			Error:     errMsg,
			Success:   success,
			MaxUpload: h.maxUpload,
		},
	})
}
