package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/application/service"
	"portfolio-core/internal/domain/assistant"
	"portfolio-core/internal/middleware"
)

// AssistantHandler proxies chat, job alignment and ingest requests to the RAG backend
type AssistantHandler struct {
	assistantService *service.AssistantService
	logger           hclog.Logger
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistantService *service.AssistantService, logger hclog.Logger) *AssistantHandler {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &AssistantHandler{
		assistantService: assistantService,
		logger:           logger,
	}
}

// Chat handles POST /api/chat
// @Summary Ask the resume assistant
// @Description Forwards a question to the RAG backend and relays its answer
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Question"
// @Success 200 {object} object
// @Failure 400 {object} dto.ProxyErrorResponse
// @Failure 500 {object} dto.ProxyErrorResponse
// @Router /api/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, "chat", err)
		return
	}

	reply, err := h.assistantService.Ask(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "chat", err)
		return
	}
	relay(c, reply, msgBackendError)
}

// AnalyzeAlignment handles POST /api/analyze-alignment
// @Summary Analyze job alignment
// @Description Asks the RAG backend how well the resume fits a job description
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body dto.AlignmentRequest true "Job description and question"
// @Success 200 {object} object
// @Failure 400 {object} dto.ProxyErrorResponse
// @Failure 500 {object} dto.ProxyErrorResponse
// @Router /api/analyze-alignment [post]
func (h *AssistantHandler) AnalyzeAlignment(c *gin.Context) {
	var req dto.AlignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, "analyze-alignment", err)
		return
	}

	reply, err := h.assistantService.Align(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "analyze-alignment", err)
		return
	}
	relay(c, reply, msgBackendError)
}

// Ingest handles POST /api/ingest
// @Summary Ingest a document
// @Description Uploads a PDF into the knowledge base. Requires a wall session.
// @Tags Assistant
// @Accept multipart/form-data
// @Produce json
// @Security WallSession
// @Param file formData file true "PDF document"
// @Param source_id formData string true "Source identifier"
// @Success 200 {object} object
// @Failure 400 {object} dto.ProxyErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 413 {object} dto.ProxyErrorResponse
// @Failure 500 {object} dto.ProxyErrorResponse
// @Router /api/ingest [post]
func (h *AssistantHandler) Ingest(c *gin.Context) {
	doc, cleanup, err := documentFromForm(c, c.PostForm("source_id"), h.assistantService.MaxUpload())
	if err != nil {
		h.fail(c, "ingest", err)
		return
	}
	defer cleanup()

	reply, err := h.assistantService.Ingest(c.Request.Context(), doc)
	if err != nil {
		h.fail(c, "ingest", err)
		return
	}
	relay(c, reply, msgIngestFailed)
}

func (h *AssistantHandler) fail(c *gin.Context, op string, err error) {
	status, _ := assistantErrorStatus(err)
	if status >= http.StatusInternalServerError {
		middleware.Logger(c, h.logger).Error("assistant request failed", "op", op, "error", err)
	}
	writeAssistantError(c, err)
}

// documentFromForm opens the multipart "file" field. A missing file yields
// a document without content so validation reports it; a body cut off by
// middleware.LimitBody is reported as too large for maxUpload.
func documentFromForm(c *gin.Context, sourceID string, maxUpload int64) (assistant.Document, func(), error) {
	noop := func() {}

	header, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return assistant.Document{SourceID: sourceID}, noop, nil
	}
	if middleware.BodyTooLarge(err) {
		return assistant.Document{}, noop, assistant.ErrFileTooLarge(maxUpload)
	}
	if err != nil {
		return assistant.Document{}, noop, err
	}

	f, err := header.Open()
	if err != nil {
		return assistant.Document{}, noop, err
	}

	return assistant.Document{
		FileName: header.Filename,
		Size:     header.Size,
		Content:  f,
		SourceID: sourceID,
	}, func() { _ = f.Close() }, nil
}
