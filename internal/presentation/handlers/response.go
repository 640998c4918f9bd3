package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/domain/assistant"
)

// ErrorResponse is the error body of the v1 API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

const (
	msgBackendError  = "Backend service error"
	msgIngestFailed  = "Failed to ingest document"
	msgInternalError = "Internal server error"
)

var emptyDetails = json.RawMessage(`{}`)

// relay writes an assistant backend reply. Successful JSON replies pass
// through unchanged; failures keep the upstream status with failure as
// the error and the upstream JSON, or {}, as details.
func relay(c *gin.Context, reply *assistant.Reply, failure string) {
	body, isJSON := reply.JSON()

	if !reply.OK() {
		if !isJSON {
			body = emptyDetails
		}
		c.JSON(reply.StatusCode, dto.ProxyErrorResponse{Error: failure, Details: body})
		return
	}

	if !isJSON {
		c.JSON(http.StatusInternalServerError, dto.ProxyErrorResponse{Error: msgInternalError})
		return
	}
	c.Data(reply.StatusCode, "application/json; charset=utf-8", body)
}

// assistantErrorStatus maps an assistant error to an HTTP status and
// the message shown to the caller
func assistantErrorStatus(err error) (int, string) {
	var domainErr *assistant.DomainError
	if !errors.As(err, &domainErr) {
		return http.StatusInternalServerError, msgInternalError
	}

	switch domainErr.Code {
	case assistant.CodeFileTooLarge:
		return http.StatusRequestEntityTooLarge, domainErr.Message
	case assistant.CodeAccessDenied:
		return http.StatusUnauthorized, domainErr.Message
	case assistant.CodeWallDisabled:
		return http.StatusServiceUnavailable, domainErr.Message
	case assistant.CodeTooManyAttempts:
		return http.StatusTooManyRequests, domainErr.Message
	default:
		return http.StatusBadRequest, domainErr.Message
	}
}

// writeAssistantError writes err in the proxy error shape
func writeAssistantError(c *gin.Context, err error) {
	status, msg := assistantErrorStatus(err)
	c.JSON(status, dto.ProxyErrorResponse{Error: msg})
}
