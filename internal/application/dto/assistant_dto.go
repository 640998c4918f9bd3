package dto

import "encoding/json"

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Question string `json:"question" example:"What projects used Go?"`
	TopK     int    `json:"top_k,omitempty" example:"5"`
}

// AlignmentRequest is the body of POST /api/analyze-alignment
type AlignmentRequest struct {
	JobDescription string `json:"job_description"`
	Question       string `json:"question"`
}

// ProxyErrorResponse is the error shape of the assistant proxies
type ProxyErrorResponse struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details,omitempty" swaggertype:"object"`
}
