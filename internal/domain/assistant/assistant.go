// Package assistant describes the resume assistant: a retrieval-augmented
// backend that answers questions, scores job alignment and ingests documents.
package assistant

import (
	"context"
	"encoding/json"
	"io"
	"strings"
)

// DefaultTopK is the number of context chunks requested when the caller omits it
const DefaultTopK = 5

// Query asks a free-form question
type Query struct {
	Question string `json:"question"`
	TopK     int    `json:"top_k"`
}

// Validate requires a question and fills the default top_k
func (q *Query) Validate() error {
	if strings.TrimSpace(q.Question) == "" {
		return ErrQuestionRequired()
	}
	if q.TopK <= 0 {
		q.TopK = DefaultTopK
	}
	return nil
}

// Alignment asks how well the owner fits a job description
type Alignment struct {
	JobDescription string `json:"job_description"`
	Question       string `json:"question"`
}

// Validate requires both fields
func (a Alignment) Validate() error {
	if strings.TrimSpace(a.JobDescription) == "" || strings.TrimSpace(a.Question) == "" {
		return ErrAlignmentFieldsRequired()
	}
	return nil
}

// Document is a file to ingest into the knowledge base
type Document struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
	SourceID    string
}

// Reply is the backend's answer relayed as-is
type Reply struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status
func (r *Reply) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON returns the body when it is valid JSON
func (r *Reply) JSON() (json.RawMessage, bool) {
	if len(r.Body) == 0 || !json.Valid(r.Body) {
		return nil, false
	}
	return json.RawMessage(r.Body), true
}

// Field extracts a top-level string field from a JSON body, e.g. "answer"
func (r *Reply) Field(name string) string {
	var m map[string]interface{}
	if err := json.Unmarshal(r.Body, &m); err != nil {
		return ""
	}
	if s, ok := m[name].(string); ok {
		return s
	}
	return ""
}

// Backend is the RAG service. Implementations live in the infrastructure layer.
// A non-2xx upstream status is reported through Reply, not as an error;
// errors mean the backend could not be reached or read.
type Backend interface {
	Query(ctx context.Context, q Query) (*Reply, error)
	AnalyzeAlignment(ctx context.Context, a Alignment) (*Reply, error)
	Ingest(ctx context.Context, doc Document) (*Reply, error)
}
