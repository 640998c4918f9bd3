// Package rag talks to the retrieval-augmented-generation backend that
// powers the resume assistant.
package rag

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/domain/assistant"
)

// maxReplyBytes caps how much of an upstream reply is buffered
const maxReplyBytes = 4 << 20

// Client implements assistant.Backend over HTTP
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     hclog.Logger
}

// NewClient creates a backend client rooted at baseURL
func NewClient(baseURL string, timeout time.Duration, logger hclog.Logger) *Client {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

var _ assistant.Backend = (*Client)(nil)

// Query forwards a question to POST /query
func (c *Client) Query(ctx context.Context, q assistant.Query) (*assistant.Reply, error) {
	return c.postJSON(ctx, "/query", q)
}

// AnalyzeAlignment forwards a job description to POST /analyze_alignment
func (c *Client) AnalyzeAlignment(ctx context.Context, a assistant.Alignment) (*assistant.Reply, error) {
	return c.postJSON(ctx, "/analyze_alignment", a)
}

// Ingest streams doc to POST /ingest as multipart form data with the
// fields "file" and "source_id"
func (c *Client) Ingest(ctx context.Context, doc assistant.Document) (*assistant.Reply, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeDocument(mw, doc))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ingest", pr)
	if err != nil {
		_ = pr.Close()
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req)
}

func writeDocument(mw *multipart.Writer, doc assistant.Document) error {
	part, err := mw.CreateFormFile("file", doc.FileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, doc.Content); err != nil {
		return fmt.Errorf("copying %s: %w", doc.FileName, err)
	}
	if err := mw.WriteField("source_id", doc.SourceID); err != nil {
		return err
	}
	return mw.Close()
}

// Ping checks GET /health; used by the readiness probe
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	reply, err := c.do(req)
	if err != nil {
		return err
	}
	if !reply.OK() {
		return fmt.Errorf("rag backend returned status %d", reply.StatusCode)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}) (*assistant.Reply, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (*assistant.Reply, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading %s reply: %w", req.URL.Path, err)
	}

	c.logger.Debug("backend call", "method", req.Method, "path", req.URL.Path,
		"status", resp.StatusCode, "duration", time.Since(start))

	return &assistant.Reply{StatusCode: resp.StatusCode, Body: body}, nil
}
