package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/application/dto"
	"portfolio-core/internal/domain/assistant"
	"portfolio-core/internal/domain/events"
)

const (
	pdfMIME = "application/pdf"

	// sniffBytes is how much of an upload is read to detect its type
	sniffBytes = 3072
)

// AssistantService validates assistant requests and forwards them to the backend
type AssistantService struct {
	backend   assistant.Backend
	publisher events.Publisher
	maxUpload int64
	logger    hclog.Logger
}

// NewAssistantService creates a new assistant service. publisher may be nil.
func NewAssistantService(backend assistant.Backend, publisher events.Publisher, maxUpload int64, logger hclog.Logger) *AssistantService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &AssistantService{
		backend:   backend,
		publisher: publisher,
		maxUpload: maxUpload,
		logger:    logger,
	}
}

// MaxUpload returns the largest accepted document size in bytes
func (s *AssistantService) MaxUpload() int64 {
	return s.maxUpload
}

// Ask forwards a question
func (s *AssistantService) Ask(ctx context.Context, req dto.ChatRequest) (*assistant.Reply, error) {
	q := assistant.Query{Question: req.Question, TopK: req.TopK}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	reply, err := s.backend.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query assistant: %w", err)
	}
	s.logReply("query", reply)
	return reply, nil
}

// Align forwards a job alignment request
func (s *AssistantService) Align(ctx context.Context, req dto.AlignmentRequest) (*assistant.Reply, error) {
	a := assistant.Alignment{JobDescription: req.JobDescription, Question: req.Question}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	reply, err := s.backend.AnalyzeAlignment(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze alignment: %w", err)
	}
	s.logReply("analyze_alignment", reply)
	return reply, nil
}

// Ingest checks that doc is a PDF within the size limit and forwards it.
// A DocumentIngestedEvent is dispatched when the backend accepts it.
func (s *AssistantService) Ingest(ctx context.Context, doc assistant.Document) (*assistant.Reply, error) {
	if doc.Content == nil {
		return nil, assistant.ErrFileRequired()
	}
	if strings.TrimSpace(doc.SourceID) == "" {
		return nil, assistant.ErrSourceIDRequired()
	}
	if s.maxUpload > 0 && doc.Size > s.maxUpload {
		return nil, assistant.ErrFileTooLarge(s.maxUpload)
	}

	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(doc.Content, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !detected.Is(pdfMIME) {
		return nil, assistant.ErrUnsupportedFileType(detected.String())
	}

	doc.ContentType = pdfMIME
	doc.Content = io.MultiReader(bytes.NewReader(head), doc.Content)

	reply, err := s.backend.Ingest(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest document: %w", err)
	}
	s.logReply("ingest", reply)

	if reply.OK() && s.publisher != nil {
		if err := s.publisher.Dispatch(ctx, assistant.NewDocumentIngestedEvent(doc)); err != nil {
			s.logger.Warn("publishing document ingested event", "error", err)
		}
	}
	return reply, nil
}

// NewSourceID names an uploaded document when the caller gives no id
func NewSourceID() string {
	return "document_" + uuid.New().String()
}

func (s *AssistantService) logReply(op string, reply *assistant.Reply) {
	if reply.OK() {
		s.logger.Debug("assistant call succeeded", "op", op, "status", reply.StatusCode)
		return
	}
	s.logger.Warn("assistant backend error", "op", op, "status", reply.StatusCode, "body", truncate(string(reply.Body), 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
