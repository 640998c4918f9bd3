package assistant

import (
	"portfolio-core/internal/domain/events"
)

const (
	EventTypeDocumentIngested = "document.ingested"
)

// DocumentIngestedEvent is raised when the backend accepts a document
type DocumentIngestedEvent struct {
	events.BaseEvent
	SourceID string
	FileName string
	Size     int64
}

// NewDocumentIngestedEvent creates a new DocumentIngestedEvent
func NewDocumentIngestedEvent(doc Document) *DocumentIngestedEvent {
	return &DocumentIngestedEvent{
		BaseEvent: events.NewBaseEvent(EventTypeDocumentIngested, doc.SourceID),
		SourceID:  doc.SourceID,
		FileName:  doc.FileName,
		Size:      doc.Size,
	}
}

func (e *DocumentIngestedEvent) Fields() []interface{} {
	return []interface{}{"source_id", e.SourceID, "file", e.FileName, "bytes", e.Size}
}
