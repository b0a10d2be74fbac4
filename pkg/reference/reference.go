// Package reference emits analytics reference events for business
// reporting. Unlike audit events these carry no per-request detail; they
// mark that something countable happened to an organization.
package reference

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Type names a reference event.
type Type string

const (
	CollectionCreated Type = "collection-created"
)

// Event is one analytics data point.
type Event struct {
	Type           Type      `json:"type"`
	OrganizationID string    `json:"organizationId"`
	Source         string    `json:"source,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Emitter raises reference events. Implementations decide where they go;
// callers treat failures as the emitter's concern.
type Emitter interface {
	Raise(event Event) error
}

// WriterEmitter writes events as JSON lines to an io.Writer.
type WriterEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterEmitter creates an emitter writing to w.
func NewWriterEmitter(w io.Writer) *WriterEmitter {
	return &WriterEmitter{w: w}
}

// NewDefaultEmitter creates an emitter writing to stdout.
func NewDefaultEmitter() *WriterEmitter {
	return NewWriterEmitter(os.Stdout)
}

// Raise writes the event as one JSON line. The timestamp is stamped here if
// the caller left it zero.
func (e *WriterEmitter) Raise(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	e.mu.Lock()
	defer e.mu.Unlock()
	_, err = e.w.Write(data)
	return err
}

// Discard is an Emitter that drops every event. Useful in tests and when
// analytics are disabled.
type Discard struct{}

func (Discard) Raise(Event) error { return nil }
