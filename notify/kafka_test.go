package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"agro-forecast/models"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPublishWritesKeyedJSON(t *testing.T) {
	writer := &recordingWriter{}
	pub := newPublisher(writer, "advisories", quietLogger())

	batch := models.AdvisoryBatch{
		ID:          "batch-1",
		UserID:      "farmer-7",
		Location:    &models.Location{Latitude: 18.52, Longitude: 73.85},
		Items:       []string{"Water early.", "Sell onions."},
		GeneratedAt: time.Date(2024, 7, 10, 6, 0, 0, 0, time.UTC),
	}
	if err := pub.Publish(context.Background(), batch); err != nil {
		t.Fatalf("publish error: %v", err)
	}

	if len(writer.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(writer.messages))
	}
	msg := writer.messages[0]
	if string(msg.Key) != "farmer-7" {
		t.Errorf("expected key farmer-7, got %q", string(msg.Key))
	}
	if !msg.Time.Equal(batch.GeneratedAt) {
		t.Errorf("expected message time %v, got %v", batch.GeneratedAt, msg.Time)
	}

	var decoded models.AdvisoryBatch
	if err := json.Unmarshal(msg.Value, &decoded); err != nil {
		t.Fatalf("invalid JSON payload: %v", err)
	}
	if decoded.ID != "batch-1" || len(decoded.Items) != 2 || decoded.Location == nil {
		t.Errorf("unexpected payload %+v", decoded)
	}
}

func TestPublishWrapsWriterError(t *testing.T) {
	cause := errors.New("broker down")
	pub := newPublisher(&recordingWriter{err: cause}, "advisories", quietLogger())

	err := pub.Publish(context.Background(), models.AdvisoryBatch{ID: "b", UserID: "u"})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped writer error, got %v", err)
	}
}

func TestClose(t *testing.T) {
	writer := &recordingWriter{}
	pub := newPublisher(writer, "advisories", nil)
	if err := pub.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}
	if !writer.closed {
		t.Error("expected writer to be closed")
	}
}
