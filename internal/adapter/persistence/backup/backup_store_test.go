package backup

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lmnts_studio/internal/domain/entities"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backup.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	store, err := NewStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func sampleSubmission(id string) entities.ProjectSubmission {
	return entities.ProjectSubmission{
		ID:          id,
		TrackingID:  "LOA-123",
		ServiceID:   "ai-brand-voice",
		ServiceName: "AI Brand Voice",
		Category:    entities.CategoryAI,
		ProjectName: "Voice Revamp",
		Timeline:    "2-4 Weeks",
		ContactName: "Jane Doe",
		Email:       "jane@example.com",
		Budget:      1500,
		Qualification: entities.Qualification{
			Score:          82,
			EstimatedValue: 2700,
			Priority:       "MEDIUM",
			Source:         entities.QualificationSourceFallback,
		},
		Status:    entities.ProjectStatusPending,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestAppendAndListSubmissions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := sampleSubmission("sub-1")
	second := sampleSubmission("sub-2")
	second.ContactName = "John Roe"

	if err := store.AppendSubmission(ctx, first); err != nil {
		t.Fatalf("append first: %v", err)
	}
	if err := store.AppendSubmission(ctx, second); err != nil {
		t.Fatalf("append second: %v", err)
	}

	subs, err := store.ListSubmissions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(subs))
	}
	// Newest append comes back first.
	if subs[0].ID != "sub-2" || subs[1].ID != "sub-1" {
		t.Fatalf("unexpected order: %s, %s", subs[0].ID, subs[1].ID)
	}
	if subs[1].Qualification.Score != 82 {
		t.Fatalf("expected payload round-trip, got score %d", subs[1].Qualification.Score)
	}
}

func TestUpdateSubmissionStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.AppendSubmission(ctx, sampleSubmission("sub-1")); err != nil {
		t.Fatalf("append: %v", err)
	}

	updated, err := store.UpdateSubmissionStatus(ctx, "sub-1", entities.ProjectStatusDepositPaid)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != entities.ProjectStatusDepositPaid {
		t.Fatalf("expected deposit_paid, got %s", updated.Status)
	}

	subs, err := store.ListSubmissions(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if subs[0].Status != entities.ProjectStatusDepositPaid {
		t.Fatalf("status not persisted, got %s", subs[0].Status)
	}
}

func TestUpdateSubmissionStatusNotFound(t *testing.T) {
	store := newTestStore(t)

	updated, err := store.UpdateSubmissionStatus(context.Background(), "missing", entities.ProjectStatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != "" {
		t.Fatalf("expected zero-value submission, got %+v", updated)
	}
}

func TestOutboundMessageLog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload, _ := json.Marshal(map[string]string{"to": "jane@example.com", "subject": "hi"})
	rec := entities.OutboundMessageRecord{
		Destination: "jane@example.com",
		Payload:     payload,
		Outcome:     entities.OutboundOutcomeFailed,
		Timestamp:   time.Now().UTC(),
	}
	if err := store.AppendOutboundMessage(ctx, rec); err != nil {
		t.Fatalf("append outbound: %v", err)
	}

	msgs, err := store.ListOutboundMessages(ctx)
	if err != nil {
		t.Fatalf("list outbound: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Destination != "jane@example.com" || msgs[0].Outcome != entities.OutboundOutcomeFailed {
		t.Fatalf("unexpected record: %+v", msgs[0])
	}
}
