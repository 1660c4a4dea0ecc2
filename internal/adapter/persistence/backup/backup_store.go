// Package backup is the local append-only durability log behind every
// submission. A lead counts as captured once its row lands here, no matter
// what the hosted database or the automation webhooks did.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/usecase/interfaces"
)

// submissionRow is the SQLite shape of a captured submission. The full entity
// travels as a JSON blob so schema drift in ProjectSubmission never loses
// fields; the indexed columns exist for the admin listing's filter and search.
type submissionRow struct {
	Seq          uint   `gorm:"primaryKey;autoIncrement"`
	SubmissionID string `gorm:"uniqueIndex;size:64"`
	Status       string `gorm:"index;size:32"`
	ContactEmail string `gorm:"size:255"`
	Payload      []byte
	CreatedAt    time.Time
}

func (submissionRow) TableName() string { return "backup_submissions" }

type outboundMessageRow struct {
	Seq         uint   `gorm:"primaryKey;autoIncrement"`
	Destination string `gorm:"size:255"`
	Outcome     string `gorm:"size:32"`
	Payload     []byte
	CreatedAt   time.Time
}

func (outboundMessageRow) TableName() string { return "outbound_messages" }

// Store implements the backup log on a local SQLite database.
type Store struct {
	db *gorm.DB
}

var _ interfaces.IBackupStore = (*Store)(nil)

func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&submissionRow{}, &outboundMessageRow{}); err != nil {
		return nil, fmt.Errorf("backup store migrate: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) AppendSubmission(ctx context.Context, sub entities.ProjectSubmission) error {
	payload, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	row := submissionRow{
		SubmissionID: sub.ID,
		Status:       string(sub.Status),
		ContactEmail: sub.Email,
		Payload:      payload,
		CreatedAt:    sub.CreatedAt,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *Store) ListSubmissions(ctx context.Context) ([]entities.ProjectSubmission, error) {
	var rows []submissionRow
	if err := s.db.WithContext(ctx).Order("seq DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	subs := make([]entities.ProjectSubmission, 0, len(rows))
	for _, row := range rows {
		sub, err := decodeSubmission(row)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// UpdateSubmissionStatus is the one in-place mutation the log allows. The
// payload blob and the indexed status column move together in a transaction.
// An unknown id yields a zero-value submission and no error.
func (s *Store) UpdateSubmissionStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.ProjectSubmission, error) {
	var updated entities.ProjectSubmission
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row submissionRow
		if err := tx.Where("submission_id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		sub, err := decodeSubmission(row)
		if err != nil {
			return err
		}
		sub.Status = status

		payload, err := json.Marshal(sub)
		if err != nil {
			return err
		}
		if err := tx.Model(&submissionRow{}).Where("seq = ?", row.Seq).
			Updates(map[string]any{"status": string(status), "payload": payload}).Error; err != nil {
			return err
		}
		updated = sub
		return nil
	})
	if err != nil {
		return entities.ProjectSubmission{}, err
	}
	return updated, nil
}

func (s *Store) AppendOutboundMessage(ctx context.Context, m entities.OutboundMessageRecord) error {
	row := outboundMessageRow{
		Destination: m.Destination,
		Outcome:     string(m.Outcome),
		Payload:     m.Payload,
		CreatedAt:   m.Timestamp,
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

func (s *Store) ListOutboundMessages(ctx context.Context) ([]entities.OutboundMessageRecord, error) {
	var rows []outboundMessageRow
	if err := s.db.WithContext(ctx).Order("seq ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	msgs := make([]entities.OutboundMessageRecord, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, entities.OutboundMessageRecord{
			Destination: row.Destination,
			Payload:     row.Payload,
			Outcome:     entities.OutboundOutcome(row.Outcome),
			Timestamp:   row.CreatedAt,
		})
	}
	return msgs, nil
}

func decodeSubmission(row submissionRow) (entities.ProjectSubmission, error) {
	var sub entities.ProjectSubmission
	if err := json.Unmarshal(row.Payload, &sub); err != nil {
		return entities.ProjectSubmission{}, fmt.Errorf("backup row seq=%d: %w", row.Seq, err)
	}
	return sub, nil
}
