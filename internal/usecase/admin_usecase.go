package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/usecase/interfaces"
)

var (
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrInvalidID           = errors.New("invalid submission id")
	ErrNotifierUnavailable = errors.New("automation notifications unavailable")
)

// AdminStats aggregates the listing for the dashboard header cards.
type AdminStats struct {
	Total            int     `json:"total"`
	Pending          int     `json:"pending"`
	DepositPaid      int     `json:"deposit_paid"`
	ContractSigned   int     `json:"contract_signed"`
	InProgress       int     `json:"in_progress"`
	Completed        int     `json:"completed"`
	PipelineValue    float64 `json:"pipeline_value"`
	AvgQualification float64 `json:"avg_qualification"`
}

// IAdminUseCase exposes the operator's view over submitted leads.

type IAdminUseCase interface {
	List(ctx context.Context, status, search string) ([]entities.ProjectSubmission, error)
	Stats(ctx context.Context) (AdminStats, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.ProjectSubmission, error)
	GenerateInvoice(ctx context.Context, id string) error
	SendMessage(ctx context.Context, id, message string) error
}

// AdminUseCase reads whichever store is reachable (primary database
// preferred, backup log as fallback) and applies optimistic status changes:
// the local write is synchronous and authoritative, the remote update and the
// operator notification are best-effort. Local and remote status can drift as
// a consequence; that tradeoff is accepted.
type AdminUseCase struct {
	repo     interfaces.ISubmissionRepository
	backup   interfaces.IBackupStore
	notifier interfaces.ILeadNotifier
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(repo interfaces.ISubmissionRepository, backup interfaces.IBackupStore, notifier interfaces.ILeadNotifier) *AdminUseCase {
	return &AdminUseCase{repo: repo, backup: backup, notifier: notifier}
}

func (u *AdminUseCase) List(ctx context.Context, status, search string) ([]entities.ProjectSubmission, error) {
	subs, err := u.fetchAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSubmissions(subs, status, search), nil
}

func (u *AdminUseCase) Stats(ctx context.Context) (AdminStats, error) {
	subs, err := u.fetchAll(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	var stats AdminStats
	stats.Total = len(subs)
	var scoreSum int
	for _, s := range subs {
		switch s.Status {
		case entities.ProjectStatusPending:
			stats.Pending++
		case entities.ProjectStatusDepositPaid:
			stats.DepositPaid++
		case entities.ProjectStatusContractSigned:
			stats.ContractSigned++
		case entities.ProjectStatusInProgress:
			stats.InProgress++
		case entities.ProjectStatusCompleted:
			stats.Completed++
		}
		stats.PipelineValue += s.Qualification.EstimatedValue
		scoreSum += s.Qualification.Score
	}
	if stats.Total > 0 {
		stats.AvgQualification = float64(scoreSum) / float64(stats.Total)
	}
	return stats, nil
}

func (u *AdminUseCase) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.ProjectSubmission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectSubmission{}, ErrInvalidID
	}
	if !status.Valid() {
		return entities.ProjectSubmission{}, ErrInvalidStatus
	}

	// Local first: this write decides the response.
	updated, err := u.backup.UpdateSubmissionStatus(ctx, id, status)
	if err != nil {
		log.Printf("[admin][usecase] local status update failed id=%s err=%v", id, err)
		return entities.ProjectSubmission{}, err
	}
	if updated.ID == "" {
		return entities.ProjectSubmission{}, ErrSubmissionNotFound
	}

	// Remote reconciliation + notification: best-effort, never rolled back.
	if u.repo != nil {
		if err := u.repo.UpdateStatus(ctx, id, status); err != nil {
			log.Printf("[admin][usecase] remote status update failed id=%s err=%v", id, err)
		}
	}
	if u.notifier != nil {
		if err := u.notifier.NotifyStatusChange(ctx, id, status); err != nil {
			log.Printf("[admin][usecase] status notification failed id=%s err=%v", id, err)
		}
	}
	log.Printf("[admin][usecase] status updated id=%s status=%s", id, status)
	return updated, nil
}

func (u *AdminUseCase) GenerateInvoice(ctx context.Context, id string) error {
	if u.notifier == nil {
		return ErrNotifierUnavailable
	}
	sub, err := u.getByID(ctx, id)
	if err != nil {
		return err
	}
	inv := interfaces.InvoiceRequest{
		ClientID:      sub.ID,
		ClientName:    sub.ContactName,
		ClientEmail:   sub.Email,
		Amount:        sub.Qualification.EstimatedValue,
		DepositAmount: sub.Qualification.EstimatedValue * 0.5,
	}
	if err := u.notifier.GenerateInvoice(ctx, inv); err != nil {
		log.Printf("[admin][usecase] invoice generation failed id=%s err=%v", id, err)
		return err
	}
	log.Printf("[admin][usecase] invoice requested id=%s amount=%.2f", id, inv.Amount)
	return nil
}

func (u *AdminUseCase) SendMessage(ctx context.Context, id, message string) error {
	if u.notifier == nil {
		return ErrNotifierUnavailable
	}
	message = strings.TrimSpace(message)
	if message == "" {
		message = "Status update on your project"
	}
	sub, err := u.getByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.notifier.SendMessage(ctx, sub.Email, sub.ContactName, message); err != nil {
		log.Printf("[admin][usecase] send message failed id=%s err=%v", id, err)
		return err
	}
	log.Printf("[admin][usecase] message sent id=%s to=%s", id, sub.Email)
	return nil
}

// fetchAll prefers the primary database and falls back to the local backup
// log when it is unreachable.
func (u *AdminUseCase) fetchAll(ctx context.Context) ([]entities.ProjectSubmission, error) {
	if u.repo != nil {
		subs, err := u.repo.List(ctx)
		if err == nil {
			return subs, nil
		}
		log.Printf("[admin][usecase] primary list failed, falling back to backup err=%v", err)
	}
	return u.backup.ListSubmissions(ctx)
}

func (u *AdminUseCase) getByID(ctx context.Context, id string) (entities.ProjectSubmission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectSubmission{}, ErrInvalidID
	}
	subs, err := u.fetchAll(ctx)
	if err != nil {
		return entities.ProjectSubmission{}, err
	}
	for _, s := range subs {
		if s.ID == id || s.TrackingID == id {
			return s, nil
		}
	}
	return entities.ProjectSubmission{}, ErrSubmissionNotFound
}

// FilterSubmissions applies the status filter and the case-insensitive
// substring search over name/email/company; a record must satisfy both.
func FilterSubmissions(subs []entities.ProjectSubmission, status, search string) []entities.ProjectSubmission {
	status = strings.TrimSpace(status)
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]entities.ProjectSubmission, 0, len(subs))
	for _, s := range subs {
		if status != "" && status != "all" && string(s.Status) != status {
			continue
		}
		if needle != "" && !matchesSearch(s, needle) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesSearch(s entities.ProjectSubmission, needle string) bool {
	return strings.Contains(strings.ToLower(s.ContactName), needle) ||
		strings.Contains(strings.ToLower(s.Email), needle) ||
		strings.Contains(strings.ToLower(s.Company), needle)
}
