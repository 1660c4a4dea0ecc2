package usecase

import (
	"context"
	"errors"
	"testing"

	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/usecase/interfaces"
	mock_interfaces "lmnts_studio/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func adminSub(id, name, email, company string, status entities.ProjectStatus) entities.ProjectSubmission {
	return entities.ProjectSubmission{
		ID:          id,
		TrackingID:  "T-" + id,
		ContactName: name,
		Email:       email,
		Company:     company,
		Status:      status,
		Qualification: entities.Qualification{
			Score:          80,
			EstimatedValue: 1000,
		},
	}
}

func TestAdminUseCase_List(t *testing.T) {
	t.Run("falls back to backup when primary fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		backup := mock_interfaces.NewMockIBackupStore(ctrl)
		uc := NewAdminUseCase(repo, backup, nil)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("dynamo down"))
		backup.EXPECT().ListSubmissions(gomock.Any()).Return([]entities.ProjectSubmission{
			adminSub("sub-1", "Jane Doe", "jane@example.com", "", entities.ProjectStatusPending),
		}, nil)

		subs, err := uc.List(context.Background(), "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(subs) != 1 || subs[0].ID != "sub-1" {
			t.Fatalf("unexpected listing: %+v", subs)
		}
	})
}

func TestAdminUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
	uc := NewAdminUseCase(repo, nil, nil)

	repo.EXPECT().List(gomock.Any()).Return([]entities.ProjectSubmission{
		adminSub("a", "A", "a@x.com", "", entities.ProjectStatusPending),
		adminSub("b", "B", "b@x.com", "", entities.ProjectStatusPending),
		adminSub("c", "C", "c@x.com", "", entities.ProjectStatusCompleted),
	}, nil)

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 3 || stats.Pending != 2 || stats.Completed != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.PipelineValue != 3000 {
		t.Fatalf("unexpected pipeline value: %v", stats.PipelineValue)
	}
	if stats.AvgQualification != 80 {
		t.Fatalf("unexpected avg qualification: %v", stats.AvgQualification)
	}
}

func TestAdminUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "sub-1", entities.ProjectStatus("bogus"))
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "  ", entities.ProjectStatusPending)
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("unknown submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		backup := mock_interfaces.NewMockIBackupStore(ctrl)
		uc := NewAdminUseCase(nil, backup, nil)

		backup.EXPECT().
			UpdateSubmissionStatus(gomock.Any(), "missing", entities.ProjectStatusCompleted).
			Return(entities.ProjectSubmission{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "missing", entities.ProjectStatusCompleted)
		if !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("remote failures do not roll back the local write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		backup := mock_interfaces.NewMockIBackupStore(ctrl)
		notifier := mock_interfaces.NewMockILeadNotifier(ctrl)
		uc := NewAdminUseCase(repo, backup, notifier)

		updated := adminSub("sub-1", "Jane Doe", "jane@example.com", "", entities.ProjectStatusDepositPaid)
		backup.EXPECT().
			UpdateSubmissionStatus(gomock.Any(), "sub-1", entities.ProjectStatusDepositPaid).
			Return(updated, nil)
		repo.EXPECT().
			UpdateStatus(gomock.Any(), "sub-1", entities.ProjectStatusDepositPaid).
			Return(errors.New("dynamo down"))
		notifier.EXPECT().
			NotifyStatusChange(gomock.Any(), "sub-1", entities.ProjectStatusDepositPaid).
			Return(errors.New("n8n down"))

		got, err := uc.UpdateStatus(context.Background(), "sub-1", entities.ProjectStatusDepositPaid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.ProjectStatusDepositPaid {
			t.Fatalf("expected deposit_paid, got %s", got.Status)
		}
	})
}

func TestAdminUseCase_GenerateInvoice(t *testing.T) {
	t.Run("requests a deposit invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		notifier := mock_interfaces.NewMockILeadNotifier(ctrl)
		uc := NewAdminUseCase(repo, nil, notifier)

		sub := adminSub("sub-1", "Jane Doe", "jane@example.com", "", entities.ProjectStatusContractSigned)
		sub.Qualification.EstimatedValue = 4000
		repo.EXPECT().List(gomock.Any()).Return([]entities.ProjectSubmission{sub}, nil)
		notifier.EXPECT().
			GenerateInvoice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv interfaces.InvoiceRequest) error {
				if inv.Amount != 4000 || inv.DepositAmount != 2000 {
					t.Fatalf("unexpected invoice amounts: %+v", inv)
				}
				if inv.ClientEmail != "jane@example.com" {
					t.Fatalf("unexpected client email: %s", inv.ClientEmail)
				}
				return nil
			})

		if err := uc.GenerateInvoice(context.Background(), "sub-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("notifier not configured", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, nil)
		if err := uc.GenerateInvoice(context.Background(), "sub-1"); !errors.Is(err, ErrNotifierUnavailable) {
			t.Fatalf("expected ErrNotifierUnavailable, got %v", err)
		}
	})
}

func TestAdminUseCase_SendMessage(t *testing.T) {
	t.Run("relays the message with a default body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		notifier := mock_interfaces.NewMockILeadNotifier(ctrl)
		uc := NewAdminUseCase(repo, nil, notifier)

		sub := adminSub("sub-1", "Jane Doe", "jane@example.com", "", entities.ProjectStatusInProgress)
		repo.EXPECT().List(gomock.Any()).Return([]entities.ProjectSubmission{sub}, nil)
		notifier.EXPECT().
			SendMessage(gomock.Any(), "jane@example.com", "Jane Doe", "Status update on your project").
			Return(nil)

		if err := uc.SendMessage(context.Background(), "sub-1", "   "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("notifier not configured", func(t *testing.T) {
		uc := NewAdminUseCase(nil, nil, nil)
		if err := uc.SendMessage(context.Background(), "sub-1", "hello"); !errors.Is(err, ErrNotifierUnavailable) {
			t.Fatalf("expected ErrNotifierUnavailable, got %v", err)
		}
	})
}

func TestFilterSubmissions(t *testing.T) {
	subs := []entities.ProjectSubmission{
		adminSub("a", "Jane Doe", "jane@acme.com", "Acme", entities.ProjectStatusPending),
		adminSub("b", "John Roe", "john@beta.io", "Beta", entities.ProjectStatusPending),
		adminSub("c", "Jane Smith", "js@gamma.co", "Gamma", entities.ProjectStatusCompleted),
	}

	t.Run("all passthrough", func(t *testing.T) {
		if got := FilterSubmissions(subs, "all", ""); len(got) != 3 {
			t.Fatalf("expected 3, got %d", len(got))
		}
	})

	t.Run("status only", func(t *testing.T) {
		got := FilterSubmissions(subs, "pending", "")
		if len(got) != 2 {
			t.Fatalf("expected 2, got %d", len(got))
		}
	})

	t.Run("search matches name, email and company case-insensitively", func(t *testing.T) {
		if got := FilterSubmissions(subs, "", "JANE"); len(got) != 2 {
			t.Fatalf("name search: expected 2, got %d", len(got))
		}
		if got := FilterSubmissions(subs, "", "beta.io"); len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("email search failed: %+v", got)
		}
		if got := FilterSubmissions(subs, "", "gamma"); len(got) != 1 || got[0].ID != "c" {
			t.Fatalf("company search failed: %+v", got)
		}
	})

	t.Run("status and search intersect", func(t *testing.T) {
		got := FilterSubmissions(subs, "pending", "jane")
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("intersection failed: %+v", got)
		}
	})
}
