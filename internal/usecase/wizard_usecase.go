package usecase

import (
	"context"
	"errors"
	"log"

	"lmnts_studio/internal/domain/entities"
	"lmnts_studio/internal/recommend"
	"lmnts_studio/internal/wizard"

	"github.com/google/uuid"
)

var ErrUnknownUpsellPackage = errors.New("unknown upsell package")

// FormPatch carries partial form updates from the funnel UI. Only non-nil
// fields are applied, so navigation never clobbers previously entered values.
type FormPatch struct {
	ServiceID         *string
	ProjectName       *string
	Timeline          *string
	Name              *string
	Email             *string
	Phone             *string
	Company           *string
	Website           *string
	Description       *string
	EventType         *string
	ExpectedAttendees *string
	Budget            *string
	Requirements      *string
	Challenges        *string
}

// WizardView is the read-model handed to the HTTP layer: the session snapshot
// plus the upsell offer shown on the review step.
type WizardView struct {
	Session wizard.Wizard
	Upsells []entities.UpsellPackage
}

// IWizardUseCase drives wizard sessions through the funnel.

type IWizardUseCase interface {
	Start(ctx context.Context, flow wizard.Flow, plan, serviceType string) (WizardView, error)
	Get(ctx context.Context, id string) (WizardView, error)
	Update(ctx context.Context, id string, patch FormPatch) (WizardView, error)
	Next(ctx context.Context, id string) (WizardView, error)
	Back(ctx context.Context, id string) (WizardView, error)
	SelectUpsell(ctx context.Context, id, packageID string) (WizardView, error)
	Submit(ctx context.Context, id string) (SubmissionResult, error)
}

type WizardUseCase struct {
	store    *wizard.Store
	pipeline ISubmissionPipeline
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(store *wizard.Store, pipeline ISubmissionPipeline) *WizardUseCase {
	return &WizardUseCase{store: store, pipeline: pipeline}
}

func (u *WizardUseCase) Start(_ context.Context, flow wizard.Flow, plan, serviceType string) (WizardView, error) {
	w, err := wizard.New(uuid.NewString(), flow, plan, serviceType)
	if err != nil {
		return WizardView{}, err
	}
	u.store.Put(w)
	log.Printf("[wizard][usecase] session started id=%s flow=%s plan=%q", w.ID, flow, plan)
	return u.view(*w), nil
}

func (u *WizardUseCase) Get(_ context.Context, id string) (WizardView, error) {
	snap, err := u.store.Snapshot(id)
	if err != nil {
		return WizardView{}, err
	}
	return u.view(snap), nil
}

func (u *WizardUseCase) Update(_ context.Context, id string, patch FormPatch) (WizardView, error) {
	return u.mutate(id, func(w *wizard.Wizard) error {
		return w.Apply(func(f *entities.ProjectForm) {
			applyPatch(f, patch)
		})
	})
}

func (u *WizardUseCase) Next(_ context.Context, id string) (WizardView, error) {
	return u.mutate(id, func(w *wizard.Wizard) error { return w.Next() })
}

func (u *WizardUseCase) Back(_ context.Context, id string) (WizardView, error) {
	return u.mutate(id, func(w *wizard.Wizard) error { return w.Back() })
}

func (u *WizardUseCase) SelectUpsell(_ context.Context, id, packageID string) (WizardView, error) {
	return u.mutate(id, func(w *wizard.Wizard) error {
		if packageID != "" {
			if _, ok := recommend.FindPackage(packageID); !ok {
				return ErrUnknownUpsellPackage
			}
		}
		return w.SelectUpsell(packageID)
	})
}

// Submit locks the session, runs the pipeline outside the store lock, then
// settles the session into its terminal (or retryable) state.
func (u *WizardUseCase) Submit(ctx context.Context, id string) (SubmissionResult, error) {
	var form entities.ProjectForm
	var plan string
	err := u.store.With(id, func(w *wizard.Wizard) error {
		if err := w.BeginSubmit(); err != nil {
			return err
		}
		form = w.Form
		plan = w.SelectedUpsell
		return nil
	})
	if err != nil {
		return SubmissionResult{}, err
	}

	res, err := u.pipeline.Submit(ctx, form, plan)

	settleErr := u.store.With(id, func(w *wizard.Wizard) error {
		w.FinishSubmit(err == nil && res.Success)
		return nil
	})
	if settleErr != nil {
		log.Printf("[wizard][usecase] settle failed id=%s err=%v", id, settleErr)
	}
	if err != nil {
		log.Printf("[wizard][usecase] submit failed id=%s err=%v", id, err)
		return SubmissionResult{}, err
	}
	log.Printf("[wizard][usecase] submit success id=%s tracking_id=%s", id, res.TrackingID)
	return res, nil
}

func (u *WizardUseCase) mutate(id string, fn func(*wizard.Wizard) error) (WizardView, error) {
	var snap wizard.Wizard
	err := u.store.With(id, func(w *wizard.Wizard) error {
		if err := fn(w); err != nil {
			return err
		}
		snap = *w
		return nil
	})
	if err != nil {
		return WizardView{}, err
	}
	return u.view(snap), nil
}

// view attaches the upsell offer once the session reaches review.
func (u *WizardUseCase) view(snap wizard.Wizard) WizardView {
	v := WizardView{Session: snap}
	if snap.AtReview() && !snap.Submitted() {
		svc, ok := entities.FindService(snap.Form.ServiceID)
		if ok {
			// Same fallback the pipeline qualifies with, so the offer and
			// the submission work from the same budget.
			budget := ParseBudget(snap.Form.Budget, svc.DefaultBudget)
			v.Upsells = recommend.Packages(svc.Name, budget)
		}
	}
	return v
}

func applyPatch(f *entities.ProjectForm, p FormPatch) {
	if p.ServiceID != nil {
		f.ServiceID = *p.ServiceID
		if svc, ok := entities.FindService(*p.ServiceID); ok {
			f.ServiceType = string(svc.Category)
			if f.ProjectName == "" {
				f.ProjectName = svc.Name
			}
		}
	}
	if p.ProjectName != nil {
		f.ProjectName = *p.ProjectName
	}
	if p.Timeline != nil {
		f.Timeline = *p.Timeline
	}
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Email != nil {
		f.Email = *p.Email
	}
	if p.Phone != nil {
		f.Phone = *p.Phone
	}
	if p.Company != nil {
		f.Company = *p.Company
	}
	if p.Website != nil {
		f.Website = *p.Website
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.EventType != nil {
		f.EventType = *p.EventType
	}
	if p.ExpectedAttendees != nil {
		f.ExpectedAttendees = *p.ExpectedAttendees
	}
	if p.Budget != nil {
		f.Budget = *p.Budget
	}
	if p.Requirements != nil {
		f.Requirements = *p.Requirements
	}
	if p.Challenges != nil {
		f.Challenges = *p.Challenges
	}
}
