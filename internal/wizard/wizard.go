package wizard

import (
	"errors"
	"strings"

	"lmnts_studio/internal/domain/entities"
)

var (
	ErrUnknownFlow     = errors.New("unknown wizard flow")
	ErrAtFirstStep     = errors.New("already at first step")
	ErrStepIncomplete  = errors.New("current step is incomplete")
	ErrNotAtReview     = errors.New("submit is only allowed from the review step")
	ErrSubmitting      = errors.New("submission in progress")
	ErrAlreadyComplete = errors.New("wizard already completed")
)

// Step identifies a wizard screen. Validation rules key off the step kind, not
// its position, so flows can order steps differently.

type Step string

const (
	StepSelection    Step = "selection"
	StepDetails      Step = "details"
	StepRequirements Step = "requirements"
	StepContact      Step = "contact"
	StepExtras       Step = "extras"
	StepReview       Step = "review"
)

// Flow selects the funnel variant. The unified funnel has five steps; the AI
// project funnel has four (service is fixed up front).

type Flow string

const (
	FlowUnified Flow = "unified"
	FlowAI      Flow = "ai"
)

func flowSteps(f Flow) ([]Step, error) {
	switch f {
	case FlowUnified:
		return []Step{StepSelection, StepDetails, StepContact, StepExtras, StepReview}, nil
	case FlowAI:
		return []Step{StepDetails, StepRequirements, StepContact, StepReview}, nil
	}
	return nil, ErrUnknownFlow
}

// StepValid is the validation gate: it reports whether the given step's
// minimum field set is complete. Pure; no side effects. Only non-emptiness is
// checked (email format validation is deliberately not enforced).
func StepValid(step Step, form entities.ProjectForm) bool {
	switch step {
	case StepSelection:
		if strings.TrimSpace(form.ServiceID) == "" {
			return false
		}
		_, known := entities.FindService(form.ServiceID)
		return known
	case StepDetails:
		return strings.TrimSpace(form.ProjectName) != "" && strings.TrimSpace(form.Timeline) != ""
	case StepContact:
		return strings.TrimSpace(form.Name) != "" && strings.TrimSpace(form.Email) != ""
	case StepRequirements, StepExtras:
		return true
	case StepReview:
		// Flows without a selection step still need a resolvable service
		// before submission is offered.
		_, known := entities.FindService(form.ServiceID)
		return known
	}
	return false
}

// Wizard is a single funnel run. It exclusively owns the in-progress form
// state; field values persist across back/next navigation for the lifetime of
// the instance. A completed wizard is not reusable.
type Wizard struct {
	ID   string
	Flow Flow

	steps []Step
	index int

	Form           entities.ProjectForm
	SelectedUpsell string

	submitting bool
	submitted  bool
}

// New starts a wizard at its first step. plan, when present, pre-selects a
// catalog service (legacy plan ids are mapped first); serviceType pre-selects
// the category filter.
func New(id string, flow Flow, plan, serviceType string) (*Wizard, error) {
	steps, err := flowSteps(flow)
	if err != nil {
		return nil, err
	}
	w := &Wizard{ID: id, Flow: flow, steps: steps}
	w.Form.ServiceType = strings.TrimSpace(serviceType)
	if mapped := entities.MapPlanID(plan); mapped != "" {
		if svc, ok := entities.FindService(mapped); ok {
			w.Form.ServiceID = svc.ID
			w.Form.ServiceType = string(svc.Category)
			if w.Form.ProjectName == "" {
				w.Form.ProjectName = svc.Name
			}
		}
	}
	return w, nil
}

// Step returns the 1-based position of the current step.
func (w *Wizard) Step() int {
	return w.index + 1
}

// StepCount returns the number of steps in this flow.
func (w *Wizard) StepCount() int {
	return len(w.steps)
}

// Current returns the current step kind.
func (w *Wizard) Current() Step {
	return w.steps[w.index]
}

// AtReview reports whether the wizard sits on its review step.
func (w *Wizard) AtReview() bool {
	return w.Current() == StepReview
}

func (w *Wizard) Submitted() bool {
	return w.submitted
}

func (w *Wizard) Submitting() bool {
	return w.submitting
}

func (w *Wizard) navigable() error {
	if w.submitted {
		return ErrAlreadyComplete
	}
	if w.submitting {
		return ErrSubmitting
	}
	return nil
}

// Next advances one step when the validation gate approves the current one.
// At the review step it is a no-op.
func (w *Wizard) Next() error {
	if err := w.navigable(); err != nil {
		return err
	}
	if !StepValid(w.Current(), w.Form) {
		return ErrStepIncomplete
	}
	if w.index < len(w.steps)-1 {
		w.index++
	}
	return nil
}

// Back steps backwards without discarding any entered values.
func (w *Wizard) Back() error {
	if err := w.navigable(); err != nil {
		return err
	}
	if w.index == 0 {
		return ErrAtFirstStep
	}
	w.index--
	return nil
}

// Apply merges field updates into the form. Values already entered survive
// navigation; an update only overwrites the fields it carries.
func (w *Wizard) Apply(mutate func(*entities.ProjectForm)) error {
	if err := w.navigable(); err != nil {
		return err
	}
	mutate(&w.Form)
	return nil
}

// SelectUpsell records a chosen upsell package (empty id means "skip"); both
// paths lead to the same terminal submission.
func (w *Wizard) SelectUpsell(packageID string) error {
	if err := w.navigable(); err != nil {
		return err
	}
	if !w.AtReview() {
		return ErrNotAtReview
	}
	w.SelectedUpsell = strings.TrimSpace(packageID)
	return nil
}

// BeginSubmit locks navigation while the submission pipeline runs. Allowed
// only from the review step.
func (w *Wizard) BeginSubmit() error {
	if err := w.navigable(); err != nil {
		return err
	}
	if !w.AtReview() {
		return ErrNotAtReview
	}
	if !StepValid(w.Current(), w.Form) {
		return ErrStepIncomplete
	}
	w.submitting = true
	return nil
}

// FinishSubmit settles the pipeline outcome: success parks the wizard in its
// terminal state, failure returns control to the review step for a retry.
func (w *Wizard) FinishSubmit(success bool) {
	w.submitting = false
	if success {
		w.submitted = true
	}
}
