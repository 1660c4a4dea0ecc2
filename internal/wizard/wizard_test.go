package wizard

import (
	"errors"
	"testing"

	"lmnts_studio/internal/domain/entities"
)

func TestStepValid(t *testing.T) {
	cases := []struct {
		name string
		step Step
		form entities.ProjectForm
		want bool
	}{
		{"selection empty", StepSelection, entities.ProjectForm{}, false},
		{"selection unknown service", StepSelection, entities.ProjectForm{ServiceID: "bogus"}, false},
		{"selection known service", StepSelection, entities.ProjectForm{ServiceID: "ai-brand-voice"}, true},
		{"details missing timeline", StepDetails, entities.ProjectForm{ProjectName: "X"}, false},
		{"details missing name", StepDetails, entities.ProjectForm{Timeline: "2-4 Weeks"}, false},
		{"details complete", StepDetails, entities.ProjectForm{ProjectName: "X", Timeline: "2-4 Weeks"}, true},
		{"details whitespace only", StepDetails, entities.ProjectForm{ProjectName: "  ", Timeline: "2-4 Weeks"}, false},
		{"contact missing email", StepContact, entities.ProjectForm{Name: "Jane"}, false},
		{"contact complete", StepContact, entities.ProjectForm{Name: "Jane", Email: "jane@x.com"}, true},
		{"requirements always passes", StepRequirements, entities.ProjectForm{}, true},
		{"extras always passes", StepExtras, entities.ProjectForm{}, true},
		{"review without service", StepReview, entities.ProjectForm{}, false},
		{"review with unknown service", StepReview, entities.ProjectForm{ServiceID: "bogus"}, false},
		{"review with known service", StepReview, entities.ProjectForm{ServiceID: "ai-brand-voice"}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := StepValid(c.step, c.form); got != c.want {
				t.Fatalf("StepValid(%s) = %v, want %v", c.step, got, c.want)
			}
		})
	}
}

func TestWizard_Flows(t *testing.T) {
	t.Run("unified has five steps", func(t *testing.T) {
		w, err := New("s", FlowUnified, "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.StepCount() != 5 || w.Current() != StepSelection {
			t.Fatalf("unexpected shape: count=%d current=%s", w.StepCount(), w.Current())
		}
	})

	t.Run("ai has four steps and skips selection", func(t *testing.T) {
		w, err := New("s", FlowAI, "", "ai")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.StepCount() != 4 || w.Current() != StepDetails {
			t.Fatalf("unexpected shape: count=%d current=%s", w.StepCount(), w.Current())
		}
	})

	t.Run("unknown flow", func(t *testing.T) {
		if _, err := New("s", Flow("bogus"), "", ""); !errors.Is(err, ErrUnknownFlow) {
			t.Fatalf("expected ErrUnknownFlow, got %v", err)
		}
	})

	t.Run("legacy plan preselects a service", func(t *testing.T) {
		w, err := New("s", FlowUnified, "basic", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Form.ServiceID == "" {
			t.Fatal("expected legacy plan to map onto a catalog service")
		}
		if !StepValid(StepSelection, w.Form) {
			t.Fatal("expected preselected service to pass the selection gate")
		}
	})
}

func TestWizard_Navigation(t *testing.T) {
	newAtDetails := func(t *testing.T) *Wizard {
		t.Helper()
		w, err := New("s", FlowUnified, "", "")
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		w.Form.ServiceID = "ai-brand-voice"
		if err := w.Next(); err != nil {
			t.Fatalf("next: %v", err)
		}
		return w
	}

	t.Run("next is gated by the current step", func(t *testing.T) {
		w, _ := New("s", FlowUnified, "", "")
		if err := w.Next(); !errors.Is(err, ErrStepIncomplete) {
			t.Fatalf("expected ErrStepIncomplete, got %v", err)
		}
		w.Form.ServiceID = "ai-brand-voice"
		if err := w.Next(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Current() != StepDetails {
			t.Fatalf("expected details, got %s", w.Current())
		}
	})

	t.Run("back at first step", func(t *testing.T) {
		w, _ := New("s", FlowUnified, "", "")
		if err := w.Back(); !errors.Is(err, ErrAtFirstStep) {
			t.Fatalf("expected ErrAtFirstStep, got %v", err)
		}
	})

	t.Run("values survive back and forth", func(t *testing.T) {
		w := newAtDetails(t)
		w.Form.ProjectName = "Voice Revamp"
		w.Form.Timeline = "2-4 Weeks"
		if err := w.Back(); err != nil {
			t.Fatalf("back: %v", err)
		}
		if err := w.Next(); err != nil {
			t.Fatalf("next: %v", err)
		}
		if w.Form.ProjectName != "Voice Revamp" || w.Form.Timeline != "2-4 Weeks" {
			t.Fatalf("form lost values: %+v", w.Form)
		}
	})

	t.Run("next is a no-op at review", func(t *testing.T) {
		w := completeWizard(t)
		if !w.AtReview() {
			t.Fatalf("expected review, got %s", w.Current())
		}
		if err := w.Next(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !w.AtReview() {
			t.Fatalf("expected to stay at review, got %s", w.Current())
		}
	})
}

// completeWizard walks a unified wizard to its review step.
func completeWizard(t *testing.T) *Wizard {
	t.Helper()
	w, err := New("s", FlowUnified, "", "")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	w.Form.ServiceID = "ai-brand-voice"
	w.Form.ProjectName = "Voice Revamp"
	w.Form.Timeline = "2-4 Weeks"
	w.Form.Name = "Jane Doe"
	w.Form.Email = "jane@example.com"
	for !w.AtReview() {
		if err := w.Next(); err != nil {
			t.Fatalf("next at %s: %v", w.Current(), err)
		}
	}
	return w
}

func TestWizard_Submit(t *testing.T) {
	t.Run("submit only from review", func(t *testing.T) {
		w, _ := New("s", FlowUnified, "", "")
		if err := w.BeginSubmit(); !errors.Is(err, ErrNotAtReview) {
			t.Fatalf("expected ErrNotAtReview, got %v", err)
		}
	})

	t.Run("upsell only at review", func(t *testing.T) {
		w, _ := New("s", FlowUnified, "", "")
		if err := w.SelectUpsell("ai-brand-complete"); !errors.Is(err, ErrNotAtReview) {
			t.Fatalf("expected ErrNotAtReview, got %v", err)
		}
		w = completeWizard(t)
		if err := w.SelectUpsell("ai-brand-complete"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.SelectedUpsell != "ai-brand-complete" {
			t.Fatalf("unexpected selection: %q", w.SelectedUpsell)
		}
	})

	t.Run("ai flow without a service is caught at review", func(t *testing.T) {
		w, err := New("s", FlowAI, "", "ai")
		if err != nil {
			t.Fatalf("new: %v", err)
		}
		w.Form.ProjectName = "Voice Revamp"
		w.Form.Timeline = "2-4 Weeks"
		w.Form.Name = "Jane Doe"
		w.Form.Email = "jane@example.com"
		for !w.AtReview() {
			if err := w.Next(); err != nil {
				t.Fatalf("next at %s: %v", w.Current(), err)
			}
		}
		if StepValid(w.Current(), w.Form) {
			t.Fatal("expected the review gate to reject a session without a service")
		}
		if err := w.BeginSubmit(); !errors.Is(err, ErrStepIncomplete) {
			t.Fatalf("expected ErrStepIncomplete, got %v", err)
		}

		w.Form.ServiceID = "ai-brand-voice"
		if err := w.BeginSubmit(); err != nil {
			t.Fatalf("expected submit once a service is set: %v", err)
		}
	})

	t.Run("in-flight submit locks navigation", func(t *testing.T) {
		w := completeWizard(t)
		if err := w.BeginSubmit(); err != nil {
			t.Fatalf("begin: %v", err)
		}
		if err := w.Back(); !errors.Is(err, ErrSubmitting) {
			t.Fatalf("expected ErrSubmitting, got %v", err)
		}
		if err := w.BeginSubmit(); !errors.Is(err, ErrSubmitting) {
			t.Fatalf("expected ErrSubmitting on double submit, got %v", err)
		}
	})

	t.Run("failed submit returns to review for retry", func(t *testing.T) {
		w := completeWizard(t)
		if err := w.BeginSubmit(); err != nil {
			t.Fatalf("begin: %v", err)
		}
		w.FinishSubmit(false)
		if w.Submitted() {
			t.Fatal("expected not submitted after failure")
		}
		if err := w.BeginSubmit(); err != nil {
			t.Fatalf("expected retry to be allowed: %v", err)
		}
	})

	t.Run("successful submit is terminal", func(t *testing.T) {
		w := completeWizard(t)
		if err := w.BeginSubmit(); err != nil {
			t.Fatalf("begin: %v", err)
		}
		w.FinishSubmit(true)
		if !w.Submitted() {
			t.Fatal("expected submitted")
		}
		if err := w.Next(); !errors.Is(err, ErrAlreadyComplete) {
			t.Fatalf("expected ErrAlreadyComplete, got %v", err)
		}
		if err := w.BeginSubmit(); !errors.Is(err, ErrAlreadyComplete) {
			t.Fatalf("expected ErrAlreadyComplete on resubmit, got %v", err)
		}
	})
}
