package client

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultSuccessNotice is how long the success banner shows before the
// form returns to idle.
const DefaultSuccessNotice = 5 * time.Second

// ErrSubmissionInFlight is returned when a submit or form switch is
// attempted while a submission is still pending.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// FormState is the submit lifecycle of a form.
type FormState int

const (
	FormIdle FormState = iota
	FormSubmitting
	FormSuccess
	FormError
)

func (s FormState) String() string {
	switch s {
	case FormIdle:
		return "idle"
	case FormSubmitting:
		return "submitting"
	case FormSuccess:
		return "success"
	case FormError:
		return "error"
	default:
		return "unknown"
	}
}

// FormSession is the submit state machine shared by the contact and
// appointment forms: idle → submitting → success or error. On success
// the field values reset and the session returns to idle after the
// notice period; on error the entered values are retained so the
// visitor can resubmit without retyping.
type FormSession[T any] struct {
	mu          sync.Mutex
	state       FormState
	values      T
	submit      func(context.Context, T) error
	noticeDelay time.Duration
	timer       *time.Timer
}

// NewFormSession creates an idle session around the given submit call.
func NewFormSession[T any](submit func(context.Context, T) error) *FormSession[T] {
	return &FormSession[T]{
		state:       FormIdle,
		submit:      submit,
		noticeDelay: DefaultSuccessNotice,
	}
}

// SetValues records the visitor's current field values.
func (f *FormSession[T]) SetValues(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = v
}

// Values returns the current field values.
func (f *FormSession[T]) Values() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// State returns the current submit state.
func (f *FormSession[T]) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// InFlight reports whether a submission is pending.
func (f *FormSession[T]) InFlight() bool {
	return f.State() == FormSubmitting
}

// Submit sends the current values. Only one submission may be in flight;
// further attempts fail with ErrSubmissionInFlight until it resolves.
func (f *FormSession[T]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == FormSubmitting {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.state = FormSubmitting
	values := f.values
	f.mu.Unlock()

	err := f.submit(ctx, values)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		// Keep the entered values so nothing is lost on failure.
		f.state = FormError
		return err
	}

	var zero T
	f.values = zero
	f.state = FormSuccess
	f.timer = time.AfterFunc(f.noticeDelay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.state == FormSuccess {
			f.state = FormIdle
		}
	})
	return nil
}

// Switchable is the part of a FormSession the switcher needs.
type Switchable interface {
	InFlight() bool
}

// FormSwitcher models the contact page's form tabs: switching the active
// form is blocked while any registered form has a submission in flight,
// so a success banner can never be attributed to the wrong form.
type FormSwitcher struct {
	mu     sync.Mutex
	active string
	forms  map[string]Switchable
}

// NewFormSwitcher registers the named forms; active is the initial tab.
func NewFormSwitcher(active string, forms map[string]Switchable) *FormSwitcher {
	return &FormSwitcher{active: active, forms: forms}
}

// Active returns the currently selected form name.
func (s *FormSwitcher) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Activate selects another form, unless a submission is in flight.
func (s *FormSwitcher) Activate(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.forms[name]; !ok {
		return errors.New("unknown form: " + name)
	}
	for _, f := range s.forms {
		if f.InFlight() {
			return ErrSubmissionInFlight
		}
	}
	s.active = name
	return nil
}
