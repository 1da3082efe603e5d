package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormSession_SuccessResetsValues(t *testing.T) {
	session := NewFormSession(func(ctx context.Context, f ContactForm) error {
		return nil
	})
	session.noticeDelay = 20 * time.Millisecond

	session.SetValues(ContactForm{Name: "A", Email: "a@x.com", Message: "hi"})

	err := session.Submit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, FormSuccess, session.State())
	assert.Equal(t, ContactForm{}, session.Values())

	// The success notice reverts to idle after the fixed period.
	assert.Eventually(t, func() bool {
		return session.State() == FormIdle
	}, time.Second, 5*time.Millisecond)
}

func TestFormSession_ErrorRetainsValues(t *testing.T) {
	session := NewFormSession(func(ctx context.Context, f ContactForm) error {
		return errors.New("network down")
	})

	entered := ContactForm{Name: "A", Email: "a@x.com", Message: "long message"}
	session.SetValues(entered)

	err := session.Submit(context.Background())

	assert.Error(t, err)
	assert.Equal(t, FormError, session.State())
	assert.Equal(t, entered, session.Values())

	// The visitor may resubmit the retained values.
	session.submit = func(ctx context.Context, f ContactForm) error {
		assert.Equal(t, entered, f)
		return nil
	}
	assert.NoError(t, session.Submit(context.Background()))
}

func TestFormSession_SingleInFlightSubmission(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	session := NewFormSession(func(ctx context.Context, f ContactForm) error {
		close(started)
		<-release
		return nil
	})
	session.noticeDelay = time.Millisecond

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		session.Submit(context.Background())
	}()

	<-started
	assert.True(t, session.InFlight())
	assert.ErrorIs(t, session.Submit(context.Background()), ErrSubmissionInFlight)

	close(release)
	wg.Wait()
}

func TestFormSwitcher(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	contact := NewFormSession(func(ctx context.Context, f ContactForm) error {
		close(started)
		<-release
		return nil
	})
	appointment := NewFormSession(func(ctx context.Context, f AppointmentForm) error {
		return nil
	})

	switcher := NewFormSwitcher("contact", map[string]Switchable{
		"contact":     contact,
		"appointment": appointment,
	})

	t.Run("switching works when idle", func(t *testing.T) {
		require.NoError(t, switcher.Activate("appointment"))
		assert.Equal(t, "appointment", switcher.Active())
		require.NoError(t, switcher.Activate("contact"))
	})

	t.Run("unknown form rejected", func(t *testing.T) {
		assert.Error(t, switcher.Activate("billing"))
	})

	t.Run("switching blocked while a submission is in flight", func(t *testing.T) {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			contact.Submit(context.Background())
		}()

		<-started
		assert.ErrorIs(t, switcher.Activate("appointment"), ErrSubmissionInFlight)
		assert.Equal(t, "contact", switcher.Active())

		close(release)
		wg.Wait()

		assert.NoError(t, switcher.Activate("appointment"))
	})
}
