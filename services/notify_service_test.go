package services

import (
	"errors"
	"testing"
	"time"

	"review-requester/config"
	"review-requester/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	enabled bool
	err     error
	to      []string
	subject string
	body    string
	calls   int
}

func (m *fakeMailer) Enabled() bool { return m.enabled }

func (m *fakeMailer) SendMail(to []string, subject, html string) error {
	m.calls++
	m.to, m.subject, m.body = to, subject, html
	return m.err
}

func TestReviewNotifier(t *testing.T) {
	sub := &Submission{
		Language: models.ReviewLanguage{ID: 1, Name: "C++"},
		Reviewers: []models.Reviewer{
			{ID: 1, FirstName: "Ada", LastName: "Lovelace", EmailAddress: "ada.lovelace@example.com"},
			{ID: 2, FirstName: "Bjarne", LastName: "<Stroustrup>", EmailAddress: "bjarne.stroustrup@example.com"},
		},
	}

	t.Run("SendsToAllReviewers", func(t *testing.T) {
		mailer := &fakeMailer{enabled: true}
		require.NoError(t, NewReviewNotifier(mailer).Notify(sub))
		assert.Equal(t, 1, mailer.calls)
		assert.Equal(t, sub.Emails(), mailer.to)
		assert.Equal(t, config.ReviewMailSubject, mailer.subject)
		assert.Contains(t, mailer.body, "C++")
		assert.Contains(t, mailer.body, "&lt;Stroustrup&gt;")
	})

	t.Run("DisabledIsNoop", func(t *testing.T) {
		mailer := &fakeMailer{}
		require.NoError(t, NewReviewNotifier(mailer).Notify(sub))
		assert.Zero(t, mailer.calls)
		assert.False(t, NewReviewNotifier(nil).Enabled())
	})

	t.Run("PropagatesSendError", func(t *testing.T) {
		mailer := &fakeMailer{enabled: true, err: errors.New("dial tcp: refused")}
		assert.Error(t, NewReviewNotifier(mailer).Notify(sub))
	})
}

type blockingMailer struct {
	release chan struct{}
	sent    chan []string
}

func (m *blockingMailer) Enabled() bool { return true }

func (m *blockingMailer) SendMail(to []string, subject, html string) error {
	<-m.release
	m.sent <- to
	return nil
}

func TestReviewNotifierDispatch(t *testing.T) {
	sub := &Submission{
		Language:  models.ReviewLanguage{ID: 1, Name: "Go"},
		Reviewers: []models.Reviewer{{ID: 1, FirstName: "Ada", LastName: "Lovelace", EmailAddress: "ada.lovelace@example.com"}},
	}

	t.Run("DoesNotWaitForMailer", func(t *testing.T) {
		mailer := &blockingMailer{release: make(chan struct{}), sent: make(chan []string, 1)}
		done := NewReviewNotifier(mailer).Dispatch(sub)

		select {
		case <-done:
			t.Fatal("dispatch finished before the mailer was released")
		default:
		}

		close(mailer.release)
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("dispatch did not finish")
		}
		assert.Equal(t, sub.Emails(), <-mailer.sent)
	})

	t.Run("DisabledClosesImmediately", func(t *testing.T) {
		select {
		case <-NewReviewNotifier(&fakeMailer{}).Dispatch(sub):
		default:
			t.Fatal("expected closed channel")
		}
	})

	t.Run("SendErrorIsLoggedNotReturned", func(t *testing.T) {
		mailer := &fakeMailer{enabled: true, err: errors.New("dial tcp: i/o timeout")}
		<-NewReviewNotifier(mailer).Dispatch(sub)
		assert.Equal(t, 1, mailer.calls)
	})
}
