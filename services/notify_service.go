package services

import (
	"fmt"
	"html"
	"log"
	"strings"

	"review-requester/config"
)

// MailSender is satisfied by *config.Mailer.
type MailSender interface {
	Enabled() bool
	SendMail(to []string, subject, html string) error
}

// ReviewNotifier mails the reviewers picked in a submission.
type ReviewNotifier struct {
	mailer MailSender
}

func NewReviewNotifier(mailer MailSender) *ReviewNotifier {
	return &ReviewNotifier{mailer: mailer}
}

// Enabled reports whether notifications will actually be sent.
func (n *ReviewNotifier) Enabled() bool {
	return n != nil && n.mailer != nil && n.mailer.Enabled()
}

// Notify sends one mail to all reviewers of the submission. It is a no-op
// when no SMTP server is configured.
func (n *ReviewNotifier) Notify(sub *Submission) error {
	if !n.Enabled() || sub == nil || len(sub.Reviewers) == 0 {
		return nil
	}
	return n.mailer.SendMail(sub.Emails(), config.ReviewMailSubject, renderNotification(sub))
}

// Dispatch sends the notification in the background so an unreachable SMTP
// server does not hold up the caller. Failures are logged. The returned
// channel is closed once sending has finished.
func (n *ReviewNotifier) Dispatch(sub *Submission) <-chan struct{} {
	done := make(chan struct{})
	if !n.Enabled() || sub == nil || len(sub.Reviewers) == 0 {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		if err := n.Notify(sub); err != nil {
			log.Printf("Warning: failed to send review notification: %v", err)
		}
	}()
	return done
}

func renderNotification(sub *Submission) string {
	names := make([]string, 0, len(sub.Reviewers))
	for _, r := range sub.Reviewers {
		names = append(names, html.EscapeString(r.FullName()))
	}
	return fmt.Sprintf(
		"<p>Hello %s,</p><p>You have been asked to review a new <strong>%s</strong> coding project.</p>",
		strings.Join(names, ", "),
		html.EscapeString(sub.Language.Name),
	)
}
