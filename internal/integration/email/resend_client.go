// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/household-tracker/backend/internal/application/adapter"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendInvite sends a household invitation email via Resend.
func (c *ResendClient) SendInvite(ctx context.Context, invite adapter.InviteEmail) error {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{invite.To},
		Subject: fmt.Sprintf("%s invited you to join %s", invite.InviterName, invite.HouseholdName),
		Html:    renderInviteHTML(invite),
		Text:    renderInviteText(invite),
	}

	_, err := c.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		if isPermanentError(err) {
			return domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"permanent email failure",
				err,
			)
		}
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"temporary email failure",
			err,
		)
	}

	return nil
}

func renderInviteHTML(invite adapter.InviteEmail) string {
	return fmt.Sprintf(
		`<h2>You're invited!</h2>
<p>%s invited you to join the household <strong>%s</strong>.</p>
<p>Sign up and enter this invite code to join:</p>
<p style="font-size:24px;letter-spacing:4px;font-family:monospace"><strong>%s</strong></p>`,
		invite.InviterName, invite.HouseholdName, invite.InviteCode,
	)
}

func renderInviteText(invite adapter.InviteEmail) string {
	return fmt.Sprintf(
		"%s invited you to join the household %q.\n\nSign up and enter this invite code to join: %s\n",
		invite.InviterName, invite.HouseholdName, invite.InviteCode,
	)
}

// isPermanentError checks if the error is a permanent error that should not be retried.
// Permanent errors include: 401 (Unauthorized), 403 (Forbidden), 422 (Validation Error)
// Temporary errors include: 429 (Rate Limit), 5xx (Server Errors)
func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())

	permanentPatterns := []string{
		"401",
		"403",
		"422",
		"unauthorized",
		"forbidden",
		"validation",
		"invalid",
		"bad request",
	}

	for _, pattern := range permanentPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// MockEmailSender is a mock implementation for testing.
type MockEmailSender struct {
	SentInvites []adapter.InviteEmail
	ShouldFail  bool
}

// SendInvite records the invite instead of sending it.
func (m *MockEmailSender) SendInvite(ctx context.Context, invite adapter.InviteEmail) error {
	if m.ShouldFail {
		return domainerror.NewEmailError(
			domainerror.ErrCodeTemporaryEmailFailure,
			"temporary email failure",
			nil,
		)
	}
	m.SentInvites = append(m.SentInvites, invite)
	return nil
}
