// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// InviteEmail carries the data needed to send a household invitation.
type InviteEmail struct {
	To            string
	InviterName   string
	HouseholdName string
	InviteCode    string
}

// EmailSender defines the interface for sending transactional emails.
type EmailSender interface {
	// SendInvite sends a household invitation email.
	SendInvite(ctx context.Context, email InviteEmail) error
}
