package video

import (
	"context"
	"time"
)

// User is a participant identity as the call provider sees it.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}

type CreateCallParams struct {
	ID        string
	Name      string
	CreatedBy string
}

type TokenOptions struct {
	ValidFor time.Duration
	// Leeway widens the validity window to tolerate clock skew
	// between clients and the provider.
	Leeway time.Duration
}

// Provider is the hosted call service: call resources, participant
// identity registration, and signed join tokens.
type Provider interface {
	CreateCall(ctx context.Context, params CreateCallParams) error
	UpsertUsers(ctx context.Context, users []User) error
	IssueToken(user User, opts TokenOptions) (string, error)
}
