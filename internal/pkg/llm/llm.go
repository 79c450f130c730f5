// Package llm sends single chat turns to the configured AI provider.
package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned when a send is attempted without a credential.
var ErrMissingAPIKey = errors.New("AI provider api key is empty")

// SendOptions carries everything one chat call needs. SessionID is forwarded
// for provider-side attribution; no conversation state is kept here.
type SendOptions struct {
	APIKey       string
	SessionID    string
	SystemPrompt string
	Provider     string
	Model        string
	UserText     string
}

// Client is the narrow chat-provider contract the core depends on, so the
// orchestration logic stays testable without network access.
type Client interface {
	Send(ctx context.Context, opts SendOptions) (string, error)
}

// NewClient returns the provider-dispatching client.
func NewClient() Client { return &providerClient{} }
