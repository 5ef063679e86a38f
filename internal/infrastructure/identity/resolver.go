// Package identity turns an incoming request into the bearer token sent to the
// freight backend.
package identity

import (
	"context"
	"log"
	"strings"

	"freight_portal/internal/config"
)

// Provider asks the identity provider for a token; an empty template means
// the provider's default token.
type Provider func(ctx context.Context, template string) (string, error)

// DefaultTemplates are tried after the configured template names.
var DefaultTemplates = []string{"backend", "default"}

type Resolver struct {
	sandboxEnabled bool
	sandboxToken   string
	templates      []string
}

func NewResolver(cfg config.IdentityConfig) *Resolver {
	token := strings.TrimSpace(cfg.DevAdminToken)
	if token == "" {
		token = config.DefaultDevAdminToken
	}
	return &Resolver{
		sandboxEnabled: cfg.DevAdminEnabled,
		sandboxToken:   token,
		templates:      templateOrder(cfg.Templates),
	}
}

func templateOrder(configured []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(configured)+len(DefaultTemplates))
	for _, t := range append(append([]string{}, configured...), DefaultTemplates...) {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// SandboxActive reports whether the sandbox admin session applies given the
// persisted disable flag.
func (r *Resolver) SandboxActive(disabled bool) bool {
	return r.sandboxEnabled && !disabled
}

// Resolve returns the sandbox token when the sandbox is active, otherwise the
// first non-empty token from the provider: default token, configured
// templates, then DefaultTemplates. Provider errors are logged and skipped.
// An empty string means no token.
func (r *Resolver) Resolve(ctx context.Context, provider Provider, sandboxDisabled bool) string {
	if r.SandboxActive(sandboxDisabled) {
		return r.sandboxToken
	}
	if provider == nil {
		return ""
	}
	for _, template := range append([]string{""}, r.templates...) {
		if ctx.Err() != nil {
			return ""
		}
		token, err := provider(ctx, template)
		if err != nil {
			log.Printf("[identity][resolver] token failed template=%q err=%v", template, err)
			continue
		}
		if token = strings.TrimSpace(token); token != "" {
			return token
		}
	}
	return ""
}
