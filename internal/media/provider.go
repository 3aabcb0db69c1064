// Package media abstracts audio/video asset hosting behind a provider
// registry. All bundled providers are simulated: they validate input and
// fabricate stable asset identifiers without contacting a real host.
package media

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrUnsupportedProvider = errors.New("media: unsupported provider")
	ErrInvalidInput        = errors.New("media: invalid input")
	ErrAssetNotFound       = errors.New("media: asset not found")
)

// UploadRequest describes an asset handed to a hosting provider.
type UploadRequest struct {
	FileName    string
	ContentType string
	SizeBytes   int64
	Title       string
}

// Asset is the normalised result of a provider upload.
type Asset struct {
	ID         string
	Provider   string
	URL        string
	FileName   string
	UploadedAt time.Time
}

// Provider is the contract hosting adapters implement.
type Provider interface {
	Upload(ctx context.Context, req UploadRequest) (Asset, error)
	Delete(ctx context.Context, assetID string) error
}

// Registry routes requests to a named provider.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry constructs a Registry over the supplied providers.
func NewRegistry(providers map[string]Provider) (*Registry, error) {
	if len(providers) == 0 {
		return nil, errors.New("media: at least one provider is required")
	}
	copyMap := make(map[string]Provider, len(providers))
	for name, p := range providers {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || p == nil {
			return nil, errors.New("media: invalid provider registration")
		}
		copyMap[key] = p
	}
	return &Registry{providers: copyMap}, nil
}

// Provider returns the adapter registered under name.
func (r *Registry) Provider(name string) (Provider, error) {
	p, ok := r.providers[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, ErrUnsupportedProvider
	}
	return p, nil
}

// Names lists the registered provider names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
