package media

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SimulatedConfig configures NewSimulated.
type SimulatedConfig struct {
	// Name is the provider key this instance simulates, e.g. "youtube".
	Name string
	// URLTemplate formats the public URL for an asset id, e.g.
	// "https://youtube.example/watch?v=%s".
	URLTemplate string
	// MaxUploadBytes rejects larger uploads. Zero disables the check.
	MaxUploadBytes int64
	Logger         func(ctx context.Context, event string, fields map[string]any)
	Clock          func() time.Time
	Seed           int64
}

// Simulated is an in-memory hosting provider used for every bundled backend.
type Simulated struct {
	name     string
	urlTmpl  string
	maxBytes int64
	logger   func(ctx context.Context, event string, fields map[string]any)
	clock    func() time.Time

	mu      sync.Mutex
	assets  map[string]Asset
	entropy *rand.Rand
}

func NewSimulated(cfg SimulatedConfig) (*Simulated, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Name))
	if name == "" {
		return nil, fmt.Errorf("media: simulated provider name is required")
	}
	urlTmpl := strings.TrimSpace(cfg.URLTemplate)
	if urlTmpl == "" {
		urlTmpl = "https://assets.himalayan-sound.example/" + name + "/%s"
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = clock().UnixNano()
	}
	return &Simulated{
		name:     name,
		urlTmpl:  urlTmpl,
		maxBytes: cfg.MaxUploadBytes,
		logger:   logger,
		clock:    func() time.Time { return clock().UTC() },
		assets:   make(map[string]Asset),
		entropy:  rand.New(rand.NewSource(seed)),
	}, nil
}

// Upload validates the request and fabricates a hosted asset.
func (s *Simulated) Upload(ctx context.Context, req UploadRequest) (Asset, error) {
	if strings.TrimSpace(req.FileName) == "" {
		return Asset{}, fmt.Errorf("%w: file name is required", ErrInvalidInput)
	}
	if req.SizeBytes < 0 {
		return Asset{}, fmt.Errorf("%w: size must not be negative", ErrInvalidInput)
	}
	if s.maxBytes > 0 && req.SizeBytes > s.maxBytes {
		return Asset{}, fmt.Errorf("%w: upload exceeds %d bytes", ErrInvalidInput, s.maxBytes)
	}

	now := s.clock()

	s.mu.Lock()
	id := ulid.MustNew(ulid.Timestamp(now), s.entropy).String()
	asset := Asset{
		ID:         id,
		Provider:   s.name,
		URL:        fmt.Sprintf(s.urlTmpl, id),
		FileName:   strings.TrimSpace(req.FileName),
		UploadedAt: now,
	}
	s.assets[id] = asset
	s.mu.Unlock()

	s.logger(ctx, "media."+s.name+".uploaded", map[string]any{
		"assetId":  id,
		"fileName": asset.FileName,
		"bytes":    req.SizeBytes,
	})
	return asset, nil
}

// Delete removes a previously uploaded asset.
func (s *Simulated) Delete(ctx context.Context, assetID string) error {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return fmt.Errorf("%w: asset id is required", ErrInvalidInput)
	}

	s.mu.Lock()
	_, ok := s.assets[assetID]
	if ok {
		delete(s.assets, assetID)
	}
	s.mu.Unlock()

	if !ok {
		return ErrAssetNotFound
	}
	s.logger(ctx, "media."+s.name+".deleted", map[string]any{
		"assetId": assetID,
	})
	return nil
}

// DefaultRegistry wires the four simulated hosting backends the storefront
// references for product audio and video samples.
func DefaultRegistry(maxUploadBytes int64, logger func(ctx context.Context, event string, fields map[string]any)) (*Registry, error) {
	templates := map[string]string{
		"youtube":    "https://youtube.example/watch?v=%s",
		"soundcloud": "https://soundcloud.example/himalayan-sound/%s",
		"cloudinary": "https://res.cloudinary.example/himalayan-sound/%s",
		"drive":      "https://drive.example/file/d/%s/view",
	}
	providers := make(map[string]Provider, len(templates))
	for name, tmpl := range templates {
		p, err := NewSimulated(SimulatedConfig{
			Name:           name,
			URLTemplate:    tmpl,
			MaxUploadBytes: maxUploadBytes,
			Logger:         logger,
		})
		if err != nil {
			return nil, err
		}
		providers[name] = p
	}
	return NewRegistry(providers)
}
