package media

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestProvider(t *testing.T) *Simulated {
	t.Helper()
	p, err := NewSimulated(SimulatedConfig{
		Name:        "youtube",
		URLTemplate: "https://youtube.example/watch?v=%s",
		Clock:       func() time.Time { return time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC) },
		Seed:        11,
	})
	if err != nil {
		t.Fatalf("NewSimulated: %v", err)
	}
	return p
}

func TestUploadAndDelete(t *testing.T) {
	p := newTestProvider(t)

	asset, err := p.Upload(context.Background(), UploadRequest{
		FileName:  "full-moon-bowl.mp4",
		SizeBytes: 1024,
	})
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if asset.ID == "" || asset.Provider != "youtube" {
		t.Fatalf("unexpected asset: %+v", asset)
	}
	if !strings.Contains(asset.URL, asset.ID) {
		t.Fatalf("url %q does not embed asset id", asset.URL)
	}

	if err := p.Delete(context.Background(), asset.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := p.Delete(context.Background(), asset.ID); !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("expected ErrAssetNotFound on second delete, got %v", err)
	}
}

func TestUploadValidation(t *testing.T) {
	p := newTestProvider(t)
	if _, err := p.Upload(context.Background(), UploadRequest{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing file name, got %v", err)
	}
}

func TestUploadSizeLimit(t *testing.T) {
	p, err := NewSimulated(SimulatedConfig{Name: "drive", MaxUploadBytes: 100})
	if err != nil {
		t.Fatalf("NewSimulated: %v", err)
	}
	if _, err := p.Upload(context.Background(), UploadRequest{FileName: "a.bin", SizeBytes: 101}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized upload, got %v", err)
	}
	if _, err := p.Upload(context.Background(), UploadRequest{FileName: "a.bin", SizeBytes: 100}); err != nil {
		t.Fatalf("upload at limit should succeed: %v", err)
	}
}

func TestRegistryRouting(t *testing.T) {
	registry, err := DefaultRegistry(0, nil)
	if err != nil {
		t.Fatalf("DefaultRegistry: %v", err)
	}
	for _, name := range []string{"youtube", "soundcloud", "cloudinary", "drive"} {
		if _, err := registry.Provider(name); err != nil {
			t.Errorf("Provider(%q): %v", name, err)
		}
	}
	if _, err := registry.Provider("vimeo"); !errors.Is(err, ErrUnsupportedProvider) {
		t.Fatalf("expected ErrUnsupportedProvider, got %v", err)
	}
	if _, err := registry.Provider(" YouTube "); err != nil {
		t.Fatalf("provider lookup should normalise case and spacing: %v", err)
	}
}
