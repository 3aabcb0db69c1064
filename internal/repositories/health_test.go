package repositories

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHealthCollectAllOK(t *testing.T) {
	repo, err := NewHealthRepository([]HealthCheck{
		{Name: "catalog", Check: func(context.Context) error { return nil }},
		{Name: "content", Check: func(context.Context) error { return nil }},
	})
	if err != nil {
		t.Fatalf("NewHealthRepository: %v", err)
	}

	report, err := repo.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if report.Status != HealthStatusOK {
		t.Fatalf("status = %q", report.Status)
	}
	if len(report.Checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(report.Checks))
	}
}

func TestHealthCollectDegraded(t *testing.T) {
	repo, err := NewHealthRepository([]HealthCheck{
		{Name: "catalog", Check: func(context.Context) error { return nil }},
		{Name: "payments", Check: func(context.Context) error { return errors.New("slow upstream") }},
	})
	if err != nil {
		t.Fatalf("NewHealthRepository: %v", err)
	}

	report, err := repo.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if report.Status != HealthStatusDegraded {
		t.Fatalf("status = %q", report.Status)
	}
	if report.Checks["payments"].Detail != "slow upstream" {
		t.Fatalf("unexpected detail %q", report.Checks["payments"].Detail)
	}
}

func TestHealthCollectTimeout(t *testing.T) {
	repo, err := NewHealthRepository([]HealthCheck{
		{
			Name:    "stuck",
			Timeout: 20 * time.Millisecond,
			Check: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		},
	})
	if err != nil {
		t.Fatalf("NewHealthRepository: %v", err)
	}

	report, err := repo.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if report.Status != HealthStatusError {
		t.Fatalf("status = %q", report.Status)
	}
}

func TestNewHealthRepositoryValidation(t *testing.T) {
	if _, err := NewHealthRepository(nil); err == nil {
		t.Fatal("expected error for empty check set")
	}
	if _, err := NewHealthRepository([]HealthCheck{{Name: " "}}); err == nil {
		t.Fatal("expected error for unnamed check")
	}
}
