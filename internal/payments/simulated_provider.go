package payments

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// SimulatedProviderConfig configures NewSimulatedProvider.
type SimulatedProviderConfig struct {
	Logger Logger
	Clock  func() time.Time
	// Seed makes generated intent ids deterministic in tests.
	Seed int64
}

// SimulatedProvider fabricates payment intents in memory. It is the default
// when no Stripe key is configured so checkout flows stay exercisable
// without touching a real payment network.
type SimulatedProvider struct {
	mu      sync.Mutex
	intents map[string]Intent
	entropy *rand.Rand
	clock   func() time.Time
	logger  Logger
}

func NewSimulatedProvider(cfg SimulatedProviderConfig) *SimulatedProvider {
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
	return &SimulatedProvider{
		intents: make(map[string]Intent),
		entropy: rand.New(rand.NewSource(seed)),
		clock:   func() time.Time { return clock().UTC() },
		logger:  logger,
	}
}

// CreateIntent fabricates a pending intent with a synthetic client secret.
func (p *SimulatedProvider) CreateIntent(ctx context.Context, req IntentRequest) (Intent, error) {
	if err := validateIntentRequest(req); err != nil {
		return Intent{}, err
	}

	now := p.clock()

	p.mu.Lock()
	id := "pi_sim_" + ulid.MustNew(ulid.Timestamp(now), p.entropy).String()
	secret := fmt.Sprintf("%s_secret_%08x", id, p.entropy.Uint32())
	intent := Intent{
		ID:           id,
		Provider:     "simulated",
		ClientSecret: secret,
		Status:       StatusPending,
		Amount:       req.Amount,
		Currency:     strings.ToUpper(req.Currency),
		CreatedAt:    now,
	}
	p.intents[id] = intent
	p.mu.Unlock()

	p.logger(ctx, "payments.simulated.intent_created", map[string]any{
		"paymentIntent": id,
		"amount":        req.Amount,
		"currency":      intent.Currency,
	})
	return intent, nil
}

// LookupIntent returns a previously created simulated intent.
func (p *SimulatedProvider) LookupIntent(_ context.Context, id string) (Intent, error) {
	p.mu.Lock()
	intent, ok := p.intents[strings.TrimSpace(id)]
	p.mu.Unlock()
	if !ok {
		return Intent{}, ErrIntentNotFound
	}
	return intent, nil
}
