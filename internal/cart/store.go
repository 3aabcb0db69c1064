package cart

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/himalayan-sound/api/internal/domain"
)

var (
	errStoreStorageRequired = errors.New("cart store: storage is required")
	errStoreClockRequired   = errors.New("cart store: clock is required")
)

// ErrItemNotFound indicates the requested product has no line in the cart.
var ErrItemNotFound = errors.New("cart store: item not found")

// StoreDeps wires the storage mirror and ambient dependencies for a Store.
type StoreDeps struct {
	Storage Storage
	Key     string
	Clock   func() time.Time
	Logger  func(context.Context, string, map[string]any)
}

// Store holds the authoritative in-memory item list for one shopping session
// and mirrors every mutation to durable storage. The in-memory state stays
// authoritative even when persistence fails; storage errors degrade to
// logging only.
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
	key     string
	now     func() time.Time
	logger  func(context.Context, string, map[string]any)
}

// NewStore constructs a Store and performs the one-time load from storage.
// A missing or corrupt stored value falls back to an empty cart; the parse
// failure is logged, not returned.
func NewStore(deps StoreDeps) (*Store, error) {
	if deps.Storage == nil {
		return nil, errStoreStorageRequired
	}
	if deps.Clock == nil {
		return nil, errStoreClockRequired
	}

	key := strings.TrimSpace(deps.Key)
	if key == "" {
		key = StorageKey
	}

	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}

	store := &Store{
		items:   []Item{},
		storage: deps.Storage,
		key:     key,
		now:     func() time.Time { return deps.Clock().UTC() },
		logger:  logger,
	}
	store.load()
	return store, nil
}

func (s *Store) load() {
	data, found, err := s.storage.Read(s.key)
	if err != nil {
		s.logger(context.Background(), "cart.storage_read_failed", map[string]any{
			"key":   s.key,
			"error": err.Error(),
		})
		return
	}
	if !found || len(data) == 0 {
		return
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger(context.Background(), "cart.storage_parse_failed", map[string]any{
			"key":   s.key,
			"error": err.Error(),
		})
		return
	}
	// Enforce the one-line-per-product invariant on load; a corrupt mirror
	// must not be able to violate it.
	s.items = dedupeItems(items)
}

// AddItem increments the quantity for the product, appending a new line with
// addedAt set to now when the product is not in the cart yet. Quantities are
// not capped and inventory is not checked; the call always succeeds.
func (s *Store) AddItem(ctx context.Context, product domain.Product, quantity int) {
	if quantity <= 0 {
		quantity = 1
	}
	productID := strings.TrimSpace(product.ID)
	if productID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = applyAdd(s.items, productID, quantity, s.now())
	s.persist(ctx)
}

// RemoveItem drops the product's line; absent products are a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = applyRemove(s.items, productID)
	s.persist(ctx)
}

// UpdateQuantity sets the product's quantity to the absolute value given.
// A quantity of zero or less removes the line. Absent products are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = applyUpdateQuantity(s.items, productID, quantity)
	s.persist(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []Item{}
	s.persist(ctx)
}

// Items returns a copy of the cart lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

// Item returns the line for the product, or ErrItemNotFound.
func (s *Store) Item(productID string) (Item, error) {
	productID = strings.TrimSpace(productID)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ProductID == productID {
			return item, nil
		}
	}
	return Item{}, ErrItemNotFound
}

// ItemCount returns the sum of all line quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Subtotal always returns zero. The store deliberately holds no price data;
// callers compute real totals by joining lines with catalog prices. This is
// a documented contract, not a defect.
func (s *Store) Subtotal() int64 {
	return 0
}

// persist mirrors the full list to storage. Callers hold s.mu. Failures are
// logged and swallowed; the session keeps its in-memory state.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger(ctx, "cart.storage_encode_failed", map[string]any{
			"key":   s.key,
			"error": err.Error(),
		})
		return
	}
	if err := s.storage.Write(s.key, data); err != nil {
		s.logger(ctx, "cart.storage_write_failed", map[string]any{
			"key":   s.key,
			"error": err.Error(),
		})
	}
}

func dedupeItems(items []Item) []Item {
	out := make([]Item, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ProductID)
		if id == "" || item.Quantity <= 0 {
			continue
		}
		if at, ok := index[id]; ok {
			out[at].Quantity += item.Quantity
			continue
		}
		index[id] = len(out)
		item.ProductID = id
		out = append(out, item)
	}
	return out
}
