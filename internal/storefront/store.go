// Package storefront owns the canonical in-memory copies of the three
// storefront state slots (catalog products, hero images, business hours) and
// their synchronization with the durable keystore. Handlers and services
// never touch the keystore directly.
package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wkdev/pacelular-backend/internal/catalog"
	"github.com/wkdev/pacelular-backend/internal/hero"
	"github.com/wkdev/pacelular-backend/internal/schedule"
	"github.com/wkdev/pacelular-backend/pkg/keystore"
	"go.uber.org/zap"
)

// Durable document keys.
const (
	keyProducts   = "products"
	keyHeroImages = "hero_images"
	keyHours      = "hours"
)

var (
	ErrNotReady      = errors.New("storefront state is not loaded yet")
	ErrAlreadyLoaded = errors.New("storefront state is already loaded")
)

type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	}

	return "unknown"
}

// Store is the process-wide state container. Mutations are only valid once
// Load has resolved all three slots; until then nothing is written back, so
// a default can never be persisted over not-yet-loaded real data.
type Store struct {
	backend keystore.Store
	logger  *zap.Logger

	mu         sync.RWMutex
	state      State
	products   []catalog.Product
	heroImages []hero.Image
	hours      schedule.BusinessHours
}

func New(backend keystore.Store, logger *zap.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logger,
		state:   StateUninitialized,
	}
}

// Load resolves all three slots from the keystore. A missing or unparseable
// document falls back to the compiled-in default for that slot only; the
// fallback is not written back here. Load transitions the store to Ready and
// may be called once.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateUninitialized {
		return ErrAlreadyLoaded
	}

	s.state = StateLoading

	products, err := loadSlot(ctx, s.backend, keyProducts, defaultProducts(), s.logger)
	if err != nil {
		s.state = StateUninitialized
		return err
	}

	heroImages, err := loadSlot(ctx, s.backend, keyHeroImages, defaultHeroImages(), s.logger)
	if err != nil {
		s.state = StateUninitialized
		return err
	}

	hours, err := loadSlot(ctx, s.backend, keyHours, defaultBusinessHours(), s.logger)
	if err != nil {
		s.state = StateUninitialized
		return err
	}

	s.products = products
	s.heroImages = heroImages
	s.hours = hours
	s.state = StateReady

	s.logger.Info("storefront state loaded",
		zap.Int("products", len(products)),
		zap.Int("hero_images", len(heroImages)),
	)

	return nil
}

// loadSlot reads one slot. Only a keystore failure is an error; an absent or
// unparseable document resolves to the fallback value.
func loadSlot[T any](
	ctx context.Context,
	backend keystore.Store,
	key string,
	fallback T,
	logger *zap.Logger,
) (T, error) {
	raw, err := backend.Get(ctx, key)
	if err != nil {
		if errors.Is(err, keystore.ErrKeyNotFound) {
			return fallback, nil
		}

		return fallback, fmt.Errorf("unable to read slot %q: %w", key, err)
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("slot document is unparseable, using defaults",
			zap.String("key", key),
			zap.Error(err),
		)

		return fallback, nil
	}

	return value, nil
}

func (s *Store) CurrentState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *Store) Products() []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)

	return out
}

func (s *Store) HeroImages() []hero.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]hero.Image, len(s.heroImages))
	copy(out, s.heroImages)

	return out
}

func (s *Store) BusinessHours() schedule.BusinessHours {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hours
}

// IsOpenNow evaluates the current schedule against the server-local clock.
func (s *Store) IsOpenNow() bool {
	return schedule.IsOpenAt(s.BusinessHours(), time.Now())
}

// AddProduct appends p to the catalog. Insertion order is preserved and no
// uniqueness check is made on the id; the caller assigns ids.
func (s *Store) AddProduct(ctx context.Context, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}

	s.products = append(s.products, p)

	return s.persist(ctx)
}

// UpdateProduct replaces the element whose id matches p.ID in place. When
// nothing matches the catalog is left unchanged and no error is reported.
func (s *Store) UpdateProduct(ctx context.Context, p catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			break
		}
	}

	return s.persist(ctx)
}

// DeleteProduct removes every element with the given id. A miss is a no-op.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept

	return s.persist(ctx)
}

func (s *Store) AddHeroImage(ctx context.Context, img hero.Image) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}

	s.heroImages = append(s.heroImages, img)

	return s.persist(ctx)
}

func (s *Store) DeleteHeroImage(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}

	kept := s.heroImages[:0]
	for _, img := range s.heroImages {
		if img.ID != id {
			kept = append(kept, img)
		}
	}
	s.heroImages = kept

	return s.persist(ctx)
}

// UpdateBusinessHours replaces the whole weekly schedule. Partial updates are
// not supported at this layer.
func (s *Store) UpdateBusinessHours(ctx context.Context, hours schedule.BusinessHours) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}

	s.hours = hours

	return s.persist(ctx)
}

// Flush writes the current state without mutating it, e.g. to make the seed
// defaults durable explicitly.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return ErrNotReady
	}

	return s.persist(ctx)
}

// persist serializes all three slots together on every accepted mutation.
// On a write failure the in-memory mutation stays applied and the error is
// surfaced to the caller; memory and the durable mirror then diverge until
// the next successful write.
func (s *Store) persist(ctx context.Context) error {
	products, err := json.Marshal(s.products)
	if err != nil {
		return err
	}

	heroImages, err := json.Marshal(s.heroImages)
	if err != nil {
		return err
	}

	hours, err := json.Marshal(s.hours)
	if err != nil {
		return err
	}

	err = s.backend.SetAll(ctx, map[string][]byte{
		keyProducts:   products,
		keyHeroImages: heroImages,
		keyHours:      hours,
	})
	if err != nil {
		s.logger.Error("unable to persist storefront state", zap.Error(err))
		return fmt.Errorf("unable to persist state: %w", err)
	}

	return nil
}
