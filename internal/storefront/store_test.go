package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wkdev/pacelular-backend/internal/catalog"
	"github.com/wkdev/pacelular-backend/internal/hero"
	"github.com/wkdev/pacelular-backend/internal/schedule"
	filekeystore "github.com/wkdev/pacelular-backend/pkg/keystore/file"
	"go.uber.org/zap"
)

var errStorageFull = errors.New("storage full")

// failingBackend accepts reads but rejects every write.
type failingBackend struct{}

func (failingBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("key not found")
}

func (failingBackend) SetAll(ctx context.Context, entries map[string][]byte) error {
	return errStorageFull
}

func newReadyStore(t *testing.T) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "state.json")
	store := New(filekeystore.New(path, zap.NewNop()), zap.NewNop())
	require.NoError(t, store.Load(context.Background()))

	return store, path
}

func testProduct(id, name string) catalog.Product {
	return catalog.Product{
		ID:       id,
		Name:     name,
		Brand:    catalog.BrandApple,
		Category: catalog.CategorySmartphones,
		Price:    100,
	}
}

func TestLoadAdoptsDefaults(t *testing.T) {
	store, _ := newReadyStore(t)

	require.Equal(t, StateReady, store.CurrentState())
	require.Len(t, store.Products(), 2)
	require.Len(t, store.HeroImages(), 3)
	require.True(t, store.BusinessHours().Monday.IsOpen)
	require.False(t, store.BusinessHours().Sunday.IsOpen)
}

func TestLoadTwice(t *testing.T) {
	store, _ := newReadyStore(t)

	require.ErrorIs(t, store.Load(context.Background()), ErrAlreadyLoaded)
}

func TestMutationBeforeLoad(t *testing.T) {
	store := New(failingBackend{}, zap.NewNop())
	ctx := context.Background()

	require.ErrorIs(t, store.AddProduct(ctx, testProduct("1", "X")), ErrNotReady)
	require.ErrorIs(t, store.DeleteProduct(ctx, "1"), ErrNotReady)
	require.ErrorIs(t, store.AddHeroImage(ctx, hero.Image{ID: "h"}), ErrNotReady)
	require.ErrorIs(t, store.UpdateBusinessHours(ctx, schedule.BusinessHours{}), ErrNotReady)
	require.ErrorIs(t, store.Flush(ctx), ErrNotReady)
}

func TestAddProductRoundTrip(t *testing.T) {
	store, path := newReadyStore(t)
	ctx := context.Background()

	p := testProduct("1700000000000", "iPhone SE")
	require.NoError(t, store.AddProduct(ctx, p))

	// a fresh store over the same file must contain the product exactly once
	reloaded := New(filekeystore.New(path, zap.NewNop()), zap.NewNop())
	require.NoError(t, reloaded.Load(ctx))

	var matches int
	for _, got := range reloaded.Products() {
		if got.ID == p.ID {
			matches++
			require.Equal(t, p, got)
		}
	}
	require.Equal(t, 1, matches)
}

func TestDefaultsNotPersistedUntilFirstMutation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	backend := filekeystore.New(path, zap.NewNop())
	ctx := context.Background()

	store := New(backend, zap.NewNop())
	require.NoError(t, store.Load(ctx))

	_, err := backend.Get(ctx, "products")
	require.Error(t, err, "defaults must not be written back on load")

	require.NoError(t, store.Flush(ctx))

	_, err = backend.Get(ctx, "products")
	require.NoError(t, err)
}

func TestUpdateProductPreservesOrder(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()

	require.NoError(t, store.DeleteProduct(ctx, "1"))
	require.NoError(t, store.DeleteProduct(ctx, "2"))

	for _, p := range []catalog.Product{
		testProduct("a", "A"),
		testProduct("b", "B"),
		testProduct("c", "C"),
	} {
		require.NoError(t, store.AddProduct(ctx, p))
	}

	updated := testProduct("b", "B updated")
	require.NoError(t, store.UpdateProduct(ctx, updated))

	products := store.Products()
	require.Len(t, products, 3)
	require.Equal(t, "a", products[0].ID)
	require.Equal(t, "B updated", products[1].Name)
	require.Equal(t, "c", products[2].ID)
}

func TestUpdateProductMissIsNoop(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()

	before := store.Products()
	require.NoError(t, store.UpdateProduct(ctx, testProduct("missing", "X")))
	require.Equal(t, before, store.Products())
}

func TestDeleteProductIsIdempotent(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()

	require.NoError(t, store.DeleteProduct(ctx, "1"))
	after := store.Products()

	require.NoError(t, store.DeleteProduct(ctx, "1"))
	require.Equal(t, after, store.Products())
}

func TestAddThenDeleteReturnsToEmpty(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()

	require.NoError(t, store.DeleteProduct(ctx, "1"))
	require.NoError(t, store.DeleteProduct(ctx, "2"))
	require.Empty(t, store.Products())

	require.NoError(t, store.AddProduct(ctx, testProduct("1", "X")))
	require.Len(t, store.Products(), 1)

	require.NoError(t, store.DeleteProduct(ctx, "1"))
	require.Empty(t, store.Products())
}

func TestHeroImageLifecycle(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()

	img := hero.Image{ID: "h9", URL: "data:image/jpeg;base64,AAAA"}
	require.NoError(t, store.AddHeroImage(ctx, img))

	images := store.HeroImages()
	require.Equal(t, img, images[len(images)-1])

	require.NoError(t, store.DeleteHeroImage(ctx, "h9"))
	require.Len(t, store.HeroImages(), 3)

	// deleting again is a silent no-op
	require.NoError(t, store.DeleteHeroImage(ctx, "h9"))
	require.Len(t, store.HeroImages(), 3)
}

func TestUpdateBusinessHoursReplacesWholeSchedule(t *testing.T) {
	store, path := newReadyStore(t)
	ctx := context.Background()

	hours := store.BusinessHours()
	hours.Sunday = schedule.BusinessDay{IsOpen: true, OpenTime: "10:00", CloseTime: "14:00"}
	require.NoError(t, store.UpdateBusinessHours(ctx, hours))

	reloaded := New(filekeystore.New(path, zap.NewNop()), zap.NewNop())
	require.NoError(t, reloaded.Load(ctx))
	require.Equal(t, hours, reloaded.BusinessHours())
}

func TestCorruptSlotFallsBackAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	backend := filekeystore.New(path, zap.NewNop())
	ctx := context.Background()

	customHours := defaultBusinessHours()
	customHours.Monday.CloseTime = "20:00"
	hoursDoc, err := json.Marshal(customHours)
	require.NoError(t, err)

	// a valid JSON document of the wrong shape is unparseable for the slot
	require.NoError(t, backend.SetAll(ctx, map[string][]byte{
		"products": []byte(`"corrupt"`),
		"hours":    hoursDoc,
	}))

	store := New(backend, zap.NewNop())
	require.NoError(t, store.Load(ctx))

	// products slot fell back to the seed catalog, hours slot was adopted
	require.Len(t, store.Products(), 2)
	require.Equal(t, "20:00", store.BusinessHours().Monday.CloseTime)
}

func TestPersistFailureKeepsMemoryState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := New(filekeystore.New(path, zap.NewNop()), zap.NewNop())
	ctx := context.Background()
	require.NoError(t, store.Load(ctx))

	// swap in a backend that rejects writes
	store.backend = failingBackend{}

	img := hero.Image{ID: "big", URL: "data:image/jpeg;base64,BBBB"}
	err := store.AddHeroImage(ctx, img)
	require.ErrorIs(t, err, errStorageFull)

	// the in-memory list still contains the image
	images := store.HeroImages()
	require.Equal(t, img, images[len(images)-1])
}

func TestIsOpenNowUsesCurrentSchedule(t *testing.T) {
	store, _ := newReadyStore(t)
	ctx := context.Background()

	alwaysOpen := schedule.BusinessDay{IsOpen: true, OpenTime: "00:00", CloseTime: "23:59"}
	require.NoError(t, store.UpdateBusinessHours(ctx, schedule.BusinessHours{
		Monday:    alwaysOpen,
		Tuesday:   alwaysOpen,
		Wednesday: alwaysOpen,
		Thursday:  alwaysOpen,
		Friday:    alwaysOpen,
		Saturday:  alwaysOpen,
		Sunday:    alwaysOpen,
	}))

	if time.Now().Hour() == 23 && time.Now().Minute() == 59 {
		t.Skip("on the closing minute boundary")
	}

	require.True(t, store.IsOpenNow())
}
