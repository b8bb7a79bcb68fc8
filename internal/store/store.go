// Package store implements the inventory store: the in-process data layer
// that owns items and bins, maintains the barcode index, enforces bin
// capacity bookkeeping, manages bin lifecycle, computes alerts, and answers
// search and aggregate queries.
//
// The store keeps all state in memory and treats the blob store as a
// best-effort persistence side-channel: state is loaded once at construction
// and re-serialized after every mutation. Persistence failures are logged and
// never fail the in-memory operation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/stockroom/stockroom/internal/config"
	"github.com/stockroom/stockroom/internal/models"
	"github.com/stockroom/stockroom/internal/storage"
	"github.com/stockroom/stockroom/internal/util"
)

// Sentinel errors for operations that did not happen. The store never fails
// in any other way: persistence problems are swallowed and logged.
var (
	// ErrNotFound signals an unknown item, category, or subtype.
	ErrNotFound = errors.New("store: not found")

	// ErrConflict signals a duplicate category or subtype name.
	ErrConflict = errors.New("store: already exists")

	// ErrCategoryInUse signals a category deletion blocked by items that
	// still reference it.
	ErrCategoryInUse = errors.New("store: category in use")
)

// Options tune inventory behavior. FromConfig builds Options from the
// application configuration; the zero value is usable via the defaults
// applied by New.
type Options struct {
	// DefaultCategories seeds the category list when no saved state exists.
	DefaultCategories []string

	// DefaultBinCapacity is the capacity of automatically created bins.
	DefaultBinCapacity int

	// LowStockThreshold and CriticalStockThreshold drive low-stock alerts.
	LowStockThreshold      int
	CriticalStockThreshold int

	// ExpiringWindowDays is how far ahead expiration warnings look.
	ExpiringWindowDays int

	// Now supplies the current time; defaults to time.Now. Tests pin it.
	Now func() time.Time
}

// FromConfig builds store Options from the application configuration.
func FromConfig(cfg *config.Config) Options {
	return Options{
		DefaultCategories:      cfg.Inventory.DefaultCategories,
		DefaultBinCapacity:     cfg.Inventory.DefaultBinCapacity,
		LowStockThreshold:      cfg.Alerts.LowStockThreshold,
		CriticalStockThreshold: cfg.Alerts.CriticalStockThreshold,
		ExpiringWindowDays:     cfg.Alerts.ExpiringWindowDays,
	}
}

// applyDefaults fills unset options with the built-in defaults.
func (o *Options) applyDefaults() {
	if len(o.DefaultCategories) == 0 {
		o.DefaultCategories = append([]string(nil), config.DefaultCategories...)
	}
	if o.DefaultBinCapacity <= 0 {
		o.DefaultBinCapacity = models.DefaultBinCapacity
	}
	if o.LowStockThreshold <= 0 {
		o.LowStockThreshold = 10
	}
	if o.CriticalStockThreshold <= 0 {
		o.CriticalStockThreshold = 5
	}
	if o.ExpiringWindowDays <= 0 {
		o.ExpiringWindowDays = 30
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Inventory is the inventory store. One instance is constructed at startup
// and shared by all consumers.
//
// Bubble Tea runs commands on separate goroutines, so a mutex guards the
// maps. Each operation still runs to completion before the next observes
// its effects.
type Inventory struct {
	mu    sync.Mutex
	blobs storage.BlobStore // nil disables persistence
	idGen *util.IDGenerator
	opts  Options

	items        map[string]*models.Item
	itemOrder    []string // insertion order of item IDs
	bins         map[string]*models.Bin
	binOrder     []string // creation order of bin IDs
	barcodeIndex map[string]string // barcode -> item ID, derived cache
	categories   []string
	subtypes     map[string][]string // category -> ordered subtype names
}

// New creates an Inventory backed by the given blob store. Saved state is
// loaded if present; any load error falls back to the built-in defaults and
// is never fatal. A nil blob store yields a purely in-memory inventory.
func New(blobs storage.BlobStore, opts Options) *Inventory {
	opts.applyDefaults()

	inv := &Inventory{
		blobs:        blobs,
		idGen:        util.NewIDGenerator(),
		opts:         opts,
		items:        make(map[string]*models.Item),
		bins:         make(map[string]*models.Bin),
		barcodeIndex: make(map[string]string),
		subtypes:     make(map[string][]string),
	}

	if err := inv.load(); err != nil {
		slog.Warn("no usable saved inventory state, starting from defaults", "error", err)
		inv.reset()
	}
	inv.ensureDefaults()

	return inv
}

// reset clears all state.
func (inv *Inventory) reset() {
	inv.items = make(map[string]*models.Item)
	inv.itemOrder = nil
	inv.bins = make(map[string]*models.Bin)
	inv.binOrder = nil
	inv.barcodeIndex = make(map[string]string)
	inv.categories = nil
	inv.subtypes = make(map[string][]string)
}

// ensureDefaults guarantees a category list and at least one bin per
// category, whether starting fresh or after loading partial state.
func (inv *Inventory) ensureDefaults() {
	if len(inv.categories) == 0 {
		inv.categories = append([]string(nil), inv.opts.DefaultCategories...)
	}

	for _, category := range inv.categories {
		if inv.binCountForCategory(category) == 0 {
			inv.createBin(category)
		}
	}
}

// load reads the four state parts from the blob store and rebuilds the
// derived structures. Item records are the ground truth: the barcode index
// and every bin's CurrentQuantity are recomputed from them.
func (inv *Inventory) load() error {
	if inv.blobs == nil {
		return nil
	}

	ctx := context.Background()

	var categories []string
	if err := inv.loadBlob(ctx, storage.KeyCategories, &categories); err != nil {
		return fmt.Errorf("loading categories: %w", err)
	}

	var subtypes map[string][]string
	if err := inv.loadBlob(ctx, storage.KeySubtypes, &subtypes); err != nil {
		return fmt.Errorf("loading subtypes: %w", err)
	}

	var items []*models.Item
	if err := inv.loadBlob(ctx, storage.KeyItems, &items); err != nil {
		return fmt.Errorf("loading items: %w", err)
	}

	var bins []*models.Bin
	if err := inv.loadBlob(ctx, storage.KeyBins, &bins); err != nil {
		return fmt.Errorf("loading bins: %w", err)
	}

	inv.categories = categories
	if subtypes != nil {
		inv.subtypes = subtypes
	}

	for _, bin := range bins {
		bin.ItemIDs = nil
		bin.CurrentQuantity = 0
		inv.bins[bin.ID] = bin
		inv.binOrder = append(inv.binOrder, bin.ID)
	}

	for _, item := range items {
		inv.items[item.ID] = item
		inv.itemOrder = append(inv.itemOrder, item.ID)
		inv.barcodeIndex[item.Barcode] = item.ID

		if bin, ok := inv.bins[item.BinID]; ok {
			bin.ItemIDs = append(bin.ItemIDs, item.ID)
			bin.CurrentQuantity += item.Quantity
		}
	}

	return nil
}

// loadBlob reads one key into dst. An absent key leaves dst untouched;
// malformed JSON or a read error aborts the load.
func (inv *Inventory) loadBlob(ctx context.Context, key string, dst any) error {
	data, err := inv.blobs.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshaling %s: %w", key, err)
	}
	return nil
}

// save re-serializes all four state parts to the blob store. Errors are
// logged and swallowed: only durability is lost, never the in-memory effect.
// Callers must hold the mutex.
func (inv *Inventory) save() {
	if inv.blobs == nil {
		return
	}

	ctx := context.Background()

	items := make([]*models.Item, 0, len(inv.itemOrder))
	for _, id := range inv.itemOrder {
		items = append(items, inv.items[id])
	}

	bins := make([]*models.Bin, 0, len(inv.binOrder))
	for _, id := range inv.binOrder {
		bins = append(bins, inv.bins[id])
	}

	parts := []struct {
		key   string
		value any
	}{
		{storage.KeyItems, items},
		{storage.KeyBins, bins},
		{storage.KeyCategories, inv.categories},
		{storage.KeySubtypes, inv.subtypes},
	}

	for _, part := range parts {
		data, err := json.Marshal(part.value)
		if err != nil {
			slog.Error("serializing inventory state", "key", part.key, "error", err)
			continue
		}
		if err := inv.blobs.Put(ctx, part.key, data); err != nil {
			slog.Error("persisting inventory state", "key", part.key, "error", err)
		}
	}
}

// now returns the current time per the configured clock.
func (inv *Inventory) now() time.Time {
	return inv.opts.Now()
}
