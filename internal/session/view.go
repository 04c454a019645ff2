package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"restaurant-backoffice/internal/report"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrSuperseded is returned by a reload that finished after a newer one started.
// Its result is discarded.
var ErrSuperseded = errors.New("reload superseded by a newer request")

type Loader interface {
	FetchOrders(ctx context.Context) ([]report.RawOrder, error)
	FetchPaymentModes(ctx context.Context, outletID string) ([]report.PaymentMode, error)
}

type Options struct {
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger

	// Registry limits; zero disables each.
	IdleTTL  time.Duration
	MaxViews int
}

// View is one operator's report screen: the fetched snapshot, its load state
// and the current filter state with its derived result.
type View struct {
	loader Loader
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	loading    bool
	loaded     bool
	loadErr    string
	outletID   string
	loadedAt   time.Time
	bills      []report.Bill
	modes      []report.PaymentMode

	filter    report.FilterState
	filtered  []report.Bill
	dateError string
}

func NewView(loader Loader, opts Options) *View {
	v := &View{
		loader:   loader,
		loc:      opts.Location,
		now:      opts.Now,
		logger:   opts.Logger,
		bills:    []report.Bill{},
		modes:    []report.PaymentMode{},
		filtered: []report.Bill{},
		filter:   report.FilterState{ReportType: report.ReportDaily},
	}
	if v.loc == nil {
		v.loc = time.Local
	}
	if v.now == nil {
		v.now = time.Now
	}
	if v.logger == nil {
		v.logger = zap.NewNop()
	}
	return v
}

// Snapshot is a copy of the view state, safe to hand to renderers.
type Snapshot struct {
	OutletID      string               `json:"outletId"`
	Loading       bool                 `json:"loading"`
	Loaded        bool                 `json:"loaded"`
	Error         string               `json:"error,omitempty"`
	DateError     string               `json:"dateError,omitempty"`
	LoadedAt      *time.Time           `json:"loadedAt,omitempty"`
	Filter        report.FilterState   `json:"filter"`
	BillCount     int                  `json:"billCount"`
	FilteredCount int                  `json:"filteredCount"`
	PaymentModes  []report.PaymentMode `json:"paymentModes"`
	Bills         []report.Bill        `json:"-"`
}

// Reload fetches orders and payment modes concurrently and swaps the snapshot.
// A failed payment-mode fetch degrades to an empty list. A failed order fetch
// keeps the previous snapshot and records the error. Starting a reload
// cancels the one in flight.
func (v *View) Reload(ctx context.Context, outletID string) (Snapshot, error) {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.loading = true
	v.mu.Unlock()
	defer cancel()

	var (
		raw   []report.RawOrder
		modes []report.PaymentMode
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		orders, err := v.loader.FetchOrders(gctx)
		if err != nil {
			return err
		}
		raw = orders
		return nil
	})
	g.Go(func() error {
		list, err := v.loader.FetchPaymentModes(gctx, outletID)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				v.logger.Warn("payment modes unavailable", zap.String("outlet_id", outletID), zap.Error(err))
			}
			list = []report.PaymentMode{}
		}
		modes = list
		return nil
	})
	err := g.Wait()

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.generation {
		return v.snapshotLocked(), ErrSuperseded
	}
	v.loading = false
	v.cancel = nil

	if err != nil {
		v.loadErr = err.Error()
		v.logger.Warn("report reload failed", zap.String("outlet_id", outletID), zap.Error(err))
		return v.snapshotLocked(), err
	}

	now := v.now()
	v.bills = report.Normalize(raw, now, v.loc)
	v.modes = modes
	v.outletID = outletID
	v.loadedAt = now
	v.loaded = true
	v.loadErr = ""
	v.applyLocked(v.filter, false)
	return v.snapshotLocked(), nil
}

// EnsureLoaded reloads when nothing was fetched yet or the outlet changed.
func (v *View) EnsureLoaded(ctx context.Context, outletID string) (Snapshot, error) {
	v.mu.Lock()
	fresh := v.loaded && v.outletID == outletID
	v.mu.Unlock()
	if fresh {
		return v.Snapshot(), nil
	}
	return v.Reload(ctx, outletID)
}

// ApplyFilters derives the filtered bills for state. A custom range with
// start after end leaves the previous result in place and sets the date error.
func (v *View) ApplyFilters(state report.FilterState) Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.applyLocked(state, true)
	return v.snapshotLocked()
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// applyLocked derives the filtered bills. keepPrevious holds the last result
// on a reversed range, which is only valid while the base snapshot is the
// one that result came from.
func (v *View) applyLocked(state report.FilterState, keepPrevious bool) {
	result := report.ApplyFilters(v.bills, state, v.now(), v.loc)
	v.filter = state
	if keepPrevious && errors.Is(result.DateError, report.ErrInvalidRange) {
		v.dateError = result.DateError.Error()
		return
	}
	v.filtered = result.Bills
	v.dateError = ""
	if result.DateError != nil {
		v.dateError = result.DateError.Error()
	}
}

func (v *View) snapshotLocked() Snapshot {
	snap := Snapshot{
		OutletID:      v.outletID,
		Loading:       v.loading,
		Loaded:        v.loaded,
		Error:         v.loadErr,
		DateError:     v.dateError,
		Filter:        v.filter,
		BillCount:     len(v.bills),
		FilteredCount: len(v.filtered),
		PaymentModes:  append([]report.PaymentMode(nil), v.modes...),
		Bills:         append([]report.Bill(nil), v.filtered...),
	}
	if snap.PaymentModes == nil {
		snap.PaymentModes = []report.PaymentMode{}
	}
	if snap.Bills == nil {
		snap.Bills = []report.Bill{}
	}
	if v.loaded {
		at := v.loadedAt
		snap.LoadedAt = &at
	}
	return snap
}
