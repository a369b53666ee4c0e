package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	apperrors "transaction-analyzer/internal/errors"
	"transaction-analyzer/internal/models"
)

// ErrStaleResponse is returned when a fetch settled after its tab lost focus,
// a newer fetch or replace happened, or the loader was closed.
var ErrStaleResponse = errors.New("stale response discarded")

type resourceState struct {
	generation uint64
	started    bool
	loading    bool
	loadingGen uint64
	// needsFetch is set when the tab gains focus and after a failed fetch,
	// and cleared once a fetch or replace lands.
	needsFetch    bool
	inFlightGen   uint64
	inFlightEpoch uint64
	// removed maps ids deleted locally to the generation current at the
	// time, so a fetch issued before the delete cannot bring them back.
	removed map[models.RecordID]uint64
}

// DataLoader owns the transaction and pattern collections. Each resource
// keeps its own fetch generation; the loader keeps an activation epoch that
// changes only when the active tab does. A fetch result is applied only when
// both still match the values captured when it was issued.
type DataLoader struct {
	mu      sync.RWMutex
	gateway ResourceGatewayInterface
	logger  ActionLoggerInterface
	metrics MetricsRecorderInterface

	active       models.Tab
	epoch        uint64
	closed       bool
	transactions []models.Transaction
	patterns     []models.Pattern
	resources    map[models.Tab]*resourceState
}

func NewDataLoader(gateway ResourceGatewayInterface, logger ActionLoggerInterface, metrics MetricsRecorderInterface) DataLoaderInterface {
	return &DataLoader{
		gateway:      gateway,
		logger:       logger,
		metrics:      metrics,
		transactions: []models.Transaction{},
		patterns:     []models.Pattern{},
		resources: map[models.Tab]*resourceState{
			models.TabMerchant: {needsFetch: true, removed: make(map[models.RecordID]uint64)},
			models.TabPattern:  {needsFetch: true, removed: make(map[models.RecordID]uint64)},
		},
	}
}

// Activate focuses tab and fetches its collection. Re-activating the tab
// that is already active and loaded is a no-op.
func (l *DataLoader) Activate(ctx context.Context, tab models.Tab) error {
	if err := l.Select(tab); err != nil {
		return err
	}
	return l.Load(ctx, tab)
}

// Select focuses tab without fetching. Any fetch issued under the previous
// focus settles as stale.
func (l *DataLoader) Select(tab models.Tab) error {
	if !tab.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidTab, tab)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return apperrors.ErrDashboardClosed
	}
	if l.active != tab {
		l.active = tab
		l.epoch++
		l.resources[tab].needsFetch = true
	}
	return nil
}

// Load fetches tab when it still has focus and has no current data: it was
// just selected, or its last fetch failed. A tab that lost focus is left
// alone and ErrStaleResponse is returned.
func (l *DataLoader) Load(ctx context.Context, tab models.Tab) error {
	if !tab.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidTab, tab)
	}

	l.mu.RLock()
	closed, active, epoch := l.closed, l.active, l.epoch
	res := l.resources[tab]
	inFlight := res.inFlightGen != 0 && res.inFlightEpoch == epoch
	needsFetch := res.needsFetch
	l.mu.RUnlock()

	switch {
	case closed:
		return apperrors.ErrDashboardClosed
	case active != tab:
		return ErrStaleResponse
	case !needsFetch || inFlight:
		return nil
	}
	return l.fetch(ctx, tab)
}

// Refresh refetches tab if it is the active one.
func (l *DataLoader) Refresh(ctx context.Context, tab models.Tab) error {
	l.mu.RLock()
	closed, active := l.closed, l.active
	l.mu.RUnlock()

	if closed {
		return apperrors.ErrDashboardClosed
	}
	if active != tab {
		return nil
	}
	return l.fetch(ctx, tab)
}

func (l *DataLoader) fetch(ctx context.Context, tab models.Tab) error {
	l.mu.Lock()
	res := l.resources[tab]
	res.generation++
	gen, epoch := res.generation, l.epoch
	res.inFlightGen, res.inFlightEpoch = gen, epoch
	if !res.started {
		res.started = true
		res.loading = true
		res.loadingGen = gen
	}
	l.mu.Unlock()

	var (
		transactions []models.Transaction
		patterns     []models.Pattern
		err          error
	)
	switch tab {
	case models.TabMerchant:
		transactions, err = l.gateway.ListTransactions(ctx)
	case models.TabPattern:
		patterns, err = l.gateway.ListPatterns(ctx)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if res.loading && res.loadingGen == gen {
		res.loading = false
	}
	if res.inFlightGen == gen {
		res.inFlightGen = 0
	}

	if reason := l.staleReason(tab, gen, epoch); reason != "" {
		l.logger.LogStaleResponseDiscarded(ctx, tab, gen, reason)
		l.metrics.IncrementCounter(MetricStaleDiscarded, map[string]string{"tab": string(tab)})
		return ErrStaleResponse
	}

	if err != nil {
		res.needsFetch = true
		return err
	}

	res.needsFetch = false
	switch tab {
	case models.TabMerchant:
		l.transactions = withoutRemoved(transactions, res.removed, gen)
	case models.TabPattern:
		l.patterns = withoutRemoved(patterns, res.removed, gen)
	}
	l.recordCount(tab)
	return nil
}

// withoutRemoved filters out ids deleted while the fetch issued at gen was
// in flight and forgets removals that gen already reflects.
func withoutRemoved[T models.Record](items []T, removed map[models.RecordID]uint64, gen uint64) []T {
	if len(removed) == 0 {
		return nonNilSlice(items)
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if at, ok := removed[item.RecordKey()]; ok && at >= gen {
			continue
		}
		out = append(out, item)
	}
	for id, at := range removed {
		if at < gen {
			delete(removed, id)
		}
	}
	return out
}

// staleReason must be called with the lock held.
func (l *DataLoader) staleReason(tab models.Tab, gen, epoch uint64) string {
	switch {
	case l.closed:
		return "loader closed"
	case l.active != tab || l.epoch != epoch:
		return "tab changed"
	case l.resources[tab].generation != gen:
		return "superseded"
	}
	return ""
}

func (l *DataLoader) ActiveTab() models.Tab {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.active
}

// ReplaceTransactions installs items and invalidates any fetch in flight.
func (l *DataLoader) ReplaceTransactions(items []models.Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.transactions = nonNilSlice(items)
	l.invalidate(models.TabMerchant)
}

func (l *DataLoader) ReplacePatterns(items []models.Pattern) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.patterns = nonNilSlice(items)
	l.invalidate(models.TabPattern)
}

// RemoveTransaction drops id from the transaction collection. A fetch in
// flight still lands but without id.
func (l *DataLoader) RemoveTransaction(id models.RecordID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return false
	}
	res := l.resources[models.TabMerchant]
	res.removed[id] = res.generation
	if models.IndexOf(l.transactions, id) < 0 {
		return false
	}
	l.transactions = models.Without(l.transactions, id)
	l.recordCount(models.TabMerchant)
	return true
}

func (l *DataLoader) Clear(tab models.Tab) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	switch tab {
	case models.TabMerchant:
		l.transactions = []models.Transaction{}
	case models.TabPattern:
		l.patterns = []models.Pattern{}
	default:
		return
	}
	l.invalidate(tab)
}

// invalidate must be called with the lock held.
func (l *DataLoader) invalidate(tab models.Tab) {
	res := l.resources[tab]
	res.generation++
	res.started = true
	res.loading = false
	res.needsFetch = false
	l.recordCount(tab)
}

func (l *DataLoader) recordCount(tab models.Tab) {
	l.metrics.RecordGauge(MetricRecordCount, float64(l.countLocked(tab)), map[string]string{"tab": string(tab)})
}

func (l *DataLoader) Count(tab models.Tab) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.countLocked(tab)
}

func (l *DataLoader) countLocked(tab models.Tab) int {
	switch tab {
	case models.TabMerchant:
		return len(l.transactions)
	case models.TabPattern:
		return len(l.patterns)
	}
	return 0
}

// Loading is true only while the first merchant fetch is in flight.
func (l *DataLoader) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.resources[models.TabMerchant].loading
}

func (l *DataLoader) Snapshot() models.LoaderSnapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return models.LoaderSnapshot{
		ActiveTab:    l.active,
		Transactions: append(make([]models.Transaction, 0, len(l.transactions)), l.transactions...),
		Patterns:     append(make([]models.Pattern, 0, len(l.patterns)), l.patterns...),
		Loading:      l.resources[models.TabMerchant].loading,
	}
}

// Close discards both collections. Fetches still in flight settle as stale.
func (l *DataLoader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	l.transactions = []models.Transaction{}
	l.patterns = []models.Pattern{}
}

func nonNilSlice[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
