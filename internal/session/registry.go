package session

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Registry keeps one View per operator. Views idle longer than
// Options.IdleTTL are dropped, and when Options.MaxViews is reached the
// least recently used view makes room for a new operator.
type Registry struct {
	mu      sync.Mutex
	views   map[string]*registryEntry
	loader  Loader
	options Options
}

type registryEntry struct {
	view     *View
	lastUsed time.Time
}

func NewRegistry(loader Loader, opts Options) *Registry {
	return &Registry{views: make(map[string]*registryEntry), loader: loader, options: opts}
}

func (r *Registry) Get(key string) *View {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.evictIdleLocked(now)
	if e, ok := r.views[key]; ok {
		e.lastUsed = now
		return e.view
	}
	if max := r.options.MaxViews; max > 0 && len(r.views) >= max {
		r.evictOldestLocked()
	}
	v := NewView(r.loader, r.options)
	r.views[key] = &registryEntry{view: v, lastUsed: now}
	return v
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

func (r *Registry) now() time.Time {
	if r.options.Now != nil {
		return r.options.Now()
	}
	return time.Now()
}

func (r *Registry) evictIdleLocked(now time.Time) {
	ttl := r.options.IdleTTL
	if ttl <= 0 {
		return
	}
	for key, e := range r.views {
		if now.Sub(e.lastUsed) > ttl {
			delete(r.views, key)
			r.logEviction(key, "idle")
		}
	}
}

func (r *Registry) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for key, e := range r.views {
		if oldestKey == "" || e.lastUsed.Before(oldest) {
			oldestKey, oldest = key, e.lastUsed
		}
	}
	if oldestKey != "" {
		delete(r.views, oldestKey)
		r.logEviction(oldestKey, "capacity")
	}
}

func (r *Registry) logEviction(key, reason string) {
	if r.options.Logger != nil {
		r.options.Logger.Debug("report view evicted", zap.String("operator", key), zap.String("reason", reason))
	}
}
