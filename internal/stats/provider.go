package stats

import (
	"sync"

	"github.com/jonathan/job-matcher/internal/types"
)

// Provider memoizes statistics bundles per catalog version. Bundles are
// immutable once published: recomputation builds a fresh bundle and replaces
// the cache entry atomically under the write lock, so readers always observe
// either the old or the new complete bundle, never a partial one.
type Provider struct {
	opts Options

	mu    sync.RWMutex
	cache map[string]*types.CorpusStatistics
}

// NewProvider returns a Provider that computes statistics with the given
// options.
func NewProvider(opts Options) *Provider {
	return &Provider{
		opts:  opts,
		cache: make(map[string]*types.CorpusStatistics),
	}
}

// Get returns the statistics bundle for the catalog, computing and caching
// it on first use of that catalog version.
func (p *Provider) Get(catalog *types.Catalog) *types.CorpusStatistics {
	version := ""
	if catalog != nil {
		version = catalog.Version
	}

	p.mu.RLock()
	cached, ok := p.cache[version]
	p.mu.RUnlock()
	if ok {
		return cached
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another writer may have filled the entry while we waited.
	if cached, ok := p.cache[version]; ok {
		return cached
	}

	computed := Compute(catalog, p.opts)
	p.cache[version] = computed
	return computed
}

// Invalidate drops the cached bundle for a catalog version. The next Get for
// that version recomputes from scratch; there is no partial refresh.
func (p *Provider) Invalidate(version string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.cache, version)
}
