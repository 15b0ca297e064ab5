package config

import "sync"

// Provider loads Settings on first use and serves the cached result afterwards.
// Sources are never re-read, so later changes to the env file or the process
// environment are not observed.
type Provider struct {
	opts []Option

	once     sync.Once
	settings Settings
	err      error
}

// NewProvider creates a Provider that passes opts to Load on first use
func NewProvider(opts ...Option) *Provider {
	return &Provider{opts: opts}
}

// Get returns the settings, loading them on the first call. Every call returns
// an independent copy of the same cached value, or the same cached error.
func (p *Provider) Get() (Settings, error) {
	p.once.Do(func() {
		p.settings, p.err = Load(p.opts...)
	})
	if p.err != nil {
		return Settings{}, p.err
	}
	return p.settings.clone(), nil
}
