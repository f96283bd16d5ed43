package store

import "sync"

// Provider hands out the process-wide store client, constructing it on
// first use. The build function runs at most once unless the client is
// replaced or closed.
type Provider struct {
	mu     sync.Mutex
	client Store
	build  func() (Store, error)
}

// NewProvider returns a provider that constructs the client with build on
// the first call to Get.
func NewProvider(build func() (Store, error)) *Provider {
	return &Provider{build: build}
}

// Get returns the shared client, constructing it on first call.
func (p *Provider) Get() (Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		return p.client, nil
	}
	c, err := p.build()
	if err != nil {
		return nil, err
	}
	p.client = c
	return c, nil
}

// Set replaces the shared client. This is a seam for test harnesses; the
// running service never calls it.
func (p *Provider) Set(s Store) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.client = s
}

// Close closes the client if one was constructed and forgets it, so a
// later Get would rebuild.
func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}
