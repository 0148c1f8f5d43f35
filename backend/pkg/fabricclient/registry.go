package fabricclient

import "sync"

// Contract is the ledger operation surface the request handlers depend
// on. *Client implements it; tests register fakes.
type Contract interface {
	SubmitTransaction(name string, args ...string) ([]byte, error)
	EvaluateTransaction(name string, args ...string) ([]byte, error)
}

// Registry maps each organization to its connection state: a live
// contract handle, or an explicit unavailable marker. It is populated
// once at boot and read on every request; CloseAll is the only teardown
// path.
type Registry struct {
	mu      sync.RWMutex
	handles map[string]Contract
}

func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]Contract)}
}

// Register records a live contract handle for the organization.
func (r *Registry) Register(org string, c Contract) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles[org] = c
}

// RegisterUnavailable records that the organization has no ledger
// connection and must be served from the fallback store.
func (r *Registry) RegisterUnavailable(org string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles[org] = nil
}

// Contract returns the organization's live handle, or false when the
// organization is unknown or unavailable.
func (r *Registry) Contract(org string) (Contract, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.handles[org]
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}

// Connected reports whether the organization currently has a live handle.
func (r *Registry) Connected(org string) bool {
	_, ok := r.Contract(org)
	return ok
}

// CloseAll disconnects every live handle. Each disconnect is independent
// of the others; the registry is unusable afterwards.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for org, c := range r.handles {
		if closer, ok := c.(interface{ Close() }); ok {
			closer.Close()
		}
		r.handles[org] = nil
	}
}
