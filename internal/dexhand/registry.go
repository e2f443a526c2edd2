package dexhand

import (
	"fmt"
	"sync"

	"github.com/banshee-data/dexhand/internal/piper"
)

// DeviceFactory opens the hardware transports for one controller. Injected
// at startup; tests and dev mode supply loopback devices.
type DeviceFactory func(cfg Config) (Devices, error)

// Registry owns every controller in the process, keyed by id, preserving
// creation order for listing. Safe for concurrent use. The registry lock
// guards only the map and ordering, never a device operation, so a slow
// handshake on one controller cannot stall lookups of another.
type Registry struct {
	factory   DeviceFactory
	handshake piper.HandshakeConfig

	mu    sync.RWMutex
	byID  map[string]*Controller
	order []string
}

// NewRegistry builds an empty registry around the given device factory.
func NewRegistry(factory DeviceFactory) *Registry {
	return &Registry{
		factory: factory,
		byID:    make(map[string]*Controller),
	}
}

// SetHandshake sets the handshake tuning applied to controllers created
// without their own. Call before serving; not synchronized with Create.
func (r *Registry) SetHandshake(h piper.HandshakeConfig) {
	r.handshake = h
}

// Create builds a controller for cfg, opens its devices through the
// factory, and registers it. Nothing is registered on failure.
func (r *Registry) Create(cfg Config) (*Controller, error) {
	if cfg.Handshake == (piper.HandshakeConfig{}) {
		cfg.Handshake = r.handshake
	}
	dev, err := r.factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("open devices: %w", err)
	}
	ctrl, err := NewController(cfg, dev)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[ctrl.ID()] = ctrl
	r.order = append(r.order, ctrl.ID())
	return ctrl, nil
}

// Get returns the controller with the given id.
func (r *Registry) Get(id string) (*Controller, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ctrl, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return ctrl, nil
}

// List returns all controllers in creation order.
func (r *Registry) List() []*Controller {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Controller, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// Delete removes a controller from the registry, disconnecting it first if
// it is still attached to its devices. Removal proceeds even if the
// disconnect fails; the error is reported so callers can log it.
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	ctrl, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	if ctrl.State() != StateCreated {
		return ctrl.Disconnect()
	}
	return nil
}

// Len returns the number of registered controllers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
