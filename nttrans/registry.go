package nttrans

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// Discovery enumerates the available subcommand handlers at startup. How the
// handlers are found is the caller's concern; tests typically return a
// literal map.
type Discovery func() map[string]Handler

// Registry maps subcommand names to their handlers. It is populated once
// before any request is serviced and is read-only from then on; the lock
// only matters during setup.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry builds a registry from a discovery function. A nil discover
// yields an empty registry.
func NewRegistry(discover Discovery) *Registry {
	r := &Registry{handlers: make(map[string]Handler)}
	if discover == nil {
		return r
	}
	for name, h := range discover() {
		if h == nil {
			continue
		}
		r.handlers[name] = h
	}
	logrus.WithFields(logrus.Fields{
		"package":     "nttrans",
		"subcommands": r.Names(),
	}).Debug("subcommand registry populated")
	return r
}

// NewRegistryFromMap builds a registry directly from a name-to-handler map.
func NewRegistryFromMap(handlers map[string]Handler) *Registry {
	return NewRegistry(func() map[string]Handler { return handlers })
}

// Register adds a handler under the given name, replacing any previous one.
// It must only be called during startup, before requests are dispatched.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Lookup returns the handler registered under exactly the given name.
func (r *Registry) Lookup(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered subcommand names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
