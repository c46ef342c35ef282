package providers

import (
	"fmt"
	"sync"
)

var (
	registry   = make(map[string]Provider)
	registryMu sync.RWMutex
)

// Register adds a provider implementation under its Name().
// Registering the same name twice is an error.
func Register(provider Provider) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	name := provider.Name()
	if name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}
	if _, exists := registry[name]; exists {
		return fmt.Errorf("provider already registered for name %q", name)
	}
	registry[name] = provider
	return nil
}

// Get retrieves a provider by name or returns an error if not found.
func Get(name string) (Provider, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	provider, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("no provider registered for name %q", name)
	}
	return provider, nil
}

// Names returns the names of all registered providers.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
