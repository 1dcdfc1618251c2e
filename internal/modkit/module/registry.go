package module

import (
	"sort"
	"sync"
)

// process wide port registry, filled by api.Mount and read by main (SIGHUP reload)
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores the port set of the named module, replacing any earlier one
func Register(name string, ports any) {
	mu.Lock()
	defer mu.Unlock()
	reg[name] = ports
}

// PortsAs returns the port set registered under name as T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	defer mu.RUnlock()
	out, ok := reg[name].(T)
	return out, ok
}

// Names lists registered modules in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Reset empties the registry; tests call it between mounts
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	clear(reg)
}
