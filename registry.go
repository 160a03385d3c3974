package codable

import (
	"reflect"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// registrySize bounds how many processors Use keeps.
const registrySize = 256

// registryKey combines type and format for cache lookup.
type registryKey struct {
	typ         reflect.Type
	contentType string
}

var (
	registry   = newRegistry()
	registryMu sync.Mutex
)

func newRegistry() *lru.Cache[registryKey, any] {
	cache, err := lru.New[registryKey, any](registrySize)
	if err != nil {
		panic(err)
	}
	return cache
}

// Use returns a cached processor or builds a new one.
// The processor is cached by type and format content type, so options
// other than the format only take effect on the first call.
func Use[T any, PT CodablePtr[T]](format Format, opts ...ProcessorOption) *Processor[T, PT] {
	key := registryKey{typ: reflect.TypeFor[T](), contentType: format.ContentType()}

	registryMu.Lock()
	defer registryMu.Unlock()

	if cached, ok := registry.Get(key); ok {
		return cached.(*Processor[T, PT])
	}

	opts = append(opts[:len(opts):len(opts)], WithFormat(format))
	processor := NewProcessor[T, PT](opts...)
	registry.Add(key, processor)
	return processor
}

// Reset clears the processor registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry.Purge()
}
