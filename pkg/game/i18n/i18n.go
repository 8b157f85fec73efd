// Package i18n resolves message keys used by the renderers and the command
// line. The default catalogue is embedded; Load replaces it.
package i18n

import (
	_ "embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en_GB.po
var defaultCatalogue []byte

var (
	mu      sync.RWMutex
	current *gotext.Po
)

func init() {
	Load(defaultCatalogue)
}

// Load replaces the active catalogue with the given PO file contents
func Load(data []byte) {
	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	current = po
	mu.Unlock()
}

// Reset restores the embedded catalogue
func Reset() {
	Load(defaultCatalogue)
}

// Get returns the translation for key formatted with args.
// Unknown keys come back unchanged.
func Get(key string, args ...any) string {
	mu.RLock()
	po := current
	mu.RUnlock()
	return po.Get(key, args...)
}
