package pattern

import (
	"sync"

	"simpledate/locale"
)

// cacheMax bounds the compiled-template cache. When an insert would exceed
// it, the whole cache is dropped instead of evicting single entries, keeping
// the critical section O(1).
const cacheMax = 100

// Compiler compiles patterns against one locale table and caches the
// results by pattern text. Concurrent callers observe a single compiled
// template per distinct pattern. The zero value is not usable; use
// NewCompiler.
type Compiler struct {
	tab *locale.Table

	mu    sync.Mutex
	cache map[string]*Template
}

// NewCompiler returns a caching compiler for the given table. A nil table
// uses the English defaults.
func NewCompiler(tab *locale.Table) *Compiler {
	if tab == nil {
		tab = locale.English
	}
	return &Compiler{tab: tab, cache: make(map[string]*Template)}
}

// Default compiles against the English locale table.
var Default = NewCompiler(locale.English)

// Compile returns the cached template for patternText, compiling it on the
// first use. Compilation errors are not cached.
func (c *Compiler) Compile(patternText string) (*Template, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.cache[patternText]; ok {
		return t, nil
	}
	t, err := Compile(patternText, c.tab)
	if err != nil {
		return nil, err
	}
	if len(c.cache) >= cacheMax {
		c.cache = make(map[string]*Template)
	}
	c.cache[patternText] = t
	return t, nil
}
