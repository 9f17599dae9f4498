package theme

// Engine caches the inputs of the active style and recomputes it only when
// they change. The frame loop calls Update once per frame.
//
// Engine is NOT safe for concurrent use.
type Engine struct {
	sel    Selector
	accent [3]float64
	style  Style
	swaps  int
}

// NewEngine creates an engine with the style for (sel, accent) active.
func NewEngine(sel Selector, accent [3]float64) *Engine {
	return &Engine{
		sel:    sel,
		accent: accent,
		style:  For(sel, accent),
	}
}

// Update compares (sel, accent) against the cached inputs. On any difference
// it derives a new style, replaces the active one, updates the cache, and
// returns true. Accent channels are compared exactly.
func (e *Engine) Update(sel Selector, accent [3]float64) bool {
	if sel == e.sel && accent == e.accent {
		return false
	}
	e.sel = sel
	e.accent = accent
	e.style = For(sel, accent)
	e.swaps++
	return true
}

// Style returns the active style.
func (e *Engine) Style() Style {
	return e.style
}

// Selector returns the cached theme selector.
func (e *Engine) Selector() Selector {
	return e.sel
}

// Swaps returns how many times Update replaced the active style.
func (e *Engine) Swaps() int {
	return e.swaps
}
