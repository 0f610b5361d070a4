package recording

import "fmt"

// mockBackend is a Backend that logs every call as a string.
type mockBackend struct {
	name          string
	calls         []string
	width, height int
	beginErr      error
	endErr        error
}

func newMockBackend(name string) *mockBackend {
	return &mockBackend{name: name}
}

func (b *mockBackend) logf(format string, args ...any) {
	b.calls = append(b.calls, fmt.Sprintf(format, args...))
}

func (b *mockBackend) Begin(width, height int) error {
	b.width, b.height = width, height
	b.logf("Begin(%d,%d)", width, height)
	return b.beginErr
}

func (b *mockBackend) End() error {
	b.logf("End")
	return b.endErr
}

func (b *mockBackend) BeginPath()          { b.logf("BeginPath") }
func (b *mockBackend) MoveTo(x, y float64) { b.logf("MoveTo(%g,%g)", x, y) }
func (b *mockBackend) LineTo(x, y float64) { b.logf("LineTo(%g,%g)", x, y) }
func (b *mockBackend) ClosePath()          { b.logf("ClosePath") }
func (b *mockBackend) Stroke()             { b.logf("Stroke") }

func (b *mockBackend) Arc(x, y, r, start, end float64, ccw bool) {
	b.logf("Arc(%g,%g,%g,%g,%g,%t)", x, y, r, start, end, ccw)
}

func (b *mockBackend) StrokeRect(x, y, w, h float64) {
	b.logf("StrokeRect(%g,%g,%g,%g)", x, y, w, h)
}

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
}
