package recording

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/sketch"
)

func withRegistry(t *testing.T, names ...string) {
	t.Helper()
	resetRegistry()
	t.Cleanup(resetRegistry)
	for _, name := range names {
		Register(name, func() Backend { return newMockBackend(name) })
	}
}

func TestRegistryPlayback(t *testing.T) {
	withRegistry(t, "mock")

	rec := NewRecorder(20, 10)
	_ = sketch.Draw(rec, sketch.NewSegment(sketch.Pt(1, 1), sketch.Pt(9, 9)))

	b, err := NewBackend("mock")
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	mock := b.(*mockBackend)
	if mock.name != "mock" || mock.width != 20 || mock.height != 10 {
		t.Errorf("got %q %dx%d, want mock 20x10", mock.name, mock.width, mock.height)
	}
	if len(mock.calls) != 6 {
		t.Errorf("calls = %v, want Begin, four path calls and End", mock.calls)
	}
}

func TestNewBackendUnknown(t *testing.T) {
	withRegistry(t)

	_, err := NewBackend("svg")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("NewBackend(svg) error = %v, want ErrUnknownBackend", err)
	}
	if !strings.Contains(err.Error(), `"svg" (forgotten import?)`) {
		t.Errorf("error %q should name the backend and hint at a missing import", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustBackend(svg) should panic")
		}
	}()
	MustBackend("svg")
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name    string
		factory BackendFactory
	}{
		{"nil factory", nil},
		{"duplicate", func() Backend { return newMockBackend("taken") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withRegistry(t, "taken")

			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			Register("taken", tt.factory)
		})
	}
}

func TestRegistryNames(t *testing.T) {
	withRegistry(t, "raster", "display", "ebiten")

	if got, want := Backends(), []string{"display", "ebiten", "raster"}; !slices.Equal(got, want) {
		t.Errorf("Backends() = %v, want %v", got, want)
	}
	if Count() != 3 || !IsRegistered("display") {
		t.Errorf("Count() = %d, IsRegistered(display) = %v", Count(), IsRegistered("display"))
	}

	Unregister("display")
	Unregister("display")
	if Count() != 2 || IsRegistered("display") {
		t.Errorf("after Unregister: Count() = %d, IsRegistered(display) = %v", Count(), IsRegistered("display"))
	}
}

func TestFactoryReturnsFreshInstances(t *testing.T) {
	withRegistry(t, "fresh")

	if MustBackend("fresh") == MustBackend("fresh") {
		t.Error("each NewBackend call should return a new instance")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	withRegistry(t)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("backend-%d", i)
			Register(name, func() Backend { return newMockBackend(name) })
			_, _ = NewBackend(name)
		}()
		go func() {
			defer wg.Done()
			_ = Backends()
			_ = IsRegistered("backend-0")
		}()
	}
	wg.Wait()

	if Count() != 8 {
		t.Errorf("Count() = %d, want 8", Count())
	}
}
