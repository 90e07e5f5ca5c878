package audio

import (
	"io"
	"sync"
	"testing"
)

// stubDecoder carries an id so tests can tell instances apart; Decode
// is never reached through the registry tests.
type stubDecoder struct {
	id string
}

func (d *stubDecoder) Decode(r io.Reader) (Source, error) {
	return nil, nil
}

func TestRegistry_RoundTrip(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	dec := &stubDecoder{id: "wav"}
	reg.Register("wav", dec)

	got, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get() ok = false after Register")
	}
	if got != dec {
		t.Error("Get() returned a different decoder instance")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	for _, format := range []string{"wav", "mp3", "ogg", "aiff"} {
		reg.Register(format, &stubDecoder{id: format})
	}

	tests := []struct {
		format string
		wantOK bool
	}{
		{"wav", true},
		{"mp3", true},
		{"ogg", true},
		{"aiff", true},
		{"flac", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dec, ok := reg.Get(tt.format)
			if ok != tt.wantOK {
				t.Fatalf("Get(%q) ok = %v, want %v", tt.format, ok, tt.wantOK)
			}
			if ok && dec.(*stubDecoder).id != tt.format {
				t.Errorf("Get(%q) returned decoder %q", tt.format, dec.(*stubDecoder).id)
			}
		})
	}
}

func TestRegistry_EmptyLookup(t *testing.T) {
	t.Parallel()

	if _, ok := NewRegistry().Get("wav"); ok {
		t.Error("Get() ok = true on an empty registry")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	first := &stubDecoder{id: "first"}
	second := &stubDecoder{id: "second"}

	reg.Register("wav", first)
	reg.Register("wav", second)

	got, ok := reg.Get("wav")
	if !ok {
		t.Fatal("Get() ok = false after overwrite")
	}
	if got != second {
		t.Error("Get() did not return the most recent registration")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	dec := &stubDecoder{id: "race"}

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register("format", dec)
		}()
		go func() {
			defer wg.Done()
			_, _ = reg.Get("format")
		}()
	}
	wg.Wait()

	got, ok := reg.Get("format")
	if !ok || got != dec {
		t.Error("registry state wrong after concurrent access")
	}
}

// BenchmarkRegistry_Get benchmarks the lookup path.
func BenchmarkRegistry_Get(b *testing.B) {
	reg := NewRegistry()
	reg.Register("wav", &stubDecoder{})

	b.ReportAllocs()

	for b.Loop() {
		_, _ = reg.Get("wav")
	}
}
