// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package software

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/cairo/ffi"
)

func TestVersion(t *testing.T) {
	tests := []struct {
		version string
		want    int
	}{
		{"1.18.0", 11800},
		{"1.10.2", 11002},
		{"2.0", 20000},
		{"garbage", 0},
	}
	for _, tt := range tests {
		lib := New(WithVersion(tt.version))
		if got := lib.Version(); got != tt.want {
			t.Errorf("Version(%q) = %d, want %d", tt.version, got, tt.want)
		}
		if got := lib.VersionString(); got != tt.version {
			t.Errorf("VersionString() = %q, want %q", got, tt.version)
		}
	}
}

func TestReferenceCounting(t *testing.T) {
	lib := New()
	s := lib.ImageSurfaceCreate(ffi.FormatARGB32, 1, 1)

	if lib.SurfaceReference(s) != s {
		t.Fatal("SurfaceReference returned another handle")
	}
	lib.SurfaceDestroy(s)
	if status := lib.SurfaceStatus(s); status != ffi.StatusSuccess {
		t.Fatalf("surface gone after one of two destroys: %v", status)
	}
	lib.SurfaceDestroy(s)

	st := lib.Stats()
	if st.Live != 0 || st.References != 1 || st.Destroys != 2 || st.InvalidDestroys != 0 {
		t.Errorf("Stats() = %+v", st)
	}
	if status := lib.SurfaceStatus(s); status != ffi.StatusNullPointer {
		t.Errorf("status of a destroyed surface = %v, want NULL_POINTER", status)
	}
}

func TestInvalidDestroyIsCountedAndLogged(t *testing.T) {
	var buf bytes.Buffer
	lib := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	p := lib.PatternCreateRGBA(0, 0, 0, 1)
	lib.PatternDestroy(p)
	lib.PatternDestroy(p)

	if got := lib.Stats().InvalidDestroys; got != 1 {
		t.Errorf("InvalidDestroys = %d, want 1", got)
	}
	if !strings.Contains(buf.String(), "destroy of unknown handle") {
		t.Errorf("missing warning, got: %s", buf.String())
	}
}

func TestHandlesOfOtherKind(t *testing.T) {
	lib := New()
	p := lib.PatternCreateRGBA(0, 0, 0, 1)
	defer lib.PatternDestroy(p)

	if status := lib.SurfaceStatus(ffi.Surface(p)); status != ffi.StatusNullPointer {
		t.Errorf("SurfaceStatus(pattern handle) = %v, want NULL_POINTER", status)
	}
}

// recorder collects destroy callbacks.
type recorder struct {
	mu    sync.Mutex
	calls []ffi.Closure
}

func (r *recorder) destroy(data ffi.Closure) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, data)
}

func (r *recorder) got() []ffi.Closure {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ffi.Closure(nil), r.calls...)
}

func TestUserDataDestructors(t *testing.T) {
	lib := New()
	rec := &recorder{}
	key1, key2 := new(ffi.UserDataKey), new(ffi.UserDataKey)

	s := lib.ImageSurfaceCreate(ffi.FormatA8, 1, 1)
	if status := lib.SurfaceSetUserData(s, key1, 1, rec.destroy); status != ffi.StatusSuccess {
		t.Fatal(status)
	}
	lib.SurfaceSetUserData(s, key2, 2, rec.destroy)

	// Replacing a slot releases the previous data.
	lib.SurfaceSetUserData(s, key1, 3, rec.destroy)
	lib.Drain()
	if got := rec.got(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("after replace: destroyed %v, want [1]", got)
	}

	// Clearing a slot releases it too.
	lib.SurfaceSetUserData(s, key2, 0, nil)
	lib.Drain()
	if got := rec.got(); len(got) != 2 || got[1] != 2 {
		t.Fatalf("after clear: destroyed %v, want [1 2]", got)
	}

	lib.SurfaceDestroy(s)
	lib.Drain()
	if got := rec.got(); len(got) != 3 || got[2] != 3 {
		t.Errorf("after destroy: destroyed %v, want [1 2 3]", got)
	}

	if status := lib.SurfaceSetUserData(s, key1, 4, rec.destroy); status != ffi.StatusNullPointer {
		t.Errorf("SetUserData on a destroyed surface = %v, want NULL_POINTER", status)
	}
	if status := lib.SurfaceSetUserData(lib.ImageSurfaceCreate(ffi.FormatA8, 1, 1), nil, 4, rec.destroy); status != ffi.StatusNullPointer {
		t.Errorf("SetUserData with a nil key = %v, want NULL_POINTER", status)
	}
}

func TestDestructorsRunAfterLastReference(t *testing.T) {
	lib := New(WithSyncDestructors())
	rec := &recorder{}

	s := lib.ImageSurfaceCreate(ffi.FormatA8, 1, 1)
	lib.SurfaceSetUserData(s, new(ffi.UserDataKey), 9, rec.destroy)
	lib.SurfaceReference(s)

	lib.SurfaceDestroy(s)
	if got := rec.got(); len(got) != 0 {
		t.Fatalf("destroyed %v while a reference remains", got)
	}
	lib.SurfaceDestroy(s)
	if got := rec.got(); len(got) != 1 || got[0] != 9 {
		t.Errorf("destroyed %v, want [9]", got)
	}
}

func TestErrorObjectsNeedDestroy(t *testing.T) {
	lib := New()
	s := lib.ImageSurfaceCreate(ffi.FormatInvalid, 1, 1)
	if s == ffi.NullSurface {
		t.Fatal("error surface is null")
	}
	if status := lib.SurfaceStatus(s); status != ffi.StatusInvalidFormat {
		t.Errorf("status = %v, want INVALID_FORMAT", status)
	}

	// Error objects ignore mutation and keep their first status.
	lib.SurfaceMarkDirtyRectangle(s, 0, 0, -1, -1)
	if status := lib.SurfaceStatus(s); status != ffi.StatusInvalidFormat {
		t.Errorf("status after mutation = %v, want INVALID_FORMAT", status)
	}

	if lib.Stats().Live != 1 {
		t.Errorf("Live = %d, want 1", lib.Stats().Live)
	}
	lib.SurfaceDestroy(s)
	if lib.Stats().Live != 0 {
		t.Errorf("Live = %d after destroy, want 0", lib.Stats().Live)
	}
}

func TestConcurrentReferences(t *testing.T) {
	lib := New()
	s := lib.ImageSurfaceCreate(ffi.FormatARGB32, 1, 1)

	var wg sync.WaitGroup
	for range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lib.SurfaceDestroy(lib.SurfaceReference(s))
		}()
	}
	wg.Wait()

	if status := lib.SurfaceStatus(s); status != ffi.StatusSuccess {
		t.Errorf("status = %v, want SUCCESS", status)
	}
	lib.SurfaceDestroy(s)
	if st := lib.Stats(); st.Live != 0 || st.InvalidDestroys != 0 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestRacingDestroysReleaseOnce(t *testing.T) {
	lib := New(WithSyncDestructors(), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	rec := &recorder{}

	const (
		trials     = 100
		goroutines = 8
	)
	for i := range trials {
		var (
			mu  sync.Mutex
			out bytes.Buffer
		)
		write := func(_ ffi.Closure, data []byte) ffi.Status {
			mu.Lock()
			defer mu.Unlock()
			out.Write(data)
			return ffi.StatusSuccess
		}
		s := lib.PDFSurfaceCreateForStream(write, 0, 10, 10)
		lib.SurfaceSetUserData(s, new(ffi.UserDataKey), ffi.Closure(i+1), rec.destroy)

		var wg sync.WaitGroup
		for range goroutines {
			wg.Add(1)
			go func() {
				defer wg.Done()
				lib.SurfaceDestroy(s)
			}()
		}
		wg.Wait()

		mu.Lock()
		if n := bytes.Count(out.Bytes(), []byte("%%EOF")); n != 1 {
			t.Fatalf("trial %d: document written %d times, want 1", i, n)
		}
		mu.Unlock()
	}

	if got := len(rec.got()); got != trials {
		t.Errorf("%d destructor calls, want %d", got, trials)
	}
	st := lib.Stats()
	if st.Live != 0 || st.Destroys != trials || st.InvalidDestroys != trials*(goroutines-1) {
		t.Errorf("Stats() = %+v, want %d destroys and %d invalid", st, trials, trials*(goroutines-1))
	}
}
