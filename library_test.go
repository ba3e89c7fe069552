package cairo

import (
	"errors"
	"testing"

	"github.com/gogpu/cairo/backend"
	"github.com/gogpu/cairo/backend/software"
	"github.com/gogpu/cairo/ffi"
)

func TestSetLibrary(t *testing.T) {
	orig := CurrentLibrary()
	t.Cleanup(func() { SetLibrary(orig) })

	lib := software.New()
	SetLibrary(lib)
	if CurrentLibrary() != ffi.Library(lib) {
		t.Error("CurrentLibrary() did not return the library set via SetLibrary")
	}

	SetLibrary(nil)
	if _, ok := CurrentLibrary().(*software.Library); !ok {
		t.Errorf("SetLibrary(nil) installed %T, want *software.Library", CurrentLibrary())
	}
	if CurrentLibrary() == ffi.Library(lib) {
		t.Error("SetLibrary(nil) kept the previous library")
	}
}

func TestUseBackend(t *testing.T) {
	orig := CurrentLibrary()
	t.Cleanup(func() { SetLibrary(orig) })

	if err := UseBackend(backend.BackendSoftware); err != nil {
		t.Fatalf("UseBackend(software) = %v", err)
	}
	if CurrentLibrary() == orig {
		t.Error("UseBackend did not install a new library")
	}

	err := UseBackend("nonexistent")
	if !errors.Is(err, backend.ErrBackendNotAvailable) {
		t.Errorf("UseBackend(nonexistent) = %v, want ErrBackendNotAvailable", err)
	}
}

func TestSurfaceKeepsItsLibrary(t *testing.T) {
	first := useSoftware(t)
	s, err := NewImageSurface(ffi.FormatARGB32, 1, 1)
	if err != nil {
		t.Fatal(err)
	}

	second := software.New()
	SetLibrary(second)
	if err := s.Flush(); err != nil {
		t.Errorf("Flush() after switching libraries = %v", err)
	}
	s.Close()

	assertNoLeaks(t, first)
	if st := second.Stats(); st.Destroys != 0 {
		t.Errorf("second library saw %d destroys, want 0", st.Destroys)
	}
}

func TestVersionGating(t *testing.T) {
	tests := []struct {
		version   string
		rectangle bool
		similar   bool
	}{
		{"1.8.10", false, false},
		{"1.10.0", true, false},
		{"1.12.0", true, true},
		{software.DefaultVersion, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			lib := useSoftware(t, software.WithVersion(tt.version))

			img, err := NewImageSurface(ffi.FormatARGB32, 4, 4)
			if err != nil {
				t.Fatal(err)
			}
			defer img.Close()

			checks := []struct {
				name string
				ok   bool
				call func() error
			}{
				{"CreateForRectangle", tt.rectangle, func() error {
					s, err := img.CreateForRectangle(0, 0, 1, 1)
					if err == nil {
						s.Close()
					}
					return err
				}},
				{"CreateSimilarImage", tt.similar, func() error {
					s, err := img.CreateSimilarImage(ffi.FormatA8, 1, 1)
					if err == nil {
						s.Close()
					}
					return err
				}},
				{"SupportsMimeType", tt.similar, func() error {
					_, err := img.SupportsMimeType("image/png")
					return err
				}},
			}
			for _, c := range checks {
				err := c.call()
				var fe *FeatureError
				switch {
				case c.ok && err != nil:
					t.Errorf("%s = %v, want success", c.name, err)
				case !c.ok && !errors.As(err, &fe):
					t.Errorf("%s = %v, want *FeatureError", c.name, err)
				case !c.ok && fe.Have != tt.version:
					t.Errorf("%s: FeatureError.Have = %q, want %q", c.name, fe.Have, tt.version)
				}
			}
			img.Close()
			assertNoLeaks(t, lib)
		})
	}
}

func TestVersionGatingBadVersion(t *testing.T) {
	lib := software.New(software.WithVersion("unknown"))
	var fe *FeatureError
	if err := requireVersion(lib, "test", ">= 1.0.0"); !errors.As(err, &fe) {
		t.Errorf("requireVersion with an unparsable version = %v, want *FeatureError", err)
	}
}
