package yamlutil_test

// Notes:
// - Marshal error branches are not tested: go-yaml only fails on
//   unmarshalable types (channels, functions), which no caller passes.
// - TestInputSizeLimit mutates the package-level MaxInputSize and does not
//   run in parallel.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2docx/internal/yamlutil"
)

type pageSettings struct {
	Size   string  `yaml:"size"`
	Margin float64 `yaml:"margin"`
}

type settings struct {
	Style    string       `yaml:"style"`
	Page     pageSettings `yaml:"page"`
	Keywords []string     `yaml:"keywords"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, s *settings)
	}{
		{
			name: "nested values",
			data: []byte("style: technical\npage:\n  size: a4\n  margin: 1.5\n"),
			dest: &settings{},
			check: func(t *testing.T, s *settings) {
				if s.Style != "technical" {
					t.Errorf("Style = %q, want %q", s.Style, "technical")
				}
				if s.Page.Size != "a4" || s.Page.Margin != 1.5 {
					t.Errorf("Page = %+v", s.Page)
				}
			},
		},
		{
			name: "unknown fields ignored",
			data: []byte("style: default\nunknown: value\n"),
			dest: &settings{},
			check: func(t *testing.T, s *settings) {
				if s.Style != "default" {
					t.Errorf("Style = %q, want %q", s.Style, "default")
				}
			},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &settings{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("style: default"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			tt.check(t, tt.dest.(*settings))
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Unknown fields rejected
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields succeed", func(t *testing.T) {
		t.Parallel()

		var s settings
		if err := yamlutil.UnmarshalStrict([]byte("style: default\nkeywords: [a, b]\n"), &s); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if len(s.Keywords) != 2 {
			t.Errorf("Keywords = %v, want 2 items", s.Keywords)
		}
	})

	t.Run("unknown field fails", func(t *testing.T) {
		t.Parallel()

		var s settings
		err := yamlutil.UnmarshalStrict([]byte("style: default\nstlye: typo\n"), &s)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.HasPrefix(err.Error(), "yamlutil:") {
			t.Errorf("error = %q, want prefix 'yamlutil:'", err)
		}
		if !strings.Contains(err.Error(), "stlye") {
			t.Errorf("error should name the unknown field, got: %s", err)
		}
	})

	t.Run("syntax error fails", func(t *testing.T) {
		t.Parallel()

		var s settings
		if err := yamlutil.UnmarshalStrict([]byte("keywords: [unclosed"), &s); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

// ---------------------------------------------------------------------------
// TestMarshal - Encoding
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Marshal(&settings{Style: "default", Page: pageSettings{Size: "letter", Margin: 1}})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(data)
	for _, want := range []string{"style: default", "size: letter", "margin: 1"} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q, got: %s", want, s)
		}
	}
}

func TestMarshalIndent(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.MarshalIndent(&settings{
		Style:    "technical",
		Page:     pageSettings{Size: "a4", Margin: 0.75},
		Keywords: []string{"alerts", "audio"},
	})
	if err != nil {
		t.Fatalf("MarshalIndent() error = %v", err)
	}
	s := string(data)
	if !strings.Contains(s, "\n  size: a4") {
		t.Errorf("nested mapping not indented by two spaces, got: %s", s)
	}
	if !strings.Contains(s, "\n  - alerts") {
		t.Errorf("sequence not indented, got: %s", s)
	}

	var back settings
	if err := yamlutil.UnmarshalStrict(data, &back); err != nil {
		t.Fatalf("UnmarshalStrict() of indented output error = %v", err)
	}
	if back.Page.Margin != 0.75 || len(back.Keywords) != 2 {
		t.Errorf("decoded = %+v", back)
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - MaxInputSize enforcement
// ---------------------------------------------------------------------------

func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 100

	t.Run("input at limit succeeds", func(t *testing.T) {
		data := make([]byte, 100)
		copy(data, []byte("style: x"))
		var s settings
		if err := yamlutil.Unmarshal(data, &s); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("input exceeding limit fails", func(t *testing.T) {
		data := make([]byte, 101)
		var s settings
		err := yamlutil.UnmarshalStrict(data, &s)
		if !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
		}
		if err != nil && !strings.Contains(err.Error(), "101 bytes") {
			t.Errorf("error should contain actual size, got: %s", err)
		}
	})
}
