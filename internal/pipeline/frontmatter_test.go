package pipeline

import (
	"errors"
	"slices"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		want     FrontMatter
		wantBody string
		wantErr  error
	}{
		{
			name:     "no front matter",
			input:    "# Title\nBody\n",
			wantBody: "# Title\nBody\n",
		},
		{
			name: "yaml block",
			input: "---\ntitle: Writeup\nauthor: Jane Doe\nsubject: Alerts\n" +
				"description: Notes\nkeywords: [audio, alerts]\n---\n# Title\n",
			want: FrontMatter{
				Title:       "Writeup",
				Author:      "Jane Doe",
				Subject:     "Alerts",
				Description: "Notes",
				Keywords:    KeywordList{"audio", "alerts"},
			},
			wantBody: "# Title\n",
		},
		{
			name:     "comma separated keywords",
			input:    "---\nkeywords: audio, alerts ,\n---\nBody\n",
			want:     FrontMatter{Keywords: KeywordList{"audio", "alerts"}},
			wantBody: "Body\n",
		},
		{
			name:     "unknown keys ignored",
			input:    "---\ntitle: T\nlayout: post\n---\nBody\n",
			want:     FrontMatter{Title: "T"},
			wantBody: "Body\n",
		},
		{
			name:     "empty block",
			input:    "---\n---\nBody\n",
			wantBody: "Body\n",
		},
		{
			name:     "toml block",
			input:    "+++\ntitle = \"Writeup\"\nkeywords = [\"audio\"]\n+++\nBody\n",
			want:     FrontMatter{Title: "Writeup", Keywords: KeywordList{"audio"}},
			wantBody: "Body\n",
		},
		{
			name:    "malformed yaml",
			input:   "---\ntitle: [unclosed\n---\nBody\n",
			wantErr: ErrFrontMatter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fm, body, err := ParseFrontMatter(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseFrontMatter() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFrontMatter() error = %v", err)
			}
			if fm.Title != tt.want.Title || fm.Author != tt.want.Author ||
				fm.Subject != tt.want.Subject || fm.Description != tt.want.Description {
				t.Errorf("front matter = %+v, want %+v", fm, tt.want)
			}
			if !slices.Equal(fm.Keywords, tt.want.Keywords) {
				t.Errorf("keywords = %v, want %v", fm.Keywords, tt.want.Keywords)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestFrontMatter_IsZero(t *testing.T) {
	t.Parallel()

	if !(FrontMatter{}).IsZero() {
		t.Error("zero FrontMatter.IsZero() = false")
	}
	if (FrontMatter{Keywords: KeywordList{"a"}}).IsZero() {
		t.Error("FrontMatter with keywords IsZero() = true")
	}
}

func TestSplitKeywords(t *testing.T) {
	t.Parallel()

	got := SplitKeywords(" a, b ,, c ")
	if !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("SplitKeywords() = %v", got)
	}
	if got := SplitKeywords(""); len(got) != 0 {
		t.Errorf("SplitKeywords(\"\") = %v, want empty", got)
	}
}
