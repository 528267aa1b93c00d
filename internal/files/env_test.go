package files

import (
	"path/filepath"
	"testing"
)

func TestResolveBasePath(t *testing.T) {
	home := t.TempDir()
	custom := filepath.Join(t.TempDir(), "custom-root")

	tests := []struct {
		name      string
		kamusHome string
		want      string
	}{
		{name: "absolute override", kamusHome: custom, want: custom},
		{name: "tilde override", kamusHome: "~/kamus-data", want: filepath.Join(home, "kamus-data")},
		{name: "blank override falls back", kamusHome: "  ", want: filepath.Join(home, DefaultDirName)},
		{name: "unset override", kamusHome: "", want: filepath.Join(home, DefaultDirName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", home)
			t.Setenv("KAMUS_HOME", tt.kamusHome)

			got, err := ResolveBasePath()
			if err != nil {
				t.Fatalf("ResolveBasePath() error = %v", err)
			}
			if got != tt.want {
				t.Fatalf("ResolveBasePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input string
		want  string
	}{
		{input: "data/ko_dict.json", want: "data/ko_dict.json"},
		{input: "/srv/ko_dict.json", want: "/srv/ko_dict.json"},
		{input: "~", want: home},
		{input: "~/dict/ko.json", want: filepath.Join(home, "dict", "ko.json")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
