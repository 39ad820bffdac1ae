package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() err=%v", err)
	}
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should be valid, got %v", err)
	}
	if cfg.DataFile != "tasks.json" {
		t.Errorf("DataFile = %q, want tasks.json", cfg.DataFile)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr bool
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    New(),
		},
		{
			name:    "overrides",
			content: "data_file: /tmp/todo/tasks.json\nprompt: \"> \"\nlog_level: debug\nno_color: true\n",
			want:    Config{DataFile: "/tmp/todo/tasks.json", Prompt: "> ", LogLevel: "debug", NoColor: true},
		},
		{
			name:    "partial override",
			content: "no_color: true\n",
			want:    Config{DataFile: "tasks.json", Prompt: "todo> ", LogLevel: "error", NoColor: true},
		},
		{name: "unknown key", content: "colour: false\n", wantErr: true},
		{name: "bad log level", content: "log_level: chatty\n", wantErr: true},
		{name: "blank data file", content: "data_file: \"  \"\n", wantErr: true},
		{name: "not yaml", content: "data_file: [unterminated\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeConfig(t, tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Load() err=nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() err=%v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() err=nil for missing file")
	}
}
