package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 40, "height": 20, "seed": 7, "frame_rate": 100000000, "alive_char": "█"}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 20 || cfg.Seed != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.FrameRate != 100*time.Millisecond {
		t.Fatalf("frame rate %v, expected 100ms", cfg.FrameRate)
	}
	if cfg.AliveRune() != '█' || cfg.DeadRune() != ' ' {
		t.Fatalf("runes %q/%q", cfg.AliveRune(), cfg.DeadRune())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error %v, expected fs.ErrNotExist", err)
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	for name, body := range map[string]string{
		"malformed":       `{"width": `,
		"negative width":  `{"width": -1}`,
		"negative height": `{"height": -3}`,
		"negative rate":   `{"frame_rate": -5}`,
		"long alive char": `{"alive_char": "XX"}`,
		"empty dead char": `{"dead_char": ""}`,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, body)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
