package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sanpater/pyrogram/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
telegram:
  api_id: 12345
  api_hash: deadbeef
  phone: "+15550100"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Telegram.APIID != 12345 {
		t.Errorf("Telegram.APIID = %d, want 12345", cfg.Telegram.APIID)
	}
	if cfg.Telegram.SessionPath != "session.json" {
		t.Errorf("Telegram.SessionPath = %q, want default", cfg.Telegram.SessionPath)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("Logger.Level = %q, want info", cfg.Logger.Level)
	}
	if cfg.Database.Path != "storage.db" {
		t.Errorf("Database.Path = %q, want default", cfg.Database.Path)
	}
	if cfg.Cache.MaxEntries != 10000 {
		t.Errorf("Cache.MaxEntries = %d, want 10000", cfg.Cache.MaxEntries)
	}
	if cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
	}
	if cfg.Decoder.ReplyDepth != 1 {
		t.Errorf("Decoder.ReplyDepth = %d, want 1", cfg.Decoder.ReplyDepth)
	}
	if _, ok := cfg.Scheduler.Tasks["sql_maintenance"]; !ok {
		t.Error("Scheduler.Tasks missing default sql_maintenance entry")
	}
	if _, ok := cfg.Scheduler.Tasks["cache_prune"]; !ok {
		t.Error("Scheduler.Tasks missing default cache_prune entry")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
logger:
  level: debug
  json: true
telegram:
  api_id: 777
  api_hash: cafe
  session_path: /tmp/alt.session
cache:
  max_entries: 50
  ttl: 1h
decoder:
  reply_depth: 3
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logger.Level != "debug" || !cfg.Logger.JSON {
		t.Errorf("Logger = %+v, want debug/json", cfg.Logger)
	}
	if cfg.Telegram.SessionPath != "/tmp/alt.session" {
		t.Errorf("Telegram.SessionPath = %q", cfg.Telegram.SessionPath)
	}
	if cfg.Cache.MaxEntries != 50 || cfg.Cache.TTL != time.Hour {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Decoder.ReplyDepth != 3 {
		t.Errorf("Decoder.ReplyDepth = %d, want 3", cfg.Decoder.ReplyDepth)
	}
}

func TestLoadRejectsMissingCredentials(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
database:
  path: archive.db
`)

	if _, err := config.Load(path); !errors.Is(err, config.ErrConfiguration) {
		t.Fatalf("Load() error = %v, want ErrConfiguration", err)
	}
}

func TestLoadRejectsInvalidReplyDepth(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
telegram:
  api_id: 12345
  api_hash: deadbeef
decoder:
  reply_depth: 99
`)

	if _, err := config.Load(path); !errors.Is(err, config.ErrConfiguration) {
		t.Fatalf("Load() error = %v, want ErrConfiguration", err)
	}
}
