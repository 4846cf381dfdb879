package main

import (
	"testing"
)

func TestLoadConfigUsesDefaults(t *testing.T) {
	t.Setenv("ENABLE_DB", "false")
	t.Setenv("PORT", "")
	t.Setenv("BATCH_CHUNK_SIZE", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.ChunkSize != 25000 {
		t.Fatalf("expected default chunk size 25000, got %d", cfg.ChunkSize)
	}
	if cfg.MaxUploadBytes != 5<<30 {
		t.Fatalf("expected default 5GiB upload ceiling, got %d", cfg.MaxUploadBytes)
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("ENABLE_DB", "true")
	t.Setenv("DATABASE_URL", "")
	if _, err := loadConfig(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadConfigRejectsBadChunkSize(t *testing.T) {
	t.Setenv("ENABLE_DB", "false")
	for _, bad := range []string{"zero", "-5", "0"} {
		t.Setenv("BATCH_CHUNK_SIZE", bad)
		if _, err := loadConfig(); err == nil {
			t.Errorf("BATCH_CHUNK_SIZE=%q: expected error", bad)
		}
	}
}

func TestLoadConfigCustomChunkSize(t *testing.T) {
	t.Setenv("ENABLE_DB", "false")
	t.Setenv("BATCH_CHUNK_SIZE", "1000")
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ChunkSize != 1000 {
		t.Fatalf("chunk size = %d, want 1000", cfg.ChunkSize)
	}
}
