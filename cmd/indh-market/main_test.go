package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/diewo77/indh-market/internal/config"
	"github.com/diewo77/indh-market/internal/settings"
)

func TestVersionCommand(t *testing.T) {
	cmd := versionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out.String()) != version {
		t.Fatalf("got %q", out.String())
	}
}

func TestSettingsKVDefaultsToFiles(t *testing.T) {
	kv, err := settingsKV(context.Background(), config.SettingsConfig{Dir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := kv.(*settings.FileKV); !ok {
		t.Fatalf("expected FileKV, got %T", kv)
	}
}

func TestSettingsKVBadRedisURL(t *testing.T) {
	if _, err := settingsKV(context.Background(), config.SettingsConfig{RedisURL: "::not a url"}); err == nil {
		t.Fatal("expected error")
	}
}
