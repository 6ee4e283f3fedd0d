package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iwvelando/debt-capacity/pkg/constants"
)

func writeServerConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server-config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv(constants.EnvPrefix+"_ADDRESS", "")
	t.Setenv(constants.EnvPrefix+"_REDIS_ADDRESS", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
		t.Fatalf("expected default max upload size, got %d", cfg.UploadSizeBytes())
	}
	if cfg.Logging.Level != "" || cfg.Logging.Format != "" || cfg.Logging.OutputFile != "" {
		t.Fatalf("expected empty logging defaults, got %+v", cfg.Logging)
	}
	if cfg.Cache.Backend != constants.CacheBackendNone {
		t.Fatalf("expected cache backend none, got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTLDuration() != 15*time.Minute {
		t.Fatalf("expected default ttl of 15m, got %v", cfg.Cache.TTLDuration())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv(constants.EnvPrefix+"_ADDRESS", "")
	t.Setenv(constants.EnvPrefix+"_REDIS_ADDRESS", "")

	path := writeServerConfig(t, `address: 127.0.0.1:9000
maxUploadSize: 2M
logging:
  level: debug
  format: console
  outputFile: /tmp/server.log
cache:
  backend: Redis
  redisAddress: localhost:6379
  ttl: 90s
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.UploadSizeBytes() != 2*1024*1024 {
		t.Fatalf("expected max upload override, got %d", cfg.UploadSizeBytes())
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected logging level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("expected logging format console, got %s", cfg.Logging.Format)
	}
	if cfg.Logging.OutputFile != "/tmp/server.log" {
		t.Fatalf("expected logging outputFile /tmp/server.log, got %s", cfg.Logging.OutputFile)
	}
	if cfg.Cache.Backend != constants.CacheBackendRedis {
		t.Fatalf("expected redis backend, got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTLDuration() != 90*time.Second {
		t.Fatalf("expected ttl of 90s, got %v", cfg.Cache.TTLDuration())
	}
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv(constants.EnvPrefix+"_ADDRESS", ":9999")
	t.Setenv(constants.EnvPrefix+"_REDIS_ADDRESS", "redis:6379")

	path := writeServerConfig(t, "address: 127.0.0.1:9000\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != ":9999" {
		t.Fatalf("expected environment address, got %s", cfg.Address)
	}
	if cfg.Cache.Backend != constants.CacheBackendRedis || cfg.Cache.RedisAddress != "redis:6379" {
		t.Fatalf("expected redis cache from environment, got %+v", cfg.Cache)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv(constants.EnvPrefix+"_REDIS_ADDRESS", "")

	tests := map[string]string{
		"Upload size":        "maxUploadSize: invalid",
		"Cache backend":      "cache:\n  backend: memcached\n",
		"Redis address":      "cache:\n  backend: redis\n",
		"Cache ttl":          "cache:\n  backend: memory\n  ttl: soon\n",
		"Negative cache ttl": "cache:\n  backend: memory\n  ttl: -1m\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeServerConfig(t, contents)); err == nil {
				t.Fatal("expected error but got nil")
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxUploadSizeBytes,
		"1024":      1024,
		"512b":      512,
		"256K":      256 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"2G":        2 * 1024 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("ParseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1TB"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}
}
