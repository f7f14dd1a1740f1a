package config

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("KAFKA_BROKERS", " broker-1:9092, ,broker-2:9092 ")

	env := LoadEnv()
	if env.AppAddr != ":9090" {
		t.Fatalf("expected addr :9090, got %q", env.AppAddr)
	}
	if len(env.KafkaBrokers) != 2 || env.KafkaBrokers[1] != "broker-2:9092" {
		t.Fatalf("brokers not compacted: %#v", env.KafkaBrokers)
	}
	if env.JWTTTL <= 0 {
		t.Fatalf("expected positive jwt ttl, got %v", env.JWTTTL)
	}
}

func TestLoadEnvWarnsOnDefaultJWTSecret(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	env := LoadEnv()
	if env.JWTSecret != DefaultJWTSecret || !env.UsesDefaultJWTSecret() {
		t.Fatalf("expected default secret, got %q", env.JWTSecret)
	}
	if !strings.Contains(buf.String(), "JWT_SECRET not set") {
		t.Fatalf("expected a warning for the default secret, log was %q", buf.String())
	}

	buf.Reset()
	t.Setenv("JWT_SECRET", "a-real-secret")
	env = LoadEnv()
	if env.UsesDefaultJWTSecret() {
		t.Fatalf("explicit secret reported as default")
	}
	if strings.Contains(buf.String(), "JWT_SECRET not set") {
		t.Fatalf("unexpected warning with explicit secret: %q", buf.String())
	}
}

func TestDSN(t *testing.T) {
	env := Env{DBUser: "admin", DBPass: "secret", DBHost: "db", DBPort: "3307", DBName: "bus_booking"}
	dsn := env.DSN()
	for _, want := range []string{"admin:secret@tcp(db:3307)/bus_booking", "parseTime=true", "charset=utf8mb4"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn %q missing %q", dsn, want)
		}
	}
}
