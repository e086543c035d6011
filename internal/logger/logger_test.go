package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")
	log, err := New(Config{Level: "debug", Encoding: "json", OutputPath: path})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	log.Debug("action accepted")
	_ = log.Sync()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), `"msg":"action accepted"`) || !strings.Contains(string(b), `"level":"DEBUG"`) {
		t.Fatalf("unexpected log output %s", b)
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := New(Config{Level: "loud", OutputPath: filepath.Join(t.TempDir(), "bot.log")})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug should be disabled at info level")
	}
}
