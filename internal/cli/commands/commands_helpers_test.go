package commands

import (
	"bytes"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"

	"FoodTracker/internal/config"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы токен и логин создавались в temp. Возвращает конфиг на сервер ts.
func withTempConfig(t *testing.T, ts *httptest.Server) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	cfg := &config.Config{TokenFile: filepath.Join(dir, "FoodTracker", "auth_token")}
	if ts != nil {
		cfg.ServerURL = ts.URL
	}
	return cfg
}

// captureOut перенаправляет Out в буфер на время теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Out
	Out = &buf
	t.Cleanup(func() { Out = old })
	return &buf
}
