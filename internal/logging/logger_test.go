package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNoopBeforeInit(t *testing.T) {
	var l *Logger
	assert.NotNil(t, l.With("k", "v"))
	assert.NotNil(t, Raw())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zap.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zap.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zap.InfoLevel, ParseLevel("whatever"))
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	got := Init(Options{AppName: "termfolio", Env: "prod", Level: "debug", Path: path})
	require.Equal(t, path, got)

	L().Debugw("hello", "section", "skills")
	Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"section":"skills"`)

	SetLevel("error")
	L().Infow("dropped")
	Sync()
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
}

func TestSelectLogPathUsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "termfolio", "app-debug.log"), selectLogPath("termfolio", "dev"))
	assert.Equal(t, filepath.Join(dir, "termfolio", "app.log"), selectLogPath("termfolio", "prod"))
}
