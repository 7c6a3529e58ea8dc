package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initBuffer(t *testing.T, cfg Config) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	Init(cfg, &buf)
	t.Cleanup(func() { Init(NewConfig(), nil) })
	return &buf
}

func TestLevelFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "warn"})

	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	assert.NotContains(t, buf.String(), "quiet 1")
	assert.Contains(t, buf.String(), "loud 2")
}

func TestTagFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", EnabledTags: []string{"search"}, DisabledTags: []string{"noisy"}})

	DebugTagf("search", "kept")
	DebugTagf("render", "dropped render")
	DebugTagf("NOISY", "dropped noisy")
	Debugf("dropped untagged")

	out := buf.String()
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "tag=search")
	assert.NotContains(t, out, "dropped")
}

func TestPackageAndFileFiltering(t *testing.T) {
	buf := initBuffer(t, Config{LogLevel: "debug", DisabledFiles: []string{"logger_test.go"}})
	Infof("from the test file")
	assert.NotContains(t, buf.String(), "from the test file")

	buf = initBuffer(t, Config{LogLevel: "debug", EnabledPackages: []string{"logger"}})
	Infof("from the logger package")
	assert.Contains(t, buf.String(), "from the logger package")

	buf = initBuffer(t, Config{LogLevel: "debug", EnabledPackages: []string{"find"}})
	Infof("elsewhere")
	assert.NotContains(t, buf.String(), "elsewhere")
}

func TestParseLevel(t *testing.T) {
	cfg := Config{LogLevel: "WARNING"}
	cfg.process()
	assert.Equal(t, "WARN", cfg.level.String())
	assert.Equal(t, "INFO", ParseLevel("bogus").String())
}

func TestOpenOutput(t *testing.T) {
	w, closeFn, err := OpenOutput("-")
	require.NoError(t, err)
	assert.NotNil(t, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "kite.log")
	w, closeFn, err = OpenOutput(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	assert.NoError(t, closeFn())

	_, _, err = OpenOutput(filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	assert.Error(t, err)
}
