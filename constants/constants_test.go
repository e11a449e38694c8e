package constants

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"ogg", "wav"}, GetAudioExtensions())
	assert.Equal("_backup", GetBackupSuffix())
	assert.Equal(500*time.Millisecond, GetWatchInterval())
	assert.Equal(300*time.Millisecond, GetDebounce())
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("KEYSOUND_AUDIO_EXTENSIONS", " .OGG, flac ,")
	t.Setenv("KEYSOUND_PORT", "9999")

	assert := assert.New(t)
	assert.Equal([]string{"ogg", "flac"}, GetAudioExtensions())
	assert.Equal("9999", GetPort())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keysound.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backup_suffix: _orig\n"), 0644))

	require.NoError(t, LoadConfigFile(path))
	assert.Equal(t, "_orig", GetBackupSuffix())
}

func TestLoadConfigFileEmptyPath(t *testing.T) {
	assert.NoError(t, LoadConfigFile(""))
}
