package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"LEEPATH_SCREEN_WIDTH",
	"LEEPATH_SCREEN_HEIGHT",
	"LEEPATH_TILE_SIZE",
	"LEEPATH_THREADS",
	"LEEPATH_LIFE_INTERVAL_MS",
	"LEEPATH_FULLSCREEN",
	"LEEPATH_TITLE",
}

// unsetAll clears every variable for the duration of the test.
func unsetAll(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestDefaults(t *testing.T) {
	unsetAll(t)
	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		ScreenWidth:  1920,
		ScreenHeight: 1080,
		TileSize:     24,
		Threads:      4,
		LifeInterval: time.Second,
		Fullscreen:   false,
		Title:        "Lee Pathfinding",
	}, cfg)
	assert.Equal(t, 80, cfg.Cols())
	assert.Equal(t, 45, cfg.Rows())
}

func TestOverrides(t *testing.T) {
	unsetAll(t)
	t.Setenv("LEEPATH_SCREEN_WIDTH", "640")
	t.Setenv("LEEPATH_TILE_SIZE", "32")
	t.Setenv("LEEPATH_LIFE_INTERVAL_MS", "250")
	t.Setenv("LEEPATH_FULLSCREEN", "true")
	t.Setenv("LEEPATH_TITLE", "maze")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Cols())
	assert.Equal(t, 250*time.Millisecond, cfg.LifeInterval)
	assert.True(t, cfg.Fullscreen)
	assert.Equal(t, "maze", cfg.Title)
}

func TestInvalid(t *testing.T) {
	cases := map[string]string{
		"LEEPATH_THREADS":       "four",
		"LEEPATH_FULLSCREEN":    "maybe",
		"LEEPATH_TILE_SIZE":     "0",
		"LEEPATH_SCREEN_HEIGHT": "40",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			unsetAll(t)
			t.Setenv(key, value)
			_, err := fromEnv()
			assert.Error(t, err)
		})
	}
}

func TestDotEnvFile(t *testing.T) {
	unsetAll(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LEEPATH_THREADS=9\nLEEPATH_TITLE=\"from file\"\n"), 0o600))
	require.NoError(t, godotenv.Load(path))

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Threads)
	assert.Equal(t, "from file", cfg.Title)
}
