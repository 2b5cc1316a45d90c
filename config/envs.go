// Package config loads the visualizer settings from the environment, after
// reading a .env file from the working directory when one exists.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	ScreenWidth  int           // Window width in pixels
	ScreenHeight int           // Window height in pixels
	TileSize     int           // Edge of one grid cell in pixels
	Threads      int           // Workers used by each automaton step
	LifeInterval time.Duration // Minimum time between automaton steps
	Fullscreen   bool          // Open a borderless desktop-sized window
	Title        string        // Window title
}

// Cols returns how many tiles fit across the screen.
func (c Config) Cols() int { return c.ScreenWidth / c.TileSize }

// Rows returns how many tiles fit down the screen.
func (c Config) Rows() int { return c.ScreenHeight / c.TileSize }

// Load reads .env if available and then the LEEPATH_* variables.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return fromEnv()
}

func fromEnv() (Config, error) {
	var (
		cfg Config
		err error
		ms  int
	)
	if cfg.ScreenWidth, err = getEnvAsInt("LEEPATH_SCREEN_WIDTH", 1920); err != nil {
		return Config{}, err
	}
	if cfg.ScreenHeight, err = getEnvAsInt("LEEPATH_SCREEN_HEIGHT", 1080); err != nil {
		return Config{}, err
	}
	if cfg.TileSize, err = getEnvAsInt("LEEPATH_TILE_SIZE", 24); err != nil {
		return Config{}, err
	}
	if cfg.Threads, err = getEnvAsInt("LEEPATH_THREADS", 4); err != nil {
		return Config{}, err
	}
	if ms, err = getEnvAsInt("LEEPATH_LIFE_INTERVAL_MS", 1000); err != nil {
		return Config{}, err
	}
	cfg.LifeInterval = time.Duration(ms) * time.Millisecond
	if cfg.Fullscreen, err = getEnvAsBool("LEEPATH_FULLSCREEN", false); err != nil {
		return Config{}, err
	}
	cfg.Title = getEnvWithDefault("LEEPATH_TITLE", "Lee Pathfinding")

	if cfg.TileSize <= 0 {
		return Config{}, fmt.Errorf("LEEPATH_TILE_SIZE must be positive, got %d", cfg.TileSize)
	}
	if cfg.Cols() < 3 || cfg.Rows() < 3 {
		return Config{}, fmt.Errorf("screen %dx%d holds fewer than 3x3 tiles of %d px",
			cfg.ScreenWidth, cfg.ScreenHeight, cfg.TileSize)
	}
	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, or defaultValue if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return value, nil
}
