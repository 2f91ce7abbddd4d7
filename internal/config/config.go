// Package config loads client and server settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"

	"github.com/aerohr/console/pkg/constants"
)

// Environment variable names
const (
	EnvAPIURL          = "AERO_API_URL"
	EnvAPIToken        = "AERO_API_TOKEN"
	EnvTimeout         = "AERO_TIMEOUT"
	EnvPerPage         = "AERO_PER_PAGE"
	EnvHorizonDays     = "AERO_REVIEW_HORIZON_DAYS"
	EnvUpcomingDays    = "AERO_UPCOMING_DAYS"
	EnvDownloadDir     = "AERO_DOWNLOAD_DIR"
	EnvRefreshSchedule = "AERO_REFRESH_SCHEDULE"
	EnvViewerID        = "AERO_VIEWER_ID"
	EnvPort            = "PORT"
	EnvJWTSecret       = "JWT_SECRET"
	EnvSeed            = "AERO_SEED"
)

// Client configures the console.
type Client struct {
	APIURL          string
	Token           string
	ViewerID        string
	Timeout         time.Duration
	PerPage         int
	HorizonDays     int
	UpcomingDays    int
	DownloadDir     string
	RefreshSchedule string
}

// Server configures the reference API server.
type Server struct {
	Port      string
	JWTSecret string
	Seed      bool
}

// LoadDotEnv loads the first .env found in the working directory or its
// parents. Variables already set in the environment win.
func LoadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}
	for {
		p := filepath.Join(dir, ".env")
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err == nil {
				log.Printf("📁 Loaded .env from %s", p)
			}
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

// LoadClient reads the client settings.
func LoadClient() (Client, error) {
	cfg := Client{
		APIURL:          getEnv(EnvAPIURL, "http://localhost:3001"),
		Token:           os.Getenv(EnvAPIToken),
		ViewerID:        os.Getenv(EnvViewerID),
		Timeout:         constants.DefaultTimeout,
		PerPage:         constants.DefaultPerPage,
		HorizonDays:     constants.DefaultHorizonDays,
		UpcomingDays:    constants.DefaultUpcomingDays,
		DownloadDir:     getEnv(EnvDownloadDir, defaultDownloadDir()),
		RefreshSchedule: getEnv(EnvRefreshSchedule, constants.DefaultRefreshSpec),
	}

	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Client{}, fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	var err error
	if cfg.PerPage, err = getInt(EnvPerPage, cfg.PerPage); err != nil {
		return Client{}, err
	}
	if cfg.HorizonDays, err = getInt(EnvHorizonDays, cfg.HorizonDays); err != nil {
		return Client{}, err
	}
	if cfg.UpcomingDays, err = getInt(EnvUpcomingDays, cfg.UpcomingDays); err != nil {
		return Client{}, err
	}
	return cfg, nil
}

// LoadServer reads the server settings.
func LoadServer() Server {
	return Server{
		Port:      getEnv(EnvPort, "3001"),
		JWTSecret: getEnv(EnvJWTSecret, "default-secret-change-in-production"),
		Seed:      os.Getenv(EnvSeed) != "false",
	}
}

func defaultDownloadDir() string {
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}
	return "."
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}
