package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zeeneddie/Sports-League-Management-System/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Featured team defaults per data mode. Gorecht is the demo club the
// bundled test payload centers on.
const (
	defaultFeaturedTeam     = "AVV Columbia"
	defaultFeaturedTeamTest = "VV Gorecht"
)

// ClockTime is a wall-clock moment within a day, minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// Minutes returns the time as minutes since midnight.
func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	UseTestData  bool
	FeaturedTeam string

	DataFile        string
	BackupDir       string
	LiveTargetFiles []string

	HollandseVeldenBaseURL               string
	HollandseVeldenAPIKey                string
	HollandseVeldenCompetitionPath       string
	HollandseVeldenTimeout               time.Duration
	HollandseVeldenMaxRetries            int
	HollandseVeldenCircuitEnabled        bool
	HollandseVeldenCircuitFailureCount   int
	HollandseVeldenCircuitOpenTimeout    time.Duration
	HollandseVeldenCircuitHalfOpenMaxReq int

	LiveScrapeURL      string
	LiveFuzzyThreshold float64

	DailyRefreshAt          ClockTime
	SaturdayRefreshStart    ClockTime
	SaturdayRefreshEnd      ClockTime
	SaturdayRefreshInterval time.Duration
	LiveWindowStart         ClockTime
	LiveWindowEnd           ClockTime
	LiveInterval            time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	useTestData, err := strconv.ParseBool(getEnv("USE_TEST_DATA", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse USE_TEST_DATA: %w", err)
	}

	featuredDefault := defaultFeaturedTeam
	if useTestData {
		featuredDefault = defaultFeaturedTeamTest
	}
	featuredTeam := strings.TrimSpace(getEnv("FEATURED_TEAM", featuredDefault))
	if featuredTeam == "" {
		return Config{}, fmt.Errorf("FEATURED_TEAM cannot be empty")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	hvTimeout, err := time.ParseDuration(getEnv("HOLLANDSEVELDEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HOLLANDSEVELDEN_TIMEOUT: %w", err)
	}
	if hvTimeout <= 0 {
		return Config{}, fmt.Errorf("HOLLANDSEVELDEN_TIMEOUT must be > 0")
	}
	hvMaxRetries, err := getEnvAsInt("HOLLANDSEVELDEN_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse HOLLANDSEVELDEN_MAX_RETRIES: %w", err)
	}
	if hvMaxRetries < 0 {
		return Config{}, fmt.Errorf("HOLLANDSEVELDEN_MAX_RETRIES must be >= 0")
	}
	hvCircuitEnabled, err := strconv.ParseBool(getEnv("HOLLANDSEVELDEN_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HOLLANDSEVELDEN_CIRCUIT_ENABLED: %w", err)
	}
	hvCircuitFailureCount, err := getEnvAsInt("HOLLANDSEVELDEN_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse HOLLANDSEVELDEN_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if hvCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("HOLLANDSEVELDEN_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	hvCircuitOpenTimeout, err := time.ParseDuration(getEnv("HOLLANDSEVELDEN_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HOLLANDSEVELDEN_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if hvCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("HOLLANDSEVELDEN_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	hvCircuitHalfOpenMaxReq, err := getEnvAsInt("HOLLANDSEVELDEN_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse HOLLANDSEVELDEN_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if hvCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("HOLLANDSEVELDEN_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	liveFuzzyThreshold, err := getEnvAsFloat("LIVE_FUZZY_THRESHOLD", 0.85)
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_FUZZY_THRESHOLD: %w", err)
	}
	if liveFuzzyThreshold <= 0 || liveFuzzyThreshold > 1 {
		return Config{}, fmt.Errorf("LIVE_FUZZY_THRESHOLD must be in (0, 1]")
	}

	dailyRefreshAt, err := parseClockTime(getEnv("DAILY_REFRESH_AT", "10:00"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DAILY_REFRESH_AT: %w", err)
	}
	saturdayRefreshStart, err := parseClockTime(getEnv("SATURDAY_REFRESH_START", "16:00"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SATURDAY_REFRESH_START: %w", err)
	}
	saturdayRefreshEnd, err := parseClockTime(getEnv("SATURDAY_REFRESH_END", "19:30"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SATURDAY_REFRESH_END: %w", err)
	}
	saturdayRefreshInterval, err := time.ParseDuration(getEnv("SATURDAY_REFRESH_INTERVAL", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SATURDAY_REFRESH_INTERVAL: %w", err)
	}
	if saturdayRefreshInterval < time.Minute {
		return Config{}, fmt.Errorf("SATURDAY_REFRESH_INTERVAL must be >= 1m")
	}
	liveWindowStart, err := parseClockTime(getEnv("LIVE_WINDOW_START", "14:00"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_WINDOW_START: %w", err)
	}
	liveWindowEnd, err := parseClockTime(getEnv("LIVE_WINDOW_END", "17:00"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_WINDOW_END: %w", err)
	}
	liveInterval, err := time.ParseDuration(getEnv("LIVE_INTERVAL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LIVE_INTERVAL: %w", err)
	}
	if liveInterval < time.Minute {
		return Config{}, fmt.Errorf("LIVE_INTERVAL must be >= 1m")
	}
	if saturdayRefreshStart.Minutes() > saturdayRefreshEnd.Minutes() {
		return Config{}, fmt.Errorf("SATURDAY_REFRESH_START must not be after SATURDAY_REFRESH_END")
	}
	if liveWindowStart.Minutes() > liveWindowEnd.Minutes() {
		return Config{}, fmt.Errorf("LIVE_WINDOW_START must not be after LIVE_WINDOW_END")
	}

	dataFile := strings.TrimSpace(getEnv("DATA_FILE", "data/league_data.json"))
	if dataFile == "" {
		return Config{}, fmt.Errorf("DATA_FILE cannot be empty")
	}
	backupDir := strings.TrimSpace(getEnv("BACKUP_DIR", "data/backups"))
	if backupDir == "" {
		return Config{}, fmt.Errorf("BACKUP_DIR cannot be empty")
	}
	liveTargetFiles := splitCSV(getEnv("LIVE_TARGET_FILES", dataFile))
	if len(liveTargetFiles) == 0 {
		return Config{}, fmt.Errorf("LIVE_TARGET_FILES cannot be empty")
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "league-dashboard-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		UseTestData:  useTestData,
		FeaturedTeam: featuredTeam,

		DataFile:        dataFile,
		BackupDir:       backupDir,
		LiveTargetFiles: liveTargetFiles,

		HollandseVeldenBaseURL:               strings.TrimSpace(getEnv("HOLLANDSEVELDEN_BASE_URL", "https://api.hollandsevelden.nl")),
		HollandseVeldenAPIKey:                strings.TrimSpace(getEnv("HOLLANDSEVELDEN_API_KEY", "")),
		HollandseVeldenCompetitionPath:       strings.TrimSpace(getEnv("HOLLANDSEVELDEN_COMPETITION_PATH", "/competities/2025-2026/noord-zaterdag-1f/")),
		HollandseVeldenTimeout:               hvTimeout,
		HollandseVeldenMaxRetries:            hvMaxRetries,
		HollandseVeldenCircuitEnabled:        hvCircuitEnabled,
		HollandseVeldenCircuitFailureCount:   hvCircuitFailureCount,
		HollandseVeldenCircuitOpenTimeout:    hvCircuitOpenTimeout,
		HollandseVeldenCircuitHalfOpenMaxReq: hvCircuitHalfOpenMaxReq,

		LiveScrapeURL:      strings.TrimSpace(getEnv("LIVE_SCRAPE_URL", "https://www.voetbaloost.nl/live")),
		LiveFuzzyThreshold: liveFuzzyThreshold,

		DailyRefreshAt:          dailyRefreshAt,
		SaturdayRefreshStart:    saturdayRefreshStart,
		SaturdayRefreshEnd:      saturdayRefreshEnd,
		SaturdayRefreshInterval: saturdayRefreshInterval,
		LiveWindowStart:         liveWindowStart,
		LiveWindowEnd:           liveWindowEnd,
		LiveInterval:            liveInterval,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if !useTestData && cfg.HollandseVeldenAPIKey == "" {
		return Config{}, fmt.Errorf("HOLLANDSEVELDEN_API_KEY is required when USE_TEST_DATA=false")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseClockTime(v string) (ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(v), ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q, expected HH:MM", v)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return ClockTime{}, fmt.Errorf("invalid hour in clock time %q", v)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return ClockTime{}, fmt.Errorf("invalid minute in clock time %q", v)
	}
	return ClockTime{Hour: hour, Minute: minute}, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
