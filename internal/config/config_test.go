package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_FeaturedTeamDefaultsByMode(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FEATURED_TEAM", "")
	t.Setenv("HOLLANDSEVELDEN_API_KEY", "key-123")

	t.Run("api mode", func(t *testing.T) {
		t.Setenv("USE_TEST_DATA", "false")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.FeaturedTeam != "AVV Columbia" {
			t.Fatalf("unexpected featured team: %q", cfg.FeaturedTeam)
		}
	})

	t.Run("test data mode", func(t *testing.T) {
		t.Setenv("USE_TEST_DATA", "true")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.FeaturedTeam != "VV Gorecht" {
			t.Fatalf("unexpected featured team: %q", cfg.FeaturedTeam)
		}
	})

	t.Run("explicit override wins", func(t *testing.T) {
		t.Setenv("USE_TEST_DATA", "true")
		t.Setenv("FEATURED_TEAM", "SV Epe")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.FeaturedTeam != "SV Epe" {
			t.Fatalf("unexpected featured team: %q", cfg.FeaturedTeam)
		}
	})
}

func TestLoad_APIKeyRequiredOutsideTestMode(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("USE_TEST_DATA", "false")
	t.Setenv("HOLLANDSEVELDEN_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when USE_TEST_DATA=false without HOLLANDSEVELDEN_API_KEY")
	}
}

func TestLoad_ScheduleDefaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("USE_TEST_DATA", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DailyRefreshAt != (ClockTime{Hour: 10}) {
		t.Fatalf("unexpected daily refresh time: %s", cfg.DailyRefreshAt)
	}
	if cfg.SaturdayRefreshStart != (ClockTime{Hour: 16}) || cfg.SaturdayRefreshEnd != (ClockTime{Hour: 19, Minute: 30}) {
		t.Fatalf("unexpected saturday refresh window: %s-%s", cfg.SaturdayRefreshStart, cfg.SaturdayRefreshEnd)
	}
	if cfg.SaturdayRefreshInterval != 30*time.Minute {
		t.Fatalf("unexpected saturday refresh interval: %s", cfg.SaturdayRefreshInterval)
	}
	if cfg.LiveWindowStart != (ClockTime{Hour: 14}) || cfg.LiveWindowEnd != (ClockTime{Hour: 17}) {
		t.Fatalf("unexpected live window: %s-%s", cfg.LiveWindowStart, cfg.LiveWindowEnd)
	}
	if cfg.LiveInterval != 5*time.Minute {
		t.Fatalf("unexpected live interval: %s", cfg.LiveInterval)
	}
}

func TestLoad_ClockTimeValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("USE_TEST_DATA", "true")

	t.Run("invalid format", func(t *testing.T) {
		t.Setenv("DAILY_REFRESH_AT", "ten o'clock")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DAILY_REFRESH_AT")
		}
	})

	t.Run("window inverted", func(t *testing.T) {
		t.Setenv("DAILY_REFRESH_AT", "10:00")
		t.Setenv("LIVE_WINDOW_START", "18:00")
		t.Setenv("LIVE_WINDOW_END", "14:00")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for inverted live window")
		}
	})
}

func TestLoad_LiveTargetFilesDefaultToDataFile(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("USE_TEST_DATA", "true")

	t.Run("default", func(t *testing.T) {
		t.Setenv("DATA_FILE", "custom/league.json")
		t.Setenv("LIVE_TARGET_FILES", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.LiveTargetFiles) != 1 || cfg.LiveTargetFiles[0] != "custom/league.json" {
			t.Fatalf("unexpected live target files: %+v", cfg.LiveTargetFiles)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("LIVE_TARGET_FILES", " data/league_data.json, data/upcoming.json ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.LiveTargetFiles) != 2 {
			t.Fatalf("unexpected live target files length: %d", len(cfg.LiveTargetFiles))
		}
		if cfg.LiveTargetFiles[1] != "data/upcoming.json" {
			t.Fatalf("unexpected second target file: %s", cfg.LiveTargetFiles[1])
		}
	})
}

func TestLoad_FuzzyThresholdValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("USE_TEST_DATA", "true")

	t.Run("default", func(t *testing.T) {
		t.Setenv("LIVE_FUZZY_THRESHOLD", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.LiveFuzzyThreshold != 0.85 {
			t.Fatalf("unexpected fuzzy threshold: %v", cfg.LiveFuzzyThreshold)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		t.Setenv("LIVE_FUZZY_THRESHOLD", "1.5")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for out-of-range LIVE_FUZZY_THRESHOLD")
		}
	})
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("USE_TEST_DATA", "true")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
	})
}
