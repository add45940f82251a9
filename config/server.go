package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig groups process-level settings: the HTTP surface, the schedule,
// run cancellation, artifact retention, and the explicit fallback-video
// policy.
type ServerConfig struct {
	Port                 string
	JWKSUrl              string
	ScheduleInterval     time.Duration
	RunTimeout           time.Duration
	ArtifactRetention    time.Duration
	FallbackVideoEnabled bool
	MockCapabilities     bool
}

func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	scheduleInterval, err := parseDurationEnv("SCHEDULE_INTERVAL", time.Hour)
	if err != nil {
		return nil, err
	}
	runTimeout, err := parseDurationEnv("RUN_TIMEOUT", 30*time.Minute)
	if err != nil {
		return nil, err
	}
	retention, err := parseDurationEnv("ARTIFACT_RETENTION", 24*time.Hour)
	if err != nil {
		return nil, err
	}

	fallbackEnabled, err := parseBoolEnv("FALLBACK_VIDEO_ENABLED")
	if err != nil {
		return nil, err
	}
	mockCapabilities, err := parseBoolEnv("MOCK_CAPABILITIES")
	if err != nil {
		return nil, err
	}

	return &ServerConfig{
		Port:                 port,
		JWKSUrl:              os.Getenv("JWKS_URL"),
		ScheduleInterval:     scheduleInterval,
		RunTimeout:           runTimeout,
		ArtifactRetention:    retention,
		FallbackVideoEnabled: fallbackEnabled,
		MockCapabilities:     mockCapabilities,
	}, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return val, nil
}

func parseBoolEnv(key string) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return val, nil
}
