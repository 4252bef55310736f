package config

import (
	"os"
	"strconv"

	"distbench/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Bench     BenchConfig
	Profiling ProfilingConfig
	Report    ReportConfig
}

// BenchConfig holds the default experiment parameters
type BenchConfig struct {
	Agents int
	Steps  int
	Lambda float64
	Seed   uint64
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Enabled    bool
	Port       string
	CPUProfile string
}

// ReportConfig holds report output settings
type ReportConfig struct {
	ExcelFile string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Bench:     loadBenchConfig(),
		Profiling: loadProfilingConfig(),
		Report:    loadReportConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadBenchConfig() BenchConfig {
	return BenchConfig{
		Agents: getEnvIntOrDefault("BENCH_AGENTS", 10000),
		Steps:  getEnvIntOrDefault("BENCH_STEPS", 1000),
		Lambda: getEnvFloatOrDefault("BENCH_LAMBDA", 12.0),
		Seed:   getEnvUintOrDefault("BENCH_SEED", 42),
	}
}

func loadProfilingConfig() ProfilingConfig {
	return ProfilingConfig{
		Enabled:    getEnvBoolOrDefault("PPROF_ENABLED", false),
		Port:       getEnvOrDefault("PPROF_PORT", "6060"),
		CPUProfile: getEnvOrDefault("CPU_PROFILE", ""),
	}
}

func loadReportConfig() ReportConfig {
	return ReportConfig{
		ExcelFile: getEnvOrDefault("REPORT_FILE", ""),
	}
}

func validateConfig(config *Config) error {
	if config.Bench.Agents < 0 {
		return errors.ConfigInvalid("BENCH_AGENTS cannot be negative")
	}
	if config.Bench.Steps < 0 {
		return errors.ConfigInvalid("BENCH_STEPS cannot be negative")
	}
	if config.Bench.Lambda <= 0 {
		return errors.ConfigInvalid("BENCH_LAMBDA must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvUintOrDefault(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
