package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort            = "3000"
	defaultGinMode         = "release"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultShutdownTimeout = 10 * time.Second
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr      string
	Port            string
	GinMode         string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load 从环境变量读取应用配置，并为缺失或非法的项提供默认值。
func Load() AppConfig {
	port := getenv("PORT", defaultPort)

	listenAddr := getenv("LISTEN_ADDR", "")
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	ginMode := strings.ToLower(getenv("GIN_MODE", defaultGinMode))
	switch ginMode {
	case "debug", "release", "test":
	default:
		ginMode = defaultGinMode
	}

	logLevel := strings.ToLower(getenv("LOG_LEVEL", defaultLogLevel))
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		logLevel = defaultLogLevel
	}

	logFormat := strings.ToLower(getenv("LOG_FORMAT", defaultLogFormat))
	if logFormat != "json" {
		logFormat = defaultLogFormat
	}

	shutdownTimeout := defaultShutdownTimeout
	if seconds := getenvInt("SHUTDOWN_TIMEOUT_SECONDS", 0); seconds > 0 {
		shutdownTimeout = time.Duration(seconds) * time.Second
	}

	return AppConfig{
		ListenAddr:      listenAddr,
		Port:            port,
		GinMode:         ginMode,
		LogLevel:        logLevel,
		LogFormat:       logFormat,
		ShutdownTimeout: shutdownTimeout,
	}
}

func getenv(name, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value
	}
	return fallback
}

func getenvInt(name string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
