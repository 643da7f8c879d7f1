package utils

import (
	"log"
	"os"
	"time"
)

// LoggerConfig defines the logger configuration
type LoggerConfig struct {
	// Log format (text/json)
	Format string
	// Output stream (os.Stdout, a file, etc.)
	Output *os.File
	// Enable/disable console colors
	EnableColors bool
}

// InitLogger initializes and returns the logger
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Wellness Portal] "

	var logger *log.Logger
	if cfg.Format == "json" {
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
	} else {
		if cfg.EnableColors {
			prefix = "\033[36m" + prefix + "\033[0m"
		}
		logger = log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
	}

	return logger
}

// DispatchLog returns a log callback for the router, reporting every
// simulated dispatch the way an access log would.
func DispatchLog(logger *log.Logger, colors bool) func(method, path string, status int, elapsed time.Duration) {
	return func(method, path string, status int, elapsed time.Duration) {
		var statusColor, methodColor, resetColor string
		if colors {
			statusColor, methodColor, resetColor = getStatusColor(status), getMethodColor(method), "\033[0m"
		}

		logger.Printf("%s%s%s %s %s%d%s %s",
			methodColor, method, resetColor,
			path,
			statusColor, status, resetColor,
			elapsed,
		)
	}
}

func getStatusColor(status int) string {
	switch {
	case status >= 500:
		return "\033[31m" // red
	case status >= 400:
		return "\033[33m" // yellow
	case status >= 300:
		return "\033[36m" // cyan
	case status >= 200:
		return "\033[32m" // green
	default:
		return "\033[37m" // white
	}
}

func getMethodColor(method string) string {
	switch method {
	case "GET":
		return "\033[34m" // blue
	case "POST":
		return "\033[33m" // yellow
	case "PUT":
		return "\033[36m" // cyan
	case "DELETE":
		return "\033[31m" // red
	case "PATCH":
		return "\033[32m" // green
	default:
		return "\033[37m" // white
	}
}
