package utils

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// LogInfo prints an informational line in yellow.
func LogInfo(format string, v ...interface{}) {
	color.Yellow("[INFO] %s", fmt.Sprintf(format, v...))
}

// LogSuccess prints a success line in green.
func LogSuccess(format string, v ...interface{}) {
	color.Green("[OK] %s", fmt.Sprintf(format, v...))
}

// LogError prints an error line in red.
func LogError(format string, v ...interface{}) {
	color.Red("[ERROR] %s", fmt.Sprintf(format, v...))
}

// LogDebug prints a debug line in cyan.
func LogDebug(format string, v ...interface{}) {
	color.Cyan("[DEBUG] %s", fmt.Sprintf(format, v...))
}

// LogRequest prints one handled HTTP request with its status and duration.
func LogRequest(method, path string, status int, duration time.Duration) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("[%s] %-6s %-40s [%d] (%s)", timestamp, method, path, status, formatDuration(duration))
	switch {
	case status >= 500:
		color.Red("%s", line)
	case status >= 400:
		color.Yellow("%s", line)
	default:
		color.Green("%s", line)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
