package utils

import (
	"os"
	"strings"
)

// GetEnvVariable reads an environment variable with a fallback default
func GetEnvVariable(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// readingSpeedWPM is the assumed words-per-minute reading speed
const readingSpeedWPM = 200

// CalculateReadTime estimates reading time in minutes from raw
// markdown content. Never returns less than 1.
func CalculateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / readingSpeedWPM
	if minutes < 1 {
		return 1
	}
	return minutes
}
