package config

import "strings"

const defaultAPIURL = "http://localhost:5000"

// ClientConfig holds settings for the command-line client
type ClientConfig struct {
	APIURL string
}

// LoadClient reads the client settings from the environment
func LoadClient() *ClientConfig {
	return &ClientConfig{
		APIURL: NormalizeBaseURL(getEnv("FORMCRAFT_API_URL", defaultAPIURL)),
	}
}

// NormalizeBaseURL strips one trailing slash from a base URL
func NormalizeBaseURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return defaultAPIURL
	}
	return strings.TrimSuffix(u, "/")
}
