package config

import "strings"

const apiURLVar = "API_URL"

type GatewayConfig interface {
	GetAPIURL() string
	GetDefaultHeaders() map[string]string
}

type Gateway struct{}

var _ GatewayConfig = Gateway{}

// GetAPIURL returns the backend base address without a trailing slash.
func (Gateway) GetAPIURL() string {
	return strings.TrimRight(GetEnv(apiURLVar, "http://localhost:8080"), "/")
}

func (Gateway) GetDefaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
}
