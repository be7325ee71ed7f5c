package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL        string
	RedisAddress string
	BearerToken  string
	APIBasePath  string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}

// GetAPIBasePath returns the base path the resource routes are mounted under.
func (c *AppConfig) GetAPIBasePath() string {
	if c.APIBasePath == "" {
		return "/api"
	}
	return c.APIBasePath
}
