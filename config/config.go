/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package config

import (
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// Server holds the configuration parameters for the application.
type Server struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Server configurations
	Port string `envconfig:"PORT" default:"5000"`

	// Gate secret for the X-API-Key middleware. The variable name is kept
	// from the previous deployment for fleet compatibility; empty means the
	// gate is disabled (open access).
	APIKey string `envconfig:"FLASK_API_KEY"`

	// Ghost credential defaults. Request headers override these per request.
	GhostCredentials GhostCredentials

	// Bridge configurations for the ghost-blog-smart sidecar
	Bridge Bridge `envconfig:"GHOSTSMART"`
}

// GhostCredentials holds process-wide credential defaults forwarded to the
// collaborator when the request carries no overriding header. All fields are
// optional; an empty field is omitted from the forwarded parameter mapping.
type GhostCredentials struct {
	GhostAdminAPIKey string `envconfig:"GHOST_ADMIN_API_KEY"`
	GhostAPIURL      string `envconfig:"GHOST_API_URL"`
	GeminiAPIKey     string `envconfig:"GEMINI_API_KEY"`
	ReplicateAPIKey  string `envconfig:"REPLICATE_API_TOKEN"`
}

// Bridge holds configuration for the ghost-blog-smart bridge service
type Bridge struct {
	BaseURL    string `envconfig:"BASE_URL" default:"http://localhost:8000"`
	APIKey     string `envconfig:"API_KEY"`
	HeaderName string `envconfig:"HEADER_NAME" default:"X-API-Key"`
	// Timeout is per-request, in seconds. AI-backed operations are slow.
	Timeout    int `envconfig:"TIMEOUT" default:"30"`
	MaxRetries int `envconfig:"MAX_RETRIES" default:"2"`
}

// package-level variable and mutex for thread safety
var (
	processOnce     sync.Once
	settingInstance *Server
)

// GetConfig initializes and returns a singleton instance of the Server struct.
// It uses sync.Once to ensure that the initialization logic is executed only once,
// making it safe for concurrent use. If there is an error during the initialization,
// the function will panic.
//
// Returns:
//
//	*Server - A pointer to the singleton instance populated from environment variables.
func GetConfig() *Server {
	var err error
	processOnce.Do(func() {
		settingInstance = &Server{}
		err = envconfig.Process("", settingInstance)
		if err == nil {
			err = validateBridgeConfig(&settingInstance.Bridge)
		}
	})
	if err != nil {
		panic(err)
	}
	return settingInstance
}

// validateBridgeConfig validates bridge configuration
//
// The bridge base URL is the only hard requirement; every other field has a
// workable default.
//
// Parameters:
//   - cfg: bridge configuration to validate
//
// Returns:
//   - error: Validation error if configuration is invalid, nil otherwise
func validateBridgeConfig(cfg *Bridge) error {
	if cfg.BaseURL == "" {
		return fmt.Errorf("bridge base URL is required but GHOSTSMART_BASE_URL is not configured")
	}

	if cfg.HeaderName == "" {
		return fmt.Errorf("bridge header name is not configured")
	}

	if cfg.Timeout <= 0 {
		return fmt.Errorf("bridge timeout must be positive, got %d", cfg.Timeout)
	}

	if cfg.MaxRetries < 0 {
		return fmt.Errorf("bridge max retries must not be negative, got %d", cfg.MaxRetries)
	}

	return nil
}
