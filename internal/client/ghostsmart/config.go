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

package ghostsmart

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Config contains the bridge-service configuration used to create clients
type Config struct {
	BaseURL    string        `validate:"required,url"` // full base URL including scheme, e.g. http://localhost:8000
	APIKey     string        // service-level API key injected into every bridge request
	HeaderName string        // header name for the service key (defaults to X-API-Key if empty)
	Timeout    time.Duration // per-request timeout
	MaxRetries int           // max retry attempts for transient errors
}

// DefaultHeaderName is used when no header name is provided
const DefaultHeaderName = "X-API-Key"

// DefaultTimeout is the default client timeout. AI-backed operations
// (content and image generation) routinely take tens of seconds.
const DefaultTimeout = 30 * time.Second

// DefaultMaxRetries is the default retry attempts for transient errors
const DefaultMaxRetries = 2

var configValidator = validator.New()

// Validate checks the config for structural problems before a client is built
func (c *Config) Validate() error {
	return configValidator.Struct(c)
}
