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
	"net/http"

	"ghost-blog-smart-api/src/internal/client"
)

// GhostSmartClient is a lightweight client for the ghost-blog-smart bridge
// service. It is stateless per request and holds the configured retry-enabled
// http.Client and the Config used to build requests.
type GhostSmartClient struct {
	cfg        Config
	httpClient *client.RetryableHTTPClient // retry-enabled HTTP client
	headerName string
	apiKey     string
}

// NewGhostSmartClient creates a new bridge client for the provided Config.
func NewGhostSmartClient(cfg Config) (*GhostSmartClient, error) {
	if cfg.HeaderName == "" {
		cfg.HeaderName = DefaultHeaderName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &GhostSmartClient{
		cfg:        cfg,
		httpClient: client.NewRetryableHTTPClient(cfg.MaxRetries, cfg.Timeout),
		headerName: cfg.HeaderName,
		apiKey:     cfg.APIKey,
	}, nil
}

// do executes the request with per-request header injection.
// It will inject the configured service API key into headerName if present.
func (c *GhostSmartClient) do(req *http.Request) (*http.Response, error) {
	if c.headerName != "" && c.apiKey != "" {
		req.Header.Set(c.headerName, c.apiKey)
	}
	return c.httpClient.Do(req)
}
