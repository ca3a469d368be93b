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

package client

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
	Timestamp().Str("component", "retry-client").Logger()

// RetryableHTTPClient wraps an HTTP client with retry logic
type RetryableHTTPClient struct {
	client     *http.Client
	maxRetries int
	timeout    time.Duration
}

// NewRetryableHTTPClient creates a new HTTP client with retry capabilities
//
// Parameters:
//   - maxRetries: Maximum number of retry attempts
//   - timeout: Timeout duration for each HTTP request
//
// Returns:
//   - *RetryableHTTPClient: A configured HTTP client with retry logic
func NewRetryableHTTPClient(maxRetries int, timeout time.Duration) *RetryableHTTPClient {
	return &RetryableHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxRetries: maxRetries,
		timeout:    timeout,
	}
}

// Do executes an HTTP request with retry logic
//
// Retry behavior:
//   - Retries on network errors or 5xx server errors
//   - Does NOT retry on 4xx client errors (non-retryable)
//   - Uses linear backoff (1 second between retries)
//   - Maximum attempts = maxRetries + 1 (initial attempt + retries)
//
// Parameters:
//   - req: The HTTP request to execute
//
// Returns:
//   - *http.Response: The HTTP response if successful
//   - error: Error if all retry attempts fail
func (r *RetryableHTTPClient) Do(req *http.Request) (*http.Response, error) {
	var resp *http.Response
	var err error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		if attempt > 0 {
			// The previous attempt consumed the request body; rewind it or
			// the retry reaches the server with an empty payload.
			if rewindErr := rewindRequestBody(req); rewindErr != nil {
				return nil, rewindErr
			}
		}

		resp, err = r.client.Do(req)

		// Success: no error and status code < 500
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if attempt < r.maxRetries {
			event := log.Warn().Int("attempt", attempt+1).Int("max_attempts", r.maxRetries+1)
			if err != nil {
				event.Err(err).Msg("request failed, retrying in 1 second")
			} else {
				event.Int("status", resp.StatusCode).Msg("request failed, retrying in 1 second")
				// Drain the failed attempt so its connection can be reused
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
			}
			time.Sleep(1 * time.Second) // Linear backoff
		}
	}

	// All retries exhausted
	if err != nil {
		log.Error().Int("attempts", r.maxRetries+1).Err(err).Msg("all retry attempts failed")
		return nil, err
	}

	log.Error().Int("attempts", r.maxRetries+1).Int("status", resp.StatusCode).
		Msg("all retry attempts failed")
	return resp, nil
}

// rewindRequestBody resets a request body for replay. net/http populates
// GetBody for the in-memory bodies this module sends; a request carrying a
// streaming body without GetBody cannot be replayed.
func rewindRequestBody(req *http.Request) error {
	if req.Body == nil || req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return err
	}
	req.Body = body
	return nil
}
