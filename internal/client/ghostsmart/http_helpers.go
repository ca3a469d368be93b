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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().
	Timestamp().Str("component", "ghostsmart").Logger()

// buildURL joins the base URL with path segments ensuring single slashes.
func (c *GhostSmartClient) buildURL(parts ...string) string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.Trim(p, "/")
		if trimmed == "" {
			continue
		}
		// Split by "/" to handle parts like "api/operations"
		for _, subPart := range strings.Split(trimmed, "/") {
			if subPart != "" {
				segments = append(segments, url.PathEscape(subPart))
			}
		}
	}
	if len(segments) == 0 {
		return base
	}
	return base + "/" + strings.Join(segments, "/")
}

// newJSONRequest marshals v to JSON (if non-nil) and returns an *http.Request
// bound to ctx with Content-Type set.
func (c *GhostSmartClient) newJSONRequest(ctx context.Context, method, url string, v interface{}) (*http.Request, error) {
	var body io.Reader
	if v != nil {
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if v != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// doAndDecode executes the request, checks the status against expectedCodes,
// and decodes the JSON response body into out. Transport failures, unexpected
// statuses, and undecodable bodies all surface as *BridgeError.
func (c *GhostSmartClient) doAndDecode(req *http.Request, expectedCodes []int, out interface{}) error {
	resp, err := c.do(req)
	if err != nil {
		log.Error().Err(err).Msg("bridge request failed")
		return NewBridgeError(0, err.Error(), err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Msg("reading bridge response body failed")
		return NewBridgeError(resp.StatusCode, "reading response body failed", err)
	}

	log.Debug().Int("status", resp.StatusCode).Msg("bridge response received")

	ok := false
	for _, code := range expectedCodes {
		if resp.StatusCode == code {
			ok = true
			break
		}
	}
	if !ok {
		log.Error().Int("status", resp.StatusCode).Str("body", string(b)).
			Msg("bridge returned unexpected status")
		return NewBridgeError(resp.StatusCode,
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, string(b)), nil)
	}

	if out == nil {
		// caller doesn't want a response body
		return nil
	}

	if err := json.NewDecoder(bytes.NewReader(b)).Decode(out); err != nil {
		log.Error().Err(err).Str("body", string(b)).Msg("decoding bridge response failed")
		return NewBridgeError(resp.StatusCode, "decoding response body failed", err)
	}
	return nil
}
