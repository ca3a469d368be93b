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
	"context"

	"ghost-blog-smart-api/src/internal/constants"
)

// Params is the flat keyword mapping sent to a collaborator operation:
// validated request fields plus the resolved credential bundle.
type Params map[string]interface{}

// Credentials is the per-request credential bundle forwarded to the
// collaborator. Fields left empty are omitted from the parameter mapping
// entirely; the collaborator applies its own defaults. Values are never
// logged and never echoed back in responses.
type Credentials struct {
	GhostAdminAPIKey string
	GhostAPIURL      string
	GeminiAPIKey     string
	ReplicateAPIKey  string
}

// Apply copies the non-empty credential values into the parameter mapping
func (c Credentials) Apply(params Params) {
	if c.GhostAdminAPIKey != "" {
		params[constants.ParamGhostAdminAPIKey] = c.GhostAdminAPIKey
	}
	if c.GhostAPIURL != "" {
		params[constants.ParamGhostAPIURL] = c.GhostAPIURL
	}
	if c.GeminiAPIKey != "" {
		params[constants.ParamGeminiAPIKey] = c.GeminiAPIKey
	}
	if c.ReplicateAPIKey != "" {
		params[constants.ParamReplicateAPIKey] = c.ReplicateAPIKey
	}
}

// Result is a collaborator operation outcome normalized at the boundary.
// Payload retains the full result mapping as returned by the library;
// Success, Message and Response are extracted for status selection. The
// smart gateway reports its failure detail under "response" rather than
// "message", hence both fields.
type Result struct {
	Success  bool
	Message  string
	Response string
	Payload  map[string]interface{}
}

// FailureDetail returns the human-readable failure text, preferring the
// message key and falling back to the smart gateway's response key.
func (r *Result) FailureDetail(fallback string) string {
	if r.Message != "" {
		return r.Message
	}
	if r.Response != "" {
		return r.Response
	}
	return fallback
}

// GatewayFailureDetail is like FailureDetail but with the smart gateway's
// key precedence: response first, then message.
func (r *Result) GatewayFailureDetail(fallback string) string {
	if r.Response != "" {
		return r.Response
	}
	if r.Message != "" {
		return r.Message
	}
	return fallback
}

// Gateway is the collaborator contract: one method per delegated operation.
// Each call sends the flat parameter mapping and returns the normalized
// result; a non-nil error is a transport-level BridgeError.
type Gateway interface {
	CreatePost(ctx context.Context, params Params) (*Result, error)
	SmartCreate(ctx context.Context, params Params) (*Result, error)
	GetPosts(ctx context.Context, params Params) (*Result, error)
	GetPostsAdvanced(ctx context.Context, params Params) (*Result, error)
	GetPostDetails(ctx context.Context, params Params) (*Result, error)
	UpdatePost(ctx context.Context, params Params) (*Result, error)
	UpdatePostImage(ctx context.Context, params Params) (*Result, error)
	DeletePost(ctx context.Context, params Params) (*Result, error)
	BatchGetPostDetails(ctx context.Context, params Params) (*Result, error)
	GetPostsSummary(ctx context.Context, params Params) (*Result, error)
	FindPostsByDatePattern(ctx context.Context, params Params) (*Result, error)
}
