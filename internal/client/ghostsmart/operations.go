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
	"net/http"

	"ghost-blog-smart-api/src/internal/constants"
)

// invoke sends the flat parameter mapping to a collaborator operation on the
// bridge service and normalizes the returned mapping. The bridge answers 200
// for any library-level outcome, including failures; the success flag lives
// inside the result mapping.
func (c *GhostSmartClient) invoke(ctx context.Context, operation string, params Params) (*Result, error) {
	if params == nil {
		params = Params{}
	}

	req, err := c.NewRequest(ctx, http.MethodPost, c.buildURL("api", "operations", operation)).
		WithJSONBody(params).
		WithHeader("Accept", "application/json").
		Build()
	if err != nil {
		return nil, NewBridgeError(0, "building request failed", err)
	}

	var payload map[string]interface{}
	if err := c.doAndDecode(req, []int{http.StatusOK}, &payload); err != nil {
		return nil, err
	}

	return newResult(payload), nil
}

// newResult extracts the tagged fields from a raw collaborator mapping
func newResult(payload map[string]interface{}) *Result {
	result := &Result{Payload: payload}
	if success, ok := payload["success"].(bool); ok {
		result.Success = success
	}
	if message, ok := payload["message"].(string); ok {
		result.Message = message
	}
	if response, ok := payload["response"].(string); ok {
		result.Response = response
	}
	return result
}

// CreatePost delegates to the create_post operation
func (c *GhostSmartClient) CreatePost(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpCreatePost, params)
}

// SmartCreate delegates to the AI smart gateway
func (c *GhostSmartClient) SmartCreate(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpSmartCreate, params)
}

// GetPosts delegates to the get_posts operation
func (c *GhostSmartClient) GetPosts(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpGetPosts, params)
}

// GetPostsAdvanced delegates to the advanced filtered listing
func (c *GhostSmartClient) GetPostsAdvanced(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpGetPostsAdvanced, params)
}

// GetPostDetails delegates to the single-post detail fetch
func (c *GhostSmartClient) GetPostDetails(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpGetPostDetails, params)
}

// UpdatePost delegates to the update_post operation
func (c *GhostSmartClient) UpdatePost(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpUpdatePost, params)
}

// UpdatePostImage delegates to the feature-image update
func (c *GhostSmartClient) UpdatePostImage(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpUpdatePostImage, params)
}

// DeletePost delegates to the delete_post operation
func (c *GhostSmartClient) DeletePost(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpDeletePost, params)
}

// BatchGetPostDetails delegates to the batch detail fetch
func (c *GhostSmartClient) BatchGetPostDetails(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpBatchGetPostDetails, params)
}

// GetPostsSummary delegates to the summary statistics operation
func (c *GhostSmartClient) GetPostsSummary(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpGetPostsSummary, params)
}

// FindPostsByDatePattern delegates to the date-pattern search
func (c *GhostSmartClient) FindPostsByDatePattern(ctx context.Context, params Params) (*Result, error) {
	return c.invoke(ctx, constants.OpFindPostsByDatePattern, params)
}
