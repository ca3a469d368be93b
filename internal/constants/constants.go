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

package constants

// Gate and credential header names
const (
	APIKeyHeader          = "X-API-Key"
	GhostAPIKeyHeader     = "X-Ghost-API-Key"
	GhostAPIURLHeader     = "X-Ghost-API-URL"
	GeminiAPIKeyHeader    = "X-Gemini-API-Key"
	ReplicateAPIKeyHeader = "X-Replicate-API-Key"
)

// Collaborator parameter keys for forwarded credentials
const (
	ParamGhostAdminAPIKey = "ghost_admin_api_key"
	ParamGhostAPIURL      = "ghost_api_url"
	ParamGeminiAPIKey     = "gemini_api_key"
	ParamReplicateAPIKey  = "replicate_api_key"
)

// Collaborator operation names
const (
	OpCreatePost             = "create_post"
	OpSmartCreate            = "smart_create"
	OpGetPosts               = "get_posts"
	OpGetPostsAdvanced       = "get_posts_advanced"
	OpGetPostDetails         = "get_post_details"
	OpUpdatePost             = "update_post"
	OpUpdatePostImage        = "update_post_image"
	OpDeletePost             = "delete_post"
	OpBatchGetPostDetails    = "batch_get_post_details"
	OpGetPostsSummary        = "get_posts_summary"
	OpFindPostsByDatePattern = "find_posts_by_date_pattern"
)

// Post status constants
const (
	PostStatusPublished = "published"
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusAll       = "all"
)

// ValidPostStatuses Valid post status filters
var ValidPostStatuses = map[string]bool{
	PostStatusPublished: true,
	PostStatusDraft:     true,
	PostStatusScheduled: true,
	PostStatusAll:       true,
}

// PostStatusList is the enumeration used in validation error messages,
// in the order it is reported to clients.
var PostStatusList = []string{
	PostStatusPublished,
	PostStatusDraft,
	PostStatusScheduled,
	PostStatusAll,
}

// Limit bounds for list-style endpoints
const (
	MinLimit = 1
	MaxLimit = 100
)

// Accepted spellings for the tri-state featured flag
var (
	FeaturedTrueValues  = map[string]bool{"true": true, "1": true, "yes": true}
	FeaturedFalseValues = map[string]bool{"false": true, "0": true, "no": true}
)
