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

// Package service validates request input, merges the per-request credential
// bundle, and delegates to the collaborator gateway. A collaborator-reported
// failure (success=false) becomes an OperationError carrying the endpoint's
// failure category and detail message.
package service

import (
	"context"

	"ghost-blog-smart-api/src/internal/client/ghostsmart"
	"ghost-blog-smart-api/src/internal/constants"
	"ghost-blog-smart-api/src/internal/validation"
)

const (
	categoryCreateFailed  = "Blog post creation failed"
	categoryListFailed    = "Failed to retrieve posts"
	categoryDetailsFailed = "Failed to retrieve post details"
	categoryUpdateFailed  = "Failed to update post"
	categoryImageFailed   = "Failed to update post image"
	categoryDeleteFailed  = "Failed to delete post"

	defaultUnknownError   = "Unknown error"
	defaultDetailsMessage = "Post not found"
	defaultUpdateMessage  = "Update failed"
	defaultImageMessage   = "Image update failed"
	defaultDeleteMessage  = "Deletion failed"
)

// PostService implements the post-management operations: create, list,
// detail retrieval, update, image update, and deletion.
type PostService struct {
	gateway ghostsmart.Gateway
}

// NewPostService creates a new PostService backed by the given gateway
func NewPostService(gateway ghostsmart.Gateway) *PostService {
	return &PostService{gateway: gateway}
}

// ListPostsQuery carries the raw query parameters of the list endpoint.
// An empty string means the parameter was absent.
type ListPostsQuery struct {
	Limit    string
	Status   string
	Featured string
}

// AdvancedPostsQuery carries the raw query parameters of the advanced
// filtering endpoint. An empty string means the parameter was absent.
type AdvancedPostsQuery struct {
	Search          string
	Tag             string
	Author          string
	Limit           string
	Status          string
	Visibility      string
	PublishedAfter  string
	PublishedBefore string
}

// CreatePost validates the creation body and delegates to create_post.
// Unrecognized body keys ride along untouched.
func (s *PostService) CreatePost(ctx context.Context, body map[string]interface{},
	creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	if verr := validateCreatePostRequest(body); verr != nil {
		return nil, verr
	}
	if verr := validateOptionalBodyFields(body); verr != nil {
		return nil, verr
	}

	params := ghostsmart.Params(body)
	creds.Apply(params)

	result, err := s.gateway.CreatePost(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpCreatePost,
			categoryCreateFailed, result.FailureDetail(defaultUnknownError))
	}
	return result, nil
}

// ListPosts validates the list filters and delegates to get_posts.
// Absent parameters are omitted so the collaborator applies its own defaults.
func (s *PostService) ListPosts(ctx context.Context, query ListPostsQuery,
	creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	params := ghostsmart.Params{}

	if query.Limit != "" {
		limit, err := validation.Limit(query.Limit)
		if err != nil {
			return nil, err
		}
		params["limit"] = limit
	}
	if query.Status != "" {
		status, err := validation.Status(query.Status)
		if err != nil {
			return nil, err
		}
		params["status"] = status
	}
	if query.Featured != "" {
		featured, err := validation.Featured(query.Featured)
		if err != nil {
			return nil, err
		}
		params["featured"] = featured
	}
	creds.Apply(params)

	result, err := s.gateway.GetPosts(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpGetPosts,
			categoryListFailed, result.FailureDetail(defaultUnknownError))
	}
	return result, nil
}

// ListPostsAdvanced validates the advanced filters and delegates to
// get_posts_advanced. Free-text filters are trimmed and omitted when blank;
// publication dates are forwarded as the client sent them.
func (s *PostService) ListPostsAdvanced(ctx context.Context, query AdvancedPostsQuery,
	creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	params := ghostsmart.Params{}

	textFilters := map[string]string{
		"search":     query.Search,
		"tag":        query.Tag,
		"author":     query.Author,
		"visibility": query.Visibility,
	}
	for key, raw := range textFilters {
		if value := validation.TrimmedString(raw); value != "" {
			params[key] = value
		}
	}

	if query.Limit != "" {
		limit, err := validation.Limit(query.Limit)
		if err != nil {
			return nil, err
		}
		params["limit"] = limit
	}
	if query.Status != "" {
		status, err := validation.Status(query.Status)
		if err != nil {
			return nil, err
		}
		params["status"] = status
	}
	if query.PublishedAfter != "" {
		date, err := validation.ISODate("published_after", query.PublishedAfter)
		if err != nil {
			return nil, err
		}
		params["published_after"] = date
	}
	if query.PublishedBefore != "" {
		date, err := validation.ISODate("published_before", query.PublishedBefore)
		if err != nil {
			return nil, err
		}
		params["published_before"] = date
	}
	creds.Apply(params)

	result, err := s.gateway.GetPostsAdvanced(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpGetPostsAdvanced,
			categoryListFailed, result.FailureDetail(defaultUnknownError))
	}
	return result, nil
}

// GetPostDetails delegates to get_post_details for a single post
func (s *PostService) GetPostDetails(ctx context.Context, postID string,
	creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	id, verr := validation.PostID(postID)
	if verr != nil {
		return nil, verr
	}

	params := ghostsmart.Params{"post_id": id}
	creds.Apply(params)

	result, err := s.gateway.GetPostDetails(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpGetPostDetails,
			categoryDetailsFailed, result.FailureDetail(defaultDetailsMessage))
	}
	return result, nil
}

// UpdatePost validates the mutation body and delegates to update_post.
// An empty body is rejected before the collaborator is involved.
func (s *PostService) UpdatePost(ctx context.Context, postID string,
	body map[string]interface{}, creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	id, verr := validation.PostID(postID)
	if verr != nil {
		return nil, verr
	}
	if len(body) == 0 {
		return nil, validation.NewError(validation.CategoryValidation,
			"Request body must contain fields to update")
	}
	if verr := validateOptionalBodyFields(body); verr != nil {
		return nil, verr
	}

	params := ghostsmart.Params(body)
	params["post_id"] = id
	creds.Apply(params)

	result, err := s.gateway.UpdatePost(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpUpdatePost,
			categoryUpdateFailed, result.FailureDetail(defaultUpdateMessage))
	}
	return result, nil
}

// UpdatePostImage delegates to update_post_image. The body is passthrough;
// an empty body lets the collaborator regenerate the image with defaults.
func (s *PostService) UpdatePostImage(ctx context.Context, postID string,
	body map[string]interface{}, creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	id, verr := validation.PostID(postID)
	if verr != nil {
		return nil, verr
	}

	params := ghostsmart.Params(body)
	params["post_id"] = id
	creds.Apply(params)

	result, err := s.gateway.UpdatePostImage(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpUpdatePostImage,
			categoryImageFailed, result.FailureDetail(defaultImageMessage))
	}
	return result, nil
}

// DeletePost delegates to delete_post
func (s *PostService) DeletePost(ctx context.Context, postID string,
	creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	id, verr := validation.PostID(postID)
	if verr != nil {
		return nil, verr
	}

	params := ghostsmart.Params{"post_id": id}
	creds.Apply(params)

	result, err := s.gateway.DeletePost(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpDeletePost,
			categoryDeleteFailed, result.FailureDetail(defaultDeleteMessage))
	}
	return result, nil
}

// validateCreatePostRequest enforces the create contract: title and content
// must both be present, be strings, and survive a whitespace trim. The
// trimmed values replace the originals in the body.
func validateCreatePostRequest(body map[string]interface{}) *validation.Error {
	title := validation.TrimmedString(stringField(body, "title"))
	content := validation.TrimmedString(stringField(body, "content"))
	if title == "" || content == "" {
		return validation.NewError(validation.CategoryMissingFields,
			"title and content are required")
	}
	body["title"] = title
	body["content"] = content
	return nil
}

// validateOptionalBodyFields normalizes the recognized optional mutation
// fields in place: a string status is checked against the valid set, a
// string featured spelling is coerced to a boolean. Everything else is
// passthrough and rides along untouched.
func validateOptionalBodyFields(body map[string]interface{}) *validation.Error {
	if raw, ok := body["status"].(string); ok {
		status, err := validation.Status(raw)
		if err != nil {
			return err
		}
		body["status"] = status
	}
	if raw, ok := body["featured"].(string); ok {
		featured, err := validation.Featured(raw)
		if err != nil {
			return err
		}
		body["featured"] = featured
	}
	return nil
}

// stringField reads a body key as a string; an absent key or a non-string
// value reads as the empty string
func stringField(body map[string]interface{}, key string) string {
	value, _ := body[key].(string)
	return value
}
