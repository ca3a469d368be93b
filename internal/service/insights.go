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

package service

import (
	"context"

	"ghost-blog-smart-api/src/internal/client/ghostsmart"
	"ghost-blog-smart-api/src/internal/constants"
	"ghost-blog-smart-api/src/internal/validation"
)

const (
	categorySummaryFailed = "Failed to get summary"
	categorySearchFailed  = "Date pattern search failed"
	categoryBatchFailed   = "Batch operation failed"

	defaultSummaryMessage = "Summary retrieval failed"
	defaultSearchMessage  = "Search failed"
	defaultBatchMessage   = "Batch retrieval failed"
)

// InsightsService fronts the reporting-style operations: summary statistics,
// date-pattern search, and batch detail retrieval.
type InsightsService struct {
	gateway ghostsmart.Gateway
}

// NewInsightsService creates a new InsightsService backed by the given gateway
func NewInsightsService(gateway ghostsmart.Gateway) *InsightsService {
	return &InsightsService{gateway: gateway}
}

// SummaryQuery carries the raw query parameters of the summary endpoint.
// An empty string means the parameter was absent.
type SummaryQuery struct {
	Days   string
	Status string
}

// DatePatternQuery carries the raw query parameters of the date-pattern
// search endpoint. An empty string means the parameter was absent.
type DatePatternQuery struct {
	Pattern string
	Limit   string
}

// GetPostsSummary validates the summary window and delegates to
// get_posts_summary
func (s *InsightsService) GetPostsSummary(ctx context.Context, query SummaryQuery,
	creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	params := ghostsmart.Params{}

	if query.Days != "" {
		days, err := validation.Days(query.Days)
		if err != nil {
			return nil, err
		}
		params["days"] = days
	}
	if query.Status != "" {
		status, err := validation.Status(query.Status)
		if err != nil {
			return nil, err
		}
		params["status"] = status
	}
	creds.Apply(params)

	result, err := s.gateway.GetPostsSummary(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpGetPostsSummary,
			categorySummaryFailed, result.FailureDetail(defaultSummaryMessage))
	}
	return result, nil
}

// FindPostsByDatePattern validates the search query and delegates to
// find_posts_by_date_pattern. The pattern is optional and omitted when blank.
func (s *InsightsService) FindPostsByDatePattern(ctx context.Context, query DatePatternQuery,
	creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	params := ghostsmart.Params{}

	if pattern := validation.TrimmedString(query.Pattern); pattern != "" {
		params["pattern"] = pattern
	}
	if query.Limit != "" {
		limit, err := validation.Limit(query.Limit)
		if err != nil {
			return nil, err
		}
		params["limit"] = limit
	}
	creds.Apply(params)

	result, err := s.gateway.FindPostsByDatePattern(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpFindPostsByDatePattern,
			categorySearchFailed, result.FailureDetail(defaultSearchMessage))
	}
	return result, nil
}

// BatchGetPostDetails validates the post_ids array and delegates to
// batch_get_post_details. Blank entries are dropped; unrecognized body keys
// ride along untouched.
func (s *InsightsService) BatchGetPostDetails(ctx context.Context, body map[string]interface{},
	creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	ids, verr := extractPostIDs(body)
	if verr != nil {
		return nil, verr
	}
	body["post_ids"] = ids

	params := ghostsmart.Params(body)
	creds.Apply(params)

	result, err := s.gateway.BatchGetPostDetails(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpBatchGetPostDetails,
			categoryBatchFailed, result.FailureDetail(defaultBatchMessage))
	}
	return result, nil
}

// extractPostIDs pulls the post_ids value out of a decoded JSON body and
// normalizes it into a non-empty list of trimmed identifiers
func extractPostIDs(body map[string]interface{}) ([]string, *validation.Error) {
	raw, present := body["post_ids"]
	if !present {
		return nil, validation.NewError(validation.CategoryMissingField,
			"post_ids array is required")
	}

	elements, ok := raw.([]interface{})
	if !ok {
		return nil, validation.NewError(validation.CategoryValidation,
			"post_ids must be a JSON array of strings")
	}

	ids := make([]string, 0, len(elements))
	for _, element := range elements {
		id, ok := element.(string)
		if !ok {
			return nil, validation.NewError(validation.CategoryValidation,
				"post_ids must be a JSON array of strings")
		}
		ids = append(ids, id)
	}

	return validation.PostIDs(ids)
}
