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

// Package validation converts untyped HTTP input into well-typed parameter
// values. Every function is pure: no I/O, no collaborator calls. A failed
// check returns an *Error carrying the client-facing category and message.
package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ghost-blog-smart-api/src/internal/constants"
)

// Error categories reported in the response envelope's error field.
const (
	CategoryMissingFields = "Missing required fields"
	CategoryMissingField  = "Missing required field"
	CategoryValidation    = "Validation error"
)

// Error is a client-input validation failure. It always maps to HTTP 400.
type Error struct {
	Category string // short label for the envelope's error field
	Message  string // human-readable detail naming the offending field
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a validation error with an explicit category
func NewError(category, message string) *Error {
	return &Error{Category: category, Message: message}
}

// newFieldError creates a generic validation error for a single field rule
func newFieldError(format string, args ...interface{}) *Error {
	return &Error{Category: CategoryValidation, Message: fmt.Sprintf(format, args...)}
}

// TrimmedString trims surrounding whitespace from an optional string value.
func TrimmedString(value string) string {
	return strings.TrimSpace(value)
}

// Limit parses a list limit and clamps it into [MinLimit, MaxLimit].
// A value that does not parse as an integer is a validation error.
func Limit(raw string) (int, *Error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, newFieldError("limit must be a valid integer")
	}
	if v < constants.MinLimit {
		return constants.MinLimit, nil
	}
	if v > constants.MaxLimit {
		return constants.MaxLimit, nil
	}
	return v, nil
}

// Days parses a day count for summary windows. Negative values are rejected;
// there is no upper clamp.
func Days(raw string) (int, *Error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, newFieldError("days must be a valid integer")
	}
	if v < 0 {
		return 0, newFieldError("days must not be negative")
	}
	return v, nil
}

// Status lower-cases and checks a post status filter against the valid set.
func Status(raw string) (string, *Error) {
	status := strings.ToLower(strings.TrimSpace(raw))
	if !constants.ValidPostStatuses[status] {
		return "", newFieldError("status must be one of: %s",
			strings.Join(constants.PostStatusList, ", "))
	}
	return status, nil
}

// Featured maps the accepted tri-state spellings onto a boolean.
// Accepted (case-insensitive): true/1/yes and false/0/no.
func Featured(raw string) (bool, *Error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if constants.FeaturedTrueValues[value] {
		return true, nil
	}
	if constants.FeaturedFalseValues[value] {
		return false, nil
	}
	return false, newFieldError("featured must be one of: true, 1, yes, false, 0, no")
}

// isoDateLayouts are the accepted publication-date formats: a bare date or a
// datetime with optional offset. A trailing Z is the +00:00 UTC offset.
var isoDateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ISODate validates a publication-date filter and returns the trimmed
// original string; the collaborator receives the value as the client sent it.
func ISODate(field, raw string) (string, *Error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range isoDateLayouts {
		if _, err := time.Parse(layout, trimmed); err == nil {
			return trimmed, nil
		}
	}
	return "", newFieldError(
		"%s must be an ISO-8601 date (YYYY-MM-DD) or datetime (YYYY-MM-DDTHH:MM:SSZ)", field)
}

// PostID validates a post identifier path parameter.
func PostID(raw string) (string, *Error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", newFieldError("post_id must not be empty")
	}
	return trimmed, nil
}

// PostIDs trims each entry, drops blanks, and rejects an empty result.
func PostIDs(raw []string) ([]string, *Error) {
	ids := make([]string, 0, len(raw))
	for _, id := range raw {
		trimmed := strings.TrimSpace(id)
		if trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	if len(ids) == 0 {
		return nil, newFieldError("post_ids must contain at least one valid ID")
	}
	return ids, nil
}
