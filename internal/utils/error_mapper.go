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

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ghost-blog-smart-api/src/internal/client/ghostsmart"
	"ghost-blog-smart-api/src/internal/validation"

	"github.com/go-playground/validator/v10"
)

// InternalErrorLabel is the envelope error label for unexpected failures
const InternalErrorLabel = "Internal server error"

// formatValidationError converts ValidationErrors to user-friendly messages
func formatValidationError(validationErrors validator.ValidationErrors) string {
	var messages []string
	for _, fieldError := range validationErrors {
		fieldName := getUserFriendlyFieldName(fieldError.Field())
		message := getValidationErrorMessage(fieldName, fieldError.Tag(), fieldError.Param())
		messages = append(messages, message)
	}
	return strings.Join(messages, "; ")
}

// getUserFriendlyFieldName maps struct field names to user-friendly field names
func getUserFriendlyFieldName(fieldName string) string {
	fieldMap := map[string]string{
		"BaseURL":    "base URL",
		"APIKey":     "API key",
		"HeaderName": "header name",
		"PostIDs":    "post_ids",
	}

	if friendly, exists := fieldMap[fieldName]; exists {
		return friendly
	}
	return strings.ToLower(fieldName)
}

// getValidationErrorMessage creates user-friendly validation error messages
func getValidationErrorMessage(fieldName, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", fieldName)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fieldName, param)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fieldName, param)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fieldName)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fieldName)
	}
}

// GetErrorResponse maps every failure produced while serving a request onto
// an HTTP status and an error envelope:
//
//   - *validation.Error: client input rejected before any delegate call, 400
//   - validator.ValidationErrors: struct-level binding failures, 400
//   - *ghostsmart.OperationError: collaborator reported failure; a message
//     containing "not found" (case-insensitive) selects 404, everything else 400
//   - anything else (bridge transport error, decode failure): 500, logged
//     server-side with the failing operation name
func GetErrorResponse(operation string, err error) (int, Envelope) {
	var validationErr *validation.Error
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, NewErrorEnvelope(validationErr.Category, validationErr.Message)
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return http.StatusBadRequest, NewErrorEnvelope(validation.CategoryValidation,
			formatValidationError(validationErrors))
	}

	var operationErr *ghostsmart.OperationError
	if errors.As(err, &operationErr) {
		status := http.StatusBadRequest
		// The collaborator returns no structured error kind; the 404 class is
		// inferred from its message text to match the existing API exactly.
		if strings.Contains(strings.ToLower(operationErr.Message), "not found") {
			status = http.StatusNotFound
		}
		return status, NewErrorEnvelope(operationErr.Category, operationErr.Message)
	}

	LogErrorWithOperation(operation, err)
	return http.StatusInternalServerError, NewErrorEnvelope(InternalErrorLabel, err.Error())
}
