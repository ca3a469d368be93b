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
	"errors"
	"testing"

	"ghost-blog-smart-api/src/internal/client/ghostsmart"
	"ghost-blog-smart-api/src/internal/validation"
)

func TestSmartCreateRequiresUserInput(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing", body: map[string]interface{}{}},
		{name: "blank", body: map[string]interface{}{"user_input": "   "}},
		{name: "non-string", body: map[string]interface{}{"user_input": 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &mockGateway{result: successResult()}
			svc := NewSmartCreateService(gateway)

			_, err := svc.SmartCreate(context.Background(), tt.body, ghostsmart.Credentials{})

			var validationErr *validation.Error
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if validationErr.Category != validation.CategoryMissingField {
				t.Errorf("category = %q, want %q", validationErr.Category, validation.CategoryMissingField)
			}
			if validationErr.Message != "user_input is required" {
				t.Errorf("message = %q", validationErr.Message)
			}
			if gateway.calls != 0 {
				t.Error("collaborator invoked for invalid input")
			}
		})
	}
}

// The smart gateway reports its failure detail under the response key.
func TestSmartCreateFailureReadsResponseKey(t *testing.T) {
	gateway := &mockGateway{result: &ghostsmart.Result{
		Success:  false,
		Message:  "ignored",
		Response: "Your request is not about a blog post",
		Payload: map[string]interface{}{
			"success":  false,
			"message":  "ignored",
			"response": "Your request is not about a blog post",
		},
	}}
	svc := NewSmartCreateService(gateway)

	_, err := svc.SmartCreate(context.Background(),
		map[string]interface{}{"user_input": "hello"}, ghostsmart.Credentials{})

	var operationErr *ghostsmart.OperationError
	if !errors.As(err, &operationErr) {
		t.Fatalf("expected operation error, got %v", err)
	}
	if operationErr.Category != "Smart blog creation failed" {
		t.Errorf("category = %q", operationErr.Category)
	}
	if operationErr.Message != "Your request is not about a blog post" {
		t.Errorf("message = %q, want the response key detail", operationErr.Message)
	}
}

func TestSmartCreateFailureDefaultsToUnknownError(t *testing.T) {
	gateway := &mockGateway{result: &ghostsmart.Result{
		Success: false,
		Payload: map[string]interface{}{"success": false},
	}}
	svc := NewSmartCreateService(gateway)

	_, err := svc.SmartCreate(context.Background(),
		map[string]interface{}{"user_input": "hello"}, ghostsmart.Credentials{})

	var operationErr *ghostsmart.OperationError
	if !errors.As(err, &operationErr) {
		t.Fatalf("expected operation error, got %v", err)
	}
	if operationErr.Message != "Unknown error" {
		t.Errorf("default message = %q", operationErr.Message)
	}
}

func TestSmartCreateTrimsUserInput(t *testing.T) {
	gateway := &mockGateway{result: successResult()}
	svc := NewSmartCreateService(gateway)

	body := map[string]interface{}{"user_input": "  write about Go  ", "preferred_language": "English"}
	if _, err := svc.SmartCreate(context.Background(), body, ghostsmart.Credentials{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gateway.lastParams["user_input"] != "write about Go" {
		t.Errorf("user_input = %v", gateway.lastParams["user_input"])
	}
	if gateway.lastParams["preferred_language"] != "English" {
		t.Error("passthrough key preferred_language dropped")
	}
}
