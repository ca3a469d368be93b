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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, baseURL string) *GhostSmartClient {
	t.Helper()
	c, err := NewGhostSmartClient(Config{
		BaseURL: baseURL,
		APIKey:  "service-key",
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("NewGhostSmartClient: %v", err)
	}
	return c
}

func TestInvokeSendsOperationRequest(t *testing.T) {
	var gotPath, gotMethod, gotAPIKey, gotContentType, gotAccept string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotAPIKey = r.Header.Get(DefaultHeaderName)
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "post_id": "p1"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	result, err := c.CreatePost(context.Background(), Params{"title": "Hello", "content": "World"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %q", gotMethod)
	}
	if gotPath != "/api/operations/create_post" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAPIKey != "service-key" {
		t.Errorf("service API key header = %q", gotAPIKey)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotAccept != "application/json" {
		t.Errorf("accept header = %q", gotAccept)
	}
	if gotBody["title"] != "Hello" {
		t.Errorf("body title = %v", gotBody["title"])
	}
	if !result.Success {
		t.Error("result.Success = false")
	}
	if result.Payload["post_id"] != "p1" {
		t.Errorf("payload post_id = %v", result.Payload["post_id"])
	}
}

func TestInvokeExtractsFailureFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "message": "Post not found", "response": "no such post"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	result, err := c.GetPostDetails(context.Background(), Params{"post_id": "missing"})
	if err != nil {
		t.Fatalf("GetPostDetails: %v", err)
	}

	if result.Success {
		t.Error("result.Success = true for a reported failure")
	}
	if result.Message != "Post not found" {
		t.Errorf("Message = %q", result.Message)
	}
	if result.Response != "no such post" {
		t.Errorf("Response = %q", result.Response)
	}
	if result.FailureDetail("fallback") != "Post not found" {
		t.Error("FailureDetail should prefer message")
	}
	if result.GatewayFailureDetail("fallback") != "no such post" {
		t.Error("GatewayFailureDetail should prefer response")
	}
}

func TestInvokeUnexpectedStatusIsBridgeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such operation", http.StatusNotFound)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.GetPosts(context.Background(), nil)

	var bridgeErr *BridgeError
	if !errors.As(err, &bridgeErr) {
		t.Fatalf("expected bridge error, got %v", err)
	}
	if bridgeErr.Code != http.StatusNotFound {
		t.Errorf("code = %d", bridgeErr.Code)
	}
}

func TestInvokeUndecodableBodyIsBridgeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.DeletePost(context.Background(), Params{"post_id": "p1"})

	var bridgeErr *BridgeError
	if !errors.As(err, &bridgeErr) {
		t.Fatalf("expected bridge error, got %v", err)
	}
}

func TestInvokeUnreachableServiceIsBridgeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close() // nothing listens here anymore

	c := newTestClient(t, server.URL)
	_, err := c.GetPosts(context.Background(), nil)

	var bridgeErr *BridgeError
	if !errors.As(err, &bridgeErr) {
		t.Fatalf("expected bridge error, got %v", err)
	}
}

func TestNewGhostSmartClientValidation(t *testing.T) {
	if _, err := NewGhostSmartClient(Config{}); err == nil {
		t.Error("config without base URL accepted")
	}
	if _, err := NewGhostSmartClient(Config{BaseURL: "not a url"}); err == nil {
		t.Error("malformed base URL accepted")
	}

	c, err := NewGhostSmartClient(Config{BaseURL: "http://localhost:8000"})
	if err != nil {
		t.Fatalf("minimal config rejected: %v", err)
	}
	if c.cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout default not applied: %v", c.cfg.Timeout)
	}
	if c.headerName != DefaultHeaderName {
		t.Errorf("HeaderName default not applied: %q", c.headerName)
	}
}

func TestBuildURL(t *testing.T) {
	c := newTestClient(t, "http://localhost:8000/")

	tests := []struct {
		parts []string
		want  string
	}{
		{parts: []string{"api", "operations", "create_post"}, want: "http://localhost:8000/api/operations/create_post"},
		{parts: []string{"api/operations", "get_posts"}, want: "http://localhost:8000/api/operations/get_posts"},
		{parts: nil, want: "http://localhost:8000"},
	}
	for _, tt := range tests {
		if got := c.buildURL(tt.parts...); got != tt.want {
			t.Errorf("buildURL(%v) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}
