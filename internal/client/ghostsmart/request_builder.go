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
)

// RequestBuilder provides a fluent API for building bridge requests
type RequestBuilder struct {
	client  *GhostSmartClient
	ctx     context.Context
	method  string
	url     string
	body    interface{}
	headers map[string]string
}

// NewRequest creates a new RequestBuilder for the given method and URL
func (c *GhostSmartClient) NewRequest(ctx context.Context, method, url string) *RequestBuilder {
	return &RequestBuilder{
		client:  c,
		ctx:     ctx,
		method:  method,
		url:     url,
		headers: make(map[string]string),
	}
}

// WithJSONBody sets the request body as JSON
func (rb *RequestBuilder) WithJSONBody(body interface{}) *RequestBuilder {
	rb.body = body
	return rb
}

// WithHeader adds a custom header to the request
func (rb *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	rb.headers[key] = value
	return rb
}

// Build creates the HTTP request with all configured options
func (rb *RequestBuilder) Build() (*http.Request, error) {
	req, err := rb.client.newJSONRequest(rb.ctx, rb.method, rb.url, rb.body)
	if err != nil {
		return nil, err
	}

	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	return req, nil
}
