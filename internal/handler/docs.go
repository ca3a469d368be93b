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

package handler

import (
	"context"
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
)

//go:embed openapi.yaml
var openapiSpec []byte

// DocsHandler serves the service's own OpenAPI description. The embedded
// document is parsed and validated once at startup so a broken spec fails
// the process instead of the first request.
type DocsHandler struct {
	doc *openapi3.T
}

// NewDocsHandler parses and validates the embedded OpenAPI document
func NewDocsHandler() (*DocsHandler, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiSpec)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}
	return &DocsHandler{doc: doc}, nil
}

// GetOpenAPIDocument handles GET /openapi.json
func (h *DocsHandler) GetOpenAPIDocument(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.JSON(http.StatusOK, h.doc)
}

// RegisterRoutes registers the docs route
func (h *DocsHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/openapi.json", h.GetOpenAPIDocument)
}
