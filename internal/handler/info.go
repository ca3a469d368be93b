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
	"net/http"

	"ghost-blog-smart-api/src/internal/dto"
	"ghost-blog-smart-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

// InfoHandler serves the unauthenticated service-description endpoints
type InfoHandler struct{}

// NewInfoHandler creates a new InfoHandler
func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

// GetInfo handles GET /
func (h *InfoHandler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(dto.NewAPIInfo()))
}

// GetHealth handles GET /health
func (h *InfoHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(dto.NewHealthStatus()))
}

// RegisterRoutes registers the info routes
func (h *InfoHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.GetInfo)
	r.GET("/health", h.GetHealth)
}
