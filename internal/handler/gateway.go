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

	"ghost-blog-smart-api/src/config"
	"ghost-blog-smart-api/src/internal/constants"
	"ghost-blog-smart-api/src/internal/service"
	"ghost-blog-smart-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

// SmartCreateHandler serves the AI-assisted creation endpoint
type SmartCreateHandler struct {
	smartCreateService *service.SmartCreateService
	credentials        config.GhostCredentials
}

// NewSmartCreateHandler creates a new SmartCreateHandler
func NewSmartCreateHandler(smartCreateService *service.SmartCreateService,
	credentials config.GhostCredentials) *SmartCreateHandler {
	return &SmartCreateHandler{
		smartCreateService: smartCreateService,
		credentials:        credentials,
	}
}

// SmartCreate handles POST /api/smart-create
func (h *SmartCreateHandler) SmartCreate(c *gin.Context) {
	body, ok := bindJSONBody(c)
	if !ok {
		return
	}

	result, err := h.smartCreateService.SmartCreate(c.Request.Context(), body,
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpSmartCreate, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// RegisterRoutes registers the smart-create route
func (h *SmartCreateHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/smart-create", h.SmartCreate)
}
