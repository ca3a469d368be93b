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

// InsightsHandler serves the reporting-style endpoints: summary statistics,
// date-pattern search, and batch detail retrieval.
type InsightsHandler struct {
	insightsService *service.InsightsService
	credentials     config.GhostCredentials
}

// NewInsightsHandler creates a new InsightsHandler
func NewInsightsHandler(insightsService *service.InsightsService,
	credentials config.GhostCredentials) *InsightsHandler {
	return &InsightsHandler{
		insightsService: insightsService,
		credentials:     credentials,
	}
}

// GetPostsSummary handles GET /api/posts/summary
func (h *InsightsHandler) GetPostsSummary(c *gin.Context) {
	query := service.SummaryQuery{
		Days:   c.Query("days"),
		Status: c.Query("status"),
	}

	result, err := h.insightsService.GetPostsSummary(c.Request.Context(), query,
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpGetPostsSummary, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// FindPostsByDatePattern handles GET /api/posts/search/by-date-pattern
func (h *InsightsHandler) FindPostsByDatePattern(c *gin.Context) {
	query := service.DatePatternQuery{
		Pattern: c.Query("pattern"),
		Limit:   c.Query("limit"),
	}

	result, err := h.insightsService.FindPostsByDatePattern(c.Request.Context(), query,
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpFindPostsByDatePattern, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// BatchGetPostDetails handles POST /api/posts/batch-details
func (h *InsightsHandler) BatchGetPostDetails(c *gin.Context) {
	body, ok := bindJSONBody(c)
	if !ok {
		return
	}

	result, err := h.insightsService.BatchGetPostDetails(c.Request.Context(), body,
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpBatchGetPostDetails, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// RegisterRoutes registers the insights routes
func (h *InsightsHandler) RegisterRoutes(r *gin.Engine) {
	postGroup := r.Group("/api/posts")
	{
		postGroup.GET("/summary", h.GetPostsSummary)
		postGroup.GET("/search/by-date-pattern", h.FindPostsByDatePattern)
		postGroup.POST("/batch-details", h.BatchGetPostDetails)
	}
}
