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
	"ghost-blog-smart-api/src/internal/client/ghostsmart"
	"ghost-blog-smart-api/src/internal/constants"
	"ghost-blog-smart-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

// resolveCredentials builds the per-request credential bundle: a dedicated
// request header wins over the process-wide environment default, and a key
// with neither source is omitted entirely. The bundle is rebuilt on every
// request and never logged.
func resolveCredentials(c *gin.Context, defaults config.GhostCredentials) ghostsmart.Credentials {
	return ghostsmart.Credentials{
		GhostAdminAPIKey: headerOrDefault(c, constants.GhostAPIKeyHeader, defaults.GhostAdminAPIKey),
		GhostAPIURL:      headerOrDefault(c, constants.GhostAPIURLHeader, defaults.GhostAPIURL),
		GeminiAPIKey:     headerOrDefault(c, constants.GeminiAPIKeyHeader, defaults.GeminiAPIKey),
		ReplicateAPIKey:  headerOrDefault(c, constants.ReplicateAPIKeyHeader, defaults.ReplicateAPIKey),
	}
}

// headerOrDefault reads a request header, falling back to the configured
// environment default when the header is absent
func headerOrDefault(c *gin.Context, header, fallback string) string {
	if value := c.GetHeader(header); value != "" {
		return value
	}
	return fallback
}

// bindJSONBody decodes a JSON object body into a map, treating an absent
// body as an empty object. A malformed body short-circuits with a 400
// envelope; the second return value reports whether to continue.
func bindJSONBody(c *gin.Context) (map[string]interface{}, bool) {
	body := map[string]interface{}{}
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest,
				utils.NewErrorEnvelope("Bad Request", "Request body must be valid JSON"))
			return nil, false
		}
	}
	return body, true
}
