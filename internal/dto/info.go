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

package dto

// APIInfo is the static payload served at the root endpoint
type APIInfo struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Features    []string          `json:"features"`
	Endpoints   map[string]string `json:"endpoints"`
}

// HealthStatus is the static payload served at the health endpoint
type HealthStatus struct {
	Status   string          `json:"status"`
	Uptime   string          `json:"uptime"`
	Features map[string]bool `json:"features"`
}

// NewAPIInfo returns the service self-description
func NewAPIInfo() APIInfo {
	return APIInfo{
		Name:        "Ghost Blog Smart API",
		Version:     "1.0.0",
		Description: "REST API for Ghost CMS blog management with AI-powered features",
		Features: []string{
			"Smart blog creation with AI enhancement",
			"Dual image generation (Flux + Imagen)",
			"Comprehensive blog management",
			"Batch operations",
			"Multi-language support",
		},
		Endpoints: map[string]string{
			"health":        "/health",
			"posts":         "/api/posts",
			"smart_create":  "/api/smart-create",
			"documentation": "See README.md for full API documentation",
		},
	}
}

// NewHealthStatus returns the health payload
func NewHealthStatus() HealthStatus {
	return HealthStatus{
		Status: "healthy",
		Uptime: "running",
		Features: map[string]bool{
			"ghost_integration": true,
			"ai_enhancement":    true,
			"image_generation":  true,
		},
	}
}
