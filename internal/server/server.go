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

package server

import (
	"net/http"
	"time"

	"ghost-blog-smart-api/src/config"
	"ghost-blog-smart-api/src/internal/client/ghostsmart"
	"ghost-blog-smart-api/src/internal/constants"
	"ghost-blog-smart-api/src/internal/handler"
	"ghost-blog-smart-api/src/internal/middleware"
	"ghost-blog-smart-api/src/internal/service"
	"ghost-blog-smart-api/src/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// gateSkipPaths are the endpoints served without the API-key gate
var gateSkipPaths = []string{"/", "/health", "/openapi.json"}

type Server struct {
	router *gin.Engine
}

// StartGhostBlogAPIServer creates a new server instance with all
// dependencies initialized
func StartGhostBlogAPIServer(cfg *config.Server) (*Server, error) {
	utils.InitLogger(cfg.LogLevel)

	// Initialize the bridge client for the ghost-blog-smart sidecar
	bridge, err := ghostsmart.NewGhostSmartClient(ghostsmart.Config{
		BaseURL:    cfg.Bridge.BaseURL,
		APIKey:     cfg.Bridge.APIKey,
		HeaderName: cfg.Bridge.HeaderName,
		Timeout:    time.Duration(cfg.Bridge.Timeout) * time.Second,
		MaxRetries: cfg.Bridge.MaxRetries,
	})
	if err != nil {
		return nil, err
	}

	// Initialize services
	postService := service.NewPostService(bridge)
	smartCreateService := service.NewSmartCreateService(bridge)
	insightsService := service.NewInsightsService(bridge)

	// Initialize handlers
	infoHandler := handler.NewInfoHandler()
	postHandler := handler.NewPostHandler(postService, cfg.GhostCredentials)
	smartCreateHandler := handler.NewSmartCreateHandler(smartCreateService, cfg.GhostCredentials)
	insightsHandler := handler.NewInsightsHandler(insightsService, cfg.GhostCredentials)
	docsHandler, err := handler.NewDocsHandler()
	if err != nil {
		return nil, err
	}

	// Setup router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())

	// Configure and apply CORS middleware first (before auth middleware)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{
		"Origin", "Content-Length", "Content-Type",
		constants.APIKeyHeader,
		constants.GhostAPIKeyHeader, constants.GhostAPIURLHeader,
		constants.GeminiAPIKeyHeader, constants.ReplicateAPIKeyHeader,
		middleware.RequestIDHeader,
	}
	router.Use(cors.New(corsConfig))

	// Configure and apply the API-key gate
	router.Use(middleware.APIKeyAuthMiddleware(middleware.AuthConfig{
		APIKey:    cfg.APIKey,
		SkipPaths: gateSkipPaths,
	}))

	// Register routes
	infoHandler.RegisterRoutes(router)
	postHandler.RegisterRoutes(router)
	smartCreateHandler.RegisterRoutes(router)
	insightsHandler.RegisterRoutes(router)
	docsHandler.RegisterRoutes(router)

	// Unknown routes answer with the standard envelope
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound,
			utils.NewErrorEnvelope("Not Found", "The requested resource was not found"))
	})

	if cfg.APIKey != "" {
		utils.LogInfo("API key protection: enabled")
	} else {
		utils.LogInfo("API key protection: disabled")
	}

	return &Server{router: router}, nil
}

// Start runs the HTTP server on the given address
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
