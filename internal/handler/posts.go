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

// PostHandler serves the post-management endpoints
type PostHandler struct {
	postService *service.PostService
	credentials config.GhostCredentials
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *service.PostService, credentials config.GhostCredentials) *PostHandler {
	return &PostHandler{
		postService: postService,
		credentials: credentials,
	}
}

// CreatePost handles POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	body, ok := bindJSONBody(c)
	if !ok {
		return
	}

	result, err := h.postService.CreatePost(c.Request.Context(), body,
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpCreatePost, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// ListPosts handles GET /api/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	query := service.ListPostsQuery{
		Limit:    c.Query("limit"),
		Status:   c.Query("status"),
		Featured: c.Query("featured"),
	}

	result, err := h.postService.ListPosts(c.Request.Context(), query,
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpGetPosts, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// ListPostsAdvanced handles GET /api/posts/advanced
func (h *PostHandler) ListPostsAdvanced(c *gin.Context) {
	query := service.AdvancedPostsQuery{
		Search:          c.Query("search"),
		Tag:             c.Query("tag"),
		Author:          c.Query("author"),
		Limit:           c.Query("limit"),
		Status:          c.Query("status"),
		Visibility:      c.Query("visibility"),
		PublishedAfter:  c.Query("published_after"),
		PublishedBefore: c.Query("published_before"),
	}

	result, err := h.postService.ListPostsAdvanced(c.Request.Context(), query,
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpGetPostsAdvanced, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// GetPostDetails handles GET /api/posts/:postId
func (h *PostHandler) GetPostDetails(c *gin.Context) {
	result, err := h.postService.GetPostDetails(c.Request.Context(), c.Param("postId"),
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpGetPostDetails, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// UpdatePost handles PUT and PATCH /api/posts/:postId
func (h *PostHandler) UpdatePost(c *gin.Context) {
	body, ok := bindJSONBody(c)
	if !ok {
		return
	}

	result, err := h.postService.UpdatePost(c.Request.Context(), c.Param("postId"), body,
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpUpdatePost, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// UpdatePostImage handles PUT /api/posts/:postId/image
func (h *PostHandler) UpdatePostImage(c *gin.Context) {
	body, ok := bindJSONBody(c)
	if !ok {
		return
	}

	result, err := h.postService.UpdatePostImage(c.Request.Context(), c.Param("postId"), body,
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpUpdatePostImage, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// DeletePost handles DELETE /api/posts/:postId
func (h *PostHandler) DeletePost(c *gin.Context) {
	result, err := h.postService.DeletePost(c.Request.Context(), c.Param("postId"),
		resolveCredentials(c, h.credentials))
	if err != nil {
		status, envelope := utils.GetErrorResponse(constants.OpDeletePost, err)
		c.JSON(status, envelope)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessEnvelope(result.Payload))
}

// RegisterRoutes registers all post-management routes
func (h *PostHandler) RegisterRoutes(r *gin.Engine) {
	postGroup := r.Group("/api/posts")
	{
		postGroup.POST("", h.CreatePost)
		postGroup.GET("", h.ListPosts)
		postGroup.GET("/advanced", h.ListPostsAdvanced)
		postGroup.GET("/:postId", h.GetPostDetails)
		postGroup.PUT("/:postId", h.UpdatePost)
		postGroup.PATCH("/:postId", h.UpdatePost)
		postGroup.PUT("/:postId/image", h.UpdatePostImage)
		postGroup.DELETE("/:postId", h.DeletePost)
	}
}
