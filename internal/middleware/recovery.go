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

package middleware

import (
	"fmt"
	"net/http"

	"ghost-blog-smart-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

// Recovery converts a handler panic into a well-formed 500 envelope so a
// single request's failure never crashes the process. The panic value is
// logged server-side with the request's correlation ID; the response never
// carries a stack trace.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				utils.LogError(
					fmt.Sprintf("panic recovered while handling request %s", GetRequestID(c)),
					fmt.Errorf("%v", recovered))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					utils.NewErrorEnvelope("Internal Server Error",
						"An unexpected error occurred"))
			}
		}()
		c.Next()
	}
}
