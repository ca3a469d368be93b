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

package service

import (
	"context"
	"strings"

	"ghost-blog-smart-api/src/internal/client/ghostsmart"
	"ghost-blog-smart-api/src/internal/constants"
	"ghost-blog-smart-api/src/internal/validation"
)

const categorySmartCreateFailed = "Smart blog creation failed"

// SmartCreateService fronts the AI smart gateway operation
type SmartCreateService struct {
	gateway ghostsmart.Gateway
}

// NewSmartCreateService creates a new SmartCreateService backed by the
// given gateway
func NewSmartCreateService(gateway ghostsmart.Gateway) *SmartCreateService {
	return &SmartCreateService{gateway: gateway}
}

// SmartCreate validates the natural-language request body and delegates to
// the smart gateway. The gateway reports its failure detail under the
// response key rather than message.
func (s *SmartCreateService) SmartCreate(ctx context.Context, body map[string]interface{},
	creds ghostsmart.Credentials) (*ghostsmart.Result, error) {
	userInput := strings.TrimSpace(stringField(body, "user_input"))
	if userInput == "" {
		return nil, validation.NewError(validation.CategoryMissingField,
			"user_input is required")
	}
	body["user_input"] = userInput
	if err := validateOptionalBodyFields(body); err != nil {
		return nil, err
	}

	params := ghostsmart.Params(body)
	creds.Apply(params)

	result, err := s.gateway.SmartCreate(ctx, params)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, ghostsmart.NewOperationError(constants.OpSmartCreate,
			categorySmartCreateFailed, result.GatewayFailureDetail(defaultUnknownError))
	}
	return result, nil
}
