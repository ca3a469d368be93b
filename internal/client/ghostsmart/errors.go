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

package ghostsmart

import "fmt"

// BridgeError represents a transport-level failure reaching the bridge
// service: network errors, unexpected statuses, undecodable bodies. It is
// the collaborator contract's "exception" branch and always maps to 500.
type BridgeError struct {
	Code       int    // HTTP status code from the bridge, 0 for network errors
	Message    string // Human-readable error message
	Underlying error  // Underlying error if any
}

// Error implements the error interface for BridgeError
func (e *BridgeError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("ghost-blog-smart bridge error (%d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("ghost-blog-smart bridge error: %s", e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *BridgeError) Unwrap() error {
	return e.Underlying
}

// NewBridgeError creates a new BridgeError
func NewBridgeError(code int, message string, underlying error) *BridgeError {
	return &BridgeError{
		Code:       code,
		Message:    message,
		Underlying: underlying,
	}
}

// OperationError represents a collaborator operation that completed but
// reported failure (success=false). Category is the short per-operation
// label surfaced in the envelope; Message is the collaborator's detail text,
// passed through untouched so status selection can inspect it.
type OperationError struct {
	Operation string
	Category  string
	Message   string
}

// Error implements the error interface for OperationError
func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// NewOperationError creates a new OperationError
func NewOperationError(operation, category, message string) *OperationError {
	return &OperationError{
		Operation: operation,
		Category:  category,
		Message:   message,
	}
}
