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

package utils

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// InitLogger sets the global log level from configuration. Unknown levels
// fall back to info.
func InitLogger(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)
	logger = logger.Level(parsed)
}

// LogError logs an error with a message
func LogError(message string, err error) {
	if err != nil {
		logger.Error().Err(err).Msg(message)
	}
}

// LogErrorWithOperation logs an error together with the collaborator
// operation that failed. Credential values must never reach this function.
func LogErrorWithOperation(operation string, err error) {
	if err != nil {
		logger.Error().Str("operation", operation).Err(err).Msg("operation failed")
	}
}

// LogInfo logs informational messages
func LogInfo(message string) {
	logger.Info().Msg(message)
}

// LogWarning logs warning messages
func LogWarning(message string) {
	logger.Warn().Msg(message)
}
