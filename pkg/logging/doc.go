// Copyright (c) 2026, the verkit authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides structured logging utilities for verkit components.
//
// # Overview
//
// This package wraps the standard library slog package with verkit-specific
// defaults and conventions for consistent logging across the CLI and library
// helpers. It supports environment-based log level configuration, module and
// version context injection, and automatic source location tracking for debug
// logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("verkit", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("parsing version", "input", "v1.2.3")
//	    slog.Error("parse failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("verkit", "v1.0.0", "debug")
//	logger.Info("policy loaded", "path", policyPath)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("verkit", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is supplied:
//
//	LOG_LEVEL=debug verkit parse "release 1.2.3"
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "parsing version",
//	    "module": "verkit",
//	    "version": "v1.0.0",
//	    "input": "v1.2.3"
//	}
//
// Debug logs additionally include source location.
package logging
