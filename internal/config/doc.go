// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. A .env file in the working directory (never overrides variables that
//     are already set in the process environment)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON config file (comments and trailing commas are allowed)
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line API client.
package config
