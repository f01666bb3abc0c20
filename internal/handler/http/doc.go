// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the JSON-over-HTTP transport of the tracker.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as session authentication, capability checks, request
// tracing, access logging and response compression are handled in this
// package before requests are delegated to the service layer.
package http
