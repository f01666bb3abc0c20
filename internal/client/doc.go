// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the seltzer tracker.
//
// [App] runs one subcommand per process against the server through an
// [adapter.ServerAdapter]. The session token obtained by register or login
// is kept by a [TokenStore] between runs.
package client
