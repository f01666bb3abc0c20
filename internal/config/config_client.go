// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// CookieName is the name of the session cookie set by the server.
	CookieName string
}

// ClientConfig is the command-line client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration from
// defaults, .env, the environment and the global client flags found at the
// start of args.
//
// It returns the positional arguments left after flag parsing (the
// subcommand and its arguments).
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv()

	fs := flag.NewFlagSet("seltzer", flag.ContinueOnError)
	flagCfg, rest, err := parseClientFlags(fs, args)
	if err != nil {
		return nil, nil, err
	}
	b.configs = append(b.configs, flagCfg)

	cfg, err := b.merge()
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			CookieName:     cfg.Server.CookieName,
		},
	}

	return clientCfg, rest, clientCfg.validate()
}

// parseClientFlags parses the client-wide flags:
//
//	-a server base URL (e.g. http://localhost:5000)
//	-timeout request timeout (e.g. 10s)
func parseClientFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, []string, error) {
	var address string
	var timeout time.Duration

	fs.StringVar(&address, "a", "", "Server base URL")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: timeout,
		},
	}, fs.Args(), nil
}
