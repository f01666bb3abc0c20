// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package seed provides the default brand catalog inserted on first start.
//
// The catalog ships embedded in the binary; an operator may replace it with
// a YAML file of the same shape:
//
//	brands:
//	  - id: polar
//	    name: Polar Seltzer
//	    flavors: [Lime, Lemon]
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-seltzer-tracker/models"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultCatalog []byte

var ErrEmptyCatalog = errors.New("seed catalog has no brands")

type catalog struct {
	Brands []models.Brand `yaml:"brands"`
}

// Load returns the catalog stored at path, or the embedded default catalog
// when path is empty.
func Load(path string) ([]models.Brand, error) {
	if path == "" {
		return Defaults()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	brands, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	return brands, nil
}

// Defaults returns the embedded catalog.
func Defaults() ([]models.Brand, error) {
	return Parse(defaultCatalog)
}

// Parse decodes a YAML catalog. Unknown keys are rejected.
func Parse(data []byte) ([]models.Brand, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c catalog
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if len(c.Brands) == 0 {
		return nil, ErrEmptyCatalog
	}

	for i := range c.Brands {
		if c.Brands[i].Flavors == nil {
			c.Brands[i].Flavors = []string{}
		}
	}

	return c.Brands, nil
}
