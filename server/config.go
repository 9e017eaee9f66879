// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package server

import (
	"fmt"
	"os"

	"github.com/dsnet/golib/unitconv"
	"sigs.k8s.io/yaml"
)

// Config configures a Server. It is usually loaded from a YAML file:
//
//	addr: ":8080"
//	baseURL: "https://example.com/"
//	maxBody: 64Ki
//	rate: 10
//	burst: 20
//	storeDir: /var/lib/pagelink
type Config struct {
	Addr     string  `json:"addr"`
	BaseURL  string  `json:"baseURL"`  // Prefix of generated share links
	MaxBody  string  `json:"maxBody"`  // Request body limit, with an optional SI or IEC prefix
	Rate     float64 `json:"rate"`     // Requests per second across all clients
	Burst    int64   `json:"burst"`    // Bucket capacity; defaults to the rate
	StoreDir string  `json:"storeDir"` // Empty keeps documents in memory
}

// DefaultConfig returns the configuration used for unset fields.
func DefaultConfig() Config {
	return Config{
		Addr:    ":8080",
		BaseURL: "http://localhost:8080/",
		MaxBody: "64Ki",
		Rate:    10,
	}
}

// LoadConfig reads a YAML configuration file. Fields that the file leaves
// unset keep their default values.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(file)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return cfg, fmt.Errorf("server: config %s: %w", file, err)
	}
	return cfg, cfg.check()
}

func (c Config) maxBody() (int64, error) {
	f, err := unitconv.ParsePrefix(c.MaxBody, unitconv.AutoParse)
	if err != nil {
		return 0, fmt.Errorf("server: invalid maxBody %q: %w", c.MaxBody, err)
	}
	if f < 1 {
		return 0, fmt.Errorf("server: invalid maxBody %q", c.MaxBody)
	}
	return int64(f), nil
}

func (c Config) burst() int64 {
	if c.Burst > 0 {
		return c.Burst
	}
	if b := int64(c.Rate); b > 0 {
		return b
	}
	return 1
}

func (c Config) check() error {
	if _, err := c.maxBody(); err != nil {
		return err
	}
	if c.Rate <= 0 {
		return fmt.Errorf("server: rate must be positive, got %v", c.Rate)
	}
	return nil
}
