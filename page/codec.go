// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package page

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"
)

// Marshal returns the compact JSON form of d, as embedded in share links.
func Marshal(d *Document) ([]byte, error) {
	return json.Marshal(d)
}

// MarshalIndent returns the indented JSON form of d, as written by exports.
func MarshalIndent(d *Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal parses a JSON document and validates it.
func Unmarshal(data []byte) (*Document, error) {
	d := new(Document)
	if err := json.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// MarshalYAML returns the YAML form of d.
func MarshalYAML(d *Document) ([]byte, error) {
	return yaml.Marshal(d)
}

// UnmarshalYAML parses a YAML document and validates it.
func UnmarshalYAML(data []byte) (*Document, error) {
	d := new(Document)
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
