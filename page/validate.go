// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package page

import "fmt"

// Validate checks that the required sections are present and that every
// block is well formed. The returned error wraps ErrInvalid.
func (d *Document) Validate() error {
	switch {
	case d.Profile == nil:
		return invalidf("missing profile")
	case d.Blocks == nil:
		return invalidf("missing blocks")
	case d.SeoConfig == nil:
		return invalidf("missing seoConfig")
	}
	if c := d.ChatbotProfile; c != nil {
		switch c.Type {
		case "", ChatbotPerson, ChatbotCompany:
		default:
			return invalidf("unknown chatbot type %q", c.Type)
		}
	}

	seen := make(map[string]bool, len(d.Blocks))
	for i, b := range d.Blocks {
		if b.ID == "" {
			return invalidf("block %d: missing id", i)
		}
		if seen[b.ID] {
			return invalidf("block %d: duplicate id %q", i, b.ID)
		}
		seen[b.ID] = true
		if err := b.validate(); err != nil {
			return invalidf("block %q: %v", b.ID, err)
		}
	}
	return nil
}

func (b *Block) validate() error {
	if !b.Type.valid() {
		return fmt.Errorf("unknown type %q", b.Type)
	}
	switch b.Type {
	case BlockSocials:
		for _, l := range b.Links {
			if !l.Platform.valid() {
				return fmt.Errorf("unknown platform %q", l.Platform)
			}
		}
	case BlockButton:
		if b.Style == nil {
			return fmt.Errorf("missing style")
		}
		switch b.Style.Type {
		case "fill", "image", "gradient":
		default:
			return fmt.Errorf("unknown style type %q", b.Style.Type)
		}
	}
	if b.Clicks < 0 {
		return fmt.Errorf("negative click count")
	}
	return nil
}

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
