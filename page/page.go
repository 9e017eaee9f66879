// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package page models the page-configuration document that is shared through
// links and persisted per user.
package page

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "page: " + string(e) }

// ErrInvalid reports a document that fails validation. Errors returned by
// Validate wrap it with the details.
var ErrInvalid error = Error("invalid document")

// Document is the whole page configuration.
// Profile, Blocks, and SeoConfig are required; the others may be absent.
type Document struct {
	Profile        *Profile        `json:"profile"`
	Blocks         []Block         `json:"blocks"`
	ChatbotProfile *ChatbotProfile `json:"chatbotProfile"`
	ChatbotEnabled bool            `json:"chatbotEnabled"`
	SeoConfig      *SeoConfig      `json:"seoConfig"`
}

type Profile struct {
	AvatarURL     string `json:"avatarUrl"`
	Username      string `json:"username"`
	Bio           string `json:"bio"`
	Handle        string `json:"handle,omitempty"`
	AvatarFrameID string `json:"avatarFrameId,omitempty"`
}

// ChatbotType is the kind of entity the chatbot speaks for.
type ChatbotType string

const (
	ChatbotPerson  ChatbotType = "person"
	ChatbotCompany ChatbotType = "company"
)

type ChatbotProfile struct {
	Type           ChatbotType `json:"type"`
	Name           string      `json:"name"`
	Details        string      `json:"details"`
	AdditionalInfo string      `json:"additionalInfo"`
}

type SeoConfig struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Find returns the index of the block with the given id, or -1.
func (d *Document) Find(id string) int {
	for i, b := range d.Blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Add appends b to the end of the page.
func (d *Document) Add(b Block) {
	d.Blocks = append(d.Blocks, b)
}

// Remove deletes the block with the given id and reports whether it existed.
func (d *Document) Remove(id string) bool {
	i := d.Find(id)
	if i < 0 {
		return false
	}
	d.Blocks = append(d.Blocks[:i], d.Blocks[i+1:]...)
	return true
}
