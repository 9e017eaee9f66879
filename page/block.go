// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package page

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type BlockType string

const (
	BlockSocials       BlockType = "socials"
	BlockLink          BlockType = "link"
	BlockShop          BlockType = "shop"
	BlockSearch        BlockType = "search"
	BlockText          BlockType = "text"
	BlockImage         BlockType = "image"
	BlockVideo         BlockType = "video"
	BlockButton        BlockType = "button"
	BlockImageCarousel BlockType = "image_carousel"
)

func (t BlockType) valid() bool {
	switch t {
	case BlockSocials, BlockLink, BlockShop, BlockSearch, BlockText,
		BlockImage, BlockVideo, BlockButton, BlockImageCarousel:
		return true
	}
	return false
}

type SocialPlatform string

const (
	Twitter   SocialPlatform = "twitter"
	Instagram SocialPlatform = "instagram"
	GitHub    SocialPlatform = "github"
	Telegram  SocialPlatform = "telegram"
	LinkedIn  SocialPlatform = "linkedin"
	Facebook  SocialPlatform = "facebook"
	TikTok    SocialPlatform = "tiktok"
	YouTube   SocialPlatform = "youtube"
	Threads   SocialPlatform = "threads"
)

func (p SocialPlatform) valid() bool {
	switch p {
	case Twitter, Instagram, GitHub, Telegram, LinkedIn, Facebook, TikTok, YouTube, Threads:
		return true
	}
	return false
}

type SocialLink struct {
	ID       string         `json:"id"`
	Platform SocialPlatform `json:"platform"`
	URL      string         `json:"url"`
}

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
}

type CarouselImage struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ButtonStyle is the look of a button block. Type is one of "fill",
// "image", or "gradient".
type ButtonStyle struct {
	Type               string       `json:"type"`
	BackgroundColor    string       `json:"backgroundColor,omitempty"`
	TextColor          string       `json:"textColor,omitempty"`
	ImageURL           string       `json:"imageUrl,omitempty"`
	GradientStartColor string       `json:"gradientStartColor,omitempty"`
	GradientEndColor   string       `json:"gradientEndColor,omitempty"`
	GradientAngle      *float64     `json:"gradientAngle,omitempty"`
	Hover              *ButtonHover `json:"hover,omitempty"`
}

type ButtonHover struct {
	Shadow          string `json:"shadow,omitempty"` // none, sm, md, lg, glow
	GlowColor       string `json:"glowColor,omitempty"`
	Scale           string `json:"scale,omitempty"` // none, sm, md
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// Block is one element of the page. Type selects which of the remaining
// fields are meaningful; the JSON form only carries the fields of its type.
type Block struct {
	ID           string
	Type         BlockType
	CustomCSS    string
	CustomStyles string

	Title    string          // link, shop, search
	URL      string          // link, image, video, button
	Clicks   int             // link, button
	Content  string          // text
	Caption  string          // image
	Text     string          // button
	Style    *ButtonStyle    // button
	Links    []SocialLink    // socials
	Products []Product       // shop
	Images   []CarouselImage // image_carousel
}

// NewBlock returns a block of type t filled with starter content and a
// fresh random id.
func NewBlock(t BlockType) (Block, error) {
	b := Block{ID: uuid.NewString(), Type: t}
	switch t {
	case BlockLink:
		b.Title = "Новая ссылка"
	case BlockShop:
		b.Title = "Мой магазин"
		b.Products = []Product{}
	case BlockSearch:
		b.Title = "Поиск в реальном времени"
	case BlockText:
		b.Content = "Введите здесь свой текст..."
	case BlockImage, BlockVideo:
	case BlockButton:
		b.Text = "Нажми меня"
		b.Style = &ButtonStyle{
			Type:            "fill",
			BackgroundColor: "#6366f1",
			TextColor:       "#ffffff",
			Hover:           &ButtonHover{Shadow: "none", Scale: "none", BackgroundColor: "#4f46e5"},
		}
	case BlockImageCarousel:
		b.Images = []CarouselImage{}
	case BlockSocials:
		b.Links = []SocialLink{}
	default:
		return Block{}, fmt.Errorf("%w: unknown block type %q", ErrInvalid, t)
	}
	return b, nil
}

type blockHeader struct {
	ID           string    `json:"id"`
	Type         BlockType `json:"type"`
	CustomCSS    string    `json:"customCss,omitempty"`
	CustomStyles string    `json:"customStyles,omitempty"`
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (b Block) MarshalJSON() ([]byte, error) {
	h := blockHeader{ID: b.ID, Type: b.Type, CustomCSS: b.CustomCSS, CustomStyles: b.CustomStyles}
	var v interface{}
	switch b.Type {
	case BlockSocials:
		v = struct {
			blockHeader
			Links []SocialLink `json:"links"`
		}{h, orEmpty(b.Links)}
	case BlockLink:
		v = struct {
			blockHeader
			Title  string `json:"title"`
			URL    string `json:"url"`
			Clicks int    `json:"clicks"`
		}{h, b.Title, b.URL, b.Clicks}
	case BlockShop:
		v = struct {
			blockHeader
			Title    string    `json:"title"`
			Products []Product `json:"products"`
		}{h, b.Title, orEmpty(b.Products)}
	case BlockSearch:
		v = struct {
			blockHeader
			Title string `json:"title"`
		}{h, b.Title}
	case BlockText:
		v = struct {
			blockHeader
			Content string `json:"content"`
		}{h, b.Content}
	case BlockImage:
		v = struct {
			blockHeader
			URL     string `json:"url"`
			Caption string `json:"caption"`
		}{h, b.URL, b.Caption}
	case BlockVideo:
		v = struct {
			blockHeader
			URL string `json:"url"`
		}{h, b.URL}
	case BlockButton:
		v = struct {
			blockHeader
			Text   string       `json:"text"`
			URL    string       `json:"url"`
			Clicks int          `json:"clicks"`
			Style  *ButtonStyle `json:"style"`
		}{h, b.Text, b.URL, b.Clicks, b.Style}
	case BlockImageCarousel:
		v = struct {
			blockHeader
			Images []CarouselImage `json:"images"`
		}{h, orEmpty(b.Images)}
	default:
		return nil, fmt.Errorf("%w: unknown block type %q", ErrInvalid, b.Type)
	}
	return json.Marshal(v)
}

// UnmarshalJSON accepts any block type. Unknown types are left for
// Validate to reject.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw struct {
		blockHeader
		Title    string          `json:"title"`
		URL      string          `json:"url"`
		Clicks   int             `json:"clicks"`
		Content  string          `json:"content"`
		Caption  string          `json:"caption"`
		Text     string          `json:"text"`
		Style    *ButtonStyle    `json:"style"`
		Links    []SocialLink    `json:"links"`
		Products []Product       `json:"products"`
		Images   []CarouselImage `json:"images"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*b = Block{
		ID:           raw.ID,
		Type:         raw.Type,
		CustomCSS:    raw.CustomCSS,
		CustomStyles: raw.CustomStyles,
		Title:        raw.Title,
		URL:          raw.URL,
		Clicks:       raw.Clicks,
		Content:      raw.Content,
		Caption:      raw.Caption,
		Text:         raw.Text,
		Style:        raw.Style,
		Links:        raw.Links,
		Products:     raw.Products,
		Images:       raw.Images,
	}
	return nil
}
