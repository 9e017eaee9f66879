// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package page

// Default returns a new copy of the starter page shown to users who have not
// built or loaded a page of their own.
func Default() *Document {
	return &Document{
		Profile: &Profile{
			AvatarURL: "https://picsum.photos/128",
			Username:  "@elazart",
			Bio:       "Добро пожаловать! Все мои ссылки и проекты ниже.",
		},
		Blocks: []Block{{
			ID:   "socials-1",
			Type: BlockSocials,
			Links: []SocialLink{
				{ID: "s1", Platform: Twitter, URL: "https://x.com/google"},
				{ID: "s2", Platform: GitHub, URL: "https://github.com/google"},
				{ID: "s3", Platform: Instagram, URL: "https://instagram.com/google"},
			},
		}, {
			ID:     "1",
			Type:   BlockLink,
			Title:  "Мое портфолио",
			URL:    "https://example.com",
			Clicks: 102,
		}, {
			ID:      "text-1",
			Type:    BlockText,
			Content: "Я Frontend-разработчик и создатель цифровых продуктов. Здесь вы найдете все мои проекты, ссылки и продукты.",
		}, {
			ID:   "carousel-1",
			Type: BlockImageCarousel,
			Images: []CarouselImage{
				{ID: "c1", URL: "https://images.unsplash.com/photo-1606240724602-5b21f894590c?q=80&w=800"},
				{ID: "c2", URL: "https://images.unsplash.com/photo-1593349480503-685d1a4a4f36?q=80&w=800"},
				{ID: "c3", URL: "https://images.unsplash.com/photo-1617053315000-22f275e7a25c?q=80&w=800"},
			},
		}, {
			ID:     "button-1",
			Type:   BlockButton,
			Text:   "Связаться со мной",
			URL:    "mailto:example@example.com",
			Clicks: 42,
			Style: &ButtonStyle{
				Type:            "fill",
				BackgroundColor: "#818cf8",
				TextColor:       "#ffffff",
				Hover:           &ButtonHover{Shadow: "lg", Scale: "sm", BackgroundColor: "#6366f1"},
			},
		}, {
			ID:    "3",
			Type:  BlockShop,
			Title: "Мои цифровые продукты",
			Products: []Product{{
				ID:          "p1",
				Name:        `Книга "Искусство кода"`,
				Price:       19.99,
				Description: "Глубокое погружение в мастерство разработки.",
				ImageURL:    "https://picsum.photos/seed/product1/400",
			}, {
				ID:          "p2",
				Name:        "UI Kit Pro",
				Price:       49.00,
				Description: "Ускорьте свой рабочий процесс.",
				ImageURL:    "https://picsum.photos/seed/product2/400",
			}},
		}},
		ChatbotProfile: &ChatbotProfile{
			Type:           ChatbotPerson,
			Name:           "Elazart",
			Details:        "Frontend-разработчик и создатель цифровых продуктов. Я специализируюсь на создании красивых и функциональных пользовательских интерфейсов с использованием React и TypeScript.",
			AdditionalInfo: `Я автор книги "Искусство кода" и создатель "UI Kit Pro", которые вы можете найти в моем магазине на этой странице. Также я веду блог о веб-разработке и делюсь своими проектами на GitHub.`,
		},
		ChatbotEnabled: true,
		SeoConfig: &SeoConfig{
			Title:       "@elazart | Личная страница",
			Description: "Добро пожаловать на мою личную страницу! Здесь вы найдете все мои проекты, ссылки и продукты.",
			Keywords:    []string{"личная страница", "портфолио", "проекты", "elazart"},
		},
	}
}
