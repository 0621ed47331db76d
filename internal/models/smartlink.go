package models

import "time"

// SmartlinkIDLength длина идентификатора смартлинка.
const SmartlinkIDLength = 8

// Smartlink модель хранения смартлинка.
// Временные метки выставляет сервисный слой, автоматическое заполнение gorm отключено.
type Smartlink struct {
	ID                   string    `gorm:"primaryKey;size:8" json:"id"`
	Title                *string   `gorm:"size:255" json:"title"`
	Description          *string   `gorm:"type:text" json:"description"`
	URL                  *string   `gorm:"type:text" json:"url"`
	CreatedAt            time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt            time.Time `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
	Views                int64     `gorm:"not null" json:"views"`
	Clicks               int64     `gorm:"not null" json:"clicks"`
	LandingPageTitle     *string   `gorm:"size:255" json:"landing_page_title"`
	LandingPageSubtitle  *string   `gorm:"size:255" json:"landing_page_subtitle"`
	CoverImageURL        *string   `gorm:"type:text" json:"cover_image_url"`
	Platforms            Platforms `gorm:"type:text;not null" json:"platforms"`
	EmbedURL             *string   `gorm:"type:text" json:"embed_url"`
	LongDescription      *string   `gorm:"type:text" json:"long_description"`
	SocialSharingEnabled bool      `gorm:"not null" json:"social_sharing_enabled"`
}

// TableName имя таблицы.
func (Smartlink) TableName() string {
	return "smartlinks"
}

// LandingPage представление смартлинка для страницы-лендинга.
type LandingPage struct {
	ID                   string    `json:"id"`
	Title                *string   `json:"title"`
	Subtitle             *string   `json:"subtitle"`
	Description          *string   `json:"description"`
	URL                  *string   `json:"url"`
	CoverImageURL        *string   `json:"cover_image_url"`
	EmbedURL             *string   `json:"embed_url"`
	Platforms            Platforms `json:"platforms"`
	SocialSharingEnabled bool      `json:"social_sharing_enabled"`
	Views                int64     `json:"views"`
	Clicks               int64     `json:"clicks"`
}

// LandingPage строит представление лендинга. Незаданные (nil) заголовок и описание лендинга заменяются основными.
func (s *Smartlink) LandingPage() *LandingPage {
	platforms := s.Platforms
	if platforms == nil {
		platforms = Platforms{}
	}
	return &LandingPage{
		ID:                   s.ID,
		Title:                firstPresent(s.LandingPageTitle, s.Title),
		Subtitle:             s.LandingPageSubtitle,
		Description:          firstPresent(s.LongDescription, s.Description),
		URL:                  s.URL,
		CoverImageURL:        s.CoverImageURL,
		EmbedURL:             s.EmbedURL,
		Platforms:            platforms,
		SocialSharingEnabled: s.SocialSharingEnabled,
		Views:                s.Views,
		Clicks:               s.Clicks,
	}
}

// PlatformClick результат клика по платформе.
type PlatformClick struct {
	TotalClicks    int64
	PlatformClicks int64
	RedirectURL    string
}

// firstPresent первое заданное значение. Пустая строка считается заданной.
func firstPresent(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}
