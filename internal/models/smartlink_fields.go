package models

// SmartlinkFields редактируемые поля смартлинка. Используется и при создании, и при частичном обновлении:
// применяются только присутствующие поля, null обнуляет значение.
type SmartlinkFields struct {
	Title                Optional[*string]  `json:"title"`
	Description          Optional[*string]  `json:"description"`
	URL                  Optional[*string]  `json:"url"`
	LandingPageTitle     Optional[*string]  `json:"landing_page_title"`
	LandingPageSubtitle  Optional[*string]  `json:"landing_page_subtitle"`
	CoverImageURL        Optional[*string]  `json:"cover_image_url"`
	EmbedURL             Optional[*string]  `json:"embed_url"`
	LongDescription      Optional[*string]  `json:"long_description"`
	Platforms            Optional[Platforms] `json:"platforms"`
	SocialSharingEnabled Optional[*bool]    `json:"social_sharing_enabled"`
}

// DefaultSocialSharingEnabled значение флага для новых записей и для явного null.
const DefaultSocialSharingEnabled = true

// Apply переносит присутствующие поля в модель.
func (f *SmartlinkFields) Apply(m *Smartlink) {
	applyOptional(&m.Title, f.Title)
	applyOptional(&m.Description, f.Description)
	applyOptional(&m.URL, f.URL)
	applyOptional(&m.LandingPageTitle, f.LandingPageTitle)
	applyOptional(&m.LandingPageSubtitle, f.LandingPageSubtitle)
	applyOptional(&m.CoverImageURL, f.CoverImageURL)
	applyOptional(&m.EmbedURL, f.EmbedURL)
	applyOptional(&m.LongDescription, f.LongDescription)

	if f.Platforms.Set {
		if f.Platforms.Value == nil {
			m.Platforms = Platforms{}
		} else {
			m.Platforms = append(Platforms{}, f.Platforms.Value...)
		}
	}

	if f.SocialSharingEnabled.Set {
		if f.SocialSharingEnabled.Value == nil {
			m.SocialSharingEnabled = DefaultSocialSharingEnabled
		} else {
			m.SocialSharingEnabled = *f.SocialSharingEnabled.Value
		}
	}
}

func applyOptional[T any](dst *T, o Optional[T]) {
	if o.Set {
		*dst = o.Value
	}
}
