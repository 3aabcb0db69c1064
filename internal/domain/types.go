package domain

import (
	"time"
)

// Locale identifies one of the fixed set of supported storefront languages.
type Locale string

const (
	// LocaleEN is the default storefront locale.
	LocaleEN Locale = "en"
	// LocaleUK is the Ukrainian storefront locale.
	LocaleUK Locale = "uk"
	// LocaleRU is the Russian storefront locale.
	LocaleRU Locale = "ru"
)

// DefaultLocale is used whenever a requested locale is unsupported or absent.
const DefaultLocale = LocaleEN

// SupportedLocales lists every locale the storefront serves, default first.
func SupportedLocales() []Locale {
	return []Locale{LocaleEN, LocaleUK, LocaleRU}
}

// LocalizedText maps locales to translated copy for a single field.
type LocalizedText map[Locale]string

// Resolve returns the text for the requested locale, falling back to the
// default locale and finally to any non-empty supported value.
func (t LocalizedText) Resolve(locale Locale) string {
	if len(t) == 0 {
		return ""
	}
	if v, ok := t[locale]; ok && v != "" {
		return v
	}
	if v, ok := t[DefaultLocale]; ok && v != "" {
		return v
	}
	for _, l := range SupportedLocales() {
		if v, ok := t[l]; ok && v != "" {
			return v
		}
	}
	return ""
}

// ProductCategory enumerates the storefront catalog sections.
type ProductCategory string

const (
	// CategorySingingBowls covers hand-beaten and cast singing bowls.
	CategorySingingBowls ProductCategory = "singing-bowls"
	// CategoryBells covers ritual bells and tingshas.
	CategoryBells ProductCategory = "bells"
	// CategoryGongs covers flat and nipple gongs.
	CategoryGongs ProductCategory = "gongs"
	// CategoryAccessories covers mallets, cushions, and care items.
	CategoryAccessories ProductCategory = "accessories"
)

// KnownCategory reports whether the value is one of the catalog categories.
func KnownCategory(c ProductCategory) bool {
	switch c {
	case CategorySingingBowls, CategoryBells, CategoryGongs, CategoryAccessories:
		return true
	}
	return false
}

// Product is the read-only catalog entry supplied to the storefront core.
// The core never mutates products; prices are minor currency units.
type Product struct {
	ID             string
	SKU            string
	Name           LocalizedText
	Description    LocalizedText
	Price          int64
	Currency       string
	Category       ProductCategory
	Materials      []string
	Inventory      int
	IsFeatured     bool
	IsHandmade     bool
	ImageURL       string
	AudioSampleURL string
	VideoURL       string
	CreatedAt      time.Time
}

// InStock reports whether any inventory remains.
func (p Product) InStock() bool { return p.Inventory > 0 }

// ContentPostStatus marks the publication state of a blog post.
type ContentPostStatus string

const (
	// ContentPostPublished indicates the post is publicly visible.
	ContentPostPublished ContentPostStatus = "published"
	// ContentPostDraft indicates the post is hidden from public listings.
	ContentPostDraft ContentPostStatus = "draft"
)

// ContentPost is a localized blog entry served by the content surface.
type ContentPost struct {
	ID           string
	Slug         string
	Title        LocalizedText
	Summary      LocalizedText
	BodyMarkdown LocalizedText
	Author       string
	Tags         []string
	Status       ContentPostStatus
	PublishedAt  time.Time
}

// OrderStatus enumerates the lifecycle states the mock order surface reports.
type OrderStatus string

const (
	// OrderStatusPending indicates the order awaits payment confirmation.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed indicates payment was acknowledged.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusShipped indicates the order left the workshop.
	OrderStatusShipped OrderStatus = "shipped"
)
