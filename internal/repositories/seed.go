package repositories

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/himalayan-sound/api/internal/domain"
)

//go:embed seed/products.yaml seed/posts.yaml
var seedFS embed.FS

type seedProduct struct {
	ID             string            `yaml:"id"`
	SKU            string            `yaml:"sku"`
	Name           map[string]string `yaml:"name"`
	Description    map[string]string `yaml:"description"`
	Price          int64             `yaml:"price"`
	Currency       string            `yaml:"currency"`
	Category       string            `yaml:"category"`
	Materials      []string          `yaml:"materials"`
	Inventory      int               `yaml:"inventory"`
	Featured       bool              `yaml:"featured"`
	Handmade       bool              `yaml:"handmade"`
	ImageURL       string            `yaml:"imageUrl"`
	AudioSampleURL string            `yaml:"audioSampleUrl"`
	VideoURL       string            `yaml:"videoUrl"`
	CreatedAt      time.Time         `yaml:"createdAt"`
}

type seedPost struct {
	ID          string            `yaml:"id"`
	Slug        string            `yaml:"slug"`
	Title       map[string]string `yaml:"title"`
	Summary     map[string]string `yaml:"summary"`
	Body        map[string]string `yaml:"body"`
	Author      string            `yaml:"author"`
	Tags        []string          `yaml:"tags"`
	Status      string            `yaml:"status"`
	PublishedAt time.Time         `yaml:"publishedAt"`
}

// SeedProducts parses the embedded product catalog.
func SeedProducts() ([]domain.Product, error) {
	data, err := seedFS.ReadFile("seed/products.yaml")
	if err != nil {
		return nil, fmt.Errorf("seed: read products: %w", err)
	}
	var doc struct {
		Products []seedProduct `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("seed: parse products: %w", err)
	}
	products := make([]domain.Product, 0, len(doc.Products))
	for _, sp := range doc.Products {
		if sp.ID == "" {
			return nil, fmt.Errorf("seed: product with empty id")
		}
		category := domain.ProductCategory(sp.Category)
		if !domain.KnownCategory(category) {
			return nil, fmt.Errorf("seed: product %s has unknown category %q", sp.ID, sp.Category)
		}
		products = append(products, domain.Product{
			ID:             sp.ID,
			SKU:            sp.SKU,
			Name:           localizedText(sp.Name),
			Description:    localizedText(sp.Description),
			Price:          sp.Price,
			Currency:       sp.Currency,
			Category:       category,
			Materials:      sp.Materials,
			Inventory:      sp.Inventory,
			IsFeatured:     sp.Featured,
			IsHandmade:     sp.Handmade,
			ImageURL:       sp.ImageURL,
			AudioSampleURL: sp.AudioSampleURL,
			VideoURL:       sp.VideoURL,
			CreatedAt:      sp.CreatedAt,
		})
	}
	return products, nil
}

// SeedPosts parses the embedded blog catalog.
func SeedPosts() ([]domain.ContentPost, error) {
	data, err := seedFS.ReadFile("seed/posts.yaml")
	if err != nil {
		return nil, fmt.Errorf("seed: read posts: %w", err)
	}
	var doc struct {
		Posts []seedPost `yaml:"posts"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("seed: parse posts: %w", err)
	}
	posts := make([]domain.ContentPost, 0, len(doc.Posts))
	for _, sp := range doc.Posts {
		if sp.ID == "" || sp.Slug == "" {
			return nil, fmt.Errorf("seed: post with empty id or slug")
		}
		status := domain.ContentPostStatus(sp.Status)
		switch status {
		case domain.ContentPostPublished, domain.ContentPostDraft:
		default:
			return nil, fmt.Errorf("seed: post %s has unknown status %q", sp.ID, sp.Status)
		}
		posts = append(posts, domain.ContentPost{
			ID:           sp.ID,
			Slug:         sp.Slug,
			Title:        localizedText(sp.Title),
			Summary:      localizedText(sp.Summary),
			BodyMarkdown: localizedText(sp.Body),
			Author:       sp.Author,
			Tags:         sp.Tags,
			Status:       status,
			PublishedAt:  sp.PublishedAt,
		})
	}
	return posts, nil
}

func localizedText(m map[string]string) domain.LocalizedText {
	if len(m) == 0 {
		return nil
	}
	out := make(domain.LocalizedText, len(m))
	for k, v := range m {
		out[domain.Locale(k)] = v
	}
	return out
}
