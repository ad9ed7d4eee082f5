package entity

import (
	"encoding/json"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Media content types reported by the Shopify Admin API.
const (
	MediaTypeImage         = "IMAGE"
	MediaTypeVideo         = "VIDEO"
	MediaTypeExternalVideo = "EXTERNAL_VIDEO"
	MediaTypeModel3D       = "MODEL_3D"
)

// Inventory policies for selling a variant past zero stock.
const (
	InventoryPolicyDeny     = "DENY"
	InventoryPolicyContinue = "CONTINUE"
)

//nolint:gochecknoglobals
var descriptionPolicy = bluemonday.StrictPolicy()

// Product is one catalog item as exported from a vendor store.
type Product struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Handle          string     `json:"handle"`
	Description     string     `json:"description,omitempty"`
	DescriptionHTML string     `json:"descriptionHtml,omitempty"`
	ProductType     string     `json:"productType,omitempty"`
	Vendor          string     `json:"vendor,omitempty"`
	OnlineStoreURL  string     `json:"onlineStoreUrl,omitempty"`
	Tags            []string   `json:"tags"`
	Images          []Image    `json:"images"`
	FeaturedImage   *Image     `json:"featuredImage,omitempty"`
	Media           []Media    `json:"media,omitempty"`
	TotalInventory  *int       `json:"totalInventory,omitempty"`
	Variants        []*Variant `json:"variants"`
}

// Image is a product image. The feed accepts either a bare URL string or an
// object carrying the URL under one of the keys Shopify has used over time.
type Image struct {
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
}

// UnmarshalJSON accepts `"https://..."` as well as `{"url"|"src"|"originalSrc": ...}`.
func (img *Image) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		img.URL = raw

		return nil
	}

	var obj struct {
		URL         string `json:"url"`
		Src         string `json:"src"`
		OriginalSrc string `json:"originalSrc"`
		AltText     string `json:"altText"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	img.AltText = obj.AltText
	switch {
	case obj.URL != "":
		img.URL = obj.URL
	case obj.Src != "":
		img.URL = obj.Src
	default:
		img.URL = obj.OriginalSrc
	}

	return nil
}

// Media is a non-image (or image) media attachment on a product.
type Media struct {
	MediaContentType string `json:"mediaContentType"`
	URL              string `json:"url,omitempty"`
}

// PlainDescription returns the product description as plain text. The plain
// description wins; otherwise descriptionHtml is stripped of all markup.
func (p *Product) PlainDescription() string {
	if p == nil {
		return ""
	}

	if text := strings.TrimSpace(p.Description); text != "" {
		return text
	}

	if p.DescriptionHTML == "" {
		return ""
	}

	stripped := descriptionPolicy.Sanitize(p.DescriptionHTML)

	return strings.Join(strings.Fields(html.UnescapeString(stripped)), " ")
}

// TagValue returns the value of the first `key:value` tag whose key matches
// (case-insensitive). Keys are compared after trimming and with spaces
// folded to underscores, so "Age Group:kids" matches "age_group".
func (p *Product) TagValue(key string) (string, bool) {
	if p == nil {
		return "", false
	}

	want := normalizeKey(key)
	for _, tag := range p.Tags {
		k, v, ok := strings.Cut(tag, ":")
		if !ok {
			continue
		}
		if normalizeKey(k) != want {
			continue
		}
		if v = strings.TrimSpace(v); v != "" {
			return v, true
		}
	}

	return "", false
}

// MainImageURL returns the featured image URL, falling back to the first image.
func (p *Product) MainImageURL() string {
	if p == nil {
		return ""
	}

	if p.FeaturedImage != nil && strings.TrimSpace(p.FeaturedImage.URL) != "" {
		return strings.TrimSpace(p.FeaturedImage.URL)
	}

	for _, img := range p.Images {
		if u := strings.TrimSpace(img.URL); u != "" {
			return u
		}
	}

	return ""
}

// ImageURLs returns every distinct non-empty image URL, featured image first.
func (p *Product) ImageURLs() []string {
	if p == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(p.Images)+1)
	urls := make([]string, 0, len(p.Images)+1)
	add := func(u string) {
		u = strings.TrimSpace(u)
		if u == "" {
			return
		}
		if _, dup := seen[u]; dup {
			return
		}
		seen[u] = struct{}{}
		urls = append(urls, u)
	}

	if p.FeaturedImage != nil {
		add(p.FeaturedImage.URL)
	}
	for _, img := range p.Images {
		add(img.URL)
	}

	return urls
}

// HasMedia reports whether the product carries media of any of the given types.
func (p *Product) HasMedia(types ...string) bool {
	if p == nil {
		return false
	}

	for _, m := range p.Media {
		for _, t := range types {
			if strings.EqualFold(m.MediaContentType, t) {
				return true
			}
		}
	}

	return false
}

// FirstMediaURL returns the URL of the first media item of the given types.
func (p *Product) FirstMediaURL(types ...string) string {
	if p == nil {
		return ""
	}

	for _, m := range p.Media {
		for _, t := range types {
			if strings.EqualFold(m.MediaContentType, t) && m.URL != "" {
				return m.URL
			}
		}
	}

	return ""
}

func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))

	return strings.Join(strings.Fields(key), "_")
}
