package compliance

import (
	"strconv"
	"strings"

	"acp/internal/domain/entity"
)

const (
	maxTitleLength       = 150
	maxDescriptionLength = 5000
)

func productRules() []Rule[*entity.Product] {
	return []Rule[*entity.Product]{
		{
			Field: "id", DisplayName: "Product ID", Category: CategoryProduct, Weight: 10, Critical: true,
			Check: func(p *entity.Product) bool { return p != nil && nonEmpty(p.ID) },
			Extract: func(p *entity.Product) string {
				return productString(p, func(p *entity.Product) string { return p.ID })
			},
		},
		{
			Field: "title", DisplayName: "Title", Category: CategoryProduct, Weight: 10, Critical: true,
			Check: func(p *entity.Product) bool {
				return p != nil && runeLenBetween(p.Title, 1, maxTitleLength)
			},
			Extract: func(p *entity.Product) string {
				return productString(p, func(p *entity.Product) string { return strings.TrimSpace(p.Title) })
			},
		},
		{
			Field: "description", DisplayName: "Description", Category: CategoryProduct, Weight: 10, Critical: true,
			Check:   func(p *entity.Product) bool { return runeLenBetween(p.PlainDescription(), 1, maxDescriptionLength) },
			Extract: func(p *entity.Product) string { return p.PlainDescription() },
		},
		{
			Field: "link", DisplayName: "Product URL", Category: CategoryProduct, Weight: 10, Critical: true,
			Check: func(p *entity.Product) bool {
				return p != nil && (isAbsoluteURL(p.OnlineStoreURL) || nonEmpty(p.Handle))
			},
			Extract: productLink,
		},
		{
			Field: "product_category", DisplayName: "Product Category", Category: CategoryProduct, Weight: 8, Critical: true,
			Check:   func(p *entity.Product) bool { return productCategory(p) != "" },
			Extract: productCategory,
		},
		{
			Field: "brand", DisplayName: "Brand", Category: CategoryProduct, Weight: 8, Critical: true,
			Check:   func(p *entity.Product) bool { return brand(p) != "" },
			Extract: brand,
		},
		{
			Field: "material", DisplayName: "Material", Category: CategoryProduct, Weight: 8, Critical: true,
			Check:   func(p *entity.Product) bool { return tag(p, "material") != "" },
			Extract: func(p *entity.Product) string { return tag(p, "material") },
		},
		{
			// Not yet sourced from the catalog; tracked for coverage only.
			Field: "dimensions", DisplayName: "Dimensions", Category: CategoryProduct, Weight: 0,
			Check:   func(p *entity.Product) bool { return dimensionsPattern.MatchString(tag(p, "dimensions")) },
			Extract: func(p *entity.Product) string { return tag(p, "dimensions") },
		},
		{
			Field: "age_group", DisplayName: "Age Group", Category: CategoryProduct, Weight: 2,
			Check: func(p *entity.Product) bool {
				return oneOf(tag(p, "age_group"), "newborn", "infant", "toddler", "kids", "adult")
			},
			Extract: func(p *entity.Product) string { return strings.ToLower(tag(p, "age_group")) },
		},
	}
}

func performanceRules() []Rule[*entity.Product] {
	return []Rule[*entity.Product]{
		{
			Field: "popularity_score", DisplayName: "Popularity Score", Category: CategoryPerformance, Weight: 0,
			Check:   func(p *entity.Product) bool { return decimalInRange(tag(p, "popularity_score"), 0, 5) },
			Extract: func(p *entity.Product) string { return tag(p, "popularity_score") },
		},
		{
			Field: "return_rate", DisplayName: "Return Rate", Category: CategoryPerformance, Weight: 0,
			Check:   func(p *entity.Product) bool { return decimalInRange(tag(p, "return_rate"), 0, 100) },
			Extract: func(p *entity.Product) string { return tag(p, "return_rate") },
		},
		{
			Field: "product_review_count", DisplayName: "Review Count", Category: CategoryPerformance, Weight: 2,
			Check:   func(p *entity.Product) bool { return isNonNegativeInt(tag(p, "review_count")) },
			Extract: func(p *entity.Product) string { return tag(p, "review_count") },
		},
		{
			Field: "product_review_rating", DisplayName: "Review Rating", Category: CategoryPerformance, Weight: 2,
			Check:   func(p *entity.Product) bool { return decimalInRange(tag(p, "review_rating"), 0, 5) },
			Extract: func(p *entity.Product) string { return tag(p, "review_rating") },
		},
	}
}

func mediaRules() []Rule[*entity.Product] {
	return []Rule[*entity.Product]{
		{
			Field: "image_link", DisplayName: "Main Image", Category: CategoryMedia, Weight: 10, Critical: true,
			Check:   func(p *entity.Product) bool { return isAbsoluteURL(p.MainImageURL()) },
			Extract: func(p *entity.Product) string { return p.MainImageURL() },
		},
		{
			Field: "additional_image_link", DisplayName: "Additional Images", Category: CategoryMedia, Weight: 4,
			Check:   func(p *entity.Product) bool { return len(additionalImageURLs(p)) > 0 },
			Extract: func(p *entity.Product) string { return strings.Join(additionalImageURLs(p), ",") },
		},
		{
			Field: "video_link", DisplayName: "Video", Category: CategoryMedia, Weight: 1,
			Check: func(p *entity.Product) bool {
				return p.HasMedia(entity.MediaTypeVideo, entity.MediaTypeExternalVideo) || isAbsoluteURL(tag(p, "video"))
			},
			Extract: func(p *entity.Product) string {
				if u := p.FirstMediaURL(entity.MediaTypeVideo, entity.MediaTypeExternalVideo); u != "" {
					return u
				}

				return tag(p, "video")
			},
		},
		{
			Field: "model_3d_link", DisplayName: "3D Model", Category: CategoryMedia, Weight: 1,
			Check:   func(p *entity.Product) bool { return p.HasMedia(entity.MediaTypeModel3D) },
			Extract: func(p *entity.Product) string { return p.FirstMediaURL(entity.MediaTypeModel3D) },
		},
	}
}

func productString(p *entity.Product, get func(*entity.Product) string) string {
	if p == nil {
		return ""
	}

	return get(p)
}

func tag(p *entity.Product, key string) string {
	value, _ := p.TagValue(key)

	return value
}

func productLink(p *entity.Product) string {
	if p == nil {
		return ""
	}

	if isAbsoluteURL(p.OnlineStoreURL) {
		return strings.TrimSpace(p.OnlineStoreURL)
	}

	if handle := strings.TrimSpace(p.Handle); handle != "" {
		return "/products/" + handle
	}

	return ""
}

func productCategory(p *entity.Product) string {
	if p == nil {
		return ""
	}

	if t := strings.TrimSpace(p.ProductType); t != "" {
		return t
	}

	return tag(p, "category")
}

func brand(p *entity.Product) string {
	if b := tag(p, "brand"); b != "" {
		return b
	}

	if p == nil {
		return ""
	}

	return strings.TrimSpace(p.Vendor)
}

// additionalImageURLs returns the valid image URLs after the main image.
func additionalImageURLs(p *entity.Product) []string {
	main := p.MainImageURL()

	var extra []string
	for _, u := range p.ImageURLs() {
		if u == main || !isAbsoluteURL(u) {
			continue
		}
		extra = append(extra, u)
	}

	return extra
}

func mediaData(rs *RuleSet, p *entity.Product) entity.MediaData {
	data := entity.MediaData{
		AdditionalImageCount: len(additionalImageURLs(p)),
	}

	if r, ok := rs.productRule("image_link"); ok && r.Passes(p) {
		data.ImageLink = r.Value(p)
	}
	if r, ok := rs.productRule("video_link"); ok {
		data.HasVideo = r.Passes(p)
	}
	if r, ok := rs.productRule("model_3d_link"); ok {
		data.Has3DModel = r.Passes(p)
	}

	return data
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
