package entity

import (
	"encoding/json"
	"testing"

	codec "acp/internal/infra/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusForScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score int
		want  ComplianceStatus
	}{
		{100, StatusCompliant},
		{90, StatusCompliant},
		{89, StatusNeedsImprovement},
		{50, StatusNeedsImprovement},
		{49, StatusNonCompliant},
		{0, StatusNonCompliant},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusForScore(tt.score), "score %d", tt.score)
	}
}

func TestImage_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var p Product
	err := json.Unmarshal([]byte(`{
		"id": "1",
		"images": [
			"https://cdn.example.com/a.jpg",
			{"url": "https://cdn.example.com/b.jpg", "altText": "side"},
			{"src": "https://cdn.example.com/c.jpg"},
			{"originalSrc": "https://cdn.example.com/d.jpg"}
		]
	}`), &p)
	require.NoError(t, err)

	assert.Equal(t, []Image{
		{URL: "https://cdn.example.com/a.jpg"},
		{URL: "https://cdn.example.com/b.jpg", AltText: "side"},
		{URL: "https://cdn.example.com/c.jpg"},
		{URL: "https://cdn.example.com/d.jpg"},
	}, p.Images)

	var img Image
	assert.Error(t, json.Unmarshal([]byte(`42`), &img))
}

func TestImage_UnmarshalJSON_ServiceCodec(t *testing.T) {
	t.Parallel()

	var p Product
	err := codec.Unmarshal([]byte(`{
		"id": "1",
		"featuredImage": {"url": "https://cdn.example.com/main.jpg"},
		"images": ["https://cdn.example.com/a.jpg", {"src": "https://cdn.example.com/b.jpg"}]
	}`), &p)
	require.NoError(t, err)

	assert.Equal(t, []Image{
		{URL: "https://cdn.example.com/a.jpg"},
		{URL: "https://cdn.example.com/b.jpg"},
	}, p.Images)
	require.NotNil(t, p.FeaturedImage)
	assert.Equal(t, "https://cdn.example.com/main.jpg", p.FeaturedImage.URL)

	var img Image
	assert.Error(t, codec.Unmarshal([]byte(`true`), &img))
}

func TestProduct_PlainDescription(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product *Product
		want    string
	}{
		{name: "nil product", product: nil, want: ""},
		{name: "plain wins", product: &Product{Description: " Plain ", DescriptionHTML: "<p>Rich</p>"}, want: "Plain"},
		{
			name:    "html stripped",
			product: &Product{DescriptionHTML: "<p>Warm &amp; <strong>dry</strong></p>\n<script>alert(1)</script>"},
			want:    "Warm & dry",
		},
		{name: "markup only", product: &Product{DescriptionHTML: "<br/><br/>"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.product.PlainDescription())
		})
	}
}

func TestProduct_TagValue(t *testing.T) {
	t.Parallel()

	p := &Product{Tags: []string{"sale", "Brand: Acme ", "Age Group:kids", "brand:Other", "material:"}}

	brand, ok := p.TagValue("brand")
	assert.True(t, ok)
	assert.Equal(t, "Acme", brand)

	age, ok := p.TagValue("age_group")
	assert.True(t, ok)
	assert.Equal(t, "kids", age)

	_, ok = p.TagValue("material")
	assert.False(t, ok)

	_, ok = (*Product)(nil).TagValue("brand")
	assert.False(t, ok)
}

func TestProduct_Images(t *testing.T) {
	t.Parallel()

	p := &Product{
		FeaturedImage: &Image{URL: "https://cdn.example.com/b.jpg"},
		Images:        []Image{{URL: "https://cdn.example.com/a.jpg"}, {URL: "https://cdn.example.com/b.jpg"}, {URL: " "}},
	}

	assert.Equal(t, "https://cdn.example.com/b.jpg", p.MainImageURL())
	assert.Equal(t, []string{"https://cdn.example.com/b.jpg", "https://cdn.example.com/a.jpg"}, p.ImageURLs())

	p.FeaturedImage = nil
	assert.Equal(t, "https://cdn.example.com/a.jpg", p.MainImageURL())
}

func TestVariant_QuantityAndWeight(t *testing.T) {
	t.Parallel()

	direct := 4
	v := &Variant{InventoryQuantity: &direct}
	q, ok := v.Quantity()
	assert.True(t, ok)
	assert.Equal(t, 4, q)

	v = &Variant{InventoryItem: &InventoryItem{InventoryLevels: []InventoryLevel{{Available: 2}, {Available: 3}}}}
	q, ok = v.Quantity()
	assert.True(t, ok)
	assert.Equal(t, 5, q)

	_, ok = (&Variant{}).Quantity()
	assert.False(t, ok)

	legacy := 2.5
	w, ok := (&Variant{Weight: &legacy, WeightUnit: WeightUnitKilograms}).ShippingWeight()
	assert.True(t, ok)
	assert.Equal(t, WeightValue{Value: 2.5, Unit: WeightUnitKilograms}, w)

	_, ok = (*Variant)(nil).ShippingWeight()
	assert.False(t, ok)
}

func TestShop_Fallbacks(t *testing.T) {
	t.Parallel()

	s := &Shop{
		PrimaryDomain: &Domain{URL: "https://acme.example.com"},
		ShopPolicies:  []*ShopPolicy{nil, {Type: PolicyRefund, URL: "https://acme.example.com/refunds"}},
	}

	assert.Equal(t, "https://acme.example.com", s.URL())
	assert.Equal(t, "https://acme.example.com/refunds", s.PolicyURL(PolicyRefund))
	assert.Empty(t, s.PolicyURL(PolicyPrivacy))
	assert.Nil(t, (*Shop)(nil).Policy(PolicyRefund))
	assert.Empty(t, (*Shop)(nil).URL())
}
