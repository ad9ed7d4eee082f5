package entity

import "strings"

// Shop policy types.
const (
	PolicyPrivacy        = "PRIVACY_POLICY"
	PolicyTermsOfService = "TERMS_OF_SERVICE"
	PolicyRefund         = "REFUND_POLICY"
	PolicyShipping       = "SHIPPING_POLICY"
)

// Shop is the merchant a catalog belongs to.
type Shop struct {
	Name          string        `json:"name"`
	RawURL        string        `json:"url,omitempty"`
	PrimaryDomain *Domain       `json:"primaryDomain,omitempty"`
	ContactEmail  string        `json:"contactEmail,omitempty"`
	ShippingRates []string      `json:"shippingRates,omitempty"`
	ShopPolicies  []*ShopPolicy `json:"shopPolicies,omitempty"`
}

// Domain is a storefront domain.
type Domain struct {
	URL string `json:"url"`
}

// ShopPolicy is a published legal policy.
type ShopPolicy struct {
	Type string `json:"type"`
	URL  string `json:"url,omitempty"`
	Body string `json:"body,omitempty"`
}

// URL returns the shop URL, falling back to the primary domain.
func (s *Shop) URL() string {
	if s == nil {
		return ""
	}

	if u := strings.TrimSpace(s.RawURL); u != "" {
		return u
	}

	if s.PrimaryDomain != nil {
		return strings.TrimSpace(s.PrimaryDomain.URL)
	}

	return ""
}

// Policy returns the first policy of the given type.
func (s *Shop) Policy(policyType string) *ShopPolicy {
	if s == nil {
		return nil
	}

	for _, policy := range s.ShopPolicies {
		if policy != nil && strings.EqualFold(policy.Type, policyType) {
			return policy
		}
	}

	return nil
}

// PolicyURL returns the URL of the policy of the given type, if published.
func (s *Shop) PolicyURL(policyType string) string {
	if policy := s.Policy(policyType); policy != nil {
		return strings.TrimSpace(policy.URL)
	}

	return ""
}
