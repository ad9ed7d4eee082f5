package compliance

import (
	"strings"

	"acp/internal/domain/entity"
)

func shippingRules() []Rule[*entity.Shop] {
	return []Rule[*entity.Shop]{
		{
			Field: "shipping", DisplayName: "Shipping Rates", Category: CategoryShipping, Weight: 8, Critical: true,
			Check: func(s *entity.Shop) bool {
				if s == nil || len(s.ShippingRates) == 0 {
					return false
				}
				for _, rate := range s.ShippingRates {
					if !isShippingRate(rate) {
						return false
					}
				}

				return true
			},
			Extract: func(s *entity.Shop) string {
				if s == nil {
					return ""
				}

				return strings.Join(s.ShippingRates, ",")
			},
		},
		{
			// Carrier transit times are not exported with the shop; always N/A for now.
			Field: "delivery_estimate", DisplayName: "Delivery Estimate", Category: CategoryShipping, Weight: 0,
			Check:   func(*entity.Shop) bool { return false },
			Extract: func(*entity.Shop) string { return "" },
		},
	}
}

func merchantRules() []Rule[*entity.Shop] {
	return []Rule[*entity.Shop]{
		{
			Field: "seller_name", DisplayName: "Seller Name", Category: CategoryMerchant, Weight: 8, Critical: true,
			Check: func(s *entity.Shop) bool { return s != nil && nonEmpty(s.Name) },
			Extract: func(s *entity.Shop) string {
				return shopString(s, func(s *entity.Shop) string { return strings.TrimSpace(s.Name) })
			},
		},
		{
			Field: "seller_url", DisplayName: "Seller URL", Category: CategoryMerchant, Weight: 8, Critical: true,
			Check:   func(s *entity.Shop) bool { return isAbsoluteURL(s.URL()) },
			Extract: func(s *entity.Shop) string { return s.URL() },
		},
		policyRule("seller_privacy_policy", "Privacy Policy", CategoryMerchant, entity.PolicyPrivacy, 6),
		policyRule("seller_tos", "Terms of Service", CategoryMerchant, entity.PolicyTermsOfService, 6),
		{
			Field: "seller_contact_email", DisplayName: "Contact Email", Category: CategoryMerchant, Weight: 2,
			Check: func(s *entity.Shop) bool { return s != nil && isEmail(s.ContactEmail) },
			Extract: func(s *entity.Shop) string {
				return shopString(s, func(s *entity.Shop) string { return strings.TrimSpace(s.ContactEmail) })
			},
		},
	}
}

func returnsRules() []Rule[*entity.Shop] {
	return []Rule[*entity.Shop]{
		policyRule("return_policy", "Return Policy", CategoryReturns, entity.PolicyRefund, 6),
		{
			Field: "return_window", DisplayName: "Return Window", Category: CategoryReturns, Weight: 3,
			Check: func(s *entity.Shop) bool {
				days, ok := refundWindow(s)

				return ok && days > 0
			},
			Extract: func(s *entity.Shop) string {
				if days, ok := refundWindow(s); ok {
					return itoa(days)
				}

				return ""
			},
		},
	}
}

func policyRule(field, displayName string, category Category, policyType string, weight int) Rule[*entity.Shop] {
	return Rule[*entity.Shop]{
		Field: field, DisplayName: displayName, Category: category, Weight: weight, Critical: true,
		Check:   func(s *entity.Shop) bool { return isAbsoluteURL(s.PolicyURL(policyType)) },
		Extract: func(s *entity.Shop) string { return s.PolicyURL(policyType) },
	}
}

func refundWindow(s *entity.Shop) (int, bool) {
	policy := s.Policy(entity.PolicyRefund)
	if policy == nil {
		return 0, false
	}

	return returnWindowDays(policy.Body)
}

func shopString(s *entity.Shop, get func(*entity.Shop) string) string {
	if s == nil {
		return ""
	}

	return get(s)
}
