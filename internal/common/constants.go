package common

const (
	AppStorefrontService = "storefront-service"

	AudienceStorefront = "storefront"
)
