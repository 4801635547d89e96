package scraper

// CSS selectors for kleinanzeigen.de. Centralising them makes markup
// changes a one-file fix. Several carry a comma-separated fallback because
// the site ships two generations of detail-page markup (viewad-* ids on
// the classic layout, vap-* classes on the newer one).
const (
	// Detail page
	selAdID        = "#viewad-ad-id-box > ul > li:nth-child(2)"
	selBreadcrumbs = ".breadcrump-link"
	selTitle       = "#viewad-title, .vap-title"
	selPrice       = "#viewad-price, .vap-price"
	selViews       = "#viewad-cntr-num"
	selDescription = "#viewad-description-text, .vap-description"
	selImages      = "#viewad-image, #viewad-image img, .galleryimage-element img"
	selShipping    = ".boxedarticle--details--shipping"
	selLocality    = "#viewad-locality"

	// Detail-page sections handed to the goquery readers.
	selDetailsSection  = "#viewad-details"
	selFeaturesSection = "#viewad-configuration"
	selExtraInfo       = "#viewad-extra-info"
	selSellerSection   = "#viewad-contact"

	// Inside the sections.
	selDetailItem   = ".addetailslist--detail"
	selDetailValue  = ".addetailslist--detail--value"
	selFeatureTag   = ".checktag"
	selSellerName   = ".userprofile-vip a, .text-body-regular-strong"
	selSellerBadges = ".userbadges-vip .userbadges-profile-badge, .userprofile-details"

	// Search-results page
	selResultList = "#srchrslt-adtable"
	selAdCard     = ".ad-listitem:not(.is-topad):not(.badge-hint-pro-small-srp)"
	selCardTitle  = "h2.text-module-begin a.ellipsis"
	selCardPrice  = "p.aditem-main--middle--price-shipping--price"
	selCardDesc   = "p.aditem-main--middle--description"
	selCardImage  = ".imagebox img"
)
