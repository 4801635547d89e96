package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The compound detail-page sections are read as one HTML blob and parsed
// with goquery instead of issuing one CDP round trip per sub-element.
// Each reader defaults internally where a sub-element is missing; only a
// failure to obtain the section HTML itself is reported.

var germanDate = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)

func sectionDoc(p Page, selector string) (*goquery.Document, error) {
	html, err := p.SectionHTML(selector)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// adDetailsList parses the "Details" key-value block
// (e.g. "Marke: Canon", "Zustand: Sehr Gut").
func adDetailsList(p Page) (map[string]string, error) {
	doc, err := sectionDoc(p, selDetailsSection)
	if err != nil {
		return nil, err
	}

	details := make(map[string]string)
	doc.Find(selDetailItem).Each(func(_ int, s *goquery.Selection) {
		value := strings.TrimSpace(s.Find(selDetailValue).Text())

		// The key is the item's own text with the value child removed.
		item := s.Clone()
		item.Find(selDetailValue).Remove()
		key := strings.TrimSpace(item.Text())

		if key != "" {
			details[key] = value
		}
	})
	return details, nil
}

// adFeatures parses the "Ausstattung" check-tag list. Tags carry no value
// of their own, so presence maps to "Ja".
func adFeatures(p Page) (map[string]string, error) {
	doc, err := sectionDoc(p, selFeaturesSection)
	if err != nil {
		return nil, err
	}

	features := make(map[string]string)
	doc.Find(selFeatureTag).Each(func(_ int, s *goquery.Selection) {
		if tag := strings.TrimSpace(s.Text()); tag != "" {
			features[tag] = "Ja"
		}
	})
	return features, nil
}

// sellerDetails parses the seller contact box: display name, account type
// (private vs commercial badge), and any further profile lines such as
// "Aktiv seit 12.03.2019".
func sellerDetails(p Page) (map[string]string, error) {
	doc, err := sectionDoc(p, selSellerSection)
	if err != nil {
		return nil, err
	}

	seller := make(map[string]string)
	if name := strings.TrimSpace(doc.Find(selSellerName).First().Text()); name != "" {
		seller["name"] = name
	}

	doc.Find(selSellerBadges).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		switch {
		case text == "":
		case strings.Contains(text, "Gewerblicher"):
			seller["type"] = "gewerblich"
		case strings.Contains(text, "Privater"):
			seller["type"] = "privat"
		case strings.Contains(text, "Aktiv seit"):
			seller["active_since"] = strings.TrimSpace(strings.TrimPrefix(text, "Aktiv seit"))
		case strings.Contains(text, "Zufriedenheit"):
			seller["satisfaction"] = strings.TrimSpace(strings.TrimPrefix(text, "Zufriedenheit:"))
		}
	})
	return seller, nil
}

// adExtraInfo parses the metadata row below the title (posting date and
// similar auxiliary entries).
func adExtraInfo(p Page) (map[string]string, error) {
	doc, err := sectionDoc(p, selExtraInfo)
	if err != nil {
		return nil, err
	}

	extra := make(map[string]string)
	other := 0
	doc.Find("div, span").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return // only leaf entries
		}
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if germanDate.MatchString(text) {
			if _, seen := extra["date"]; !seen {
				extra["date"] = text
				return
			}
		}
		other++
		extra["info_"+strconv.Itoa(other)] = text
	})
	return extra, nil
}

// adLocation reads the locality line and collapses its internal whitespace
// (the element interleaves the zip code and city with layout whitespace).
func adLocation(p Page) string {
	raw := p.Text(selLocality, "")
	loc := spaceRuns.ReplaceAllString(strings.ReplaceAll(raw, "\n", " "), " ")
	return strings.TrimSpace(loc)
}
