package scraper

import "testing"

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"full prefix", "Berlin • Elektronik • Profi-Kamera", "Profi-Kamera"},
		{"single separator", "Elektronik • Profi-Kamera", "Profi-Kamera"},
		{"no separator", "  Profi-Kamera  ", "Profi-Kamera"},
		{"bullet without spaces stays", "Profi•Kamera", "Profi•Kamera"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeTitle(tt.in); got != tt.want {
				t.Errorf("normalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"space and newline runs", "a   b\n\n\nc", "a b\nc"},
		{"tabs", "a\t\tb", "a b"},
		{"already clean", "a b\nc", "a b\nc"},
		{"surrounding whitespace", "  text  ", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeDescription(tt.in); got != tt.want {
				t.Errorf("normalizeDescription(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"currency glyph", "250 €", "250"},
		{"negotiable marker", "250 € VB", "250"},
		{"thousands separator", "1.250 €", "1250"},
		{"zu verschenken", "Zu verschenken", "Zu verschenken"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizePrice(tt.in); got != tt.want {
				t.Errorf("normalizePrice(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAdIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"detail path", "https://www.kleinanzeigen.de/s-anzeige/title/1234567890", "1234567890"},
		{"trailing slash", "https://www.kleinanzeigen.de/s-anzeige/title/1234567890/", "1234567890"},
		{"no digits", "https://www.kleinanzeigen.de/s-anzeige/title", ""},
		{"digits mid-path", "https://www.kleinanzeigen.de/s-anzeige/123/title", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adIDFromURL(tt.url); got != tt.want {
				t.Errorf("adIDFromURL(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
