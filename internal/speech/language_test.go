package speech

import "testing"

func TestFixedLanguage(t *testing.T) {
	r := NewLanguageResolver("fr")
	if got := r.Resolve("This text is English but the language is pinned."); got != "fr" {
		t.Errorf("Resolve() = %q, want fr", got)
	}
}

func TestDetectedLanguage(t *testing.T) {
	if testing.Short() {
		t.Skip("loads language models")
	}

	r := NewLanguageResolver("auto")
	tests := []struct {
		text string
		want string
	}{
		{"The quarterly results show that our revenue grew faster than expected this year.", "en"},
		{"Die Ergebnisse des Quartals zeigen, dass unser Umsatz schneller gewachsen ist als erwartet.", "de"},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.text); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
