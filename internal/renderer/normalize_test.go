package renderer

import "testing"

func TestNormalizeLatin(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii unchanged", "Professional Summary", "Professional Summary"},
		{"cp1252 diacritics kept", "môre sê Bonganí", "môre sê Bonganí"},
		{"unrepresentable diacritic transliterated", "Sĩthole ḽapa", "Sithole lapa"},
		{"em dash mapped", "sales — retail", "sales - retail"},
		{"ellipsis mapped", "and more…", "and more..."},
		{"emoji dropped", "\U0001f4dd Professional Summary", "Professional Summary"},
		{"non-latin script dropped", "你好 profile", "profile"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeLatin(tt.in); got != tt.want {
				t.Errorf("normalizeLatin(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
