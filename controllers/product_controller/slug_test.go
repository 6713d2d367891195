package product_controller

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Linen Shirt", "linen-shirt"},
		{"Linen Shirt (2025)", "linen-shirt-2025"},
		{"  Wool   Coat  ", "wool-coat"},
		{"ALL CAPS TITLE", "all-caps-title"},
		{"100% Cotton T-Shirt", "100-cotton-t-shirt"},
		{"---", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Slugify(tc.title); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}
