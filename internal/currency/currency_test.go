package currency

import "testing"

func TestSymbol(t *testing.T) {
	cases := map[string]string{"MAD": "DH", "EUR": "€", "USD": "$", "GBP": "£", "XYZ": "DH", "": "DH"}
	for code, want := range cases {
		if got := Symbol(code); got != want {
			t.Errorf("Symbol(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestConvertFromMAD(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   int64
	}{
		{1000, "EUR", 92},
		{1000, "USD", 100},
		{1000, "GBP", 79},
		{1000, "MAD", 1000},
		{1000, "XYZ", 1000},
		{2500, "EUR", 230},
		{15, "USD", 2},
		{0, "EUR", 0},
		{25, "USD", 3},
		{-25, "USD", -3},
	}
	for _, tc := range cases {
		if got := ConvertFromMAD(tc.amount, tc.code); got != tc.want {
			t.Errorf("ConvertFromMAD(%v, %q) = %d, want %d", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{1000, "XYZ", "1,000 DH"},
		{1000, "MAD", "1,000 DH"},
		{1234567, "MAD", "1,234,567 DH"},
		{50000, "EUR", "4,600 €"},
		{999, "USD", "100 $"},
	}
	for _, tc := range cases {
		if got := Format(tc.amount, tc.code); got != tc.want {
			t.Errorf("Format(%v, %q) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

func TestFormatLangFallsBackOnBadTag(t *testing.T) {
	if got := FormatLang("??", 1000, "MAD"); got != "1,000 DH" {
		t.Fatalf("got %q", got)
	}
}
