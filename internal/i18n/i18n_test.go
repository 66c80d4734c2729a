package i18n

import "testing"

func TestNegotiate(t *testing.T) {
	cases := []struct {
		explicit string
		accept   string
		want     string
	}{
		{"", "", Hungarian},
		{"en", "", English},
		{"hu", "en-US,en;q=0.9", Hungarian},
		{"", "en-GB,en;q=0.8", English},
		{"", "hu-HU,hu;q=0.9,en;q=0.5", Hungarian},
		{"", "ja-JP", Hungarian},
		{"not a tag!", "en", English},
	}
	for _, tc := range cases {
		if got := Negotiate(tc.explicit, tc.accept); got != tc.want {
			t.Errorf("Negotiate(%q, %q) = %s, want %s", tc.explicit, tc.accept, got, tc.want)
		}
	}
}

func TestMessage(t *testing.T) {
	if got := Message(Hungarian, "slot_taken"); got != "Ez az időpont már foglalt." {
		t.Fatalf("unexpected hungarian text %q", got)
	}
	if got := Message(English, "slot_taken"); got != "This time is already booked." {
		t.Fatalf("unexpected english text %q", got)
	}
	if got := Message(English, "no_such_code"); got != Message(English, "internal_error") {
		t.Fatalf("unknown codes must fall back to internal_error, got %q", got)
	}
}

func TestCatalogComplete(t *testing.T) {
	for code, m := range catalog {
		if m.hu == "" || m.en == "" {
			t.Errorf("%s: missing translation", code)
		}
	}
}
