package wire

import "testing"

func TestDateRoundTrip(t *testing.T) {
	for _, iso := range []string{"2025-09-30", "2024-01-02", "1999-12-31"} {
		if got := ToISODate(ToDisplayDate(iso)); got != iso {
			t.Fatalf("toISO(toDisplay(%q)) = %q", iso, got)
		}
	}
}

func TestToDisplayDate(t *testing.T) {
	if got := ToDisplayDate("2025-09-30"); got != "30/09/2025" {
		t.Fatalf("ToDisplayDate = %q", got)
	}
}

// Conversion is a plain string split. Malformed input passes straight
// through, and impossible calendar dates are not rejected. That is the
// existing behavior of the contract, not something to fix here.
func TestDateConversionIsNotCalendarAware(t *testing.T) {
	if got := ToISODate("31/02/2025"); got != "2025-02-31" {
		t.Fatalf("impossible date should convert verbatim, got %q", got)
	}
	if got := ToISODate("not-a-date"); got != "not-a-date" {
		t.Fatalf("unsplittable input should pass through, got %q", got)
	}
	if got := ToDisplayDate("2025"); got != "2025" {
		t.Fatalf("unsplittable ISO should pass through, got %q", got)
	}
}
