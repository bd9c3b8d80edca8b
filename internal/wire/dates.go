package wire

import "strings"

// Date conversion between the form's dd/mm/yyyy display format and the
// backend's ISO yyyy-mm-dd. Both directions are plain string splits, not
// calendar-aware: a malformed input silently produces a malformed output,
// and day/month ranges are not checked (31/02/2025 passes through). That is
// the contract's existing behavior, captured as-is by the tests.

// ToISODate converts dd/mm/yyyy to yyyy-mm-dd.
func ToISODate(display string) string {
	parts := strings.SplitN(display, "/", 3)
	if len(parts) != 3 {
		return display
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// ToDisplayDate converts yyyy-mm-dd to dd/mm/yyyy.
func ToDisplayDate(iso string) string {
	parts := strings.SplitN(iso, "-", 3)
	if len(parts) != 3 {
		return iso
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}
