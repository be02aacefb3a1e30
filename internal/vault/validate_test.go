package vault

import (
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"minimal", "Jo", true},
		{"too short", "J", false},
		{"digits rejected", "John123", false},
		{"hyphen and apostrophe", "Mary-Jane O'Brien", true},
		{"surrounding spaces trimmed", "  Jo  ", true},
		{"only spaces", "    ", false},
		{"empty", "", false},
		{"fifty chars", strings.Repeat("ab", 25), true},
		{"fifty one chars", strings.Repeat("a", 51), false},
		{"punctuation rejected", "John_Doe", false},
		{"markup rejected", "<b>Jo</b>", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateName(tc.in); got != tc.want {
				t.Fatalf("ValidateName(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"formatted US number", "(555) 123-4567", true},
		{"too few digits", "123", false},
		{"seven digits", "5551234", true},
		{"fifteen digits", "123456789012345", true},
		{"sixteen digits", "1234567890123456", false},
		{"international format", "+44 20 7946 0958", true},
		{"no digits at all", "call me", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidatePhone(tc.in); got != tc.want {
				t.Fatalf("ValidatePhone(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if ValidatePassword("12345") {
		t.Fatalf("five characters should fail the policy")
	}
	if !ValidatePassword("123456") {
		t.Fatalf("six characters should pass the policy")
	}
	if ValidatePassword("") {
		t.Fatalf("empty password should fail the policy")
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  Jo  ", "Jo"},
		{"drops angle brackets", "<script>Jo</script>", "scriptJo/script"},
		{"drops quotes", `Jo "the" O'Brien`, "Jo the OBrien"},
		{"plain value untouched", "(555) 123-4567", "(555) 123-4567"},
		{"empty", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Sanitize(tc.in); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestValidTopic(t *testing.T) {
	for _, topic := range Topics() {
		if !ValidTopic(topic) {
			t.Fatalf("vocabulary topic %q reported invalid", topic)
		}
	}
	if ValidTopic("astrology") {
		t.Fatalf("topic outside the vocabulary reported valid")
	}
	if ValidTopic("") {
		t.Fatalf("empty topic reported valid")
	}
}
