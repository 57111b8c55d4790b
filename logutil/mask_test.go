package logutil

import "testing"

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "typical", in: "user@example.com", want: "u***@example.com"},
		{name: "two char local", in: "ab@example.com", want: "a*@example.com"},
		{name: "single char local", in: "u@example.com", want: "u@example.com"},
		{name: "not an email", in: "weird", want: "w***d"},
		{name: "single rune", in: "x", want: "x"},
		{name: "leading at sign", in: "@host", want: "@***t"},
		{name: "empty", in: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskEmail(tt.in); got != tt.want {
				t.Fatalf("MaskEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "long number keeps last four", in: "+1234567890", want: "+******7890"},
		{name: "short number keeps last one", in: "+1234", want: "+***4"},
		{name: "three digits", in: "123", want: "**3"},
		{name: "formatting preserved", in: "+44-113-496-0987", want: "+**-***-***-0987"},
		{name: "no digits", in: "AB-CD", want: "A***D"},
		{name: "single digit", in: "1", want: "1"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskPhone(tt.in); got != tt.want {
				t.Fatalf("MaskPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
