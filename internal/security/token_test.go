package security

import (
	"strings"
	"testing"
)

func TestInviteToken(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for attempt := 0; attempt < 32; attempt++ {
		token, err := InviteToken()
		if err != nil {
			t.Fatalf("InviteToken() returned error: %v", err)
		}
		if len(token) != inviteTokenLength {
			t.Fatalf("InviteToken() len = %d, want %d", len(token), inviteTokenLength)
		}
		for _, char := range token {
			if !strings.ContainsRune(inviteTokenAlphabet, char) {
				t.Fatalf("InviteToken() produced char %q outside alphabet", char)
			}
		}
		if _, duplicate := seen[token]; duplicate {
			t.Fatalf("InviteToken() produced duplicate token %q", token)
		}
		seen[token] = struct{}{}
	}
}

func TestRandomString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		alphabet string
		wantErr  bool
	}{
		{name: "negative length", length: -1, alphabet: "abc", wantErr: true},
		{name: "empty alphabet", length: 1, alphabet: "", wantErr: true},
		{name: "zero length", length: 0, alphabet: "abc"},
		{name: "single alphabet character", length: 8, alphabet: "X"},
		{name: "normal generation", length: 64, alphabet: "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := RandomString(test.length, test.alphabet)
			if test.wantErr {
				if err == nil {
					t.Fatalf("RandomString(%d, %q) expected error, got nil", test.length, test.alphabet)
				}
				return
			}
			if err != nil {
				t.Fatalf("RandomString(%d, %q) returned error: %v", test.length, test.alphabet, err)
			}
			if len(got) != test.length {
				t.Fatalf("RandomString(%d, %q) len = %d, want %d", test.length, test.alphabet, len(got), test.length)
			}
			for _, char := range got {
				if !strings.ContainsRune(test.alphabet, char) {
					t.Fatalf("RandomString(%d, %q) produced char %q outside alphabet", test.length, test.alphabet, char)
				}
			}
		})
	}
}
