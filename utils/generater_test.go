package utils

import "testing"

func TestGenerateOTP(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := GenerateOTP()
		if len(code) != 6 {
			t.Fatalf("expected a 6-digit code, got %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("expected digits only, got %q", code)
			}
		}
		seen[code] = true
	}
	// 100 draws from a million values collapsing to one would mean a broken
	// generator
	if len(seen) < 2 {
		t.Fatal("generator returned the same code for every draw")
	}
}
