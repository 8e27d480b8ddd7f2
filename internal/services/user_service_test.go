package services

import "testing"

func TestNewResetCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := newResetCode()
		if err != nil {
			t.Fatal(err)
		}
		if len(code) != 6 {
			t.Fatalf("expected six digits, got %q", code)
		}
		for _, r := range code {
			if r < '0' || r > '9' {
				t.Fatalf("non-digit %q in code %q", r, code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatalf("50 codes collapsed to %d distinct values", len(seen))
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Password1", false},
		{"too short", "Pass1", true},
		{"no uppercase", "password1", true},
		{"no digit", "Passwords", true},
		{"empty", "", true},
		{"unicode upper and digit", "Пароль123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("validatePassword(%q) = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}
