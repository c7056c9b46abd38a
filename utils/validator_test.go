package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"sales@acme-metals.example", "buyer.one@corp.co", "a_b+tag@x.io"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "no-at-sign", "user@", "@host.com", "user@host"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("short"); ok {
		t.Error("passwords under 8 characters must fail")
	}
	if ok, msg := ValidatePassword("longenough"); !ok {
		t.Errorf("expected pass, got %q", msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("unexpected sanitize result: %q", got)
	}
}
