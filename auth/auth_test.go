package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestValidateRegistration(t *testing.T) {
	prefs := []string{"beaches", "museums"}
	valid := RegisterInput{
		FullName:        "Asha Rao",
		Email:           "asha@example.com",
		Password:        "hunter2",
		DestinationCity: "Mumbai",
		Preferences:     &prefs,
	}

	if msg := ValidateRegistration(valid); msg != "" {
		t.Fatalf("expected valid input to pass, got %q", msg)
	}

	empty := []string{}
	validEmptyPrefs := valid
	validEmptyPrefs.Preferences = &empty
	if msg := ValidateRegistration(validEmptyPrefs); msg != "" {
		t.Fatalf("empty preferences array should pass, got %q", msg)
	}

	missingPrefs := valid
	missingPrefs.Preferences = nil
	if msg := ValidateRegistration(missingPrefs); msg != "Preferences must be an array" {
		t.Fatalf("expected preferences message, got %q", msg)
	}

	for _, in := range []RegisterInput{
		{Email: "a@b.c", Password: "x", DestinationCity: "Pune", Preferences: &prefs},
		{FullName: "A", Password: "x", DestinationCity: "Pune", Preferences: &prefs},
		{FullName: "A", Email: "a@b.c", DestinationCity: "Pune", Preferences: &prefs},
		{FullName: "A", Email: "a@b.c", Password: "x", Preferences: &prefs},
	} {
		if msg := ValidateRegistration(in); msg != "All fields are required" {
			t.Fatalf("expected required-fields message for %+v, got %q", in, msg)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte("correct horse")); err != nil {
		t.Fatalf("matching password rejected: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte("wrong horse")); err == nil {
		t.Fatal("wrong password accepted")
	}
}
