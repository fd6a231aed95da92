package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("SuperSecret123!")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if hash == "SuperSecret123!" {
		t.Error("hash should not equal the plain password")
	}
	if !CheckPasswordHash("SuperSecret123!", hash) {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash("WrongPassword", hash) {
		t.Error("wrong password should not verify")
	}
}
