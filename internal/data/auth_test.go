package data

import (
	"errors"
	"testing"
	"time"
)

func TestRegisterAndVerify(t *testing.T) {
	s := setupTestStore(t)

	before := time.Now()
	user, err := s.RegisterUser("alice", "p@ss1")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	if user.HashedPw == "p@ss1" || user.HashedPw == "" {
		t.Error("Stored credential must be a digest, not the plaintext")
	}
	if user.RegDate.Before(before) {
		t.Errorf("Registration date %v predates the call", user.RegDate)
	}

	ok, err := s.VerifyUser("alice", "p@ss1")
	if err != nil || !ok {
		t.Errorf("Correct password rejected: (%v, %v)", ok, err)
	}
	ok, err = s.VerifyUser("alice", "wrong")
	if err != nil || ok {
		t.Errorf("Wrong password accepted: (%v, %v)", ok, err)
	}
}

func TestVerifyUnknownUserIsFalseNotError(t *testing.T) {
	s := setupTestStore(t)

	// Unknown user and wrong password must be indistinguishable to callers
	ok, err := s.VerifyUser("nobody", "anything")
	if err != nil {
		t.Fatalf("Unknown user must not be an error, got %v", err)
	}
	if ok {
		t.Error("Unknown user verified")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.RegisterUser("carol", "first-pw"); err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	_, err := s.RegisterUser("carol", "other-pw")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("Expected ErrDuplicateUser, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.RegisterUser("", "pw"); !IsValidation(err) {
		t.Errorf("Expected validation error for empty username, got %v", err)
	}
	if _, err := s.RegisterUser("dave", "   "); !IsValidation(err) {
		t.Errorf("Expected validation error for blank password, got %v", err)
	}
}

func TestUserIDByUsername(t *testing.T) {
	s := setupTestStore(t)

	user, err := s.RegisterUser("erin", "pw1234")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	id, err := s.UserIDByUsername("erin")
	if err != nil || id != user.ID {
		t.Errorf("UserIDByUsername = (%d, %v), want %d", id, err, user.ID)
	}
	id, err = s.UserIDByUsername("missing")
	if err != nil || id != 0 {
		t.Errorf("Missing username should yield (0, nil), got (%d, %v)", id, err)
	}
}

func TestUsersListOmitsDigests(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.RegisterUser("frank", "pw1234"); err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	users, err := s.Users()
	if err != nil {
		t.Fatalf("Users failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("Expected 1 user, got %d", len(users))
	}
	if users[0].Username != "frank" {
		t.Errorf("Expected frank, got %q", users[0].Username)
	}
	if users[0].HashedPw != "" {
		t.Error("User listing leaked a password digest")
	}
}
