package services

import (
	"testing"

	"billwise/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("Alice@Example.com", "secret123", "Alice", "Rao")
		testutil.AssertNoError(t, err)

		if user.Email != "alice@example.com" {
			t.Errorf("expected lowercased email, got %q", user.Email)
		}
		if user.Password == "secret123" {
			t.Error("password must be stored hashed")
		}
		if !user.IsActive {
			t.Error("new users should be active")
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("bob@example.com", "secret123", "", "")
		testutil.AssertNoError(t, err)
		_, err = svc.CreateUser("BOB@example.com", "other456", "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "secret123", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		_, err = svc.CreateUser("carol@example.com", "", "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	created, err := svc.CreateUser("dave@example.com", "secret123", "", "")
	testutil.AssertNoError(t, err)

	found, err := svc.GetUserByEmail("DAVE@example.com")
	testutil.AssertNoError(t, err)
	if found.ID != created.ID {
		t.Error("lookup returned the wrong user")
	}

	_, err = svc.GetUserByEmail("nobody@example.com")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}

func TestAttemptLogin(t *testing.T) {
	t.Run("success_records_login_time", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("erin@example.com", "secret123", "", "")
		testutil.AssertNoError(t, err)

		user, err := svc.AttemptLogin("erin@example.com", "secret123")
		testutil.AssertNoError(t, err)
		if user.LastLoginAt == nil {
			t.Error("expected last login time to be recorded")
		}
	})

	t.Run("same_error_for_bad_email_and_bad_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("frank@example.com", "secret123", "", "")
		testutil.AssertNoError(t, err)

		_, badPassword := svc.AttemptLogin("frank@example.com", "wrong")
		_, badEmail := svc.AttemptLogin("ghost@example.com", "secret123")

		testutil.AssertAppError(t, badPassword, "INVALID_CREDENTIALS")
		testutil.AssertAppError(t, badEmail, "INVALID_CREDENTIALS")
	})
}
