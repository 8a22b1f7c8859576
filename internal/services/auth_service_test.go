package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Pocten/budget-planner-backend-sub000/internal/models"
)

func newAuthFixture(users ...models.User) *AuthService {
	return NewAuthService(newFakeUserDirectory(users...))
}

func TestRegisterNormalizesHandles(t *testing.T) {
	service := newAuthFixture()

	user, err := service.Register("  Alice ", " ALICE@Example.COM ", "s3cret-pass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Name != "alice" {
		t.Fatalf("name = %q, want normalized %q", user.Name, "alice")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email = %q, want normalized %q", user.Email, "alice@example.com")
	}
	if user.ID == 0 {
		t.Fatal("registered user has no ID")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegisterRejectsBadInput(t *testing.T) {
	service := newAuthFixture()

	cases := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "a@example.com", "longenough"},
		{"name with space", "a b", "a@example.com", "longenough"},
		{"name with at sign", "a@b", "a@example.com", "longenough"},
		{"bad email", "alice", "not-an-email", "longenough"},
		{"short password", "alice", "a@example.com", "short"},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := service.Register(testCase.userName, testCase.email, testCase.password); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("got %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestRegisterRejectsTakenHandles(t *testing.T) {
	service := newAuthFixture(models.User{ID: 1, Name: "alice", Email: "alice@example.com"})

	if _, err := service.Register("alice", "other@example.com", "longenough"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("taken name: got %v, want ErrAlreadyExists", err)
	}
	if _, err := service.Register("someone", "alice@example.com", "longenough"); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("taken email: got %v, want ErrAlreadyExists", err)
	}
}

func TestAuthenticateByNameOrEmail(t *testing.T) {
	service := newAuthFixture()
	if _, err := service.Register("alice", "alice@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	byName, err := service.Authenticate("Alice", "s3cret-pass")
	if err != nil {
		t.Fatalf("authenticate by name failed: %v", err)
	}
	byEmail, err := service.Authenticate("alice@EXAMPLE.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("authenticate by email failed: %v", err)
	}
	if byName.ID != byEmail.ID {
		t.Fatalf("name and email resolved different users: %d vs %d", byName.ID, byEmail.ID)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	service := newAuthFixture()
	if _, err := service.Register("alice", "alice@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := service.Authenticate("alice", "wrong-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := service.Authenticate("nobody", "s3cret-pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown handle: got %v, want ErrInvalidCredentials", err)
	}
}

func TestFindByIDUnknownUser(t *testing.T) {
	service := newAuthFixture()

	if _, err := service.FindByID(42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
