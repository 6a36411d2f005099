package session

import (
	"context"
	"errors"
	"testing"

	"fintrack/internal/core"
	"fintrack/internal/storage/memory"
)

func newTestStore(t *testing.T) (*Store, *memory.UserStore) {
	t.Helper()
	users := memory.NewUserStore()
	s := New(users)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, users
}

func TestSignInActivatesDemoUser(t *testing.T) {
	s, users := newTestStore(t)

	u, err := s.SignIn(context.Background(), "anyone@example.com", "password123")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if u.Name != "Mike William" || u.Currency != core.USD {
		t.Fatalf("expected demo user, got %+v", u)
	}
	persisted, _ := users.Load(context.Background())
	if persisted == nil || persisted.ID != u.ID {
		t.Fatalf("user not persisted")
	}
	if cur, ok := s.Current(); !ok || cur.ID != u.ID {
		t.Fatalf("Current disagrees with SignIn")
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	s, _ := newTestStore(t)
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "password123"},
		{"blank email", "   ", "password123"},
		{"short password", "a@b.com", "short"},
		{"seven chars", "a@b.com", "1234567"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.SignIn(context.Background(), tc.email, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("rejected sign-in left a session behind")
	}
}

func TestSignInReusesPersistedUser(t *testing.T) {
	users := memory.NewUserStore()
	saved := core.User{ID: "u-1", Name: "Ada", Email: "ada@example.com", Currency: core.EUR}
	if err := users.Save(context.Background(), saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	s := New(users)

	u, err := s.SignIn(context.Background(), "whoever@example.com", "password123")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if u.ID != "u-1" || u.Currency != core.EUR {
		t.Fatalf("persisted user not reused: %+v", u)
	}
}

func TestSignUpCreatesFreshUser(t *testing.T) {
	s, _ := newTestStore(t)

	u, err := s.SignUp(context.Background(), "Ada Lovelace", "ada@example.com", "password123")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if u.ID == "" || u.Name != "Ada Lovelace" || u.Currency != core.USD {
		t.Fatalf("unexpected user %+v", u)
	}

	if _, err := s.SignUp(context.Background(), "", "x@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty name, got %v", err)
	}
	if _, err := s.SignUp(context.Background(), "Bob", "x@example.com", "short"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for short password, got %v", err)
	}
}

func TestSignOutClearsUser(t *testing.T) {
	s, users := newTestStore(t)
	if _, err := s.SignIn(context.Background(), "a@b.com", "password123"); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := s.SignOut(context.Background()); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Fatalf("session survives sign-out")
	}
	if persisted, _ := users.Load(context.Background()); persisted != nil {
		t.Fatalf("stored user survives sign-out")
	}
}

func TestUpdateProfile(t *testing.T) {
	s, users := newTestStore(t)
	if _, err := s.SignIn(context.Background(), "a@b.com", "password123"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	inr := core.INR
	name := "Mike W."
	u, err := s.UpdateProfile(context.Background(), core.UserPatch{Name: &name, Currency: &inr})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Name != "Mike W." || u.Currency != core.INR {
		t.Fatalf("patch not applied: %+v", u)
	}
	persisted, _ := users.Load(context.Background())
	if persisted.Currency != core.INR {
		t.Fatalf("update not persisted: %+v", persisted)
	}

	bad := core.Currency("XYZ")
	if _, err := s.UpdateProfile(context.Background(), core.UserPatch{Currency: &bad}); !errors.Is(err, core.ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
	if cur, _ := s.Current(); cur.Currency != core.INR {
		t.Fatalf("rejected update changed session: %+v", cur)
	}
}

func TestUpdateProfileRequiresSession(t *testing.T) {
	s, _ := newTestStore(t)
	name := "x"
	if _, err := s.UpdateProfile(context.Background(), core.UserPatch{Name: &name}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
