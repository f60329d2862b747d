package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/vibenest/vibenest-backend/internal/domain"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }

func registerRequest() *RegisterRequest {
	return &RegisterRequest{
		Email:       "anna@example.com",
		Password:    "correct horse",
		DisplayName: "Anna",
		Role:        "renter",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testSecret, 60)

	reg, err := uc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Token == "" || reg.User == nil || reg.User.ID == 0 {
		t.Fatalf("incomplete register response: %+v", reg)
	}
	if reg.User.PasswordHash == "correct horse" {
		t.Error("password stored in plain text")
	}

	login, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "anna@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Errorf("login returned user %d, want %d", login.User.ID, reg.User.ID)
	}
}

func TestRegisterNormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testSecret, 60)

	req := registerRequest()
	req.Email = "  Anna@Example.COM "
	if _, err := uc.Register(context.Background(), req); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "anna@example.com",
		Password: "correct horse",
	}); err != nil {
		t.Errorf("login with normalized email failed: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testSecret, 60)

	if _, err := uc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := uc.Register(context.Background(), registerRequest())
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testSecret, 60)

	if _, err := uc.Register(context.Background(), registerRequest()); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "anna@example.com",
		Password: "wrong",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	uc := NewAuthUseCase(newFakeUserRepo(), testSecret, 60)

	_, err := uc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestVerifyToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testSecret, 60)

	reg, err := uc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	userID, err := uc.VerifyToken(reg.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != reg.User.ID {
		t.Errorf("got user %d, want %d", userID, reg.User.ID)
	}
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testSecret, 60)

	reg, err := uc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	other := NewAuthUseCase(repo, "another-secret-another-secret-ab", 60)
	if _, err := other.VerifyToken(reg.Token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("foreign secret: got %v, want ErrInvalidToken", err)
	}

	if _, err := uc.VerifyToken("not.a.token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("garbage: got %v, want ErrInvalidToken", err)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, testSecret, -1)

	reg, err := uc.Register(context.Background(), registerRequest())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := uc.VerifyToken(reg.Token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("expired token: got %v, want ErrInvalidToken", err)
	}
}
