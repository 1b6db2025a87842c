package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

type fakeUserRepo struct {
	usersByEmail map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{usersByEmail: make(map[string]*entity.User)}
	for _, user := range users {
		repo.usersByEmail[user.Email] = user
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.usersByEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.usersByEmail[email], nil
}

func (r *fakeUserRepo) FindByHousehold(context.Context, uuid.UUID) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.usersByEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.usersByEmail[email]
	return ok, nil
}

type fakePasswordService struct {
	weak bool
}

func (s *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func (s *fakePasswordService) ValidatePasswordStrength(string) error {
	if s.weak {
		return errors.New("too weak")
	}
	return nil
}

type fakeTokenService struct {
	invalidated []string
}

func (s *fakeTokenService) GenerateTokenPair(_ context.Context, userID uuid.UUID, _ string) (*adapter.TokenPair, error) {
	return &adapter.TokenPair{
		AccessToken:  "access-" + userID.String(),
		RefreshToken: "refresh-" + userID.String(),
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) InvalidateRefreshToken(_ context.Context, token string) error {
	s.invalidated = append(s.invalidated, token)
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(context.Context, string) (bool, error) {
	return true, nil
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewRegisterUserUseCase(repo, &fakePasswordService{}, &fakeTokenService{})

	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:       "  Ana@Example.COM ",
		DisplayName: "Ana",
		Password:    "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.User.Email != "ana@example.com" {
		t.Errorf("expected normalized email, got %q", output.User.Email)
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Errorf("expected a token pair to be issued")
	}
	if _, ok := repo.usersByEmail["ana@example.com"]; !ok {
		t.Errorf("expected the user to be persisted")
	}
}

func TestRegisterUserDefaultsDisplayName(t *testing.T) {
	uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, &fakeTokenService{})

	output, err := uc.Execute(context.Background(), RegisterUserInput{
		Email:    "ana@example.com",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.User.DisplayName != "ana" {
		t.Errorf("expected display name derived from email, got %q", output.User.DisplayName)
	}
}

func TestRegisterUserValidation(t *testing.T) {
	existing := entity.NewUser("taken@example.com", "Taken", "hashed:pw")

	tests := []struct {
		name     string
		input    RegisterUserInput
		weak     bool
		wantCode domainerror.AuthErrorCode
	}{
		{
			name:     "invalid email",
			input:    RegisterUserInput{Email: "not-an-email", Password: "correct-horse-battery"},
			wantCode: domainerror.ErrCodeInvalidEmail,
		},
		{
			name:     "weak password",
			input:    RegisterUserInput{Email: "ana@example.com", Password: "123"},
			weak:     true,
			wantCode: domainerror.ErrCodeWeakPassword,
		},
		{
			name:     "email already registered",
			input:    RegisterUserInput{Email: "Taken@example.com", Password: "correct-horse-battery"},
			wantCode: domainerror.ErrCodeEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewRegisterUserUseCase(
				newFakeUserRepo(existing),
				&fakePasswordService{weak: tt.weak},
				&fakeTokenService{},
			)

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			authErr, ok := err.(*domainerror.AuthError)
			if !ok {
				t.Fatalf("expected AuthError, got %T", err)
			}
			if authErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, authErr.Code)
			}
		})
	}
}

func TestLoginUser(t *testing.T) {
	user := entity.NewUser("ana@example.com", "Ana", "hashed:correct-horse-battery")
	uc := NewLoginUserUseCase(newFakeUserRepo(user), &fakePasswordService{}, &fakeTokenService{})

	output, err := uc.Execute(context.Background(), LoginUserInput{
		Email:    "ANA@example.com",
		Password: "correct-horse-battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.User.ID != user.ID {
		t.Errorf("expected the stored user to be returned")
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Errorf("expected a token pair to be issued")
	}
}

func TestLoginUserInvalidCredentials(t *testing.T) {
	user := entity.NewUser("ana@example.com", "Ana", "hashed:correct-horse-battery")

	tests := []struct {
		name  string
		input LoginUserInput
	}{
		{"unknown email", LoginUserInput{Email: "nobody@example.com", Password: "whatever"}},
		{"wrong password", LoginUserInput{Email: "ana@example.com", Password: "wrong"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewLoginUserUseCase(newFakeUserRepo(user), &fakePasswordService{}, &fakeTokenService{})

			_, err := uc.Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected an error")
			}
			authErr, ok := err.(*domainerror.AuthError)
			if !ok {
				t.Fatalf("expected AuthError, got %T", err)
			}
			// Both cases return the same generic code so emails cannot be probed.
			if authErr.Code != domainerror.ErrCodeInvalidCredentials {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCredentials, authErr.Code)
			}
		})
	}
}
