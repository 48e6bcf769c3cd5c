package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/btdosparca/league-system/models"
	"github.com/btdosparca/league-system/repositories"
)

type stubUserRepo struct {
	users  map[string]*models.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*models.User)}
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, exists := s.users[user.Email]; exists {
		return repositories.ErrUserEmailConflict
	}
	s.nextID++
	user.ID = s.nextID
	s.users[user.Email] = user
	return nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func TestRegister(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())

	user, err := svc.Register(context.Background(), models.Credentials{
		Email:    " Admin@League.com ",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "admin@league.com", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse")))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())

	_, err := svc.Register(context.Background(), models.Credentials{Email: "", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrAuthEmailRequired)

	_, err = svc.Register(context.Background(), models.Credentials{Email: "a@b.com", Password: "short"})
	assert.ErrorIs(t, err, ErrAuthPasswordTooShort)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo())
	creds := models.Credentials{Email: "a@b.com", Password: "correct horse"}

	_, err := svc.Register(context.Background(), creds)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), creds)
	assert.ErrorIs(t, err, repositories.ErrUserEmailConflict)
}

func TestLogin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo)
	creds := models.Credentials{Email: "a@b.com", Password: "correct horse"}

	_, err := svc.Register(context.Background(), creds)
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), creds)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)

	_, err = svc.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)

	_, err = svc.Login(context.Background(), models.Credentials{Email: "nobody@b.com", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrAuthInvalidCredentials)
}
