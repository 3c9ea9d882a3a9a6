package usecase

import (
	"context"
	"strings"
	"testing"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeIssuer encodes the username and role into readable tokens.
type fakeIssuer struct{}

func (fakeIssuer) Issue(user *entity.User) (*entity.TokenPair, error) {
	return &entity.TokenPair{AccessToken: "access:" + user.Username, RefreshToken: "refresh:" + user.Username}, nil
}

func (fakeIssuer) IssueAccess(user *entity.User) (string, error) {
	return "access:" + user.Username + ":" + user.Role, nil
}

func (fakeIssuer) VerifyRefresh(token string) (string, error) {
	if !strings.HasPrefix(token, "refresh:") {
		return "", repository.ErrInvalidToken
	}
	return strings.TrimPrefix(token, "refresh:"), nil
}

func newAuthService(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	users := &fakeUserRepo{users: map[string]*entity.User{
		"ops": {ID: primitive.NewObjectID(), Username: "ops", PasswordHash: hash, Role: "Admin"},
	}}
	return NewAuthService(users, fakeIssuer{}, testLogger()), users
}

func TestLogin(t *testing.T) {
	svc, _ := newAuthService(t)

	user, pair, err := svc.Login(context.Background(), "ops", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "ops", user.Username)
	assert.Equal(t, "access:ops", pair.AccessToken)
	assert.Equal(t, "refresh:ops", pair.RefreshToken)
}

func TestLoginRejects(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Login(context.Background(), "ops", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(context.Background(), "ghost", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh(t *testing.T) {
	svc, users := newAuthService(t)
	_, pair, err := svc.Login(context.Background(), "ops", "s3cret")
	require.NoError(t, err)

	users.users["ops"].Role = "Viewer"
	access, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "access:ops:Viewer", access)

	_, err = svc.Refresh(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, repository.ErrInvalidToken)

	delete(users.users, "ops")
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, repository.ErrInvalidToken)
}
