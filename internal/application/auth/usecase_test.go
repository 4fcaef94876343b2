package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karibu-groceries/kgl-api/internal/application/dto"
	"github.com/karibu-groceries/kgl-api/internal/domain"
	"github.com/karibu-groceries/kgl-api/internal/infrastructure/memory"
	"github.com/karibu-groceries/kgl-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuth() (*AuthUseCase, *memory.UserRepo) {
	repo := memory.NewUserRepository()
	return NewAuthUseCase(repo, JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "kgl-test"}), repo
}

func alex() dto.RegisterRequest {
	return dto.RegisterRequest{Username: "Alex", Email: "alex@kgl.com", Password: "password123", Role: "Manager", Status: "Active"}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	uc, repo := newAuth()

	user, err := uc.RegisterUser(ctx, alex())
	require.NoError(t, err)
	assert.Equal(t, "Manager", user.Role)

	stored, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash, "password must never be stored in plaintext")
	assert.True(t, CheckPassword("password123", stored.PasswordHash))

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "alex@kgl.com", Password: "password123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	userID, role, err := jwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "Manager", role)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth()
	_, err := uc.RegisterUser(ctx, alex())
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "alex@kgl.com", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ghost@kgl.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_InactiveAccount(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth()
	in := alex()
	in.Status = "Inactive"
	_, err := uc.RegisterUser(ctx, in)
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: in.Email, Password: in.Password})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_ValidationStopsPersistence(t *testing.T) {
	ctx := context.Background()
	uc, repo := newAuth()
	in := alex()
	in.Role = "Owner"

	_, err := uc.RegisterUser(ctx, in)
	assert.ErrorIs(t, err, domain.ErrValidation)

	list, _ := repo.List(ctx)
	assert.Empty(t, list)
}

func TestRegister_OverlongPasswordRejected(t *testing.T) {
	ctx := context.Background()
	uc, repo := newAuth()

	for _, pw := range []string{
		strings.Repeat("x", 100),
		strings.Repeat("é", 40), // 40 runes, 80 bytes
	} {
		in := alex()
		in.Password = pw
		_, err := uc.RegisterUser(ctx, in)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "password", ve.Field)
		assert.Equal(t, "maxbytes", ve.Rule)
	}
	list, _ := repo.List(ctx)
	assert.Empty(t, list)

	in := alex()
	in.Password = strings.Repeat("x", 72)
	_, err := uc.RegisterUser(ctx, in)
	assert.NoError(t, err, "72 bytes is the bcrypt limit and is accepted")
}

func TestHashPassword_OverBcryptLimit(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73))
	assert.Error(t, err)
}

func TestRegister_DuplicateEmailAllowed(t *testing.T) {
	ctx := context.Background()
	uc, repo := newAuth()
	_, err := uc.RegisterUser(ctx, alex())
	require.NoError(t, err)
	_, err = uc.RegisterUser(ctx, alex())
	require.NoError(t, err)

	list, _ := repo.List(ctx)
	assert.Len(t, list, 2)
}
