package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, f *fixture, email string) *dto.AuthResponse {
	t.Helper()
	resp, err := f.auth.Register(&dto.RegisterRequest{
		Email:    email,
		Password: "password123",
		Name:     "Asha",
		Age:      31,
		Gender:   "female",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterStoresHashAndIssuesToken(t *testing.T) {
	f := newFixture(t)
	resp := register(t, f, "Asha@Example.com ")

	assert.Equal(t, "asha@example.com", resp.User.Email)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.Nil(t, resp.User.Prakriti)
	assert.NotEmpty(t, resp.Token)

	var stored models.User
	require.NoError(t, f.db.First(&stored, "id = ?", resp.User.ID).Error)
	assert.NotEqual(t, "password123", stored.Password)
	assert.Contains(t, stored.Password, "$2a$")

	token, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(f.cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
	assert.Equal(t, "asha@example.com", claims["email"])
	assert.Equal(t, models.RoleUser, claims["role"])

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(time.Hour.Seconds()), exp-iat)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	register(t, f, "asha@example.com")

	_, err := f.auth.Register(&dto.RegisterRequest{Email: "ASHA@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.auth.Register(&dto.RegisterRequest{Email: "", Password: "password123"})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = f.auth.Register(&dto.RegisterRequest{Email: "a@b.c", Password: "short"})
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = f.auth.Register(&dto.RegisterRequest{Email: "a@b.c", Password: "password123", Age: -1})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestRegisterAdminSeedEmail(t *testing.T) {
	f := newFixture(t)
	resp := register(t, f, "admin@example.com")
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
}

func TestLoginDoesNotDiscloseFailureReason(t *testing.T) {
	f := newFixture(t)
	register(t, f, "asha@example.com")

	_, unknown := f.auth.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	_, wrong := f.auth.Login(&dto.LoginRequest{Email: "asha@example.com", Password: "wrong-password"})

	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	assert.ErrorIs(t, wrong, ErrInvalidCredentials)
	assert.Equal(t, unknown.Error(), wrong.Error())
	assert.Equal(t, KindAuth, KindOf(unknown))

	resp, err := f.auth.Login(&dto.LoginRequest{Email: "asha@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestUpdateProfileIsPartial(t *testing.T) {
	f := newFixture(t)
	resp := register(t, f, "asha@example.com")

	age := 32
	updated, err := f.auth.UpdateProfile(resp.User.ID, &dto.UpdateProfileRequest{Age: &age})
	require.NoError(t, err)
	assert.Equal(t, 32, updated.Age)
	assert.Equal(t, "Asha", updated.Name)
	assert.Equal(t, "female", updated.Gender)
	assert.Equal(t, "asha@example.com", updated.Email)

	bad := 200
	_, err = f.auth.UpdateProfile(resp.User.ID, &dto.UpdateProfileRequest{Age: &bad})
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestCurrentUserCarriesLatestResult(t *testing.T) {
	f := newFixture(t)
	resp := register(t, f, "asha@example.com")

	_, err := f.analyses.Analyze(resp.User.ID, template(t, "Kapha"))
	require.NoError(t, err)

	current, err := f.auth.CurrentUser(resp.User.ID)
	require.NoError(t, err)
	require.NotNil(t, current.Prakriti)
	assert.Equal(t, "Kapha", string(current.Prakriti.Primary))
}
