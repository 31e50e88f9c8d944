package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/prakriti-backend/internal/prakriti"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserCascadesAnalyses(t *testing.T) {
	f := newFixture(t)
	user := register(t, f, "asha@example.com")
	other := register(t, f, "ravi@example.com")

	for _, d := range prakriti.Order {
		_, err := f.analyses.Analyze(user.User.ID, template(t, d))
		require.NoError(t, err)
	}
	_, err := f.analyses.Analyze(other.User.ID, template(t, prakriti.Vata))
	require.NoError(t, err)

	require.NoError(t, f.accounts.DeleteUser(user.User.ID))

	var remaining int64
	require.NoError(t, f.db.Model(&models.Analysis{}).Where("user_id = ?", user.User.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)

	require.NoError(t, f.db.Model(&models.Analysis{}).Where("user_id = ?", other.User.ID).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	_, err = f.accounts.GetUser(user.User.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUnknownUser(t *testing.T) {
	f := newFixture(t)
	err := f.accounts.DeleteUser(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateUserWithRole(t *testing.T) {
	f := newFixture(t)

	user, err := f.accounts.CreateUser(&dto.CreateUserRequest{
		Email: "ops@example.com", Password: "password123", Role: models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())

	_, err = f.accounts.CreateUser(&dto.CreateUserRequest{
		Email: "x@example.com", Password: "password123", Role: "root",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)

	plain, err := f.accounts.CreateUser(&dto.CreateUserRequest{Email: "y@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, plain.Role)
}

func TestUpdateUser(t *testing.T) {
	f := newFixture(t)
	asha := register(t, f, "asha@example.com")
	register(t, f, "ravi@example.com")

	taken := "ravi@example.com"
	_, err := f.accounts.UpdateUser(asha.User.ID, &dto.UpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)

	email := "asha.k@example.com"
	role := models.RoleAdmin
	name := "Asha K"
	updated, err := f.accounts.UpdateUser(asha.User.ID, &dto.UpdateUserRequest{Email: &email, Role: &role, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, email, updated.Email)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, "Asha K", updated.Name)
	assert.Equal(t, 31, updated.Age)

	_, err = f.accounts.UpdateUser(uuid.New(), &dto.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPromoteAdminAndSeed(t *testing.T) {
	f := newFixture(t)
	asha := register(t, f, "asha@example.com")
	register(t, f, "ravi@example.com")

	user, err := f.accounts.PromoteAdmin("ASHA@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	role, err := f.accounts.Role(asha.User.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	n, err := database.SeedAdmins(f.db, []string{"ravi@example.com", "asha@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = f.accounts.PromoteAdmin("ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
