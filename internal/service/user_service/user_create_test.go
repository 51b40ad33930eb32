package user_service

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
	"admin_server/internal/utils/pwd"
	"admin_server/internal/utils/testdb"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	testdb.Setup(t, &models.UserModel{})
	us := NewUserService(global.Log)

	user, err := us.Create(UserCreateRequest{UserName: "admin", Password: "123456", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, user.UserID, 32)
	assert.True(t, pwd.CompareHashAndPassword(user.Password, "123456"))
	assert.Equal(t, models.StatusEnable, user.Status)

	_, err = us.Create(UserCreateRequest{UserName: "admin", Password: "x", Role: models.RoleUser})
	assert.ErrorIs(t, err, ErrUserExist)
}
