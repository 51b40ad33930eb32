package common_service

import (
	"admin_server/internal/global"
	"admin_server/internal/models"
	"admin_server/internal/utils/testdb"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveCountsOnlyExisting(t *testing.T) {
	all := seedLoginLogs(t, 5)

	count, err := Remove(models.LoginLogModel{}, RemoveRequest{
		IDList: []string{"missing1", "missing2"},
		Msg:    "登录日志",
	})
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = Remove(models.LoginLogModel{}, RemoveRequest{
		IDList: []string{all[0].InfoID, all[1].InfoID, "missing"},
		Msg:    "登录日志",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	var left int64
	global.DB.Model(&models.LoginLogModel{}).Count(&left)
	assert.EqualValues(t, 3, left)
}

func TestRemoveRejectsEmptyList(t *testing.T) {
	seedLoginLogs(t, 2)

	_, err := Remove(models.LoginLogModel{}, RemoveRequest{Msg: "登录日志"})
	assert.Error(t, err)
}

func TestRemoveAll(t *testing.T) {
	seedLoginLogs(t, 4)

	count, err := Remove(models.LoginLogModel{}, RemoveRequest{All: true, Msg: "登录日志"})
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}

func TestRemoveUnscopedHardDeletes(t *testing.T) {
	db := testdb.Setup(t, &models.DictTypeModel{})
	require.NoError(t, db.Create(&models.DictTypeModel{DictTypeID: "a", DictType: "t1"}).Error)

	count, err := Remove(models.DictTypeModel{}, RemoveRequest{
		IDList:   []string{"a"},
		Unscoped: true,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	var left int64
	db.Unscoped().Model(&models.DictTypeModel{}).Count(&left)
	assert.Zero(t, left)
}

func TestConditionsSkipEmptyValues(t *testing.T) {
	c := NewConditions().Eq("a", "").In("b", nil).Gte("c", nil).Lte("d", nil).Like([]string{"e"}, "")
	assert.Zero(t, c.Len())
	assert.Nil(t, c.Expression())

	c.Eq("a", "1").Like([]string{"e", "f"}, "k")
	assert.Equal(t, 2, c.Len())
	assert.NotNil(t, c.Expression())
}
