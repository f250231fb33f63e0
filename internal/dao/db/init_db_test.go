package db

import (
	"testing"

	"library_server/internal/config"
	"library_server/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGormLoggerSkipsRecordNotFound(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	defer zap.ReplaceGlobals(zap.New(core))()

	gdb, err := Open(&config.DatabaseConfig{Driver: "sqlite", SqlitePath: ":memory:"})
	require.NoError(t, err)
	defer Close(gdb)
	logs.TakeAll()

	var u model.User
	require.Error(t, gdb.First(&u, 42).Error)
	assert.Zero(t, logs.Len())

	// 其他错误照常进 zap
	require.Error(t, gdb.Exec("SELECT * FROM no_such_table").Error)
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "no_such_table")
}

func TestSeedIsIdempotent(t *testing.T) {
	gdb, err := Open(&config.DatabaseConfig{Driver: "sqlite", SqlitePath: ":memory:"})
	require.NoError(t, err)
	defer Close(gdb)

	admin := &config.AdminConfig{Name: "root", Password: "pw"}
	require.NoError(t, Seed(gdb, admin))
	require.NoError(t, Seed(gdb, admin))

	var n int64
	require.NoError(t, gdb.Model(&model.Admin{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
	require.NoError(t, gdb.Model(&model.Category{}).Where("name = ?", DefaultCategory).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}
