package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserBeforeSaveHashesRawPassword(t *testing.T) {
	u := &User{Truename: "alice", Phone: "12345678901", RawPassword: "x"}
	require.NoError(t, u.BeforeSave(nil))

	assert.Empty(t, u.RawPassword)
	assert.NotEqual(t, "x", u.Password)
	assert.True(t, u.CheckPassword("x"))
	assert.False(t, u.CheckPassword("y"))
}

func TestUserBeforeSaveKeepsExistingHash(t *testing.T) {
	u := &User{Password: "$2a$10$existing"}
	require.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, "$2a$10$existing", u.Password)
}

func TestUserJSONHidesPassword(t *testing.T) {
	u := User{ID: 1, Truename: "alice", Password: "hash"}
	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.Contains(t, string(raw), `"truename":"alice"`)
}

func TestAdminCheckPwd(t *testing.T) {
	a := &Admin{Name: "root", RawPwd: "secret"}
	require.NoError(t, a.BeforeSave(nil))
	assert.True(t, a.CheckPwd("secret"))
	assert.False(t, a.CheckPwd("secret "))
	assert.False(t, (&Admin{}).CheckPwd(""))
}
