package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-user-api/internal/core/database"
	"go-user-api/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1, // 内存库只能单连接
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))
	return db
}

func seedUser(t *testing.T, r *UserRepo, username, email string) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, Email: email, PasswordHash: "x", Name: "N"}
	require.NoError(t, r.Create(u))
	return u
}

func TestCreate_AndFindByID(t *testing.T) {
	r := NewUserRepo(newTestDB(t))

	u := seedUser(t, r, "alice", "alice@example.com")
	require.NotZero(t, u.ID)

	got, err := r.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestCreate_DuplicateUsername(t *testing.T) {
	r := NewUserRepo(newTestDB(t))
	seedUser(t, r, "alice", "alice@example.com")

	err := r.Create(&domain.User{Username: "alice", Email: "other@example.com", PasswordHash: "x", Name: "N"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// 先前状态不受影响
	users, err := r.List()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	r := NewUserRepo(newTestDB(t))
	seedUser(t, r, "alice", "alice@example.com")

	err := r.Create(&domain.User{Username: "bob", Email: "alice@example.com", PasswordHash: "x", Name: "N"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestFind_Missing(t *testing.T) {
	r := NewUserRepo(newTestDB(t))

	u, err := r.FindByUsername("ghost")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = r.FindByEmail("ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, u)

	_, err = r.FindByID(42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_EmptyAndOrdered(t *testing.T) {
	r := NewUserRepo(newTestDB(t))

	users, err := r.List()
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)

	seedUser(t, r, "alice", "alice@example.com")
	seedUser(t, r, "bob", "bob@example.com")

	users, err = r.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestUpdate_Partial(t *testing.T) {
	r := NewUserRepo(newTestDB(t))
	u := seedUser(t, r, "alice", "alice@example.com")

	newName := "Alice Liddell"
	got, err := r.Update(u.ID, domain.UserPatch{Name: &newName})
	require.NoError(t, err)

	// 只有 name 变，其它字段保持
	assert.Equal(t, "Alice Liddell", got.Name)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, "x", got.PasswordHash)
}

func TestUpdate_DuplicateAndMissing(t *testing.T) {
	r := NewUserRepo(newTestDB(t))
	seedUser(t, r, "alice", "alice@example.com")
	bob := seedUser(t, r, "bob", "bob@example.com")

	taken := "alice"
	_, err := r.Update(bob.ID, domain.UserPatch{Username: &taken})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	name := "X"
	_, err = r.Update(9999, domain.UserPatch{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	r := NewUserRepo(newTestDB(t))
	u := seedUser(t, r, "alice", "alice@example.com")

	require.NoError(t, r.Delete(u.ID))

	_, err := r.FindByID(u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// 再删同一个 id → not found
	assert.ErrorIs(t, r.Delete(u.ID), domain.ErrNotFound)
}
