package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/moviexplorer/internal/kv"
	"github.com/user/moviexplorer/internal/model"
	"github.com/user/moviexplorer/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuth(t *testing.T) (*AuthService, *repository.Repositories) {
	t.Helper()
	repos := repository.NewRepositories(kv.NewMemoryStore())
	return NewAuthService(repos), repos
}

func TestSignupNormalizesAndHashes(t *testing.T) {
	auth, repos := newTestAuth(t)

	require.NoError(t, auth.Signup("  Alice@Example.COM ", "s3cret", "  Alice  "))

	user := repos.User.FindByEmail("alice@example.com")
	require.NotNil(t, user)
	assert.Equal(t, "Alice", user.Name)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))

	// 注册成功后不自动登录
	assert.Nil(t, auth.CurrentUser())
	assert.Nil(t, repos.Session.Get())
}

func TestSignupValidation(t *testing.T) {
	auth, _ := newTestAuth(t)

	assert.ErrorIs(t, auth.Signup("", "pw", "Alice"), ErrMissingField)
	assert.ErrorIs(t, auth.Signup("a@b.com", "   ", "Alice"), ErrMissingField)
	assert.ErrorIs(t, auth.Signup("a@b.com", "pw", " "), ErrMissingField)
}

func TestSignupDuplicateEmail(t *testing.T) {
	auth, _ := newTestAuth(t)

	require.NoError(t, auth.Signup("alice@example.com", "pw", "Alice"))
	err := auth.Signup("ALICE@example.com", "other", "Imposter")
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestLoginLogout(t *testing.T) {
	auth, repos := newTestAuth(t)
	require.NoError(t, auth.Signup("alice@example.com", "s3cret", "Alice"))

	// 未知邮箱和错误密码返回同一个错误
	_, err := auth.Login("nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = auth.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := auth.Login("alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)

	// 会话已落盘，当前用户已设置
	require.NotNil(t, repos.Session.Get())
	current := auth.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, user.ID, current.ID)

	require.NoError(t, auth.Logout())
	assert.Nil(t, auth.CurrentUser())
	assert.Nil(t, repos.Session.Get())
}

func TestCurrentUserLazyReloadFromSession(t *testing.T) {
	auth, repos := newTestAuth(t)
	require.NoError(t, auth.Signup("alice@example.com", "s3cret", "Alice"))
	logged, err := auth.Login("alice@example.com", "s3cret")
	require.NoError(t, err)

	// 模拟进程重启：新的服务实例从会话槽恢复当前用户
	fresh := NewAuthService(repos)
	current := fresh.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, logged.ID, current.ID)
	assert.Equal(t, "alice@example.com", current.Email)
}

func TestUpdateUserProfileRefreshesSession(t *testing.T) {
	auth, repos := newTestAuth(t)
	require.NoError(t, auth.Signup("alice@example.com", "s3cret", "Alice"))
	logged, err := auth.Login("alice@example.com", "s3cret")
	require.NoError(t, err)

	newName := "Alice Liddell"
	updated, err := auth.UpdateUserProfile(logged.ID, &model.UserUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", updated.Name)

	// 内存指针和会话槽都已同步
	current := auth.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "Alice Liddell", current.Name)
	stored := repos.Session.Get()
	require.NotNil(t, stored)
	assert.Equal(t, "Alice Liddell", stored.Name)
}

func TestUpdateUserProfileOtherUserKeepsSession(t *testing.T) {
	auth, repos := newTestAuth(t)
	require.NoError(t, auth.Signup("alice@example.com", "s3cret", "Alice"))
	require.NoError(t, auth.Signup("bob@example.com", "s3cret", "Bob"))
	_, err := auth.Login("alice@example.com", "s3cret")
	require.NoError(t, err)

	bob := repos.User.FindByEmail("bob@example.com")
	require.NotNil(t, bob)

	newName := "Robert"
	_, err = auth.UpdateUserProfile(bob.ID, &model.UserUpdate{Name: &newName})
	require.NoError(t, err)

	// 更新的不是当前用户，会话保持 Alice
	current := auth.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "Alice", current.Name)
}

func TestUpdateUserProfileNotFound(t *testing.T) {
	auth, _ := newTestAuth(t)

	name := "ghost"
	_, err := auth.UpdateUserProfile("user_404", &model.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
