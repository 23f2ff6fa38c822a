package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/user/moviexplorer/internal/model"
	"github.com/user/moviexplorer/internal/repository"
	"github.com/user/moviexplorer/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials 登录失败统一返回，不区分邮箱不存在和密码错误
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrMissingField 注册信息缺失
	ErrMissingField = errors.New("name, email and password are required")
)

// bcryptCost 密码哈希强度
const bcryptCost = 12

// AuthService 凭证服务
// 负责密码哈希校验和“当前用户”指针；指针是服务实例上的显式状态，
// 登录/注册成功时设置，登出时清空，首次查询时从会话槽懒加载
type AuthService struct {
	repos *repository.Repositories

	mu      sync.Mutex
	current *model.SessionUser
}

func NewAuthService(repos *repository.Repositories) *AuthService {
	return &AuthService{repos: repos}
}

// Signup 注册新用户，注册成功后不自动登录
// 邮箱在这里完成去空白和小写化，存储层只做逐字节比较
func (s *AuthService) Signup(email, password, name string) error {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("密码哈希失败: %w", err)
	}

	_, err = s.repos.User.Create(&model.User{
		ID:           fmt.Sprintf("user_%d_%s", time.Now().UnixMilli(), utils.RandomSuffix()),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	})
	return err
}

// Login 校验邮箱密码，成功后写入会话槽并设置当前用户
func (s *AuthService) Login(email, password string) (*model.SessionUser, error) {
	user := s.repos.User.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	sessionUser := &model.SessionUser{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Avatar: user.Avatar,
	}
	if err := s.repos.Session.Store(sessionUser); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = sessionUser
	s.mu.Unlock()
	return sessionUser, nil
}

// Logout 清空当前用户并删除持久化会话
func (s *AuthService) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.repos.Session.Clear()
}

// CurrentUser 返回当前登录用户，未登录返回 nil
// 内存指针为空时尝试从会话槽恢复
func (s *AuthService) CurrentUser() *model.SessionUser {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		return s.current
	}
	if stored := s.repos.Session.Get(); stored != nil {
		s.current = stored
		return stored
	}
	return nil
}

// GetUserProfile 查询用户资料，未找到返回 nil
func (s *AuthService) GetUserProfile(userID string) *model.User {
	return s.repos.User.FindByID(userID)
}

// UpdateUserProfile 更新用户资料
// 更新的是当前登录用户时，同步刷新内存指针和会话槽
func (s *AuthService) UpdateUserProfile(userID string, update *model.UserUpdate) (*model.User, error) {
	updated, err := s.repos.User.Update(userID, update)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.ID == userID {
		s.current = &model.SessionUser{
			ID:     updated.ID,
			Email:  updated.Email,
			Name:   updated.Name,
			Avatar: updated.Avatar,
		}
		if err := s.repos.Session.Store(s.current); err != nil {
			return nil, err
		}
	}
	return updated, nil
}
