package repository

import (
	"time"

	"github.com/user/moviexplorer/internal/kv"
	"github.com/user/moviexplorer/internal/model"
)

type UserRepository struct {
	store kv.Store
}

func NewUserRepository(store kv.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Create 创建用户；邮箱与已有用户重复时返回 ErrDuplicateEmail
// 邮箱按存储值逐字节比较，去空白、小写化由调用方在入库前完成
func (r *UserRepository) Create(user *model.User) (*model.User, error) {
	users := loadCollection[model.User](r.store, keyUsers)
	for i := range users {
		if users[i].Email == user.Email {
			return nil, ErrDuplicateEmail
		}
	}

	created := *user
	created.CreatedAt = time.Now()
	users = append(users, created)

	if err := saveCollection(r.store, keyUsers, users); err != nil {
		return nil, err
	}
	return &created, nil
}

// FindByEmail 根据邮箱查找用户，未找到返回 nil
func (r *UserRepository) FindByEmail(email string) *model.User {
	users := loadCollection[model.User](r.store, keyUsers)
	for i := range users {
		if users[i].Email == email {
			return &users[i]
		}
	}
	return nil
}

// FindByID 根据 ID 查找用户，未找到返回 nil
func (r *UserRepository) FindByID(id string) *model.User {
	users := loadCollection[model.User](r.store, keyUsers)
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

// Update 合并部分字段到已有记录并重写整个集合
// 目标用户不存在时返回 ErrUserNotFound
func (r *UserRepository) Update(id string, update *model.UserUpdate) (*model.User, error) {
	users := loadCollection[model.User](r.store, keyUsers)
	idx := -1
	for i := range users {
		if users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrUserNotFound
	}

	if update.Email != nil {
		users[idx].Email = *update.Email
	}
	if update.Name != nil {
		users[idx].Name = *update.Name
	}
	if update.Password != nil {
		users[idx].PasswordHash = *update.Password
	}
	if update.Avatar != nil {
		users[idx].Avatar = *update.Avatar
	}

	if err := saveCollection(r.store, keyUsers, users); err != nil {
		return nil, err
	}
	updated := users[idx]
	return &updated, nil
}
