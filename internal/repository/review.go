package repository

import (
	"fmt"
	"sort"
	"time"

	"github.com/user/moviexplorer/internal/kv"
	"github.com/user/moviexplorer/internal/model"
)

type ReviewRepository struct {
	store kv.Store
	users *UserRepository
}

func NewReviewRepository(store kv.Store, users *UserRepository) *ReviewRepository {
	return &ReviewRepository{store: store, users: users}
}

// Add 添加影评并持久化
// 作者展示名在写入时从用户集合冗余一份，查不到用户时落 "Anonymous"；
// 评分范围等校验是上层的职责，这里不做
func (r *ReviewRepository) Add(userID, movieID string, rating int, text string) (*model.Review, error) {
	reviews := loadCollection[model.Review](r.store, keyReviews)

	userName := "Anonymous"
	if user := r.users.FindByID(userID); user != nil && user.Name != "" {
		userName = user.Name
	}

	now := time.Now()
	review := model.Review{
		ID:        fmt.Sprintf("review_%s_%s_%d", userID, movieID, now.UnixMilli()),
		UserID:    userID,
		MovieID:   movieID,
		Rating:    rating,
		Text:      text,
		UserName:  userName,
		CreatedAt: now,
	}
	reviews = append(reviews, review)

	if err := saveCollection(r.store, keyReviews, reviews); err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByMovie 获取影片的全部影评，按创建时间倒序
func (r *ReviewRepository) ListByMovie(movieID string) []model.Review {
	reviews := loadCollection[model.Review](r.store, keyReviews)
	result := make([]model.Review, 0)
	for _, review := range reviews {
		if review.MovieID == movieID {
			result = append(result, review)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}
