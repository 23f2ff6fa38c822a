package kv

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRecord kv_store 表的行
type kvRecord struct {
	Key   string `gorm:"column:key;primaryKey"`
	Value string `gorm:"column:value;not null"`
}

func (kvRecord) TableName() string { return "kv_store" }

// PostgresStore 通过 gorm 访问的 Postgres 后端
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore 建立连接并自动建表
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("初始化 kv_store 表失败: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(key string) (string, bool, error) {
	var record kvRecord
	err := s.db.Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return record.Value, true, nil
}

func (s *PostgresStore) Set(key, value string) error {
	record := &kvRecord{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(record).Error
}

func (s *PostgresStore) Remove(key string) error {
	return s.db.Where("key = ?", key).Delete(&kvRecord{}).Error
}

func (s *PostgresStore) RemoveMany(keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	return s.db.Where("key IN ?", keys).Delete(&kvRecord{}).Error
}
