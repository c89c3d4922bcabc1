package database

import (
	"fmt"
	"time"

	"github.com/juliasydor/despesas-pessoais/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQLConnection 建立连接并自动建表 (Auto Migrate)
func NewMySQLConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Expense{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
