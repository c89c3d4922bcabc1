package model

import "time"

// Expense 是映射数据库表的结构体
type Expense struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Amount    float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category  string    `gorm:"type:varchar(100);not null;index" json:"category"`
	Date      time.Time `gorm:"not null;index" json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 强制指定表名
func (Expense) TableName() string {
	return "expenses"
}
