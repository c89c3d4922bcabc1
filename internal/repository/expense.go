package repository

import (
	"context"
	"time"

	"github.com/juliasydor/despesas-pessoais/internal/model"
	"gorm.io/gorm"
)

// ExpenseFilter 列表查询条件，由 Service 层构造
type ExpenseFilter struct {
	Category     string
	From         time.Time
	To           time.Time
	HasDateRange bool
}

// ExpenseRepo 定义接口 (为了以后方便 Mock)
type ExpenseRepo interface {
	Create(ctx context.Context, expense *model.Expense) error
	GetByID(ctx context.Context, id string) (*model.Expense, error)
	List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error)
	Update(ctx context.Context, expense *model.Expense) error
	Delete(ctx context.Context, id string) error
}

type expenseRepo struct {
	db *gorm.DB
}

// NewExpenseRepo 构造函数
func NewExpenseRepo(db *gorm.DB) ExpenseRepo {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	// WithContext 确保请求超时能传递到数据库层
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepo) GetByID(ctx context.Context, id string) (*model.Expense, error) {
	var expense model.Expense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// List 按条件筛选，日期区间为闭区间，结果按日期倒序
func (r *expenseRepo) List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	query := r.db.WithContext(ctx).Model(&model.Expense{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.HasDateRange {
		query = query.Where("date >= ? AND date <= ?", filter.From, filter.To)
	}

	var expenses []model.Expense
	err := query.Order("date DESC").Find(&expenses).Error
	return expenses, err
}

func (r *expenseRepo) Update(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Expense{}).Error
}
