package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/juliasydor/despesas-pessoais/internal/model"
	"github.com/juliasydor/despesas-pessoais/internal/repository"
	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseInput 是前端传来的原始参数 (DTO)
type ExpenseInput struct {
	Title    string
	Amount   float64
	Category string
	Date     time.Time
}

// ExpenseUpdate 部分更新参数，nil 表示该字段不变
type ExpenseUpdate struct {
	Title    *string
	Amount   *float64
	Category *string
	Date     *time.Time
}

// ExpenseQuery 列表筛选参数，month/year 为十进制字符串 (如 "05"/"2025")
type ExpenseQuery struct {
	Month    string
	Year     string
	Category string
}

type ExpenseService struct {
	repo repository.ExpenseRepo
}

// NewExpenseService 构造函数 (依赖注入)
func NewExpenseService(repo repository.ExpenseRepo) *ExpenseService {
	return &ExpenseService{repo: repo}
}

// Create 新建一笔支出
func (s *ExpenseService) Create(ctx context.Context, input ExpenseInput) (*model.Expense, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	expense := &model.Expense{
		ID:       id.String(),
		Title:    input.Title,
		Amount:   input.Amount,
		Category: input.Category,
		Date:     input.Date,
	}
	if err := s.repo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	slog.Info("expense created", "id", expense.ID, "category", expense.Category)
	return expense, nil
}

// List 按 月/年/分类 筛选，结果按日期倒序
func (s *ExpenseService) List(ctx context.Context, query ExpenseQuery) ([]model.Expense, error) {
	filter := repository.ExpenseFilter{Category: query.Category}

	year, yearErr := strconv.Atoi(query.Year)
	month, monthErr := strconv.Atoi(query.Month)

	switch {
	case yearErr == nil && monthErr == nil:
		// [当月 1 日 00:00:00, 当月最后一天 23:59:59]
		// time.Date 的 day 0 会规约到上个月最后一天，自动处理大小月和闰年
		filter.From = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		filter.To = time.Date(year, time.Month(month)+1, 0, 23, 59, 59, 0, time.UTC)
		filter.HasDateRange = true
	case yearErr == nil:
		filter.From = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		filter.To = time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
		filter.HasDateRange = true
	}

	return s.repo.List(ctx, filter)
}

// Get 按 ID 查询
func (s *ExpenseService) Get(ctx context.Context, id string) (*model.Expense, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return expense, nil
}

// Update 部分更新，只覆盖传入的字段
func (s *ExpenseService) Update(ctx context.Context, id string, update ExpenseUpdate) (*model.Expense, error) {
	// 1. 先查出来，确认是否存在
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// 2. 更新字段
	if update.Title != nil {
		existing.Title = *update.Title
	}
	if update.Amount != nil {
		existing.Amount = *update.Amount
	}
	if update.Category != nil {
		existing.Category = *update.Category
	}
	if update.Date != nil {
		existing.Date = *update.Date
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	return existing, nil
}

// Delete 删除一笔支出
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	slog.Info("expense deleted", "id", id)
	return nil
}
