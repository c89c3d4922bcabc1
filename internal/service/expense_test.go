package service

import (
	"context"
	"testing"
	"time"

	"github.com/juliasydor/despesas-pessoais/internal/model"
	"github.com/juliasydor/despesas-pessoais/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeExpenseRepo 内存实现，同时记录最后一次收到的 filter
type fakeExpenseRepo struct {
	expenses   map[string]*model.Expense
	lastFilter repository.ExpenseFilter
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[string]*model.Expense)}
}

func (r *fakeExpenseRepo) Create(_ context.Context, expense *model.Expense) error {
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetByID(_ context.Context, id string) (*model.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *expense
	return &cp, nil
}

func (r *fakeExpenseRepo) List(_ context.Context, filter repository.ExpenseFilter) ([]model.Expense, error) {
	r.lastFilter = filter
	var out []model.Expense
	for _, e := range r.expenses {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, expense *model.Expense) error {
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, id string) error {
	delete(r.expenses, id)
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestListFilterMonthAndYear(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)

	_, err := svc.List(context.Background(), ExpenseQuery{Month: "05", Year: "2025"})
	require.NoError(t, err)

	f := repo.lastFilter
	assert.True(t, f.HasDateRange)
	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), f.From)
	assert.Equal(t, time.Date(2025, time.May, 31, 23, 59, 59, 0, time.UTC), f.To)
}

func TestListFilterMonthRollover(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)
	ctx := context.Background()

	// 12 月要能正确翻年
	_, err := svc.List(ctx, ExpenseQuery{Month: "12", Year: "2025"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC), repo.lastFilter.To)

	// 闰年二月
	_, err = svc.List(ctx, ExpenseQuery{Month: "2", Year: "2024"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC), repo.lastFilter.To)

	// 平年二月
	_, err = svc.List(ctx, ExpenseQuery{Month: "2", Year: "2025"})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC), repo.lastFilter.To)
}

func TestListFilterYearOnly(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)

	_, err := svc.List(context.Background(), ExpenseQuery{Year: "2025"})
	require.NoError(t, err)

	f := repo.lastFilter
	assert.True(t, f.HasDateRange)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), f.From)
	assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC), f.To)
}

func TestListFilterNoDate(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)
	ctx := context.Background()

	// 只有 month 没有 year 不构成日期区间
	_, err := svc.List(ctx, ExpenseQuery{Month: "05"})
	require.NoError(t, err)
	assert.False(t, repo.lastFilter.HasDateRange)

	_, err = svc.List(ctx, ExpenseQuery{Category: "Food"})
	require.NoError(t, err)
	assert.False(t, repo.lastFilter.HasDateRange)
	assert.Equal(t, "Food", repo.lastFilter.Category)
}

func TestCreateAssignsID(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)

	expense, err := svc.Create(context.Background(), ExpenseInput{
		Title:    "Lunch",
		Amount:   45.50,
		Category: "Food",
		Date:     date(2025, time.May, 27),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, 45.50, repo.expenses[expense.ID].Amount)
}

func TestUpdatePartial(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, ExpenseInput{
		Title:    "Lunch",
		Amount:   45.50,
		Category: "Food",
		Date:     date(2025, time.May, 27),
	})
	require.NoError(t, err)

	newAmount := 50.00
	updated, err := svc.Update(ctx, created.ID, ExpenseUpdate{Amount: &newAmount})
	require.NoError(t, err)

	// 只有 amount 变，其余字段保持原值
	assert.Equal(t, 50.00, updated.Amount)
	assert.Equal(t, "Lunch", updated.Title)
	assert.Equal(t, "Food", updated.Category)
	assert.Equal(t, created.Date, updated.Date)
}

func TestUpdateMissingExpense(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)

	title := "Dinner"
	_, err := svc.Update(context.Background(), "no-such-id", ExpenseUpdate{Title: &title})
	assert.ErrorIs(t, err, ErrExpenseNotFound)
	assert.Empty(t, repo.expenses)
}

func TestDeleteMissingExpense(t *testing.T) {
	repo := newFakeExpenseRepo()
	svc := NewExpenseService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, ExpenseInput{Title: "Lunch", Amount: 10, Category: "Food", Date: date(2025, time.May, 27)})
	require.NoError(t, err)

	err = svc.Delete(ctx, "no-such-id")
	assert.ErrorIs(t, err, ErrExpenseNotFound)
	// 删不存在的 ID 不能影响已有数据
	assert.Len(t, repo.expenses, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, repo.expenses)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}
