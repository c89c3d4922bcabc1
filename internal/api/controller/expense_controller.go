package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/juliasydor/despesas-pessoais/internal/api/response"
	"github.com/juliasydor/despesas-pessoais/internal/model"
	"github.com/juliasydor/despesas-pessoais/internal/service"
)

// 日期在接口上统一用 ISO 格式 (如 2025-05-27)
const dateLayout = "2006-01-02"

type ExpenseController struct {
	service *service.ExpenseService
}

// NewExpenseController 构造函数
func NewExpenseController(s *service.ExpenseService) *ExpenseController {
	return &ExpenseController{service: s}
}

// ==========================================
// DTOs (请求/响应参数定义)
// ==========================================

type CreateExpenseRequest struct {
	Title    string   `json:"title" binding:"required"`
	Amount   *float64 `json:"amount" binding:"required,gte=0"`
	Category string   `json:"category" binding:"required"`
	Date     string   `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateExpenseRequest 部分更新，所有字段可选
type UpdateExpenseRequest struct {
	Title    *string  `json:"title" binding:"omitempty,min=1"`
	Amount   *float64 `json:"amount" binding:"omitempty,gte=0"`
	Category *string  `json:"category" binding:"omitempty,min=1"`
	Date     *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type ListExpenseRequest struct {
	Month    string `form:"month" binding:"omitempty,numeric"`
	Year     string `form:"year" binding:"omitempty,numeric"`
	Category string `form:"category"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ==========================================
// Handlers
// ==========================================

// Create 新建支出
// @Summary 新建支出
// @Description 创建一笔支出记录，金额必须非负
// @Tags Expense
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateExpenseRequest true "支出参数"
// @Success 201 {object} model.Expense
// @Failure 400 {object} response.ErrorBody "参数错误"
// @Router /expenses [post]
func (ctrl *ExpenseController) Create(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	// binding 已经保证了格式，这里不会失败
	date, _ := time.Parse(dateLayout, req.Date)

	expense, err := ctrl.service.Create(c.Request.Context(), service.ExpenseInput{
		Title:    req.Title,
		Amount:   *req.Amount,
		Category: req.Category,
		Date:     date,
	})
	if err != nil {
		slog.Error("create expense failed", "err", err)
		response.Error(c, http.StatusInternalServerError, "create expense failed")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// List 支出列表
// @Summary 支出列表
// @Description 按 月/年/分类 筛选，结果按日期倒序
// @Tags Expense
// @Produce json
// @Security BearerAuth
// @Param month query string false "月份 (1-12)"
// @Param year query string false "年份"
// @Param category query string false "分类"
// @Success 200 {array} model.Expense
// @Router /expenses [get]
func (ctrl *ExpenseController) List(c *gin.Context) {
	var req ListExpenseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query: "+err.Error())
		return
	}

	expenses, err := ctrl.service.List(c.Request.Context(), service.ExpenseQuery{
		Month:    req.Month,
		Year:     req.Year,
		Category: req.Category,
	})
	if err != nil {
		slog.Error("list expenses failed", "err", err)
		response.Error(c, http.StatusInternalServerError, "list expenses failed")
		return
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}

	c.JSON(http.StatusOK, expenses)
}

// Get 查询单笔支出
// @Summary 查询单笔支出
// @Tags Expense
// @Produce json
// @Security BearerAuth
// @Param id path string true "支出 ID"
// @Success 200 {object} model.Expense
// @Failure 404 {object} response.ErrorBody "记录不存在"
// @Router /expenses/{id} [get]
func (ctrl *ExpenseController) Get(c *gin.Context) {
	expense, err := ctrl.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctrl.writeError(c, err, "get expense failed")
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Update 更新支出
// @Summary 更新支出
// @Description 部分更新，只覆盖传入的字段
// @Tags Expense
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "支出 ID"
// @Param request body UpdateExpenseRequest true "更新参数"
// @Success 200 {object} model.Expense
// @Failure 404 {object} response.ErrorBody "记录不存在"
// @Router /expenses/{id} [patch]
func (ctrl *ExpenseController) Update(c *gin.Context) {
	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	update := service.ExpenseUpdate{
		Title:    req.Title,
		Amount:   req.Amount,
		Category: req.Category,
	}
	if req.Date != nil {
		date, _ := time.Parse(dateLayout, *req.Date)
		update.Date = &date
	}

	expense, err := ctrl.service.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		ctrl.writeError(c, err, "update expense failed")
		return
	}

	c.JSON(http.StatusOK, expense)
}

// Delete 删除支出
// @Summary 删除支出
// @Tags Expense
// @Produce json
// @Security BearerAuth
// @Param id path string true "支出 ID"
// @Success 200 {object} controller.MessageResponse
// @Failure 404 {object} response.ErrorBody "记录不存在"
// @Router /expenses/{id} [delete]
func (ctrl *ExpenseController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		ctrl.writeError(c, err, "delete expense failed")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "expense deleted successfully"})
}

// writeError 统一的错误码映射
func (ctrl *ExpenseController) writeError(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, service.ErrExpenseNotFound) {
		response.Error(c, http.StatusNotFound, "expense not found")
		return
	}
	slog.Error(logMsg, "err", err)
	response.Error(c, http.StatusInternalServerError, logMsg)
}
