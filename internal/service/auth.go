package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/juliasydor/despesas-pessoais/internal/model"
	"github.com/juliasydor/despesas-pessoais/internal/repository"
	"github.com/juliasydor/despesas-pessoais/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken = errors.New("email already exists")
	// 注册邮箱不存在和密码错误返回同一个错误，模糊报错为了安全
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	userRepo repository.UserRepo
	issuer   *token.Issuer
}

// NewAuthService 构造函数 (依赖注入)
func NewAuthService(userRepo repository.UserRepo, issuer *token.Issuer) *AuthService {
	return &AuthService{userRepo: userRepo, issuer: issuer}
}

// SignUp 注册逻辑，成功后直接颁发 Token
func (s *AuthService) SignUp(ctx context.Context, email, username, password string) (string, error) {
	// 1. 检查邮箱是否已被占用
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("lookup user: %w", err)
	}

	// 2. 密码加密
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	// 3. 落库
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	user := &model.User{
		ID:       id.String(),
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	// 4. 生成 JWT
	return s.issuer.Sign(user.ID, user.Username)
}

// SignIn 登录逻辑，返回 Token
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	// 1. 查用户
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}

	// 2. 比对密码
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	// 3. 生成 JWT
	return s.issuer.Sign(user.ID, user.Username)
}
