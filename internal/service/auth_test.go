package service

import (
	"context"
	"testing"
	"time"

	"github.com/juliasydor/despesas-pessoais/internal/model"
	"github.com/juliasydor/despesas-pessoais/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// fakeUserRepo 内存实现，契约和 gorm 版一致：没找到返回 gorm.ErrRecordNotFound
type fakeUserRepo struct {
	users map[string]*model.User // key 是 email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func newAuthFixture() (*AuthService, *fakeUserRepo, *token.Issuer) {
	repo := newFakeUserRepo()
	issuer := token.NewIssuer("test-secret", time.Hour)
	return NewAuthService(repo, issuer), repo, issuer
}

func TestSignUpReturnsValidToken(t *testing.T) {
	svc, _, issuer := newAuthFixture()

	raw, err := svc.SignUp(context.Background(), "julia@example.com", "julia", "s3cret!")
	require.NoError(t, err)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.UserID)
	assert.Equal(t, "julia", claims.Username)
}

func TestSignUpStoresHashedPassword(t *testing.T) {
	svc, repo, _ := newAuthFixture()

	_, err := svc.SignUp(context.Background(), "julia@example.com", "julia", "s3cret!")
	require.NoError(t, err)

	user := repo.users["julia@example.com"]
	require.NotNil(t, user)
	// 库里绝不能出现明文密码
	assert.NotEqual(t, "s3cret!", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret!")))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "julia@example.com", "julia", "s3cret!")
	require.NoError(t, err)

	// 换密码也没用，邮箱占用就是失败
	_, err = svc.SignUp(ctx, "julia@example.com", "julia2", "another-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInAfterSignUp(t *testing.T) {
	svc, _, issuer := newAuthFixture()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "julia@example.com", "julia", "s3cret!")
	require.NoError(t, err)

	raw, err := svc.SignIn(ctx, "julia@example.com", "s3cret!")
	require.NoError(t, err)

	claims, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "julia", claims.Username)
}

func TestSignInFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "julia@example.com", "julia", "s3cret!")
	require.NoError(t, err)

	// 密码错误和邮箱不存在必须返回同一个错误，不能泄露哪个条件失败
	_, wrongPassword := svc.SignIn(ctx, "julia@example.com", "wrong")
	_, unknownEmail := svc.SignIn(ctx, "nobody@example.com", "s3cret!")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}
