package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"shop_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength はパスワードの最低文字数を定義します。
	minPasswordLength = 8

	// dummyPasswordHash はユーザーが存在しない場合にbcrypt比較で使うハッシュです。
	dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーを永続化し、指定したロールを同じトランザクションで付与します。
	// 存在しないロールは付与されません。
	// ユーザー名またはメールアドレスが重複する場合、ErrUserAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.AppUser, roleNames ...string) error

	// FindByUsername はユーザー名に一致するユーザーを返します。存在しない場合は (nil, nil) です。
	FindByUsername(ctx context.Context, username string) (*entity.AppUser, error)

	// FindRoleByUsername はユーザーに付与されたロール名を返します。
	FindRoleByUsername(ctx context.Context, username string) ([]string, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, username string, roles []string) (string, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users        UserRepository
	jwtGenerator JWTGenerator
	defaultRole  string
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
// 新規ユーザーにはentity.RoleUserが付与されます。
func NewAuthUsecase(users UserRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		users:        users,
		jwtGenerator: jwtGenerator,
		defaultRole:  entity.RoleUser,
	}
}

// validatePassword はパスワードがセキュリティ要件を満たしているかチェックします。
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Signup はハッシュ化されたパスワードで新規ユーザーを登録し、デフォルトロールを付与します。
// 登録とロール付与はまとめて成功するか、まとめて失敗します。
func (u *authUsecase) Signup(ctx context.Context, username, email, password string) error {
	if err := validatePassword(password); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.AppUser{Username: username, Email: email, Password: string(hashed)}
	return u.users.Create(ctx, user, u.defaultRole)
}

// Login はユーザーを認証し、成功時にロールを含むJWTトークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	passwordHash := dummyPasswordHash
	if user != nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if user == nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	roles, err := u.users.FindRoleByUsername(ctx, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to resolve roles: %w", err)
	}

	token, err := u.jwtGenerator.GenerateToken(user.ID, user.Username, roles)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
