// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/platform/db"
	"shop_backend/internal/shared/paging"
)

// findRoleByUsernameSQL はユーザー名からロール名を解決するネイティブクエリです。
// パーミッションアクティビティを持たないロールは結果に含まれません。
const findRoleByUsernameSQL = "SELECT DISTINCT r.name FROM tbl_role_permission_activities rpa " +
	"INNER JOIN tbl_roles r ON rpa.role_id = r.id " +
	"INNER JOIN tbl_user_roles usr ON usr.role_id = r.id " +
	"WHERE usr.user_id = (SELECT u.id FROM tbl_users u WHERE u.username = @username)"

// userSortColumns はページングで並び替え可能なプロパティとカラムの対応です。
var userSortColumns = paging.Columns{
	"id":       "id",
	"username": "username",
	"email":    "email",
}

// userGorm はUserRepositoryインターフェースのGORM実装です。
type userGorm struct {
	db  *gorm.DB
	log *zap.Logger
}

// userGormがusecaseのリポジトリインターフェースを実装していることをコンパイル時に検証します。
var (
	_ usecase.UserRepository = (*userGorm)(nil)
	_ usecase.UserReader     = (*userGorm)(nil)
)

// NewUserRepository は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
func NewUserRepository(db *gorm.DB, log *zap.Logger) *userGorm {
	return &userGorm{db: db, log: log}
}

// FindByUsername はユーザー名の完全一致でユーザーを取得します。
// 大文字小文字の正規化は行いません。存在しない場合は (nil, nil) を返します。
func (r *userGorm) FindByUsername(ctx context.Context, username string) (*entity.AppUser, error) {
	return r.findOne(ctx, "username = ?", username)
}

// FindByEmail はメールアドレスの完全一致でユーザーを取得します。
// 存在しない場合は (nil, nil) を返します。
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.AppUser, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *userGorm) findOne(ctx context.Context, query string, arg string) (*entity.AppUser, error) {
	var u entity.AppUser
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.log.Error("failed to find user", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// FindAllUsers はユーザー名の大文字小文字を区別しない部分一致検索をページ単位で行います。
// keywordはそのままLIKEパターンとして使われるため、ワイルドカードは呼び出し側が付与します。
// 結果はid昇順で並び、リクエストの並び順はその後に適用されます。
func (r *userGorm) FindAllUsers(ctx context.Context, keyword string, req paging.PageRequest) (paging.Page[entity.AppUser], error) {
	query := r.db.WithContext(ctx).
		Model(&entity.AppUser{}).
		Where("LOWER(username) LIKE LOWER(?)", keyword)
	return r.page(query, req)
}

// FindAll は全ユーザーをページ単位で返します。
func (r *userGorm) FindAll(ctx context.Context, req paging.PageRequest) (paging.Page[entity.AppUser], error) {
	return r.page(r.db.WithContext(ctx).Model(&entity.AppUser{}), req)
}

func (r *userGorm) page(query *gorm.DB, req paging.PageRequest) (paging.Page[entity.AppUser], error) {
	byID := clause.OrderByColumn{Column: clause.Column{Name: "id"}}
	page, err := paging.FindPage[entity.AppUser](query, req, userSortColumns, byID)
	if err != nil {
		if errors.Is(err, paging.ErrInvalidSortProperty) {
			return page, err
		}
		r.log.Error("failed to list users", zap.Int("page", req.Page), zap.Int("size", req.Size), zap.Error(err))
		return page, fmt.Errorf("list users: %w", err)
	}
	return page, nil
}

// FindRoleByUsername はユーザー名からロール名の一覧（重複なし）を返します。
// ロールが無い場合やユーザーが存在しない場合は空のスライスを返します。
func (r *userGorm) FindRoleByUsername(ctx context.Context, username string) ([]string, error) {
	roles := []string{}
	if err := r.db.WithContext(ctx).
		Raw(findRoleByUsernameSQL, sql.Named("username", username)).
		Scan(&roles).Error; err != nil {
		r.log.Error("failed to find roles", zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("find roles of %s: %w", username, err)
	}
	if roles == nil {
		roles = []string{}
	}
	return roles, nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByID(ctx context.Context, id uint) (*entity.AppUser, error) {
	var u entity.AppUser
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Count は登録済みユーザー数を返します。
func (r *userGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.AppUser{}).Count(&n).Error
	return n, err
}

// Save はユーザーを追加または更新します。ロールの関連付けは更新しません。
// ユーザー名またはメールアドレスが重複する場合、usecase.ErrUserAlreadyExistsを返します。
func (r *userGorm) Save(ctx context.Context, u *entity.AppUser) error {
	if u == nil {
		return errors.New("user is nil")
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(u).Error; err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrUserAlreadyExists
		}
		r.log.Error("failed to save user", zap.String("username", u.Username), zap.Error(err))
		return fmt.Errorf("save user %s: %w", u.Username, err)
	}
	return nil
}

// DeleteByID はユーザーとそのロール割り当てを削除します。
func (r *userGorm) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM tbl_user_roles WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.AppUser{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}
		return nil
	})
}

// Create はユーザーを登録し、名前で指定したロールを同じトランザクションで付与します。
// 存在しないロールは警告を出して無視します。途中で失敗した場合はユーザーも残りません。
// ユーザー名またはメールアドレスが重複する場合、usecase.ErrUserAlreadyExistsを返します。
func (r *userGorm) Create(ctx context.Context, u *entity.AppUser, roleNames ...string) error {
	if u == nil {
		return errors.New("user is nil")
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(u).Error; err != nil {
			return err
		}
		roles, err := findRoles(tx, roleNames)
		if err != nil {
			return err
		}
		if len(roles) != len(uniqueNames(roleNames)) {
			r.log.Warn("some roles do not exist, skipped",
				zap.String("username", u.Username), zap.Strings("roles", roleNames))
		}
		return appendRoles(tx, u.ID, roles)
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return usecase.ErrUserAlreadyExists
		}
		r.log.Error("failed to create user", zap.String("username", u.Username), zap.Error(err))
		return fmt.Errorf("create user %s: %w", u.Username, err)
	}
	return nil
}

// AssignRoles はユーザーに名前で指定したロールを追加します。
// 既に割り当て済みのロールは無視されます。存在しないロールがあればusecase.ErrRoleNotFoundを返します。
func (r *userGorm) AssignRoles(ctx context.Context, userID uint, names ...string) error {
	if len(names) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		roles, err := findRoles(tx, names)
		if err != nil {
			return err
		}
		if len(roles) != len(uniqueNames(names)) {
			return usecase.ErrRoleNotFound
		}
		return appendRoles(tx, userID, roles)
	})
}

func findRoles(tx *gorm.DB, names []string) ([]entity.Role, error) {
	var roles []entity.Role
	if len(names) == 0 {
		return roles, nil
	}
	if err := tx.Where("name IN ?", names).Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func appendRoles(tx *gorm.DB, userID uint, roles []entity.Role) error {
	if len(roles) == 0 {
		return nil
	}
	user := entity.AppUser{ID: userID}
	if err := tx.Model(&user).Association("Roles").Append(&roles); err != nil {
		return fmt.Errorf("assign roles to user %d: %w", userID, err)
	}
	return nil
}

func uniqueNames(names []string) map[string]struct{} {
	unique := make(map[string]struct{}, len(names))
	for _, n := range names {
		unique[n] = struct{}{}
	}
	return unique
}
