// Package adapters はusersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"realty_backend/internal/domain/entity"
	"realty_backend/internal/feature/users/usecase"
)

// userMySQL はUserRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type userMySQL struct {
	db *gorm.DB
}

// userMySQLがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL は指定されたgorm.DB接続でuserMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Create はユーザーをデータベースに追加します。
// メールアドレスのユニーク制約に違反した場合、usecase.ErrEmailTakenを返します。
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translateUniqueViolation(err)
	}
	return nil
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByIDWithProperties はIDでユーザーを所有プロパティ込みで取得します。
func (r *userMySQL) FindByIDWithProperties(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).
		Preload("Properties").
		Where("id = ?", id).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindAll は全ユーザーを所有プロパティ込みで返します。
func (r *userMySQL) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Preload("Properties").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update は指定カラムのみを更新し、更新後のユーザーを返します。
// 値が現在と同一の場合もRowsAffectedが0になるため、存在確認は呼び出し側で行います。
func (r *userMySQL) Update(ctx context.Context, id uint, fields map[string]any) (*entity.User, error) {
	if err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, translateUniqueViolation(err)
	}
	return r.FindByID(ctx, id)
}

// Delete はユーザーを削除します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}

// translateUniqueViolation はユニーク制約違反をusecase.ErrEmailTakenへ変換します。
// MySQLエラー1062: ユニークキーの重複エントリ
func translateUniqueViolation(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return usecase.ErrEmailTaken
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return usecase.ErrEmailTaken
	}
	return err
}
