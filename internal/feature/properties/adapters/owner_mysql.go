package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"realty_backend/internal/domain/entity"
	"realty_backend/internal/feature/properties/usecase"
)

// ownerMySQL はOwnerRepositoryインターフェースのMySQL実装です。
// usersテーブルを直接参照し、usersフィーチャーへのパッケージ依存を持ちません。
type ownerMySQL struct {
	db *gorm.DB
}

var _ usecase.OwnerRepository = (*ownerMySQL)(nil)

// NewOwnerMySQL は指定されたgorm.DB接続でownerMySQLの新しいインスタンスを生成します。
func NewOwnerMySQL(db *gorm.DB) *ownerMySQL {
	return &ownerMySQL{db: db}
}

// FindByID はIDでオーナーを取得します。
// オーナーが存在しない場合、usecase.ErrOwnerNotFoundを返します。
func (r *ownerMySQL) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrOwnerNotFound
		}
		return nil, err
	}
	return &u, nil
}
