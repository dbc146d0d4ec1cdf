// Package adapters はpropertiesフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"realty_backend/internal/domain/entity"
	"realty_backend/internal/feature/properties/usecase"
)

// propertyMySQL はPropertyRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type propertyMySQL struct {
	db *gorm.DB
}

// propertyMySQLがPropertyRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.PropertyRepository = (*propertyMySQL)(nil)

// NewPropertyMySQL は指定されたgorm.DB接続でpropertyMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewPropertyMySQL(db *gorm.DB) *propertyMySQL {
	return &propertyMySQL{db: db}
}

// Create はプロパティをデータベースに追加します。
func (r *propertyMySQL) Create(ctx context.Context, p *entity.Property) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID はIDでプロパティを取得します。
// プロパティが存在しない場合、usecase.ErrPropertyNotFoundを返します。
func (r *propertyMySQL) FindByID(ctx context.Context, id uint) (*entity.Property, error) {
	var p entity.Property
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindByIDDetail はIDでプロパティをオーナーとリスティング込みで取得します。
func (r *propertyMySQL) FindByIDDetail(ctx context.Context, id uint) (*entity.Property, error) {
	var p entity.Property
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Listings").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

// FindAll は全プロパティをオーナーとリスティング込みで返します。
func (r *propertyMySQL) FindAll(ctx context.Context) ([]entity.Property, error) {
	var properties []entity.Property
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Listings").
		Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Update は指定カラムのみを更新し、更新後のプロパティをオーナー込みで返します。
// 値が現在と同一の場合もRowsAffectedが0になるため、存在確認は呼び出し側で行います。
func (r *propertyMySQL) Update(ctx context.Context, id uint, fields map[string]any) (*entity.Property, error) {
	if err := r.db.WithContext(ctx).
		Model(&entity.Property{}).
		Where("id = ?", id).
		Updates(fields).Error; err != nil {
		return nil, err
	}

	var p entity.Property
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete はプロパティを削除します。
// プロパティが存在しない場合、usecase.ErrPropertyNotFoundを返します。
func (r *propertyMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Property{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrPropertyNotFound
	}
	return nil
}
