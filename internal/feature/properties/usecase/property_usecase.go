package usecase

import (
	"context"

	"realty_backend/internal/domain/entity"
)

// PropertyRepository はプロパティエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type PropertyRepository interface {
	// Create は新しいプロパティをストレージに永続化します。
	Create(ctx context.Context, property *entity.Property) error

	// FindByID はIDでプロパティを取得します（関連なし）。
	// プロパティが存在しない場合、ErrPropertyNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.Property, error)

	// FindByIDDetail はIDでプロパティをオーナーとリスティング込みで取得します。
	FindByIDDetail(ctx context.Context, id uint) (*entity.Property, error)

	// FindAll は全プロパティをオーナーとリスティング込みで返します。
	FindAll(ctx context.Context) ([]entity.Property, error)

	// Update は指定カラムのみを更新し、更新後のプロパティをオーナー込みで返します。
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.Property, error)

	// Delete はプロパティを削除します。
	Delete(ctx context.Context, id uint) error
}

// OwnerRepository はオーナー（ユーザー）の存在確認を抽象化します。
// usersフィーチャーへの依存を避けるため、必要な参照のみをここで定義します。
type OwnerRepository interface {
	// FindByID はIDでオーナーを取得します。
	// 存在しない場合、ErrOwnerNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// CreatePropertyParams はプロパティ作成の検証済み入力です。
type CreatePropertyParams struct {
	OwnerID   uint
	Address   string
	City      string
	Province  string
	ZipCode   *string
	Latitude  *float64
	Longitude *float64
}

// UpdatePropertyParams はプロパティ部分更新の検証済み入力です。
// nilのフィールドは「変更なし」を意味します。
type UpdatePropertyParams struct {
	OwnerID   *uint
	Address   *string
	City      *string
	Province  *string
	ZipCode   *string
	Latitude  *float64
	Longitude *float64
}

// PropertyUsecase はプロパティCRUDのビジネスロジックを提供します。
type PropertyUsecase struct {
	repo   PropertyRepository
	owners OwnerRepository
}

// NewPropertyUsecase は指定されたリポジトリでPropertyUsecaseの新しいインスタンスを生成します。
func NewPropertyUsecase(repo PropertyRepository, owners OwnerRepository) *PropertyUsecase {
	return &PropertyUsecase{repo: repo, owners: owners}
}

// Create はオーナーの存在を確認してから新規プロパティを登録します。
// 作成されたプロパティにはオーナーが設定された状態で返ります。
//
// 存在確認と書き込みは別々のストア呼び出しであり、間にオーナーが
// 削除される競合は緩和していない（既知の制限）。
func (u *PropertyUsecase) Create(ctx context.Context, p CreatePropertyParams) (*entity.Property, error) {
	owner, err := u.owners.FindByID(ctx, p.OwnerID)
	if err != nil {
		return nil, err
	}

	property := &entity.Property{
		OwnerID:   p.OwnerID,
		Address:   p.Address,
		City:      p.City,
		Province:  p.Province,
		ZipCode:   p.ZipCode,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
	if err := u.repo.Create(ctx, property); err != nil {
		return nil, err
	}
	property.Owner = owner
	return property, nil
}

// GetByID はプロパティをオーナーとリスティング込みで取得します。
func (u *PropertyUsecase) GetByID(ctx context.Context, id uint) (*entity.Property, error) {
	return u.repo.FindByIDDetail(ctx, id)
}

// List は全プロパティをオーナーとリスティング込みで返します。
func (u *PropertyUsecase) List(ctx context.Context) ([]entity.Property, error) {
	return u.repo.FindAll(ctx)
}

// Update はプロパティを部分更新します。オーナーが変更される場合は
// 新しいオーナーの存在をユーザーストアに対して再確認します。
func (u *PropertyUsecase) Update(ctx context.Context, id uint, p UpdatePropertyParams) (*entity.Property, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.OwnerID != nil && *p.OwnerID != existing.OwnerID {
		if _, err := u.owners.FindByID(ctx, *p.OwnerID); err != nil {
			return nil, err
		}
	}

	fields := map[string]any{}
	if p.OwnerID != nil {
		fields["owner_id"] = *p.OwnerID
	}
	if p.Address != nil {
		fields["address"] = *p.Address
	}
	if p.City != nil {
		fields["city"] = *p.City
	}
	if p.Province != nil {
		fields["province"] = *p.Province
	}
	if p.ZipCode != nil {
		fields["zip_code"] = *p.ZipCode
	}
	if p.Latitude != nil {
		fields["latitude"] = *p.Latitude
	}
	if p.Longitude != nil {
		fields["longitude"] = *p.Longitude
	}
	return u.repo.Update(ctx, id, fields)
}

// Delete はプロパティを削除し、削除前のスナップショットを返します。
func (u *PropertyUsecase) Delete(ctx context.Context, id uint) (*entity.Property, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}
