package usecase

import (
	"context"
	"errors"

	"realty_backend/internal/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailTakenを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByID はIDでユーザーを取得します（関連なし）。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByIDWithProperties はIDでユーザーを所有プロパティ込みで取得します。
	FindByIDWithProperties(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail はメールアドレスでユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll は全ユーザーを所有プロパティ込みで返します。
	FindAll(ctx context.Context) ([]entity.User, error)

	// Update は指定カラムのみを更新し、更新後のユーザーを返します。
	Update(ctx context.Context, id uint, fields map[string]any) (*entity.User, error)

	// Delete はユーザーを削除します。
	Delete(ctx context.Context, id uint) error
}

// CreateUserParams はユーザー作成の検証済み入力です。
type CreateUserParams struct {
	Email string
	Name  string
	Phone *string
}

// UpdateUserParams はユーザー部分更新の検証済み入力です。
// nilのフィールドは「変更なし」を意味します。
type UpdateUserParams struct {
	Email *string
	Name  *string
	Phone *string
}

// UserUsecase はユーザーCRUDのビジネスロジックを提供します。
type UserUsecase struct {
	repo UserRepository
}

// NewUserUsecase は指定されたリポジトリでUserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(repo UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

// Create はメールアドレスの一意性を確認してから新規ユーザーを登録します。
//
// 一意性チェックと書き込みは別々のストア呼び出しであり、間に割り込む
// 同時リクエストとは競合しうる。その場合はDBのユニーク制約違反を
// リポジトリがErrEmailTakenへ変換するので、制約側が最終的な判定となる。
func (u *UserUsecase) Create(ctx context.Context, p CreateUserParams) (*entity.User, error) {
	if _, err := u.repo.FindByEmail(ctx, p.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	user := &entity.User{
		Email: p.Email,
		Name:  p.Name,
		Phone: p.Phone,
	}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID はユーザーを所有プロパティ込みで取得します。
func (u *UserUsecase) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.repo.FindByIDWithProperties(ctx, id)
}

// List は全ユーザーを所有プロパティ込みで返します。
func (u *UserUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.repo.FindAll(ctx)
}

// Update はユーザーを部分更新します。メールアドレスが変更される場合は
// 一意性を再確認し、他ユーザーが使用中ならErrEmailTakenを返します。
func (u *UserUsecase) Update(ctx context.Context, id uint, p UpdateUserParams) (*entity.User, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Email != nil && *p.Email != existing.Email {
		if _, err := u.repo.FindByEmail(ctx, *p.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
	}

	fields := map[string]any{}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Phone != nil {
		fields["phone"] = *p.Phone
	}
	return u.repo.Update(ctx, id, fields)
}

// Delete はユーザーを削除し、削除前のスナップショットを返します。
func (u *UserUsecase) Delete(ctx context.Context, id uint) (*entity.User, error) {
	existing, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return existing, nil
}
