// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"realty_backend/internal/api"
	"realty_backend/internal/domain/entity"
	"realty_backend/internal/feature/users/transport/http/dto"
	"realty_backend/internal/feature/users/usecase"
	"realty_backend/internal/shared/validation"
)

// UserUsecase はユーザーCRUDのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	Create(ctx context.Context, p usecase.CreateUserParams) (*entity.User, error)
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	Update(ctx context.Context, id uint, p usecase.UpdateUserParams) (*entity.User, error)
	Delete(ctx context.Context, id uint) (*entity.User, error)
}

// UserHandler はユーザーCRUDのHTTPリクエストを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Create はユーザー作成APIエンドポイントを処理します。
// - バリデーションエラー時は400をフィールド詳細付きで返却
// - メールアドレス重複時は409を返却
// - 成功時は201で作成されたユーザーを返却
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.NewValidationError(validation.BindDetails(err)))
		return
	}
	req.Normalize()
	if details := validation.Struct(&req); details != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError(details))
		return
	}

	user, err := h.users.Create(c.Request.Context(), usecase.CreateUserParams{
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			c.JSON(http.StatusConflict, api.NewConflict("Email already in use"))
			return
		}
		slog.Error("create user failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, api.NewInternalError())
		return
	}
	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// GetByID はユーザーを所有プロパティ込みで返すAPIエンドポイントを処理します。
func (h *UserHandler) GetByID(c *gin.Context) {
	id, fieldErr := validation.ParseID(c.Param("id"))
	if fieldErr != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError([]api.FieldError{*fieldErr}))
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.NewNotFound("User not found"))
			return
		}
		slog.Error("get user failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.NewInternalError())
		return
	}
	c.JSON(http.StatusOK, dto.NewUserWithProperties(user))
}

// List は全ユーザーを所有プロパティ込みで返すAPIエンドポイントを処理します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		slog.Error("list users failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.NewInternalError())
		return
	}
	out := make([]dto.UserWithProperties, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserWithProperties(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update はユーザー部分更新APIエンドポイントを処理します。
// IDパラメータとボディは独立に検証し、どちらの違反も400になります。
func (h *UserHandler) Update(c *gin.Context) {
	id, fieldErr := validation.ParseID(c.Param("id"))
	if fieldErr != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError([]api.FieldError{*fieldErr}))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update user bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.NewValidationError(validation.BindDetails(err)))
		return
	}
	req.Normalize()
	if details := validation.Struct(&req); details != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError(details))
		return
	}
	if req.Empty() {
		c.JSON(http.StatusBadRequest, api.NewValidationError([]api.FieldError{
			{Field: "", Message: "At least one field must be provided for update"},
		}))
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, usecase.UpdateUserParams{
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.NewNotFound("User not found"))
		case errors.Is(err, usecase.ErrEmailTaken):
			c.JSON(http.StatusConflict, api.NewConflict("Email already in use"))
		default:
			slog.Error("update user failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.NewInternalError())
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Delete はユーザー削除APIエンドポイントを処理します。
// 削除前に取得したスナップショットを確認レスポンスとして返します。
func (h *UserHandler) Delete(c *gin.Context) {
	id, fieldErr := validation.ParseID(c.Param("id"))
	if fieldErr != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError([]api.FieldError{*fieldErr}))
		return
	}

	user, err := h.users.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.NewNotFound("User not found"))
			return
		}
		slog.Error("delete user failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.NewInternalError())
		return
	}
	c.JSON(http.StatusOK, dto.NewDeleteUserResponse(user))
}
