// Package handler はpropertiesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"realty_backend/internal/api"
	"realty_backend/internal/domain/entity"
	"realty_backend/internal/feature/properties/transport/http/dto"
	"realty_backend/internal/feature/properties/usecase"
	"realty_backend/internal/shared/validation"
)

// PropertyUsecase はプロパティCRUDのユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type PropertyUsecase interface {
	Create(ctx context.Context, p usecase.CreatePropertyParams) (*entity.Property, error)
	GetByID(ctx context.Context, id uint) (*entity.Property, error)
	List(ctx context.Context) ([]entity.Property, error)
	Update(ctx context.Context, id uint, p usecase.UpdatePropertyParams) (*entity.Property, error)
	Delete(ctx context.Context, id uint) (*entity.Property, error)
}

// PropertyHandler はプロパティCRUDのHTTPリクエストを処理します。
type PropertyHandler struct {
	properties PropertyUsecase
}

// NewPropertyHandler はPropertyHandlerの新しいインスタンスを生成します。
func NewPropertyHandler(properties PropertyUsecase) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// Create はプロパティ作成APIエンドポイントを処理します。
// - バリデーションエラー時は400をフィールド詳細付きで返却
// - 参照先オーナーが存在しない場合は404を返却
// - 成功時は201で作成されたプロパティをオーナー概要付きで返却
func (h *PropertyHandler) Create(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create property bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.NewValidationError(validation.BindDetails(err)))
		return
	}
	req.Normalize()
	if details := validation.Struct(&req); details != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError(details))
		return
	}

	property, err := h.properties.Create(c.Request.Context(), usecase.CreatePropertyParams{
		OwnerID:   *req.OwnerID,
		Address:   req.Address,
		City:      req.City,
		Province:  req.Province,
		ZipCode:   req.ZipCode,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrOwnerNotFound) {
			c.JSON(http.StatusNotFound, api.NewNotFound("Owner not found"))
			return
		}
		slog.Error("create property failed", "error", err, "owner_id", *req.OwnerID)
		c.JSON(http.StatusInternalServerError, api.NewInternalError())
		return
	}
	c.JSON(http.StatusCreated, dto.NewPropertyResponse(property, false))
}

// GetByID はプロパティをオーナー概要（電話番号付き）とリスティング込みで返すAPIエンドポイントを処理します。
func (h *PropertyHandler) GetByID(c *gin.Context) {
	id, fieldErr := validation.ParseID(c.Param("id"))
	if fieldErr != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError([]api.FieldError{*fieldErr}))
		return
	}

	property, err := h.properties.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, api.NewNotFound("Property not found"))
			return
		}
		slog.Error("get property failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.NewInternalError())
		return
	}
	c.JSON(http.StatusOK, dto.NewPropertyDetail(property, true))
}

// List は全プロパティをオーナー概要とリスティング込みで返すAPIエンドポイントを処理します。
func (h *PropertyHandler) List(c *gin.Context) {
	properties, err := h.properties.List(c.Request.Context())
	if err != nil {
		slog.Error("list properties failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.NewInternalError())
		return
	}
	out := make([]dto.PropertyDetail, 0, len(properties))
	for i := range properties {
		out = append(out, dto.NewPropertyDetail(&properties[i], false))
	}
	c.JSON(http.StatusOK, out)
}

// Update はプロパティ部分更新APIエンドポイントを処理します。
// IDパラメータとボディは独立に検証し、どちらの違反も400になります。
// オーナー変更時は新しいオーナーの存在をユーザーストアに対して確認します。
func (h *PropertyHandler) Update(c *gin.Context) {
	id, fieldErr := validation.ParseID(c.Param("id"))
	if fieldErr != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError([]api.FieldError{*fieldErr}))
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update property bind failed", "error", err, "remote_addr", c.ClientIP())
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

	property, err := h.properties.Update(c.Request.Context(), id, usecase.UpdatePropertyParams{
		OwnerID:   req.OwnerID,
		Address:   req.Address,
		City:      req.City,
		Province:  req.Province,
		ZipCode:   req.ZipCode,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, api.NewNotFound("Property not found"))
		case errors.Is(err, usecase.ErrOwnerNotFound):
			c.JSON(http.StatusNotFound, api.NewNotFound("New owner not found"))
		default:
			slog.Error("update property failed", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.NewInternalError())
		}
		return
	}
	c.JSON(http.StatusOK, dto.NewPropertyResponse(property, false))
}

// Delete はプロパティ削除APIエンドポイントを処理します。
// 削除前に取得したスナップショットを確認レスポンスとして返します。
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, fieldErr := validation.ParseID(c.Param("id"))
	if fieldErr != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationError([]api.FieldError{*fieldErr}))
		return
	}

	property, err := h.properties.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, api.NewNotFound("Property not found"))
			return
		}
		slog.Error("delete property failed", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, api.NewInternalError())
		return
	}
	c.JSON(http.StatusOK, dto.NewDeletePropertyResponse(property))
}
