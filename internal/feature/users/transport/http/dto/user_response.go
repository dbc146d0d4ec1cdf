package dto

import (
	"time"

	"realty_backend/internal/domain/entity"
)

// UserResponse is the wire shape of a user without related records.
// Create and update return this; reads embed the owned properties on top.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PropertyItem is a property row embedded in user reads (no owner, no listings).
type PropertyItem struct {
	ID        uint      `json:"id"`
	OwnerID   uint      `json:"ownerId"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Province  string    `json:"province"`
	ZipCode   *string   `json:"zipCode"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserWithProperties is the wire shape of a user with the properties they own.
type UserWithProperties struct {
	UserResponse
	Properties []PropertyItem `json:"properties"`
}

// DeletedUser is the snapshot echoed back by a successful delete.
type DeletedUser struct {
	ID    uint    `json:"id"`
	Email string  `json:"email"`
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
}

// DeleteUserResponse confirms a user deletion.
type DeleteUserResponse struct {
	Message     string      `json:"message"`
	DeletedUser DeletedUser `json:"deletedUser"`
}

// NewUserResponse converts a user entity to its bare wire shape.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserWithProperties converts a user entity with preloaded properties.
// Properties is always a JSON array, never null.
func NewUserWithProperties(u *entity.User) UserWithProperties {
	props := make([]PropertyItem, 0, len(u.Properties))
	for _, p := range u.Properties {
		props = append(props, PropertyItem{
			ID:        p.ID,
			OwnerID:   p.OwnerID,
			Address:   p.Address,
			City:      p.City,
			Province:  p.Province,
			ZipCode:   p.ZipCode,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return UserWithProperties{
		UserResponse: NewUserResponse(u),
		Properties:   props,
	}
}

// NewDeleteUserResponse builds the delete confirmation from a pre-delete snapshot.
func NewDeleteUserResponse(u *entity.User) DeleteUserResponse {
	return DeleteUserResponse{
		Message: "User deleted successfully",
		DeletedUser: DeletedUser{
			ID:    u.ID,
			Email: u.Email,
			Name:  u.Name,
			Phone: u.Phone,
		},
	}
}
