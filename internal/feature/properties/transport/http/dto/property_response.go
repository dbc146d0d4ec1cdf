package dto

import (
	"time"

	"realty_backend/internal/domain/entity"
)

// OwnerSummary is the owner excerpt embedded in property responses.
// Phone is only populated on single-property fetches.
type OwnerSummary struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// ListingItem is a listing row embedded in property reads.
type ListingItem struct {
	ID         uint      `json:"id"`
	PropertyID uint      `json:"propertyId"`
	Price      float64   `json:"price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// PropertyResponse is the wire shape of a property with its owner summary.
// Create and update return this shape.
type PropertyResponse struct {
	ID        uint          `json:"id"`
	OwnerID   uint          `json:"ownerId"`
	Address   string        `json:"address"`
	City      string        `json:"city"`
	Province  string        `json:"province"`
	ZipCode   *string       `json:"zipCode"`
	Latitude  *float64      `json:"latitude"`
	Longitude *float64      `json:"longitude"`
	Owner     *OwnerSummary `json:"owner,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// PropertyDetail adds the listings to a property response. Reads return this shape.
type PropertyDetail struct {
	PropertyResponse
	Listings []ListingItem `json:"listings"`
}

// DeletedProperty is the snapshot echoed back by a successful delete.
type DeletedProperty struct {
	ID      uint   `json:"id"`
	Address string `json:"address"`
	City    string `json:"city"`
}

// DeletePropertyResponse confirms a property deletion.
type DeletePropertyResponse struct {
	Message         string          `json:"message"`
	DeletedProperty DeletedProperty `json:"deletedProperty"`
}

// NewPropertyResponse converts a property entity with its preloaded owner.
// withOwnerPhone controls whether the owner summary carries the phone number.
func NewPropertyResponse(p *entity.Property, withOwnerPhone bool) PropertyResponse {
	res := PropertyResponse{
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
	}
	if p.Owner != nil {
		res.Owner = &OwnerSummary{
			ID:    p.Owner.ID,
			Name:  p.Owner.Name,
			Email: p.Owner.Email,
		}
		if withOwnerPhone {
			res.Owner.Phone = p.Owner.Phone
		}
	}
	return res
}

// NewPropertyDetail converts a property entity with preloaded owner and listings.
// Listings is always a JSON array, never null.
func NewPropertyDetail(p *entity.Property, withOwnerPhone bool) PropertyDetail {
	listings := make([]ListingItem, 0, len(p.Listings))
	for _, l := range p.Listings {
		listings = append(listings, ListingItem{
			ID:         l.ID,
			PropertyID: l.PropertyID,
			Price:      l.Price,
			Status:     l.Status,
			CreatedAt:  l.CreatedAt,
			UpdatedAt:  l.UpdatedAt,
		})
	}
	return PropertyDetail{
		PropertyResponse: NewPropertyResponse(p, withOwnerPhone),
		Listings:         listings,
	}
}

// NewDeletePropertyResponse builds the delete confirmation from a pre-delete snapshot.
func NewDeletePropertyResponse(p *entity.Property) DeletePropertyResponse {
	return DeletePropertyResponse{
		Message: "Property deleted successfully",
		DeletedProperty: DeletedProperty{
			ID:      p.ID,
			Address: p.Address,
			City:    p.City,
		},
	}
}
