package dto

import (
	"hallbook/internal/domains/inventory/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/num"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateInventoryRequest struct {
	BookingID string   `json:"booking_id" validate:"required"`
	Name      string   `json:"name"       validate:"required,max=200"`
	Price     *float64 `json:"price"      validate:"omitempty,gte=0"`
	Quantity  *int     `json:"quantity"   validate:"omitempty,gte=0"`
	Notes     string   `json:"notes"      validate:"omitempty"`
}

func (c *CreateInventoryRequest) ToModel(user string) model.Inventory {
	quantity := num.IntOrZero(c.Quantity)
	if quantity == 0 {
		quantity = 1
	}

	return model.Inventory{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		Name:      c.Name,
		Price:     num.OrZero(c.Price),
		Quantity:  quantity,
		Notes:     c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateInventoryRequest struct {
	Name     string   `db:"name"     json:"name"     validate:"omitempty,max=200"`
	Price    *float64 `db:"price"    json:"price"    validate:"omitempty,gte=0"`
	Quantity *int     `db:"quantity" json:"quantity" validate:"omitempty,gte=0"`
	Notes    string   `db:"notes"    json:"notes"    validate:"omitempty"`
}

type DeleteInventoryRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type InventoryResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Notes     string  `json:"notes"`
	gDto.Metadata
}

func (r *InventoryResponse) FromModel(model model.Inventory) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Name = model.Name
	r.Price = model.Price
	r.Quantity = model.Quantity
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetInventoriesResponse struct {
	Inventory []InventoryResponse `json:"inventory"`
	TotalPage int                 `json:"total_page"`
	TotalData int                 `json:"total_data"`
}

func (r *GetInventoriesResponse) FromModels(models []model.Inventory, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inventory = make([]InventoryResponse, len(models))
	for i, mod := range models {
		r.Inventory[i].FromModel(mod)
	}
}
