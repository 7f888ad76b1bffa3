package dto

import (
	"hallbook/internal/domains/feature/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/num"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateFeatureRequest struct {
	BookingID string   `json:"booking_id" validate:"required"`
	Name      string   `json:"name"       validate:"required,max=200"`
	Price     *float64 `json:"price"      validate:"omitempty,gte=0"`
	Quantity  *int     `json:"quantity"   validate:"omitempty,gte=0"`
}

func (c *CreateFeatureRequest) ToModel(user string) model.Feature {
	quantity := num.IntOrZero(c.Quantity)
	if quantity == 0 {
		quantity = 1
	}

	return model.Feature{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		Name:      c.Name,
		Price:     num.OrZero(c.Price),
		Quantity:  quantity,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFeatureRequest struct {
	Name     string   `db:"name"     json:"name"     validate:"omitempty,max=200"`
	Price    *float64 `db:"price"    json:"price"    validate:"omitempty,gte=0"`
	Quantity *int     `db:"quantity" json:"quantity" validate:"omitempty,gte=0"`
}

// DeleteFeatureRequest carries the mandatory free-text reason which is
// appended to the booking's communication log.
type DeleteFeatureRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type FeatureResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	gDto.Metadata
}

func (r *FeatureResponse) FromModel(model model.Feature) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Name = model.Name
	r.Price = model.Price
	r.Quantity = model.Quantity
	r.Metadata.FromModel(model.Metadata)
}

type GetFeaturesResponse struct {
	Features  []FeatureResponse `json:"features"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetFeaturesResponse) FromModels(models []model.Feature, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Features = make([]FeatureResponse, len(models))
	for i, mod := range models {
		r.Features[i].FromModel(mod)
	}
}
