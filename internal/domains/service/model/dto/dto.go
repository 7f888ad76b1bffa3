package dto

import (
	"hallbook/internal/domains/service/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/num"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateServiceRequest struct {
	BookingID string   `json:"booking_id" validate:"required"`
	Name      string   `json:"name"       validate:"required,max=200"`
	Price     *float64 `json:"price"      validate:"omitempty,gte=0"`
	DirectPay bool     `json:"direct_pay"`
	Notes     string   `json:"notes"      validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	return model.Service{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		Name:      c.Name,
		Price:     num.OrZero(c.Price),
		DirectPay: c.DirectPay,
		Notes:     c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name      string   `db:"name"       json:"name"       validate:"omitempty,max=200"`
	Price     *float64 `db:"price"      json:"price"      validate:"omitempty,gte=0"`
	DirectPay *bool    `db:"direct_pay" json:"direct_pay" validate:"omitempty"`
	Notes     string   `db:"notes"      json:"notes"      validate:"omitempty"`
}

type DeleteServiceRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type ServiceResponse struct {
	ID        string  `json:"id"`
	BookingID string  `json:"booking_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	DirectPay bool    `json:"direct_pay"`
	Notes     string  `json:"notes"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Name = model.Name
	r.Price = model.Price
	r.DirectPay = model.DirectPay
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
