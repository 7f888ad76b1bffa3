package dto

import (
	"time"

	"hallbook/internal/domains/payment/model"
	"hallbook/shared"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/num"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	BookingID   string   `json:"booking_id"   validate:"required"`
	PaymentDate string   `json:"payment_date" validate:"required"`
	Mode        string   `json:"mode"         validate:"required,oneof=cash card upi banktransfer"`
	Amount      *float64 `json:"amount"       validate:"omitempty,gte=0"`
	Person      string   `json:"person"       validate:"omitempty,max=100"`
	Notes       string   `json:"notes"        validate:"omitempty"`
}

func (c *CreatePaymentRequest) ToModel(user string) (model.Payment, error) {
	paymentDate, err := time.Parse(constant.DateOnlyFormat, c.PaymentDate)
	if err != nil {
		return model.Payment{}, err
	}

	return model.Payment{
		ID:          uuid.NewString(),
		BookingID:   c.BookingID,
		PaymentDate: paymentDate,
		Mode:        c.Mode,
		Amount:      num.OrZero(c.Amount),
		Person:      c.Person,
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdatePaymentRequest struct {
	PaymentDate string   `db:"payment_date" json:"payment_date" validate:"omitempty"`
	Mode        string   `db:"mode"         json:"mode"         validate:"omitempty,oneof=cash card upi banktransfer"`
	Amount      *float64 `db:"amount"       json:"amount"       validate:"omitempty,gte=0"`
	Person      string   `db:"person"       json:"person"       validate:"omitempty,max=100"`
	Notes       string   `db:"notes"        json:"notes"        validate:"omitempty"`
}

type PaymentResponse struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"booking_id"`
	PaymentDate string  `json:"payment_date"`
	Mode        string  `json:"mode"`
	Amount      float64 `json:"amount"`
	Person      string  `json:"person"`
	Notes       string  `json:"notes"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.PaymentDate = model.PaymentDate.Format(constant.DateOnlyFormat)
	r.Mode = model.Mode
	r.Amount = model.Amount
	r.Person = model.Person
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
