package dto

import (
	"hallbook/internal/domains/billing/model"
	bookingDto "hallbook/internal/domains/booking/model/dto"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/num"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateSettingsRequest struct {
	OrganizationID string   `json:"organization_id" validate:"required"`
	CompanyName    string   `json:"company_name"    validate:"required,max=200"`
	Address        string   `json:"address"         validate:"omitempty"`
	GSTNumber      string   `json:"gst_number"      validate:"omitempty,max=30"`
	TaxPercentage  *float64 `json:"tax_percentage"  validate:"omitempty,gte=0,lte=100"`
	BankDetails    string   `json:"bank_details"    validate:"omitempty"`
	HSNCode        string   `json:"hsn_code"        validate:"omitempty,max=20"`
}

func (c *CreateSettingsRequest) ToModel(user string) model.Settings {
	return model.Settings{
		ID:             uuid.NewString(),
		OrganizationID: c.OrganizationID,
		CompanyName:    c.CompanyName,
		Address:        c.Address,
		GSTNumber:      c.GSTNumber,
		TaxPercentage:  num.OrZero(c.TaxPercentage),
		BankDetails:    c.BankDetails,
		HSNCode:        c.HSNCode,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateSettingsRequest struct {
	CompanyName   string   `db:"company_name"   json:"company_name"   validate:"omitempty,max=200"`
	Address       string   `db:"address"        json:"address"        validate:"omitempty"`
	GSTNumber     string   `db:"gst_number"     json:"gst_number"     validate:"omitempty,max=30"`
	TaxPercentage *float64 `db:"tax_percentage" json:"tax_percentage" validate:"omitempty,gte=0,lte=100"`
	BankDetails   string   `db:"bank_details"   json:"bank_details"   validate:"omitempty"`
	HSNCode       string   `db:"hsn_code"       json:"hsn_code"       validate:"omitempty,max=20"`
}

type SettingsResponse struct {
	ID             string  `json:"id"`
	OrganizationID string  `json:"organization_id"`
	CompanyName    string  `json:"company_name"`
	Address        string  `json:"address"`
	GSTNumber      string  `json:"gst_number"`
	TaxPercentage  float64 `json:"tax_percentage"`
	BankDetails    string  `json:"bank_details"`
	HSNCode        string  `json:"hsn_code"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(model model.Settings) {
	r.ID = model.ID
	r.OrganizationID = model.OrganizationID
	r.CompanyName = model.CompanyName
	r.Address = model.Address
	r.GSTNumber = model.GSTNumber
	r.TaxPercentage = model.TaxPercentage
	r.BankDetails = model.BankDetails
	r.HSNCode = model.HSNCode
	r.Metadata.FromModel(model.Metadata)
}

// InvoiceResponse is everything the invoice print view needs in one
// payload. Rendering stays client-side.
type InvoiceResponse struct {
	Booking  bookingDto.BookingResponse `json:"booking"`
	HallName string                     `json:"hall_name"`
	Settings SettingsResponse           `json:"settings"`
	Charges  bookingDto.ChargesResponse `json:"charges"`
}
