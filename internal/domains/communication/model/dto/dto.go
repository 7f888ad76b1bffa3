package dto

import (
	"hallbook/internal/domains/communication/model"
	"hallbook/shared"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateCommunicationRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Sender    string `json:"sender"     validate:"omitempty,max=100"`
	Recipient string `json:"recipient"  validate:"omitempty,max=100"`
	Detail    string `json:"detail"     validate:"required"`
}

func (c *CreateCommunicationRequest) ToModel(user string) model.Communication {
	return model.Communication{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		SentAt:    timezone.Now(),
		Sender:    c.Sender,
		Recipient: c.Recipient,
		Detail:    c.Detail,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type CommunicationResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	SentAt    string `json:"sent_at"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Detail    string `json:"detail"`
	gDto.Metadata
}

func (r *CommunicationResponse) FromModel(model model.Communication) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.SentAt = model.SentAt.Format(constant.DateFormat)
	r.Sender = model.Sender
	r.Recipient = model.Recipient
	r.Detail = model.Detail
	r.Metadata.FromModel(model.Metadata)
}

type GetCommunicationsResponse struct {
	Communications []CommunicationResponse `json:"communications"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetCommunicationsResponse) FromModels(models []model.Communication, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Communications = make([]CommunicationResponse, len(models))
	for i, mod := range models {
		r.Communications[i].FromModel(mod)
	}
}
