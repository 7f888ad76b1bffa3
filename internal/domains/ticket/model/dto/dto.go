package dto

import (
	"hallbook/internal/domains/ticket/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateTicketRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	Title     string `json:"title"      validate:"required,max=200"`
	Detail    string `json:"detail"     validate:"omitempty"`
	Assignee  string `json:"assignee"   validate:"omitempty,max=100"`
}

func (c *CreateTicketRequest) ToModel(user string) model.Ticket {
	return model.Ticket{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		Title:     c.Title,
		Detail:    c.Detail,
		Status:    model.StatusOpen,
		Assignee:  c.Assignee,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTicketRequest struct {
	Title    string `db:"title"    json:"title"    validate:"omitempty,max=200"`
	Detail   string `db:"detail"   json:"detail"   validate:"omitempty"`
	Status   string `db:"status"   json:"status"   validate:"omitempty,oneof=open closed"`
	Assignee string `db:"assignee" json:"assignee" validate:"omitempty,max=100"`
}

type TicketResponse struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Title     string `json:"title"`
	Detail    string `json:"detail"`
	Status    string `json:"status"`
	Assignee  string `json:"assignee"`
	gDto.Metadata
}

func (r *TicketResponse) FromModel(model model.Ticket) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Title = model.Title
	r.Detail = model.Detail
	r.Status = model.Status
	r.Assignee = model.Assignee
	r.Metadata.FromModel(model.Metadata)
}

type GetTicketsResponse struct {
	Tickets   []TicketResponse `json:"tickets"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetTicketsResponse) FromModels(models []model.Ticket, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tickets = make([]TicketResponse, len(models))
	for i, mod := range models {
		r.Tickets[i].FromModel(mod)
	}
}
