package dto

import (
	"hallbook/internal/domains/microsite/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/num"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateSectionRequest struct {
	HallID   string `json:"hall_id"  validate:"required"`
	Kind     string `json:"kind"     validate:"required,max=50"`
	Title    string `json:"title"    validate:"omitempty,max=200"`
	Body     string `json:"body"     validate:"omitempty"`
	Position *int   `json:"position" validate:"omitempty,gte=0"`
}

func (c *CreateSectionRequest) ToModel(user string) model.Section {
	return model.Section{
		ID:       uuid.NewString(),
		HallID:   c.HallID,
		Kind:     c.Kind,
		Title:    c.Title,
		Body:     c.Body,
		Position: num.IntOrZero(c.Position),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateSectionRequest struct {
	Kind  string `db:"kind"  json:"kind"  validate:"omitempty,max=50"`
	Title string `db:"title" json:"title" validate:"omitempty,max=200"`
	Body  string `db:"body"  json:"body"  validate:"omitempty"`
}

// ReorderRequest carries the full section order after a drag and
// drop move. Positions are reassigned 0 through n-1 in list order.
type ReorderRequest struct {
	SectionIDs []string `json:"section_ids" validate:"required,min=1,dive,required"`
}

type SectionResponse struct {
	ID       string `json:"id"`
	HallID   string `json:"hall_id"`
	Kind     string `json:"kind"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Position int    `json:"position"`
	gDto.Metadata
}

func (r *SectionResponse) FromModel(model model.Section) {
	r.ID = model.ID
	r.HallID = model.HallID
	r.Kind = model.Kind
	r.Title = model.Title
	r.Body = model.Body
	r.Position = model.Position
	r.Metadata.FromModel(model.Metadata)
}

type GetSectionsResponse struct {
	Sections  []SectionResponse `json:"sections"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSectionsResponse) FromModels(models []model.Section, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Sections = make([]SectionResponse, len(models))
	for i, mod := range models {
		r.Sections[i].FromModel(mod)
	}
}
