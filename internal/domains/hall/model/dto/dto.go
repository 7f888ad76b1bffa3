package dto

import (
	"hallbook/internal/domains/hall/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/num"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CatalogFeatureRequest struct {
	Name   string   `json:"name"   validate:"required,max=200"`
	Charge *float64 `json:"charge" validate:"omitempty,gte=0"`
}

type CreateHallRequest struct {
	OrganizationID string                  `json:"organization_id" validate:"required"`
	Name           string                  `json:"name"            validate:"required,max=200"`
	Capacity       *int                    `json:"capacity"        validate:"omitempty,gte=0"`
	Location       string                  `json:"location"        validate:"omitempty,max=200"`
	Address        string                  `json:"address"         validate:"omitempty"`
	Description    string                  `json:"description"     validate:"omitempty"`
	RateMorning    *float64                `json:"rate_morning"    validate:"omitempty,gte=0"`
	RateEvening    *float64                `json:"rate_evening"    validate:"omitempty,gte=0"`
	RateFullday    *float64                `json:"rate_fullday"    validate:"omitempty,gte=0"`
	Features       []CatalogFeatureRequest `json:"features"        validate:"omitempty,dive"`
	Images         []string                `json:"images"          validate:"omitempty,dive,url"`
}

func (c *CreateHallRequest) ToModel(user string) model.Hall {
	features := make(model.FeatureCatalog, len(c.Features))
	for i, f := range c.Features {
		features[i] = model.CatalogFeature{
			Name:   f.Name,
			Charge: num.OrZero(f.Charge),
		}
	}

	return model.Hall{
		ID:             uuid.NewString(),
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		Capacity:       num.IntOrZero(c.Capacity),
		Location:       c.Location,
		Address:        c.Address,
		Description:    c.Description,
		RateMorning:    num.OrZero(c.RateMorning),
		RateEvening:    num.OrZero(c.RateEvening),
		RateFullday:    num.OrZero(c.RateFullday),
		Features:       features,
		Images:         pq.StringArray(c.Images),
		Active:         true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHallRequest struct {
	Name        string   `db:"name"         json:"name"         validate:"omitempty,max=200"`
	Capacity    *int     `db:"capacity"     json:"capacity"     validate:"omitempty,gte=0"`
	Location    string   `db:"location"     json:"location"     validate:"omitempty,max=200"`
	Address     string   `db:"address"      json:"address"      validate:"omitempty"`
	Description string   `db:"description"  json:"description"  validate:"omitempty"`
	RateMorning *float64 `db:"rate_morning" json:"rate_morning" validate:"omitempty,gte=0"`
	RateEvening *float64 `db:"rate_evening" json:"rate_evening" validate:"omitempty,gte=0"`
	RateFullday *float64 `db:"rate_fullday" json:"rate_fullday" validate:"omitempty,gte=0"`
	Active      *bool    `db:"active"       json:"active"       validate:"omitempty"`
}

type HallResponse struct {
	ID             string                 `json:"id"`
	OrganizationID string                 `json:"organization_id"`
	Name           string                 `json:"name"`
	Capacity       int                    `json:"capacity"`
	Location       string                 `json:"location"`
	Address        string                 `json:"address"`
	Description    string                 `json:"description"`
	RateMorning    float64                `json:"rate_morning"`
	RateEvening    float64                `json:"rate_evening"`
	RateFullday    float64                `json:"rate_fullday"`
	Features       []model.CatalogFeature `json:"features"`
	Images         []string               `json:"images"`
	Active         bool                   `json:"active"`
	gDto.Metadata
}

func (r *HallResponse) FromModel(model model.Hall) {
	r.ID = model.ID
	r.OrganizationID = model.OrganizationID
	r.Name = model.Name
	r.Capacity = model.Capacity
	r.Location = model.Location
	r.Address = model.Address
	r.Description = model.Description
	r.RateMorning = model.RateMorning
	r.RateEvening = model.RateEvening
	r.RateFullday = model.RateFullday
	r.Features = model.Features
	r.Images = model.Images
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetHallsResponse struct {
	Halls     []HallResponse `json:"halls"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetHallsResponse) FromModels(models []model.Hall, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Halls = make([]HallResponse, len(models))
	for i, mod := range models {
		r.Halls[i].FromModel(mod)
	}
}

// DayAvailability is one classified date of the availability range.
type DayAvailability struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type GetAvailabilityResponse struct {
	HallID string            `json:"hall_id"`
	From   string            `json:"from"`
	To     string            `json:"to"`
	Days   []DayAvailability `json:"days"`
}
