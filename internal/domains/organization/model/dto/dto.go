package dto

import (
	"hallbook/internal/domains/organization/model"
	"hallbook/shared"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateOrganizationRequest struct {
	Name          string `json:"name"           validate:"required,max=200"`
	ContactPerson string `json:"contact_person" validate:"omitempty,max=100"`
	Phone         string `json:"phone"          validate:"omitempty,max=20"`
	Email         string `json:"email"          validate:"omitempty,email,max=100"`
	Address       string `json:"address"        validate:"omitempty"`
}

func (c *CreateOrganizationRequest) ToModel(user string) model.Organization {
	return model.Organization{
		ID:            uuid.NewString(),
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		Active:        true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateOrganizationRequest struct {
	Name          string `db:"name"           json:"name"           validate:"omitempty,max=200"`
	ContactPerson string `db:"contact_person" json:"contact_person" validate:"omitempty,max=100"`
	Phone         string `db:"phone"          json:"phone"          validate:"omitempty,max=20"`
	Email         string `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	Address       string `db:"address"        json:"address"        validate:"omitempty"`
	Active        *bool  `db:"active"         json:"active"         validate:"omitempty"`
}

type OrganizationResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	Active        bool   `json:"active"`
	gDto.Metadata
}

func (r *OrganizationResponse) FromModel(model model.Organization) {
	r.ID = model.ID
	r.Name = model.Name
	r.ContactPerson = model.ContactPerson
	r.Phone = model.Phone
	r.Email = model.Email
	r.Address = model.Address
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetOrganizationsResponse) FromModels(models []model.Organization, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Organizations = make([]OrganizationResponse, len(models))
	for i, mod := range models {
		r.Organizations[i].FromModel(mod)
	}
}
