package dto

import (
	"hallbook/internal/domains/review/model"
	"hallbook/shared"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	gModel "hallbook/shared/model"
	"hallbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	// HallID comes from the URL path, not the body.
	HallID string `json:"-"`
	Author string `json:"author" validate:"required,max=100"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
	Text   string `json:"text"   validate:"omitempty"`
}

func (c *CreateReviewRequest) ToModel() model.Review {
	return model.Review{
		ID:     uuid.NewString(),
		HallID: c.HallID,
		Author: c.Author,
		Rating: c.Rating,
		Text:   c.Text,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type ReviewResponse struct {
	ID       string `json:"id"`
	HallID   string `json:"hall_id"`
	Author   string `json:"author"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Approved bool   `json:"approved"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.HallID = model.HallID
	r.Author = model.Author
	r.Rating = model.Rating
	r.Text = model.Text
	r.Approved = model.Approved
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
