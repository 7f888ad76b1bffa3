package review

import (
	"net/http"

	"hallbook/infras/otel"
	"hallbook/internal/domains/review/model"
	"hallbook/internal/domains/review/model/dto"
	"hallbook/internal/domains/review/service"
	"hallbook/shared"
	"hallbook/shared/constant"
	gDto "hallbook/shared/dto"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reviews", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetReviews)
		routerGroup.Patch("/{id}/approve", handler.ApproveReview)
		routerGroup.Delete("/{id}", handler.DeleteReview)
	})

	// storefront routes, no auth
	router.Post("/public/halls/{id}/reviews", handler.CreateReview)
	router.Get("/public/halls/{id}/reviews", handler.GetApprovedReviews)
}

// CreateReview handles a storefront review submission.
// @Summary Submit a review
// @Description Submit a review for a hall. It stays off the storefront until approved.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Message "Review submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/halls/{id}/reviews [post]
func (handler *Handler) CreateReview(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	req.HallID = chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.PublicCreate(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Review submitted successfully")

	response.WithMessage(writer, http.StatusCreated, "Review submitted successfully")
}

// GetApprovedReviews lists the approved reviews of a hall.
// @Summary Get approved reviews of a hall
// @Description Retrieve the approved reviews shown on the hall storefront.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Hall ID"
// @Success 200 {object} dto.GetReviewsResponse "Approved reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/public/halls/{id}/reviews [get]
func (handler *Handler) GetApprovedReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetApprovedReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	hallID := chi.URLParam(r, constant.RequestParamID)

	reviews, err := handler.service.GetApprovedByHall(ctx, hallID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get approved reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Approved reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// GetReviews retrieves all reviews for moderation.
// @Summary Get all reviews
// @Description Retrieve all reviews, approved or not, with optional filtering.
// @Tags Review
// @Accept json
// @Produce json
// @Param hall_id query string false "Filter by hall"
// @Param approved query boolean false "Filter by approval"
// @Success 200 {object} dto.GetReviewsResponse "List of reviews"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews [get]
// @Security BearerAuth
func (handler *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if hallID := r.URL.Query().Get(model.FieldHallID); hallID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldHallID,
			Operator: gDto.FilterOperatorEq,
			Value:    hallID,
			Table:    model.TableName,
		})
	}

	if approved := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldApproved)); approved != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldApproved,
			Operator: gDto.FilterOperatorEq,
			Value:    *approved,
			Table:    model.TableName,
		})
	}

	reviews, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reviews retrieved successfully")

	response.WithJSON(w, http.StatusOK, reviews)
}

// ApproveReview publishes a review to the storefront.
// @Summary Approve a review
// @Description Approve a review so it shows on the hall storefront.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review approved successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id}/approve [patch]
// @Security BearerAuth
func (handler *Handler) ApproveReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Approve(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve review")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review approved successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Review approved successfully")
}

// DeleteReview deletes a review by its ID.
// @Summary Delete a review by ID
// @Description Delete a review using its unique identifier.
// @Tags Review
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} response.Message "Review deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reviews/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReview")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete review")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Review deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Review deleted successfully")
}
