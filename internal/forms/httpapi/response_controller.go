package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	formsdomain "stepform-server/internal/forms/domain"
	"stepform-server/internal/forms/httpapi/internal"
	"stepform-server/internal/forms/usecases"
	"stepform-server/internal/infra/httpserver"
)

const (
	submitResponseErrMessage   = "failed to submit form response"
	listResponsesErrMessage    = "failed to list form responses"
	noQuestionsErrMessage      = "form has no questions"
	validationFailedErrMessage = "Form validation failed"
)

func NewResponseController(service usecases.ResponseService) *ResponseController {
	return &ResponseController{
		service: service,
	}
}

var _ httpserver.Controller = &ResponseController{}

type ResponseController struct {
	service usecases.ResponseService
}

func (c *ResponseController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/forms/{formId}/responses", c.submitResponse())
	router.Handle("GET /v1/forms/{formId}/responses", c.listResponses())
}

func (c *ResponseController) submitResponse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("formId")

		var body internal.SubmitRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, invalidPayloadErrMessage, http.StatusBadRequest)
			return
		}

		response, validationErrors, err := c.service.Submit(r.Context(), formsdomain.ID(id), body.ToDomain())
		if err != nil {
			if errors.Is(err, usecases.ErrNoQuestions) {
				http.Error(w, noQuestionsErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("submitting form response", slog.String("error", err.Error()))
			http.Error(w, submitResponseErrMessage, http.StatusInternalServerError)
			return
		}

		if len(validationErrors) > 0 {
			httpserver.ReplyJSONResponse(w, http.StatusBadRequest, internal.ValidationFailureResponse{
				Error:            validationFailedErrMessage,
				ValidationErrors: validationErrors,
			})
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.DataResponse{Data: internal.ToResponseBody(response)})
	}
}

func (c *ResponseController) listResponses() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("formId")

		paginationParams := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{
			Limit:  paginationParams.Limit,
			Offset: (paginationParams.Page - 1) * paginationParams.Limit,
		}

		responses, total, err := c.service.ListResponses(r.Context(), formsdomain.ID(id), pagination)
		if err != nil {
			slog.Error("listing form responses", slog.String("error", err.Error()))
			http.Error(w, listResponsesErrMessage, http.StatusInternalServerError)
			return
		}

		bodies := make([]internal.ResponseBody, len(responses))
		for i, response := range responses {
			bodies[i] = internal.ToResponseBody(response)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, bodies, total, paginationParams)
	}
}
