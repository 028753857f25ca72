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
	createFormErrMessage     = "failed to create form"
	getFormErrMessage        = "failed to get form"
	listFormsErrMessage      = "failed to list forms"
	updateFormErrMessage     = "failed to update form"
	deleteFormErrMessage     = "failed to delete form"
	getQuestionsErrMessage   = "failed to get form questions"
	publishFormErrMessage    = "failed to publish form"
	formNotFoundErrMessage   = "form not found"
	invalidPayloadErrMessage = "invalid request payload"
)

func NewFormController(service usecases.FormService) *FormController {
	return &FormController{
		service: service,
	}
}

var _ httpserver.Controller = &FormController{}

type FormController struct {
	service usecases.FormService
}

func (c *FormController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/forms", c.createForm())
	router.Handle("GET /v1/forms/{formId}", c.getForm())
	router.Handle("GET /v1/forms/user/{userId}", c.listUserForms())
	router.Handle("PUT /v1/forms/{formId}", c.updateForm())
	router.Handle("DELETE /v1/forms/{formId}", c.deleteForm())
	router.Handle("GET /v1/forms/{formId}/questions", c.getQuestions())
	router.Handle("POST /v1/forms/{formId}/publish", c.publishForm())
}

func (c *FormController) createForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.FormCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, invalidPayloadErrMessage, http.StatusBadRequest)
			return
		}

		if body.UserID == "" || body.Title == "" {
			http.Error(w, "user_id and title are required", http.StatusBadRequest)
			return
		}

		form, err := formsdomain.NewFormBuilder().
			WithUserID(formsdomain.ID(body.UserID)).
			WithTitle(body.Title).
			WithSettings(body.Settings).
			Build()
		if err != nil {
			http.Error(w, createFormErrMessage, http.StatusBadRequest)
			return
		}

		err = c.service.CreateForm(r.Context(), form)
		if err != nil {
			slog.Error("creating form", slog.String("error", err.Error()))
			http.Error(w, createFormErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.DataResponse{Data: internal.ToFormResponse(form)})
	}
}

func (c *FormController) getForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("formId")

		form, err := c.service.GetForm(r.Context(), formsdomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrFormNotFound) {
				http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting form", slog.String("error", err.Error()))
			http.Error(w, getFormErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DataResponse{Data: internal.ToFormResponse(form)})
	}
}

func (c *FormController) listUserForms() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.PathValue("userId")

		forms, err := c.service.ListUserForms(r.Context(), formsdomain.ID(userID))
		if err != nil {
			slog.Error("listing forms", slog.String("error", err.Error()))
			http.Error(w, listFormsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.FormResponse, len(forms))
		for i, form := range forms {
			responses[i] = internal.ToFormResponse(form)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DataResponse{Data: responses})
	}
}

func (c *FormController) updateForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("formId")

		var body internal.FormUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, invalidPayloadErrMessage, http.StatusBadRequest)
			return
		}

		form, err := c.service.UpdateForm(r.Context(), formsdomain.ID(id), body.Title, body.Settings, formsdomain.FormStatus(body.Status))
		if err != nil {
			if errors.Is(err, usecases.ErrFormNotFound) {
				http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("updating form", slog.String("error", err.Error()))
			http.Error(w, updateFormErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DataResponse{Data: internal.ToFormResponse(form)})
	}
}

func (c *FormController) deleteForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("formId")

		err := c.service.DeleteForm(r.Context(), formsdomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrFormNotFound) {
				http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("deleting form", slog.String("error", err.Error()))
			http.Error(w, deleteFormErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *FormController) getQuestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("formId")

		questions, err := c.service.GetQuestions(r.Context(), formsdomain.ID(id))
		if err != nil {
			if errors.Is(err, usecases.ErrFormNotFound) {
				http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("getting form questions", slog.String("error", err.Error()))
			http.Error(w, getQuestionsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.QuestionResponse, len(questions))
		for i, question := range questions {
			responses[i] = internal.ToQuestionResponse(question)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DataResponse{Data: responses})
	}
}

func (c *FormController) publishForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("formId")

		var body internal.PublishRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			http.Error(w, invalidPayloadErrMessage, http.StatusBadRequest)
			return
		}

		drafts := make([]formsdomain.Question, len(body.Questions))
		for i, question := range body.Questions {
			draft, err := question.ToDraft(formsdomain.ID(id))
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			drafts[i] = draft
		}

		form, questions, err := c.service.Publish(r.Context(), formsdomain.ID(id), drafts)
		if err != nil {
			if errors.Is(err, usecases.ErrFormNotFound) {
				http.Error(w, formNotFoundErrMessage, http.StatusNotFound)
				return
			}
			slog.Error("publishing form", slog.String("error", err.Error()))
			http.Error(w, publishFormErrMessage, http.StatusInternalServerError)
			return
		}

		questionResponses := make([]internal.QuestionResponse, len(questions))
		for i, question := range questions {
			questionResponses[i] = internal.ToQuestionResponse(question)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.DataResponse{Data: internal.PublishResponse{
			Form:      internal.ToFormResponse(form),
			Questions: questionResponses,
		}})
	}
}
