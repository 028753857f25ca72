package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	"stepform-server/internal/forms/domain"
	"stepform-server/internal/forms/httpapi"
	"stepform-server/internal/forms/usecases"
	"stepform-server/internal/infra/httpserver"
	mockusecases "stepform-server/test/unit/doubles/forms/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ResponseController", func() {
	var (
		controller  *httpapi.ResponseController
		mockService *mockusecases.MockResponseService
		ctrl        *gomock.Controller
		recorder    *httptest.ResponseRecorder
		request     *http.Request
		router      *http.ServeMux
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockResponseService(ctrl)
		controller = httpapi.NewResponseController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("submitResponse", func() {
		When("the submission is clean", func() {
			It("should reply 201 with the stored response", func() {
				stored := domain.Response{
					ID:     "response-1",
					FormID: "form-1",
					Answers: []domain.Answer{
						{ID: "a-1", ResponseID: "response-1", QuestionID: "q-1", Value: "Ada"},
					},
				}

				var submitted []domain.SubmittedAnswer
				mockService.EXPECT().
					Submit(gomock.Any(), domain.ID("form-1"), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ domain.ID, answers []domain.SubmittedAnswer) (domain.Response, []domain.ValidationError, error) {
						submitted = answers
						return stored, nil, nil
					})

				body := `{"answers":[{"form_question_id":"q-1","answer":"Ada"}]}`
				request = httptest.NewRequest("POST", "/v1/forms/form-1/responses", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))
				Expect(submitted).To(HaveLen(1))
				Expect(submitted[0].QuestionID).To(Equal(domain.ID("q-1")))
				Expect(submitted[0].Value).To(Equal("Ada"))

				var reply struct {
					Data struct {
						ID      string `json:"id"`
						FormID  string `json:"form_id"`
						Answers []struct {
							QuestionID string `json:"question_id"`
						} `json:"answers"`
					} `json:"data"`
				}
				Expect(json.Unmarshal(recorder.Body.Bytes(), &reply)).To(Succeed())
				Expect(reply.Data.ID).To(Equal("response-1"))
				Expect(reply.Data.Answers).To(HaveLen(1))
			})
		})

		When("the submission fails validation", func() {
			It("should reply 400 with the validation errors", func() {
				validationErrors := []domain.ValidationError{
					{Field: "Name", Message: "This field is required", QuestionID: "q-1"},
				}
				mockService.EXPECT().
					Submit(gomock.Any(), domain.ID("form-1"), gomock.Any()).
					Return(domain.Response{}, validationErrors, nil)

				body := `{"answers":[]}`
				request = httptest.NewRequest("POST", "/v1/forms/form-1/responses", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))

				var reply struct {
					Error            string                   `json:"error"`
					ValidationErrors []domain.ValidationError `json:"validationErrors"`
				}
				Expect(json.Unmarshal(recorder.Body.Bytes(), &reply)).To(Succeed())
				Expect(reply.Error).To(Equal("Form validation failed"))
				Expect(reply.ValidationErrors).To(Equal(validationErrors))
			})
		})

		When("the form has no questions", func() {
			It("should reply 404", func() {
				mockService.EXPECT().
					Submit(gomock.Any(), domain.ID("form-1"), gomock.Any()).
					Return(domain.Response{}, nil, usecases.ErrNoQuestions)

				request = httptest.NewRequest("POST", "/v1/forms/form-1/responses", strings.NewReader(`{"answers":[]}`))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the payload is not JSON", func() {
			It("should reply 400 without touching the service", func() {
				request = httptest.NewRequest("POST", "/v1/forms/form-1/responses", strings.NewReader("not json"))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("listResponses", func() {
		When("using default pagination", func() {
			It("should reply with a paginated page", func() {
				responses := []domain.Response{
					{ID: "response-1", FormID: "form-1"},
					{ID: "response-2", FormID: "form-1"},
				}
				mockService.EXPECT().
					ListResponses(gomock.Any(), domain.ID("form-1"), usecases.Pagination{Limit: 10, Offset: 0}).
					Return(responses, 25, nil)

				request = httptest.NewRequest("GET", "/v1/forms/form-1/responses", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var reply httpserver.PaginatedResponse
				Expect(json.Unmarshal(recorder.Body.Bytes(), &reply)).To(Succeed())
				Expect(reply.Pagination.Total).To(Equal(25))
				Expect(reply.Pagination.Page).To(Equal(1))
				Expect(reply.Pagination.Limit).To(Equal(10))
				Expect(reply.Pagination.TotalPages).To(Equal(3))
			})
		})

		When("requesting a specific page", func() {
			It("should translate the page into an offset", func() {
				mockService.EXPECT().
					ListResponses(gomock.Any(), domain.ID("form-1"), usecases.Pagination{Limit: 5, Offset: 10}).
					Return([]domain.Response{}, 0, nil)

				request = httptest.NewRequest("GET", "/v1/forms/form-1/responses?page=3&limit=5", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
			})
		})
	})
})
