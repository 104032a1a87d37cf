package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseportfolio/internal/app/models"
	"github.com/yigit/courseportfolio/internal/app/repositories"
	"github.com/yigit/courseportfolio/internal/pkg/apperrors"
)

type mockCourseService struct {
	mock.Mock
}

func (m *mockCourseService) GenerateCoursePayload(departmentID, courseNumber string) (models.CoursePayload, error) {
	args := m.Called(departmentID, courseNumber)
	return args.Get(0).(models.CoursePayload), args.Error(1)
}

func (m *mockCourseService) GetByAttributes(ctx context.Context, departmentID, courseNumber string) (*models.Course, error) {
	args := m.Called(ctx, departmentID, courseNumber)
	course, _ := args.Get(0).(*models.Course)
	return course, args.Error(1)
}

func (m *mockCourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	args := m.Called(ctx, id)
	course, _ := args.Get(0).(*models.Course)
	return course, args.Error(1)
}

func (m *mockCourseService) Insert(ctx context.Context, departmentID, courseNumber string) (*models.Course, error) {
	args := m.Called(ctx, departmentID, courseNumber)
	course, _ := args.Get(0).(*models.Course)
	return course, args.Error(1)
}

func (m *mockCourseService) UpdateByID(ctx context.Context, id int64, departmentID, courseNumber string) (*models.Course, error) {
	args := m.Called(ctx, id, departmentID, courseNumber)
	course, _ := args.Get(0).(*models.Course)
	return course, args.Error(1)
}

func (m *mockCourseService) DeleteByAttributes(ctx context.Context, departmentID, courseNumber string) (bool, error) {
	args := m.Called(ctx, departmentID, courseNumber)
	return args.Bool(0), args.Error(1)
}

func (m *mockCourseService) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newTestRouter(svc *mockCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	ctrl := NewCourseController(svc)

	router.POST("/courses/payload", ctrl.GeneratePayload)
	router.GET("/courses/lookup", ctrl.GetCourseByAttributes)
	router.GET("/courses/:id", ctrl.GetCourseByID)
	router.POST("/courses", ctrl.CreateCourse)
	router.PUT("/courses/:id", ctrl.UpdateCourse)
	router.DELETE("/courses", ctrl.DeleteCoursesByAttributes)
	router.DELETE("/courses/:id", ctrl.DeleteCourse)
	return router
}

func perform(t *testing.T, router *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestGeneratePayloadEndpoint(t *testing.T) {
	svc := new(mockCourseService)
	svc.On("GenerateCoursePayload", "1", "101").Return(models.CoursePayload{DepartmentID: 1, Number: 101}, nil).Once()

	w, env := perform(t, newTestRouter(svc), http.MethodPost, "/courses/payload", `{"departmentId":"1","courseNumber":101}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"departmentId":1,"number":101}`, string(env.Data))
	svc.AssertExpectations(t)
}

func TestGetCourseByAttributesEndpoint(t *testing.T) {
	svc := new(mockCourseService)
	svc.On("GetByAttributes", mock.Anything, "1", "101").
		Return(&models.Course{ID: 1, DepartmentID: 1, CourseNumber: 101}, nil).Once()

	w, env := perform(t, newTestRouter(svc), http.MethodGet, "/courses/lookup?departmentId=1&courseNumber=101", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"id":1,"departmentId":1,"courseNumber":101}`, string(env.Data))
	svc.AssertExpectations(t)
}

func TestGetCourseByAttributesMissingQuery(t *testing.T) {
	svc := new(mockCourseService)

	w, env := perform(t, newTestRouter(svc), http.MethodGet, "/courses/lookup?departmentId=1", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VAL_001", env.Error.Code)
	svc.AssertNotCalled(t, "GetByAttributes", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetCourseByIDEndpoint(t *testing.T) {
	svc := new(mockCourseService)
	svc.On("GetByID", mock.Anything, int64(1)).Return(&models.Course{ID: 1, DepartmentID: 1, CourseNumber: 101}, nil).Once()
	svc.On("GetByID", mock.Anything, int64(404)).Return(nil, repositories.ErrCourseNotFound).Once()
	router := newTestRouter(svc)

	w, env := perform(t, router, http.MethodGet, "/courses/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"departmentId":1,"courseNumber":101}`, string(env.Data))

	w, env = perform(t, router, http.MethodGet, "/courses/404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RES_001", env.Error.Code)

	w, _ = perform(t, router, http.MethodGet, "/courses/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.AssertExpectations(t)
}

func TestCreateCourseEndpoint(t *testing.T) {
	svc := new(mockCourseService)
	svc.On("Insert", mock.Anything, "1", "101").Return(&models.Course{ID: 1, DepartmentID: 1, CourseNumber: 101}, nil).Once()

	w, env := perform(t, newTestRouter(svc), http.MethodPost, "/courses", `{"departmentId":1,"courseNumber":101}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"departmentId":1,"courseNumber":101}`, string(env.Data))
	svc.AssertExpectations(t)
}

func TestCreateCourseErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantCode   string
	}{
		{name: "missing field", body: `{"departmentId":1}`, wantStatus: http.StatusBadRequest, wantCode: "VAL_001"},
		{name: "not json", body: `{`, wantStatus: http.StatusBadRequest, wantCode: "VAL_001"},
		{name: "non-numeric string", body: `{"departmentId":"cs","courseNumber":101}`, wantStatus: http.StatusBadRequest, wantCode: "VAL_001"},
		{name: "duplicate", body: `{"departmentId":1,"courseNumber":101}`, serviceErr: repositories.ErrCourseAlreadyExists, wantStatus: http.StatusConflict, wantCode: "RES_002"},
		{name: "validation from service", body: `{"departmentId":1.5,"courseNumber":101}`, serviceErr: apperrors.NewValidationError("department_id must be an integer"), wantStatus: http.StatusBadRequest, wantCode: "VAL_001"},
		{name: "storage failure", body: `{"departmentId":1,"courseNumber":101}`, serviceErr: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantCode: "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockCourseService)
			if tt.serviceErr != nil {
				svc.On("Insert", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.serviceErr).Once()
			}

			w, env := perform(t, newTestRouter(svc), http.MethodPost, "/courses", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.False(t, env.Success)
			if tt.serviceErr == nil {
				svc.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUpdateCourseEndpoint(t *testing.T) {
	svc := new(mockCourseService)
	svc.On("UpdateByID", mock.Anything, int64(2), "2", "202").Return(&models.Course{ID: 2, DepartmentID: 2, CourseNumber: 202}, nil).Once()

	w, env := perform(t, newTestRouter(svc), http.MethodPut, "/courses/2", `{"departmentId":"2","courseNumber":"202"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":2,"departmentId":2,"courseNumber":202}`, string(env.Data))
	svc.AssertExpectations(t)
}

func TestDeleteCoursesByAttributesEndpoint(t *testing.T) {
	svc := new(mockCourseService)
	svc.On("DeleteByAttributes", mock.Anything, "1", "101").Return(true, nil).Once()
	svc.On("DeleteByAttributes", mock.Anything, "-1", "-1").Return(false, nil).Once()
	router := newTestRouter(svc)

	w, env := perform(t, router, http.MethodDelete, "/courses?departmentId=1&courseNumber=101", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":true}`, string(env.Data))

	w, env = perform(t, router, http.MethodDelete, "/courses?departmentId=-1&courseNumber=-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":false}`, string(env.Data))

	svc.AssertExpectations(t)
}

func TestDeleteCourseEndpoint(t *testing.T) {
	svc := new(mockCourseService)
	svc.On("DeleteByID", mock.Anything, int64(1)).Return(true, nil).Once()
	svc.On("DeleteByID", mock.Anything, int64(404)).Return(false, nil).Once()
	router := newTestRouter(svc)

	w, env := perform(t, router, http.MethodDelete, "/courses/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":true}`, string(env.Data))

	w, env = perform(t, router, http.MethodDelete, "/courses/404", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":false}`, string(env.Data))

	svc.AssertExpectations(t)
}
