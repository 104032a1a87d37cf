package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/courseportfolio/internal/app/controllers"
	"github.com/yigit/courseportfolio/internal/app/models"
	"github.com/yigit/courseportfolio/internal/middleware"
	"github.com/yigit/courseportfolio/internal/pkg/auth"
)

// stubCourseService answers every call with a fixed course.
type stubCourseService struct {
	inserted int
}

func (s *stubCourseService) GenerateCoursePayload(_, _ string) (models.CoursePayload, error) {
	return models.CoursePayload{DepartmentID: 1, Number: 101}, nil
}

func (s *stubCourseService) GetByAttributes(_ context.Context, _, _ string) (*models.Course, error) {
	return &models.Course{ID: 1, DepartmentID: 1, CourseNumber: 101}, nil
}

func (s *stubCourseService) GetByID(_ context.Context, id int64) (*models.Course, error) {
	return &models.Course{ID: id, DepartmentID: 1, CourseNumber: 101}, nil
}

func (s *stubCourseService) Insert(_ context.Context, _, _ string) (*models.Course, error) {
	s.inserted++
	return &models.Course{ID: 1, DepartmentID: 1, CourseNumber: 101}, nil
}

func (s *stubCourseService) UpdateByID(_ context.Context, id int64, _, _ string) (*models.Course, error) {
	return &models.Course{ID: id, DepartmentID: 1, CourseNumber: 101}, nil
}

func (s *stubCourseService) DeleteByAttributes(_ context.Context, _, _ string) (bool, error) {
	return true, nil
}

func (s *stubCourseService) DeleteByID(_ context.Context, _ int64) (bool, error) {
	return true, nil
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func setup(t *testing.T, db Pinger) (*gin.Engine, *auth.JWTService, *stubCourseService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "routes-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "courseportfolio",
	})
	svc := &stubCourseService{}

	router := gin.New()
	SetupRouter(router, controllers.NewCourseController(svc), middleware.NewAuthMiddleware(jwtService), db)
	return router, jwtService, svc
}

func healthy() Pinger {
	return pingerFunc(func(context.Context) error { return nil })
}

func TestPublicCourseRoutesNeedNoToken(t *testing.T) {
	router, _, _ := setup(t, healthy())

	for _, target := range []string{"/api/v1/courses/1", "/api/v1/courses/lookup?departmentId=1&courseNumber=101"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}

func TestWriteRoutesRequireEditorToken(t *testing.T) {
	router, jwtService, svc := setup(t, healthy())
	body := `{"departmentId":1,"courseNumber":101}`

	editor, _, err := jwtService.GenerateToken("registrar", auth.RoleEditor)
	require.NoError(t, err)
	viewer, _, err := jwtService.GenerateToken("student", auth.RoleViewer)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "no token", header: "", want: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-token", want: http.StatusUnauthorized},
		{name: "viewer role", header: "Bearer " + viewer, want: http.StatusForbidden},
		{name: "editor role", header: "Bearer " + editor, want: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/courses", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}

	assert.Equal(t, 1, svc.inserted)
}

func TestDeleteRoutesAreProtected(t *testing.T) {
	router, jwtService, _ := setup(t, healthy())
	editor, _, err := jwtService.GenerateToken("registrar", auth.RoleEditor)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/courses/1", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/courses?departmentId=1&courseNumber=101", nil)
	req.Header.Set("Authorization", "Bearer "+editor)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"deleted":true`)
}

func TestHealth(t *testing.T) {
	router, _, _ := setup(t, healthy())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	down, _, _ := setup(t, pingerFunc(func(context.Context) error { return errors.New("dial tcp: refused") }))
	w = httptest.NewRecorder()
	down.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "SRV_002")
}
