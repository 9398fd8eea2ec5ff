package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/suggestbox/suggestbox/internal/modules/model"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/pkg/patch"
	"github.com/suggestbox/suggestbox/internal/pkg/permission"
)

type envelope struct {
	Code int            `json:"code"`
	Msg  string         `json:"msg"`
	Data map[string]any `json:"data"`
}

func decode(t *testing.T, body []byte) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, sonic.Unmarshal(body, &e))
	return e
}

func TestProjectHandler_CreateProject(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockProjectService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			body: `{"ownerName":"Alice","projectName":"Trips"}`,
			setup: func(svc *MockProjectService) {
				svc.On("Create", mock.Anything, "Alice", "Trips").Return(&model.Project{
					ID: 1, OwnerName: "Alice", ProjectName: "Trips",
					Tokens: []model.Token{{Key: "a", Permission: permission.Admin}, {Key: "b", Permission: permission.AddSuggestions}},
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "name too short",
			body: `{"ownerName":"Al","projectName":"Trips"}`,
			setup: func(svc *MockProjectService) {
				svc.On("Create", mock.Anything, "Al", "Trips").Return(nil, &service.DetailError{Kind: service.ErrValidation, Msg: "Your display name is too short"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Your display name is too short",
		},
		{
			name:           "malformed body",
			body:           `{"ownerName":`,
			setup:          func(*MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "database error",
			body: `{"ownerName":"Alice","projectName":"Trips"}`,
			setup: func(svc *MockProjectService) {
				svc.On("Create", mock.Anything, "Alice", "Trips").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockProjectService{}
			tt.setup(svc)

			h := NewProjectHandler(svc)
			router := setupRouter()
			router.POST("/projects", h.CreateProject)

			req := httptest.NewRequest(http.MethodPost, "/projects", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decode(t, w.Body.Bytes()).Msg)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_GetProject(t *testing.T) {
	project := &model.Project{ID: 7, OwnerName: "Alice", ProjectName: "Trips", LastReadTimestamp: 10}

	tests := []struct {
		name     string
		token    *model.Token
		view     *service.ProjectView
		wantKeys []string
	}{
		{
			name:     "admin",
			token:    &model.Token{ProjectID: 7, Permission: permission.Admin},
			view:     &service.ProjectView{Project: project, ShowIdentity: true, ShowSuggestions: true, ShowTokens: true},
			wantKeys: []string{"id", "ownerName", "projectName", "lastReadTimestamp", "suggestions", "tokens"},
		},
		{
			name:     "contributor",
			token:    &model.Token{ProjectID: 7, Permission: permission.AddSuggestions},
			view:     &service.ProjectView{Project: project, ShowIdentity: true},
			wantKeys: []string{"id", "ownerName", "projectName"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockProjectService{}
			svc.On("View", mock.Anything, tt.token).Return(tt.view, nil)

			h := NewProjectHandler(svc)
			router := setupRouter()
			router.GET("/projects/:id", withToken(tt.token, h.GetProject))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/projects/7", nil))

			require.Equal(t, http.StatusOK, w.Code)
			keys := []string{}
			for k := range decode(t, w.Body.Bytes()).Data {
				keys = append(keys, k)
			}
			assert.ElementsMatch(t, tt.wantKeys, keys)
			svc.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_PatchProject(t *testing.T) {
	admin := &model.Token{ProjectID: 7, Permission: permission.Admin}

	tests := []struct {
		name           string
		body           string
		setup          func(*MockProjectService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "changes are passed in request order",
			body: `{"projectName":"Holidays","ownerName":"Bob"}`,
			setup: func(svc *MockProjectService) {
				changes := []patch.Change{{Field: "projectName", Value: "Holidays"}, {Field: "ownerName", Value: "Bob"}}
				svc.On("Patch", mock.Anything, admin, changes).Return(&service.ProjectView{
					Project: &model.Project{ID: 7, OwnerName: "Bob", ProjectName: "Holidays"}, ShowIdentity: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "denied field",
			body: `{"ownerName":"Bob"}`,
			setup: func(svc *MockProjectService) {
				svc.On("Patch", mock.Anything, admin, mock.Anything).Return(nil, &service.DetailError{
					Kind: service.ErrForbidden,
					Msg:  "You don't have permission to modify field ownerName. Some other fields may have been modified",
				})
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "You don't have permission to modify field ownerName. Some other fields may have been modified",
		},
		{
			name:           "body is not an object",
			body:           `["ownerName"]`,
			setup:          func(*MockProjectService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockProjectService{}
			tt.setup(svc)

			h := NewProjectHandler(svc)
			router := setupRouter()
			router.PATCH("/projects/:id", withToken(admin, h.PatchProject))

			req := httptest.NewRequest(http.MethodPatch, "/projects/7", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedMsg != "" {
				assert.Equal(t, tt.expectedMsg, decode(t, w.Body.Bytes()).Msg)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestProjectHandler_DeleteAndRead(t *testing.T) {
	admin := &model.Token{ProjectID: 7, Permission: permission.Admin}

	svc := &MockProjectService{}
	svc.On("Delete", mock.Anything, admin).Return(nil)
	svc.On("RefreshLastRead", mock.Anything, admin).Return(int64(1234), nil)

	h := NewProjectHandler(svc)
	router := setupRouter()
	router.DELETE("/projects/:id", withToken(admin, h.DeleteProject))
	router.POST("/projects/:id/read", withToken(admin, h.RefreshLastRead))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/projects/7", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w.Body.Bytes()).Data["success"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/projects/7/read", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1234), decode(t, w.Body.Bytes()).Data["lastReadTimestamp"])

	svc.AssertExpectations(t)
}
