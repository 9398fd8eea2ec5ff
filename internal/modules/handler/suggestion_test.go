package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/suggestbox/suggestbox/internal/modules/model"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/pkg/patch"
	"github.com/suggestbox/suggestbox/internal/pkg/permission"
)

func TestSuggestionHandler_AddSuggestion(t *testing.T) {
	contributor := &model.Token{ProjectID: 7, Permission: permission.AddSuggestions}

	tests := []struct {
		name           string
		body           string
		setup          func(*MockSuggestionService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful add",
			body: `{"displayName":"Anon","suggestionText":"More coffee"}`,
			setup: func(svc *MockSuggestionService) {
				svc.On("Add", mock.Anything, contributor, "Anon", "More coffee").
					Return(&model.Suggestion{ID: 1, ProjectID: 7, DisplayName: "Anon", SuggestionText: "More coffee"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "suggestion too long",
			body: `{"displayName":"Anon","suggestionText":"x"}`,
			setup: func(svc *MockSuggestionService) {
				svc.On("Add", mock.Anything, contributor, "Anon", "x").
					Return(nil, &service.DetailError{Kind: service.ErrValidation, Msg: "Your suggestion is too short"})
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Your suggestion is too short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSuggestionService{}
			tt.setup(svc)

			h := NewSuggestionHandler(svc)
			router := setupRouter()
			router.POST("/projects/:id/suggestions", withToken(contributor, h.AddSuggestion))

			req := httptest.NewRequest(http.MethodPost, "/projects/7/suggestions", bytes.NewBufferString(tt.body))
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

func TestSuggestionHandler_PatchSuggestion(t *testing.T) {
	viewer := &model.Token{ProjectID: 7, Permission: permission.ViewSuggestions}

	tests := []struct {
		name           string
		path           string
		body           string
		setup          func(*MockSuggestionService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "trash",
			path: "/projects/7/suggestions/3",
			body: `{"inTrash":true}`,
			setup: func(svc *MockSuggestionService) {
				svc.On("Patch", mock.Anything, viewer, int64(3), []patch.Change{{Field: "inTrash", Value: true}}).
					Return(&model.Suggestion{ID: 3, ProjectID: 7, InTrash: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "suggestion of another project",
			path: "/projects/7/suggestions/99",
			body: `{"inTrash":true}`,
			setup: func(svc *MockSuggestionService) {
				svc.On("Patch", mock.Anything, viewer, int64(99), mock.Anything).
					Return(nil, &service.DetailError{Kind: service.ErrNotFound, Msg: "Invalid Suggestion ID"})
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Invalid Suggestion ID",
		},
		{
			name:           "non-numeric id",
			path:           "/projects/7/suggestions/abc",
			body:           `{"inTrash":true}`,
			setup:          func(*MockSuggestionService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid Suggestion ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockSuggestionService{}
			tt.setup(svc)

			h := NewSuggestionHandler(svc)
			router := setupRouter()
			router.PATCH("/projects/:id/suggestions/:sid", withToken(viewer, h.PatchSuggestion))

			req := httptest.NewRequest(http.MethodPatch, tt.path, bytes.NewBufferString(tt.body))
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
