package graph

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/suggestbox/suggestbox/internal/config"
	"github.com/suggestbox/suggestbox/internal/infra/db/dbtest"
	"github.com/suggestbox/suggestbox/internal/modules/repo"
	"github.com/suggestbox/suggestbox/internal/modules/service"
)

func newTestSchema(t *testing.T, log *zap.Logger) *graphql.Schema {
	t.Helper()
	db := dbtest.New(t)
	cfg := &config.Config{}
	tokens := service.NewTokenService(repo.NewTokenRepo(db), nil, log)
	projects := service.NewProjectService(repo.NewProjectRepo(db), nil, nil, cfg, log)
	suggestions := service.NewSuggestionService(repo.NewSuggestionRepo(db), nil, cfg, log)

	schema, err := NewSchema(NewResolver(projects, suggestions, tokens, log))
	require.NoError(t, err)
	return schema
}

func exec(t *testing.T, s *graphql.Schema, ctx context.Context, query string, vars map[string]any) (map[string]any, []string) {
	t.Helper()
	resp := s.Exec(ctx, query, "", vars)
	var data map[string]any
	if len(resp.Data) > 0 {
		require.NoError(t, sonic.Unmarshal(resp.Data, &data))
	}
	msgs := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		msgs = append(msgs, e.Message)
	}
	return data, msgs
}

func newProject(t *testing.T, s *graphql.Schema) (adminKey, addKey string) {
	t.Helper()
	data, errs := exec(t, s, context.Background(),
		`mutation { newProject(ownerName: "Alice", projectName: "Trips") { id tokens { key permission } } }`, nil)
	require.Empty(t, errs)
	tokens := data["newProject"].(map[string]any)["tokens"].([]any)
	require.Len(t, tokens, 2)
	for _, raw := range tokens {
		tok := raw.(map[string]any)
		switch tok["permission"] {
		case "ADMIN":
			adminKey = tok["key"].(string)
		case "ADD_SUGGESTIONS":
			addKey = tok["key"].(string)
		}
	}
	require.NotEmpty(t, adminKey)
	require.NotEmpty(t, addKey)
	return adminKey, addKey
}

func TestSchema_SuggestionLifecycle(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	s := newTestSchema(t, zap.New(core))
	ctx := context.Background()
	adminKey, addKey := newProject(t, s)

	data, errs := exec(t, s, ctx,
		`mutation($key: String) { addSuggestion(key: $key, displayName: "Anon", suggestionText: "More coffee") { id inTrash trashedTimestamp } }`,
		map[string]any{"key": addKey})
	require.Empty(t, errs)
	added := data["addSuggestion"].(map[string]any)
	assert.Equal(t, false, added["inTrash"])
	assert.Nil(t, added["trashedTimestamp"])
	id := added["id"]

	// The contributor key cannot trash.
	_, errs = exec(t, s, ctx, `mutation($key: String, $id: Int!) { deleteSuggestion(key: $key, id: $id) { id } }`,
		map[string]any{"key": addKey, "id": id})
	assert.Equal(t, []string{"Key doesn't have permission to do that"}, errs)

	data, errs = exec(t, s, ctx, `mutation($key: String, $id: Int!) { deleteSuggestion(key: $key, id: $id) { inTrash trashedTimestamp } }`,
		map[string]any{"key": adminKey, "id": id})
	require.Empty(t, errs)
	trashed := data["deleteSuggestion"].(map[string]any)
	assert.Equal(t, true, trashed["inTrash"])
	assert.NotNil(t, trashed["trashedTimestamp"])

	data, errs = exec(t, s, ctx, `mutation($key: String, $id: Int!) { undeleteSuggestion(key: $key, id: $id) { inTrash trashedTimestamp } }`,
		map[string]any{"key": adminKey, "id": id})
	require.Empty(t, errs)
	restored := data["undeleteSuggestion"].(map[string]any)
	assert.Equal(t, false, restored["inTrash"])
	assert.Nil(t, restored["trashedTimestamp"])

	assert.NotZero(t, logs.FilterMessage("graphql root field is deprecated").Len())
}

func TestSchema_ProjectVisibility(t *testing.T) {
	s := newTestSchema(t, zap.NewNop())
	ctx := context.Background()
	adminKey, addKey := newProject(t, s)

	const q = `query($key: String) { project(key: $key) { ownerName lastReadTimestamp suggestions { id } tokens { key } } }`

	data, errs := exec(t, s, ctx, q, map[string]any{"key": adminKey})
	require.Empty(t, errs)
	p := data["project"].(map[string]any)
	assert.Equal(t, "Alice", p["ownerName"])
	assert.NotNil(t, p["lastReadTimestamp"])
	assert.Equal(t, []any{}, p["suggestions"])
	assert.Len(t, p["tokens"], 2)

	data, errs = exec(t, s, ctx, q, map[string]any{"key": addKey})
	require.Empty(t, errs)
	p = data["project"].(map[string]any)
	assert.Equal(t, "Alice", p["ownerName"])
	assert.Nil(t, p["lastReadTimestamp"])
	assert.Nil(t, p["suggestions"])
	assert.Nil(t, p["tokens"])

	_, errs = exec(t, s, ctx, q, map[string]any{"key": "unknown-key"})
	assert.Equal(t, []string{"Invalid Key"}, errs)
}

func TestSchema_GenTokenAndRefresh(t *testing.T) {
	s := newTestSchema(t, zap.NewNop())
	ctx := context.Background()
	adminKey, addKey := newProject(t, s)

	data, errs := exec(t, s, ctx, `mutation($key: String) { genToken(key: $key, permission: VIEW_SUGGESTIONS) { key permission } }`,
		map[string]any{"key": adminKey})
	require.Empty(t, errs)
	viewKey := data["genToken"].(map[string]any)["key"].(string)
	assert.Equal(t, "VIEW_SUGGESTIONS", data["genToken"].(map[string]any)["permission"])

	_, errs = exec(t, s, ctx, `mutation($key: String) { genToken(key: $key, permission: ADMIN) { key } }`,
		map[string]any{"key": viewKey})
	assert.Equal(t, []string{"Key must have admin permissions"}, errs)

	data, errs = exec(t, s, ctx, `mutation($key: String) { refreshLastRead(key: $key) }`, map[string]any{"key": viewKey})
	require.Empty(t, errs)
	assert.Equal(t, true, data["refreshLastRead"])

	_, errs = exec(t, s, ctx, `mutation($key: String) { refreshLastRead(key: $key) }`, map[string]any{"key": addKey})
	assert.Equal(t, []string{"Key doesn't have permission to do that"}, errs)
}

func TestSchema_Validation(t *testing.T) {
	s := newTestSchema(t, zap.NewNop())
	_, errs := exec(t, s, context.Background(), `mutation { newProject(ownerName: "Al", projectName: "Trips") { id } }`, nil)
	assert.Equal(t, []string{"Your display name is too short"}, errs)
}

func TestHandler_BearerFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := newTestSchema(t, zap.NewNop())
	adminKey, _ := newProject(t, s)

	r := gin.New()
	h := NewHandler(s)
	r.POST("/graphql", h.Serve)

	body, err := sonic.Marshal(map[string]any{"query": `{ project { ownerName } }`})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminKey)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ownerName":"Alice"`)

	req = httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Key")
}
