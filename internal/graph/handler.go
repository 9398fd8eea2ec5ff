package graph

import (
	"net/http"

	"github.com/gin-gonic/gin"
	graphql "github.com/graph-gophers/graphql-go"
	"github.com/suggestbox/suggestbox/internal/middleware"
	"github.com/suggestbox/suggestbox/internal/modules/serializer"
)

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

type Handler struct {
	schema *graphql.Schema
}

func NewHandler(schema *graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

// Serve executes a GraphQL request from a JSON POST body. Errors are returned
// in the GraphQL response with status 200.
func (h *Handler) Serve(c *gin.Context) {
	req := request{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	ctx := WithBearerKey(c.Request.Context(), middleware.BearerKey(c.GetHeader("Authorization")))
	resp := h.schema.Exec(ctx, req.Query, req.OperationName, req.Variables)
	c.JSON(http.StatusOK, resp)
}
