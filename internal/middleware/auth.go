package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/suggestbox/suggestbox/internal/modules/model"
	"github.com/suggestbox/suggestbox/internal/modules/serializer"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/pkg/permission"
)

// TokenKey is the gin context key holding the authenticated *model.Token.
const TokenKey = "token"

// BearerKey extracts the token key from an Authorization header value.
func BearerKey(header string) string {
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// TokenAuth authenticates the bearer key and stores the token in the context.
// Unknown or missing keys are rejected with 404 Invalid Key.
func TokenAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := otel.Tracer("middleware").Start(c.Request.Context(), "token_auth",
			trace.WithAttributes(attribute.String("middleware", "token_auth")))

		t, err := tokens.Authenticate(ctx, BearerKey(c.GetHeader("Authorization")))
		if err != nil {
			span.SetAttributes(attribute.Bool("authenticated", false))
			span.End()
			if errors.Is(err, service.ErrInvalidKey) {
				c.AbortWithStatusJSON(http.StatusNotFound, serializer.NotFoundErr(err.Error()))
				return
			}
			span.RecordError(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, serializer.DBErr("", err))
			return
		}

		projectID := strconv.FormatInt(t.ProjectID, 10)
		if root := trace.SpanFromContext(c.Request.Context()); root.SpanContext().IsValid() {
			root.SetAttributes(attribute.String("project_id", projectID))
		}
		span.SetAttributes(
			attribute.String("project_id", projectID),
			attribute.String("permission", t.Permission.String()),
			attribute.Bool("authenticated", true),
		)
		span.End()

		c.Set(TokenKey, t)
		c.Next()
	}
}

// ProjectScope rejects requests whose path project differs from the token's project.
func ProjectScope(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := c.MustGet(TokenKey).(*model.Token)
		id, err := strconv.ParseInt(c.Param(param), 10, 64)
		if err != nil || id != t.ProjectID {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("Invalid Key"))
			return
		}
		c.Next()
	}
}

// RequireCapability rejects tokens that do not hold perm.
func RequireCapability(perm permission.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		t := c.MustGet(TokenKey).(*model.Token)
		if !permission.Has(t.Permission, perm) {
			c.AbortWithStatusJSON(http.StatusForbidden, serializer.ForbiddenErr("Key doesn't have permission to do that"))
			return
		}
		c.Next()
	}
}
