package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suggestbox/suggestbox/internal/modules/serializer"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/pkg/permission"
)

type TokenHandler struct {
	svc service.TokenService
}

func NewTokenHandler(s service.TokenService) *TokenHandler {
	return &TokenHandler{svc: s}
}

type IssueTokenReq struct {
	Permission string `json:"permission" binding:"required,oneof=ADMIN VIEW_SUGGESTIONS ADD_SUGGESTIONS" example:"VIEW_SUGGESTIONS"`
}

// IssueToken godoc
//
//	@Summary		Issue token
//	@Description	Create a new token for the project with the given permission. Requires ADMIN.
//	@Tags			token
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer					true	"Project ID"
//	@Param			payload	body	handler.IssueTokenReq	true	"IssueToken payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Token}
//	@Failure		400	{object}	serializer.Response
//	@Failure		403	{object}	serializer.Response
//	@Router			/projects/{id}/tokens [post]
func (h *TokenHandler) IssueToken(c *gin.Context) {
	t, ok := callerToken(c)
	if !ok {
		return
	}

	req := IssueTokenReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	tok, err := h.svc.Issue(c.Request.Context(), t, permission.Permission(req.Permission))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: tok})
}

// GetToken godoc
//
//	@Summary		Get token
//	@Description	Look up a token by its key. Knowing the key is the only authorization.
//	@Tags			token
//	@Produce		json
//	@Param			key	path	string	true	"Token key"
//	@Success		200	{object}	serializer.Response{data=model.Token}
//	@Failure		404	{object}	serializer.Response
//	@Router			/tokens/{key} [get]
func (h *TokenHandler) GetToken(c *gin.Context) {
	tok, err := h.svc.Authenticate(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: tok})
}
