package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suggestbox/suggestbox/internal/modules/serializer"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/pkg/patch"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type CreateProjectReq struct {
	OwnerName   string `json:"ownerName" example:"Alice"`
	ProjectName string `json:"projectName" example:"Trips"`
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Description	Create a project and its two default tokens (ADMIN and ADD_SUGGESTIONS). No authentication is required.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		handler.CreateProjectReq	true	"CreateProject payload"
//	@Success		201		{object}	serializer.Response{data=model.Project}
//	@Failure		400		{object}	serializer.Response
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.OwnerName, req.ProjectName)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: p})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Description	Get the project of the bearer token. Fields are filtered by the token's permission: identity needs ADD_SUGGESTIONS, lastReadTimestamp and suggestions need VIEW_SUGGESTIONS, tokens need ADMIN.
//	@Tags			project
//	@Produce		json
//	@Param			id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		403	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	t, ok := callerToken(c)
	if !ok {
		return
	}

	v, err := h.svc.View(c.Request.Context(), t)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: v})
}

// PatchProject godoc
//
//	@Summary		Patch project
//	@Description	Update projectName and ownerName (ADMIN) or lastReadTimestamp (VIEW_SUGGESTIONS). Fields are applied in request order; the first field the token may not modify stops the request and earlier fields stay modified. Unknown fields are ignored.
//	@Tags			project
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer					true	"Project ID"
//	@Param			payload	body	map[string]interface{}	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		400	{object}	serializer.Response
//	@Failure		403	{object}	serializer.Response
//	@Router			/projects/{id} [patch]
func (h *ProjectHandler) PatchProject(c *gin.Context) {
	t, ok := callerToken(c)
	if !ok {
		return
	}

	changes, err := patch.DecodeChanges(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	v, err := h.svc.Patch(c.Request.Context(), t, changes)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: v})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete the project with all of its tokens and suggestions. Requires ADMIN.
//	@Tags			project
//	@Produce		json
//	@Param			id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response
//	@Failure		403	{object}	serializer.Response
//	@Router			/projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	t, ok := callerToken(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), t); err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"success": true}})
}

type RefreshLastReadResp struct {
	LastReadTimestamp int64 `json:"lastReadTimestamp"`
}

// RefreshLastRead godoc
//
//	@Summary		Mark suggestions as read
//	@Description	Set the project's lastReadTimestamp to now. Requires VIEW_SUGGESTIONS.
//	@Tags			project
//	@Produce		json
//	@Param			id	path	integer	true	"Project ID"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=handler.RefreshLastReadResp}
//	@Failure		403	{object}	serializer.Response
//	@Router			/projects/{id}/read [post]
func (h *ProjectHandler) RefreshLastRead(c *gin.Context) {
	t, ok := callerToken(c)
	if !ok {
		return
	}

	ts, err := h.svc.RefreshLastRead(c.Request.Context(), t)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: RefreshLastReadResp{LastReadTimestamp: ts}})
}
