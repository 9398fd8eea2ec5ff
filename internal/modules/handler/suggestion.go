package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/suggestbox/suggestbox/internal/modules/serializer"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/pkg/patch"
)

type SuggestionHandler struct {
	svc service.SuggestionService
}

func NewSuggestionHandler(s service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{svc: s}
}

type AddSuggestionReq struct {
	DisplayName    string `json:"displayName" example:"Anonymous"`
	SuggestionText string `json:"suggestionText" example:"More coffee in the kitchen"`
}

// AddSuggestion godoc
//
//	@Summary		Add suggestion
//	@Description	Add a suggestion to the project. Requires ADD_SUGGESTIONS.
//	@Tags			suggestion
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer						true	"Project ID"
//	@Param			payload	body	handler.AddSuggestionReq	true	"AddSuggestion payload"
//	@Security		BearerAuth
//	@Success		201	{object}	serializer.Response{data=model.Suggestion}
//	@Failure		400	{object}	serializer.Response
//	@Failure		403	{object}	serializer.Response
//	@Router			/projects/{id}/suggestions [post]
func (h *SuggestionHandler) AddSuggestion(c *gin.Context) {
	t, ok := callerToken(c)
	if !ok {
		return
	}

	req := AddSuggestionReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	s, err := h.svc.Add(c.Request.Context(), t, req.DisplayName, req.SuggestionText)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: s})
}

// PatchSuggestion godoc
//
//	@Summary		Patch suggestion
//	@Description	Move a suggestion into (inTrash=true) or out of (inTrash=false) the trash. Requires VIEW_SUGGESTIONS. Trashed suggestions are deleted after five days.
//	@Tags			suggestion
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer					true	"Project ID"
//	@Param			sid		path	integer					true	"Suggestion ID"
//	@Param			payload	body	map[string]interface{}	true	"Fields to change"
//	@Security		BearerAuth
//	@Success		200	{object}	serializer.Response{data=model.Suggestion}
//	@Failure		403	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{id}/suggestions/{sid} [patch]
func (h *SuggestionHandler) PatchSuggestion(c *gin.Context) {
	t, ok := callerToken(c)
	if !ok {
		return
	}

	sid, err := strconv.ParseInt(c.Param("sid"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("Invalid Suggestion ID", err))
		return
	}

	changes, err := patch.DecodeChanges(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	s, err := h.svc.Patch(c.Request.Context(), t, sid, changes)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: s})
}
