package graph

import (
	"github.com/suggestbox/suggestbox/internal/modules/model"
	"github.com/suggestbox/suggestbox/internal/modules/service"
)

// GraphQL Int is 32-bit; ids and unix-second timestamps fit until 2038.

type projectResolver struct {
	v *service.ProjectView
}

func (r *projectResolver) ID() *int32 {
	if !r.v.ShowIdentity {
		return nil
	}
	id := int32(r.v.Project.ID)
	return &id
}

func (r *projectResolver) OwnerName() *string {
	if !r.v.ShowIdentity {
		return nil
	}
	return &r.v.Project.OwnerName
}

func (r *projectResolver) ProjectName() *string {
	if !r.v.ShowIdentity {
		return nil
	}
	return &r.v.Project.ProjectName
}

func (r *projectResolver) LastReadTimestamp() *int32 {
	if !r.v.ShowSuggestions {
		return nil
	}
	ts := int32(r.v.Project.LastReadTimestamp)
	return &ts
}

func (r *projectResolver) Suggestions() *[]*suggestionResolver {
	if !r.v.ShowSuggestions {
		return nil
	}
	out := make([]*suggestionResolver, len(r.v.Project.Suggestions))
	for i := range r.v.Project.Suggestions {
		out[i] = &suggestionResolver{s: &r.v.Project.Suggestions[i]}
	}
	return &out
}

func (r *projectResolver) Tokens() *[]*tokenResolver {
	if !r.v.ShowTokens {
		return nil
	}
	out := make([]*tokenResolver, len(r.v.Project.Tokens))
	for i := range r.v.Project.Tokens {
		out[i] = &tokenResolver{t: &r.v.Project.Tokens[i]}
	}
	return &out
}

type suggestionResolver struct {
	s *model.Suggestion
}

func (r *suggestionResolver) ID() int32              { return int32(r.s.ID) }
func (r *suggestionResolver) ProjectID() int32       { return int32(r.s.ProjectID) }
func (r *suggestionResolver) DisplayName() string    { return r.s.DisplayName }
func (r *suggestionResolver) SuggestionText() string { return r.s.SuggestionText }
func (r *suggestionResolver) Timestamp() int32       { return int32(r.s.Timestamp) }
func (r *suggestionResolver) InTrash() bool          { return r.s.InTrash }

func (r *suggestionResolver) TrashedTimestamp() *int32 {
	if r.s.TrashedTimestamp == nil {
		return nil
	}
	ts := int32(*r.s.TrashedTimestamp)
	return &ts
}

type tokenResolver struct {
	t *model.Token
}

func (r *tokenResolver) ID() int32          { return int32(r.t.ID) }
func (r *tokenResolver) ProjectID() int32   { return int32(r.t.ProjectID) }
func (r *tokenResolver) Key() string        { return r.t.Key }
func (r *tokenResolver) Permission() string { return r.t.Permission.String() }
