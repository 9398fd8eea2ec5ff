package graph

import (
	"context"

	"github.com/suggestbox/suggestbox/internal/modules/model"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/pkg/permission"
	"go.uber.org/zap"
)

type keyCtx struct{}

// WithBearerKey stores the Authorization header key for resolvers whose key
// argument is omitted.
func WithBearerKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, keyCtx{}, key)
}

func bearerKey(ctx context.Context) string {
	k, _ := ctx.Value(keyCtx{}).(string)
	return k
}

// Resolver is the root resolver for Query and Mutation.
type Resolver struct {
	projects    service.ProjectService
	suggestions service.SuggestionService
	tokens      service.TokenService
	log         *zap.Logger
}

func NewResolver(projects service.ProjectService, suggestions service.SuggestionService, tokens service.TokenService, log *zap.Logger) *Resolver {
	return &Resolver{projects: projects, suggestions: suggestions, tokens: tokens, log: log}
}

// deprecated records a call to a legacy root field.
func (r *Resolver) deprecated(field string) {
	r.log.Warn("graphql root field is deprecated", zap.String("field", field))
}

func (r *Resolver) authenticate(ctx context.Context, key *string) (*model.Token, error) {
	k := bearerKey(ctx)
	if key != nil {
		k = *key
	}
	return r.tokens.Authenticate(ctx, k)
}

func (r *Resolver) Project(ctx context.Context, args struct{ Key *string }) (*projectResolver, error) {
	r.deprecated("project")
	t, err := r.authenticate(ctx, args.Key)
	if err != nil {
		return nil, err
	}
	v, err := r.projects.View(ctx, t)
	if err != nil {
		return nil, err
	}
	return &projectResolver{v: v}, nil
}

func (r *Resolver) NewProject(ctx context.Context, args struct {
	OwnerName   string
	ProjectName string
}) (*projectResolver, error) {
	r.deprecated("newProject")
	p, err := r.projects.Create(ctx, args.OwnerName, args.ProjectName)
	if err != nil {
		return nil, err
	}
	// New projects are returned in full, tokens included.
	return &projectResolver{v: &service.ProjectView{Project: p, ShowIdentity: true, ShowSuggestions: true, ShowTokens: true}}, nil
}

func (r *Resolver) AddSuggestion(ctx context.Context, args struct {
	Key            *string
	DisplayName    string
	SuggestionText string
}) (*suggestionResolver, error) {
	r.deprecated("addSuggestion")
	t, err := r.authenticate(ctx, args.Key)
	if err != nil {
		return nil, err
	}
	s, err := r.suggestions.Add(ctx, t, args.DisplayName, args.SuggestionText)
	if err != nil {
		return nil, err
	}
	return &suggestionResolver{s: s}, nil
}

type suggestionArgs struct {
	Key *string
	ID  int32
}

func (r *Resolver) DeleteSuggestion(ctx context.Context, args suggestionArgs) (*suggestionResolver, error) {
	r.deprecated("deleteSuggestion")
	t, err := r.authenticate(ctx, args.Key)
	if err != nil {
		return nil, err
	}
	s, err := r.suggestions.Trash(ctx, t, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &suggestionResolver{s: s}, nil
}

func (r *Resolver) UndeleteSuggestion(ctx context.Context, args suggestionArgs) (*suggestionResolver, error) {
	r.deprecated("undeleteSuggestion")
	t, err := r.authenticate(ctx, args.Key)
	if err != nil {
		return nil, err
	}
	s, err := r.suggestions.Restore(ctx, t, int64(args.ID))
	if err != nil {
		return nil, err
	}
	return &suggestionResolver{s: s}, nil
}

func (r *Resolver) RefreshLastRead(ctx context.Context, args struct{ Key *string }) (*bool, error) {
	r.deprecated("refreshLastRead")
	t, err := r.authenticate(ctx, args.Key)
	if err != nil {
		return nil, err
	}
	if _, err := r.projects.RefreshLastRead(ctx, t); err != nil {
		return nil, err
	}
	ok := true
	return &ok, nil
}

func (r *Resolver) GenToken(ctx context.Context, args struct {
	Key        *string
	Permission string
}) (*tokenResolver, error) {
	r.deprecated("genToken")
	t, err := r.authenticate(ctx, args.Key)
	if err != nil {
		return nil, err
	}
	tok, err := r.tokens.Issue(ctx, t, permission.Permission(args.Permission))
	if err != nil {
		return nil, err
	}
	return &tokenResolver{t: tok}, nil
}
