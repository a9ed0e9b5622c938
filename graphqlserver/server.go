package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"menu.GO/graphql"
	gqlmodels "menu.GO/graphql/models"
	"menu.GO/graphql/registry"
	"menu.GO/merch"
)

// RootResolver is the root for graphql-go, serving the read-only merch surface.
type RootResolver struct {
	Merch *merch.Service
}

// Query returns the query resolver.
func (r *RootResolver) Query() *QueryResolver {
	return &QueryResolver{merch: r.Merch}
}

// QueryResolver implements Query fields over the merch lookup service.
type QueryResolver struct {
	merch *merch.Service
}

func (r *QueryResolver) MerchItems(ctx context.Context) ([]gqlmodels.MerchItem, error) {
	items, err := r.merch.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return gqlmodels.FromItems(items), nil
}

// MerchVariationArgs matches the merchVariation query arguments.
type MerchVariationArgs struct {
	ID string
}

func (r *QueryResolver) MerchVariation(ctx context.Context, args MerchVariationArgs) (*gqlmodels.FlatMerch, error) {
	info, err := r.merch.FindVariation(ctx, args.ID)
	if err == merch.ErrVariationNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return gqlmodels.FromFlatInfo(info), nil
}

// ExtensionArgs for extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *QueryResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(svc *merch.Service) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Merch: svc}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
