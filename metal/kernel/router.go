package kernel

import (
	baseHttp "net/http"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/handler"
	"github.com/ImRehmankhan/nextcodehub/metal/env"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
	"github.com/ImRehmankhan/nextcodehub/pkg/middleware"
)

type Router struct {
	Env      *env.Environment
	Mux      *baseHttp.ServeMux
	Pipeline middleware.Pipeline
	Db       *database.Connection
}

// PublicPipelineFor exposes an endpoint without any session handling.
func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(apiHandler),
	)
}

// SessionPipelineFor runs the session middleware before the endpoint, so the
// handler can resolve the caller from the request context. Authorisation
// stays in the handlers: admin-only routes run their role check there.
func (r *Router) SessionPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	sessionMiddleware := middleware.SessionMiddleware{
		Handler: r.Pipeline.Sessions,
	}

	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			sessionMiddleware.Handle,
		),
	)
}

func (r *Router) Auth() {
	repo := repository.Users{DB: r.Db}
	abstract := handler.NewAuthHandler(&repo, r.Pipeline.Sessions)

	login := r.PublicPipelineFor(abstract.Login)

	r.Mux.HandleFunc("POST /auth/login", login)
}

func (r *Router) Posts() {
	repo := repository.Posts{DB: r.Db}
	abstract := handler.NewPostsHandler(&repo, middleware.ResolveSession)

	index := r.SessionPipelineFor(abstract.Index)
	store := r.SessionPipelineFor(abstract.Store)
	update := r.SessionPipelineFor(abstract.Update)
	remove := r.SessionPipelineFor(abstract.Delete)

	r.Mux.HandleFunc("GET /admin/posts", index)
	r.Mux.HandleFunc("POST /admin/posts", store)
	r.Mux.HandleFunc("PUT /admin/posts/{id}", update)
	r.Mux.HandleFunc("DELETE /admin/posts/{id}", remove)
}

func (r *Router) Categories() {
	repo := repository.Categories{DB: r.Db}
	abstract := handler.NewCategoriesHandler(&repo, middleware.ResolveSession)

	index := r.SessionPipelineFor(abstract.Index)
	store := r.SessionPipelineFor(abstract.Store)
	update := r.SessionPipelineFor(abstract.Update)
	remove := r.SessionPipelineFor(abstract.Delete)

	r.Mux.HandleFunc("GET /admin/categories", index)
	r.Mux.HandleFunc("POST /admin/categories", store)
	r.Mux.HandleFunc("PUT /admin/categories/{id}", update)
	r.Mux.HandleFunc("DELETE /admin/categories/{id}", remove)
}

func (r *Router) Tags() {
	repo := repository.Tags{DB: r.Db}
	abstract := handler.NewTagsHandler(&repo, middleware.ResolveSession)

	index := r.SessionPipelineFor(abstract.Index)
	store := r.SessionPipelineFor(abstract.Store)
	update := r.SessionPipelineFor(abstract.Update)
	remove := r.SessionPipelineFor(abstract.Delete)

	r.Mux.HandleFunc("GET /admin/tags", index)
	r.Mux.HandleFunc("POST /admin/tags", store)
	r.Mux.HandleFunc("PUT /admin/tags/{id}", update)
	r.Mux.HandleFunc("DELETE /admin/tags/{id}", remove)
}

func (r *Router) Comments() {
	comments := repository.Comments{DB: r.Db}
	posts := repository.Posts{DB: r.Db}
	users := repository.Users{DB: r.Db}

	abstract := handler.NewCommentsHandler(&comments, &posts, &users, middleware.ResolveSession)

	index := r.PublicPipelineFor(abstract.Index)
	store := r.SessionPipelineFor(abstract.Store)

	r.Mux.HandleFunc("GET /comments", index)
	r.Mux.HandleFunc("POST /comments", store)
}

func (r *Router) Likes() {
	posts := repository.Posts{DB: r.Db}
	users := repository.Users{DB: r.Db}

	abstract := handler.NewLikesHandler(&posts, &users, middleware.ResolveSession)

	store := r.SessionPipelineFor(abstract.Store)

	r.Mux.HandleFunc("POST /likes", store)
}

func (r *Router) Blog() {
	repo := repository.Posts{DB: r.Db}
	abstract := handler.NewBlogHandler(&repo)

	index := r.PublicPipelineFor(abstract.Index)
	show := r.PublicPipelineFor(abstract.Show)

	r.Mux.HandleFunc("GET /posts", index)
	r.Mux.HandleFunc("GET /posts/{slug}", show)
}
