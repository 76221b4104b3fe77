package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/database/repository/pagination"
	"github.com/ImRehmankhan/nextcodehub/handler/paginate"
	"github.com/ImRehmankhan/nextcodehub/handler/payload"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
)

// BlogHandler serves the public reading surface: published posts only.
type BlogHandler struct {
	Posts *repository.Posts
}

func NewBlogHandler(posts *repository.Posts) BlogHandler {
	return BlogHandler{
		Posts: posts,
	}
}

func (h *BlogHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	result, err := h.Posts.GetPublished(
		paginate.MakeFrom(r.URL.Query()),
	)

	if err != nil {
		return endpoint.LogInternalError("Error getting posts", err)
	}

	items := pagination.HydratePagination(
		result,
		func(post database.Post) payload.PostResponse {
			return payload.MakePostResponse(post)
		},
	)

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(items); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *BlogHandler) Show(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	slug := r.PathValue("slug")

	post := h.Posts.FindPublishedBySlug(slug)
	if post == nil {
		return endpoint.NotFound("Post not found")
	}

	// The view counter is best effort: a failed bump never breaks the page.
	if err := h.Posts.IncrementViews(post.ID); err != nil {
		slog.Error("failed to increment post views", "slug", slug, "err", err)
	} else {
		post.Views++
	}

	resp := endpoint.NewResponseFrom(
		fmt.Sprintf("%s-%d", post.UUID, post.UpdatedAt.Unix()),
		w,
		r,
	)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(payload.MakePostResponse(*post)); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}
