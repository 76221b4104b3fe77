package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/handler/paginate"
	"github.com/ImRehmankhan/nextcodehub/handler/payload"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
	"github.com/ImRehmankhan/nextcodehub/pkg/middleware"
)

type PostsHandler struct {
	Posts   *repository.Posts
	Session middleware.SessionResolver
}

func NewPostsHandler(posts *repository.Posts, session middleware.SessionResolver) PostsHandler {
	return PostsHandler{
		Posts:   posts,
		Session: session,
	}
}

// Index serves the admin posts listing in its three modes: a single record
// when id is given, a column projection when col is given, and the paginated
// filtered list otherwise.
func (h *PostsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if _, apiErr := middleware.RequireAdmin(r.Context(), h.Session); apiErr != nil {
		return apiErr
	}

	params := paginate.ListParamsFrom(r.URL.Query())
	resp := endpoint.NewNoCacheResponse(w, r)

	if params.HasID() {
		post := h.Posts.FindByID(params.ID)
		if post == nil {
			// An unknown id is answered with a null body, not a 404:
			// the dashboard probes ids and renders the absence itself.
			if err := resp.RespondOk(nil); err != nil {
				return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
			}

			return nil
		}

		if err := resp.RespondOk(payload.MakePostResponse(*post)); err != nil {
			return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
		}

		return nil
	}

	if params.HasColumns() {
		rows, err := h.Posts.Project(params)
		if err != nil {
			return endpoint.LogInternalError("Error getting posts", err)
		}

		if err := resp.RespondOk(rows); err != nil {
			return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
		}

		return nil
	}

	result, counts, err := h.Posts.GetAll(params)
	if err != nil {
		return endpoint.LogInternalError("Error getting posts", err)
	}

	if err := resp.RespondOk(payload.MakePostsIndexResponse(result, counts)); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *PostsHandler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	user, apiErr := middleware.RequireAdmin(r.Context(), h.Session)
	if apiErr != nil {
		return apiErr
	}

	request, err := endpoint.ParseRequestBody[payload.PostRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	if apiErr := validatePostRequest(&request); apiErr != nil {
		return apiErr
	}

	taken, err := h.Posts.SlugTaken(request.Slug, 0)
	if err != nil {
		return endpoint.LogInternalError("Error creating post", err)
	}

	if taken {
		return endpoint.ConflictError("Slug already exists")
	}

	post, err := h.Posts.Create(request.Attrs(user.ID))
	if err != nil {
		return endpoint.LogInternalError("Error creating post", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondCreated(payload.PostEnvelope{
		Message: "Post created successfully",
		Post:    payload.MakePostResponse(*post),
	}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	user, apiErr := middleware.RequireAdmin(r.Context(), h.Session)
	if apiErr != nil {
		return apiErr
	}

	id, apiErr := parseResourceID(r)
	if apiErr != nil {
		return apiErr
	}

	if h.Posts.FindByID(id) == nil {
		return endpoint.NotFound("Post not found")
	}

	request, err := endpoint.ParseRequestBody[payload.PostRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	if apiErr := validatePostRequest(&request); apiErr != nil {
		return apiErr
	}

	taken, err := h.Posts.SlugTaken(request.Slug, id)
	if err != nil {
		return endpoint.LogInternalError("Error updating post", err)
	}

	if taken {
		return endpoint.ConflictError("Slug already exists")
	}

	post, err := h.Posts.Update(id, request.Attrs(user.ID))
	if err != nil {
		return endpoint.LogInternalError("Error updating post", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.PostEnvelope{
		Message: "Post updated successfully",
		Post:    payload.MakePostResponse(*post),
	}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if _, apiErr := middleware.RequireAdmin(r.Context(), h.Session); apiErr != nil {
		return apiErr
	}

	id, apiErr := parseResourceID(r)
	if apiErr != nil {
		return apiErr
	}

	if h.Posts.FindByID(id) == nil {
		return endpoint.NotFound("Post not found")
	}

	comments, err := h.Posts.CommentsCount(id)
	if err != nil {
		return endpoint.LogInternalError("Error deleting post", err)
	}

	if comments > 0 {
		return endpoint.BadRequestError("Post has comments. Please delete them first")
	}

	if err := h.Posts.Delete(id); err != nil {
		return endpoint.LogInternalError("Error deleting post", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.MessageResponse{Message: "Post deleted successfully"}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func validatePostRequest(request *payload.PostRequest) *endpoint.ApiError {
	request.Title = strings.TrimSpace(request.Title)
	request.Slug = strings.TrimSpace(request.Slug)
	request.Content = strings.TrimSpace(request.Content)

	if request.Title == "" {
		return endpoint.BadRequestError("Title is required")
	}

	if request.Slug == "" {
		return endpoint.BadRequestError("Slug is required")
	}

	if request.Content == "" {
		return endpoint.BadRequestError("Content is required")
	}

	return nil
}

func parseResourceID(r *http.Request) (uint64, *endpoint.ApiError) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, endpoint.BadRequestError("Invalid id")
	}

	return id, nil
}
