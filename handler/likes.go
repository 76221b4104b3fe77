package handler

import (
	"net/http"

	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/handler/payload"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
	"github.com/ImRehmankhan/nextcodehub/pkg/middleware"
)

type LikesHandler struct {
	Posts   *repository.Posts
	Users   *repository.Users
	Session middleware.SessionResolver
}

func NewLikesHandler(posts *repository.Posts, users *repository.Users, session middleware.SessionResolver) LikesHandler {
	return LikesHandler{
		Posts:   posts,
		Users:   users,
		Session: session,
	}
}

// Store moves a post's likes counter one step in either direction for an
// identified caller and reports the resulting value. Repeated calls from the
// same caller keep counting.
func (h *LikesHandler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	session, apiErr := middleware.RequireSession(r.Context(), h.Session)
	if apiErr != nil {
		return apiErr
	}

	request, err := endpoint.ParseRequestBody[payload.LikeRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	if request.Action == "" {
		request.Action = repository.LikeAction
	}

	if request.Action != repository.LikeAction && request.Action != repository.DislikeAction {
		return endpoint.BadRequestError("Invalid action")
	}

	if h.Users.FindByID(session.ID) == nil {
		return endpoint.NotFound("User not found")
	}

	if request.PostID == 0 || h.Posts.FindByID(request.PostID) == nil {
		return endpoint.NotFound("Post not found")
	}

	likes, err := h.Posts.ApplyLike(request.PostID, request.Action)
	if err != nil {
		return endpoint.LogInternalError("Error updating likes", err)
	}

	message := "Post liked successfully"
	if request.Action == repository.DislikeAction {
		message = "Post disliked successfully"
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.LikeResponse{
		Likes:   likes,
		Message: message,
	}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}
