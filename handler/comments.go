package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/handler/payload"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
	"github.com/ImRehmankhan/nextcodehub/pkg/middleware"
)

type CommentsHandler struct {
	Comments *repository.Comments
	Posts    *repository.Posts
	Users    *repository.Users
	Session  middleware.SessionResolver
}

func NewCommentsHandler(comments *repository.Comments, posts *repository.Posts, users *repository.Users, session middleware.SessionResolver) CommentsHandler {
	return CommentsHandler{
		Comments: comments,
		Posts:    posts,
		Users:    users,
		Session:  session,
	}
}

// Index lists the published comments of a post, newest first. Public.
func (h *CommentsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	postID, err := strconv.ParseUint(r.URL.Query().Get("postId"), 10, 64)
	if err != nil || postID == 0 {
		return endpoint.BadRequestError("Post id is required")
	}

	comments, err := h.Comments.GetForPost(postID)
	if err != nil {
		return endpoint.LogInternalError("Error getting comments", err)
	}

	items := make([]payload.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		items = append(items, payload.MakeCommentResponse(comment))
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(items); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

// Store adds a comment to a post. The author is the session user, never a
// body field.
func (h *CommentsHandler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	session, apiErr := middleware.RequireSession(r.Context(), h.Session)
	if apiErr != nil {
		return apiErr
	}

	request, err := endpoint.ParseRequestBody[payload.CommentRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	request.Content = strings.TrimSpace(request.Content)
	if request.Content == "" {
		return endpoint.BadRequestError("Comment content is required")
	}

	user := h.Users.FindByID(session.ID)
	if user == nil {
		return endpoint.NotFound("User not found")
	}

	if h.Posts.FindByID(request.PostID) == nil {
		return endpoint.NotFound("Post not found")
	}

	comment, err := h.Comments.Create(database.CommentAttrs{
		PostID:   request.PostID,
		AuthorID: user.ID,
		Content:  request.Content,
	})
	if err != nil {
		return endpoint.LogInternalError("Error creating comment", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondCreated(payload.CommentEnvelope{
		Message: "Comment added successfully",
		Comment: payload.MakeCommentResponse(*comment),
	}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}
