package handler

import (
	"net/http"

	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/handler/payload"
	"github.com/ImRehmankhan/nextcodehub/pkg/auth"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
	"github.com/ImRehmankhan/nextcodehub/pkg/portal"
)

type AuthHandler struct {
	Users    *repository.Users
	Sessions auth.SessionHandler
}

func NewAuthHandler(users *repository.Users, sessions auth.SessionHandler) AuthHandler {
	return AuthHandler{
		Users:    users,
		Sessions: sessions,
	}
}

// Login checks the given credentials and issues a session token. Unknown
// email and wrong password return the same generic message so the response
// never reveals which one failed.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	request, err := endpoint.ParseRequestBody[payload.LoginRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	if request.Email == "" || request.Password == "" {
		return endpoint.BadRequestError("Email and password are required")
	}

	user := h.Users.FindByEmail(request.Email)
	if user == nil {
		return endpoint.UnauthenticatedError("Invalid email or password")
	}

	if !portal.NewPasswordFromHash(user.PasswordHash).Is(request.Password) {
		return endpoint.UnauthenticatedError("Invalid email or password")
	}

	token, err := h.Sessions.Generate(auth.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		return endpoint.LogInternalError("There was an issue signing you in. Please, try later.", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    payload.MakeUserResponse(*user),
	}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}
