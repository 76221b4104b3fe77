package payload

import (
	"github.com/ImRehmankhan/nextcodehub/database"
)

type UserResponse struct {
	ID     uint64 `json:"id"`
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

// CommentAuthor is the reduced author view embedded in comment responses.
type CommentAuthor struct {
	ID     uint64 `json:"id"`
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}

func MakeUserResponse(user database.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		UUID:   user.UUID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Avatar: user.Avatar,
		Bio:    user.Bio,
	}
}

func MakeCommentAuthor(user database.User) CommentAuthor {
	return CommentAuthor{
		ID:     user.ID,
		UUID:   user.UUID,
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
	}
}
