package payload

type LikeRequest struct {
	PostID uint64 `json:"postId"`
	Action string `json:"action"`
}

type LikeResponse struct {
	Likes   int64  `json:"likes"`
	Message string `json:"message"`
}
