package database

type UserAttrs struct {
	Email    string
	Password string
	Name     string
	Role     string
	Avatar   string
	Bio      string
}

type PostAttrs struct {
	AuthorID      uint64
	Title         string
	Slug          string
	Content       string
	Excerpt       string
	FeaturedImage string
	ReadTime      string
	MetaTitle     string
	MetaDesc      string
	OgImage       string
	CanonicalURL  string
	Published     *bool
	CategoryIDs   []uint64
	TagIDs        []uint64
}

type CategoryAttrs struct {
	Name string
	Slug string
}

type TagAttrs struct {
	Name string
	Slug string
}

type CommentAttrs struct {
	PostID   uint64
	AuthorID uint64
	Content  string
}
