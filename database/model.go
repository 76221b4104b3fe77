package database

import (
	"time"
)

const DriverName = "postgres"

const RoleAdmin = "ADMIN"
const RoleUser = "USER"

type User struct {
	ID           uint64 `gorm:"primaryKey"`
	UUID         string `gorm:"size:36;uniqueIndex;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Name         string `gorm:"size:255;not null"`
	Role         string `gorm:"size:32;not null;default:USER"`
	Avatar       string `gorm:"size:512"`
	Bio          string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Posts    []Post    `gorm:"foreignKey:AuthorID"`
	Comments []Comment `gorm:"foreignKey:AuthorID"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Post struct {
	ID            uint64 `gorm:"primaryKey"`
	UUID          string `gorm:"size:36;uniqueIndex;not null"`
	AuthorID      uint64 `gorm:"index;not null"`
	Title         string `gorm:"size:255;not null"`
	Slug          string `gorm:"size:255;uniqueIndex;not null"`
	Content       string `gorm:"type:text;not null"`
	Excerpt       string `gorm:"type:text"`
	FeaturedImage string `gorm:"size:512"`
	ReadTime      string `gorm:"size:64"`
	MetaTitle     string `gorm:"size:255"`
	MetaDesc      string `gorm:"size:512"`
	OgImage       string `gorm:"size:512"`
	CanonicalURL  string `gorm:"size:512"`
	Published     bool   `gorm:"not null;default:false"`
	Views         uint64 `gorm:"not null;default:0"`
	Likes         int64  `gorm:"not null;default:0"`
	Shares        uint64 `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Author     User       `gorm:"foreignKey:AuthorID"`
	Categories []Category `gorm:"many2many:post_categories"`
	Tags       []Tag      `gorm:"many2many:post_tags"`
	Comments   []Comment  `gorm:"foreignKey:PostID"`
}

type Category struct {
	ID        uint64 `gorm:"primaryKey"`
	UUID      string `gorm:"size:36;uniqueIndex;not null"`
	Name      string `gorm:"size:255;uniqueIndex;not null"`
	Slug      string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Posts []Post `gorm:"many2many:post_categories"`
}

type Tag struct {
	ID        uint64 `gorm:"primaryKey"`
	UUID      string `gorm:"size:36;uniqueIndex;not null"`
	Name      string `gorm:"size:255;uniqueIndex;not null"`
	Slug      string `gorm:"size:255;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Posts []Post `gorm:"many2many:post_tags"`
}

// PostCategory and PostTag are the explicit join rows behind the
// many2many relations above. Association replacement on post updates
// manipulates these rows directly.
type PostCategory struct {
	PostID     uint64 `gorm:"primaryKey"`
	CategoryID uint64 `gorm:"primaryKey"`
}

type PostTag struct {
	PostID uint64 `gorm:"primaryKey"`
	TagID  uint64 `gorm:"primaryKey"`
}

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	UUID      string `gorm:"size:36;uniqueIndex;not null"`
	PostID    uint64 `gorm:"index;not null"`
	AuthorID  uint64 `gorm:"index;not null"`
	Content   string `gorm:"type:text;not null"`
	Published bool   `gorm:"not null;default:true"`
	CreatedAt time.Time

	Author User `gorm:"foreignKey:AuthorID"`
}
