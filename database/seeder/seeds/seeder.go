package seeds

import (
	"fmt"
	"strings"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/metal/env"
)

// Seeder fills a non-production database with a small but realistic
// blog fixture set: an admin author, a reader, a handful of categories
// and tags, linked posts, comments, and some view/like activity.
type Seeder struct {
	dbConn     *database.Connection
	env        *env.Environment
	users      repository.Users
	posts      repository.Posts
	categories repository.Categories
	tags       repository.Tags
	comments   repository.Comments
}

func MakeSeeder(dbConn *database.Connection, e *env.Environment) *Seeder {
	return &Seeder{
		dbConn:     dbConn,
		env:        e,
		users:      repository.Users{DB: dbConn},
		posts:      repository.Posts{DB: dbConn},
		categories: repository.Categories{DB: dbConn},
		tags:       repository.Tags{DB: dbConn},
		comments:   repository.Comments{DB: dbConn},
	}
}

func (s *Seeder) TruncateDB() error {
	return database.NewTruncate(s.dbConn, s.env).Execute()
}

// SeedUsers creates the admin author and a regular reader. Both share
// the well-known local password so the dashboard is usable right away.
func (s *Seeder) SeedUsers() (database.User, database.User) {
	admin, err := s.users.Create(database.UserAttrs{
		Email:    "admin@nextcodehub.local",
		Password: "password",
		Name:     "Rehman Khan",
		Role:     database.RoleAdmin,
		Bio:      "Writes about Go, databases and everything in between.",
	})
	if err != nil {
		panic(fmt.Sprintf("seeds: create admin: %v", err))
	}

	reader, err := s.users.Create(database.UserAttrs{
		Email:    "reader@nextcodehub.local",
		Password: "password",
		Name:     "Casual Reader",
	})
	if err != nil {
		panic(fmt.Sprintf("seeds: create reader: %v", err))
	}

	return *admin, *reader
}

func (s *Seeder) SeedCategories() []database.Category {
	names := []string{
		"Engineering", "Databases", "Cloud", "DevOps", "Career",
	}

	var categories []database.Category
	for _, name := range names {
		category, err := s.categories.Create(database.CategoryAttrs{
			Name: name,
			Slug: strings.ToLower(name),
		})
		if err != nil {
			panic(fmt.Sprintf("seeds: create category %q: %v", name, err))
		}

		categories = append(categories, *category)
	}

	return categories
}

func (s *Seeder) SeedTags() []database.Tag {
	names := []string{
		"Go", "PostgreSQL", "Testing", "Performance", "Tooling", "Concurrency",
	}

	var tags []database.Tag
	for _, name := range names {
		tag, err := s.tags.Create(database.TagAttrs{
			Name: name,
			Slug: strings.ToLower(name),
		})
		if err != nil {
			panic(fmt.Sprintf("seeds: create tag %q: %v", name, err))
		}

		tags = append(tags, *tag)
	}

	return tags
}

// SeedPosts creates three published posts and one draft, all authored
// by the given user and linked to a rotating pick of categories/tags.
func (s *Seeder) SeedPosts(author database.User, categories []database.Category, tags []database.Tag) []database.Post {
	published := true
	draft := false

	fixtures := []database.PostAttrs{
		{
			Title:     "Taming Goroutine Leaks",
			Slug:      "taming-goroutine-leaks",
			Content:   "Every long-running service eventually grows a goroutine leak. This post walks through the usual suspects and how to find them with pprof.",
			Excerpt:   "Finding and fixing goroutine leaks in production services.",
			ReadTime:  "7 min",
			Published: &published,
		},
		{
			Title:     "Indexes Are Not Free",
			Slug:      "indexes-are-not-free",
			Content:   "Adding an index speeds up reads and slows down writes. Here is how to measure whether a given index pays for itself.",
			Excerpt:   "Measuring the real cost of PostgreSQL indexes.",
			ReadTime:  "5 min",
			Published: &published,
		},
		{
			Title:     "Table-Driven Tests, Revisited",
			Slug:      "table-driven-tests-revisited",
			Content:   "Table-driven tests are the default in Go, but a table is not always the right shape. Some cases read better as plain functions.",
			Excerpt:   "When a test table helps and when it hurts.",
			ReadTime:  "6 min",
			Published: &published,
		},
		{
			Title:     "Draft: Scheduling Backups with cron",
			Slug:      "scheduling-backups-with-cron",
			Content:   "Work in progress notes on running pg_dump on a schedule without overlapping runs.",
			Published: &draft,
		},
	}

	var posts []database.Post
	for i, attrs := range fixtures {
		attrs.AuthorID = author.ID

		if len(categories) > 0 {
			attrs.CategoryIDs = []uint64{categories[i%len(categories)].ID}
		}

		if len(tags) > 0 {
			attrs.TagIDs = []uint64{
				tags[i%len(tags)].ID,
				tags[(i+1)%len(tags)].ID,
			}
		}

		post, err := s.posts.Create(attrs)
		if err != nil {
			panic(fmt.Sprintf("seeds: create post %q: %v", attrs.Slug, err))
		}

		posts = append(posts, *post)
	}

	return posts
}

func (s *Seeder) SeedComments(reader database.User, posts ...database.Post) []database.Comment {
	remarks := []string{
		"Great write-up, this saved me an afternoon of debugging.",
		"Would love a follow-up on the tooling side of this.",
		"We hit exactly this in production last month.",
	}

	var comments []database.Comment
	for i, post := range posts {
		if !post.Published {
			continue
		}

		comment, err := s.comments.Create(database.CommentAttrs{
			PostID:   post.ID,
			AuthorID: reader.ID,
			Content:  remarks[i%len(remarks)],
		})
		if err != nil {
			panic(fmt.Sprintf("seeds: create comment on %q: %v", post.Slug, err))
		}

		comments = append(comments, *comment)
	}

	return comments
}

// SeedEngagement records a few views and likes against the published
// posts so the dashboard counters have something to show.
func (s *Seeder) SeedEngagement(posts ...database.Post) {
	for i, post := range posts {
		if !post.Published {
			continue
		}

		for v := 0; v <= i; v++ {
			if err := s.posts.IncrementViews(post.ID); err != nil {
				panic(fmt.Sprintf("seeds: record view on %q: %v", post.Slug, err))
			}
		}

		if _, err := s.posts.ApplyLike(post.ID, repository.LikeAction); err != nil {
			panic(fmt.Sprintf("seeds: record like on %q: %v", post.Slug, err))
		}
	}
}
