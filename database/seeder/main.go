package main

import (
	"sync"

	_ "github.com/lib/pq"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/seeder/seeds"
	"github.com/ImRehmankhan/nextcodehub/metal/env"
	"github.com/ImRehmankhan/nextcodehub/metal/kernel"
	"github.com/ImRehmankhan/nextcodehub/pkg/cli"
	"github.com/ImRehmankhan/nextcodehub/pkg/portal"
)

var environment *env.Environment

func init() {
	secrets, err := kernel.Ignite("./.env", portal.GetDefaultValidator())
	if err != nil {
		panic(err)
	}

	environment = secrets
}

func main() {
	dbConnection := kernel.MakeDbConnection(environment)
	logs := kernel.MakeLogs(environment)

	defer logs.Close()
	defer dbConnection.Close()

	seeder := seeds.MakeSeeder(dbConnection, environment)

	if err := seeder.TruncateDB(); err != nil {
		panic(err)
	}

	cli.Successln("db truncated ...")

	// Users come first: everything below hangs off the admin author
	// or the reader.
	admin, reader := seeder.SeedUsers()
	cli.Successln("users seeded ...")

	categoriesChan := make(chan []database.Category)
	tagsChan := make(chan []database.Tag)

	go func() {
		defer close(categoriesChan)

		cli.Warningln("seeding categories ...")
		categoriesChan <- seeder.SeedCategories()
	}()

	go func() {
		defer close(tagsChan)

		cli.Magentaln("seeding tags ...")
		tagsChan <- seeder.SeedTags()
	}()

	categories := <-categoriesChan
	tags := <-tagsChan

	// Posts link to both, so they wait for the channels above.
	cli.Blueln("seeding posts ...")
	posts := seeder.SeedPosts(admin, categories, tags)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		cli.Cyanln("seeding comments ...")
		seeder.SeedComments(reader, posts...)
	}()

	go func() {
		defer wg.Done()

		cli.Warningln("seeding views and likes ...")
		seeder.SeedEngagement(posts...)
	}()

	wg.Wait()

	cli.Magentaln("db seeded as expected ...")
}
