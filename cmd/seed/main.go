// Seed tool: populates the Postgres posts table with synthetic posts.
// Inserts are batched with pgx.Batch to cut round-trips.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mathildeew/posts-api/internal/db"
	"github.com/mathildeew/posts-api/internal/store"
)

func main() {
	var dsn string
	var numPosts int
	var batchSize int
	var titleSize int
	flag.StringVar(&dsn, "dsn", "", "postgres dsn")
	flag.IntVar(&numPosts, "posts", 1000, "number of posts to insert")
	flag.IntVar(&batchSize, "batch", 100, "insert batch size")
	flag.IntVar(&titleSize, "title-size", 24, "post title size (characters)")
	flag.Parse()

	if dsn == "" {
		log.Fatalf("-dsn is required")
	}

	ctx := context.Background()
	// Local RNG instance; keeps randomness explicit and testable.
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	start := time.Now()
	if err := seed(ctx, r, dsn, numPosts, batchSize, titleSize); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	log.Printf("done in %s", time.Since(start).Truncate(time.Millisecond))
}

// seed inserts posts using batched inserts for throughput.
func seed(ctx context.Context, r *rand.Rand, dsn string, numPosts, batchSize, titleSize int) error {
	pool, err := db.NewPool(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Ensure the schema exists before inserting.
	if _, err := store.NewPostgresStore(ctx, pool); err != nil {
		return err
	}

	log.Printf("seeding posts: posts=%d batch=%d", numPosts, batchSize)

	// Small helper to produce synthetic titles of fixed size.
	makeTitle := func() string {
		var b strings.Builder
		for i := 0; i < titleSize; i++ {
			b.WriteByte(byte('a' + r.Intn(26)))
		}
		return b.String()
	}

	batch := &pgx.Batch{}
	pending := 0
	// flush sends the accumulated INSERTs to Postgres and resets the batch.
	flush := func() error {
		if pending == 0 {
			return nil
		}
		br := pool.SendBatch(ctx, batch)
		for i := 0; i < pending; i++ {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("batch exec: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("batch close: %w", err)
		}
		batch = &pgx.Batch{}
		pending = 0
		return nil
	}

	for i := 0; i < numPosts; i++ {
		batch.Queue(`INSERT INTO posts (title) VALUES ($1)`, makeTitle())
		pending++
		if pending >= batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}
