//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mzeman/facegate/internal/config"
	"github.com/mzeman/facegate/internal/database"
	"github.com/mzeman/facegate/internal/face"
)

func setupTestContainer(t *testing.T) (*Pool, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "pgvector/pgvector:pg16",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("Docker not available or container failed to start, skipping integration test: %v", err)
		return nil, func() {}
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	dbURL := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	cfg := &config.DatabaseConfig{
		URL:          dbURL,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}

	pool, err := NewPool(cfg)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to create pool: %v", err)
	}

	if err := pool.Migrate(ctx); err != nil {
		pool.Close()
		container.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		pool.Close()
		container.Terminate(ctx)
	}

	return pool, cleanup
}

func testDescriptor(hot int) []float32 {
	desc := make([]float32, face.DescriptorLen)
	desc[hot] = 1
	return desc
}

func TestPersonRepository(t *testing.T) {
	pool, cleanup := setupTestContainer(t)
	if pool == nil {
		return
	}
	defer cleanup()

	ctx := context.Background()
	repo := NewPersonRepository(pool)

	t.Run("EmptyLog", func(t *testing.T) {
		count, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0 people, got %d", count)
		}

		last, err := repo.Last(ctx)
		if err != nil {
			t.Fatalf("Last failed: %v", err)
		}
		if last != nil {
			t.Errorf("expected nil for empty log, got %+v", last)
		}
	})

	t.Run("AppendAndSnapshot", func(t *testing.T) {
		base := time.Now().UTC().Truncate(time.Microsecond)
		names := []string{"alice", "bob", "carol"}
		for i, name := range names {
			person := &database.Person{
				ID:           uuid.New(),
				Name:         name,
				Descriptor:   testDescriptor(i),
				RegisteredAt: base.Add(time.Duration(i) * time.Second),
			}
			if err := repo.Append(ctx, person); err != nil {
				t.Fatalf("Append(%s) failed: %v", name, err)
			}
		}

		people, err := repo.All(ctx)
		if err != nil {
			t.Fatalf("All failed: %v", err)
		}
		if len(people) != 3 {
			t.Fatalf("expected 3 people, got %d", len(people))
		}
		for i, name := range names {
			if people[i].Name != name {
				t.Errorf("people[%d].Name = %q; want %q (registration order)", i, people[i].Name, name)
			}
			if len(people[i].Descriptor) != face.DescriptorLen {
				t.Errorf("people[%d] descriptor length = %d; want %d",
					i, len(people[i].Descriptor), face.DescriptorLen)
			}
			if people[i].Descriptor[i] != 1 {
				t.Errorf("people[%d] descriptor did not round-trip", i)
			}
		}

		last, err := repo.Last(ctx)
		if err != nil {
			t.Fatalf("Last failed: %v", err)
		}
		if last == nil || last.Name != "carol" {
			t.Errorf("Last = %+v; want carol", last)
		}

		count, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if count != 3 {
			t.Errorf("Count = %d; want 3", count)
		}
	})
}

func TestDocumentRepository(t *testing.T) {
	pool, cleanup := setupTestContainer(t)
	if pool == nil {
		return
	}
	defer cleanup()

	ctx := context.Background()
	repo := NewDocumentRepository(pool)

	embedding := func(hot int) []float32 {
		v := make([]float32, 768)
		v[hot] = 1
		return v
	}

	docs := []database.Document{
		{PersonID: uuid.New(), Name: "alice", Text: "alice doc", Embedding: embedding(0), RegisteredAt: time.Now().UTC()},
		{PersonID: uuid.New(), Name: "bob", Text: "bob doc", Embedding: embedding(1), RegisteredAt: time.Now().UTC()},
	}

	t.Run("ReplaceAndSearch", func(t *testing.T) {
		if err := repo.ReplaceAll(ctx, docs); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}

		count, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("Count failed: %v", err)
		}
		if count != 2 {
			t.Errorf("Count = %d; want 2", count)
		}

		found, distances, err := repo.SearchSimilar(ctx, embedding(1), 1)
		if err != nil {
			t.Fatalf("SearchSimilar failed: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 result, got %d", len(found))
		}
		if found[0].Name != "bob" {
			t.Errorf("nearest document = %q; want bob", found[0].Name)
		}
		if distances[0] > 1e-6 {
			t.Errorf("distance to identical embedding = %f; want ~0", distances[0])
		}
	})

	t.Run("ReplaceIsAtomicSwap", func(t *testing.T) {
		replacement := []database.Document{
			{PersonID: uuid.New(), Name: "dora", Text: "dora doc", Embedding: embedding(2), RegisteredAt: time.Now().UTC()},
		}
		if err := repo.ReplaceAll(ctx, replacement); err != nil {
			t.Fatalf("ReplaceAll failed: %v", err)
		}

		all, err := repo.All(ctx)
		if err != nil {
			t.Fatalf("All failed: %v", err)
		}
		if len(all) != 1 || all[0].Name != "dora" {
			t.Errorf("expected only the replacement document, got %+v", all)
		}
	})
}
