package session

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func testRedisStorage(t *testing.T) *RedisStorage {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStorage(client, "")
}

func TestRedisStorage_ReadAbsent(t *testing.T) {
	storage := testRedisStorage(t)

	payload, err := storage.Read(context.Background())
	if err != nil {
		t.Fatalf("read of absent key failed: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected nil payload, got %q", payload)
	}
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	storage := testRedisStorage(t)
	ctx := context.Background()

	record := []byte(`{"id":"1","name":"Mohammed Ali","email":"admin@viken.com","role":"admin","approved":true}`)
	if err := storage.Write(ctx, record); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	payload, err := storage.Read(ctx)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(payload) != string(record) {
		t.Fatalf("payload mismatch: %q", payload)
	}
}

func TestRedisStorage_Delete(t *testing.T) {
	storage := testRedisStorage(t)
	ctx := context.Background()

	if err := storage.Write(ctx, []byte(`{}`)); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := storage.Delete(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	payload, err := storage.Read(ctx)
	if err != nil {
		t.Fatalf("read after delete failed: %v", err)
	}
	if payload != nil {
		t.Fatalf("expected key to be gone, got %q", payload)
	}

	// Deleting a missing key is not an error.
	if err := storage.Delete(ctx); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestRedisStorage_Ping(t *testing.T) {
	storage := testRedisStorage(t)
	if err := storage.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestStore_OverRedis(t *testing.T) {
	storage := testRedisStorage(t)
	ctx := context.Background()

	store := NewStore(storage, zerolog.Nop())
	if err := store.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := store.Set(ctx, adminIdentity()); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	restored := NewStore(storage, zerolog.Nop())
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	current := restored.Current()
	if current == nil || *current != *adminIdentity() {
		t.Fatalf("restored identity differs: %+v", current)
	}
}
