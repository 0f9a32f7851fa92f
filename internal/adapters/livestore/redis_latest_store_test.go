package livestore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

func newTestStore(t *testing.T) *RedisLatestStore {
	t.Helper()

	mr := miniredis.RunT(t)

	store, err := NewRedisLatestStore(mr.Addr(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestRedisLatestStoreRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	distance := 348700
	duration := 13684
	sample := domain.Sample{
		Origin:          "Boston, MA, USA",
		Destination:     "New York, NY, USA",
		Mode:            domain.ModeDriving,
		Success:         true,
		Status:          domain.StatusOK,
		DistanceMeters:  &distance,
		DurationSeconds: &duration,
		RecordedAt:      time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	if err := store.SetLatest(ctx, sample); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetLatest(ctx, domain.ModeDriving, "Boston, MA, USA", "New York, NY, USA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Status != domain.StatusOK || !got.Success {
		t.Errorf("got %+v, want the stored successful sample", got)
	}
	if got.DistanceMeters == nil || *got.DistanceMeters != 348700 {
		t.Errorf("distance = %v, want 348700", got.DistanceMeters)
	}
	if !got.RecordedAt.Equal(sample.RecordedAt) {
		t.Errorf("recorded at = %v, want %v", got.RecordedAt, sample.RecordedAt)
	}
}

func TestRedisLatestStoreOverwrites(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := 100
	second := 200
	sample := domain.Sample{
		Origin:          "A",
		Destination:     "B",
		Mode:            domain.ModeDriving,
		Success:         true,
		Status:          domain.StatusOK,
		DurationSeconds: &first,
	}

	if err := store.SetLatest(ctx, sample); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sample.DurationSeconds = &second
	if err := store.SetLatest(ctx, sample); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.GetLatest(ctx, domain.ModeDriving, "A", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DurationSeconds == nil || *got.DurationSeconds != 200 {
		t.Errorf("duration = %v, want the overwritten 200", got.DurationSeconds)
	}
}

func TestRedisLatestStoreMissingPair(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetLatest(context.Background(), domain.ModeDriving, "Nowhere", "Elsewhere")
	if !errors.Is(err, ports.ErrSampleNotFound) {
		t.Fatalf("error = %v, want ErrSampleNotFound", err)
	}
}

func TestRedisLatestStoreRejectsEmptyAddresses(t *testing.T) {
	store := newTestStore(t)

	err := store.SetLatest(context.Background(), domain.Sample{Mode: domain.ModeDriving})
	if err == nil {
		t.Fatalf("empty origin/destination accepted")
	}
}
