package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/batarcade/arcade-api/internal/core/domain"
	"github.com/batarcade/arcade-api/internal/core/ports"
)

type stubActivityRepo struct {
	insertErr error
	inserted  []*domain.ScoreActivity
}

func (r *stubActivityRepo) InsertActivity(_ context.Context, a *domain.ScoreActivity) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, a)
	return nil
}

type stubDedup struct {
	dupResult bool
	dupErr    error
	markErr   error
	marked    int
}

func (d *stubDedup) IsDuplicate(_ context.Context, _ int64, _ string, _ int64) (bool, error) {
	return d.dupResult, d.dupErr
}

func (d *stubDedup) Mark(_ context.Context, _ int64, _ string, _ int64) error {
	if d.markErr != nil {
		return d.markErr
	}
	d.marked++
	return nil
}

func activityInput() ports.ScoreActivityInput {
	return ports.ScoreActivityInput{
		UserID:    1,
		GameID:    "asdd",
		Score:     500,
		First:     true,
		Timestamp: time.Now().UTC(),
	}
}

func TestActivityService_Process_Records(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedup{}
	svc := NewActivityService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), activityInput()); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
	if dedup.marked != 1 {
		t.Fatalf("expected dedup mark, got %d", dedup.marked)
	}
	got := repo.inserted[0]
	if got.UserID != 1 || got.GameID != "asdd" || got.Score != 500 || !got.First {
		t.Fatalf("unexpected activity: %+v", got)
	}
}

func TestActivityService_Process_SkipsDuplicates(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, &stubDedup{dupResult: true}, zerolog.Nop())

	if err := svc.Process(context.Background(), activityInput()); err != nil {
		t.Fatalf("duplicate must not be an error: %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("duplicate must not be inserted")
	}
}

func TestActivityService_Process_DedupFailureIsOpen(t *testing.T) {
	repo := &stubActivityRepo{}
	dedup := &stubDedup{dupErr: errors.New("redis down")}
	svc := NewActivityService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), activityInput()); err != nil {
		t.Fatalf("dedup failure must not block recording: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected insert despite dedup failure")
	}
}

func TestActivityService_Process_InsertError(t *testing.T) {
	repo := &stubActivityRepo{insertErr: errors.New("mongo down")}
	svc := NewActivityService(repo, &stubDedup{}, zerolog.Nop())

	if err := svc.Process(context.Background(), activityInput()); err == nil {
		t.Fatalf("expected error when insert fails")
	}
}
