package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"teamboard/internal/models"
	"teamboard/internal/repositories"
)

// fakeRoleRepo keeps slot state in memory. Claim holds a mutex around
// the check-and-set, standing in for the store's row-level atomic
// conditional update.
type fakeRoleRepo struct {
	mu        sync.Mutex
	claimants map[uuid.UUID]*uuid.UUID
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{claimants: make(map[uuid.UUID]*uuid.UUID)}
}

func (f *fakeRoleRepo) Claim(_ context.Context, slotID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.claimants[slotID]
	if !ok || current != nil {
		return repositories.ErrConflict
	}
	u := userID
	f.claimants[slotID] = &u
	return nil
}

func (f *fakeRoleRepo) ReleaseMember(_ context.Context, slotID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.claimants[slotID]; ok {
		f.claimants[slotID] = nil
	}
	return nil
}

func (f *fakeRoleRepo) ListByTask(context.Context, uuid.UUID) ([]models.RoleInfo, error) {
	return nil, nil
}

func (f *fakeRoleRepo) ListByUser(context.Context, uuid.UUID) ([]models.MyRole, error) {
	return nil, nil
}

func (f *fakeRoleRepo) ListMembers(context.Context, uuid.UUID) ([]models.MemberRole, error) {
	return nil, nil
}

// Exactly one of N concurrent claimants of a single open slot may win;
// everyone else gets a conflict, and the final claimant is one of the
// callers.
func TestClaimExactlyOneWinner(t *testing.T) {
	repo := newFakeRoleRepo()
	slotID := uuid.New()
	repo.claimants[slotID] = nil

	svc := NewRoleService(repo)

	const callers = 32
	users := make([]uuid.UUID, callers)
	results := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		users[i] = uuid.New()
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = svc.Claim(context.Background(), slotID, users[i])
		}(i)
	}
	wg.Wait()

	winners := 0
	var winner uuid.UUID
	for i, err := range results {
		switch err {
		case nil:
			winners++
			winner = users[i]
		case repositories.ErrConflict:
		default:
			t.Fatalf("unexpected error from claim: %v", err)
		}
	}
	if winners != 1 {
		t.Fatalf("want exactly 1 successful claim, got %d", winners)
	}
	if got := repo.claimants[slotID]; got == nil || *got != winner {
		t.Errorf("slot claimant does not match the winner")
	}
}

func TestClaimOnMissingSlotIsConflict(t *testing.T) {
	svc := NewRoleService(newFakeRoleRepo())
	err := svc.Claim(context.Background(), uuid.New(), uuid.New())
	if err != repositories.ErrConflict {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestReleasedSlotCanBeReclaimed(t *testing.T) {
	repo := newFakeRoleRepo()
	slotID := uuid.New()
	repo.claimants[slotID] = nil

	svc := NewRoleService(repo)
	first := uuid.New()
	second := uuid.New()

	if err := svc.Claim(context.Background(), slotID, first); err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if err := svc.Claim(context.Background(), slotID, second); err != repositories.ErrConflict {
		t.Fatalf("claim of held slot: want ErrConflict, got %v", err)
	}
	if err := svc.ReleaseMember(context.Background(), slotID); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := svc.Claim(context.Background(), slotID, second); err != nil {
		t.Fatalf("reclaim after release: %v", err)
	}
}
