package repositories

import (
	"errors"
	"testing"

	"warbler/models"
)

func getRequest(t *testing.T, repo *FollowRepository, requesterID, requestedID uint) *models.FollowRequest {
	t.Helper()

	var req models.FollowRequest
	err := repo.DB.Where("requester_id = ? AND requested_id = ?", requesterID, requestedID).First(&req).Error
	if err != nil {
		return nil
	}
	return &req
}

func TestRequestFollowPublicTarget(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)

	if err := repo.RequestFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	following, err := repo.IsFollowing(alice.ID, bob.ID)
	if err != nil || !following {
		t.Errorf("expected active edge, got following=%v err=%v", following, err)
	}

	req := getRequest(t, repo, alice.ID, bob.ID)
	if req == nil {
		t.Fatal("expected an audit request row")
	}
	if req.Status != models.StatusAccepted {
		t.Errorf("public follow must leave no pending request, status=%s", req.Status)
	}

	// Repeating the follow is a no-op.
	if err := repo.RequestFollow(alice.ID, bob.ID); err != nil {
		t.Errorf("repeat follow must not fail: %v", err)
	}
	if n := countRows(t, db, &models.Follow{}, ""); n != 1 {
		t.Errorf("expected exactly one edge, got %d", n)
	}
}

func TestRequestFollowPrivateTarget(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", true)

	if err := repo.RequestFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if following, _ := repo.IsFollowing(alice.ID, bob.ID); following {
		t.Error("a request to a private target must not create an edge")
	}
	req := getRequest(t, repo, alice.ID, bob.ID)
	if req == nil || req.Status != models.StatusPending {
		t.Fatalf("expected a pending request, got %+v", req)
	}

	if err := repo.AcceptRequest(bob.ID, alice.ID); err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if following, _ := repo.IsFollowing(alice.ID, bob.ID); !following {
		t.Error("accept must create the edge")
	}
	req = getRequest(t, repo, alice.ID, bob.ID)
	if req.Status != models.StatusAccepted {
		t.Errorf("accept must consume the pending request, status=%s", req.Status)
	}
}

func TestAcceptWithoutPendingRequest(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", true)

	if err := repo.AcceptRequest(bob.ID, alice.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeclineAndReRequest(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", true)

	if err := repo.RequestFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if err := repo.DeclineRequest(bob.ID, alice.ID); err != nil {
		t.Fatalf("decline failed: %v", err)
	}

	if following, _ := repo.IsFollowing(alice.ID, bob.ID); following {
		t.Error("decline must not create an edge")
	}
	req := getRequest(t, repo, alice.ID, bob.ID)
	if req.Status != models.StatusDeclined {
		t.Errorf("expected Declined, got %s", req.Status)
	}

	// A stale Declined row must not block a fresh request.
	if err := repo.RequestFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("re-request after decline failed: %v", err)
	}
	req = getRequest(t, repo, alice.ID, bob.ID)
	if req.Status != models.StatusPending {
		t.Errorf("re-request must supersede the declined row, got %s", req.Status)
	}
	if n := countRows(t, db, &models.FollowRequest{}, "requester_id = ? AND requested_id = ?", alice.ID, bob.ID); n != 1 {
		t.Errorf("expected one request row per pair, got %d", n)
	}
}

func TestCancelRequestIdempotent(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", true)

	if err := repo.RequestFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if err := repo.CancelRequest(alice.ID, bob.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if req := getRequest(t, repo, alice.ID, bob.ID); req != nil {
		t.Errorf("cancel must delete the row outright, found %+v", req)
	}

	if err := repo.CancelRequest(alice.ID, bob.ID); err != nil {
		t.Errorf("second cancel must be a no-op, got %v", err)
	}
}

func TestUnfollowIdempotent(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)

	if err := repo.RequestFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	if err := repo.Unfollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("unfollow failed: %v", err)
	}
	if err := repo.Unfollow(alice.ID, bob.ID); err != nil {
		t.Errorf("second unfollow must not fail: %v", err)
	}
	if n := countRows(t, db, &models.Follow{}, ""); n != 0 {
		t.Errorf("expected zero edges, got %d", n)
	}
}

func TestSelfFollowRejected(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)

	alice := createUser(t, db, "alice", false)

	if err := repo.RequestFollow(alice.ID, alice.ID); !errors.Is(err, ErrSelfFollow) {
		t.Errorf("expected ErrSelfFollow, got %v", err)
	}
}

func TestRequestFollowMissingTarget(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)

	alice := createUser(t, db, "alice", false)

	if err := repo.RequestFollow(alice.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFollowingAndFollowers(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)
	carol := createUser(t, db, "carol", false)

	if err := repo.RequestFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}
	if err := repo.RequestFollow(carol.ID, bob.ID); err != nil {
		t.Fatalf("follow failed: %v", err)
	}

	following, err := repo.Following(alice.ID)
	if err != nil {
		t.Fatalf("following failed: %v", err)
	}
	if len(following) != 1 || following[0].Username != "bob" {
		t.Errorf("expected alice to follow only bob, got %v", following)
	}

	followers, err := repo.Followers(bob.ID)
	if err != nil {
		t.Fatalf("followers failed: %v", err)
	}
	if len(followers) != 2 {
		t.Errorf("expected bob to have 2 followers, got %d", len(followers))
	}
}

func TestPendingLists(t *testing.T) {
	db := setupDB(t)
	repo := NewFollowRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", true)

	if err := repo.RequestFollow(alice.ID, bob.ID); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	received, err := repo.PendingReceived(bob.ID)
	if err != nil {
		t.Fatalf("pending received failed: %v", err)
	}
	if len(received) != 1 || received[0].Requester.Username != "alice" {
		t.Errorf("expected one pending request from alice, got %v", received)
	}

	sent, err := repo.PendingSent(alice.ID)
	if err != nil {
		t.Fatalf("pending sent failed: %v", err)
	}
	if len(sent) != 1 || sent[0].Requested.Username != "bob" {
		t.Errorf("expected one pending request to bob, got %v", sent)
	}
}
