package repositories

import (
	"errors"
	"testing"
)

func TestSendAndList(t *testing.T) {
	db := setupDB(t)
	dms := NewDirectMessageRepository(db)

	alice := createUser(t, db, "alice", false)
	bob := createUser(t, db, "bob", false)

	if _, err := dms.Send(alice.ID, bob.ID, "hi bob"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if _, err := dms.Send(bob.ID, alice.ID, "hi alice"); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	inbox, err := dms.Inbox(bob.ID)
	if err != nil {
		t.Fatalf("inbox failed: %v", err)
	}
	if len(inbox) != 1 || inbox[0].Text != "hi bob" {
		t.Errorf("unexpected inbox: %v", inbox)
	}
	if inbox[0].Sender.Username != "alice" {
		t.Errorf("expected sender preloaded, got %q", inbox[0].Sender.Username)
	}

	outbox, err := dms.Outbox(bob.ID)
	if err != nil {
		t.Fatalf("outbox failed: %v", err)
	}
	if len(outbox) != 1 || outbox[0].Text != "hi alice" {
		t.Errorf("unexpected outbox: %v", outbox)
	}
	if outbox[0].Recipient.Username != "alice" {
		t.Errorf("expected recipient preloaded, got %q", outbox[0].Recipient.Username)
	}
}

func TestSendToMissingRecipient(t *testing.T) {
	db := setupDB(t)
	dms := NewDirectMessageRepository(db)

	alice := createUser(t, db, "alice", false)

	if _, err := dms.Send(alice.ID, 9999, "hello?"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
