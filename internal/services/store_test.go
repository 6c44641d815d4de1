package services

import "testing"

func TestStoreCommitAndSnapshot(t *testing.T) {
	var s Store[int]

	if _, ok := s.Snapshot(); ok {
		t.Fatalf("snapshot should be unavailable before first fetch")
	}

	token := s.Begin()
	if !s.Commit(token, []int{1, 2, 3}) {
		t.Fatalf("commit of current token should be accepted")
	}

	snap, ok := s.Snapshot()
	if !ok || len(snap.Items) != 3 {
		t.Fatalf("expected 3 items, got %+v ok=%v", snap, ok)
	}
	if snap.Stale {
		t.Fatalf("fresh commit should not be stale")
	}
}

func TestStoreDiscardsSupersededCommit(t *testing.T) {
	var s Store[int]

	slow := s.Begin()
	fast := s.Begin()

	if !s.Commit(fast, []int{9}) {
		t.Fatalf("newest fetch should commit")
	}
	if s.Commit(slow, []int{1, 2}) {
		t.Fatalf("superseded fetch must be discarded")
	}

	snap, _ := s.Snapshot()
	if len(snap.Items) != 1 || snap.Items[0] != 9 {
		t.Fatalf("stale response overwrote newer data: %+v", snap)
	}
}

func TestStoreFailKeepsOldData(t *testing.T) {
	var s Store[int]

	token := s.Begin()
	s.Commit(token, []int{5})

	next := s.Begin()
	s.Fail(next)

	snap, ok := s.Snapshot()
	if !ok {
		t.Fatalf("previous data should survive a failed fetch")
	}
	if !snap.Stale {
		t.Fatalf("failed refresh should mark the snapshot stale")
	}
	if len(snap.Items) != 1 || snap.Items[0] != 5 {
		t.Fatalf("unexpected items %v", snap.Items)
	}
}

func TestStoreFailOfSupersededFetchIgnored(t *testing.T) {
	var s Store[int]

	slow := s.Begin()
	fast := s.Begin()
	s.Commit(fast, []int{7})
	s.Fail(slow)

	snap, _ := s.Snapshot()
	if snap.Stale {
		t.Fatalf("failure of an obsolete fetch should not mark data stale")
	}
}

func TestStoreSnapshotIsolation(t *testing.T) {
	var s Store[int]
	token := s.Begin()
	s.Commit(token, []int{1, 2})

	snap, _ := s.Snapshot()
	snap.Items[0] = 99

	again, _ := s.Snapshot()
	if again.Items[0] != 1 {
		t.Fatalf("snapshot mutation leaked into the store")
	}
}
