package banlist

import (
	"path/filepath"
	"testing"
	"time"
)

func TestBanAndIsBanned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bans.txt")
	l, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, err := l.Ban("1.2.3.4", "Alice", "cheating", time.Time{})
	if err != nil {
		t.Fatalf("ban failed: %v", err)
	}
	if rec.ID.String() == "" {
		t.Fatal("expected a generated UUID")
	}
	if _, ok := l.IsBanned("1.2.3.4", time.Now()); !ok {
		t.Fatal("expected IP to be banned")
	}
	if _, ok := l.IsBanned("5.6.7.8", time.Now()); ok {
		t.Fatal("expected unrelated IP to be unbanned")
	}
}

func TestUnban(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bans.txt")
	l, _ := Load(path)
	l.Ban("1.2.3.4", "", "", time.Time{})
	if err := l.Unban("1.2.3.4"); err != nil {
		t.Fatalf("unban failed: %v", err)
	}
	if _, ok := l.IsBanned("1.2.3.4", time.Now()); ok {
		t.Fatal("expected ban removed")
	}
}

func TestExpiredBanIsNotBanned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bans.txt")
	l, _ := Load(path)
	past := time.Now().Add(-time.Hour)
	l.Ban("1.2.3.4", "", "", past)
	if _, ok := l.IsBanned("1.2.3.4", time.Now()); ok {
		t.Fatal("expected expired ban to report unbanned")
	}
}

func TestLoadPersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bans.txt")
	l1, _ := Load(path)
	l1.Ban("9.9.9.9", "Bob", "griefing", time.Time{})

	l2, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error reloading: %v", err)
	}
	if _, ok := l2.IsBanned("9.9.9.9", time.Now()); !ok {
		t.Fatal("expected ban to persist across Load calls")
	}
}

func TestPruneRemovesExpiredEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bans.txt")
	l, _ := Load(path)
	l.Ban("1.1.1.1", "", "", time.Now().Add(-time.Hour))
	l.Ban("2.2.2.2", "", "", time.Time{})

	if err := l.Prune(time.Now()); err != nil {
		t.Fatalf("prune failed: %v", err)
	}
	if _, ok := l.IsBanned("1.1.1.1", time.Now()); ok {
		t.Fatal("expected pruned entry gone")
	}
	if _, ok := l.IsBanned("2.2.2.2", time.Now()); !ok {
		t.Fatal("expected permanent ban to survive prune")
	}
}
