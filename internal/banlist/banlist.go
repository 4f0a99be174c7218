// Package banlist implements the persisted ban store: line-delimited
// records of {ip [player_name] [reason] [expires]}, each tagged with a
// UUID so external tooling (the admin console, RCON) can reference a
// specific ban without re-parsing the line it came from.
package banlist

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is one ban entry. Expires is the zero time for a permanent ban.
type Record struct {
	ID         uuid.UUID
	IP         string
	PlayerName string
	Reason     string
	Expires    time.Time
}

func (r Record) expired(now time.Time) bool {
	return !r.Expires.IsZero() && now.After(r.Expires)
}

// List is the in-memory ban store, backed by a flat file. All mutating
// methods rewrite the file in full — ban lists are small and edited
// rarely enough that this keeps the on-disk format trivially correct.
type List struct {
	mu   sync.Mutex
	path string
	byIP map[string]Record
}

// Load reads path (creating nothing if it doesn't exist yet — the file
// is created by the first Ban, Unban or Prune, each of which rewrites it).
func Load(path string) (*List, error) {
	l := &List{path: path, byIP: make(map[string]Record)}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("banlist: opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			continue
		}
		l.byIP[rec.IP] = rec
	}
	return l, scanner.Err()
}

func parseLine(line string) (Record, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return Record{}, fmt.Errorf("banlist: malformed line %q", line)
	}
	id, err := uuid.Parse(fields[0])
	if err != nil {
		return Record{}, err
	}
	rec := Record{ID: id, IP: fields[1]}
	if len(fields) > 2 {
		rec.PlayerName = fields[2]
	}
	if len(fields) > 3 {
		rec.Reason = fields[3]
	}
	if len(fields) > 4 && fields[4] != "" {
		unix, err := strconv.ParseInt(fields[4], 10, 64)
		if err == nil {
			rec.Expires = time.Unix(unix, 0)
		}
	}
	return rec, nil
}

func formatLine(r Record) string {
	expires := ""
	if !r.Expires.IsZero() {
		expires = strconv.FormatInt(r.Expires.Unix(), 10)
	}
	return strings.Join([]string{r.ID.String(), r.IP, r.PlayerName, r.Reason, expires}, "\t")
}

// Ban adds or replaces a ban for ip and persists the store.
func (l *List) Ban(ip, playerName, reason string, expires time.Time) (Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec := Record{ID: uuid.New(), IP: ip, PlayerName: playerName, Reason: reason, Expires: expires}
	l.byIP[ip] = rec
	return rec, l.saveLocked()
}

// Unban removes ip's ban, if any, and persists the store.
func (l *List) Unban(ip string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.byIP, ip)
	return l.saveLocked()
}

// IsBanned reports whether ip is currently banned (an expired ban is
// treated as not banned, but stays stored until Prune removes it).
func (l *List) IsBanned(ip string, now time.Time) (Record, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec, ok := l.byIP[ip]
	if !ok || rec.expired(now) {
		return Record{}, false
	}
	return rec, true
}

// Prune drops expired entries and persists the store.
func (l *List) Prune(now time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for ip, rec := range l.byIP {
		if rec.expired(now) {
			delete(l.byIP, ip)
		}
	}
	return l.saveLocked()
}

func (l *List) saveLocked() error {
	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("banlist: writing %s: %w", l.path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, rec := range l.byIP {
		if _, err := fmt.Fprintln(w, formatLine(rec)); err != nil {
			return err
		}
	}
	return w.Flush()
}
