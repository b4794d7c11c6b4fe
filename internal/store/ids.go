package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// IDSource hands out process-unique topic ids. Equality is the only
// operation callers may assume about the returned strings.
type IDSource interface {
	Next() string
}

// newRandomID returns prefix-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits (~1 trillion) of space.
func newRandomID(prefix string) (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	suffix := strings.ToLower(enc.EncodeToString(b[:]))
	return prefix + "-" + suffix, nil
}

// randomIDSource generates "top-xxxxxxxx" ids and remembers what it has
// issued so a (vanishingly unlikely) duplicate draw is retried.
type randomIDSource struct {
	issued map[string]bool
}

// NewRandomIDSource returns the default id source.
func NewRandomIDSource() IDSource {
	return &randomIDSource{issued: map[string]bool{}}
}

func (s *randomIDSource) Next() string {
	for {
		id, err := newRandomID("top")
		if err != nil {
			// crypto/rand failing means the process is in serious trouble;
			// fall back to a counter so Next can keep its no-error contract.
			id = fmt.Sprintf("top-fallback-%d", len(s.issued))
		}
		if !s.issued[id] {
			s.issued[id] = true
			return id
		}
	}
}

// seqIDSource issues "top-1", "top-2", ... Deterministic; used for the
// seed catalog and in tests.
type seqIDSource struct {
	n int
}

// NewSeqIDSource returns a deterministic id source starting at top-1.
func NewSeqIDSource() IDSource {
	return &seqIDSource{}
}

func (s *seqIDSource) Next() string {
	s.n++
	return fmt.Sprintf("top-%d", s.n)
}
