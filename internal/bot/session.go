package bot

import (
	"strconv"
	"sync"

	domainErrors "github.com/mkorobko/orderbot/internal/domain/errors"
)

// maxQuantityDigits bounds the composed quantity buffer.
const maxQuantityDigits = 5

// session is one user's in-progress quantity entry.
type session struct {
	itemID string
	digits string
}

// SessionStore keeps per-user quantity entry state in process memory.
// State is intentionally ephemeral: it does not survive a restart, and
// switching to another item discards any composed digits.
type SessionStore struct {
	mu     sync.Mutex
	byUser map[int64]*session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{byUser: make(map[int64]*session)}
}

// Select starts quantity entry for the item, replacing any previous entry.
func (s *SessionStore) Select(userID int64, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser[userID] = &session{itemID: itemID}
}

// AppendDigit adds one digit to the buffer and returns the new value.
// Fails with ErrQuantityTooLong once the buffer holds five digits.
func (s *SessionStore) AppendDigit(userID int64, itemID, digit string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.sessionFor(userID, itemID)
	if len(entry.digits) >= maxQuantityDigits {
		return entry.digits, domainErrors.ErrQuantityTooLong
	}
	entry.digits += digit
	return entry.digits, nil
}

// Backspace removes the last digit. Fails with ErrNothingToErase on an
// empty buffer.
func (s *SessionStore) Backspace(userID int64, itemID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.sessionFor(userID, itemID)
	if entry.digits == "" {
		return "", domainErrors.ErrNothingToErase
	}
	entry.digits = entry.digits[:len(entry.digits)-1]
	return entry.digits, nil
}

// Clear empties the buffer unconditionally.
func (s *SessionStore) Clear(userID int64, itemID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.sessionFor(userID, itemID)
	entry.digits = ""
	return entry.digits
}

// Commit parses the buffer as a positive quantity and ends the entry flow.
// The session is consumed only on success.
func (s *SessionStore) Commit(userID int64, itemID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := s.sessionFor(userID, itemID)
	if entry.digits == "" {
		return 0, domainErrors.ErrInvalidQuantity
	}

	// The buffer holds decimal digits only, so a parse failure can only
	// mean overflow of the five-digit bound, which Append prevents.
	quantity, err := strconv.Atoi(entry.digits)
	if err != nil || quantity <= 0 {
		return 0, domainErrors.ErrInvalidQuantity
	}

	delete(s.byUser, userID)
	return quantity, nil
}

// Drop abandons the user's entry flow, discarding digits without confirmation.
func (s *SessionStore) Drop(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}

// Digits returns the current buffer for display.
func (s *SessionStore) Digits(userID int64, itemID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionFor(userID, itemID).digits
}

// sessionFor returns the user's session for the item, starting a fresh one
// when none exists or a different item was selected. Tolerates duplicate
// and out-of-order callback delivery after a restart.
func (s *SessionStore) sessionFor(userID int64, itemID string) *session {
	entry, ok := s.byUser[userID]
	if !ok || entry.itemID != itemID {
		entry = &session{itemID: itemID}
		s.byUser[userID] = entry
	}
	return entry
}
