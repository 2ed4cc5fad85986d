package bankist

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the ordered list of accounts. Every session action holds mu from
// validation to display, so actions never interleave.
type Store struct {
	mu       sync.Mutex
	accounts []*Account
}

// NewStore takes ownership of accounts, gives each an ID and derives the
// usernames. Usernames are not checked for uniqueness; lookups take the
// first match.
func NewStore(accounts []*Account) *Store {
	for _, a := range accounts {
		if a.ID == "" {
			a.ID = uuid.New().String()
		}
	}
	DeriveUsernames(accounts)
	return &Store{accounts: accounts}
}

// Len returns the number of open accounts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accounts)
}

// Accounts returns copies of all accounts in store order.
func (s *Store) Accounts() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		out = append(out, a.clone())
	}
	return out
}

// Lookup returns a copy of the first account with the given username.
func (s *Store) Lookup(username string) (Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.find(username)
	if a == nil {
		return Account{}, false
	}
	return a.clone(), true
}

// TotalBalance is the sum of all movements held by the bank.
func (s *Store) TotalBalance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalBalance(s.accounts)
}

// find must be called with mu held.
func (s *Store) find(username string) *Account {
	for _, a := range s.accounts {
		if a.Username == username {
			return a
		}
	}
	return nil
}

func (s *Store) indexOf(acc *Account) int {
	for i, a := range s.accounts {
		if a == acc {
			return i
		}
	}
	return -1
}

func (s *Store) remove(acc *Account) bool {
	i := s.indexOf(acc)
	if i < 0 {
		return false
	}
	s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
	return true
}
