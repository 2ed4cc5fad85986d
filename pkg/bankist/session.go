package bankist

// Session tracks the logged-in account and the sort toggle for one user.
// All methods lock the store, so a Session may be shared between goroutines.
type Session struct {
	store   *Store
	account *Account
	sorted  bool
}

// NewSession starts logged out.
func NewSession(store *Store) *Session {
	return &Session{store: store}
}

// LoggedIn reports whether an account is active and still open.
func (s *Session) LoggedIn() bool {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	_, ok := s.current()
	return ok
}

// Username of the active account, or "" when logged out.
func (s *Session) Username() string {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if a, ok := s.current(); ok {
		return a.Username
	}
	return ""
}

// View returns the display facts for the current state.
func (s *Session) View() Display {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	return s.display()
}

// Login activates the first account with the given username if its pin
// equals the numeric value of pin. A failed attempt leaves the session as
// it was.
func (s *Session) Login(username, pin string) (Display, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	p, err := parseNumber(pin)
	if err != nil {
		return s.display(), reject(ActionLogin, err)
	}
	acc := s.store.find(username)
	if acc == nil || !pinMatches(acc, p) {
		return s.display(), reject(ActionLogin, ErrInvalidCredentials)
	}

	s.account = acc
	s.sorted = false
	return s.display(), nil
}

// Logout clears the session without touching the store.
func (s *Session) Logout() Display {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.account = nil
	s.sorted = false
	return s.display()
}

// Transfer moves amount from the active account to the account named to.
// Checks run in order: amount is a number, amount > 0, receiver exists,
// balance covers amount, receiver is not the sender.
func (s *Session) Transfer(to, amount string) (Display, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	acc, ok := s.current()
	if !ok {
		return s.display(), reject(ActionTransfer, ErrNotLoggedIn)
	}
	amt, err := parseNumber(amount)
	if err != nil {
		return s.display(), reject(ActionTransfer, err)
	}
	if !amt.IsPositive() {
		return s.display(), reject(ActionTransfer, ErrInvalidAmount)
	}
	receiver := s.store.find(to)
	if receiver == nil {
		return s.display(), reject(ActionTransfer, ErrAccountNotFound)
	}
	if Balance(acc).LessThan(amt) {
		return s.display(), reject(ActionTransfer, ErrInsufficientFunds)
	}
	if receiver.Username == acc.Username {
		return s.display(), reject(ActionTransfer, ErrSelfTransfer)
	}

	acc.push(amt.Neg())
	receiver.push(amt)
	return s.display(), nil
}

// RequestLoan grants amount when any single movement is at least 10% of it.
func (s *Session) RequestLoan(amount string) (Display, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	acc, ok := s.current()
	if !ok {
		return s.display(), reject(ActionLoan, ErrNotLoggedIn)
	}
	amt, err := parseNumber(amount)
	if err != nil {
		return s.display(), reject(ActionLoan, err)
	}
	if !amt.IsPositive() {
		return s.display(), reject(ActionLoan, ErrInvalidAmount)
	}
	if !qualifiesForLoan(acc, amt) {
		return s.display(), reject(ActionLoan, ErrLoanDenied)
	}

	acc.push(amt)
	return s.display(), nil
}

// Close removes the active account from the store when username and pin
// both match it, then logs the session out.
func (s *Session) Close(username, pin string) (Display, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	acc, ok := s.current()
	if !ok {
		return s.display(), reject(ActionClose, ErrNotLoggedIn)
	}
	p, err := parseNumber(pin)
	if err != nil {
		return s.display(), reject(ActionClose, err)
	}
	if username != acc.Username || !pinMatches(acc, p) {
		return s.display(), reject(ActionClose, ErrConfirmationMismatch)
	}

	s.store.remove(acc)
	s.account = nil
	s.sorted = false
	return s.display(), nil
}

// ToggleSort flips between chronological and ascending movement order.
func (s *Session) ToggleSort() (Display, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, ok := s.current(); !ok {
		return s.display(), reject(ActionSort, ErrNotLoggedIn)
	}
	s.sorted = !s.sorted
	return s.display(), nil
}

// current must be called with the store locked. An account closed by
// another session logs this one out.
func (s *Session) current() (*Account, bool) {
	if s.account == nil {
		return nil, false
	}
	if s.store.indexOf(s.account) < 0 {
		s.account = nil
		s.sorted = false
		return nil, false
	}
	return s.account, true
}

func (s *Session) display() Display {
	acc, ok := s.current()
	if !ok {
		return loggedOutDisplay()
	}
	return buildDisplay(acc, s.sorted)
}
