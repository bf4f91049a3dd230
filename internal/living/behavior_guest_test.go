package living

import (
	"testing"

	"github.com/pixil98/go-testutil"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]*User
}

func (s *fakeUserStore) Lookup(name string) (*User, error) {
	u, ok := s.users[name]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) Create(u *User) error {
	if _, ok := s.users[u.Name]; ok {
		return ErrUserExists
	}
	s.users[u.Name] = u
	return nil
}

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(*Entity, string) error { return nil }

func loginPlayer(t *testing.T, store *fakeUserStore, opts ...GuestOpt) (*Entity, *fakeOutput, *GuestBehavior) {
	t.Helper()
	out := &fakeOutput{}
	p := NewPlayer("conn-1", "guest", out)
	g := NewGuestBehavior(store, noopDispatcher{}, opts...)
	p.Become(g)
	return p, out, g
}

func TestGuestLoginExistingUser(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	store := &fakeUserStore{users: map[string]*User{
		"alice": {Name: "alice", PasswordHash: hash, CharacterID: "alice"},
	}}

	p, out, _ := loginPlayer(t, store)

	p.handle(CommandMsg{Text: "Alice"})
	testutil.AssertEqual(t, "password prompt", out.contains("Password:"), true)
	testutil.AssertEqual(t, "not yet in game", p.InGame(), false)

	p.handle(CommandMsg{Text: "hunter2"})
	testutil.AssertEqual(t, "in game", p.InGame(), true)
}

func TestGuestLoginNewUser(t *testing.T) {
	store := &fakeUserStore{users: map[string]*User{}}
	p, out, _ := loginPlayer(t, store)

	p.handle(CommandMsg{Text: "Bob"})
	testutil.AssertEqual(t, "creation prompt", out.contains("choose a password:"), true)

	p.handle(CommandMsg{Text: "swordfish"})
	testutil.AssertEqual(t, "in game", p.InGame(), true)

	u, err := store.Lookup("Bob")
	if err != nil {
		t.Fatalf("user not created: %v", err)
	}
	if bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("swordfish")) != nil {
		t.Error("stored hash does not verify")
	}
}

func TestGuestLoginRetryCap(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	store := &fakeUserStore{users: map[string]*User{
		"alice": {Name: "alice", PasswordHash: hash},
	}}

	p, out, _ := loginPlayer(t, store, WithMaxRetries(3))
	p.handle(CommandMsg{Text: "alice"})

	for range 2 {
		p.handle(CommandMsg{Text: "wrong"})
		testutil.AssertEqual(t, "connection open", out.closed, false)
	}

	p.handle(CommandMsg{Text: "wrong"})
	testutil.AssertEqual(t, "connection closed", out.closed, true)
	testutil.AssertEqual(t, "told goodbye", out.contains("Too many failed attempts."), true)
	testutil.AssertEqual(t, "never in game", p.InGame(), false)
}

func TestGuestRejectsBadNames(t *testing.T) {
	store := &fakeUserStore{users: map[string]*User{}}
	p, out, _ := loginPlayer(t, store)

	for _, name := range []string{"ab", "this-name-is-way-too-long-x", "b0b!", "a b"} {
		p.handle(CommandMsg{Text: name})
	}
	testutil.AssertEqual(t, "still at name prompt", p.InGame(), false)
	testutil.AssertEqual(t, "told the rule", out.contains("Names are 3 to 16 letters."), true)
}

func TestGuestRetryCapCoversWholeFlow(t *testing.T) {
	store := &fakeUserStore{users: map[string]*User{}}

	// Bad names alone exhaust the cap.
	p, out, _ := loginPlayer(t, store, WithMaxRetries(3))
	for range 3 {
		p.handle(CommandMsg{Text: "x!"})
	}
	testutil.AssertEqual(t, "closed after bad names", out.closed, true)
	testutil.AssertEqual(t, "told goodbye", out.contains("Too many failed attempts."), true)

	// Mixed failures count against the same budget: one bad name, then
	// short passwords for a new account.
	p, out, _ = loginPlayer(t, store, WithMaxRetries(3))
	p.handle(CommandMsg{Text: "x!"})
	p.handle(CommandMsg{Text: "Carol"})
	p.handle(CommandMsg{Text: "ab"})
	testutil.AssertEqual(t, "still open one short of cap", out.closed, false)
	p.handle(CommandMsg{Text: "cd"})
	testutil.AssertEqual(t, "closed at cap", out.closed, true)
}
