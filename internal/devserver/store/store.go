// Package store keeps the development backend's users and records in
// memory. Everything is lost on restart.
package store

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is a stored account. Email is kept as entered and compared
// case-insensitively.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	CPF       string
	Phone     string
	hash      []byte
}

// Record is a stored financial record. DueDate is DD-MM-YYYY.
type Record struct {
	ID          int64
	UserID      int64
	Description string
	DueDate     string
	Value       float64
	PaidOut     bool
}

// Memory is a mutex-guarded in-memory store.
type Memory struct {
	mu       sync.RWMutex
	users    map[int64]*User
	byEmail  map[string]int64
	records  map[int64]*Record
	nextUser int64
	nextRec  int64
	cost     int
}

// NewMemory creates an empty store. cost is the bcrypt cost; zero means
// bcrypt.DefaultCost.
func NewMemory(cost int) *Memory {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &Memory{
		users:   map[int64]*User{},
		byEmail: map[string]int64{},
		records: map[int64]*Record{},
		cost:    cost,
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser stores u with password hashed and returns the stored copy.
func (m *Memory) CreateUser(u User, password string) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := emailKey(u.Email)
	if _, ok := m.byEmail[key]; ok {
		return User{}, ErrEmailTaken
	}
	m.nextUser++
	u.ID = m.nextUser
	u.hash = hash
	m.users[u.ID] = &u
	m.byEmail[key] = u.ID
	return u, nil
}

// Authenticate returns the user owning email when password matches.
func (m *Memory) Authenticate(email, password string) (User, error) {
	m.mu.RLock()
	id, ok := m.byEmail[emailKey(email)]
	var u User
	if ok {
		u = *m.users[id]
	}
	m.mu.RUnlock()

	if !ok {
		return User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(u.hash, []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// CheckPassword reports whether password is the current password of id.
func (m *Memory) CheckPassword(id int64, password string) (bool, error) {
	m.mu.RLock()
	u, ok := m.users[id]
	var hash []byte
	if ok {
		hash = u.hash
	}
	m.mu.RUnlock()

	if !ok {
		return false, ErrNotFound
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil, nil
}

func (m *Memory) User(id int64) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return *u, nil
}

// UpdateUser replaces the profile fields of u.ID. The password is kept.
func (m *Memory) UpdateUser(u User) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, ok := m.users[u.ID]
	if !ok {
		return User{}, ErrNotFound
	}
	oldKey, newKey := emailKey(cur.Email), emailKey(u.Email)
	if newKey != oldKey {
		if _, taken := m.byEmail[newKey]; taken {
			return User{}, ErrEmailTaken
		}
		delete(m.byEmail, oldKey)
		m.byEmail[newKey] = u.ID
	}
	u.hash = cur.hash
	*cur = u
	return u, nil
}

func (m *Memory) SetPassword(id int64, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.cost)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	u.hash = hash
	return nil
}

// DeleteUser removes the account and all of its records.
func (m *Memory) DeleteUser(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	delete(m.byEmail, emailKey(u.Email))
	delete(m.users, id)
	for rid, r := range m.records {
		if r.UserID == id {
			delete(m.records, rid)
		}
	}
	return nil
}

// Records lists the records of userID ordered by id.
func (m *Memory) Records(userID int64) []Record {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Record{}
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	slices.SortFunc(out, func(a, b Record) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// Record returns id when it belongs to userID.
func (m *Memory) Record(userID, id int64) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.records[id]
	if !ok || r.UserID != userID {
		return Record{}, ErrNotFound
	}
	return *r, nil
}

func (m *Memory) CreateRecord(r Record) Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextRec++
	r.ID = m.nextRec
	m.records[r.ID] = &r
	return r
}

// UpdateRecord replaces r.ID when it belongs to r.UserID.
func (m *Memory) UpdateRecord(r Record) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.records[r.ID]
	if !ok || cur.UserID != r.UserID {
		return Record{}, ErrNotFound
	}
	*cur = r
	return r, nil
}

func (m *Memory) DeleteRecord(userID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.records[id]
	if !ok || r.UserID != userID {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}
