package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/myrecords/internal/client/models"
)

type fakeNotifier struct {
	mu       sync.Mutex
	success  []string
	failures []string
}

func (n *fakeNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.success = append(n.success, msg)
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, msg)
}

type fakeNav struct {
	paths []string
}

func (n *fakeNav) Navigate(_ context.Context, path string) {
	n.paths = append(n.paths, path)
}

// fakeRecords records every call as "op" or "op id". When gate is set,
// Create and Update block until it is closed.
type fakeRecords struct {
	mu       sync.Mutex
	calls    []string
	items    []models.Record
	listErr  error
	saveErr  error
	delErr   error
	payloads []models.RecordPayload

	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeRecords) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeRecords) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRecords) wait() {
	if f.entered != nil {
		f.entered <- struct{}{}
	}
	if f.gate != nil {
		<-f.gate
	}
}

func (f *fakeRecords) List(context.Context) ([]models.Record, error) {
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Record(nil), f.items...), nil
}

func (f *fakeRecords) Find(_ context.Context, id int64) (*models.Record, error) {
	f.record(fmt.Sprintf("find %d", id))
	return &models.Record{ID: id}, nil
}

func (f *fakeRecords) Create(_ context.Context, in models.RecordPayload) (*models.Record, error) {
	f.record("create")
	f.mu.Lock()
	f.payloads = append(f.payloads, in)
	f.mu.Unlock()
	f.wait()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return &models.Record{ID: 100, Description: in.Description}, nil
}

func (f *fakeRecords) Update(_ context.Context, id int64, in models.RecordPayload) (*models.Record, error) {
	f.record(fmt.Sprintf("update %d", id))
	f.mu.Lock()
	f.payloads = append(f.payloads, in)
	f.mu.Unlock()
	f.wait()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	return &models.Record{ID: id, Description: in.Description}, nil
}

func (f *fakeRecords) Delete(_ context.Context, id int64) error {
	f.record(fmt.Sprintf("delete %d", id))
	return f.delErr
}

type fakeAuth struct {
	calls []string

	loginErr    error
	registerErr error
	updateErr   error
	passwordErr error
	deleteErr   error
	logoutErr   error

	lastCredentials models.Credentials
	lastUser        models.UserPayload
	lastPassword    models.PasswordChange
}

func (f *fakeAuth) Login(_ context.Context, in models.Credentials) (*models.UserProfile, error) {
	f.calls = append(f.calls, "login")
	f.lastCredentials = in
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.UserProfile{Email: in.Email}, nil
}

func (f *fakeAuth) Register(_ context.Context, in models.UserPayload) (*models.UserProfile, error) {
	f.calls = append(f.calls, "register")
	f.lastUser = in
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &models.UserProfile{FirstName: in.FirstName}, nil
}

func (f *fakeAuth) UpdateProfile(_ context.Context, in models.UserPayload) (*models.UserProfile, error) {
	f.calls = append(f.calls, "update_profile")
	f.lastUser = in
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.UserProfile{FirstName: in.FirstName}, nil
}

func (f *fakeAuth) ChangePassword(_ context.Context, in models.PasswordChange) error {
	f.calls = append(f.calls, "change_password")
	f.lastPassword = in
	return f.passwordErr
}

func (f *fakeAuth) DeleteAccount(context.Context) error {
	f.calls = append(f.calls, "delete_account")
	return f.deleteErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	return f.logoutErr
}
