package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/venuehall/venue-api/internal/middleware"
	"github.com/venuehall/venue-api/internal/pkg/password"
)

type fakeRepo struct {
	users     map[uuid.UUID]*User
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[uuid.UUID]*User{}}
}

func (f *fakeRepo) Create(ctx context.Context, u *User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return ErrUsernameTaken
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (f *fakeRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeRepo) List(ctx context.Context) ([]*User, error) {
	var out []*User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}
func (f *fakeRepo) UpdateLanguage(ctx context.Context, id uuid.UUID, language Language) error {
	return nil
}

func postUser(h *Handler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.Create(rr, req)
	return rr
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newFakeRepo()
	h := NewHandler(repo)

	body, _ := json.Marshal(CreateUserRequest{Username: "reception", Password: "password123", Role: "STAFF"})
	rr := postUser(h, body)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(repo.users))
	}
	for _, u := range repo.users {
		if u.PasswordHash == "password123" {
			t.Fatal("password stored in plaintext")
		}
		if !password.Verify("password123", u.PasswordHash) {
			t.Fatal("stored hash does not verify")
		}
		if u.Language != LanguageEN {
			t.Fatalf("expected default language EN, got %s", u.Language)
		}
	}
	if bytes.Contains(rr.Body.Bytes(), []byte("password")) {
		t.Fatalf("response leaks password field: %s", rr.Body.String())
	}
}

func TestCreateUserDuplicateUsernameReturns409(t *testing.T) {
	repo := newFakeRepo()
	h := NewHandler(repo)

	body, _ := json.Marshal(CreateUserRequest{Username: "reception", Password: "password123", Role: "STAFF"})
	if rr := postUser(h, body); rr.Code != http.StatusCreated {
		t.Fatalf("first create: expected 201, got %d", rr.Code)
	}
	if rr := postUser(h, body); rr.Code != http.StatusConflict {
		t.Fatalf("second create: expected 409, got %d", rr.Code)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	h := NewHandler(newFakeRepo())

	body, _ := json.Marshal(CreateUserRequest{Username: "reception", Password: "password123", Role: "SUPERUSER"})
	if rr := postUser(h, body); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	h := NewHandler(newFakeRepo())

	body, _ := json.Marshal(CreateUserRequest{Username: "reception", Password: "short", Role: "STAFF"})
	if rr := postUser(h, body); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestUpdateLanguage(t *testing.T) {
	h := NewHandler(newFakeRepo())

	req := httptest.NewRequest(http.MethodPatch, "/users/me/language", bytes.NewReader([]byte(`{"language":"AR"}`)))
	req.Header.Set("Content-Type", "application/json")
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	rr := httptest.NewRecorder()
	h.UpdateLanguage(rr, req.WithContext(ctx))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestUpdateLanguageRejectsUnknown(t *testing.T) {
	h := NewHandler(newFakeRepo())

	req := httptest.NewRequest(http.MethodPatch, "/users/me/language", bytes.NewReader([]byte(`{"language":"FR"}`)))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.UpdateLanguage(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListUsersExcludesPasswordHash(t *testing.T) {
	repo := newFakeRepo()
	hash, _ := password.Hash("password123")
	id := uuid.New()
	repo.users[id] = &User{ID: id, Username: "admin", PasswordHash: hash, Role: RoleAdmin, Language: LanguageEN}
	h := NewHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if bytes.Contains(rr.Body.Bytes(), []byte(hash)) {
		t.Fatal("password hash leaked into listing")
	}
}
