package services

import (
	"context"
	"errors"
	"testing"

	"github.com/cardswap/matchmaker/internal/gateways/database/models"
	"github.com/cardswap/matchmaker/internal/gateways/database/repositories"
)

type fakeUsers struct {
	users []*models.User
}

func (f *fakeUsers) Exists(_ context.Context, id int64) (bool, error) {
	_, err := f.GetByID(context.Background(), id)
	return err == nil, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, &repositories.NotFoundError{Entity: "user", ID: id}
}

func (f *fakeUsers) GetByUsername(_ context.Context, name string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == name {
			return u, nil
		}
	}
	return nil, &repositories.NotFoundError{Entity: "user", ID: name}
}

func (f *fakeUsers) GetAll(context.Context) ([]*models.User, error) {
	return f.users, nil
}

func (f *fakeUsers) Usernames(context.Context, []int64) (map[int64]string, error) {
	return nil, errors.New("not used")
}

var testUsers = []*models.User{
	{ID: 1, Username: "alice"},
	{ID: 2, Username: "bob"},
	{ID: 3, Username: "alicia"},
	{ID: 42, Username: "carol"},
}

func TestUserSearchService_Resolve(t *testing.T) {
	s := NewUserSearchService(&fakeUsers{users: testUsers})
	ctx := context.Background()

	tests := []struct {
		name   string
		query  string
		wantID int64
	}{
		{"by id", "42", 42},
		{"by name", "bob", 2},
		{"trimmed", "  alice ", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Resolve(ctx, tt.query)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.query, err)
			}
			if got.ID != tt.wantID {
				t.Errorf("Resolve(%q) = %d, want %d", tt.query, got.ID, tt.wantID)
			}
		})
	}

	_, err := s.Resolve(ctx, "alc")
	var nf *UserNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Resolve(alc) error = %v, want UserNotFoundError", err)
	}
	if len(nf.Suggestions) != 2 {
		t.Errorf("Suggestions = %v, want alice and alicia", nf.Suggestions)
	}

	if _, err := s.Resolve(ctx, ""); !IsUserNotFound(err) {
		t.Errorf("Resolve(empty) error = %v", err)
	}
}

func TestSuggest_Limit(t *testing.T) {
	got := Suggest("a", testUsers, 1)
	if len(got) != 1 {
		t.Errorf("Suggest() = %v, want one name", got)
	}
	if got := Suggest("zzz", testUsers, 5); len(got) != 0 {
		t.Errorf("Suggest(zzz) = %v, want none", got)
	}
}
