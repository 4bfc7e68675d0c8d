package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cardswap/matchmaker/cardswap/config"
	"github.com/cardswap/matchmaker/internal/gateways/database/models"
	"github.com/cardswap/matchmaker/internal/gateways/database/repositories"
	"github.com/sahilm/fuzzy"
)

// usernames implements fuzzy.Source
type usernames []*models.User

func (u usernames) String(i int) string {
	return strings.ToLower(u[i].Username)
}

func (u usernames) Len() int {
	return len(u)
}

// UserNotFoundError carries close usernames for a query that matched nobody exactly.
type UserNotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *UserNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no user matches %q", e.Query)
	}
	return fmt.Sprintf("no user matches %q, did you mean: %s", e.Query, strings.Join(e.Suggestions, ", "))
}

type UserSearchService struct {
	users repositories.UserRepository
}

func NewUserSearchService(users repositories.UserRepository) *UserSearchService {
	return &UserSearchService{users: users}
}

// Resolve accepts a numeric user id or a username (case-insensitive).
func (s *UserSearchService) Resolve(ctx context.Context, query string) (*models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &UserNotFoundError{Query: query}
	}

	if id, err := strconv.ParseInt(query, 10, 64); err == nil {
		user, err := s.users.GetByID(ctx, id)
		if err == nil || !repositories.IsNotFound(err) {
			return user, err
		}
	}

	user, err := s.users.GetByUsername(ctx, query)
	if err == nil {
		return user, nil
	}
	if !repositories.IsNotFound(err) {
		return nil, err
	}

	all, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return nil, &UserNotFoundError{
		Query:       query,
		Suggestions: Suggest(query, all, config.UserSearchSuggestions),
	}
}

// Suggest returns up to n usernames fuzzily matching query, best first.
func Suggest(query string, users []*models.User, n int) []string {
	matches := fuzzy.FindFrom(strings.ToLower(query), usernames(users))
	out := make([]string, 0, min(n, len(matches)))
	for _, m := range matches {
		if len(out) == n {
			break
		}
		out = append(out, users[m.Index].Username)
	}
	return out
}

func IsUserNotFound(err error) bool {
	var nf *UserNotFoundError
	return errors.As(err, &nf)
}
