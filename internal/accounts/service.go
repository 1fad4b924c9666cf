package accounts

import (
	"fmt"
	"strings"

	"github.com/libro-dev/libro/internal/apperrors"
	"github.com/libro-dev/libro/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byID     map[model.AccountID]model.Account
	byName   map[string]model.AccountID
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byID := make(map[model.AccountID]model.Account, len(accounts))
	byName := make(map[string]model.AccountID, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
		byName[strings.ToLower(a.Name)] = a.ID
	}
	return &Service{accounts: accounts, byID: byID, byName: byName}
}

// Default returns a Service over DefaultChart.
func Default() *Service {
	return NewService(DefaultChart())
}

// All returns all accounts in chart order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by ID.
func (s *Service) Get(id model.AccountID) (model.Account, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Exists reports whether an account ID exists.
func (s *Service) Exists(id model.AccountID) bool {
	_, ok := s.byID[id]
	return ok
}

// Name returns the display name of an account, or its code if unknown.
func (s *Service) Name(id model.AccountID) string {
	if a, ok := s.byID[id]; ok {
		return a.Name
	}
	return id.String()
}

// Lookup resolves a display name (case-insensitive) to an account ID.
func (s *Service) Lookup(name string) (model.AccountID, error) {
	id, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrUnknownAccount, name)
	}
	return id, nil
}

// ByGroup returns all accounts in the given presentation group, in chart order.
func (s *Service) ByGroup(group model.Group) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Group == group {
			result = append(result, a)
		}
	}
	return result
}

// ByClass returns all accounts of the given class, in chart order.
func (s *Service) ByClass(class model.AccountClass) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Class == class {
			result = append(result, a)
		}
	}
	return result
}
