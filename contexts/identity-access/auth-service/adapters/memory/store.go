package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"maxhelp/contexts/identity-access/auth-service/domain/entities"
	domainerrors "maxhelp/contexts/identity-access/auth-service/domain/errors"
)

// Store is the in-memory auth repository used by tests and local modules.
type Store struct {
	mu sync.RWMutex

	usersByID map[int]entities.User
	unitsByID map[int]entities.BusinessUnit

	nextUserID int
	nextUnitID int
}

func NewStore() *Store {
	return &Store{
		usersByID:  map[int]entities.User{},
		unitsByID:  map[int]entities.BusinessUnit{},
		nextUserID: 1,
		nextUnitID: 1,
	}
}

// Now implements ports.Clock.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// SeedUser inserts a fully formed user row; tests and NewInMemoryModule use
// it to establish fixture accounts.
func (s *Store) SeedUser(user entities.User) entities.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertUser(user)
}

// SeedUnit inserts a business unit row.
func (s *Store) SeedUnit(unit entities.BusinessUnit) entities.BusinessUnit {
	s.mu.Lock()
	defer s.mu.Unlock()
	if unit.ID == 0 {
		unit.ID = s.nextUnitID
	}
	if unit.ID >= s.nextUnitID {
		s.nextUnitID = unit.ID + 1
	}
	s.unitsByID[unit.ID] = unit
	return unit
}

func (s *Store) insertUser(user entities.User) entities.User {
	if user.ID == 0 {
		user.ID = s.nextUserID
	}
	if user.ID >= s.nextUserID {
		s.nextUserID = user.ID + 1
	}
	s.usersByID[user.ID] = user
	return user
}

func (s *Store) FindByEmail(_ context.Context, email string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.usersByID {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) FindByName(_ context.Context, name string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, user := range s.usersByID {
		if user.Name == name {
			return user, nil
		}
	}
	return entities.User{}, domainerrors.ErrUserNotFound
}

func (s *Store) FindEmployeeByID(_ context.Context, id int) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.usersByID[id]
	if !ok || user.Role != "employee" {
		return entities.User{}, domainerrors.ErrEmployeeNotFound
	}
	return user, nil
}

func (s *Store) ListEmployees(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.User, 0)
	for _, user := range s.usersByID {
		if user.Role == "employee" {
			items = append(items, user)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) CreateUser(_ context.Context, user entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.usersByID {
		if strings.EqualFold(existing.Email, user.Email) {
			return entities.User{}, domainerrors.ErrEmailTaken
		}
	}
	return s.insertUser(user), nil
}

func (s *Store) UpdateUser(_ context.Context, user entities.User) (entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByID[user.ID]; !ok {
		return entities.User{}, domainerrors.ErrEmployeeNotFound
	}
	for id, existing := range s.usersByID {
		if id != user.ID && strings.EqualFold(existing.Email, user.Email) {
			return entities.User{}, domainerrors.ErrEmailTaken
		}
	}
	s.usersByID[user.ID] = user
	return user, nil
}

func (s *Store) DeleteUser(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByID[id]; !ok {
		return domainerrors.ErrEmployeeNotFound
	}
	delete(s.usersByID, id)
	return nil
}

func (s *Store) CountEmployees(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, user := range s.usersByID {
		if user.Role == "employee" {
			count++
		}
	}
	return count, nil
}

func (s *Store) FindUnitByID(_ context.Context, id int) (entities.BusinessUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unit, ok := s.unitsByID[id]
	if !ok {
		return entities.BusinessUnit{}, domainerrors.ErrUnitNotFound
	}
	return unit, nil
}

func (s *Store) CreateUnit(_ context.Context, unit entities.BusinessUnit) (entities.BusinessUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.unitsByID {
		if existing.Name == unit.Name {
			return entities.BusinessUnit{}, domainerrors.ErrUnitNameTaken
		}
	}
	if unit.ID == 0 {
		unit.ID = s.nextUnitID
	}
	if unit.ID >= s.nextUnitID {
		s.nextUnitID = unit.ID + 1
	}
	s.unitsByID[unit.ID] = unit
	return unit, nil
}

func (s *Store) CountUnits(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.unitsByID)), nil
}
