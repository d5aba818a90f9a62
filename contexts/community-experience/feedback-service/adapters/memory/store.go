package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"maxhelp/contexts/community-experience/feedback-service/domain/entities"
	domainerrors "maxhelp/contexts/community-experience/feedback-service/domain/errors"
	"maxhelp/contexts/community-experience/feedback-service/ports"
)

// Store is the in-memory feedback repository used by tests and local
// modules.
type Store struct {
	mu sync.RWMutex

	unitsByID    map[int]ports.Unit
	feedbackByID map[int]entities.Feedback

	nextFeedbackID int
}

func NewStore() *Store {
	return &Store{
		unitsByID:      map[int]ports.Unit{},
		feedbackByID:   map[int]entities.Feedback{},
		nextFeedbackID: 1,
	}
}

// Now implements ports.Clock.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// SeedUnit registers a business unit feedback may target.
func (s *Store) SeedUnit(unit ports.Unit) ports.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unitsByID[unit.ID] = unit
	return unit
}

func (s *Store) FindUnitByName(_ context.Context, name string) (ports.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, unit := range s.unitsByID {
		if strings.EqualFold(unit.Name, name) {
			return unit, nil
		}
	}
	return ports.Unit{}, domainerrors.ErrUnitNotFound
}

func (s *Store) CreateFeedback(_ context.Context, feedback entities.Feedback) (entities.Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	feedback.ID = s.nextFeedbackID
	s.nextFeedbackID++
	s.feedbackByID[feedback.ID] = feedback
	return feedback, nil
}

func (s *Store) ListAllFeedback(_ context.Context) ([]entities.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(entities.Feedback) bool { return true }), nil
}

func (s *Store) ListFeedbackByUnit(_ context.Context, unitID int) ([]entities.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(feedback entities.Feedback) bool { return feedback.UnitID == unitID }), nil
}

func (s *Store) collect(keep func(entities.Feedback) bool) []entities.Feedback {
	items := make([]entities.Feedback, 0)
	for _, feedback := range s.feedbackByID {
		if keep(feedback) {
			items = append(items, feedback)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
