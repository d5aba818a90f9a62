package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"maxhelp/contexts/commerce/inventory-service/domain/entities"
	domainerrors "maxhelp/contexts/commerce/inventory-service/domain/errors"
	"maxhelp/contexts/commerce/inventory-service/ports"
)

// Store is the in-memory catalog repository used by tests and local modules.
type Store struct {
	mu sync.RWMutex

	itemsByID map[int]entities.Item
	unitsByID map[int]ports.Unit

	nextItemID int
}

func NewStore() *Store {
	return &Store{
		itemsByID:  map[int]entities.Item{},
		unitsByID:  map[int]ports.Unit{},
		nextItemID: 1,
	}
}

// Now implements ports.Clock.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// SeedUnit registers a business unit the catalog may reference.
func (s *Store) SeedUnit(unit ports.Unit) ports.Unit {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unitsByID[unit.ID] = unit
	return unit
}

// SeedItem inserts a fully formed item row.
func (s *Store) SeedItem(item entities.Item) entities.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertItem(item)
}

func (s *Store) insertItem(item entities.Item) entities.Item {
	if item.ID == 0 {
		item.ID = s.nextItemID
	}
	if item.ID >= s.nextItemID {
		s.nextItemID = item.ID + 1
	}
	s.itemsByID[item.ID] = item
	return item
}

func (s *Store) FindUnitByID(_ context.Context, id int) (ports.Unit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unit, ok := s.unitsByID[id]
	if !ok {
		return ports.Unit{}, domainerrors.ErrUnitNotFound
	}
	return unit, nil
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

func (s *Store) FindItemByID(_ context.Context, id int) (entities.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.itemsByID[id]
	if !ok {
		return entities.Item{}, domainerrors.ErrItemNotFound
	}
	return item, nil
}

func (s *Store) ListAllItems(_ context.Context) ([]entities.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Item, 0, len(s.itemsByID))
	for _, item := range s.itemsByID {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) ListItemsByUnit(_ context.Context, unitID int) ([]entities.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Item, 0)
	for _, item := range s.itemsByID {
		if item.UnitID == unitID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (s *Store) CreateItem(_ context.Context, item entities.Item) (entities.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertItem(item), nil
}

func (s *Store) UpdateItem(_ context.Context, item entities.Item) (entities.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.itemsByID[item.ID]; !ok {
		return entities.Item{}, domainerrors.ErrItemNotFound
	}
	s.itemsByID[item.ID] = item
	return item, nil
}

func (s *Store) DeleteItem(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.itemsByID[id]; !ok {
		return domainerrors.ErrItemNotFound
	}
	delete(s.itemsByID, id)
	return nil
}

func (s *Store) CountItems(_ context.Context, unitID *int) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, item := range s.itemsByID {
		if unitID == nil || item.UnitID == *unitID {
			count++
		}
	}
	return count, nil
}

func (s *Store) CountItemsBelow(_ context.Context, unitID *int, threshold int) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, item := range s.itemsByID {
		if unitID != nil && item.UnitID != *unitID {
			continue
		}
		if item.Quantity < threshold {
			count++
		}
	}
	return count, nil
}
