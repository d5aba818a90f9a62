package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"maxhelp/contexts/commerce/notification-service/domain/entities"
	domainerrors "maxhelp/contexts/commerce/notification-service/domain/errors"
	"maxhelp/contexts/commerce/notification-service/ports"
)

// UnitInfo is the seeded unit context the review view reports.
type UnitInfo struct {
	ID            int
	Name          string
	Location      string
	EmployeeCount int64
}

// Store is the in-memory notification repository used by tests and local
// modules.
type Store struct {
	mu sync.RWMutex

	itemsByID         map[int]ports.ItemView
	unitsByID         map[int]UnitInfo
	notificationsByID map[int]entities.Notification

	nextNotificationID int
}

func NewStore() *Store {
	return &Store{
		itemsByID:          map[int]ports.ItemView{},
		unitsByID:          map[int]UnitInfo{},
		notificationsByID:  map[int]entities.Notification{},
		nextNotificationID: 1,
	}
}

// Now implements ports.Clock.
func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

// SeedUnit registers a unit with the context the review view needs.
func (s *Store) SeedUnit(unit UnitInfo) UnitInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unitsByID[unit.ID] = unit
	return unit
}

// SeedItem inserts a catalog view row.
func (s *Store) SeedItem(item ports.ItemView) ports.ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemsByID[item.ID] = item
	return item
}

// NotificationCount reports stored rows; tests use it to show rejected
// reports leave nothing behind.
func (s *Store) NotificationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notificationsByID)
}

func (s *Store) FindItemByID(_ context.Context, id int) (ports.ItemView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.itemsByID[id]
	if !ok {
		return ports.ItemView{}, domainerrors.ErrItemNotFound
	}
	return item, nil
}

func (s *Store) CreateNotification(_ context.Context, notification entities.Notification) (entities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notification.ID = s.nextNotificationID
	s.nextNotificationID++
	s.notificationsByID[notification.ID] = notification
	return notification, nil
}

func (s *Store) ListLowStock(_ context.Context, threshold int) ([]ports.LowStockEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]ports.LowStockEntry, 0)
	for _, item := range s.itemsByID {
		if item.Quantity >= threshold {
			continue
		}
		unit := s.unitsByID[item.UnitID]
		entries = append(entries, ports.LowStockEntry{
			InventoryID:   item.ID,
			InventoryName: item.Name,
			Quantity:      item.Quantity,
			UnitID:        item.UnitID,
			UnitName:      unit.Name,
			UnitLocation:  unit.Location,
			EmployeeCount: unit.EmployeeCount,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].InventoryID < entries[j].InventoryID })
	return entries, nil
}
