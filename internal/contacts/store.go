// Package contacts owns the user's emergency contact list.
package contacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Rorical/SafeHer/internal/storage"
)

// StorageKey is the fixed key the list is stored under.
const StorageKey = "safeher-emergency-contacts"

// ErrInvalidContact is returned by Add when the name or phone is blank.
var ErrInvalidContact = errors.New("contact needs a name and a phone number")

// Contact is a person notified during an emergency.
type Contact struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Store keeps contacts in insertion order and writes the full list back to
// storage after every mutation.
type Store struct {
	mu       sync.RWMutex
	kv       storage.KV
	contacts []Contact
	newID    func() string
}

// Open loads the stored list. A missing record yields an empty store.
func Open(ctx context.Context, kv storage.KV) (*Store, error) {
	s := &Store{
		kv:       kv,
		contacts: make([]Contact, 0),
		newID:    func() string { return uuid.NewString() },
	}

	data, err := kv.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}

	if err := json.Unmarshal(data, &s.contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	if s.contacts == nil {
		s.contacts = make([]Contact, 0)
	}
	return s, nil
}

// Add appends a new contact with a fresh id.
func (s *Store) Add(ctx context.Context, name, phone string) (Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	if name == "" || phone == "" {
		return Contact{}, ErrInvalidContact
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := Contact{ID: s.uniqueIDLocked(), Name: name, Phone: phone}
	prev := s.contacts
	s.contacts = append(append(make([]Contact, 0, len(prev)+1), prev...), c)

	if err := s.saveLocked(ctx); err != nil {
		s.contacts = prev
		return Contact{}, err
	}
	return c, nil
}

// Remove deletes the contact with the given id. An unknown id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, c := range s.contacts {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	prev := s.contacts
	next := make([]Contact, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)
	s.contacts = next

	if err := s.saveLocked(ctx); err != nil {
		s.contacts = prev
		return err
	}
	return nil
}

// List returns a copy of the contacts in insertion order.
func (s *Store) List() []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]Contact, len(s.contacts))
	copy(result, s.contacts)
	return result
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.contacts)
}

func (s *Store) uniqueIDLocked() string {
	for {
		id := s.newID()
		taken := false
		for _, c := range s.contacts {
			if c.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}

func (s *Store) saveLocked(ctx context.Context) error {
	data, err := json.Marshal(s.contacts)
	if err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}
	if err := s.kv.Put(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to save contacts: %w", err)
	}
	return nil
}
