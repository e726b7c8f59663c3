package profile

import (
	"fmt"
	"sync"
)

// Profile identifies one tracked user of the coaching service.
type Profile struct {
	ID       string
	Username string
}

// Store holds the known profiles and tracks which one is active. It is safe
// for concurrent use; screens read the active profile while the settings
// screen may swap it.
type Store struct {
	mu       sync.RWMutex
	profiles []Profile
	active   int
}

// NewStore builds a store over the given profiles. The first profile is
// active initially; activeID, when non-empty, selects a different one. An
// unknown activeID falls back to the first profile.
func NewStore(profiles []Profile, activeID string) (*Store, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("at least one profile is required")
	}
	s := &Store{profiles: cloneProfiles(profiles)}
	if activeID != "" {
		for i, p := range s.profiles {
			if p.ID == activeID {
				s.active = i
				break
			}
		}
	}
	return s, nil
}

// Active returns the currently selected profile.
func (s *Store) Active() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[s.active]
}

// Profiles returns a copy of all known profiles in their configured order.
func (s *Store) Profiles() []Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProfiles(s.profiles)
}

// SetActive switches the active profile by ID. It reports whether the
// selection changed; switching to the already-active profile or to an
// unknown ID leaves the store untouched.
func (s *Store) SetActive(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.profiles {
		if p.ID == id {
			if i == s.active {
				return false
			}
			s.active = i
			return true
		}
	}
	return false
}

func cloneProfiles(profiles []Profile) []Profile {
	dup := make([]Profile, len(profiles))
	copy(dup, profiles)
	return dup
}
