package split

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/billsplit/internal/models"
)

// roster is the ordered list of people. Order is insertion order.
type roster struct {
	people []models.Person
}

func (r *roster) add(p models.Person) {
	r.people = append(r.people, p)
}

func (r *roster) index(id string) int {
	for i, p := range r.people {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *roster) remove(i int) {
	r.people = append(r.people[:i], r.people[i+1:]...)
}

// AddPerson appends a new person to the roster.
// Names are trimmed; an empty name is rejected.
func (s *Session) AddPerson(name string) (models.Person, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return models.Person{}, s.reject(OpAddPerson, "reason", "empty name")
	}

	p := models.Person{ID: uuid.New().String(), Name: name}
	s.people.add(p)
	return p, s.commit(OpAddPerson)
}

// RenamePerson changes a person's name. An empty name after trimming or an
// unknown id is a no-op.
func (s *Session) RenamePerson(id, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return s.reject(OpRenamePerson, "person_id", id, "reason", "empty name")
	}
	i := s.people.index(id)
	if i < 0 {
		return s.reject(OpRenamePerson, "person_id", id, "reason", "unknown person")
	}

	s.people.people[i].Name = name
	return s.commit(OpRenamePerson)
}

// RemovePerson removes a person and strips them from every item's
// assignees before returning.
func (s *Session) RemovePerson(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.people.index(id)
	if i < 0 {
		return s.reject(OpRemovePerson, "person_id", id, "reason", "unknown person")
	}

	s.people.remove(i)
	s.matrix.prune(id)
	return s.commit(OpRemovePerson)
}

// People returns the roster in insertion order.
func (s *Session) People() []models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Person(nil), s.people.people...)
}

// Person looks up a person by id.
func (s *Session) Person(id string) (models.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.people.index(id)
	if i < 0 {
		return models.Person{}, false
	}
	return s.people.people[i], true
}

// Color returns the legend color for a person, cycling through the palette
// by roster position.
func (s *Session) Color(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.people.index(id)
	if i < 0 {
		return "", false
	}
	return s.palette[i%len(s.palette)], true
}
