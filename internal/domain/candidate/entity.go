package candidate

import (
	"github.com/google/uuid"
)

// Candidate is the recipient of service resources. Candidates are owned by another
// system; this service only reads them.
type Candidate struct {
	id       uuid.UUID
	number   string
	email    string
	fullName string
}

func Reconstruct(id uuid.UUID, number, email, fullName string) *Candidate {
	return &Candidate{
		id:       id,
		number:   number,
		email:    email,
		fullName: fullName,
	}
}

func (c *Candidate) ID() uuid.UUID    { return c.id }
func (c *Candidate) Number() string   { return c.number }
func (c *Candidate) Email() string    { return c.email }
func (c *Candidate) FullName() string { return c.fullName }

// SavedList is an ordered collection of candidates curated by staff.
type SavedList struct {
	id   uuid.UUID
	name string
}

func ReconstructSavedList(id uuid.UUID, name string) *SavedList {
	return &SavedList{id: id, name: name}
}

func (l *SavedList) ID() uuid.UUID { return l.id }
func (l *SavedList) Name() string  { return l.name }
