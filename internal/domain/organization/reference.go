package organization

import (
	"fmt"
	"time"
)

// NamedRef is a flat reference catalog entry. Employee profiles, employee
// types and team roles all share this shape: a unique name and nothing else.
type NamedRef struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewNamedRef(name string) (*NamedRef, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	now := time.Now()
	return &NamedRef{name: name, createdAt: now, updatedAt: now}, nil
}

func ReconstructNamedRef(id uint, name string, createdAt, updatedAt time.Time) *NamedRef {
	return &NamedRef{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (r *NamedRef) ID() uint             { return r.id }
func (r *NamedRef) Name() string         { return r.name }
func (r *NamedRef) CreatedAt() time.Time { return r.createdAt }
func (r *NamedRef) UpdatedAt() time.Time { return r.updatedAt }

func (r *NamedRef) SetID(id uint) { r.id = id }
