package organization

import (
	"fmt"
	"time"
)

// Position is a job title from the HR catalog. Titles are unique and the
// criteria evaluator matches on them by exact name.
type Position struct {
	id             uint
	title          string
	code           string
	hierarchyLevel int
	description    string
	isActive       bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPosition(title, code string, hierarchyLevel int, description string) (*Position, error) {
	if title == "" {
		return nil, fmt.Errorf("position title is required")
	}
	if hierarchyLevel < 1 {
		return nil, fmt.Errorf("hierarchy level must be >= 1")
	}

	now := time.Now()
	return &Position{
		title:          title,
		code:           code,
		hierarchyLevel: hierarchyLevel,
		description:    description,
		isActive:       true,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructPosition(id uint, title, code string, hierarchyLevel int, description string, isActive bool, createdAt, updatedAt time.Time) *Position {
	return &Position{
		id:             id,
		title:          title,
		code:           code,
		hierarchyLevel: hierarchyLevel,
		description:    description,
		isActive:       isActive,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *Position) ID() uint             { return p.id }
func (p *Position) Title() string        { return p.title }
func (p *Position) Code() string         { return p.code }
func (p *Position) HierarchyLevel() int  { return p.hierarchyLevel }
func (p *Position) Description() string  { return p.description }
func (p *Position) IsActive() bool       { return p.isActive }
func (p *Position) CreatedAt() time.Time { return p.createdAt }
func (p *Position) UpdatedAt() time.Time { return p.updatedAt }

func (p *Position) SetID(id uint) { p.id = id }

func (p *Position) Update(title, code string, hierarchyLevel int, description string) error {
	if title == "" {
		return fmt.Errorf("position title is required")
	}
	if hierarchyLevel < 1 {
		return fmt.Errorf("hierarchy level must be >= 1")
	}
	p.title = title
	p.code = code
	p.hierarchyLevel = hierarchyLevel
	p.description = description
	p.updatedAt = time.Now()
	return nil
}
