package organization

import (
	"fmt"
	"time"
)

// TeamType distinguishes delivery teams from maintenance teams.
type TeamType string

const (
	TeamTypeChange TeamType = "Change"
	TeamTypeRun    TeamType = "Run"
)

// IsValid reports whether the team type is a known kind.
func (t TeamType) IsValid() bool {
	return t == TeamTypeChange || t == TeamTypeRun
}

// Tribe is the top level of the agile structure.
type Tribe struct {
	id          uint
	name        string
	description string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTribe(name, description string) (*Tribe, error) {
	if name == "" {
		return nil, fmt.Errorf("tribe name is required")
	}
	now := time.Now()
	return &Tribe{name: name, description: description, isActive: true, createdAt: now, updatedAt: now}, nil
}

func ReconstructTribe(id uint, name, description string, isActive bool, createdAt, updatedAt time.Time) *Tribe {
	return &Tribe{id: id, name: name, description: description, isActive: isActive, createdAt: createdAt, updatedAt: updatedAt}
}

func (t *Tribe) ID() uint             { return t.id }
func (t *Tribe) Name() string         { return t.name }
func (t *Tribe) Description() string  { return t.description }
func (t *Tribe) IsActive() bool       { return t.isActive }
func (t *Tribe) CreatedAt() time.Time { return t.createdAt }
func (t *Tribe) UpdatedAt() time.Time { return t.updatedAt }
func (t *Tribe) SetID(id uint)        { t.id = id }

// Product is a product or service owned by one tribe.
type Product struct {
	id          uint
	name        string
	tribeID     uint
	productType string
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProduct(name string, tribeID uint, productType string) (*Product, error) {
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if tribeID == 0 {
		return nil, fmt.Errorf("tribe ID is required")
	}
	if productType == "" {
		productType = "product"
	}
	now := time.Now()
	return &Product{name: name, tribeID: tribeID, productType: productType, isActive: true, createdAt: now, updatedAt: now}, nil
}

func ReconstructProduct(id uint, name string, tribeID uint, productType string, isActive bool, createdAt, updatedAt time.Time) *Product {
	return &Product{id: id, name: name, tribeID: tribeID, productType: productType, isActive: isActive, createdAt: createdAt, updatedAt: updatedAt}
}

func (p *Product) ID() uint             { return p.id }
func (p *Product) Name() string         { return p.name }
func (p *Product) TribeID() uint        { return p.tribeID }
func (p *Product) ProductType() string  { return p.productType }
func (p *Product) IsActive() bool       { return p.isActive }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }
func (p *Product) SetID(id uint)        { p.id = id }

// AgileTeam is a cross-functional team attached to a product.
type AgileTeam struct {
	id        uint
	name      string
	productID uint
	teamType  TeamType
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewAgileTeam(name string, productID uint, teamType TeamType) (*AgileTeam, error) {
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if !teamType.IsValid() {
		return nil, fmt.Errorf("invalid team type: %s", teamType)
	}
	now := time.Now()
	return &AgileTeam{name: name, productID: productID, teamType: teamType, isActive: true, createdAt: now, updatedAt: now}, nil
}

func ReconstructAgileTeam(id uint, name string, productID uint, teamType TeamType, isActive bool, createdAt, updatedAt time.Time) *AgileTeam {
	return &AgileTeam{id: id, name: name, productID: productID, teamType: teamType, isActive: isActive, createdAt: createdAt, updatedAt: updatedAt}
}

func (t *AgileTeam) ID() uint             { return t.id }
func (t *AgileTeam) Name() string         { return t.name }
func (t *AgileTeam) ProductID() uint      { return t.productID }
func (t *AgileTeam) TeamType() TeamType   { return t.teamType }
func (t *AgileTeam) IsActive() bool       { return t.isActive }
func (t *AgileTeam) CreatedAt() time.Time { return t.createdAt }
func (t *AgileTeam) UpdatedAt() time.Time { return t.updatedAt }
func (t *AgileTeam) SetID(id uint)        { t.id = id }
