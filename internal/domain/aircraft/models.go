package aircraft

import (
	"fmt"

	"github.com/preston-bernstein/wowp-data-service/internal/domain"
)

// Status labels derived from the premium and gift flags.
const (
	StatusPremium = "Premium"
	StatusGift    = "Gift"
	StatusRegular = "Regular"
)

// Pricing holds the in-game purchase prices.
type Pricing struct {
	Credits domain.NullInt64 `json:"credits"`
	Gold    domain.NullInt64 `json:"gold"`
}

// Features holds the performance characteristics published by the encyclopedia.
type Features struct {
	MaxSpeed            domain.NullFloat64 `json:"maxSpeed"`
	GroundSpeed         domain.NullFloat64 `json:"groundSpeed"`
	OptimalHeight       domain.NullFloat64 `json:"optimalHeight"`
	ClimbRate           domain.NullFloat64 `json:"climbRate"`
	TurnTime            domain.NullFloat64 `json:"turnTime"`
	Mass                domain.NullFloat64 `json:"mass"`
	HitPoints           domain.NullFloat64 `json:"hitPoints"`
	DPS                 domain.NullFloat64 `json:"dps"`
	Maneuverability     domain.NullFloat64 `json:"maneuverability"`
	Controllability     domain.NullFloat64 `json:"controllability"`
	RollManeuverability domain.NullFloat64 `json:"rollManeuverability"`
	SpeedFactor         domain.NullFloat64 `json:"speedFactor"`
}

// Images holds the published artwork URLs.
type Images struct {
	Large  string `json:"large,omitempty"`
	Medium string `json:"medium,omitempty"`
	Small  string `json:"small,omitempty"`
}

// Aircraft is the canonical aircraft record.
type Aircraft struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Nation       string           `json:"nation"`
	Type         string           `json:"type"`
	Tier         domain.NullInt64 `json:"tier"`
	Premium      bool             `json:"premium"`
	Gift         bool             `json:"gift"`
	Pricing      Pricing          `json:"pricing"`
	Features     Features         `json:"features"`
	Images       Images           `json:"images"`
	Description  string           `json:"description,omitempty"`
	Predecessors []int64          `json:"predecessors"`
	Successors   []int64          `json:"successors"`
}

// Status reports the acquisition status label.
func (a Aircraft) Status() string {
	switch {
	case a.Premium:
		return StatusPremium
	case a.Gift:
		return StatusGift
	default:
		return StatusRegular
	}
}

// HasRelations reports whether the aircraft links to other aircraft in the tech tree.
func (a Aircraft) HasRelations() bool {
	return len(a.Predecessors) > 0 || len(a.Successors) > 0
}

// FilterName and FilterNation expose the searchable fields to the query engine.
func (a Aircraft) FilterName() string   { return a.Name }
func (a Aircraft) FilterNation() string { return a.Nation }

// Summary is the display projection of a related aircraft.
type Summary struct {
	ID      int64            `json:"id"`
	Name    string           `json:"name"`
	Nation  string           `json:"nation,omitempty"`
	Type    string           `json:"type,omitempty"`
	Tier    domain.NullInt64 `json:"tier"`
	Premium bool             `json:"premium"`
}

// Summarize projects an aircraft into its display summary.
func Summarize(a Aircraft) Summary {
	name := a.Name
	if name == "" {
		name = PlaceholderName(a.ID)
	}
	return Summary{
		ID:      a.ID,
		Name:    name,
		Nation:  a.Nation,
		Type:    a.Type,
		Tier:    a.Tier,
		Premium: a.Premium,
	}
}

// Unresolved returns the summary used when an identifier could not be looked up.
func Unresolved(id int64) Summary {
	return Summary{ID: id, Name: PlaceholderName(id)}
}

// PlaceholderName is the display name for an aircraft known only by id.
func PlaceholderName(id int64) string {
	return fmt.Sprintf("Aircraft %d", id)
}

// Detail is an aircraft together with its tech-tree neighbours.
type Detail struct {
	Aircraft     Aircraft  `json:"aircraft"`
	Predecessors []Summary `json:"predecessors"`
	Successors   []Summary `json:"successors"`
}
