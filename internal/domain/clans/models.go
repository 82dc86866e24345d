package clans

import "github.com/preston-bernstein/wowp-data-service/internal/domain"

// Clan is the canonical clan record.
type Clan struct {
	ID           int64            `json:"id"`
	Tag          string           `json:"tag"`
	Name         string           `json:"name"`
	OldTag       string           `json:"oldTag,omitempty"`
	OldName      string           `json:"oldName,omitempty"`
	MembersCount domain.NullInt64 `json:"membersCount"`
	Disbanded    bool             `json:"disbanded"`
	CreatedAt    domain.NullTime  `json:"createdAt"`
	RenamedAt    domain.NullTime  `json:"renamedAt"`
	UpdatedAt    domain.NullTime  `json:"updatedAt"`
	LeaderName   string           `json:"leaderName"`
	CreatorName  string           `json:"creatorName"`
	Description  string           `json:"description,omitempty"`
}

// Renamed reports whether the clan carries a former name.
func (c Clan) Renamed() bool {
	return c.OldName != ""
}

// Summary is a clan list entry.
type Summary struct {
	ID           int64            `json:"id"`
	Tag          string           `json:"tag"`
	Name         string           `json:"name"`
	MembersCount domain.NullInt64 `json:"membersCount"`
	CreatedAt    domain.NullTime  `json:"createdAt"`
}

func (s Summary) FilterName() string   { return s.Name }
func (s Summary) FilterNation() string { return "" }
