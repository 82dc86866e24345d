package handlers

import (
	"github.com/preston-bernstein/wowp-data-service/internal/domain"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/clans"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/players"
	"github.com/preston-bernstein/wowp-data-service/internal/format"
)

// AircraftListResponse is the body of GET /aircraft.
type AircraftListResponse struct {
	Locale   string             `json:"locale"`
	Count    int                `json:"count"`
	Aircraft []AircraftListItem `json:"aircraft"`
}

// AircraftListItem is one row of the aircraft list.
type AircraftListItem struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Nation string `json:"nation"`
	Type   string `json:"type"`
	Tier   string `json:"tier"`
	Status string `json:"status"`
	Image  string `json:"image,omitempty"`
}

// AircraftDetailResponse is the body of GET /aircraft/{id}.
type AircraftDetailResponse struct {
	Locale       string            `json:"locale"`
	Aircraft     aircraft.Aircraft `json:"aircraft"`
	Display      AircraftDisplay   `json:"display"`
	Predecessors []RelatedView     `json:"predecessors"`
	Successors   []RelatedView     `json:"successors"`
}

// AircraftDisplay holds the formatted strings for an aircraft detail screen.
type AircraftDisplay struct {
	Nation              string `json:"nation"`
	Tier                string `json:"tier"`
	Type                string `json:"type"`
	Status              string `json:"status"`
	PriceCredits        string `json:"priceCredits"`
	PriceGold           string `json:"priceGold"`
	MaxSpeed            string `json:"maxSpeed"`
	GroundSpeed         string `json:"groundSpeed"`
	OptimalHeight       string `json:"optimalHeight"`
	ClimbRate           string `json:"climbRate"`
	TurnTime            string `json:"turnTime"`
	Mass                string `json:"mass"`
	HitPoints           string `json:"hitPoints"`
	DPS                 string `json:"dps"`
	Maneuverability     string `json:"maneuverability"`
	Controllability     string `json:"controllability"`
	RollManeuverability string `json:"rollManeuverability"`
	SpeedFactor         string `json:"speedFactor"`
	Description         string `json:"description"`
}

// RelatedView is a predecessor or successor entry.
type RelatedView struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Nation  string `json:"nation,omitempty"`
	Tier    string `json:"tier"`
	Premium bool   `json:"premium"`
}

// PlayerSearchResponse is the body of GET /players.
type PlayerSearchResponse struct {
	Search  string            `json:"search"`
	Count   int               `json:"count"`
	Players []players.Summary `json:"players"`
}

// PlayerDetailResponse is the body of GET /players/{id}.
type PlayerDetailResponse struct {
	Locale  string         `json:"locale"`
	Player  players.Player `json:"player"`
	Display PlayerDisplay  `json:"display"`
}

// PlayerDisplay holds the formatted strings for a player detail screen.
type PlayerDisplay struct {
	CreatedAt        string `json:"createdAt"`
	LastBattleAt     string `json:"lastBattleAt"`
	GlobalRating     string `json:"globalRating"`
	CBTBattles       string `json:"cbtBattles"`
	OBTBattles       string `json:"obtBattles"`
	Premium          string `json:"premium"`
	PremiumExpiresAt string `json:"premiumExpiresAt"`
	FreeXP           string `json:"freeXp"`
	Credits          string `json:"credits"`
	Gold             string `json:"gold"`

	Battles      string `json:"battles"`
	Wins         string `json:"wins"`
	Losses       string `json:"losses"`
	Draws        string `json:"draws"`
	Deaths       string `json:"deaths"`
	WinRate      string `json:"winRate"`
	SurvivalRate string `json:"survivalRate"`
	AvgScore     string `json:"avgScore"`
	TotalScore   string `json:"totalScore"`
	MaxScore     string `json:"maxScore"`
	AvgXP        string `json:"avgXp"`
	ZoneCaptures string `json:"zoneCaptures"`
	FlightTime   string `json:"flightTime"`
	FlightHours  string `json:"flightHours"`
	Flights      string `json:"flights"`

	AirTargetsKilled       string `json:"airTargetsKilled"`
	AirMaxDamage           string `json:"airMaxDamage"`
	AirKillsPerFlight      string `json:"airKillsPerFlight"`
	GroundObjectsKilled    string `json:"groundObjectsKilled"`
	GroundDamage           string `json:"groundDamage"`
	GroundMaxKilled        string `json:"groundMaxKilled"`
	GroundAssisted         string `json:"groundAssisted"`
	PlayersKilled          string `json:"playersKilled"`
	PlayersDamage          string `json:"playersDamage"`
	PlayersKilledInDefence string `json:"playersKilledInDefence"`
	PlayersAssisted        string `json:"playersAssisted"`
	PlayersMaxKilled       string `json:"playersMaxKilled"`
	PlayersMaxDamage       string `json:"playersMaxDamage"`
}

// ClanListResponse is the body of GET /clans.
type ClanListResponse struct {
	Locale string         `json:"locale"`
	Count  int            `json:"count"`
	Clans  []ClanListItem `json:"clans"`
}

// ClanListItem is one row of the clan list.
type ClanListItem struct {
	ID        int64  `json:"id"`
	Tag       string `json:"tag"`
	Name      string `json:"name"`
	Members   string `json:"members"`
	CreatedAt string `json:"createdAt"`
}

// ClanDetailResponse is the body of GET /clans/{id}.
type ClanDetailResponse struct {
	Locale  string      `json:"locale"`
	Clan    clans.Clan  `json:"clan"`
	Display ClanDisplay `json:"display"`
}

// ClanDisplay holds the formatted strings for a clan detail screen.
type ClanDisplay struct {
	Members     string `json:"members"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	RenamedAt   string `json:"renamedAt"`
	UpdatedAt   string `json:"updatedAt"`
	Leader      string `json:"leader"`
	Creator     string `json:"creator"`
	FormerName  string `json:"formerName"`
	Description string `json:"description"`
}

// Clan status labels.
const (
	clanActive    = "Active"
	clanDisbanded = "Disbanded"
)

func aircraftListItem(a aircraft.Aircraft, f format.Formatter) AircraftListItem {
	return AircraftListItem{
		ID:     a.ID,
		Name:   format.Text(a.Name, aircraft.PlaceholderName(a.ID)),
		Nation: format.Text(a.Nation, format.NotAvailable),
		Type:   format.Text(a.Type, format.NotAvailable),
		Tier:   f.Int(a.Tier),
		Status: a.Status(),
		Image:  a.Images.Small,
	}
}

func aircraftDetailResponse(d aircraft.Detail, f format.Formatter) AircraftDetailResponse {
	a := d.Aircraft
	feat := a.Features
	return AircraftDetailResponse{
		Locale:   f.Locale().String(),
		Aircraft: a,
		Display: AircraftDisplay{
			Nation:              format.Text(a.Nation, format.NotAvailable),
			Tier:                f.Int(a.Tier),
			Type:                format.Text(a.Type, format.NotAvailable),
			Status:              a.Status(),
			PriceCredits:        positiveInt(f, a.Pricing.Credits),
			PriceGold:           positiveInt(f, a.Pricing.Gold),
			MaxSpeed:            f.WithUnit(feat.MaxSpeed, "km/h"),
			GroundSpeed:         f.WithUnit(feat.GroundSpeed, "km/h"),
			OptimalHeight:       f.WithUnit(feat.OptimalHeight, "m"),
			ClimbRate:           f.WithUnit(feat.ClimbRate, "m/s"),
			TurnTime:            f.WithUnit(feat.TurnTime, "s"),
			Mass:                f.WithUnit(feat.Mass, "kg"),
			HitPoints:           f.Number(feat.HitPoints, 0),
			DPS:                 f.Number(feat.DPS, 0),
			Maneuverability:     f.Number(feat.Maneuverability, 0),
			Controllability:     f.Number(feat.Controllability, 0),
			RollManeuverability: f.Number(feat.RollManeuverability, 0),
			SpeedFactor:         f.Number(feat.SpeedFactor, 0),
			Description:         format.Text(a.Description, format.NotAvailable),
		},
		Predecessors: relatedViews(d.Predecessors, f),
		Successors:   relatedViews(d.Successors, f),
	}
}

func relatedViews(in []aircraft.Summary, f format.Formatter) []RelatedView {
	out := make([]RelatedView, 0, len(in))
	for _, s := range in {
		out = append(out, RelatedView{
			ID:      s.ID,
			Name:    s.Name,
			Nation:  s.Nation,
			Tier:    f.Int(s.Tier),
			Premium: s.Premium,
		})
	}
	return out
}

// positiveInt renders prices, where 0 means "not sold for this currency".
func positiveInt(f format.Formatter, v domain.NullInt64) string {
	if !v.Valid || v.Int64 <= 0 {
		return format.NotAvailable
	}
	return f.Int(v)
}

func playerDetailResponse(p players.Player, f format.Formatter) PlayerDetailResponse {
	s := p.Statistics
	premium := "No"
	if p.Premium.Active {
		premium = "Yes"
	}
	return PlayerDetailResponse{
		Locale: f.Locale().String(),
		Player: p,
		Display: PlayerDisplay{
			CreatedAt:        f.Date(p.CreatedAt),
			LastBattleAt:     f.Date(p.LastBattleAt),
			GlobalRating:     f.Int(p.GlobalRating),
			CBTBattles:       f.Int(p.CBTBattles),
			OBTBattles:       f.Int(p.OBTBattles),
			Premium:          premium,
			PremiumExpiresAt: f.Date(p.Premium.ExpiresAt),
			FreeXP:           f.Int(p.Resources.FreeXP),
			Credits:          f.Int(p.Resources.Credits),
			Gold:             f.Int(p.Resources.Gold),

			Battles:      f.Int(s.Battles),
			Wins:         f.Int(s.Wins),
			Losses:       f.Int(s.Losses),
			Draws:        f.Int(s.Draws),
			Deaths:       f.Int(s.Deaths),
			WinRate:      f.Percent(s.WinRate()),
			SurvivalRate: f.Percent(s.SurvivalRate()),
			AvgScore:     f.Number(s.AvgScore, 0),
			TotalScore:   f.Int(s.TotalScore),
			MaxScore:     f.Int(s.MaxScore),
			AvgXP:        f.Number(s.AvgXP, 0),
			ZoneCaptures: f.Int(s.ZoneCaptures),
			FlightTime:   f.Hours(s.FlightTime, 0),
			FlightHours:  f.Hours(s.FlightTime, 1),
			Flights:      f.Int(s.Flights),

			AirTargetsKilled:       f.Int(s.AirTargets.Killed),
			AirMaxDamage:           f.Number(s.AirTargets.MaxDamageDealt, 0),
			AirKillsPerFlight:      f.Number(s.AirTargets.AvgKilledPerFlight, 2),
			GroundObjectsKilled:    f.Int(s.GroundObjects.Killed),
			GroundDamage:           f.Number(s.GroundObjects.DamageDealt, 0),
			GroundMaxKilled:        f.Int(s.GroundObjects.MaxKilled),
			GroundAssisted:         f.Int(s.GroundObjects.Assisted),
			PlayersKilled:          f.Int(s.Players.Killed),
			PlayersDamage:          f.Number(s.Players.DamageDealt, 0),
			PlayersKilledInDefence: f.Int(s.Players.KilledInDefence),
			PlayersAssisted:        f.Int(s.Players.Assisted),
			PlayersMaxKilled:       f.Int(s.Players.MaxKilled),
			PlayersMaxDamage:       f.Number(s.Players.MaxDamageDealt, 0),
		},
	}
}

func clanListItem(c clans.Summary, f format.Formatter) ClanListItem {
	return ClanListItem{
		ID:        c.ID,
		Tag:       c.Tag,
		Name:      c.Name,
		Members:   f.Int(c.MembersCount),
		CreatedAt: f.Date(c.CreatedAt),
	}
}

func clanDetailResponse(c clans.Clan, f format.Formatter) ClanDetailResponse {
	status := clanActive
	if c.Disbanded {
		status = clanDisbanded
	}
	members := format.NotAvailable
	if c.MembersCount.Valid {
		members = f.Int(c.MembersCount) + " players"
	}
	former := format.NotAvailable
	if c.Renamed() {
		former = formerName(c.OldTag, c.OldName)
	}
	return ClanDetailResponse{
		Locale: f.Locale().String(),
		Clan:   c,
		Display: ClanDisplay{
			Members:     members,
			Status:      status,
			CreatedAt:   f.Date(c.CreatedAt),
			RenamedAt:   f.Date(c.RenamedAt),
			UpdatedAt:   f.Date(c.UpdatedAt),
			Leader:      format.Text(c.LeaderName, format.NotAvailable),
			Creator:     format.Text(c.CreatorName, format.NotAvailable),
			FormerName:  former,
			Description: format.Text(c.Description, format.NotAvailable),
		},
	}
}

func formerName(tag, name string) string {
	if tag == "" {
		return name
	}
	return "[" + tag + "] " + name
}
