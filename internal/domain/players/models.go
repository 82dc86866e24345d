package players

import "github.com/preston-bernstein/wowp-data-service/internal/domain"

// Player represents the normalized account shape.
type Player struct {
	ID           int64            `json:"id"`
	Nickname     string           `json:"nickname"`
	CreatedAt    domain.NullTime  `json:"createdAt"`
	LastBattleAt domain.NullTime  `json:"lastBattleAt"`
	GlobalRating domain.NullInt64 `json:"globalRating"`
	CBTBattles   domain.NullInt64 `json:"cbtBattles"`
	OBTBattles   domain.NullInt64 `json:"obtBattles"`
	Premium      Premium          `json:"premium"`
	Resources    Resources        `json:"resources"`
	Statistics   BattleStatistics `json:"statistics"`
}

// Premium describes the premium account state. Only visible to the account owner.
type Premium struct {
	Active    bool            `json:"active"`
	ExpiresAt domain.NullTime `json:"expiresAt"`
}

// Resources holds private account balances.
type Resources struct {
	FreeXP  domain.NullInt64 `json:"freeXp"`
	Credits domain.NullInt64 `json:"credits"`
	Gold    domain.NullInt64 `json:"gold"`
}

// BattleStatistics aggregates results across all battles.
type BattleStatistics struct {
	Battles       domain.NullInt64   `json:"battles"`
	Wins          domain.NullInt64   `json:"wins"`
	Losses        domain.NullInt64   `json:"losses"`
	Draws         domain.NullInt64   `json:"draws"`
	Deaths        domain.NullInt64   `json:"deaths"`
	AvgScore      domain.NullFloat64 `json:"avgScore"`
	TotalScore    domain.NullInt64   `json:"totalScore"`
	MaxScore      domain.NullInt64   `json:"maxScore"`
	AvgXP         domain.NullFloat64 `json:"avgXp"`
	ZoneCaptures  domain.NullInt64   `json:"zoneCaptures"`
	FlightTime    domain.NullInt64   `json:"flightTimeSeconds"`
	Flights       domain.NullInt64   `json:"flights"`
	AirTargets    AirTargets         `json:"airTargets"`
	GroundObjects GroundObjects      `json:"groundObjects"`
	Players       PlayerKills        `json:"players"`
}

// AirTargets covers kills of AI-controlled aircraft.
type AirTargets struct {
	Killed             domain.NullInt64   `json:"killed"`
	MaxDamageDealt     domain.NullFloat64 `json:"maxDamageDealt"`
	AvgKilledPerFlight domain.NullFloat64 `json:"avgKilledPerFlight"`
}

// GroundObjects covers destroyed ground targets.
type GroundObjects struct {
	Killed      domain.NullInt64   `json:"killed"`
	DamageDealt domain.NullFloat64 `json:"damageDealt"`
	MaxKilled   domain.NullInt64   `json:"maxKilled"`
	Assisted    domain.NullInt64   `json:"assisted"`
}

// PlayerKills covers player-versus-player combat.
type PlayerKills struct {
	Killed          domain.NullInt64   `json:"killed"`
	DamageDealt     domain.NullFloat64 `json:"damageDealt"`
	KilledInDefence domain.NullInt64   `json:"killedInDefence"`
	Assisted        domain.NullInt64   `json:"assisted"`
	MaxKilled       domain.NullInt64   `json:"maxKilled"`
	MaxDamageDealt  domain.NullFloat64 `json:"maxDamageDealt"`
}

// WinRate returns wins as a percentage of battles. Zero battles yield 0%.
func (s BattleStatistics) WinRate() domain.NullFloat64 {
	return domain.Percentage(s.Wins.Float(), s.Battles.Float())
}

// SurvivalRate returns the share of battles survived as a percentage.
// An unset death count counts as zero deaths.
func (s BattleStatistics) SurvivalRate() domain.NullFloat64 {
	battles := s.Battles.Float()
	if !battles.Valid || battles.Float64 == 0 {
		return domain.FloatOf(0)
	}
	deaths := s.Deaths.Float()
	return domain.FloatOf((1 - deaths.Float64/battles.Float64) * 100)
}

// Summary is a search hit.
type Summary struct {
	ID       int64  `json:"id"`
	Nickname string `json:"nickname"`
}

// FilterName exposes the nickname to the query engine.
func (s Summary) FilterName() string { return s.Nickname }

// FilterNation is always empty; accounts have no nation.
func (s Summary) FilterNation() string { return "" }
