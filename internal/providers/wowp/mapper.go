package wowp

import (
	"sort"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/wowp-data-service/internal/domain"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/clans"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/players"
	"github.com/preston-bernstein/wowp-data-service/internal/timeutil"
)

// Mappers are total: any JSON shape yields a record, and values of the wrong
// type are treated as absent.

func toAircraft(r gjson.Result) aircraft.Aircraft {
	return aircraft.Aircraft{
		ID:      intValue(r, "plane_id"),
		Name:    stringValue(r, "name"),
		Nation:  stringValue(r, "nation"),
		Type:    stringValue(r, "type"),
		Tier:    nullInt(r, "level"),
		Premium: boolValue(r, "is_premium"),
		Gift:    boolValue(r, "is_gift"),
		Pricing: aircraft.Pricing{
			Credits: nullInt(r, "price_credit"),
			Gold:    nullInt(r, "price_gold"),
		},
		Features: aircraft.Features{
			MaxSpeed:            nullFloat(r, "features.max_speed"),
			GroundSpeed:         nullFloat(r, "features.speed_at_the_ground"),
			OptimalHeight:       nullFloat(r, "features.optimal_height"),
			ClimbRate:           nullFloat(r, "features.rate_of_climbing"),
			TurnTime:            nullFloat(r, "features.average_turn_time"),
			Mass:                nullFloat(r, "features.mass"),
			HitPoints:           nullFloat(r, "features.hp"),
			DPS:                 nullFloat(r, "features.dps"),
			Maneuverability:     nullFloat(r, "features.maneuverability"),
			Controllability:     nullFloat(r, "features.controllability"),
			RollManeuverability: nullFloat(r, "features.roll_maneuverability"),
			SpeedFactor:         nullFloat(r, "features.speed_factor"),
		},
		Images: aircraft.Images{
			Large:  stringValue(r, "images.large"),
			Medium: stringValue(r, "images.medium"),
			Small:  stringValue(r, "images.small"),
		},
		Description:  stringValue(r, "description"),
		Predecessors: idList(r, "prev_planes"),
		Successors:   idList(r, "next_planes"),
	}
}

func toPlayer(r gjson.Result) players.Player {
	stats := r.Get("statistics.all")
	return players.Player{
		ID:           intValue(r, "account_id"),
		Nickname:     stringValue(r, "nickname"),
		CreatedAt:    nullTime(r, "created_at"),
		LastBattleAt: nullTime(r, "last_battle_time"),
		GlobalRating: nullInt(r, "global_rating"),
		CBTBattles:   nullInt(r, "cbt_games_played"),
		OBTBattles:   nullInt(r, "obt_games_played"),
		Premium: players.Premium{
			Active:    boolValue(r, "private.is_premium"),
			ExpiresAt: nullTime(r, "private.premium_expires_at"),
		},
		Resources: players.Resources{
			FreeXP:  nullInt(r, "private.free_xp"),
			Credits: nullInt(r, "private.credits"),
			Gold:    nullInt(r, "private.gold"),
		},
		Statistics: players.BattleStatistics{
			Battles:      nullInt(stats, "battles"),
			Wins:         nullInt(stats, "wins"),
			Losses:       nullInt(stats, "losses"),
			Draws:        nullInt(stats, "draws"),
			Deaths:       nullInt(stats, "deaths"),
			AvgScore:     nullFloat(stats, "avg_battle_score"),
			TotalScore:   nullInt(stats, "battle_score"),
			MaxScore:     nullInt(stats, "max_battles_score"),
			AvgXP:        nullFloat(stats, "avg_xp"),
			ZoneCaptures: nullInt(stats, "zone_captures"),
			FlightTime:   nullInt(stats, "flight_time"),
			Flights:      nullInt(stats, "flights"),
			AirTargets: players.AirTargets{
				Killed:             nullInt(stats, "air_targets.killed"),
				MaxDamageDealt:     nullFloat(stats, "air_targets.max_damage_dealt"),
				AvgKilledPerFlight: nullFloat(stats, "air_targets.avg_killed_per_flight"),
			},
			GroundObjects: players.GroundObjects{
				Killed:      nullInt(stats, "ground_objects.killed"),
				DamageDealt: nullFloat(stats, "ground_objects.damage_dealt"),
				MaxKilled:   nullInt(stats, "ground_objects.max_killed"),
				Assisted:    nullInt(stats, "ground_objects.assisted"),
			},
			Players: players.PlayerKills{
				Killed:          nullInt(stats, "players.killed"),
				DamageDealt:     nullFloat(stats, "players.damage_dealt"),
				KilledInDefence: nullInt(stats, "players.killed_in_defence"),
				Assisted:        nullInt(stats, "players.assisted"),
				MaxKilled:       nullInt(stats, "players.max_killed"),
				MaxDamageDealt:  nullFloat(stats, "players.max_damage_dealt"),
			},
		},
	}
}

func toPlayerSummary(r gjson.Result) players.Summary {
	return players.Summary{
		ID:       intValue(r, "account_id"),
		Nickname: stringValue(r, "nickname"),
	}
}

func toClan(r gjson.Result) clans.Clan {
	return clans.Clan{
		ID:           intValue(r, "clan_id"),
		Tag:          stringValue(r, "tag"),
		Name:         stringValue(r, "name"),
		OldTag:       stringValue(r, "old_tag"),
		OldName:      stringValue(r, "old_name"),
		MembersCount: nullInt(r, "members_count"),
		Disbanded:    boolValue(r, "is_clan_disbanded"),
		CreatedAt:    nullTime(r, "created_at"),
		RenamedAt:    nullTime(r, "renamed_at"),
		UpdatedAt:    nullTime(r, "updated_at"),
		LeaderName:   stringValue(r, "leader_name"),
		CreatorName:  stringValue(r, "creator_name"),
		Description:  stringValue(r, "description"),
	}
}

func toClanSummary(r gjson.Result) clans.Summary {
	return clans.Summary{
		ID:           intValue(r, "clan_id"),
		Tag:          stringValue(r, "tag"),
		Name:         stringValue(r, "name"),
		MembersCount: nullInt(r, "members_count"),
		CreatedAt:    nullTime(r, "created_at"),
	}
}

// aircraftByID maps a payload keyed by stringified plane id. Null entries
// and non-numeric keys are skipped; a record without plane_id takes its key.
func aircraftByID(data gjson.Result) map[int64]aircraft.Aircraft {
	out := make(map[int64]aircraft.Aircraft)
	if !data.IsObject() {
		return out
	}
	data.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			return true
		}
		id, err := strconv.ParseInt(key.String(), 10, 64)
		if err != nil {
			return true
		}
		a := toAircraft(value)
		if a.ID == 0 {
			a.ID = id
		}
		out[id] = a
		return true
	})
	return out
}

// sortedAircraft flattens a keyed payload in ascending id order.
func sortedAircraft(byID map[int64]aircraft.Aircraft) []aircraft.Aircraft {
	out := make([]aircraft.Aircraft, 0, len(byID))
	for _, a := range byID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// mapArray maps each object element of an array payload, keeping API order.
func mapArray[T any](data gjson.Result, fn func(gjson.Result) T) []T {
	out := make([]T, 0)
	if !data.IsArray() {
		return out
	}
	data.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			out = append(out, fn(value))
		}
		return true
	})
	return out
}

// keyedEntry returns the object stored under id in a keyed payload.
func keyedEntry(data gjson.Result, id int64) (gjson.Result, bool) {
	if !data.IsObject() {
		return gjson.Result{}, false
	}
	entry := data.Get(strconv.FormatInt(id, 10))
	if !entry.IsObject() {
		return gjson.Result{}, false
	}
	return entry, true
}

func number(r gjson.Result, path string) (gjson.Result, bool) {
	v := r.Get(path)
	return v, v.Type == gjson.Number
}

func nullInt(r gjson.Result, path string) domain.NullInt64 {
	v, ok := number(r, path)
	if !ok {
		return domain.NullInt64{}
	}
	return domain.IntOf(v.Int())
}

func nullFloat(r gjson.Result, path string) domain.NullFloat64 {
	v, ok := number(r, path)
	if !ok {
		return domain.NullFloat64{}
	}
	return domain.FloatOf(v.Float())
}

func nullTime(r gjson.Result, path string) domain.NullTime {
	v, ok := number(r, path)
	if !ok {
		return domain.NullTime{}
	}
	t, ok := timeutil.FromEpoch(v.Int())
	if !ok {
		return domain.NullTime{}
	}
	return domain.TimeOf(t)
}

func intValue(r gjson.Result, path string) int64 {
	v, ok := number(r, path)
	if !ok {
		return 0
	}
	return v.Int()
}

func stringValue(r gjson.Result, path string) string {
	v := r.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

func boolValue(r gjson.Result, path string) bool {
	return r.Get(path).Type == gjson.True
}

func idList(r gjson.Result, path string) []int64 {
	out := make([]int64, 0)
	v := r.Get(path)
	if !v.IsArray() {
		return out
	}
	for _, item := range v.Array() {
		if item.Type == gjson.Number {
			out = append(out, item.Int())
		}
	}
	return out
}
