package testutil

import (
	"time"

	"github.com/preston-bernstein/wowp-data-service/internal/domain"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/aircraft"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/clans"
	"github.com/preston-bernstein/wowp-data-service/internal/domain/players"
)

// SampleAircraft returns a tier 5 USA fighter with the provided id.
func SampleAircraft(id int64) aircraft.Aircraft {
	return aircraft.Aircraft{
		ID:     id,
		Name:   "Sample Fighter",
		Nation: "usa",
		Type:   "fighter",
		Tier:   domain.IntOf(5),
		Pricing: aircraft.Pricing{
			Credits: domain.IntOf(125000),
			Gold:    domain.IntOf(0),
		},
		Features: aircraft.Features{
			MaxSpeed:  domain.FloatOf(560),
			ClimbRate: domain.FloatOf(14.5),
			Mass:      domain.FloatOf(3100),
			HitPoints: domain.FloatOf(410),
		},
		Predecessors: []int64{},
		Successors:   []int64{},
	}
}

// SamplePlayer returns an account with a few battles on record.
func SamplePlayer(id int64) players.Player {
	return players.Player{
		ID:        id,
		Nickname:  "SamplePilot",
		CreatedAt: domain.TimeOf(time.Unix(1700000000, 0).UTC()),
		Statistics: players.BattleStatistics{
			Battles:    domain.IntOf(200),
			Wins:       domain.IntOf(100),
			Deaths:     domain.IntOf(50),
			FlightTime: domain.IntOf(7200),
		},
	}
}

// SampleClan returns an active clan with the provided id.
func SampleClan(id int64) clans.Clan {
	return clans.Clan{
		ID:           id,
		Tag:          "SMPL",
		Name:         "Sample Squadron",
		MembersCount: domain.IntOf(12),
		CreatedAt:    domain.TimeOf(time.Unix(1700000000, 0).UTC()),
		LeaderName:   "SamplePilot",
		CreatorName:  "SamplePilot",
	}
}
