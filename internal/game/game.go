// Package game implements the dungeon-management RPG commands.
package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"qtbot/internal/model"
	"qtbot/internal/storage"
)

// Gameplay constants.
const (
	startingGold       = 500
	startingFloors     = 1
	defaultPlayerName  = "던전 마스터"
	summonCost         = 100
	expandCostPerFloor = 200
	floorDefenseBonus  = 10
	winsPerLevel       = 3
	recentBattleCount  = 5

	raidPowerBase       = 10
	raidPowerSpread     = 100
	raidPowerLevelScale = 25
	winRewardBase       = 150
	winRewardPerLevel   = 50
	maxRaidGoldLoss     = 100
)

// Command errors surfaced to the skill handlers.
var (
	ErrNotRegistered     = errors.New("player not registered")
	ErrAlreadyRegistered = errors.New("player already registered")
	ErrNotEnoughGold     = errors.New("not enough gold")
)

// Service executes game commands against storage.
type Service struct {
	store storage.Storage
	rng   *rand.Rand
	log   *slog.Logger
}

// New creates a Service with the given storage and random source.
func New(store storage.Storage, rng *rand.Rand, log *slog.Logger) *Service {
	return &Service{store: store, rng: rng, log: log}
}

// Register creates a new player for the Kakao user. An empty name gets the
// default title.
func (s *Service) Register(ctx context.Context, kakaoID, name string) (*model.Player, error) {
	if _, err := s.store.GetPlayerByKakaoID(ctx, kakaoID); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("look up player: %w", err)
	}

	if name == "" {
		name = defaultPlayerName
	}
	p := &model.Player{
		KakaoID: kakaoID,
		Name:    name,
		Level:   1,
		Gold:    startingGold,
		Floors:  startingFloors,
	}
	if err := s.store.CreatePlayer(ctx, p); err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	s.log.Info("player registered", "player_id", p.ID, "name", p.Name)
	return p, nil
}

// StatusReport aggregates everything the status reply shows.
type StatusReport struct {
	Player        *model.Player
	MonsterCount  int
	TotalPower    int
	RecentBattles []model.Battle
}

// Status returns the player's dungeon overview.
func (s *Service) Status(ctx context.Context, kakaoID string) (*StatusReport, error) {
	p, err := s.player(ctx, kakaoID)
	if err != nil {
		return nil, err
	}

	monsters, err := s.store.ListMonsters(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list monsters: %w", err)
	}
	total := 0
	for _, m := range monsters {
		total += m.Power
	}

	battles, err := s.store.ListRecentBattles(ctx, p.ID, recentBattleCount)
	if err != nil {
		return nil, fmt.Errorf("list battles: %w", err)
	}

	return &StatusReport{
		Player:        p,
		MonsterCount:  len(monsters),
		TotalPower:    total,
		RecentBattles: battles,
	}, nil
}

// Summon hires a random monster for the player's dungeon, spending gold.
func (s *Service) Summon(ctx context.Context, kakaoID string) (*model.Monster, *model.Player, error) {
	p, err := s.player(ctx, kakaoID)
	if err != nil {
		return nil, nil, err
	}
	if p.Gold < summonCost {
		return nil, nil, ErrNotEnoughGold
	}

	m := s.rollMonster(p.ID)
	if err := s.store.CreateMonster(ctx, m); err != nil {
		return nil, nil, fmt.Errorf("create monster: %w", err)
	}

	p.Gold -= summonCost
	if err := s.store.UpdatePlayer(ctx, p); err != nil {
		return nil, nil, fmt.Errorf("update player: %w", err)
	}

	s.log.Info("monster summoned", "player_id", p.ID, "monster", m.Name, "power", m.Power)
	return m, p, nil
}

// Monsters lists the monsters stationed in the player's dungeon.
func (s *Service) Monsters(ctx context.Context, kakaoID string) ([]model.Monster, error) {
	p, err := s.player(ctx, kakaoID)
	if err != nil {
		return nil, err
	}
	monsters, err := s.store.ListMonsters(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list monsters: %w", err)
	}
	return monsters, nil
}

// Expand adds one dungeon floor, charging floors*200 gold.
func (s *Service) Expand(ctx context.Context, kakaoID string) (*model.Player, int, error) {
	p, err := s.player(ctx, kakaoID)
	if err != nil {
		return nil, 0, err
	}

	cost := p.Floors * expandCostPerFloor
	if p.Gold < cost {
		return nil, cost, ErrNotEnoughGold
	}

	p.Gold -= cost
	p.Floors++
	if err := s.store.UpdatePlayer(ctx, p); err != nil {
		return nil, 0, fmt.Errorf("update player: %w", err)
	}

	s.log.Info("dungeon expanded", "player_id", p.ID, "floors", p.Floors)
	return p, cost, nil
}

// RaidReport is the outcome of one resolved raid.
type RaidReport struct {
	Battle    *model.Battle
	Player    *model.Player
	LeveledUp bool
}

// Raid resolves an adventurer raid against the player's dungeon. Defense is
// the sum of monster power plus a per-floor bonus; the raid power is drawn
// from a band that widens with player level. The outcome is persisted.
func (s *Service) Raid(ctx context.Context, kakaoID string) (*RaidReport, error) {
	p, err := s.player(ctx, kakaoID)
	if err != nil {
		return nil, err
	}

	monsters, err := s.store.ListMonsters(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list monsters: %w", err)
	}

	defense := p.Floors * floorDefenseBonus
	for _, m := range monsters {
		defense += m.Power
	}
	raidPower := raidPowerBase + s.rng.IntN(raidPowerSpread+p.Level*raidPowerLevelScale)

	b := &model.Battle{
		PlayerID:  p.ID,
		RaidPower: raidPower,
		Defense:   defense,
	}

	leveledUp := false
	if defense >= raidPower {
		b.Result = model.BattleWin
		b.GoldChange = winRewardBase + p.Level*winRewardPerLevel
		p.Wins++
		if p.Wins%winsPerLevel == 0 {
			p.Level++
			leveledUp = true
		}
	} else {
		b.Result = model.BattleLoss
		b.GoldChange = -min(p.Gold, maxRaidGoldLoss)
		p.Losses++
	}
	p.Gold += b.GoldChange

	if err := s.store.CreateBattle(ctx, b); err != nil {
		return nil, fmt.Errorf("create battle: %w", err)
	}
	if err := s.store.UpdatePlayer(ctx, p); err != nil {
		return nil, fmt.Errorf("update player: %w", err)
	}

	s.log.Info("raid resolved", "player_id", p.ID, "result", b.Result, "raid_power", raidPower, "defense", defense)
	return &RaidReport{Battle: b, Player: p, LeveledUp: leveledUp}, nil
}

func (s *Service) player(ctx context.Context, kakaoID string) (*model.Player, error) {
	p, err := s.store.GetPlayerByKakaoID(ctx, kakaoID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotRegistered
	}
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	return p, nil
}

type gradeSpec struct {
	grade    model.MonsterGrade
	names    []string
	minPower int
	maxPower int
	weight   int
}

var gradeTable = []gradeSpec{
	{model.GradeCommon, []string{"슬라임", "고블린", "동굴 박쥐"}, 10, 30, 60},
	{model.GradeRare, []string{"오크 전사", "리자드맨", "다크 울프"}, 30, 70, 30},
	{model.GradeElite, []string{"미노타우로스", "리치", "와이번"}, 70, 120, 10},
}

func (s *Service) rollMonster(playerID int64) *model.Monster {
	total := 0
	for _, g := range gradeTable {
		total += g.weight
	}
	roll := s.rng.IntN(total)
	spec := gradeTable[len(gradeTable)-1]
	for _, g := range gradeTable {
		if roll < g.weight {
			spec = g
			break
		}
		roll -= g.weight
	}

	return &model.Monster{
		PlayerID: playerID,
		Name:     spec.names[s.rng.IntN(len(spec.names))],
		Grade:    spec.grade,
		Power:    spec.minPower + s.rng.IntN(spec.maxPower-spec.minPower+1),
	}
}
