// Package model defines the domain types used across the application.
package model

import "time"

// Player represents a dungeon owner, keyed by the Kakao user id.
type Player struct {
	ID        int64
	KakaoID   string
	Name      string
	Level     int
	Gold      int
	Floors    int
	Wins      int
	Losses    int
	CreatedAt time.Time
}

// MonsterGrade classifies how strong a summoned monster is.
type MonsterGrade string

// Supported monster grades.
const (
	GradeCommon MonsterGrade = "common"
	GradeRare   MonsterGrade = "rare"
	GradeElite  MonsterGrade = "elite"
)

// Monster represents a single monster stationed in a player's dungeon.
type Monster struct {
	ID        int64
	PlayerID  int64
	Name      string
	Grade     MonsterGrade
	Power     int
	CreatedAt time.Time
}

// BattleResult is the outcome of one adventurer raid.
type BattleResult string

// Supported battle results.
const (
	BattleWin  BattleResult = "win"
	BattleLoss BattleResult = "loss"
)

// Battle records one resolved raid against a player's dungeon.
type Battle struct {
	ID         int64
	PlayerID   int64
	Result     BattleResult
	RaidPower  int
	Defense    int
	GoldChange int
	FoughtAt   time.Time
}
