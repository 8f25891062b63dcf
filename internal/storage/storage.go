// Package storage defines the persistence interface and its implementations.
package storage

import (
	"context"
	"errors"

	"qtbot/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Storage is the interface for all persistence operations.
type Storage interface {
	CreatePlayer(ctx context.Context, p *model.Player) error
	GetPlayerByKakaoID(ctx context.Context, kakaoID string) (*model.Player, error)
	UpdatePlayer(ctx context.Context, p *model.Player) error

	CreateMonster(ctx context.Context, m *model.Monster) error
	ListMonsters(ctx context.Context, playerID int64) ([]model.Monster, error)

	CreateBattle(ctx context.Context, b *model.Battle) error
	ListRecentBattles(ctx context.Context, playerID int64, limit int) ([]model.Battle, error)

	Ping(ctx context.Context) error
	Close() error
}
