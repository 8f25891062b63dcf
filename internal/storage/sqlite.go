package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver registration.

	"qtbot/internal/model"
	"qtbot/migrations"
)

const timeLayout = "2006-01-02T15:04:05Z"

// SQLite implements Storage backed by a SQLite database.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at dsn and runs pending migrations.
func NewSQLite(dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection is alive.
func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreatePlayer inserts a new player and populates its ID and CreatedAt.
func (s *SQLite) CreatePlayer(ctx context.Context, p *model.Player) error {
	now := time.Now().UTC().Format(timeLayout)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO players (kakao_id, name, level, gold, floors, wins, losses, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.KakaoID, p.Name, p.Level, p.Gold, p.Floors, p.Wins, p.Losses, now,
	)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	p.ID = id
	p.CreatedAt, _ = time.Parse(timeLayout, now)
	return nil
}

// GetPlayerByKakaoID returns the player registered under the given Kakao user id.
func (s *SQLite) GetPlayerByKakaoID(ctx context.Context, kakaoID string) (*model.Player, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, kakao_id, name, level, gold, floors, wins, losses, created_at
		 FROM players WHERE kakao_id = ?`, kakaoID,
	)
	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

// UpdatePlayer persists changes to an existing player.
func (s *SQLite) UpdatePlayer(ctx context.Context, p *model.Player) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE players SET name = ?, level = ?, gold = ?, floors = ?, wins = ?, losses = ?
		 WHERE id = ?`,
		p.Name, p.Level, p.Gold, p.Floors, p.Wins, p.Losses, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

// CreateMonster inserts a new monster and populates its ID and CreatedAt.
func (s *SQLite) CreateMonster(ctx context.Context, m *model.Monster) error {
	now := time.Now().UTC().Format(timeLayout)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO monsters (player_id, name, grade, power, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.PlayerID, m.Name, string(m.Grade), m.Power, now,
	)
	if err != nil {
		return fmt.Errorf("insert monster: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	m.ID = id
	m.CreatedAt, _ = time.Parse(timeLayout, now)
	return nil
}

// ListMonsters returns all monsters stationed in the given player's dungeon.
func (s *SQLite) ListMonsters(ctx context.Context, playerID int64) ([]model.Monster, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player_id, name, grade, power, created_at
		 FROM monsters WHERE player_id = ? ORDER BY id`, playerID,
	)
	if err != nil {
		return nil, fmt.Errorf("query monsters: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var monsters []model.Monster
	for rows.Next() {
		m, err := scanMonster(rows)
		if err != nil {
			return nil, err
		}
		monsters = append(monsters, m)
	}
	return monsters, rows.Err()
}

// CreateBattle inserts a battle record and populates its ID and FoughtAt.
func (s *SQLite) CreateBattle(ctx context.Context, b *model.Battle) error {
	now := time.Now().UTC().Format(timeLayout)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO battles (player_id, result, raid_power, defense, gold_change, fought_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.PlayerID, string(b.Result), b.RaidPower, b.Defense, b.GoldChange, now,
	)
	if err != nil {
		return fmt.Errorf("insert battle: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	b.ID = id
	b.FoughtAt, _ = time.Parse(timeLayout, now)
	return nil
}

// ListRecentBattles returns the most recent battles for a player, newest first.
func (s *SQLite) ListRecentBattles(ctx context.Context, playerID int64, limit int) ([]model.Battle, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player_id, result, raid_power, defense, gold_change, fought_at
		 FROM battles WHERE player_id = ? ORDER BY id DESC LIMIT ?`, playerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query battles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var battles []model.Battle
	for rows.Next() {
		var b model.Battle
		var resultStr, foughtStr string
		if err := rows.Scan(&b.ID, &b.PlayerID, &resultStr, &b.RaidPower, &b.Defense, &b.GoldChange, &foughtStr); err != nil {
			return nil, fmt.Errorf("scan battle: %w", err)
		}
		b.Result = model.BattleResult(resultStr)
		b.FoughtAt, _ = time.Parse(timeLayout, foughtStr)
		battles = append(battles, b)
	}
	return battles, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanPlayer(row scannable) (*model.Player, error) {
	var p model.Player
	var created sql.NullString
	err := row.Scan(&p.ID, &p.KakaoID, &p.Name, &p.Level, &p.Gold, &p.Floors, &p.Wins, &p.Losses, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan player: %w", err)
	}
	if created.Valid {
		p.CreatedAt, _ = time.Parse(timeLayout, created.String)
	}
	return &p, nil
}

func scanMonster(row scannable) (model.Monster, error) {
	var m model.Monster
	var gradeStr, createdStr string
	err := row.Scan(&m.ID, &m.PlayerID, &m.Name, &gradeStr, &m.Power, &createdStr)
	if err != nil {
		return m, fmt.Errorf("scan monster: %w", err)
	}
	m.Grade = model.MonsterGrade(gradeStr)
	m.CreatedAt, _ = time.Parse(timeLayout, createdStr)
	return m, nil
}
