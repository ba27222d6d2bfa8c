package setting

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/warung-order/model"
)

type SQL struct {
	conn *sqlx.DB
}

type SettingRepository interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	List(ctx context.Context) ([]model.Setting, error)
	Upsert(ctx context.Context, key, value string) error
}

func NewSettingRepository(conn *sqlx.DB) SettingRepository {
	return &SQL{conn: conn}
}

const (
	getSettingQuery    = "SELECT `key`, value FROM setting WHERE `key` = ?"
	listSettingsQuery  = "SELECT `key`, value FROM setting ORDER BY `key`"
	upsertSettingQuery = "INSERT INTO setting (`key`, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)"
)

// Get returns nil, nil when the key is not set
func (s *SQL) Get(ctx context.Context, key string) (*model.Setting, error) {
	var setting model.Setting
	if err := s.conn.GetContext(ctx, &setting, getSettingQuery, key); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (s *SQL) List(ctx context.Context) ([]model.Setting, error) {
	settings := make([]model.Setting, 0)
	if err := s.conn.SelectContext(ctx, &settings, listSettingsQuery); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SQL) Upsert(ctx context.Context, key, value string) error {
	_, err := s.conn.ExecContext(ctx, upsertSettingQuery, key, value)
	return err
}
