package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/config"
)

func Open(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.DBURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// migrate applies the idempotent startup schema.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS pgcrypto;

		CREATE TABLE IF NOT EXISTS accounts (
			id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name        TEXT NOT NULL,
			reg_no      TEXT NOT NULL UNIQUE,
			branch      TEXT NOT NULL,
			email       TEXT NOT NULL UNIQUE,
			password_h  TEXT NOT NULL,
			role        TEXT NOT NULL DEFAULT 'student',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS problems (
			id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			problem_name  TEXT NOT NULL,
			department    TEXT NOT NULL,
			location      TEXT NOT NULL,
			urgency       TEXT NOT NULL DEFAULT 'Medium',
			description   TEXT NOT NULL,
			image         TEXT,
			submitted_by  UUID NOT NULL,
			status        TEXT NOT NULL DEFAULT 'New',
			submitted_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS developments (
			id                UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			development_name  TEXT NOT NULL,
			description       TEXT NOT NULL,
			start_date        TIMESTAMPTZ NOT NULL,
			completion_date   TIMESTAMPTZ,
			status            TEXT NOT NULL DEFAULT 'Planned',
			image_url         TEXT
		);
	`)
	return err
}
