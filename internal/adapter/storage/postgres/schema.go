package postgres

import (
	"context"
	"fmt"
)

const (
	fundBalancesSQL = `
CREATE TABLE IF NOT EXISTS fund_balances(
  account    VARCHAR(42) NOT NULL,
  balance    BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),

  PRIMARY KEY(account)
);
`
	fundMovementsSQL = `
CREATE TABLE IF NOT EXISTS fund_movements(
  id           UUID NOT NULL,
  from_account VARCHAR(42),         -- NULL for top-ups
  to_account   VARCHAR(42) NOT NULL,
  amount       BIGINT NOT NULL CHECK (amount > 0),
  compensation BOOL NOT NULL DEFAULT FALSE,
  created_at   TIMESTAMPTZ NOT NULL,

  PRIMARY KEY(id)
);
CREATE INDEX IF NOT EXISTS fund_movements_to_idx ON fund_movements(to_account, created_at);
`
	eventsSQL = `
CREATE TABLE IF NOT EXISTS events(
  id          UUID NOT NULL,
  event_type  VARCHAR(64) NOT NULL,
  source      VARCHAR(32) NOT NULL,
  actor       VARCHAR(42) NOT NULL,
  asset_id    BIGINT,               -- NULL when the event concerns no asset
  vault_id    UUID,
  data        JSONB,
  occurred_at TIMESTAMPTZ NOT NULL,

  PRIMARY KEY(id)
);
CREATE INDEX IF NOT EXISTS events_occurred_idx ON events(occurred_at DESC);
CREATE INDEX IF NOT EXISTS events_asset_idx ON events(asset_id);
`
	auditLogsSQL = `
CREATE TABLE IF NOT EXISTS audit_logs(
  id            UUID NOT NULL,
  principal     VARCHAR(42),
  action        VARCHAR(32) NOT NULL,
  resource_type VARCHAR(32) NOT NULL,
  resource_id   VARCHAR(128),
  details       JSONB,
  ip_address    VARCHAR(64) NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL,

  PRIMARY KEY(id)
);
`
	idempotencyLogsSQL = `
CREATE TABLE IF NOT EXISTS idempotency_logs(
  key           VARCHAR(255) NOT NULL, -- principal:scope:key
  status_code   INT NOT NULL,
  response_json JSONB NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL,

  PRIMARY KEY(key)
);
`
)

// schema lists the table definitions in creation order.
var schema = []struct {
	table string
	sql   string
}{
	{"fund_balances", fundBalancesSQL},
	{"fund_movements", fundMovementsSQL},
	{"events", eventsSQL},
	{"audit_logs", auditLogsSQL},
	{"idempotency_logs", idempotencyLogsSQL},
}

// EnsureSchema creates every table the repositories need. It is idempotent.
func EnsureSchema(ctx context.Context, pool Pool) error {
	for _, s := range schema {
		if _, err := pool.Exec(ctx, s.sql); err != nil {
			return fmt.Errorf("ensure table %s: %w", s.table, err)
		}
	}
	return nil
}
