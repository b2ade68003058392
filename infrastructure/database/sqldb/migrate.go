package sqldb

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Tabelas criadas pelo Migrate. Os tipos escolhidos funcionam no SQLite e no PostgreSQL.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS sales_records (
		run_id        VARCHAR(32)    NOT NULL,
		seq           INTEGER        NOT NULL,
		purchase_date TIMESTAMP      NOT NULL,
		product_type  VARCHAR(255)   NOT NULL,
		unit_price    NUMERIC(18, 4) NOT NULL,
		quantity      INTEGER        NOT NULL,
		revenue       NUMERIC(18, 4) NOT NULL,
		month         INTEGER        NOT NULL,
		month_name    VARCHAR(3)     NOT NULL,
		quarter       INTEGER        NOT NULL,
		year          INTEGER        NOT NULL,
		extra         TEXT           NOT NULL DEFAULT '{}',
		PRIMARY KEY (run_id, seq)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_records_month ON sales_records (month)`,
	`CREATE TABLE IF NOT EXISTS pipeline_runs (
		id             VARCHAR(32)  PRIMARY KEY,
		input_path     VARCHAR(512) NOT NULL,
		clean_path     VARCHAR(512) NOT NULL,
		clean_checksum VARCHAR(64)  NOT NULL DEFAULT '',
		status         VARCHAR(16)  NOT NULL,
		error          TEXT         NOT NULL DEFAULT '',
		loaded_rows    INTEGER      NOT NULL DEFAULT 0,
		duplicate_rows INTEGER      NOT NULL DEFAULT 0,
		invalid_rows   INTEGER      NOT NULL DEFAULT 0,
		cleaned_rows   INTEGER      NOT NULL DEFAULT 0,
		charts         TEXT         NOT NULL DEFAULT '[]',
		started_at     TIMESTAMP    NOT NULL,
		finished_at    TIMESTAMP    NULL
	)`,
}

// Migrate cria as tabelas do pipeline caso ainda não existam
func (c *Connection) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := c.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao executar migração: %w", err)
		}
	}

	logrus.WithField("driver", c.driver).Debug("Migração do banco concluída")
	return nil
}
