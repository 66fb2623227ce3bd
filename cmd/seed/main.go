// Comando seed: crea el esquema si no existe y carga el catálogo de obras (y
// opcionalmente facturas de ejemplo) desde archivos JSON.
//
// Uso:
//
//	go run ./cmd/seed -plays data/plays.json -invoices data/invoices.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
	"github.com/tu-usuario/teatro-billing/internal/infrastructure/postgres"
	"github.com/tu-usuario/teatro-billing/pkg/config"
	"github.com/tu-usuario/teatro-billing/pkg/logger"
)

// schema DDL idempotente. Montos archivados como NUMERIC en unidades mayores.
const schema = `
CREATE TABLE IF NOT EXISTS plays (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('tragedy', 'comedy', 'history', 'pastoral'))
);

CREATE TABLE IF NOT EXISTS invoices (
	id         TEXT PRIMARY KEY,
	customer   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS performances (
	invoice_id TEXT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
	position   INT  NOT NULL,
	play_id    TEXT NOT NULL REFERENCES plays(id),
	audience   INT  NOT NULL CHECK (audience >= 0),
	PRIMARY KEY (invoice_id, position)
);

CREATE TABLE IF NOT EXISTS statements (
	id            TEXT PRIMARY KEY,
	invoice_id    TEXT REFERENCES invoices(id),
	customer      TEXT NOT NULL,
	total_amount  NUMERIC(14,2) NOT NULL,
	total_credits INT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS statement_lines (
	statement_id TEXT NOT NULL REFERENCES statements(id) ON DELETE CASCADE,
	position     INT  NOT NULL,
	play_name    TEXT NOT NULL,
	amount       NUMERIC(14,2) NOT NULL,
	audience     INT NOT NULL,
	credits      INT NOT NULL,
	PRIMARY KEY (statement_id, position)
);
`

// playFile formato del JSON de catálogo: { "hamlet": {"name": "Hamlet", "type": "tragedy"}, ... }
type playFile map[string]struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// invoiceFile formato del JSON de facturas de ejemplo.
type invoiceFile []struct {
	Customer     string `json:"customer"`
	Performances []struct {
		PlayID   string `json:"playID"`
		Audience int    `json:"audience"`
	} `json:"performances"`
}

func main() {
	playsPath := flag.String("plays", "data/plays.json", "archivo JSON con el catálogo de obras")
	invoicesPath := flag.String("invoices", "", "archivo JSON con facturas de ejemplo (opcional)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info", Service: cfg.App.Name + "-seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatal().Err(err).Msg("crear esquema")
	}
	log.Info().Msg("esquema verificado")

	if err := seedPlays(ctx, pool, *playsPath, log); err != nil {
		log.Fatal().Err(err).Str("file", *playsPath).Msg("seed de obras")
	}
	if *invoicesPath != "" {
		if err := seedInvoices(ctx, pool, *invoicesPath, log); err != nil {
			log.Fatal().Err(err).Str("file", *invoicesPath).Msg("seed de facturas")
		}
	}
}

func seedPlays(ctx context.Context, q postgres.Querier, path string, log *logger.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}
	var plays playFile
	if err := json.Unmarshal(raw, &plays); err != nil {
		return fmt.Errorf("parsear %s: %w", path, err)
	}

	repo := postgres.NewPlayRepository(q)
	inserted := 0
	for id, p := range plays {
		playType, ok := entity.ParsePlayType(p.Type)
		if !ok {
			return fmt.Errorf("obra %q: tipo %q no soportado", id, p.Type)
		}
		existing, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := repo.Create(ctx, id, entity.Play{Name: p.Name, Type: playType}); err != nil {
			return err
		}
		inserted++
	}
	log.Info().Int("inserted", inserted).Int("total", len(plays)).Msg("catálogo de obras cargado")
	return nil
}

func seedInvoices(ctx context.Context, q postgres.TxQuerier, path string, log *logger.Logger) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("leer %s: %w", path, err)
	}
	var invoices invoiceFile
	if err := json.Unmarshal(raw, &invoices); err != nil {
		return fmt.Errorf("parsear %s: %w", path, err)
	}

	repo := postgres.NewInvoiceRepository(q)
	for _, in := range invoices {
		invoice := &entity.Invoice{
			ID:        uuid.New().String(),
			Customer:  in.Customer,
			CreatedAt: time.Now(),
		}
		for _, p := range in.Performances {
			invoice.Performances = append(invoice.Performances, entity.Performance{
				PlayID:   p.PlayID,
				Audience: p.Audience,
			})
		}
		if err := repo.Create(ctx, invoice); err != nil {
			return err
		}
		log.Info().Str("invoice_id", invoice.ID).Str("customer", invoice.Customer).Msg("factura de ejemplo creada")
	}
	return nil
}
