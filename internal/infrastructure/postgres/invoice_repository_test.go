package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
	"github.com/tu-usuario/teatro-billing/internal/infrastructure/postgres"
)

// fakeTx registra los Exec de la transacción y permite fallar en el n-ésimo.
// Los métodos de pgx.Tx que el repositorio no usa quedan en el embebido.
type fakeTx struct {
	pgx.Tx
	execs      int
	failAtExec int // 0 = nunca falla
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	t.execs++
	if t.failAtExec > 0 && t.execs == t.failAtExec {
		return pgconn.CommandTag{}, errors.New("insert rechazado")
	}
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Commit(_ context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

// fakeDB satisface TxQuerier entregando siempre la misma fakeTx.
type fakeDB struct {
	postgres.Querier
	tx *fakeTx
}

func (db *fakeDB) Begin(_ context.Context) (pgx.Tx, error) {
	return db.tx, nil
}

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:       "inv-1",
		Customer: "BigCo",
		Performances: []entity.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 35},
		},
	}
}

// ─────────────────────────────────────────────
// Create: atomicidad cabecera + funciones
// ─────────────────────────────────────────────

func TestInvoiceRepoCreate_CommitConTodasLasFunciones(t *testing.T) {
	tx := &fakeTx{}
	repo := postgres.NewInvoiceRepository(&fakeDB{tx: tx})

	err := repo.Create(context.Background(), sampleInvoice())
	require.NoError(t, err)

	assert.Equal(t, 3, tx.execs, "un insert de cabecera y uno por función")
	assert.True(t, tx.committed, "la transacción debe confirmarse")
	assert.False(t, tx.rolledBack)
}

// TestInvoiceRepoCreate_RollbackSiFallaUnaFuncion un fallo a mitad de las
// funciones no puede dejar una factura parcial persistida.
func TestInvoiceRepoCreate_RollbackSiFallaUnaFuncion(t *testing.T) {
	tx := &fakeTx{failAtExec: 3} // cabecera y primera función entran; la segunda falla
	repo := postgres.NewInvoiceRepository(&fakeDB{tx: tx})

	err := repo.Create(context.Background(), sampleInvoice())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "performance 2")

	assert.False(t, tx.committed, "no debe haber commit tras un fallo")
	assert.True(t, tx.rolledBack, "la transacción debe revertirse")
}

func TestInvoiceRepoCreate_RollbackSiFallaLaCabecera(t *testing.T) {
	tx := &fakeTx{failAtExec: 1}
	repo := postgres.NewInvoiceRepository(&fakeDB{tx: tx})

	err := repo.Create(context.Background(), sampleInvoice())
	require.Error(t, err)

	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}
