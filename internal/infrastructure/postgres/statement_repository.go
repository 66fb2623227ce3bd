package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
	"github.com/tu-usuario/teatro-billing/internal/domain/repository"
)

var _ repository.StatementRepository = (*StatementRepo)(nil)

var centsPerUnit = decimal.NewFromInt(100)

// StatementRepo archivo histórico de estados de cuenta sobre PostgreSQL.
// Los montos se guardan como NUMERIC en unidades mayores (codec decimal del
// pool); en memoria siempre se trabaja en centavos.
type StatementRepo struct {
	q Querier
}

// NewStatementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStatementRepository(q Querier) *StatementRepo {
	return &StatementRepo{q: q}
}

// Save archiva cabecera y líneas del estado de cuenta.
func (r *StatementRepo) Save(ctx context.Context, st *entity.Statement) error {
	if st == nil || st.ID == "" {
		return domain.ErrInvalidInput
	}
	query := `
		INSERT INTO statements (id, invoice_id, customer, total_amount, total_credits, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		st.ID, nullIfEmpty(st.InvoiceID), st.Customer,
		centsToMajor(st.Totals.AmountCents), st.Totals.Credits, st.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: statement %q", domain.ErrDuplicate, st.ID)
		}
		return fmt.Errorf("insert statement: %w", err)
	}

	detail := `
		INSERT INTO statement_lines (statement_id, position, play_name, amount, audience, credits)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for i, line := range st.Lines {
		_, err := r.q.Exec(ctx, detail,
			st.ID, i, line.PlayName, centsToMajor(line.AmountCents), line.Audience, line.Credits,
		)
		if err != nil {
			return fmt.Errorf("insert statement line %d: %w", i+1, err)
		}
	}
	return nil
}

// GetByID recupera un estado archivado con sus líneas en orden, o nil si no existe.
func (r *StatementRepo) GetByID(ctx context.Context, id string) (*entity.Statement, error) {
	query := `
		SELECT id, COALESCE(invoice_id, ''), customer, total_amount, total_credits, created_at
		FROM statements WHERE id = $1`
	st := &entity.Statement{}
	var totalAmount decimal.Decimal
	err := r.q.QueryRow(ctx, query, id).Scan(
		&st.ID, &st.InvoiceID, &st.Customer, &totalAmount, &st.Totals.Credits, &st.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select statement: %w", err)
	}
	st.Totals.AmountCents = majorToCents(totalAmount)

	detail := `
		SELECT play_name, amount, audience, credits
		FROM statement_lines
		WHERE statement_id = $1
		ORDER BY position`
	rows, err := r.q.Query(ctx, detail, id)
	if err != nil {
		return nil, fmt.Errorf("select statement lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line entity.StatementLine
		var amount decimal.Decimal
		if err := rows.Scan(&line.PlayName, &amount, &line.Audience, &line.Credits); err != nil {
			return nil, fmt.Errorf("scan statement line: %w", err)
		}
		line.AmountCents = majorToCents(amount)
		st.Lines = append(st.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterar statement lines: %w", err)
	}
	return st, nil
}

func centsToMajor(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(centsPerUnit)
}

func majorToCents(major decimal.Decimal) int64 {
	return major.Mul(centsPerUnit).IntPart()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
