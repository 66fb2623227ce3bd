// Package memory repositorios en memoria para tests y fixtures. Protegidos con
// RWMutex; las lecturas devuelven copias para que nada mute el estado interno
// durante una corrida.
package memory

import (
	"context"
	"sync"

	"github.com/tu-usuario/teatro-billing/internal/domain"
	"github.com/tu-usuario/teatro-billing/internal/domain/entity"
)

// PlayRepository catálogo de obras en memoria.
type PlayRepository struct {
	mu    sync.RWMutex
	plays map[string]entity.Play
}

// NewPlayRepository construye el repositorio, opcionalmente con un catálogo inicial.
func NewPlayRepository(seed entity.PlayCatalog) *PlayRepository {
	plays := make(map[string]entity.Play, len(seed))
	for id, play := range seed {
		plays[id] = play
	}
	return &PlayRepository{plays: plays}
}

// Create registra una obra. ID repetido es error.
func (r *PlayRepository) Create(_ context.Context, id string, play entity.Play) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plays[id]; ok {
		return domain.ErrDuplicate
	}
	r.plays[id] = play
	return nil
}

// GetByID devuelve la obra o nil si no existe.
func (r *PlayRepository) GetByID(_ context.Context, id string) (*entity.Play, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	play, ok := r.plays[id]
	if !ok {
		return nil, nil
	}
	return &play, nil
}

// Catalog devuelve una copia del catálogo completo.
func (r *PlayRepository) Catalog(_ context.Context) (entity.PlayCatalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(entity.PlayCatalog, len(r.plays))
	for id, play := range r.plays {
		out[id] = play
	}
	return out, nil
}

// InvoiceRepository facturas en memoria.
type InvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]*entity.Invoice
}

// NewInvoiceRepository construye el repositorio.
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{invoices: make(map[string]*entity.Invoice)}
}

// Create persiste la factura. ID repetido es error.
func (r *InvoiceRepository) Create(_ context.Context, invoice *entity.Invoice) error {
	if invoice == nil || invoice.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[invoice.ID]; ok {
		return domain.ErrDuplicate
	}
	r.invoices[invoice.ID] = cloneInvoice(invoice)
	return nil
}

// GetByID devuelve una copia de la factura o nil si no existe.
func (r *InvoiceRepository) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	invoice, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	return cloneInvoice(invoice), nil
}

// StatementRepository archivo de estados de cuenta en memoria.
type StatementRepository struct {
	mu         sync.RWMutex
	statements map[string]*entity.Statement
}

// NewStatementRepository construye el repositorio.
func NewStatementRepository() *StatementRepository {
	return &StatementRepository{statements: make(map[string]*entity.Statement)}
}

// Save archiva el estado de cuenta.
func (r *StatementRepository) Save(_ context.Context, st *entity.Statement) error {
	if st == nil || st.ID == "" {
		return domain.ErrInvalidInput
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statements[st.ID] = cloneStatement(st)
	return nil
}

// GetByID devuelve una copia del estado archivado o nil si no existe.
func (r *StatementRepository) GetByID(_ context.Context, id string) (*entity.Statement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.statements[id]
	if !ok {
		return nil, nil
	}
	return cloneStatement(st), nil
}

func cloneInvoice(in *entity.Invoice) *entity.Invoice {
	out := *in
	out.Performances = append([]entity.Performance(nil), in.Performances...)
	return &out
}

func cloneStatement(in *entity.Statement) *entity.Statement {
	out := *in
	out.Lines = append([]entity.StatementLine(nil), in.Lines...)
	return &out
}
