package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/domain"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/internal/domain/inventory"
	"github.com/jhoicas/inventario-hogar/internal/domain/repository"
)

// TransactionUseCase casos de uso del libro de ingresos/gastos.
type TransactionUseCase struct {
	repo repository.TransactionRepository
	now  func() time.Time
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo, now: time.Now}
}

// List devuelve las transacciones por fecha descendente junto con los totales.
func (uc *TransactionUseCase) List(ctx context.Context, tenantID string) (*dto.TransactionListResponse, error) {
	txs, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	inventory.SortLedger(txs)
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransactionResponse(t))
	}
	return &dto.TransactionListResponse{Items: out, Summary: ToLedgerSummary(inventory.SummarizeLedger(txs))}, nil
}

// Create registra un ingreso o gasto. Date vacío => fecha de hoy.
func (uc *TransactionUseCase) Create(ctx context.Context, tenantID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	typ := strings.TrimSpace(in.Type)
	if typ != entity.TransactionIncome && typ != entity.TransactionExpense {
		return nil, fmt.Errorf("%w: type debe ser income o expense", domain.ErrInvalidInput)
	}
	if in.Amount == nil {
		return nil, fmt.Errorf("%w: amount es obligatorio", domain.ErrInvalidInput)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount no puede ser negativo", domain.ErrInvalidInput)
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category es obligatorio", domain.ErrInvalidInput)
	}
	now := uc.now()
	today := now.UTC()
	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if s := strings.TrimSpace(in.Date); s != "" {
		d, err := time.Parse(dto.DateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("%w: date debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
		}
		date = d
	}
	t := &entity.Transaction{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Type:        typ,
		Amount:      *in.Amount,
		Category:    category,
		Description: strings.TrimSpace(in.Description),
		Date:        date,
		CreatedAt:   now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(t)
	return &resp, nil
}

// ToLedgerSummary mapea el resumen de dominio a su DTO.
func ToLedgerSummary(s inventory.LedgerSummary) dto.LedgerSummary {
	return dto.LedgerSummary{TotalIncome: s.TotalIncome, TotalExpense: s.TotalExpense, NetBalance: s.NetBalance}
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date.Format(dto.DateLayout),
		CreatedAt:   t.CreatedAt,
	}
}
