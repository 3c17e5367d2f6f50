package inventory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/domain"
	"github.com/jhoicas/inventario-hogar/internal/domain/entity"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

// Columnas de la cabecera CSV (sin distinguir mayúsculas, en cualquier orden).
const (
	colName          = "name"
	colCategory      = "category"
	colQuantity      = "quantity"
	colUnit          = "unit"
	colPricePerUnit  = "priceperunit"
	colLowStockLimit = "lowstocklimit"
)

const sampleCSV = "name,category,quantity,unit,pricePerUnit,lowStockLimit\n" +
	"Milk,Dairy,3,Litres,450,1\n" +
	"Sugar,Groceries,5,Kg,1200,2\n"

// SampleCSV devuelve un archivo de ejemplo para la carga masiva.
func SampleCSV() string { return sampleCSV }

// ItemCreator crea un artículo validado (implementado por usecase.ItemUseCase).
type ItemCreator interface {
	Create(ctx context.Context, tenantID string, in dto.CreateItemRequest) (*dto.ItemResponse, error)
}

// ImportUseCase carga masiva de artículos. Cada fila se procesa de forma aislada:
// las incompletas se omiten, las inválidas o con error de persistencia se reportan como fallidas.
type ImportUseCase struct {
	items ItemCreator
	log   *logger.Logger
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(items ItemCreator, log *logger.Logger) *ImportUseCase {
	return &ImportUseCase{items: items, log: log}
}

// ImportCSV lee el CSV y crea un artículo por fila completa. Solo devuelve error si la cabecera
// es inválida o el contexto se cancela; los problemas de cada fila quedan en el resultado.
func (uc *ImportUseCase) ImportCSV(ctx context.Context, tenantID string, r io.Reader) (*dto.ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: CSV vacío", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: cabecera CSV: %v", domain.ErrInvalidInput, err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{colName, colCategory, colQuantity} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %q", domain.ErrInvalidInput, required)
		}
	}

	res := &dto.ImportResult{}
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.StartLine
			}
			fail(res, line, err)
			continue
		}
		line, _ := cr.FieldPos(0)
		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		raw := rawRow{
			name:          field(colName),
			category:      field(colCategory),
			quantity:      field(colQuantity),
			unit:          field(colUnit),
			pricePerUnit:  field(colPricePerUnit),
			lowStockLimit: field(colLowStockLimit),
		}
		uc.importRow(ctx, tenantID, line, raw, res)
	}
	uc.logResult(tenantID, "csv", res)
	return res, nil
}

// ImportRows crea artículos desde una lista JSON con el mismo aislamiento por fila que ImportCSV.
// Row en los fallos es la posición 1-based en la lista.
func (uc *ImportUseCase) ImportRows(ctx context.Context, tenantID string, rows []dto.CreateItemRequest) (*dto.ImportResult, error) {
	res := &dto.ImportResult{}
	for i, in := range rows {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		row := i + 1
		if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" || in.Quantity == nil {
			skip(res, row)
			continue
		}
		if _, err := uc.items.Create(ctx, tenantID, in); err != nil {
			fail(res, row, err)
			continue
		}
		res.Created++
	}
	uc.logResult(tenantID, "json", res)
	return res, nil
}

type rawRow struct {
	name, category, quantity, unit, pricePerUnit, lowStockLimit string
}

func (uc *ImportUseCase) importRow(ctx context.Context, tenantID string, row int, raw rawRow, res *dto.ImportResult) {
	if raw.name == "" || raw.category == "" || raw.quantity == "" {
		skip(res, row)
		return
	}
	in, err := parseRow(raw)
	if err != nil {
		fail(res, row, err)
		return
	}
	if _, err := uc.items.Create(ctx, tenantID, in); err != nil {
		fail(res, row, err)
		return
	}
	res.Created++
}

func parseRow(raw rawRow) (dto.CreateItemRequest, error) {
	in := dto.CreateItemRequest{Name: raw.name, Category: raw.category, Unit: canonicalUnit(raw.unit)}

	qty, err := strconv.ParseInt(raw.quantity, 10, 64)
	if err != nil {
		return in, fmt.Errorf("%w: quantity %q no es un entero", domain.ErrInvalidInput, raw.quantity)
	}
	in.Quantity = &qty

	if raw.pricePerUnit != "" {
		price, err := decimal.NewFromString(raw.pricePerUnit)
		if err != nil {
			return in, fmt.Errorf("%w: pricePerUnit %q no es numérico", domain.ErrInvalidInput, raw.pricePerUnit)
		}
		in.PricePerUnit = &price
	}
	// Vacío => nil: aplica el umbral por defecto (1), no 0 (que solo alertaría al agotarse).
	if raw.lowStockLimit != "" {
		l, err := strconv.ParseInt(raw.lowStockLimit, 10, 64)
		if err != nil {
			return in, fmt.Errorf("%w: lowStockLimit %q no es un entero", domain.ErrInvalidInput, raw.lowStockLimit)
		}
		in.LowStockLimit = &l
	}
	return in, nil
}

// canonicalUnit normaliza mayúsculas ("kg" => "Kg"); las desconocidas se devuelven tal cual para que fallen en validación.
func canonicalUnit(u string) string {
	for _, known := range entity.Units {
		if strings.EqualFold(known, u) {
			return known
		}
	}
	return u
}

func skip(res *dto.ImportResult, row int) {
	res.Skipped++
	res.SkippedRows = append(res.SkippedRows, row)
}

func fail(res *dto.ImportResult, row int, err error) {
	res.Failed++
	res.Failures = append(res.Failures, dto.RowFailure{Row: row, Error: err.Error()})
}

func (uc *ImportUseCase) logResult(tenantID, source string, res *dto.ImportResult) {
	uc.log.Info().
		Str("tenant_id", tenantID).
		Str("source", source).
		Int("created", res.Created).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Msg("importación de artículos finalizada")
}
