package inventory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-hogar/internal/application/dto"
	"github.com/jhoicas/inventario-hogar/internal/application/inventory"
	"github.com/jhoicas/inventario-hogar/internal/domain"
	"github.com/jhoicas/inventario-hogar/pkg/logger"
)

// fakeCreator registra las entradas recibidas; falla para los nombres en failOn.
type fakeCreator struct {
	created []dto.CreateItemRequest
	failOn  map[string]error
}

func (f *fakeCreator) Create(_ context.Context, _ string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if err, ok := f.failOn[in.Name]; ok {
		return nil, err
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	f.created = append(f.created, in)
	return &dto.ItemResponse{Name: in.Name}, nil
}

func newImport(failOn map[string]error) (*inventory.ImportUseCase, *fakeCreator) {
	fc := &fakeCreator{failOn: failOn}
	return inventory.NewImportUseCase(fc, logger.Nop()), fc
}

func TestImportCSV_EjemploCompleto(t *testing.T) {
	uc, fc := newImport(nil)
	res, err := uc.ImportCSV(context.Background(), "t1", strings.NewReader(inventory.SampleCSV()))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Zero(t, res.Skipped)
	assert.Zero(t, res.Failed)

	require.Len(t, fc.created, 2)
	milk := fc.created[0]
	assert.Equal(t, "Milk", milk.Name)
	assert.Equal(t, int64(3), *milk.Quantity)
	assert.Equal(t, "Litres", milk.Unit)
	assert.Equal(t, "450", milk.PricePerUnit.String())
	assert.Equal(t, int64(1), *milk.LowStockLimit)
}

func TestImportCSV_OmitidasFallidasYCreadas(t *testing.T) {
	csvData := "Quantity,NAME,category,unit,pricePerUnit,lowStockLimit\n" +
		"3,Milk,Dairy,litres,450,\n" + // línea 2: creada, unidad normalizada, sin umbral
		",Bread,Bakery,,,\n" + // línea 3: omitida (sin cantidad)
		"2,,Bakery,,,\n" + // línea 4: omitida (sin nombre)
		"abc,Eggs,Dairy,,,\n" + // línea 5: fallida (cantidad no numérica)
		"1,Salt,Pantry,,x1,\n" + // línea 6: fallida (precio inválido)
		"0,Tea,Drinks,,,0\n" + // línea 7: creada con cantidad 0
		"4,Oil,Pantry,,,\n" // línea 8: fallida en persistencia
	uc, fc := newImport(map[string]error{"Oil": errors.New("conexión perdida")})

	res, err := uc.ImportCSV(context.Background(), "t1", strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 2, res.Skipped)
	assert.Equal(t, []int{3, 4}, res.SkippedRows)
	assert.Equal(t, 3, res.Failed)
	require.Len(t, res.Failures, 3)
	assert.Equal(t, 5, res.Failures[0].Row)
	assert.Equal(t, 6, res.Failures[1].Row)
	assert.Equal(t, 8, res.Failures[2].Row)
	assert.Contains(t, res.Failures[2].Error, "conexión perdida")

	require.Len(t, fc.created, 2)
	assert.Equal(t, "Litres", fc.created[0].Unit)
	assert.Nil(t, fc.created[0].LowStockLimit)
	assert.Nil(t, fc.created[1].PricePerUnit)
	assert.Equal(t, int64(0), *fc.created[1].LowStockLimit)
}

func TestImportCSV_UmbralVacioUsaDefecto(t *testing.T) {
	uc, fc := newImport(nil)
	csvData := "name,category,quantity,lowStockLimit\nMilk,Dairy,1,\nSalt,Pantry,1,0\n"

	res, err := uc.ImportCSV(context.Background(), "t1", strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)

	require.Len(t, fc.created, 2)
	assert.Nil(t, fc.created[0].LowStockLimit, "sin valor aplica el umbral por defecto")
	require.NotNil(t, fc.created[1].LowStockLimit)
	assert.Equal(t, int64(0), *fc.created[1].LowStockLimit)
}

func TestImportCSV_CabeceraInvalida(t *testing.T) {
	uc, _ := newImport(nil)
	_, err := uc.ImportCSV(context.Background(), "t1", strings.NewReader("name,category\nMilk,Dairy\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ImportCSV(context.Background(), "t1", strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportRows_MismoAislamiento(t *testing.T) {
	q := func(v int64) *int64 { return &v }
	uc, fc := newImport(nil)
	res, err := uc.ImportRows(context.Background(), "t1", []dto.CreateItemRequest{
		{Name: "Milk", Category: "Dairy", Quantity: q(3)},
		{Name: "Bread", Category: "Bakery"},
		{Name: "Bad", Category: "X", Quantity: q(-2)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, []int{2}, res.SkippedRows)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, 3, res.Failures[0].Row)
	assert.Len(t, fc.created, 1)
}
