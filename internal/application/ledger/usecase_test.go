package ledger_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/construstock/internal/application/ledger"
	"github.com/tu-usuario/construstock/internal/domain"
	"github.com/tu-usuario/construstock/internal/domain/entity"
	"github.com/tu-usuario/construstock/internal/domain/repository"
)

// newLedger arma un caso de uso del ledger sobre un store en memoria con
// un material sembrado (id=1, stock inicial según el parámetro).
func newLedger(stock int64) (*ledger.UseCase, *fakeStore) {
	s := newFakeStore()
	s.addItem(&entity.Item{
		ID:            1,
		ItemCode:      "CEM-001",
		Name:          "Cemento gris 50kg",
		Unit:          "saco",
		CurrentStock:  stock,
		MinStockLevel: 10,
		UnitCost:      decimal.NewFromInt(25000),
	})
	projects := &fakeProjectRepo{projects: map[int64]*entity.Project{
		7: {ID: 7, Name: "Torre Norte", Status: entity.ProjectStatusActive},
	}}
	uc := ledger.NewUseCase(&fakeTxRunner{s: s}, &fakeItemRepo{s: s}, &fakeTxRepo{s: s}, projects)
	return uc, s
}

// El signo del delta lo determina el tipo: in=+q, out=-q, adjustment=+q,
// transfer=0 (queda en el log pero no mueve el contador).
func TestRecordTransaction_SignosPorTipo(t *testing.T) {
	cases := []struct {
		txType    string
		quantity  int64
		wantStock int64
	}{
		{entity.TransactionTypeIn, 40, 140},
		{entity.TransactionTypeOut, 40, 60},
		{entity.TransactionTypeAdjustment, 40, 140},
		{entity.TransactionTypeTransfer, 40, 100},
	}
	for _, tc := range cases {
		t.Run(tc.txType, func(t *testing.T) {
			uc, s := newLedger(100)
			tx, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
				Type:        tc.txType,
				InventoryID: 1,
				Quantity:    tc.quantity,
			})
			require.NoError(t, err)
			require.NotNil(t, tx)

			assert.Equal(t, tc.wantStock, s.items[1].CurrentStock,
				"stock resultante para %s", tc.txType)
			require.Len(t, s.txs, 1, "cada transacción deja exactamente un registro")
			assert.Equal(t, tc.quantity, s.txs[0].Quantity,
				"la cantidad se guarda siempre como magnitud positiva")
		})
	}
}

func TestRecordTransaction_TipoInvalido(t *testing.T) {
	uc, s := newLedger(100)
	_, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Type:        "donation",
		InventoryID: 1,
		Quantity:    5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.txs)
}

func TestRecordTransaction_CantidadNoPositiva(t *testing.T) {
	uc, _ := newLedger(100)
	for _, q := range []int64{0, -5} {
		_, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
			Type:        entity.TransactionTypeIn,
			InventoryID: 1,
			Quantity:    q,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity=%d", q)
	}
}

func TestRecordTransaction_MaterialInexistente(t *testing.T) {
	uc, _ := newLedger(100)
	_, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Type:        entity.TransactionTypeIn,
		InventoryID: 999,
		Quantity:    5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una salida mayor al disponible falla sin efectos: ni registro en el log
// ni cambio en el contador, y el error lleva disponible y solicitado.
func TestRecordTransaction_StockInsuficiente_SinEfectos(t *testing.T) {
	uc, s := newLedger(100)

	// Primero una salida válida: 100 - 30 = 70.
	_, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Type:        entity.TransactionTypeOut,
		InventoryID: 1,
		Quantity:    30,
	})
	require.NoError(t, err)
	require.Equal(t, int64(70), s.items[1].CurrentStock)

	// Ahora una salida imposible.
	_, err = uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Type:        entity.TransactionTypeOut,
		InventoryID: 1,
		Quantity:    1000,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	var stockErr *domain.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, int64(70), stockErr.Available)
	assert.Equal(t, int64(1000), stockErr.Requested)

	assert.Equal(t, int64(70), s.items[1].CurrentStock, "el contador no debe moverse")
	assert.Len(t, s.txs, 1, "el log no debe crecer")
}

// out por exactamente el stock disponible deja el contador en cero.
func TestRecordTransaction_SalidaExacta(t *testing.T) {
	uc, s := newLedger(50)
	_, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Type:        entity.TransactionTypeOut,
		InventoryID: 1,
		Quantity:    50,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.items[1].CurrentStock)
}

func TestRecordTransaction_TotalCost(t *testing.T) {
	uc, s := newLedger(100)
	unitCost := decimal.NewFromFloat(25000.50)
	tx, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Type:        entity.TransactionTypeIn,
		InventoryID: 1,
		Quantity:    4,
		UnitCost:    &unitCost,
	})
	require.NoError(t, err)
	require.NotNil(t, tx.TotalCost)
	assert.True(t, tx.TotalCost.Equal(decimal.NewFromInt(100002)),
		"total_cost = quantity × unit_cost; got %s", tx.TotalCost)
	require.NotNil(t, s.txs[0].TotalCost)
}

// Sin unit_cost el total_cost queda nulo (no cero).
func TestRecordTransaction_SinUnitCost_TotalCostNulo(t *testing.T) {
	uc, _ := newLedger(100)
	tx, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Type:        entity.TransactionTypeIn,
		InventoryID: 1,
		Quantity:    4,
	})
	require.NoError(t, err)
	assert.Nil(t, tx.UnitCost)
	assert.Nil(t, tx.TotalCost)
}

func TestRecordTransaction_UnitCostNegativo(t *testing.T) {
	uc, _ := newLedger(100)
	negative := decimal.NewFromInt(-1)
	_, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Type:        entity.TransactionTypeIn,
		InventoryID: 1,
		Quantity:    4,
		UnitCost:    &negative,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// transfer con cantidad mayor al stock no falla: su delta es cero y no
// pasa por la verificación de salidas.
func TestRecordTransaction_TransferNoVerificaStock(t *testing.T) {
	uc, s := newLedger(10)
	tx, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Type:        entity.TransactionTypeTransfer,
		InventoryID: 1,
		Quantity:    500,
	})
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, int64(10), s.items[1].CurrentStock)
	assert.Len(t, s.txs, 1)
}

// El contador denormalizado converge con la suma de deltas del log.
func TestRecordTransaction_ContadorConvergeConElLog(t *testing.T) {
	uc, s := newLedger(0)
	steps := []struct {
		txType   string
		quantity int64
	}{
		{entity.TransactionTypeIn, 120},
		{entity.TransactionTypeOut, 45},
		{entity.TransactionTypeAdjustment, 5},
		{entity.TransactionTypeTransfer, 30},
		{entity.TransactionTypeOut, 20},
	}
	for _, st := range steps {
		_, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
			Type:        st.txType,
			InventoryID: 1,
			Quantity:    st.quantity,
		})
		require.NoError(t, err)
	}

	var sum int64
	for _, tx := range s.txs {
		sum += entity.StockDelta(tx.Type, tx.Quantity)
	}
	assert.Equal(t, sum, s.items[1].CurrentStock)
	assert.Equal(t, int64(60), s.items[1].CurrentStock)
}

func TestListTransactions_Paginacion(t *testing.T) {
	uc, _ := newLedger(1000)
	for i := 0; i < 5; i++ {
		_, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
			Type:        entity.TransactionTypeOut,
			InventoryID: 1,
			Quantity:    10,
		})
		require.NoError(t, err)
	}

	page, err := uc.ListTransactions(context.Background(), repository.TransactionFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page.Transactions, 2)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.Pages)

	// Página fuera de rango: vacía pero sin error.
	page, err = uc.ListTransactions(context.Background(), repository.TransactionFilter{}, 99, 2)
	require.NoError(t, err)
	assert.Empty(t, page.Transactions)

	// Valores no positivos caen a los defaults.
	page, err = uc.ListTransactions(context.Background(), repository.TransactionFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.Limit)
}

// El listado llega del más reciente al más antiguo.
func TestListTransactions_MasRecientePrimero(t *testing.T) {
	uc, _ := newLedger(1000)
	for _, q := range []int64{1, 2, 3} {
		_, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
			Type:        entity.TransactionTypeIn,
			InventoryID: 1,
			Quantity:    q,
		})
		require.NoError(t, err)
	}
	page, err := uc.ListTransactions(context.Background(), repository.TransactionFilter{}, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Transactions, 3)
	assert.Equal(t, int64(3), page.Transactions[0].Quantity)
	assert.Equal(t, int64(1), page.Transactions[2].Quantity)
}

// end_date incluye el día completo: una transacción registrada durante el día
// entra aunque el filtro llegue como la medianoche de esa fecha (el cliente
// manda YYYY-MM-DD). Lo mismo para start_date.
func TestListTransactions_FiltroDeFechas_DiaCompleto(t *testing.T) {
	uc, s := newLedger(1000)
	_, err := uc.RecordTransaction(context.Background(), ledger.RecordTransactionInput{
		Type:        entity.TransactionTypeIn,
		InventoryID: 1,
		Quantity:    5,
	})
	require.NoError(t, err)

	recorded := s.txs[0].TransactionDate
	midnight := time.Date(recorded.Year(), recorded.Month(), recorded.Day(), 0, 0, 0, 0, recorded.Location())

	// end_date = medianoche del mismo día: la transacción posterior en el día
	// debe incluirse.
	page, err := uc.ListTransactions(context.Background(), repository.TransactionFilter{EndDate: &midnight}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Transactions, 1)
	assert.Equal(t, 1, page.Total)

	// start_date = medianoche del mismo día también la incluye.
	page, err = uc.ListTransactions(context.Background(), repository.TransactionFilter{StartDate: &midnight}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, page.Transactions, 1)

	// Fuera del rango por un día: queda excluida.
	dayBefore := midnight.AddDate(0, 0, -1)
	dayAfter := midnight.AddDate(0, 0, 1)
	page, err = uc.ListTransactions(context.Background(), repository.TransactionFilter{EndDate: &dayBefore}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Transactions)
	page, err = uc.ListTransactions(context.Background(), repository.TransactionFilter{StartDate: &dayAfter}, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Transactions)
}

func TestGetTransaction_NoExiste(t *testing.T) {
	uc, _ := newLedger(100)
	_, err := uc.GetTransaction(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
