package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	orderdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func (f *serverFixture) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	f.srv.engine.ServeHTTP(rec, req)
	return rec
}

func (f *serverFixture) seedOrder(t *testing.T, status orderdomain.Status) *orderdomain.Order {
	t.Helper()

	now := f.clock.Now()
	order := &orderdomain.Order{
		ID:             f.node.Generate(),
		SubscriptionID: f.node.Generate(),
		CustomerID:     f.node.Generate(),
		Currency:       "MAD",
		TotalMAD:       decimal.RequireFromString("1746.00"),
		Status:         status,
		Calculation:    datatypes.JSON(`{}`),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, f.db.Create(order).Error)
	return order
}

func TestExportOrdersCSV_StreamsAttachment(t *testing.T) {
	f := newServerFixture(t)
	order := f.seedOrder(t, orderdomain.StatusConfirmed)

	rec := f.get(t, "/admin/api/orders/export")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], order.ID.String())
	assert.Contains(t, lines[1], "1746.00")
}

func TestExportOrdersCSV_ErrorStaysJSON(t *testing.T) {
	f := newServerFixture(t)
	f.seedOrder(t, orderdomain.StatusPending)

	rec := f.get(t, "/admin/api/orders/export?customer_id=bogus")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	assert.NotContains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
	assert.JSONEq(t, `{"error": "invalid customer id"}`, rec.Body.String())
}
