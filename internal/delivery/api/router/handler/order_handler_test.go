package handler

import (
	"context"
	"net/http"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrders struct {
	usecase.OrderUsecase

	png []byte
	err error
}

func (s *stubOrders) InvoiceQRCode(context.Context, string) ([]byte, error) {
	return s.png, s.err
}

func TestOrderHandler_InvoiceQRCode(t *testing.T) {
	h := NewOrderHandler(OrderHandlerParams{OrderUC: &stubOrders{png: []byte{0x89, 'P', 'N', 'G'}}})

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/orders/o1/invoice/qr.png", "")
	c.SetParamNames("id")
	c.SetParamValues("o1")
	require.NoError(t, h.InvoiceQRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
}

func TestOrderHandler_InvoiceQRCode_SignInRequired(t *testing.T) {
	h := NewOrderHandler(OrderHandlerParams{OrderUC: &stubOrders{err: domainerrors.ErrSignInRequired}})

	c, rec := newJSONContext(newTestEcho(), http.MethodGet, "/orders/o1/invoice/qr.png", "")
	require.NoError(t, h.InvoiceQRCode(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
