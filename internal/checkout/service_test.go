package checkout

import (
	"context"
	"errors"
	"testing"

	"bijoux-be/internal/cart"
	"bijoux-be/internal/catalog"
	"bijoux-be/internal/customer"
	"bijoux-be/internal/mail"
	"bijoux-be/internal/order"
	"bijoux-be/internal/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) GetProduct(ctx context.Context, productID string) (*catalog.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockCatalog) ListCategories(ctx context.Context) ([]*catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Category), args.Error(1)
}

func (m *MockCatalog) ResolvePrice(ctx context.Context, productID, size, color string) (*catalog.VariantPrice, error) {
	args := m.Called(ctx, productID, size, color)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.VariantPrice), args.Error(1)
}

type MockCustomerSvc struct {
	mock.Mock
}

func (m *MockCustomerSvc) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerSvc) ListAddresses(ctx context.Context, customerID uint) ([]*customer.Address, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Address), args.Error(1)
}

func (m *MockCustomerSvc) UpsertAddress(ctx context.Context, customerID uint, input customer.UpsertAddressInput) (*customer.Address, error) {
	args := m.Called(ctx, customerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Address), args.Error(1)
}

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	if args.Error(0) == nil {
		o.ID = 10
	}
	return args.Error(0)
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepo) ListByCustomer(ctx context.Context, customerID uint) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepo) List(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepo) UpdateStatus(ctx context.Context, id uint, from, to order.Status) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}

type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Charge(ctx context.Context, amount decimal.Decimal, attempt payment.Attempt) payment.Record {
	args := m.Called(ctx, amount, attempt)
	return args.Get(0).(payment.Record)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, to, template string, args mail.TemplateArgs) error {
	a := m.Called(ctx, to, template, args)
	return a.Error(0)
}

type fixture struct {
	cat    *MockCatalog
	cust   *MockCustomerSvc
	orders *MockOrderRepo
	proc   *MockProcessor
	sender *MockSender
	svc    Service
}

func newFixture() *fixture {
	f := &fixture{
		cat:    new(MockCatalog),
		cust:   new(MockCustomerSvc),
		orders: new(MockOrderRepo),
		proc:   new(MockProcessor),
		sender: new(MockSender),
	}
	f.svc = NewService(f.cat, f.cust, f.orders, f.proc, f.sender)
	return f
}

func successRecord() payment.Record {
	return payment.Record{
		TransactionID: "tx-1",
		Status:        payment.StatusSuccess,
		Message:       "charge approved",
	}
}

func declinedRecord() payment.Record {
	return payment.Record{
		TransactionID: "tx-2",
		Status:        payment.StatusFailed,
		Message:       "card declined",
	}
}

func ringVariant() *catalog.VariantPrice {
	return &catalog.VariantPrice{
		ProductID: "ring-1",
		Name:      "Solitaire Ring",
		UnitPrice: decimal.RequireFromString("500000"),
		Size:      "6",
		Color:     "gold",
	}
}

func checkoutParams() Params {
	return Params{
		Customer: customer.Customer{ID: 7, Name: "An Tran", Email: "an@bijoux.test"},
		Cart: cart.Cart{Lines: []cart.Line{
			{Product: cart.ProductRef{ID: "ring-1"}, Quantity: 2, Size: "6", Color: "gold"},
		}},
		Shipping: customer.UpsertAddressInput{
			RecipientName: "An Tran",
			Street:        "12 Hang Bac",
			District:      "Hoan Kiem",
			City:          "Hanoi",
			Country:       "VN",
		},
		DeliveryMethod: "standard",
		Payment:        payment.Attempt{TestMode: true},
	}
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyCartTouchesNothing", func(t *testing.T) {
		f := newFixture()

		_, err := f.svc.Submit(ctx, Params{Customer: customer.Customer{ID: 7}})
		assert.ErrorIs(t, err, ErrEmptyCart)
		f.proc.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.cust.AssertNotCalled(t, "UpsertAddress", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RecomputesTotalFromCatalogPrices", func(t *testing.T) {
		f := newFixture()
		params := checkoutParams()
		// Whatever the submitted line claimed, the catalog price wins.
		params.Cart.Lines[0].Product.UnitPrice = decimal.RequireFromString("1")

		f.cat.On("ResolvePrice", ctx, "ring-1", "6", "gold").Return(ringVariant(), nil)
		f.proc.On("Charge", ctx, mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.RequireFromString("1000000"))
		}), params.Payment).Return(successRecord())
		f.cust.On("UpsertAddress", ctx, uint(7), params.Shipping).Return(&customer.Address{}, nil)
		f.orders.On("Create", ctx, mock.Anything).Return(nil)
		f.sender.On("Send", ctx, "an@bijoux.test", mail.TemplateOrderConfirmed, mock.Anything).Return(nil)

		o, err := f.svc.Submit(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status)
		assert.True(t, o.Total.Equal(decimal.RequireFromString("1000000")))
		require.Len(t, o.Items, 1)
		assert.Equal(t, "Solitaire Ring", o.Items[0].ProductName)
		assert.Equal(t, "tx-1", o.Payment.TransactionID)
		f.proc.AssertExpectations(t)
		f.orders.AssertExpectations(t)
	})

	t.Run("UnresolvableLineRejectsTheWholeCheckout", func(t *testing.T) {
		f := newFixture()
		params := checkoutParams()

		f.cat.On("ResolvePrice", ctx, "ring-1", "6", "gold").Return(nil, catalog.ErrNotFound)

		_, err := f.svc.Submit(ctx, params)
		assert.ErrorIs(t, err, ErrInvalidLine)
		f.proc.AssertNotCalled(t, "Charge", mock.Anything, mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("DeclinedPaymentIsFullyInert", func(t *testing.T) {
		f := newFixture()
		params := checkoutParams()

		f.cat.On("ResolvePrice", ctx, "ring-1", "6", "gold").Return(ringVariant(), nil)
		f.proc.On("Charge", ctx, mock.Anything, params.Payment).Return(declinedRecord())

		_, err := f.svc.Submit(ctx, params)

		var declined *PaymentDeclinedError
		require.ErrorAs(t, err, &declined)
		assert.Equal(t, "tx-2", declined.Record.TransactionID)
		assert.Equal(t, "card declined", declined.Record.Message)
		f.cust.AssertNotCalled(t, "UpsertAddress", mock.Anything, mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("AddressUpsertFailureDoesNotBlockTheOrder", func(t *testing.T) {
		f := newFixture()
		params := checkoutParams()

		f.cat.On("ResolvePrice", ctx, "ring-1", "6", "gold").Return(ringVariant(), nil)
		f.proc.On("Charge", ctx, mock.Anything, params.Payment).Return(successRecord())
		f.cust.On("UpsertAddress", ctx, uint(7), params.Shipping).Return(nil, errors.New("db error"))
		f.orders.On("Create", ctx, mock.Anything).Return(nil)
		f.sender.On("Send", ctx, "an@bijoux.test", mail.TemplateOrderConfirmed, mock.Anything).Return(nil)

		o, err := f.svc.Submit(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "12 Hang Bac", o.Shipping.Street)
	})

	t.Run("OrderPersistenceFailureAfterPayment", func(t *testing.T) {
		f := newFixture()
		params := checkoutParams()

		f.cat.On("ResolvePrice", ctx, "ring-1", "6", "gold").Return(ringVariant(), nil)
		f.proc.On("Charge", ctx, mock.Anything, params.Payment).Return(successRecord())
		f.cust.On("UpsertAddress", ctx, uint(7), params.Shipping).Return(&customer.Address{}, nil)
		f.orders.On("Create", ctx, mock.Anything).Return(errors.New("db error"))

		_, err := f.svc.Submit(ctx, params)
		assert.ErrorIs(t, err, ErrPersistence)
		f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MailFailureDoesNotFailTheCheckout", func(t *testing.T) {
		f := newFixture()
		params := checkoutParams()

		f.cat.On("ResolvePrice", ctx, "ring-1", "6", "gold").Return(ringVariant(), nil)
		f.proc.On("Charge", ctx, mock.Anything, params.Payment).Return(successRecord())
		f.cust.On("UpsertAddress", ctx, uint(7), params.Shipping).Return(&customer.Address{}, nil)
		f.orders.On("Create", ctx, mock.Anything).Return(nil)
		f.sender.On("Send", ctx, "an@bijoux.test", mail.TemplateOrderConfirmed, mock.Anything).Return(errors.New("smtp down"))

		o, err := f.svc.Submit(ctx, params)
		require.NoError(t, err)
		assert.NotZero(t, o.ID)
	})

	t.Run("ShippingSnapshotIsFrozenOntoTheOrder", func(t *testing.T) {
		f := newFixture()
		params := checkoutParams()

		f.cat.On("ResolvePrice", ctx, "ring-1", "6", "gold").Return(ringVariant(), nil)
		f.proc.On("Charge", ctx, mock.Anything, params.Payment).Return(successRecord())
		f.cust.On("UpsertAddress", ctx, uint(7), params.Shipping).Return(&customer.Address{}, nil)
		f.orders.On("Create", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Shipping.City == "Hanoi" && o.Shipping.RecipientName == "An Tran" &&
				o.Status == order.StatusConfirmed
		})).Return(nil)
		f.sender.On("Send", ctx, "an@bijoux.test", mail.TemplateOrderConfirmed, mock.Anything).Return(nil)

		_, err := f.svc.Submit(ctx, params)
		require.NoError(t, err)
		f.orders.AssertExpectations(t)
	})
}
