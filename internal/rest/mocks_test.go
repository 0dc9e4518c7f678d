package rest

import (
	"context"

	"bookshop-be/internal/auth"
	"bookshop-be/internal/book"
	"bookshop-be/internal/cart"
	"bookshop-be/internal/category"
	"bookshop-be/internal/order"
	"bookshop-be/internal/shipping"
	"bookshop-be/internal/user"
	"bookshop-be/internal/utils"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, in user.RegisterInput) (*auth.Session, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*auth.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

type MockUserService struct{ mock.Mock }

func (m *MockUserService) Register(ctx context.Context, in user.RegisterInput) (*user.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) UpdateShipping(ctx context.Context, p user.UpdateShippingParams) (*user.User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockCategoryService struct{ mock.Mock }

func (m *MockCategoryService) List(ctx context.Context, page int) (utils.Page[*category.Category], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(utils.Page[*category.Category]), args.Error(1)
}

func (m *MockCategoryService) Random(ctx context.Context, count int) ([]*category.Category, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *MockCategoryService) GetBySlug(ctx context.Context, slug string) (*category.Detail, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Detail), args.Error(1)
}

type MockBookService struct{ mock.Mock }

func (m *MockBookService) List(ctx context.Context, page int) (utils.Page[*book.Book], error) {
	args := m.Called(ctx, page)
	return args.Get(0).(utils.Page[*book.Book]), args.Error(1)
}

func (m *MockBookService) ListByCategory(ctx context.Context, categoryID uint, page int) (utils.Page[*book.Book], error) {
	args := m.Called(ctx, categoryID, page)
	return args.Get(0).(utils.Page[*book.Book]), args.Error(1)
}

func (m *MockBookService) Search(ctx context.Context, keyword string, page int) (utils.Page[*book.Book], error) {
	args := m.Called(ctx, keyword, page)
	return args.Get(0).(utils.Page[*book.Book]), args.Error(1)
}

func (m *MockBookService) Top(ctx context.Context, count int) ([]*book.Book, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*book.Book), args.Error(1)
}

func (m *MockBookService) GetBySlug(ctx context.Context, slug string) (*book.Book, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*book.Book), args.Error(1)
}

func (m *MockBookService) GetByIDs(ctx context.Context, ids []uint) (map[uint]*book.Book, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uint]*book.Book), args.Error(1)
}

func (m *MockBookService) Create(ctx context.Context, in book.CreateInput) (*book.Book, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*book.Book), args.Error(1)
}

func (m *MockBookService) Update(ctx context.Context, in book.UpdateInput) (*book.Book, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*book.Book), args.Error(1)
}

type MockCartService struct{ mock.Mock }

func (m *MockCartService) Reconcile(ctx context.Context, lines cart.Lines) ([]cart.Item, error) {
	args := m.Called(ctx, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.Item), args.Error(1)
}

func (m *MockCartService) TotalWeight(ctx context.Context, lines cart.Lines) (int, error) {
	args := m.Called(ctx, lines)
	return args.Int(0), args.Error(1)
}

type MockShippingService struct{ mock.Mock }

func (m *MockShippingService) Couriers() []shipping.Courier {
	return m.Called().Get(0).([]shipping.Courier)
}

func (m *MockShippingService) Provinces(ctx context.Context) ([]shipping.Province, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.Province), args.Error(1)
}

func (m *MockShippingService) Cities(ctx context.Context, provinceID int) ([]shipping.City, error) {
	args := m.Called(ctx, provinceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.City), args.Error(1)
}

func (m *MockShippingService) Quote(ctx context.Context, req shipping.CostRequest) ([]shipping.Quote, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shipping.Quote), args.Error(1)
}

func (m *MockShippingService) QuoteCart(ctx context.Context, destination int, courier string, lines cart.Lines) (*shipping.CartQuote, error) {
	args := m.Called(ctx, destination, courier, lines)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipping.CartQuote), args.Error(1)
}

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) PlaceOrder(ctx context.Context, userID uint, in order.PlaceInput) (*order.Order, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) ListByUser(ctx context.Context, userID uint) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
