package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUserOrdersQueryIsNotConstructed = errors.New(
	"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
)

// GetUserOrdersQuery retrieves one page of a customer's order history,
// newest first. A status of 0 matches every status.
type GetUserOrdersQuery struct {
	userID kernel.UUID
	status int
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates a paginated history query.
// page starts at 1; size must be positive.
func NewGetUserOrdersQuery(userID kernel.UUID, status, page, size int) (GetUserOrdersQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserOrdersQuery{}, err
	}
	if page < 1 {
		return GetUserOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}
	if size < 1 {
		return GetUserOrdersQuery{}, errs.NewValueIsInvalidError("size")
	}

	return GetUserOrdersQuery{
		userID: userID,
		status: status,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

// UserID returns the customer whose history is requested.
func (q GetUserOrdersQuery) UserID() kernel.UUID { return q.userID }

// Status returns the status filter; 0 means any.
func (q GetUserOrdersQuery) Status() int { return q.status }

// Page returns the 1-based page index.
func (q GetUserOrdersQuery) Page() int { return q.page }

// Size returns the page size.
func (q GetUserOrdersQuery) Size() int { return q.size }

// UserOrderResponse is one row of a customer's order history.
type UserOrderResponse struct {
	ID        string
	Number    string
	Status    int
	PayStatus int
	Amount    decimal.Decimal
	OrderTime time.Time
}

// GetUserOrdersQueryResponse is one page of order history with the total
// match count for pagination.
type GetUserOrdersQueryResponse struct {
	Total  int64
	Orders []UserOrderResponse
}
