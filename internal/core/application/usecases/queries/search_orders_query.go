package queries

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery is the merchant's condition search over all orders.
// Every filter is optional: empty strings match everything, a status of 0
// matches every status, nil time bounds leave that side open.
type SearchOrdersQuery struct {
	number string
	phone  string
	status int
	from   *time.Time
	to     *time.Time
	page   int
	size   int

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a merchant search query.
// page starts at 1; size must be positive.
func NewSearchOrdersQuery(
	number, phone string, status int, from, to *time.Time, page, size int,
) (SearchOrdersQuery, error) {
	if page < 1 {
		return SearchOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}
	if size < 1 {
		return SearchOrdersQuery{}, errs.NewValueIsInvalidError("size")
	}

	return SearchOrdersQuery{
		number: number,
		phone:  phone,
		status: status,
		from:   from,
		to:     to,
		page:   page,
		size:   size,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Number returns the order number filter; "" means any.
func (q SearchOrdersQuery) Number() string { return q.number }

// Phone returns the consignee phone filter; "" means any.
func (q SearchOrdersQuery) Phone() string { return q.phone }

// Status returns the status filter; 0 means any.
func (q SearchOrdersQuery) Status() int { return q.status }

// From returns the inclusive lower bound on order time, or nil.
func (q SearchOrdersQuery) From() *time.Time { return q.from }

// To returns the exclusive upper bound on order time, or nil.
func (q SearchOrdersQuery) To() *time.Time { return q.to }

// Page returns the 1-based page index.
func (q SearchOrdersQuery) Page() int { return q.page }

// Size returns the page size.
func (q SearchOrdersQuery) Size() int { return q.size }

// SearchOrderResponse is one row of the merchant search result. Summary is
// the concatenated line items in "name*quantity;" form, so operators can see
// what an order contains without opening it.
type SearchOrderResponse struct {
	ID        string
	Number    string
	Status    int
	PayStatus int
	Amount    decimal.Decimal
	OrderTime time.Time
	Consignee string
	Phone     string
	Address   string
	Summary   string
}

// SearchOrdersQueryResponse is one page of search results with the total
// match count for pagination.
type SearchOrdersQueryResponse struct {
	Total  int64
	Orders []SearchOrderResponse
}
