package queries

import (
	"errors"
	"time"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDailySummaryQueryIsNotConstructed = errors.New(
	"GetDailySummaryQuery must be created via NewGetDailySummaryQuery constructor",
)

// GetDailySummaryQuery asks for the business summary of a time window:
// turnover of completed orders plus order counts. The window is typically
// one calendar day, [from, to).
type GetDailySummaryQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetDailySummaryQuery creates a summary query over [from, to).
func NewGetDailySummaryQuery(from, to time.Time) (GetDailySummaryQuery, error) {
	if from.IsZero() {
		return GetDailySummaryQuery{}, errs.NewValueIsRequiredError("from")
	}
	if to.IsZero() {
		return GetDailySummaryQuery{}, errs.NewValueIsRequiredError("to")
	}
	if !to.After(from) {
		return GetDailySummaryQuery{}, errs.NewValueIsInvalidError("to")
	}

	return GetDailySummaryQuery{
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySummaryQueryIsNotConstructed)
}

// From returns the inclusive lower bound of the window.
func (q GetDailySummaryQuery) From() time.Time { return q.from }

// To returns the exclusive upper bound of the window.
func (q GetDailySummaryQuery) To() time.Time { return q.to }

// GetDailySummaryQueryResponse is the business summary of one window.
// Turnover sums the amount of completed orders only; cancelled and in-flight
// orders contribute to TotalOrders but not to Turnover.
type GetDailySummaryQueryResponse struct {
	Turnover        decimal.Decimal
	TotalOrders     int64
	CompletedOrders int64
	CancelledOrders int64
}
