package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrGetProcessingOrdersQueryIsNotConstructed = errors.New(
	"GetProcessingOrdersQuery must be created via NewGetProcessingOrdersQuery constructor",
)

// GetProcessingOrdersQuery retrieves the kitchen's live workload: every
// processing order with its elapsed and remaining minutes, flagged when it
// has been cooking past the overdue threshold.
type GetProcessingOrdersQuery struct {
	now              time.Time
	overdueThreshold int

	guard guard.ConstructorGuard
}

// NewGetProcessingOrdersQuery creates a query for the processing view.
func NewGetProcessingOrdersQuery(now time.Time, overdueThresholdMinutes int) (GetProcessingOrdersQuery, error) {
	if now.IsZero() {
		return GetProcessingOrdersQuery{}, errs.NewValueIsRequiredError("now")
	}
	if overdueThresholdMinutes < 1 {
		return GetProcessingOrdersQuery{}, errs.NewValueIsInvalidError("overdueThresholdMinutes")
	}

	return GetProcessingOrdersQuery{
		now:              now,
		overdueThreshold: overdueThresholdMinutes,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProcessingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessingOrdersQueryIsNotConstructed)
}

// Now returns the observation time.
func (q GetProcessingOrdersQuery) Now() time.Time {
	return q.now
}

// OverdueThreshold returns the overdue threshold in minutes.
func (q GetProcessingOrdersQuery) OverdueThreshold() int {
	return q.overdueThreshold
}

// GetProcessingOrdersQueryResponse is one processing order's timing view.
type GetProcessingOrdersQueryResponse struct {
	ID                   kernel.UUID
	Reference            string
	ChefID               *kernel.UUID
	TotalPreparationTime int
	ElapsedMinutes       int
	RemainingMinutes     int
	IsOverdue            bool
}
