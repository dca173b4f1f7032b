package queries

import (
	"errors"
	"fmt"
	"math"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/pkg/guard"
)

const (
	// PageSize is the number of orders on one page of the list.
	PageSize = 20

	// MaxPage is the last page whose offset fits in an int.
	MaxPage = math.MaxInt/PageSize + 1
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery asks for one page of orders in one lifecycle bucket.
//
// Example:
//
//	query := NewListOrdersQuery(2, "1")
//	handler := NewListOrdersQueryHandler(db, cache, logger)
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//
//	for _, o := range page.Orders {
//	    fmt.Printf("#%d %s for %s\n", o.ID, o.Product, o.Recipient.Name)
//	}
type ListOrdersQuery struct {
	page           int
	option         order.SearchOption
	optionFallback bool

	guard guard.ConstructorGuard
}

// NewListOrdersQuery normalizes the raw request values: pages below 1 become
// page 1, pages past MaxPage become MaxPage, and a missing or unknown option
// becomes order.DefaultSearchOption.
// An unknown option is remembered so the response can report the fallback.
func NewListOrdersQuery(page int, rawOption string) ListOrdersQuery {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	option, ok := order.ParseSearchOption(rawOption)

	return ListOrdersQuery{
		page:           page,
		option:         option,
		optionFallback: !ok && rawOption != "",
		guard:          guard.NewConstructorGuard(),
	}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Page() int {
	return q.page
}

func (q ListOrdersQuery) Option() order.SearchOption {
	return q.option
}

// OptionFallback reports whether the requested option was unknown and the
// default was used instead.
func (q ListOrdersQuery) OptionFallback() bool {
	return q.optionFallback
}

func (q ListOrdersQuery) offset() int {
	return (q.page - 1) * PageSize
}

func (q ListOrdersQuery) cacheKey() string {
	return fmt.Sprintf("page:%d:option:%s", q.page, q.option)
}

// ListOrdersQueryResponse is one page of the order list. OptionFallback
// describes the request, not the page, so it is not part of a cached page.
type ListOrdersQueryResponse struct {
	Page           int                `json:"page"`
	Option         order.SearchOption `json:"option"`
	OptionFallback bool               `json:"-"`
	Orders         []ListedOrder      `json:"orders"`
}

// ListedOrder is an order row joined with its recipient and deliverer.
type ListedOrder struct {
	ID        int64           `json:"id"`
	Product   string          `json:"product"`
	Recipient ListedRecipient `json:"recipient"`
	Deliverer ListedDeliverer `json:"deliverer"`
}

type ListedRecipient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ListedDeliverer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
