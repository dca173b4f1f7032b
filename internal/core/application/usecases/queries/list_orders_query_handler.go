package queries

import (
	"context"
	"log/slog"

	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/ports"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads one page of orders joined with their
// recipient and deliverer, sorted by creation time with the ID as
// tie-break.
//
// When a cache is given, pages are served from it and stored into it.
// Cache failures are logged and the database is used instead.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	cache  ports.OrderListCache
	logger *slog.Logger
}

// NewListOrdersQueryHandler creates the handler. cache may be nil.
func NewListOrdersQueryHandler(db *gorm.DB, cache ports.OrderListCache, logger *slog.Logger) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "ListOrdersQueryHandler"),
	}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	key := query.cacheKey()
	if h.cache != nil {
		var cached ListOrdersQueryResponse
		hit, err := h.cache.Get(ctx, key, &cached)
		switch {
		case err != nil:
			h.logger.WarnContext(ctx, "order list cache read failed", "key", key, "error", err)
		case hit:
			cached.OptionFallback = query.OptionFallback()
			return cached, nil
		}
	}

	orders, err := h.readPage(ctx, query)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	response := ListOrdersQueryResponse{
		Page:           query.Page(),
		Option:         query.Option(),
		OptionFallback: query.OptionFallback(),
		Orders:         orders,
	}

	if h.cache != nil {
		if err = h.cache.Set(ctx, key, response); err != nil {
			h.logger.WarnContext(ctx, "order list cache write failed", "key", key, "error", err)
		}
	}

	return response, nil
}

func (h ListOrdersQueryHandler) readPage(ctx context.Context, query ListOrdersQuery) ([]ListedOrder, error) {
	db := h.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.id, o.product, r.id, r.name, d.id, d.first_name, d.last_name").
		Joins("JOIN recipients AS r ON r.id = o.recipient_id").
		Joins("JOIN deliverers AS d ON d.id = o.deliverer_id")
	db = whereFilter(db, "o", order.BuildFilter(query.Option()))

	rows, err := db.
		Order("o.created_at ASC, o.id ASC").
		Limit(PageSize).
		Offset(query.offset()).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListedOrder, 0, PageSize)
	for rows.Next() {
		var o ListedOrder
		err = rows.Scan(
			&o.ID,
			&o.Product,
			&o.Recipient.ID,
			&o.Recipient.Name,
			&o.Deliverer.ID,
			&o.Deliverer.FirstName,
			&o.Deliverer.LastName,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// whereFilter adds the IS NULL / IS NOT NULL tests of f on the columns of
// the given table alias.
func whereFilter(db *gorm.DB, alias string, f order.Filter) *gorm.DB {
	for _, c := range f.Conditions() {
		column := alias + "." + c.Column
		switch c.Presence {
		case order.IsNull:
			db = db.Where(column + " IS NULL")
		case order.IsNotNull:
			db = db.Where(column + " IS NOT NULL")
		}
	}
	return db
}
