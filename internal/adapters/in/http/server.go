package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"fastfeet/internal/core/application/usecases/commands"
	"fastfeet/internal/core/application/usecases/queries"
	"fastfeet/internal/core/application/validation"
	"fastfeet/internal/core/domain/model/deliverer"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/order"
	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/generated/servers"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Headers describing the page a list response holds.
const (
	HeaderPage           = "X-Page"
	HeaderOption         = "X-Option"
	HeaderOptionFallback = "X-Option-Fallback"
)

// defaultQuantity is used when a new order does not say how many items it
// carries.
const defaultQuantity = 1

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
}

type StartTransportHandler interface {
	Handle(ctx context.Context, cmd commands.StartTransportCommand) (*order.Order, error)
}

type EndTransportHandler interface {
	Handle(ctx context.Context, cmd commands.EndTransportCommand) (*order.Order, error)
}

type UpdateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
}

type CancelOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
}

type CreateRecipientHandler interface {
	Handle(ctx context.Context, cmd commands.CreateRecipientCommand) (*recipient.Recipient, error)
}

type CreateDelivererHandler interface {
	Handle(ctx context.Context, cmd commands.CreateDelivererCommand) (*deliverer.Deliverer, error)
}

type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

// Handlers groups the use cases the server dispatches to.
type Handlers struct {
	// Command handlers
	CreateOrder     CreateOrderHandler
	StartTransport  StartTransportHandler
	EndTransport    EndTransportHandler
	UpdateOrder     UpdateOrderHandler
	CancelOrder     CancelOrderHandler
	CreateRecipient CreateRecipientHandler
	CreateDeliverer CreateDelivererHandler

	// Query handlers
	ListOrders ListOrdersHandler
	GetOrder   GetOrderHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// ListOrders handles GET /orders - one page of orders in a lifecycle bucket.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	page := 1
	if params.Page != nil {
		page = *params.Page
	}
	var option string
	if params.Option != nil {
		option = *params.Option
	}

	result, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery(page, option))
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	response := make([]servers.ListedOrder, len(result.Orders))
	for i, o := range result.Orders {
		response[i] = servers.ListedOrder{
			Id:      o.ID,
			Product: o.Product,
			Recipient: servers.ListedOrderRecipient{
				Id:   o.Recipient.ID,
				Name: o.Recipient.Name,
			},
			Deliverer: servers.ListedOrderDeliverer{
				Id:        o.Deliverer.ID,
				FirstName: o.Deliverer.FirstName,
				LastName:  o.Deliverer.LastName,
			},
		}
	}

	header := ctx.Response().Header()
	header.Set(HeaderPage, strconv.Itoa(result.Page))
	header.Set(HeaderOption, string(result.Option))
	header.Set(HeaderOptionFallback, strconv.FormatBool(result.OptionFallback))

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	payload, err := bindPayload(ctx, validation.CreateOrderRules)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	product, _ := payload.String("product")
	quantity := int64(defaultQuantity)
	if q, ok := payload.Int64("quantity"); ok {
		quantity = q
	}
	delivererID, _ := payload.Int64("deliverer_id")
	recipientID, _ := payload.Int64("recipient_id")

	cmd, err := commands.NewCreateOrderCommand(
		product,
		int(quantity),
		referenceID(delivererID),
		referenceID(recipientID),
	)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	o, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, servers.CreatedOrder{
		Product:     o.Product(),
		RecipientId: o.RecipientID().Value(),
		DelivererId: o.DelivererID().Value(),
		Quantity:    o.Quantity(),
	})
}

// GetOrder handles GET /orders/:id - one order with its derived state.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	orderID, err := orderIDParam(id)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, servers.OrderDetail{
		Id:          o.ID,
		Product:     o.Product,
		Quantity:    o.Quantity,
		DelivererId: o.DelivererID,
		RecipientId: o.RecipientID,
		SignatureId: o.SignatureID,
		CreatedAt:   o.CreatedAt,
		StartDate:   o.StartDate,
		EndDate:     o.EndDate,
		CanceledAt:  o.CanceledAt,
		Status:      o.Status,
		Past:        o.Past,
		Cancelable:  o.Cancelable,
	})
}

// UpdateOrder handles PUT /orders/:id. A true "started" starts the
// transport, otherwise a true "ended" ends it, otherwise product and
// signature_id are patched. False flags are ignored.
func (s *Server) UpdateOrder(ctx echo.Context, id int64) error {
	payload, err := bindPayload(ctx, validation.UpdateOrderRules)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	orderID, err := orderIDParam(id)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	if started, _ := payload.Bool("started"); started {
		return s.startTransport(ctx, orderID)
	}
	if ended, _ := payload.Bool("ended"); ended {
		return s.endTransport(ctx, orderID)
	}

	var product *string
	if p, ok := payload.String("product"); ok {
		product = &p
	}
	var signatureID *kernel.ID
	if sig, ok := payload.Int64("signature_id"); ok {
		signature := referenceID(sig)
		signatureID = &signature
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, product, signatureID)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	o, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, http.StatusUnauthorized)
	}

	response := servers.PatchedOrder{Product: o.Product()}
	if sig := o.SignatureID(); sig != nil {
		value := sig.Value()
		response.SignatureId = &value
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) startTransport(ctx echo.Context, orderID kernel.ID) error {
	cmd, err := commands.NewStartTransportCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	o, err := s.handlers.StartTransport.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, http.StatusUnauthorized)
	}

	return ctx.JSON(http.StatusOK, servers.StartedOrder{
		StartDate: *o.StartDate(),
		Started:   o.Started(),
	})
}

func (s *Server) endTransport(ctx echo.Context, orderID kernel.ID) error {
	cmd, err := commands.NewEndTransportCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	o, err := s.handlers.EndTransport.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, http.StatusUnauthorized)
	}

	return ctx.JSON(http.StatusOK, servers.EndedOrder{
		EndDate: *o.EndDate(),
		Ended:   o.Ended(),
	})
}

// CancelOrder handles DELETE /orders/:id - cancels an order that has not
// started and notifies its deliverer.
func (s *Server) CancelOrder(ctx echo.Context, id int64) error {
	orderID, err := orderIDParam(id)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	o, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, servers.CanceledOrder{
		CanceledAt: *o.CanceledAt(),
	})
}

// CreateRecipient handles POST /recipients - creates a new recipient.
func (s *Server) CreateRecipient(ctx echo.Context) error {
	payload, err := bindPayload(ctx, validation.CreateRecipientRules)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	name, _ := payload.String("name")
	address := recipient.Address{}
	address.Street, _ = payload.String("street")
	address.Number, _ = payload.String("number")
	address.Complement, _ = payload.String("complement")
	address.State, _ = payload.String("state")
	address.City, _ = payload.String("city")
	address.PostalCode, _ = payload.String("postal_code")

	r, err := s.handlers.CreateRecipient.Handle(ctx.Request().Context(), commands.NewCreateRecipientCommand(name, address))
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	stored := r.Address()
	return ctx.JSON(http.StatusOK, servers.Recipient{
		Id:         r.ID().Value(),
		Name:       r.Name(),
		Street:     stored.Street,
		Number:     stored.Number,
		Complement: stored.Complement,
		State:      stored.State,
		City:       stored.City,
		PostalCode: stored.PostalCode,
	})
}

// CreateDeliverer handles POST /deliverers - creates a new deliverer.
func (s *Server) CreateDeliverer(ctx echo.Context) error {
	payload, err := bindPayload(ctx, validation.CreateDelivererRules)
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	firstName, _ := payload.String("first_name")
	lastName, _ := payload.String("last_name")
	email, _ := payload.String("email")

	d, err := s.handlers.CreateDeliverer.Handle(ctx.Request().Context(),
		commands.NewCreateDelivererCommand(firstName, lastName, email))
	if err != nil {
		return s.respondError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, servers.Deliverer{
		Id:        d.ID().Value(),
		FirstName: d.FirstName(),
		LastName:  d.LastName(),
		Email:     d.Email(),
	})
}

// orderIDParam turns a path id into an order ID. Ids that can never exist
// are reported as a missing order.
func orderIDParam(id int64) (kernel.ID, error) {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return kernel.ID{}, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
	}
	return orderID, nil
}

// referenceID returns the zero ID for absent or non-positive keys and leaves
// rejecting it to the command constructors.
func referenceID(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	if err != nil {
		return kernel.ID{}
	}
	return id
}
