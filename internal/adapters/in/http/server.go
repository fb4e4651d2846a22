package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	completeCollectionHandler  commands.CompleteCollectionCommandHandler
	reportMissingHandler       commands.ReportMissingCommandHandler
	applyOfficeDecisionHandler commands.ApplyOfficeDecisionCommandHandler
	attemptAutoResolveHandler  commands.AttemptAutoResolveCommandHandler

	// Query handlers
	getOrderStatusHandler queries.GetOrderStatusQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	completeCollectionHandler commands.CompleteCollectionCommandHandler,
	reportMissingHandler commands.ReportMissingCommandHandler,
	applyOfficeDecisionHandler commands.ApplyOfficeDecisionCommandHandler,
	attemptAutoResolveHandler commands.AttemptAutoResolveCommandHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
) *Server {
	return &Server{
		completeCollectionHandler:  completeCollectionHandler,
		reportMissingHandler:       reportMissingHandler,
		applyOfficeDecisionHandler: applyOfficeDecisionHandler,
		attemptAutoResolveHandler:  attemptAutoResolveHandler,
		getOrderStatusHandler:      getOrderStatusHandler,
	}
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order's fulfillment state.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status request: " + err.Error(),
		})
	}

	status, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	items := make([]servers.OrderItem, len(status.Items))
	for i, item := range status.Items {
		items[i] = servers.OrderItem{
			ProductId:    item.ProductID.Bytes(),
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Availability: item.Availability.String(),
			RefundMark:   item.RefundMark.String(),
		}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:          status.ID.Bytes(),
		Status:      status.Status.String(),
		WarehouseId: status.WarehouseID,
		Items:       items,
	})
}

// CompleteCollection handles POST /api/v1/orders/{orderId}/collection-complete -
// settles every line item and completes the order.
func (s *Server) CompleteCollection(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	cmd, err := commands.NewCompleteCollectionCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid completion request: " + err.Error(),
		})
	}

	result, handleErr := s.completeCollectionHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.CollectionResult{
		Status:       result.Status.String(),
		ItemsSettled: result.ItemsSettled,
	})
}

// ReportMissing handles POST /api/v1/orders/{orderId}/missing-report -
// escalates an order over products the collector could not find.
func (s *Server) ReportMissing(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	var report servers.MissingReport
	if err = ctx.Bind(&report); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	collectorID, err := kernel.UUIDFromBytes(report.CollectorId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid collector ID: " + err.Error(),
		})
	}

	missing, err := domainUUIDs(report.Missing)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid missing product ID: " + err.Error(),
		})
	}

	var pinned []kernel.UUID
	if report.PinnedAvailable != nil {
		pinned, err = domainUUIDs(*report.PinnedAvailable)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid pinned product ID: " + err.Error(),
			})
		}
	}

	canPin := report.CanPinAvailability != nil && *report.CanPinAvailability
	details := ""
	if report.Details != nil {
		details = *report.Details
	}

	cmd, err := commands.NewReportMissingCommand(orderID, collectorID, missing, pinned, canPin, details)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid missing report: " + err.Error(),
		})
	}

	result, handleErr := s.reportMissingHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	problemIds := make([]openapi_types.UUID, len(result.ProblemIDs))
	for i, id := range result.ProblemIDs {
		problemIds[i] = id.Bytes()
	}

	return ctx.JSON(http.StatusOK, servers.EscalationResult{
		Status:     result.Status.String(),
		ProblemIds: problemIds,
	})
}

// ApplyOfficeDecision handles POST /api/v1/orders/{orderId}/office-decision -
// applies the office's verdict to an escalated order.
func (s *Server) ApplyOfficeDecision(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	var decision servers.OfficeDecision
	if err = ctx.Bind(&decision); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	comments := ""
	if decision.Comments != nil {
		comments = *decision.Comments
	}

	cmd, err := commands.NewApplyOfficeDecisionCommand(orderID, commands.Decision(decision.Decision), comments)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid decision request: " + err.Error(),
		})
	}

	result, handleErr := s.applyOfficeDecisionHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, servers.DecisionResult{
		OldStatus:    result.OldStatus.String(),
		NewStatus:    result.NewStatus.String(),
		ItemsUpdated: result.ItemsUpdated,
	})
}

// AttemptAutoResolve handles POST /api/v1/orders/{orderId}/auto-resolve -
// attempts a silent recovery of an escalated order on demand.
func (s *Server) AttemptAutoResolve(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	cmd, err := commands.NewAttemptAutoResolveCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid recovery request: " + err.Error(),
		})
	}

	result, handleErr := s.attemptAutoResolveHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainErrorResponse(ctx, handleErr)
	}

	response := servers.AutoResolveResult{
		Resolved:        result.Resolved,
		UnresolvedItems: result.UnresolvedItems,
	}
	if result.Resolved {
		warehouseID := result.Warehouse.String()
		response.Warehouse = &warehouseID
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainErrorResponse maps domain and application errors to HTTP responses.
// Conflicting state transitions and concurrent updates answer 409 so the
// caller can re-read the order and retry.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrUnresolvedMissingItems),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPreconditionFailed),
		errors.Is(err, errs.ErrInsufficientStock):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func domainUUIDs(ids []openapi_types.UUID) ([]kernel.UUID, error) {
	converted := make([]kernel.UUID, len(ids))
	for i, id := range ids {
		domainID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		converted[i] = domainID
	}
	return converted, nil
}
