package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/ledger"
	"foodorder/internal/core/domain/model/order"
)

// Server exposes the order lifecycle over HTTP. It binds and validates
// requests, translates them into commands and queries, and maps domain
// errors onto status codes.
type Server struct {
	validate *validator.Validate

	placeOrderHandler      commands.PlaceOrderCommandHandler
	confirmOrdersHandler   commands.ConfirmOrdersCommandHandler
	deleteOrderHandler     commands.DeleteOrderCommandHandler
	decideOrderHandler     commands.DecideOrderCommandHandler
	dispatchOrderHandler   commands.DispatchOrderCommandHandler
	claimDeliveryHandler   commands.ClaimDeliveryCommandHandler
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler
	confirmReceiptHandler  commands.ConfirmReceiptCommandHandler
	addReviewHandler       commands.AddReviewCommandHandler

	getCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	getMerchantBoardHandler   queries.GetMerchantBoardQueryHandler
	getClaimableOrdersHandler queries.GetClaimableOrdersQueryHandler
	getReportHandler          queries.GetReportQueryHandler
	getReportsByTypeHandler   queries.GetReportsByTypeQueryHandler
	getReviewsHandler         queries.GetReviewsQueryHandler
}

// NewServer creates an HTTP server from the command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	confirmOrdersHandler commands.ConfirmOrdersCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	decideOrderHandler commands.DecideOrderCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	claimDeliveryHandler commands.ClaimDeliveryCommandHandler,
	advanceDeliveryHandler commands.AdvanceDeliveryCommandHandler,
	confirmReceiptHandler commands.ConfirmReceiptCommandHandler,
	addReviewHandler commands.AddReviewCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getMerchantBoardHandler queries.GetMerchantBoardQueryHandler,
	getClaimableOrdersHandler queries.GetClaimableOrdersQueryHandler,
	getReportHandler queries.GetReportQueryHandler,
	getReportsByTypeHandler queries.GetReportsByTypeQueryHandler,
	getReviewsHandler queries.GetReviewsQueryHandler,
) *Server {
	return &Server{
		validate:                  validator.New(),
		placeOrderHandler:         placeOrderHandler,
		confirmOrdersHandler:      confirmOrdersHandler,
		deleteOrderHandler:        deleteOrderHandler,
		decideOrderHandler:        decideOrderHandler,
		dispatchOrderHandler:      dispatchOrderHandler,
		claimDeliveryHandler:      claimDeliveryHandler,
		advanceDeliveryHandler:    advanceDeliveryHandler,
		confirmReceiptHandler:     confirmReceiptHandler,
		addReviewHandler:          addReviewHandler,
		getCustomerOrdersHandler:  getCustomerOrdersHandler,
		getMerchantBoardHandler:   getMerchantBoardHandler,
		getClaimableOrdersHandler: getClaimableOrdersHandler,
		getReportHandler:          getReportHandler,
		getReportsByTypeHandler:   getReportsByTypeHandler,
		getReviewsHandler:         getReviewsHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.PlaceOrder)
	v1.POST("/orders/confirm", s.ConfirmOrders)
	v1.GET("/orders/claimable", s.GetClaimableOrders)
	v1.DELETE("/orders/:order_id", s.DeleteOrder)
	v1.POST("/orders/:order_id/decision", s.DecideOrder)
	v1.POST("/orders/:order_id/dispatch", s.DispatchOrder)
	v1.POST("/orders/:order_id/claim", s.ClaimDelivery)
	v1.POST("/orders/:order_id/progress", s.AdvanceDelivery)
	v1.POST("/orders/:order_id/receipt", s.ConfirmReceipt)
	v1.POST("/orders/:order_id/reviews", s.AddReview)

	v1.GET("/customers/:customer_id/orders", s.GetCustomerOrders)
	v1.GET("/merchants/:merchant_id/board", s.GetMerchantBoard)
	v1.GET("/reports/:report_type", s.GetReportsByType)
	v1.GET("/users/:user_id/reports/:report_type", s.GetReport)
	v1.GET("/users/:user_id/reviews", s.GetReviews)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := s.bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}
	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: orderID.String()})
}

// ConfirmOrders handles POST /api/v1/orders/confirm.
func (s *Server) ConfirmOrders(ctx echo.Context) error {
	var req ConfirmOrdersRequest
	if err := s.bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewConfirmOrdersCommand(customerID, orderIDs...)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmOrdersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:order_id. The acting customer
// comes from the customer_id query parameter.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return writeError(ctx, err)
	}
	customerID, err := kernel.UUIDFromString(ctx.QueryParam("customer_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DecideOrder handles POST /api/v1/orders/:order_id/decision.
func (s *Server) DecideOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req DecideOrderRequest
	if err = s.bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDecideOrderCommand(orderID, merchantID, *req.Accept)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.decideOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:order_id/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req DispatchOrderRequest
	if err = s.bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, merchantID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ClaimDelivery handles POST /api/v1/orders/:order_id/claim.
func (s *Server) ClaimDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ClaimDeliveryRequest
	if err = s.bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewClaimDeliveryCommand(orderID, courierID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.claimDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceDelivery handles POST /api/v1/orders/:order_id/progress.
func (s *Server) AdvanceDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AdvanceDeliveryRequest
	if err = s.bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return writeError(ctx, err)
	}

	var to order.DeliveryProgress
	switch req.Stage {
	case "picking_up":
		to = order.PickingUp
	case "delivered":
		to = order.Delivered
	default:
		return writeBadRequest(ctx, "unknown delivery stage: "+req.Stage)
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(orderID, courierID, to)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.advanceDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmReceipt handles POST /api/v1/orders/:order_id/receipt.
func (s *Server) ConfirmReceipt(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req ConfirmReceiptRequest
	if err = s.bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmReceiptCommand(orderID, customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmReceiptHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddReview handles POST /api/v1/orders/:order_id/reviews.
func (s *Server) AddReview(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("order_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AddReviewRequest
	if err = s.bind(ctx, &req); err != nil {
		return writeBadRequest(ctx, err.Error())
	}

	authorID, err := kernel.UUIDFromString(req.AuthorID)
	if err != nil {
		return writeError(ctx, err)
	}
	subjectID, err := kernel.UUIDFromString(req.SubjectID)
	if err != nil {
		return writeError(ctx, err)
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewAddReviewCommand(reviewID, orderID, authorID, subjectID, req.Rating, req.Comment)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{ID: reviewID.String()})
}

// GetCustomerOrders handles GET /api/v1/customers/:customer_id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customer_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CustomerOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = CustomerOrderResponse{
			ID:         o.ID.String(),
			ItemName:   o.ItemName,
			Price:      o.Price,
			Status:     o.Status,
			Acceptance: o.Acceptance,
			Progress:   o.Progress,
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMerchantBoard handles GET /api/v1/merchants/:merchant_id/board.
func (s *Server) GetMerchantBoard(ctx echo.Context) error {
	merchantID, err := kernel.UUIDFromString(ctx.Param("merchant_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetMerchantBoardQuery(merchantID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getMerchantBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]MerchantBoardOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = MerchantBoardOrderResponse{
			OrderID:    o.OrderID.String(),
			CustomerID: o.CustomerID.String(),
			ItemName:   o.ItemName,
			Price:      o.Price,
			Acceptance: o.Acceptance,
			Progress:   o.Progress,
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetClaimableOrders handles GET /api/v1/orders/claimable.
func (s *Server) GetClaimableOrders(ctx echo.Context) error {
	query := queries.NewGetClaimableOrdersQuery()

	orders, err := s.getClaimableOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ClaimableOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ClaimableOrderResponse{
			OrderID:      o.OrderID.String(),
			ItemName:     o.ItemName,
			Price:        o.Price,
			DispatchedAt: o.DispatchedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReport handles GET /api/v1/users/:user_id/reports/:report_type.
func (s *Server) GetReport(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("user_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	reportType, err := ledger.ReportTypeFromString(ctx.Param("report_type"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetReportQuery(userID, reportType)
	if err != nil {
		return writeError(ctx, err)
	}

	report, err := s.getReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReportResponse{
		UserID:        report.UserID.String(),
		ReportType:    report.ReportType,
		TotalReceived: report.TotalReceived,
		TotalDue:      report.TotalDue,
		TotalOrders:   report.TotalOrders,
	})
}

// GetReportsByType handles GET /api/v1/reports/:report_type.
func (s *Server) GetReportsByType(ctx echo.Context) error {
	reportType, err := ledger.ReportTypeFromString(ctx.Param("report_type"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetReportsByTypeQuery(reportType)
	if err != nil {
		return writeError(ctx, err)
	}

	reports, err := s.getReportsByTypeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ReportResponse, len(reports))
	for i, r := range reports {
		response[i] = ReportResponse{
			UserID:        r.UserID.String(),
			ReportType:    reportType.String(),
			TotalReceived: r.TotalReceived,
			TotalDue:      r.TotalDue,
			TotalOrders:   r.TotalOrders,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetReviews handles GET /api/v1/users/:user_id/reviews.
func (s *Server) GetReviews(ctx echo.Context) error {
	subjectID, err := kernel.UUIDFromString(ctx.Param("user_id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetReviewsQuery(subjectID)
	if err != nil {
		return writeError(ctx, err)
	}

	reviews, err := s.getReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ReviewResponse, len(reviews))
	for i, r := range reviews {
		response[i] = ReviewResponse{
			ID:         r.ID.String(),
			OrderID:    r.OrderID.String(),
			AuthorID:   r.AuthorID.String(),
			AuthorName: r.AuthorName,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// bind decodes the request body and runs struct validation.
func (s *Server) bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return s.validate.Struct(req)
}
