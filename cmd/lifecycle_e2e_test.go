package cmd_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"foodorder/cmd"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/postgres/assignmentrepo"
	"foodorder/internal/adapters/out/postgres/catalog"
	"foodorder/internal/adapters/out/postgres/ledgerrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/reviewrepo"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/ledger"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"
)

// recordingNotifier collects notifications instead of publishing them.
type recordingNotifier struct {
	mu       sync.Mutex
	messages map[kernel.UUID][]string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{messages: make(map[kernel.UUID][]string)}
}

func (n *recordingNotifier) Notify(_ context.Context, userID kernel.UUID, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages[userID] = append(n.messages[userID], message)
	return nil
}

func (n *recordingNotifier) count(userID kernel.UUID) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.messages[userID])
}

func newLifecycleFixture(t *testing.T) (cmd.CompositionRoot, *gorm.DB, *recordingNotifier) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&assignmentrepo.AssignmentDTO{},
		&reviewrepo.ReviewDTO{},
		&ledgerrepo.EntryDTO{},
		&ledgerrepo.ReportDTO{},
		&catalog.MenuItemDTO{},
		&postgres.UserDTO{},
	)
	require.NoError(t, err)

	notifier := newRecordingNotifier()
	root := cmd.NewCompositionRoot(cmd.Config{}, db, notifier)
	return root, db, notifier
}

func TestOrderLifecycle_EndToEnd(t *testing.T) {
	root, db, notifier := newLifecycleFixture(t)
	ctx := context.Background()

	placeOrder := root.CreatePlaceOrderCommandHandler()
	confirmOrders := root.CreateConfirmOrdersCommandHandler()
	deleteOrder := root.CreateDeleteOrderCommandHandler()
	decideOrder := root.CreateDecideOrderCommandHandler()
	dispatchOrder := root.CreateDispatchOrderCommandHandler()
	claimDelivery := root.CreateClaimDeliveryCommandHandler()
	advanceDelivery := root.CreateAdvanceDeliveryCommandHandler()
	confirmReceipt := root.CreateConfirmReceiptCommandHandler()
	addReview := root.CreateAddReviewCommandHandler()

	customerID := kernel.NewUUID()
	merchantID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	rivalCourierID := kernel.NewUUID()
	itemID := kernel.NewUUID()

	require.NoError(t, db.Create(&catalog.MenuItemDTO{
		ID:         itemID.Bytes(),
		MerchantID: merchantID.Bytes(),
		Name:       "Margherita Pizza",
		Price:      decimal.RequireFromString("100.00"),
	}).Error)
	require.NoError(t, db.Create(&postgres.UserDTO{
		ID:   customerID.Bytes(),
		Name: "Dana",
	}).Error)

	// Place.
	orderID := kernel.NewUUID()
	placeCmd, err := commands.NewPlaceOrderCommand(orderID, customerID, itemID)
	require.NoError(t, err)
	require.NoError(t, placeOrder.Handle(ctx, placeCmd))

	ordersQuery, err := queries.NewGetCustomerOrdersQuery(customerID)
	require.NoError(t, err)
	placed, err := root.CreateGetCustomerOrdersQueryHandler().Handle(ctx, ordersQuery)
	require.NoError(t, err)
	require.Len(t, placed, 1)
	require.Equal(t, "Margherita Pizza", placed[0].ItemName)
	require.Equal(t, "100.00", placed[0].Price)
	require.Equal(t, order.Pending.String(), placed[0].Status)

	// A stranger cannot delete the pending order.
	strangerDelete, err := commands.NewDeleteOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)
	err = deleteOrder.Handle(ctx, strangerDelete)
	require.ErrorIs(t, err, errs.ErrForbidden)

	// Confirm the cart.
	confirmCmd, err := commands.NewConfirmOrdersCommand(customerID, orderID)
	require.NoError(t, err)
	require.NoError(t, confirmOrders.Handle(ctx, confirmCmd))

	// Once confirmed, even the owner cannot delete.
	ownerDelete, err := commands.NewDeleteOrderCommand(orderID, customerID)
	require.NoError(t, err)
	err = deleteOrder.Handle(ctx, ownerDelete)
	require.ErrorIs(t, err, errs.ErrForbidden)

	boardQuery, err := queries.NewGetMerchantBoardQuery(merchantID)
	require.NoError(t, err)
	board, err := root.CreateGetMerchantBoardQueryHandler().Handle(ctx, boardQuery)
	require.NoError(t, err)
	require.Len(t, board, 1)
	require.Equal(t, orderID, board[0].OrderID)

	// Merchant accepts and dispatches.
	decideCmd, err := commands.NewDecideOrderCommand(orderID, merchantID, true)
	require.NoError(t, err)
	require.NoError(t, decideOrder.Handle(ctx, decideCmd))

	dispatchCmd, err := commands.NewDispatchOrderCommand(orderID, merchantID)
	require.NoError(t, err)
	require.NoError(t, dispatchOrder.Handle(ctx, dispatchCmd))

	claimable, err := root.CreateGetClaimableOrdersQueryHandler().Handle(ctx, queries.NewGetClaimableOrdersQuery())
	require.NoError(t, err)
	require.Len(t, claimable, 1)
	require.Equal(t, orderID, claimable[0].OrderID)

	// First courier wins the claim; the rival gets a conflict.
	claimCmd, err := commands.NewClaimDeliveryCommand(orderID, courierID)
	require.NoError(t, err)
	require.NoError(t, claimDelivery.Handle(ctx, claimCmd))

	rivalClaim, err := commands.NewClaimDeliveryCommand(orderID, rivalCourierID)
	require.NoError(t, err)
	err = claimDelivery.Handle(ctx, rivalClaim)
	require.ErrorIs(t, err, errs.ErrConflict)

	claimable, err = root.CreateGetClaimableOrdersQueryHandler().Handle(ctx, queries.NewGetClaimableOrdersQuery())
	require.NoError(t, err)
	require.Empty(t, claimable)

	// Delivery progresses to the door.
	pickupCmd, err := commands.NewAdvanceDeliveryCommand(orderID, courierID, order.PickingUp)
	require.NoError(t, err)
	require.NoError(t, advanceDelivery.Handle(ctx, pickupCmd))

	deliveredCmd, err := commands.NewAdvanceDeliveryCommand(orderID, courierID, order.Delivered)
	require.NoError(t, err)
	require.NoError(t, advanceDelivery.Handle(ctx, deliveredCmd))

	awaiting, err := root.CreateGetAwaitingReceiptOrdersQueryHandler().Handle(ctx, queries.NewGetAwaitingReceiptOrdersQuery())
	require.NoError(t, err)
	require.Len(t, awaiting, 1)
	require.Equal(t, customerID, awaiting[0].CustomerID)

	// Customer confirms receipt, which settles the order.
	receiptCmd, err := commands.NewConfirmReceiptCommand(orderID, customerID)
	require.NoError(t, err)
	require.NoError(t, confirmReceipt.Handle(ctx, receiptCmd))

	merchantReport := fetchReport(t, root, merchantID, ledger.ReportTypeMerchant)
	require.Equal(t, "80.00", merchantReport.TotalReceived)
	require.Equal(t, "0.00", merchantReport.TotalDue)
	require.Equal(t, 1, merchantReport.TotalOrders)

	courierReport := fetchReport(t, root, courierID, ledger.ReportTypeCourier)
	require.Equal(t, "20.00", courierReport.TotalReceived)
	require.Equal(t, 1, courierReport.TotalOrders)

	customerReport := fetchReport(t, root, customerID, ledger.ReportTypeCustomer)
	require.Equal(t, "100.00", customerReport.TotalDue)
	require.Equal(t, "0.00", customerReport.TotalReceived)
	require.Equal(t, 1, customerReport.TotalOrders)

	byTypeQuery, err := queries.NewGetReportsByTypeQuery(ledger.ReportTypeMerchant)
	require.NoError(t, err)
	merchantReports, err := root.CreateGetReportsByTypeQueryHandler().Handle(ctx, byTypeQuery)
	require.NoError(t, err)
	require.Len(t, merchantReports, 1)
	require.Equal(t, merchantID, merchantReports[0].UserID)
	require.Equal(t, "80.00", merchantReports[0].TotalReceived)

	// Settlement runs exactly once.
	repeatReceipt, err := commands.NewConfirmReceiptCommand(orderID, customerID)
	require.NoError(t, err)
	err = confirmReceipt.Handle(ctx, repeatReceipt)
	require.ErrorIs(t, err, errs.ErrInvalidState)

	merchantReport = fetchReport(t, root, merchantID, ledger.ReportTypeMerchant)
	require.Equal(t, "80.00", merchantReport.TotalReceived)
	require.Equal(t, 1, merchantReport.TotalOrders)

	// Customer reviews the merchant; the query joins the author name.
	reviewCmd, err := commands.NewAddReviewCommand(
		kernel.NewUUID(), orderID, customerID, merchantID, 5, "Arrived hot")
	require.NoError(t, err)
	require.NoError(t, addReview.Handle(ctx, reviewCmd))

	reviewsQuery, err := queries.NewGetReviewsQuery(merchantID)
	require.NoError(t, err)
	reviews, err := root.CreateGetReviewsQueryHandler().Handle(ctx, reviewsQuery)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	require.Equal(t, customerID, reviews[0].AuthorID)
	require.Equal(t, "Dana", reviews[0].AuthorName)
	require.Equal(t, 5, reviews[0].Rating)
	require.Equal(t, "Arrived hot", reviews[0].Comment)

	// The customer heard about acceptance, dispatch, pickup and delivery.
	require.GreaterOrEqual(t, notifier.count(customerID), 4)
	// The merchant heard about the settlement.
	require.GreaterOrEqual(t, notifier.count(merchantID), 1)
	require.GreaterOrEqual(t, notifier.count(courierID), 1)
}

func fetchReport(t *testing.T, root cmd.CompositionRoot, userID kernel.UUID, reportType ledger.ReportType) queries.GetReportQueryResponse {
	t.Helper()

	query, err := queries.NewGetReportQuery(userID, reportType)
	require.NoError(t, err)

	report, err := root.CreateGetReportQueryHandler().Handle(context.Background(), query)
	require.NoError(t, err)
	return report
}
