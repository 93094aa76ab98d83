// Package http exposes the order-operations use cases over an echo HTTP
// server. Every mutating endpoint answers with the same envelope:
// accepted, an error kind for rejections, the identifiers of failing
// lines, and server-side recomputed fields for accepted edits.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"orderops/internal/core/application/usecases/commands"
	"orderops/internal/core/application/usecases/queries"
	"orderops/internal/core/domain/model/backorder"
	"orderops/internal/core/domain/model/discount"
	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/core/domain/model/reconciliation"
	"orderops/internal/core/domain/services"
	"orderops/internal/pkg/errs"
)

// actorHeader carries the acting user for audit trails. Opaque to the
// server; never authenticated here.
const actorHeader = "X-Actor"

// ActionResponse is the uniform envelope for mutating endpoints.
type ActionResponse struct {
	Accepted      bool           `json:"accepted"`
	ErrorKind     string         `json:"errorKind,omitempty"`
	LineRefs      []string       `json:"lineRefs,omitempty"`
	UpdatedFields map[string]any `json:"updatedFields,omitempty"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	shipBatchHandler            commands.ShipBatchCommandHandler
	shipSingleHandler           commands.ShipSingleCommandHandler
	cancelShipmentHandler       commands.CancelShipmentCommandHandler
	setBundleFlagHandler        commands.SetBundleFlagCommandHandler
	editReconciliationHandler   commands.EditReconciliationCommandHandler
	commitReconciliationHandler commands.CommitReconciliationCommandHandler
	editDiscountHandler         commands.EditDiscountCommandHandler
	applyFactoryDefaultHandler  commands.ApplyFactoryDefaultCommandHandler

	// Query handlers
	getOpenBackordersHandler       queries.GetOpenBackordersQueryHandler
	getReconciliationBatchHandler  queries.GetReconciliationBatchQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	shipBatchHandler commands.ShipBatchCommandHandler,
	shipSingleHandler commands.ShipSingleCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	setBundleFlagHandler commands.SetBundleFlagCommandHandler,
	editReconciliationHandler commands.EditReconciliationCommandHandler,
	commitReconciliationHandler commands.CommitReconciliationCommandHandler,
	editDiscountHandler commands.EditDiscountCommandHandler,
	applyFactoryDefaultHandler commands.ApplyFactoryDefaultCommandHandler,
	getOpenBackordersHandler queries.GetOpenBackordersQueryHandler,
	getReconciliationBatchHandler queries.GetReconciliationBatchQueryHandler,
) *Server {
	return &Server{
		shipBatchHandler:            shipBatchHandler,
		shipSingleHandler:           shipSingleHandler,
		cancelShipmentHandler:       cancelShipmentHandler,
		setBundleFlagHandler:        setBundleFlagHandler,
		editReconciliationHandler:   editReconciliationHandler,
		commitReconciliationHandler: commitReconciliationHandler,
		editDiscountHandler:         editDiscountHandler,
		applyFactoryDefaultHandler:  applyFactoryDefaultHandler,

		getOpenBackordersHandler:      getOpenBackordersHandler,
		getReconciliationBatchHandler: getReconciliationBatchHandler,
	}
}

// RegisterRoutes wires the server's endpoints onto an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/backorders/open", s.GetOpenBackorders)
	api.POST("/backorders/ship-batch", s.ShipBatch)
	api.POST("/backorders/:id/ship", s.ShipSingle)
	api.POST("/backorders/:id/cancel-shipment", s.CancelShipment)
	api.POST("/backorders/:id/bundle-flag", s.SetBundleFlag)

	api.GET("/reconciliation", s.GetReconciliationBatch)
	api.POST("/reconciliation/:id/input", s.EditReconciliation)
	api.POST("/reconciliation/commit", s.CommitReconciliation)

	api.POST("/discounts/:id/discount", s.EditDiscount)
	api.POST("/discounts/defaults", s.ApplyFactoryDefault)
}

// errorKinds maps domain rejections to the wire kind strings, checked in
// order with errors.Is.
var errorKinds = []struct {
	target error
	kind   string
}{
	{services.ErrCrossSellerBatch, "CrossSellerBatch"},
	{backorder.ErrNothingToShip, "NothingToShip"},
	{backorder.ErrNothingToCancel, "NothingToCancel"},
	{backorder.ErrBundleConfirmationRequired, "BundleConfirmationRequired"},
	{backorder.ErrNotPrimaryLine, "NotPrimaryLine"},
	{backorder.ErrInvalidQuantity, "InvalidQuantity"},
	{reconciliation.ErrAlreadyLocked, "AlreadyLocked"},
	{reconciliation.ErrExceedsAvailable, "ExceedsAvailable"},
	{reconciliation.ErrInvalidInput, "InvalidInput"},
	{discount.ErrInvalidDiscount, "InvalidDiscount"},
	{commands.ErrNoSelection, "NoSelection"},
	{services.ErrEmptyBatch, "NoSelection"},
	{errs.ErrVersionIsInvalid, "VersionConflict"},
}

// rejection renders a domain error as an envelope with the proper status
// code and kind. Unrecognized errors become opaque 500s.
func rejection(ctx echo.Context, err error) error {
	var batchErr *commands.BatchRejectedError
	lineRefs := []string(nil)
	if errors.As(err, &batchErr) {
		for _, id := range batchErr.FailedLineIDs() {
			lineRefs = append(lineRefs, id.String())
		}
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, ActionResponse{
			Accepted:  false,
			ErrorKind: "NotFound",
		})
	}

	for _, mapping := range errorKinds {
		if !errors.Is(err, mapping.target) {
			continue
		}

		status := http.StatusUnprocessableEntity
		if mapping.kind == "VersionConflict" {
			status = http.StatusConflict
		}

		return ctx.JSON(status, ActionResponse{
			Accepted:  false,
			ErrorKind: mapping.kind,
			LineRefs:  lineRefs,
		})
	}

	// Constructor/validation failures carry no wire kind of their own.
	if errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, commands.ErrActorIsRequired) {
		return ctx.JSON(http.StatusBadRequest, ActionResponse{
			Accepted:  false,
			ErrorKind: "InvalidInput",
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ActionResponse{
		Accepted:  false,
		ErrorKind: "Internal",
	})
}

func badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ActionResponse{
		Accepted:  false,
		ErrorKind: "InvalidInput",
	})
}

func accepted(ctx echo.Context, updatedFields map[string]any) error {
	return ctx.JSON(http.StatusOK, ActionResponse{
		Accepted:      true,
		UpdatedFields: updatedFields,
	})
}

func (s *Server) actor(ctx echo.Context) string {
	return ctx.Request().Header.Get(actorHeader)
}

func parseLineID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func parseLineIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ShipBatchRequest selects the lines of one atomic shipment.
type ShipBatchRequest struct {
	LineIDs []string `json:"lineIds"`
}

// ShipBatch handles POST /api/v1/backorders/ship-batch.
// Ships all selected lines or none: a failing line rejects the whole
// batch and the response lists every failing line.
func (s *Server) ShipBatch(ctx echo.Context) error {
	var req ShipBatchRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	ids, err := parseLineIDs(req.LineIDs)
	if err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewShipBatchCommand(ids, s.actor(ctx))
	if err != nil {
		return rejection(ctx, err)
	}

	if err := s.shipBatchHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return rejection(ctx, err)
	}

	return accepted(ctx, nil)
}

// ShipSingle handles POST /api/v1/backorders/:id/ship.
func (s *Server) ShipSingle(ctx echo.Context) error {
	id, err := parseLineID(ctx)
	if err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewShipSingleCommand(id, s.actor(ctx))
	if err != nil {
		return rejection(ctx, err)
	}

	if err := s.shipSingleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return rejection(ctx, err)
	}

	return accepted(ctx, nil)
}

// CancelShipmentRequest acknowledges bundle cancellation when needed.
type CancelShipmentRequest struct {
	ConfirmBundle bool `json:"confirmBundle"`
}

// CancelShipment handles POST /api/v1/backorders/:id/cancel-shipment.
func (s *Server) CancelShipment(ctx echo.Context) error {
	id, err := parseLineID(ctx)
	if err != nil {
		return badRequest(ctx)
	}

	var req CancelShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewCancelShipmentCommand(id, s.actor(ctx), req.ConfirmBundle)
	if err != nil {
		return rejection(ctx, err)
	}

	if err := s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return rejection(ctx, err)
	}

	return accepted(ctx, nil)
}

// SetBundleFlagRequest carries the desired flag state.
type SetBundleFlagRequest struct {
	Value bool `json:"value"`
}

// SetBundleFlag handles POST /api/v1/backorders/:id/bundle-flag.
func (s *Server) SetBundleFlag(ctx echo.Context) error {
	id, err := parseLineID(ctx)
	if err != nil {
		return badRequest(ctx)
	}

	var req SetBundleFlagRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewSetBundleFlagCommand(id, req.Value)
	if err != nil {
		return rejection(ctx, err)
	}

	if err := s.setBundleFlagHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return rejection(ctx, err)
	}

	return accepted(ctx, map[string]any{"bundleFlag": req.Value})
}

// EditValueRequest carries a raw edited value, exactly as typed.
type EditValueRequest struct {
	Value string `json:"value"`
}

// EditReconciliation handles POST /api/v1/reconciliation/:id/input.
// An accepted edit answers with the recomputed diff so clients never
// derive it themselves.
func (s *Server) EditReconciliation(ctx echo.Context) error {
	id, err := parseLineID(ctx)
	if err != nil {
		return badRequest(ctx)
	}

	var req EditValueRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewEditReconciliationCommand(id, req.Value)
	if err != nil {
		return rejection(ctx, err)
	}

	result, err := s.editReconciliationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return rejection(ctx, err)
	}

	return accepted(ctx, map[string]any{
		"inputQty":             result.InputQty,
		"diff":                 result.Diff,
		"changedSinceBaseline": result.ChangedSinceBaseline,
	})
}

// CommitReconciliationRequest selects the lines to finalize.
type CommitReconciliationRequest struct {
	LineIDs []string `json:"lineIds"`
}

// CommitReconciliation handles POST /api/v1/reconciliation/commit.
func (s *Server) CommitReconciliation(ctx echo.Context) error {
	var req CommitReconciliationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	ids, err := parseLineIDs(req.LineIDs)
	if err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewCommitReconciliationCommand(ids, s.actor(ctx))
	if err != nil {
		return rejection(ctx, err)
	}

	if err := s.commitReconciliationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return rejection(ctx, err)
	}

	return accepted(ctx, nil)
}

// EditDiscount handles POST /api/v1/discounts/:id/discount.
// An accepted edit answers with the recomputed unit price and amount.
func (s *Server) EditDiscount(ctx echo.Context) error {
	id, err := parseLineID(ctx)
	if err != nil {
		return badRequest(ctx)
	}

	var req EditValueRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewEditDiscountCommand(id, req.Value)
	if err != nil {
		return rejection(ctx, err)
	}

	result, err := s.editDiscountHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return rejection(ctx, err)
	}

	return accepted(ctx, map[string]any{
		"unitPrice":    result.UnitPrice.String(),
		"amount":       result.Amount.String(),
		"overrideFlag": result.OverrideFlag,
	})
}

// ApplyFactoryDefaultRequest registers a default discount for a factory and SKU.
type ApplyFactoryDefaultRequest struct {
	FactoryID   string `json:"factoryId"`
	SkuID       string `json:"skuId"`
	DiscountAmt string `json:"discountAmt"`
}

// ApplyFactoryDefault handles POST /api/v1/discounts/defaults.
func (s *Server) ApplyFactoryDefault(ctx echo.Context) error {
	var req ApplyFactoryDefaultRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx)
	}

	amount, err := decimal.NewFromString(req.DiscountAmt)
	if err != nil {
		return ctx.JSON(http.StatusUnprocessableEntity, ActionResponse{
			Accepted:  false,
			ErrorKind: "InvalidDiscount",
		})
	}

	cmd, err := commands.NewApplyFactoryDefaultCommand(req.FactoryID, req.SkuID, amount)
	if err != nil {
		return rejection(ctx, err)
	}

	if err := s.applyFactoryDefaultHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return rejection(ctx, err)
	}

	return accepted(ctx, nil)
}

// OpenBackorderLine is the wire shape of one open fulfillment line.
type OpenBackorderLine struct {
	ID           string `json:"id"`
	SellerID     string `json:"sellerId"`
	SkuID        string `json:"skuId"`
	OrderedQty   int    `json:"orderedQty"`
	ShippedQty   int    `json:"shippedQty"`
	StoreHeldQty int    `json:"storeHeldQty"`
	RemainingQty int    `json:"remainingQty"`
	Rank         int    `json:"rank"`
	DelayFlag    bool   `json:"delayFlag"`
	BundleFlag   bool   `json:"bundleFlag"`
	Status       string `json:"status"`
}

// GetOpenBackorders handles GET /api/v1/backorders/open.
func (s *Server) GetOpenBackorders(ctx echo.Context) error {
	query := queries.NewGetOpenBackordersQuery()

	lines, err := s.getOpenBackordersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return rejection(ctx, err)
	}

	response := make([]OpenBackorderLine, len(lines))
	for i, line := range lines {
		response[i] = OpenBackorderLine{
			ID:           line.ID.String(),
			SellerID:     line.SellerID,
			SkuID:        line.SkuID,
			OrderedQty:   line.OrderedQty,
			ShippedQty:   line.ShippedQty,
			StoreHeldQty: line.StoreHeldQty,
			RemainingQty: line.RemainingQty,
			Rank:         line.Rank,
			DelayFlag:    line.DelayFlag,
			BundleFlag:   line.BundleFlag,
			Status:       line.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReconciliationLine is the wire shape of one reconciliation line.
type ReconciliationLine struct {
	ID                string `json:"id"`
	SkuID             string `json:"skuId"`
	StoreInventoryQty int    `json:"storeInventoryQty"`
	ConfirmedQty      int    `json:"confirmedQty"`
	InputQty          int    `json:"inputQty"`
	Diff              int    `json:"diff"`
	Locked            bool   `json:"locked"`
	LockedBy          string `json:"lockedBy,omitempty"`
}

// GetReconciliationBatch handles GET /api/v1/reconciliation.
func (s *Server) GetReconciliationBatch(ctx echo.Context) error {
	query := queries.NewGetReconciliationBatchQuery()

	lines, err := s.getReconciliationBatchHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return rejection(ctx, err)
	}

	response := make([]ReconciliationLine, len(lines))
	for i, line := range lines {
		response[i] = ReconciliationLine{
			ID:                line.ID.String(),
			SkuID:             line.SkuID,
			StoreInventoryQty: line.StoreInventoryQty,
			ConfirmedQty:      line.ConfirmedQty,
			InputQty:          line.InputQty,
			Diff:              line.Diff,
			Locked:            line.Locked,
			LockedBy:          line.LockedBy,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
