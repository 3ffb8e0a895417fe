package warehouse

import (
	"context"
	"fmt"

	"github.com/businaro/backend/internal/domain/shared"
	"github.com/businaro/backend/internal/domain/warehouse"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService owns the stock-ledger invariant: every lot quantity or status
// mutation is paired with exactly one immutable StockMovement, inside one
// atomic transaction. It exposes Pick, QuarantineIn and QuarantineDecision.
//
// The service is tenant-agnostic and stateless between calls; the caller
// resolves the tenant and the authenticated operator before invoking it.
type LedgerService struct {
	lotRepo      warehouse.InventoryLotRepository
	movementRepo warehouse.StockMovementRepository
	scope        TransactionScope
	rules        warehouse.Rules
	validate     *validator.Validate
}

// NewLedgerService creates a new LedgerService. The direct repositories serve
// read operations; all writes go through the transaction scope.
func NewLedgerService(
	lotRepo warehouse.InventoryLotRepository,
	movementRepo warehouse.StockMovementRepository,
	scope TransactionScope,
	rules warehouse.Rules,
) *LedgerService {
	return &LedgerService{
		lotRepo:      lotRepo,
		movementRepo: movementRepo,
		scope:        scope,
		rules:        rules,
		validate:     NewCommandValidator(),
	}
}

func (s *LedgerService) validateCommand(cmd interface{}) error {
	if err := s.validate.Struct(cmd); err != nil {
		return shared.NewValidationError("INVALID_COMMAND", err.Error())
	}
	return nil
}

// Pick consumes stock from a lot for a job order. The lot quantity is
// decremented and one PICKING movement with a negative delta is appended in
// the same transaction. The lot status is left untouched even when the
// quantity reaches zero.
func (s *LedgerService) Pick(ctx context.Context, tenantID uuid.UUID, cmd PickCommand) (*PickResult, error) {
	if err := s.validateCommand(cmd); err != nil {
		return nil, err
	}
	if s.rules.RequireJobOrderOnPick() && cmd.JobOrderID == nil {
		return nil, shared.NewValidationError("JOB_ORDER_REQUIRED", "A job order is required for picking")
	}

	var result *PickResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		lot, err := repos.LotRepo().FindByIDForUpdate(ctx, tenantID, cmd.LotID)
		if err != nil {
			return err
		}

		if !s.rules.IsPickable(lot.Status) {
			return shared.NewForbiddenError("LOT_NOT_PICKABLE",
				fmt.Sprintf("Lot %s cannot be picked in status %s", lot.ID, lot.Status))
		}
		if !lot.CanFulfill(cmd.Quantity) {
			return shared.NewValidationError("INSUFFICIENT_QUANTITY",
				fmt.Sprintf("Insufficient quantity in lot %s: requested %s, available %s",
					lot.ID, cmd.Quantity.String(), lot.Quantity.String()))
		}

		status := lot.Status
		if err := lot.Consume(cmd.Quantity); err != nil {
			return err
		}
		if err := repos.LotRepo().SaveWithLock(ctx, lot); err != nil {
			return err
		}

		movement, err := warehouse.NewStockMovement(
			tenantID, lot.ID, lot.ProductID,
			cmd.Quantity.Neg(), status, status,
			warehouse.ReasonPicking, cmd.OperatorID,
		)
		if err != nil {
			return err
		}
		if cmd.JobOrderID != nil {
			movement.WithJobOrder(*cmd.JobOrderID)
		}
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return err
		}

		result = &PickResult{LotID: lot.ID, NewQuantity: lot.Quantity}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// QuarantineIn forces a lot back into QUARANTINE regardless of its current
// status. One zero-delta movement documenting the transition is appended in
// the same transaction.
func (s *LedgerService) QuarantineIn(ctx context.Context, tenantID uuid.UUID, cmd QuarantineInCommand) (*StatusResult, error) {
	if err := s.validateCommand(cmd); err != nil {
		return nil, err
	}
	if !cmd.Condition.IsValid() {
		return nil, shared.NewValidationError("INVALID_CONDITION", "Invalid lot condition: "+string(cmd.Condition))
	}

	var result *StatusResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		lot, err := repos.LotRepo().FindByIDForUpdate(ctx, tenantID, cmd.LotID)
		if err != nil {
			return err
		}

		previous := lot.MoveToQuarantine()
		if err := repos.LotRepo().SaveWithLock(ctx, lot); err != nil {
			return err
		}

		movement, err := warehouse.NewStockMovement(
			tenantID, lot.ID, lot.ProductID,
			decimal.Zero, previous, warehouse.LotStatusQuarantine,
			warehouse.ReasonReturnToQuarantine, cmd.OperatorID,
		)
		if err != nil {
			return err
		}
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return err
		}

		result = &StatusResult{LotID: lot.ID, Status: lot.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// QuarantineDecision records the outcome of a quarantine inspection: APPROVE
// restores the lot to AVAILABLE, REJECT scraps it. One zero-delta movement
// documenting the transition is appended in the same transaction.
//
// While the quarantine-restock flag is on, the decision pathway is rejected
// outright. This mirrors the behavior shipped in production; see DESIGN.md
// before changing the polarity of this guard.
func (s *LedgerService) QuarantineDecision(ctx context.Context, tenantID uuid.UUID, cmd QuarantineDecisionCommand) (*StatusResult, error) {
	if err := s.validateCommand(cmd); err != nil {
		return nil, err
	}
	if s.rules.QuarantineRestockAllowed() {
		return nil, shared.NewValidationError("DIRECT_RESTOCK_NOT_PERMITTED",
			"Direct restock from quarantine is not permitted")
	}
	if !cmd.Decision.IsValid() {
		return nil, shared.NewValidationError("INVALID_DECISION", "Decision must be APPROVE or REJECT")
	}

	var result *StatusResult
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		lot, err := repos.LotRepo().FindByIDForUpdate(ctx, tenantID, cmd.LotID)
		if err != nil {
			return err
		}

		if err := lot.ApplyQuarantineDecision(cmd.Decision); err != nil {
			return err
		}
		if err := repos.LotRepo().SaveWithLock(ctx, lot); err != nil {
			return err
		}

		reason := warehouse.ReasonQCApproved
		if cmd.Decision == warehouse.QuarantineReject {
			reason = warehouse.ReasonQCRejected
		}
		movement, err := warehouse.NewStockMovement(
			tenantID, lot.ID, lot.ProductID,
			decimal.Zero, warehouse.LotStatusQuarantine, lot.Status,
			reason, cmd.OperatorID,
		)
		if err != nil {
			return err
		}
		if err := repos.MovementRepo().Create(ctx, movement); err != nil {
			return err
		}

		result = &StatusResult{LotID: lot.ID, Status: lot.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// GetLot returns the current state of a lot
func (s *LedgerService) GetLot(ctx context.Context, tenantID, lotID uuid.UUID) (*LotResponse, error) {
	lot, err := s.lotRepo.FindByIDForTenant(ctx, tenantID, lotID)
	if err != nil {
		return nil, err
	}
	response := ToLotResponse(lot)
	return &response, nil
}

// LotHistory returns the movement ledger of a lot, most recent first. The
// ledger is append-only, so replaying it reconstructs every quantity and
// status change the lot went through.
func (s *LedgerService) LotHistory(ctx context.Context, tenantID, lotID uuid.UUID, filter shared.Filter) ([]MovementResponse, int64, error) {
	movements, err := s.movementRepo.FindByLot(ctx, tenantID, lotID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.movementRepo.CountByLot(ctx, tenantID, lotID)
	if err != nil {
		return nil, 0, err
	}
	return ToMovementResponses(movements), total, nil
}
