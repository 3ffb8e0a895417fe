package production

import (
	"context"
	"fmt"

	appwh "github.com/businaro/backend/internal/application/warehouse"
	"github.com/businaro/backend/internal/domain/catalog"
	"github.com/businaro/backend/internal/domain/production"
	"github.com/businaro/backend/internal/domain/shared"
	"github.com/businaro/backend/internal/domain/warehouse"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TransformationService performs the two-sided stock movement of a
// manufacturing conversion: the source lot is debited and the destination lot
// is credited (or created) with the same quantity, each side documented by
// its own movement record. Both sides commit in one transaction or not at
// all, so the ledger deltas of a transformation always sum to zero.
type TransformationService struct {
	productRepo catalog.ProductRepository
	scope       appwh.TransactionScope
	rules       production.Rules
	validate    *validator.Validate
}

// NewTransformationService creates a new TransformationService
func NewTransformationService(
	productRepo catalog.ProductRepository,
	scope appwh.TransactionScope,
	rules production.Rules,
) *TransformationService {
	return &TransformationService{
		productRepo: productRepo,
		scope:       scope,
		rules:       rules,
		validate:    appwh.NewCommandValidator(),
	}
}

// Transform converts quantity from the source product's lot into the target
// product. The destination lot is resolved by merge key (target product,
// source lot's location, source lot's condition, no batch/serial): an
// existing AVAILABLE lot is incremented, otherwise a new lot is created with
// the condition propagated from the source.
//
// All precondition checks that do not need a row lock run before the
// transaction opens; a failed check leaves the store untouched.
func (s *TransformationService) Transform(ctx context.Context, tenantID uuid.UUID, cmd TransformCommand) (*TransformResult, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return nil, shared.NewValidationError("INVALID_COMMAND", err.Error())
	}

	if !s.rules.IsDepartmentAllowed(cmd.OperatorDepartment) {
		return nil, shared.NewForbiddenError("DEPARTMENT_NOT_ALLOWED",
			fmt.Sprintf("Department %s is not allowed to run transformations", cmd.OperatorDepartment))
	}

	source, err := s.productRepo.FindBySKU(ctx, tenantID, cmd.SourceSKU)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewValidationError("UNKNOWN_SOURCE_SKU",
				fmt.Sprintf("Source product not found: %s", cmd.SourceSKU))
		}
		return nil, err
	}
	target, err := s.productRepo.FindBySKU(ctx, tenantID, cmd.TargetSKU)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, shared.NewValidationError("UNKNOWN_TARGET_SKU",
				fmt.Sprintf("Target product not found: %s", cmd.TargetSKU))
		}
		return nil, err
	}

	if !s.rules.IsTransformationAllowed(source.Type, target.Type) {
		return nil, shared.NewValidationError("TRANSFORMATION_NOT_ALLOWED",
			fmt.Sprintf("Transformation from %s to %s is not allowed", source.Type, target.Type))
	}

	var result *TransformResult
	err = s.scope.Execute(ctx, func(repos appwh.TransactionalRepositories) error {
		sourceLot, err := repos.LotRepo().FindByIDForUpdate(ctx, tenantID, cmd.SourceLotID)
		if err != nil {
			return err
		}

		if sourceLot.ProductID != source.ID {
			return shared.NewValidationError("LOT_PRODUCT_MISMATCH",
				fmt.Sprintf("Lot %s does not contain product %s", sourceLot.ID, cmd.SourceSKU))
		}
		if sourceLot.Status != warehouse.LotStatusAvailable {
			return shared.NewValidationError("LOT_NOT_AVAILABLE",
				fmt.Sprintf("Lot %s is not available (status %s)", sourceLot.ID, sourceLot.Status))
		}
		if !sourceLot.CanFulfill(cmd.Quantity) {
			return shared.NewValidationError("INSUFFICIENT_QUANTITY",
				fmt.Sprintf("Insufficient quantity in lot %s: requested %s, available %s",
					sourceLot.ID, cmd.Quantity.String(), sourceLot.Quantity.String()))
		}

		if err := sourceLot.Consume(cmd.Quantity); err != nil {
			return err
		}
		if err := repos.LotRepo().SaveWithLock(ctx, sourceLot); err != nil {
			return err
		}

		input, err := warehouse.NewStockMovement(
			tenantID, sourceLot.ID, source.ID,
			cmd.Quantity.Neg(), warehouse.LotStatusAvailable, warehouse.LotStatusAvailable,
			warehouse.ReasonTransformationInput, cmd.OperatorID,
		)
		if err != nil {
			return err
		}
		input.WithJobOrder(cmd.JobOrderID)
		if err := repos.MovementRepo().Create(ctx, input); err != nil {
			return err
		}

		targetLot, err := s.resolveDestination(ctx, repos, tenantID, target.ID, sourceLot, cmd)
		if err != nil {
			return err
		}

		output, err := warehouse.NewStockMovement(
			tenantID, targetLot.ID, target.ID,
			cmd.Quantity, warehouse.LotStatusAvailable, warehouse.LotStatusAvailable,
			warehouse.ReasonTransformationOutput, cmd.OperatorID,
		)
		if err != nil {
			return err
		}
		output.WithJobOrder(cmd.JobOrderID)
		if err := repos.MovementRepo().Create(ctx, output); err != nil {
			return err
		}

		result = &TransformResult{
			SourceLotID:    sourceLot.ID,
			TargetLotID:    targetLot.ID,
			TargetQuantity: targetLot.Quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveDestination finds the AVAILABLE destination lot at the source lot's
// location with the source lot's condition, incrementing it when present and
// creating it otherwise.
func (s *TransformationService) resolveDestination(
	ctx context.Context,
	repos appwh.TransactionalRepositories,
	tenantID, targetProductID uuid.UUID,
	sourceLot *warehouse.InventoryLot,
	cmd TransformCommand,
) (*warehouse.InventoryLot, error) {
	key := warehouse.LotMergeKey{
		ProductID:  targetProductID,
		LocationID: sourceLot.LocationID,
		Status:     warehouse.LotStatusAvailable,
		Condition:  sourceLot.Condition,
	}

	targetLot, err := repos.LotRepo().FindByMergeKey(ctx, tenantID, key)
	if err == nil {
		if err := targetLot.Receive(cmd.Quantity); err != nil {
			return nil, err
		}
		if err := repos.LotRepo().SaveWithLock(ctx, targetLot); err != nil {
			return nil, err
		}
		return targetLot, nil
	}
	if !shared.IsNotFound(err) {
		return nil, err
	}

	targetLot, err = warehouse.NewInventoryLot(
		tenantID, targetProductID, sourceLot.LocationID,
		cmd.Quantity, warehouse.LotStatusAvailable, sourceLot.Condition,
		nil, nil,
	)
	if err != nil {
		return nil, err
	}
	if err := repos.LotRepo().Create(ctx, targetLot); err != nil {
		return nil, err
	}
	return targetLot, nil
}
