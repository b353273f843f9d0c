package commands

import (
	"context"
	"fmt"

	"equiploan/internal/domain/history"
	"equiploan/internal/domain/request"
	reqdto "equiploan/internal/handler/dto/request"
	"equiploan/internal/infra"
	"equiploan/internal/notify"
	"equiploan/internal/pkg/clock"
	"equiploan/internal/pkg/errs"
	"equiploan/internal/usecase/queries"
	"equiploan/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound         = errs.New("request not found")
	ErrEquipmentNotFound       = errs.New("equipment not found")
	ErrInvalidDecision         = errs.New("invalid request decision")
	ErrRequestAlreadyDenied    = errs.New("request is already denied")
	ErrInsufficientStock       = errs.New("insufficient equipment quantity")
	ErrInvalidUnassignQuantity = errs.New("invalid quantity for unassigning equipment")
	ErrRequestNotPending       = errs.New("request is not pending")
	ErrRequestNotOwned         = errs.New("request belongs to another user")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Response messages mirrored by the admin frontend.
const (
	MsgRequestActivated = "Request activated successfully."
	MsgRequestDenied    = "Equipment request DENIED and DELETED successfully."
	MsgAllReturned      = "User has returned ALL EQUIPMENT. Request deleted."
)

type DecideResult struct {
	Message   string
	Equipment *shared.EquipmentSnapshot
}

type ReturnResult struct {
	Message string
	Deleted bool
	Request *queries.RequestView
}

type RequestCommands interface {
	Submit(ctx context.Context, req reqdto.SubmitRequest, userID uuid.UUID) (*queries.RequestView, error)
	Decide(ctx context.Context, requestID uuid.UUID, req reqdto.DecideRequest) (*DecideResult, error)
	Return(ctx context.Context, requestID uuid.UUID, req reqdto.ReturnRequest) (*ReturnResult, error)
	Cancel(ctx context.Context, requestID, userID uuid.UUID) error
}

type requestCommandsImpl struct {
	uow            shared.UnitOfWork
	requestQueries queries.RequestQueries
	publisher      EventPublisher
	clock          clock.Clock
}

func NewRequestCommands(
	uow shared.UnitOfWork,
	requestQueries queries.RequestQueries,
	publisher EventPublisher,
	clock clock.Clock,
) RequestCommands {
	return &requestCommandsImpl{
		uow:            uow,
		requestQueries: requestQueries,
		publisher:      publisher,
		clock:          clock,
	}
}

func (c *requestCommandsImpl) Submit(ctx context.Context, req reqdto.SubmitRequest, userID uuid.UUID) (*queries.RequestView, error) {
	if _, err := c.uow.CommandReads().EquipmentByID(ctx, req.EquipmentID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEquipmentNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := request.NewRequest(userID, req.EquipmentID, req.Quantity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var requestID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Requests().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return errs.Mark(createErr, ErrEquipmentNotFound)
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		requestID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.requestQueries.GetByID(ctx, requestID)
}

func (c *requestCommandsImpl) Decide(ctx context.Context, requestID uuid.UUID, req reqdto.DecideRequest) (*DecideResult, error) {
	decision := request.Decision(req.RequestStatus)
	if !decision.IsValid() {
		return nil, ErrInvalidDecision
	}

	var result *DecideResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Requests().FindForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRequestNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		switch decision {
		case request.DecisionActive:
			decideResult, acceptErr := c.accept(ctx, tx, entity)
			if acceptErr != nil {
				return acceptErr
			}
			result = decideResult
			return nil
		case request.DecisionDenied:
			snapshot, readErr := tx.Reads().EquipmentByID(ctx, entity.EquipmentID())
			if readErr != nil {
				if infra.IsKind(readErr, infra.KindNotFound) {
					return errs.Mark(readErr, ErrEquipmentNotFound)
				}
				return errs.Mark(readErr, ErrDatabaseOperationFailed)
			}
			if denyErr := entity.Deny(); denyErr != nil {
				return errs.Mark(denyErr, ErrRequestAlreadyDenied)
			}
			// Denial removes the request without touching inventory or
			// history: nothing was ever assigned. The equipment summary
			// still rides along for the admin frontend.
			if delErr := tx.Requests().Delete(ctx, tx.DB(), entity.ID()); delErr != nil {
				return errs.Mark(delErr, ErrDatabaseOperationFailed)
			}
			result = &DecideResult{Message: MsgRequestDenied, Equipment: snapshot}
			return nil
		default:
			return ErrInvalidDecision
		}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *requestCommandsImpl) accept(ctx context.Context, tx shared.Tx, entity *request.Request) (*DecideResult, error) {
	eq, err := tx.Equipment().FindForUpdate(ctx, tx.DB(), entity.EquipmentID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrEquipmentNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := eq.Reserve(entity.Quantity()); err != nil {
		return nil, errs.Mark(err, ErrInsufficientStock)
	}

	entity.Accept(c.clock.Now())

	if err := tx.Requests().Update(ctx, tx.DB(), entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if err := tx.Equipment().UpdateQuantity(ctx, tx.DB(), eq.ID(), eq.Quantity()); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &DecideResult{
		Message: MsgRequestActivated,
		Equipment: &shared.EquipmentSnapshot{
			ID:           eq.ID(),
			Name:         eq.Name(),
			FullName:     eq.FullName(),
			SerialNumber: eq.SerialNumber(),
			Condition:    eq.Condition(),
			Quantity:     eq.Quantity(),
		},
	}, nil
}

func (c *requestCommandsImpl) Return(ctx context.Context, requestID uuid.UUID, req reqdto.ReturnRequest) (*ReturnResult, error) {
	var (
		result  ReturnResult
		ownerID uuid.UUID
		payload notify.ReturnedPayload
	)

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Requests().FindForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRequestNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		eq, err := tx.Equipment().FindForUpdate(ctx, tx.DB(), entity.EquipmentID())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEquipmentNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		unassigned := req.UnassignQuantity
		remaining, err := entity.Return(unassigned)
		if err != nil {
			return errs.Mark(err, ErrInvalidUnassignQuantity)
		}

		entry, err := history.NewEntry(entity.UserID(), entity.EquipmentID(), unassigned, c.clock.Now(), request.StatusReturned)
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if _, err := tx.History().Append(ctx, tx.DB(), entry); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := eq.Release(unassigned); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := tx.Equipment().UpdateQuantity(ctx, tx.DB(), eq.ID(), eq.Quantity()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		message := fmt.Sprintf("Equipment RETURNED: %d → %s", unassigned, eq.Name())
		if remaining == 0 {
			message = fmt.Sprintf("Equipment ALL RETURNED: %d → %s", unassigned, eq.Name())
		}
		if _, err := tx.Notifications().Create(ctx, tx.DB(), entity.UserID(), message); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if entity.FullyReturned() {
			if err := tx.Requests().Delete(ctx, tx.DB(), entity.ID()); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			result.Deleted = true
			result.Message = MsgAllReturned
		} else {
			if err := tx.Requests().Update(ctx, tx.DB(), entity); err != nil {
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
			result.Message = fmt.Sprintf("Request status updated to RETURNED (%d → %s).", unassigned, eq.Name())
		}

		ownerID = entity.UserID()
		payload = notify.ReturnedPayload{
			RequestID:         entity.ID().String(),
			EquipmentName:     eq.Name(),
			ReturnedQuantity:  unassigned,
			RemainingQuantity: remaining,
			Message:           message,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Push after commit; a missing session must never fail the return.
	c.publisher.Emit(ownerID, notify.EventEquipmentReturned, payload)

	if !result.Deleted {
		view, err := c.requestQueries.GetByID(ctx, requestID)
		if err != nil {
			return nil, err
		}
		result.Request = view
	}

	return &result, nil
}

func (c *requestCommandsImpl) Cancel(ctx context.Context, requestID, userID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Requests().FindForUpdate(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrRequestNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if entity.UserID() != userID {
			return ErrRequestNotOwned
		}
		if !entity.IsPending() {
			return ErrRequestNotPending
		}

		if err := tx.Requests().Delete(ctx, tx.DB(), entity.ID()); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
