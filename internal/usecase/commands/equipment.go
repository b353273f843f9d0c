package commands

import (
	"context"

	reqdto "equiploan/internal/handler/dto/request"
	"equiploan/internal/infra"
	"equiploan/internal/pkg/errs"
	"equiploan/internal/pkg/patch"
	"equiploan/internal/usecase/queries"
	"equiploan/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateSerialNumber = errs.New("equipment serial number already registered")

type EquipmentCommands interface {
	Create(ctx context.Context, req reqdto.CreateEquipmentRequest) (*queries.EquipmentView, error)
	Update(ctx context.Context, equipmentID uuid.UUID, req reqdto.UpdateEquipmentRequest) (*queries.EquipmentView, error)
}

type equipmentCommandsImpl struct {
	uow              shared.UnitOfWork
	equipmentQueries queries.EquipmentQueries
}

func NewEquipmentCommands(uow shared.UnitOfWork, equipmentQueries queries.EquipmentQueries) EquipmentCommands {
	return &equipmentCommandsImpl{
		uow:              uow,
		equipmentQueries: equipmentQueries,
	}
}

func (c *equipmentCommandsImpl) Create(ctx context.Context, req reqdto.CreateEquipmentRequest) (*queries.EquipmentView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var equipmentID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, createErr := tx.Equipment().Create(ctx, tx.DB(), entity)
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindDuplicateKey) {
				return errs.Mark(createErr, ErrDuplicateSerialNumber)
			}
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		equipmentID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.equipmentQueries.GetByID(ctx, equipmentID)
}

func (c *equipmentCommandsImpl) Update(ctx context.Context, equipmentID uuid.UUID, req reqdto.UpdateEquipmentRequest) (*queries.EquipmentView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Equipment().FindForUpdate(ctx, tx.DB(), equipmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrEquipmentNotFound)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		description := entity.Description()
		if req.Description != nil {
			description = req.Description
		}

		updateErr := entity.Update(
			patch.Coalesce(req.Name, entity.Name()),
			patch.Coalesce(req.FullName, entity.FullName()),
			patch.Coalesce(req.SerialNumber, entity.SerialNumber()),
			patch.Coalesce(req.Condition, entity.Condition()),
			patch.Coalesce(req.Quantity, entity.Quantity()),
			description,
		)
		if updateErr != nil {
			return errs.Mark(updateErr, ErrDomainValidation)
		}

		if err := tx.Equipment().Update(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateSerialNumber)
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.equipmentQueries.GetByID(ctx, equipmentID)
}
