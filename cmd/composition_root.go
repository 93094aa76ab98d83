package cmd

import (
	"orderops/internal/adapters/out/postgres"
	"orderops/internal/core/application/usecases/commands"
	"orderops/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateShipBatchCommandHandler() commands.ShipBatchCommandHandler {
	var f commands.BackorderUoWFactory = FuncBackorderUoWFactory(func() commands.BackorderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipBatchCommandHandler(f)
}

func (c *CompositionRoot) CreateShipSingleCommandHandler() commands.ShipSingleCommandHandler {
	var f commands.BackorderUoWFactory = FuncBackorderUoWFactory(func() commands.BackorderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipSingleCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelShipmentCommandHandler() commands.CancelShipmentCommandHandler {
	var f commands.BackorderUoWFactory = FuncBackorderUoWFactory(func() commands.BackorderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateSetBundleFlagCommandHandler() commands.SetBundleFlagCommandHandler {
	var f commands.BackorderUoWFactory = FuncBackorderUoWFactory(func() commands.BackorderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetBundleFlagCommandHandler(f)
}

func (c *CompositionRoot) CreateEditReconciliationCommandHandler() commands.EditReconciliationCommandHandler {
	var f commands.ReconciliationUoWFactory = FuncReconciliationUoWFactory(func() commands.ReconciliationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditReconciliationCommandHandler(f)
}

func (c *CompositionRoot) CreateCommitReconciliationCommandHandler() commands.CommitReconciliationCommandHandler {
	var f commands.ReconciliationUoWFactory = FuncReconciliationUoWFactory(func() commands.ReconciliationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCommitReconciliationCommandHandler(f)
}

func (c *CompositionRoot) CreateEditDiscountCommandHandler() commands.EditDiscountCommandHandler {
	var f commands.DiscountUoWFactory = FuncDiscountUoWFactory(func() commands.DiscountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditDiscountCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyFactoryDefaultCommandHandler() commands.ApplyFactoryDefaultCommandHandler {
	var f commands.DiscountUoWFactory = FuncDiscountUoWFactory(func() commands.DiscountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyFactoryDefaultCommandHandler(f)
}

func (c *CompositionRoot) CreatePropagateDefaultsCommandHandler() commands.PropagateDefaultsCommandHandler {
	var f commands.DiscountUoWFactory = FuncDiscountUoWFactory(func() commands.DiscountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPropagateDefaultsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOpenBackordersQueryHandler() queries.GetOpenBackordersQueryHandler {
	return queries.NewGetOpenBackordersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReconciliationBatchQueryHandler() queries.GetReconciliationBatchQueryHandler {
	return queries.NewGetReconciliationBatchQueryHandler(c.gormDB)
}

type FuncBackorderUoWFactory func() commands.BackorderUoW

func (f FuncBackorderUoWFactory) Create() commands.BackorderUoW {
	return f()
}

type FuncReconciliationUoWFactory func() commands.ReconciliationUoW

func (f FuncReconciliationUoWFactory) Create() commands.ReconciliationUoW {
	return f()
}

type FuncDiscountUoWFactory func() commands.DiscountUoW

func (f FuncDiscountUoWFactory) Create() commands.DiscountUoW {
	return f()
}
