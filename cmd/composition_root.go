package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

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

func (c *CompositionRoot) CreateCompleteCollectionCommandHandler() commands.CompleteCollectionCommandHandler {
	var f commands.CollectionUoWFactory = FuncCollectionUoWFactory(func() commands.CollectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteCollectionCommandHandler(f)
}

func (c *CompositionRoot) CreateReportMissingCommandHandler() commands.ReportMissingCommandHandler {
	var f commands.EscalationUoWFactory = FuncEscalationUoWFactory(func() commands.EscalationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportMissingCommandHandler(f)
}

func (c *CompositionRoot) CreateApplyOfficeDecisionCommandHandler() commands.ApplyOfficeDecisionCommandHandler {
	var f commands.ResolutionUoWFactory = FuncResolutionUoWFactory(func() commands.ResolutionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyOfficeDecisionCommandHandler(f)
}

func (c *CompositionRoot) CreateAttemptAutoResolveCommandHandler() commands.AttemptAutoResolveCommandHandler {
	var f commands.ResolutionUoWFactory = FuncResolutionUoWFactory(func() commands.ResolutionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttemptAutoResolveCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderStatusQueryHandler() queries.GetOrderStatusQueryHandler {
	return queries.NewGetOrderStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProblemOrdersQueryHandler() queries.GetProblemOrdersQueryHandler {
	return queries.NewGetProblemOrdersQueryHandler(c.gormDB)
}

type FuncCollectionUoWFactory func() commands.CollectionUoW

func (f FuncCollectionUoWFactory) Create() commands.CollectionUoW {
	return f()
}

type FuncEscalationUoWFactory func() commands.EscalationUoW

func (f FuncEscalationUoWFactory) Create() commands.EscalationUoW {
	return f()
}

type FuncResolutionUoWFactory func() commands.ResolutionUoW

func (f FuncResolutionUoWFactory) Create() commands.ResolutionUoW {
	return f()
}
