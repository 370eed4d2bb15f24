package cmd

import (
	"log/slog"

	"pedidos/internal/adapters/out/notifier"
	"pedidos/internal/adapters/out/postgres"
	"pedidos/internal/adapters/out/postgres/skurepo"
	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	catalog    *skurepo.GormSKUCatalog
	notifier   *notifier.SlogSupervisorNotifier
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    skurepo.NewGormSKUCatalog(gormDB),
		notifier:   notifier.NewSlogSupervisorNotifier(logger),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderCreditUoWFactory = FuncOrderCreditUoWFactory(func() commands.OrderCreditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateValidateOrderCommandHandler() commands.ValidateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewValidateOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateReviewAdjustmentsCommandHandler() commands.ReviewAdjustmentsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewAdjustmentsCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcilePromotionsCommandHandler() commands.ReconcilePromotionsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcilePromotionsCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRouteCommandHandler() commands.AssignRouteCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNoDeliveryCommandHandler() commands.MarkNoDeliveryCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNoDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateAddEvidenceCommandHandler() commands.AddEvidenceCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddEvidenceCommandHandler(f)
}

func (c *CompositionRoot) CreateReportIncidentCommandHandler() commands.ReportIncidentCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportIncidentCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateResolveIncidentCommandHandler() commands.ResolveIncidentCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResolveIncidentCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveCreditCommandHandler() commands.ApproveCreditCommandHandler {
	var f commands.CreditUoWFactory = FuncCreditUoWFactory(func() commands.CreditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveCreditCommandHandler(f)
}

func (c *CompositionRoot) CreateRejectCreditCommandHandler() commands.RejectCreditCommandHandler {
	var f commands.CreditUoWFactory = FuncCreditUoWFactory(func() commands.CreditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectCreditCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterPaymentCommandHandler() commands.RegisterPaymentCommandHandler {
	var f commands.CreditUoWFactory = FuncCreditUoWFactory(func() commands.CreditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateSweepOverdueCreditsCommandHandler() commands.SweepOverdueCreditsCommandHandler {
	var f commands.CreditUoWFactory = FuncCreditUoWFactory(func() commands.CreditUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepOverdueCreditsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCreditStatementQueryHandler() queries.GetCreditStatementQueryHandler {
	return queries.NewGetCreditStatementQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepOverdueCreditsCommandHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncCreditUoWFactory func() commands.CreditUoW

func (f FuncCreditUoWFactory) Create() commands.CreditUoW {
	return f()
}

type FuncOrderCreditUoWFactory func() commands.OrderCreditUoW

func (f FuncOrderCreditUoWFactory) Create() commands.OrderCreditUoW {
	return f()
}

type FuncOrderDeliveryUoWFactory func() commands.OrderDeliveryUoW

func (f FuncOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
