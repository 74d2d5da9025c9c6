package cmd

import (
	"log/slog"

	"foodorder/internal/adapters/out/geo"
	"foodorder/internal/adapters/out/payment"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/ws"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use case handlers. It owns the shared
// infrastructure (database, geo client, payment gateway, operator hub) and
// hands out fully constructed handlers.
type CompositionRoot struct {
	configs        Config
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	geoClient      *geo.Client
	paymentGateway *payment.SimulatedGateway
	operatorHub    *ws.Hub
	logger         *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:        configs,
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		geoClient:      geo.NewClient(configs.GeoBaseURL, configs.GeoAPIKey),
		paymentGateway: payment.NewSimulatedGateway(logger),
		operatorHub:    ws.NewHub(logger),
		logger:         logger,
	}
}

// OperatorHub exposes the websocket hub so the web server can register the
// operator endpoint. Run must be started by the caller.
func (c *CompositionRoot) OperatorHub() *ws.Hub {
	return c.operatorHub
}

func (c *CompositionRoot) createOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) createSubmitUoWFactory() commands.SubmitUoWFactory {
	return FuncSubmitUoWFactory(func() commands.SubmitUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(
		c.createSubmitUoWFactory(), c.geoClient, c.configs.ShopAddress, c.configs.DeliveryRadiusMeters)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.createOrderUoWFactory(), c.operatorHub)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.createOrderUoWFactory(), c.paymentGateway)
}

func (c *CompositionRoot) CreateCancelOrderByMerchantCommandHandler() commands.CancelOrderByMerchantCommandHandler {
	return commands.NewCancelOrderByMerchantCommandHandler(c.createOrderUoWFactory(), c.paymentGateway)
}

func (c *CompositionRoot) CreateCancelOrderByUserCommandHandler() commands.CancelOrderByUserCommandHandler {
	return commands.NewCancelOrderByUserCommandHandler(c.createOrderUoWFactory(), c.paymentGateway)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateRemindOrderCommandHandler() commands.RemindOrderCommandHandler {
	return commands.NewRemindOrderCommandHandler(c.createOrderUoWFactory(), c.operatorHub)
}

func (c *CompositionRoot) CreateExpireTimedOutPaymentsCommandHandler() commands.ExpireTimedOutPaymentsCommandHandler {
	return commands.NewExpireTimedOutPaymentsCommandHandler(
		c.createOrderUoWFactory(), c.configs.PaymentTimeout, c.logger)
}

func (c *CompositionRoot) CreateCompleteStaleDeliveriesCommandHandler() commands.CompleteStaleDeliveriesCommandHandler {
	return commands.NewCompleteStaleDeliveriesCommandHandler(
		c.createOrderUoWFactory(), c.configs.DeliveryTimeout, c.logger)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchOrdersQueryHandler() queries.SearchOrdersQueryHandler {
	return queries.NewSearchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatisticsQueryHandler() queries.GetOrderStatisticsQueryHandler {
	return queries.NewGetOrderStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailySummaryQueryHandler() queries.GetDailySummaryQueryHandler {
	return queries.NewGetDailySummaryQueryHandler(c.gormDB)
}

// CreateJobManager wires the timeout sweep jobs with their configured
// schedules.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireTimedOutPaymentsCommandHandler(),
		c.CreateCompleteStaleDeliveriesCommandHandler(),
		c.configs.PaymentSweepSpec,
		c.configs.DeliverySweepSpec,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSubmitUoWFactory func() commands.SubmitUoW

func (f FuncSubmitUoWFactory) Create() commands.SubmitUoW {
	return f()
}
