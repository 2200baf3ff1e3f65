package cmd

import (
	"context"
	"errors"
	"fmt"

	httpin "dentallab/internal/adapters/in/http"
	"dentallab/internal/adapters/out/kafka"
	"dentallab/internal/adapters/out/locks"
	"dentallab/internal/adapters/out/memory"
	"dentallab/internal/adapters/out/postgres"
	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/core/ports"
	"dentallab/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	cfg    Config
	logger *zap.Logger

	uowFactory ports.UnitOfWorkFactory
	locker     ports.AggregateLocker
	publisher  ports.EventPublisher

	closers []func() error
}

// NewCompositionRoot wires storage, locking and event publishing according to cfg.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *zap.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{cfg: cfg, logger: logger}

	if err := c.initPublisher(); err != nil {
		return nil, err
	}
	if err := c.initStorage(); err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := c.initLocker(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

func (c *CompositionRoot) initPublisher() error {
	brokers := c.cfg.Kafka.BrokerList()
	if len(brokers) == 0 {
		c.logger.Info("No Kafka brokers configured, domain events are logged only")
		c.publisher = kafka.NewLogPublisher(c.logger)
		return nil
	}

	publisher, err := kafka.NewPublisher(kafka.Config{
		Brokers:         brokers,
		Topic:           c.cfg.Kafka.Topic,
		ClientID:        c.cfg.Kafka.ClientID,
		DeliveryTimeout: c.cfg.Kafka.DeliveryTimeout,
	}, c.logger)
	if err != nil {
		return fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	c.closers = append(c.closers, func() error {
		publisher.Close()
		return nil
	})

	// Commits happen under aggregate locks; the broker is never awaited there.
	dispatcher := kafka.NewDispatcher(publisher, c.cfg.Kafka.DeliveryTimeout, c.logger)
	c.publisher = dispatcher
	c.closers = append(c.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.Kafka.DeliveryTimeout)
		defer cancel()
		return dispatcher.Close(ctx)
	})
	return nil
}

func (c *CompositionRoot) initStorage() error {
	if c.cfg.Storage.Driver == StorageDriverMemory {
		c.uowFactory = memory.NewUnitOfWorkFactory(memory.NewStore(), c.publisher, c.logger)
		return nil
	}

	gormDB, err := gorm.Open(gormpostgres.Open(c.cfg.DB.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	c.closers = append(c.closers, sqlDB.Close)

	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, c.publisher, c.logger, c.cfg.DB.LockTimeout)
	return nil
}

func (c *CompositionRoot) initLocker(ctx context.Context) error {
	if c.cfg.Lock.Backend != LockBackendRedis {
		c.locker = locks.NewSemaphoreLocker(c.cfg.Lock.WaitTimeout)
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     c.cfg.Redis.Addr,
		Password: c.cfg.Redis.Password,
		DB:       c.cfg.Redis.DB,
	})
	c.closers = append(c.closers, client.Close)
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}

	c.locker = locks.NewRedisLocker(client, locks.RedisLockerConfig{
		Wait: c.cfg.Lock.WaitTimeout,
		TTL:  c.cfg.Lock.TTL,
	}, c.logger)
	return nil
}

// Close releases connections in reverse order of acquisition.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outsourcingUoWFactory() commands.OutsourcingUoWFactory {
	return FuncOutsourcingUoWFactory(func() commands.OutsourcingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) readUoWFactory() queries.ReadUoWFactory {
	return FuncReadUoWFactory(func() queries.ReadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateSaveOfferingCommandHandler() commands.SaveOfferingCommandHandler {
	return commands.NewSaveOfferingCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOfferingCommandHandler() commands.DeleteOfferingCommandHandler {
	return commands.NewDeleteOfferingCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateSetOfferingActiveCommandHandler() commands.SetOfferingActiveCommandHandler {
	return commands.NewSetOfferingActiveCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateChangeChargedValueCommandHandler() commands.ChangeChargedValueCommandHandler {
	return commands.NewChangeChargedValueCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateRescheduleDeliveryCommandHandler() commands.RescheduleDeliveryCommandHandler {
	return commands.NewRescheduleDeliveryCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateAddStageCommandHandler() commands.AddStageCommandHandler {
	return commands.NewAddStageCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateAdvanceStageCommandHandler() commands.AdvanceStageCommandHandler {
	return commands.NewAdvanceStageCommandHandler(c.orderUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateFlagOverdueOrdersCommandHandler() commands.FlagOverdueOrdersCommandHandler {
	return commands.NewFlagOverdueOrdersCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateRequestOutsourcingCommandHandler() commands.RequestOutsourcingCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestOutsourcingCommandHandler(f, c.locker)
}

func (c *CompositionRoot) CreateRespondOutsourcingCommandHandler() commands.RespondOutsourcingCommandHandler {
	return commands.NewRespondOutsourcingCommandHandler(c.outsourcingUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateStartOutsourcingCommandHandler() commands.StartOutsourcingCommandHandler {
	return commands.NewStartOutsourcingCommandHandler(c.outsourcingUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateCompleteOutsourcingCommandHandler() commands.CompleteOutsourcingCommandHandler {
	return commands.NewCompleteOutsourcingCommandHandler(c.outsourcingUoWFactory(), c.locker)
}

func (c *CompositionRoot) CreateCancelOutsourcingCommandHandler() commands.CancelOutsourcingCommandHandler {
	return commands.NewCancelOutsourcingCommandHandler(c.outsourcingUoWFactory(), c.locker)
}

// CreateHTTPHandlers collects every use case served over HTTP.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	reader := c.readUoWFactory()
	return httpin.Handlers{
		SaveOffering:        c.CreateSaveOfferingCommandHandler(),
		DeleteOffering:      c.CreateDeleteOfferingCommandHandler(),
		SetOfferingActive:   c.CreateSetOfferingActiveCommandHandler(),
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		TransitionOrder:     c.CreateTransitionOrderCommandHandler(),
		ChangeChargedValue:  c.CreateChangeChargedValueCommandHandler(),
		RescheduleDelivery:  c.CreateRescheduleDeliveryCommandHandler(),
		AddStage:            c.CreateAddStageCommandHandler(),
		AdvanceStage:        c.CreateAdvanceStageCommandHandler(),
		RequestOutsourcing:  c.CreateRequestOutsourcingCommandHandler(),
		RespondOutsourcing:  c.CreateRespondOutsourcingCommandHandler(),
		StartOutsourcing:    c.CreateStartOutsourcingCommandHandler(),
		CompleteOutsourcing: c.CreateCompleteOutsourcingCommandHandler(),
		CancelOutsourcing:   c.CreateCancelOutsourcingCommandHandler(),

		GetOrder:                queries.NewGetOrderQueryHandler(reader),
		GetOrderByCode:          queries.NewGetOrderByCodeQueryHandler(reader),
		ListOrders:              queries.NewListOrdersQueryHandler(reader),
		ListOverdueOrders:       queries.NewListOverdueOrdersQueryHandler(reader),
		GetOffering:             queries.NewGetOfferingQueryHandler(reader),
		ListOfferings:           queries.NewListOfferingsQueryHandler(reader),
		ListEligibleDelegates:   queries.NewListEligibleDelegatesQueryHandler(reader),
		GetOutsourcingRequest:   queries.NewGetOutsourcingRequestQueryHandler(reader),
		ListOutsourcingRequests: queries.NewListOutsourcingRequestsQueryHandler(reader),
		GetSettlement:           queries.NewGetSettlementQueryHandler(reader),
	}
}

// CreateRouter builds the echo instance serving the API.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	server := httpin.NewServer(c.CreateHTTPHandlers())
	return httpin.NewRouter(ctx, server, httpin.RouterConfig{JWTSecret: c.cfg.JWT.Secret}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateFlagOverdueOrdersCommandHandler()
	return jobs.NewJobManager(&handler, c.cfg.Jobs.OverdueSchedule, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOutsourcingUoWFactory func() commands.OutsourcingUoW

func (f FuncOutsourcingUoWFactory) Create() commands.OutsourcingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW {
	return f()
}
