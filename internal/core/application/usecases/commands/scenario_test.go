package commands_test

import (
	"testing"
	"time"

	"dentallab/internal/adapters/out/locks"
	"dentallab/internal/adapters/out/memory"
	"dentallab/internal/core/application/usecases/commands"
	"dentallab/internal/core/application/usecases/queries"
	"dentallab/internal/core/domain/model/catalog"
	"dentallab/internal/core/domain/model/kernel"
	"dentallab/internal/core/domain/model/order"
	"dentallab/internal/core/domain/model/outsourcing"
	"dentallab/internal/core/ports"
	"dentallab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW { return f() }

type FuncOutsourcingUoWFactory func() commands.OutsourcingUoW

func (f FuncOutsourcingUoWFactory) Create() commands.OutsourcingUoW { return f() }

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW { return f() }

type FuncReadUoWFactory func() queries.ReadUoW

func (f FuncReadUoWFactory) Create() queries.ReadUoW { return f() }

type app struct {
	save       commands.SaveOfferingCommandHandler
	create     commands.CreateOrderCommandHandler
	transition commands.TransitionOrderCommandHandler
	charge     commands.ChangeChargedValueCommandHandler
	request    commands.RequestOutsourcingCommandHandler
	respond    commands.RespondOutsourcingCommandHandler
	start      commands.StartOutsourcingCommandHandler
	complete   commands.CompleteOutsourcingCommandHandler
	settlement queries.GetSettlementQueryHandler
}

func newApp() *app {
	return newAppWithPublisher(nil, time.Second)
}

func newAppWithPublisher(publisher ports.EventPublisher, lockWait time.Duration) *app {
	var factory ports.UnitOfWorkFactory = memory.NewUnitOfWorkFactory(memory.NewStore(), publisher, zap.NewNop())
	locker := locks.NewSemaphoreLocker(lockWait)

	orders := FuncOrderUoWFactory(func() commands.OrderUoW { return factory.Create() })
	catalogs := FuncCatalogUoWFactory(func() commands.CatalogUoW { return factory.Create() })
	requests := FuncOutsourcingUoWFactory(func() commands.OutsourcingUoW { return factory.Create() })
	all := FuncUoWFactory(func() commands.UoW { return factory.Create() })
	reader := FuncReadUoWFactory(func() queries.ReadUoW { return factory.Create() })

	return &app{
		save:       commands.NewSaveOfferingCommandHandler(catalogs),
		create:     commands.NewCreateOrderCommandHandler(orders),
		transition: commands.NewTransitionOrderCommandHandler(orders, locker),
		charge:     commands.NewChangeChargedValueCommandHandler(orders, locker),
		request:    commands.NewRequestOutsourcingCommandHandler(all, locker),
		respond:    commands.NewRespondOutsourcingCommandHandler(requests, locker),
		start:      commands.NewStartOutsourcingCommandHandler(requests, locker),
		complete:   commands.NewCompleteOutsourcingCommandHandler(requests, locker),
		settlement: queries.NewGetSettlementQueryHandler(reader),
	}
}

func (a *app) transitionTo(t *testing.T, by kernel.Actor, id kernel.ID, target order.Status) error {
	t.Helper()
	cmd, err := commands.NewTransitionOrderCommand(by, id, target)
	require.NoError(t, err)
	_, err = a.transition.Handle(t.Context(), cmd)
	return err
}

func (a *app) requestOutsourcing(t *testing.T, id kernel.ID) (*outsourcing.Request, error) {
	t.Helper()
	cmd, err := commands.NewRequestOutsourcingCommand(lab(t), commands.RequestOutsourcingParams{
		OrderID:    id,
		DelegateID: otherLab,
		Percentage: kernel.MustNewPercentage("60"),
	})
	require.NoError(t, err)
	return a.request.Handle(t.Context(), cmd)
}

func (a *app) settle(t *testing.T, requestID kernel.ID) string {
	t.Helper()
	query, err := queries.NewGetSettlementQuery(requestID)
	require.NoError(t, err)
	view, err := a.settlement.Handle(t.Context(), query)
	require.NoError(t, err)
	return view.Amount.String()
}

func TestOrderAndOutsourcingScenario(t *testing.T) {
	ctx := t.Context()
	a := newApp()
	executor := actor(t, otherLab, kernel.RoleFulfiller)

	self, err := catalog.NewTerms(kernel.MustNewMoney("500"), 7)
	require.NoError(t, err)
	delegated, err := catalog.NewTerms(kernel.MustNewMoney("400"), 10)
	require.NoError(t, err)
	saveOwn, err := commands.NewSaveOfferingCommand(lab(t), labID, kernel.ServiceTypeCrown, catalog.Spec{
		Policy:        catalog.PolicyEither,
		SelfTerms:     &self,
		DelegateTerms: &delegated,
	})
	require.NoError(t, err)
	_, err = a.save.Handle(ctx, saveOwn)
	require.NoError(t, err)

	saveDelegate, err := commands.NewSaveOfferingCommand(executor, otherLab, kernel.ServiceTypeCrown, catalog.Spec{
		Policy:        catalog.PolicyDelegateOnly,
		DelegateTerms: &delegated,
	})
	require.NoError(t, err)
	_, err = a.save.Handle(ctx, saveDelegate)
	require.NoError(t, err)

	create, err := commands.NewCreateOrderCommand(clinic(t), commands.CreateOrderParams{
		RequesterID:   clinicID,
		RequesterName: "Clinica Sorriso",
		FulfillerID:   labID,
		FulfillerName: "Lab Alpha",
		ServiceType:   kernel.ServiceTypeCrown,
	})
	require.NoError(t, err)
	created, err := a.create.Handle(ctx, create)
	require.NoError(t, err)
	assert.Equal(t, order.Draft, created.Status())
	require.NotNil(t, created.ChargedValue())
	assert.Equal(t, "500.00", created.ChargedValue().String())

	require.NoError(t, a.transitionTo(t, clinic(t), created.ID(), order.AwaitingApproval))
	require.NoError(t, a.transitionTo(t, lab(t), created.ID(), order.Approved))
	err = a.transitionTo(t, lab(t), created.ID(), order.AwaitingApproval)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.NoError(t, a.transitionTo(t, lab(t), created.ID(), order.InProduction))

	request, err := a.requestOutsourcing(t, created.ID())
	require.NoError(t, err)
	assert.Equal(t, outsourcing.Requested, request.Status())

	respond, err := commands.NewRespondOutsourcingCommand(executor, request.ID(), true, "")
	require.NoError(t, err)
	_, err = a.respond.Handle(ctx, respond)
	require.NoError(t, err)

	start, err := commands.NewStartOutsourcingCommand(executor, request.ID())
	require.NoError(t, err)
	started, err := a.start.Handle(ctx, start)
	require.NoError(t, err)
	assert.Equal(t, outsourcing.InProgress, started.Status())

	_, err = a.requestOutsourcing(t, created.ID())
	require.ErrorIs(t, err, errs.ErrOutsourcingAlreadyActive)

	complete, err := commands.NewCompleteOutsourcingCommand(executor, request.ID())
	require.NoError(t, err)
	completed, err := a.complete.Handle(ctx, complete)
	require.NoError(t, err)
	assert.Equal(t, outsourcing.Completed, completed.Status())
	assert.Equal(t, "300.00", a.settle(t, request.ID()))

	charge, err := commands.NewChangeChargedValueCommand(lab(t), created.ID(), kernel.MustNewMoney("600"))
	require.NoError(t, err)
	_, err = a.charge.Handle(ctx, charge)
	require.NoError(t, err)
	assert.Equal(t, "360.00", a.settle(t, request.ID()))

	second, err := a.requestOutsourcing(t, created.ID())
	require.NoError(t, err)
	assert.False(t, second.ID().IsEqual(request.ID()))
}
