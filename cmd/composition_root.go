package cmd

import (
	"fooddelivery/internal/adapters/in/cli"
	"fooddelivery/internal/adapters/out/statefile"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/services"
)

type CompositionRoot struct {
	config     Config
	store      *statefile.Store
	uowFactory *statefile.UnitOfWorkFactory
	promoter   services.OrderPromoter
}

func NewCompositionRoot(config Config, store *statefile.Store) (CompositionRoot, error) {
	promoter, err := services.NewOrderPromoter(config.EnRouteAfter, config.DeliveredAfter)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		store:      store,
		uowFactory: statefile.NewUnitOfWorkFactory(store),
		promoter:   promoter,
	}, nil
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAccountCommandHandler(f)
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() (commands.PlaceOrderCommandHandler, error) {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.config.DeliveryWindow)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePromoteOrdersCommandHandler() commands.PromoteOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPromoteOrdersCommandHandler(f, c.promoter)
}

func (c *CompositionRoot) CreateResetPasswordCommandHandler() commands.ResetPasswordCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetPasswordCommandHandler(f)
}

func (c *CompositionRoot) CreateAuthenticateQueryHandler() queries.AuthenticateQueryHandler {
	return queries.NewAuthenticateQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetEateryOrdersQueryHandler() queries.GetEateryOrdersQueryHandler {
	return queries.NewGetEateryOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateListAccountsQueryHandler() queries.ListAccountsQueryHandler {
	return queries.NewListAccountsQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetOrderReportQueryHandler() queries.GetOrderReportQueryHandler {
	return queries.NewGetOrderReportQueryHandler(c.store)
}

// CreateSessionHandlers bundles every use case the console session drives.
func (c *CompositionRoot) CreateSessionHandlers() (cli.Handlers, error) {
	placeOrder, err := c.CreatePlaceOrderCommandHandler()
	if err != nil {
		return cli.Handlers{}, err
	}

	return cli.Handlers{
		RegisterAccount: c.CreateRegisterAccountCommandHandler(),
		AddMenuItem:     c.CreateAddMenuItemCommandHandler(),
		PlaceOrder:      placeOrder,
		AdvanceOrder:    c.CreateAdvanceOrderCommandHandler(),
		PromoteOrders:   c.CreatePromoteOrdersCommandHandler(),
		ResetPassword:   c.CreateResetPasswordCommandHandler(),

		Authenticate:      c.CreateAuthenticateQueryHandler(),
		GetMenu:           c.CreateGetMenuQueryHandler(),
		GetCustomerOrders: c.CreateGetCustomerOrdersQueryHandler(),
		GetEateryOrders:   c.CreateGetEateryOrdersQueryHandler(),
		ListAccounts:      c.CreateListAccountsQueryHandler(),
		GetOrderReport:    c.CreateGetOrderReportQueryHandler(),
	}, nil
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
