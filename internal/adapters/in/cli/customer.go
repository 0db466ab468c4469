package cli

import (
	"context"
	"strings"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

func (s *Session) customerMenu(ctx context.Context) {
	for {
		s.printf("\n--- Customer ---\n")
		s.printf("1. Register\n")
		s.printf("2. Login\n")
		s.printf("3. Recover password\n")
		s.printf("0. Back\n")

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.registerAccount(ctx, account.RoleCustomer)
		case "2":
			if accountID, name, logged := s.login(ctx, account.RoleCustomer); logged {
				s.customerSession(ctx, accountID, name)
			}
		case "3":
			s.recoverPassword(ctx, account.RoleCustomer)
		case "0":
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

// registerAccount collects the identity fields for either role and creates
// the account.
func (s *Session) registerAccount(ctx context.Context, role account.Role) {
	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}
	phone, ok := s.prompt("Phone: ")
	if !ok {
		return
	}
	address, ok := s.prompt("Address: ")
	if !ok {
		return
	}
	email, ok := s.prompt("Email: ")
	if !ok {
		return
	}
	fiscalID, ok := s.prompt("Fiscal ID: ")
	if !ok {
		return
	}
	password, ok := s.prompt("Password: ")
	if !ok {
		return
	}
	secretAnswer, ok := s.prompt("Secret answer (used for password recovery): ")
	if !ok {
		return
	}

	cmd, err := commands.NewRegisterAccountCommand(
		kernel.NewUUID(), role,
		name, phone, address, email, fiscalID, password, secretAnswer,
	)
	if err != nil {
		s.printf("Registration failed: %v\n", err)
		return
	}

	if err = s.handlers.RegisterAccount.Handle(ctx, cmd); err != nil {
		s.printf("Registration failed: %v\n", err)
		return
	}

	s.printf("Account registered.\n")
}

// login authenticates an account of the given role and returns its identity.
func (s *Session) login(ctx context.Context, role account.Role) (kernel.UUID, string, bool) {
	name, ok := s.prompt("Name: ")
	if !ok {
		return kernel.UUID{}, "", false
	}
	password, ok := s.prompt("Password: ")
	if !ok {
		return kernel.UUID{}, "", false
	}

	query, err := queries.NewAuthenticateQuery(role, name, password)
	if err != nil {
		s.printf("Login failed.\n")
		return kernel.UUID{}, "", false
	}

	response, err := s.handlers.Authenticate.Handle(ctx, query)
	if err != nil {
		s.printf("Login failed.\n")
		return kernel.UUID{}, "", false
	}

	s.printf("Welcome, %s!\n", response.Name)
	return response.AccountID, response.Name, true
}

// recoverPassword resets a password after checking the secret answer.
func (s *Session) recoverPassword(ctx context.Context, role account.Role) {
	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}
	secretAnswer, ok := s.prompt("Secret answer: ")
	if !ok {
		return
	}
	newPassword, ok := s.prompt("New password: ")
	if !ok {
		return
	}

	cmd, err := commands.NewResetPasswordCommand(role, name, secretAnswer, newPassword)
	if err != nil {
		s.printf("Recovery failed.\n")
		return
	}

	if err = s.handlers.ResetPassword.Handle(ctx, cmd); err != nil {
		s.printf("Recovery failed.\n")
		return
	}

	s.printf("Password updated.\n")
}

func (s *Session) customerSession(ctx context.Context, customerID kernel.UUID, name string) {
	for {
		s.sweep(ctx)

		s.printf("\n--- %s ---\n", name)
		s.printf("1. Place an order\n")
		s.printf("2. My orders\n")
		s.printf("0. Logout\n")

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.placeOrder(ctx, customerID)
		case "2":
			s.showCustomerOrders(ctx, customerID)
		case "0":
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

// placeOrder walks eatery selection and item selection and submits the
// order.
func (s *Session) placeOrder(ctx context.Context, customerID kernel.UUID) {
	listQuery, err := queries.NewListAccountsQuery(account.RoleEatery)
	if err != nil {
		s.printf("Could not list eateries: %v\n", err)
		return
	}

	eateries, err := s.handlers.ListAccounts.Handle(ctx, listQuery)
	if err != nil {
		s.printf("Could not list eateries: %v\n", err)
		return
	}
	if len(eateries) == 0 {
		s.printf("No eateries registered yet.\n")
		return
	}

	s.printf("Eateries:\n")
	for i, eatery := range eateries {
		s.printf("%d. %s\n", i+1, eatery.Name)
	}

	eateryIndex, ok := s.promptIndex("Eatery number: ", len(eateries))
	if !ok {
		return
	}
	eateryID := eateries[eateryIndex-1].ID

	menuQuery, err := queries.NewGetMenuQuery(eateryID)
	if err != nil {
		s.printf("Could not load the menu: %v\n", err)
		return
	}

	menu, err := s.handlers.GetMenu.Handle(ctx, menuQuery)
	if err != nil {
		s.printf("Could not load the menu: %v\n", err)
		return
	}
	if len(menu.Items) == 0 {
		s.printf("%s has no menu items yet.\n", menu.EateryName)
		return
	}

	s.printf("Menu of %s:\n", menu.EateryName)
	for _, item := range menu.Items {
		s.printf("%d. %s - %.2f", item.Index, item.Name, item.Price)
		if item.Description != "" {
			s.printf(" (%s)", item.Description)
		}
		s.printf("\n")
	}

	itemIDs := make([]kernel.UUID, 0)
	for {
		raw, promptOK := s.prompt("Item number (or 'done' to finish): ")
		if !promptOK {
			return
		}
		if strings.EqualFold(raw, "done") {
			break
		}

		index, indexOK := parseIndex(raw, len(menu.Items))
		if !indexOK {
			s.printf("Invalid selection, try again.\n")
			continue
		}

		itemIDs = append(itemIDs, menu.Items[index-1].ID)
		s.printf("Added %s.\n", menu.Items[index-1].Name)
	}

	if len(itemIDs) == 0 {
		s.printf("An order needs at least one item.\n")
		return
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID, eateryID, itemIDs)
	if err != nil {
		s.printf("Could not place the order: %v\n", err)
		return
	}

	if err = s.handlers.PlaceOrder.Handle(ctx, cmd); err != nil {
		s.printf("Could not place the order: %v\n", err)
		return
	}

	s.printf("Order placed!\n")
}

func (s *Session) showCustomerOrders(ctx context.Context, customerID kernel.UUID) {
	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		s.printf("Could not load your orders: %v\n", err)
		return
	}

	views, err := s.handlers.GetCustomerOrders.Handle(ctx, query)
	if err != nil {
		s.printf("Could not load your orders: %v\n", err)
		return
	}
	if len(views) == 0 {
		s.printf("You have no orders yet.\n")
		return
	}

	for i, view := range views {
		s.printf("%d. %s - %s\n", i+1, view.Counterparty, strings.Join(view.Items, ", "))
		s.printf("   placed: %s  deadline: %s  status: %s\n",
			view.PlacedAt, view.Deadline, view.DisplayStatus)
	}
}
