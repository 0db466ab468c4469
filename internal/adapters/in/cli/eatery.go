package cli

import (
	"context"
	"strings"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
)

func (s *Session) eateryMenu(ctx context.Context) {
	for {
		s.printf("\n--- Eatery ---\n")
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
			s.registerAccount(ctx, account.RoleEatery)
		case "2":
			if eateryID, name, logged := s.login(ctx, account.RoleEatery); logged {
				s.eaterySession(ctx, eateryID, name)
			}
		case "3":
			s.recoverPassword(ctx, account.RoleEatery)
		case "0":
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) eaterySession(ctx context.Context, eateryID kernel.UUID, name string) {
	for {
		s.sweep(ctx)

		s.printf("\n--- %s ---\n", name)
		s.printf("1. Add a menu item\n")
		s.printf("2. Incoming orders\n")
		s.printf("0. Logout\n")

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.addMenuItem(ctx, eateryID)
		case "2":
			s.manageEateryOrders(ctx, eateryID)
		case "0":
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) addMenuItem(ctx context.Context, eateryID kernel.UUID) {
	name, ok := s.prompt("Dish name: ")
	if !ok {
		return
	}
	price, ok := s.promptFloat("Price: ")
	if !ok {
		return
	}
	description, ok := s.prompt("Description: ")
	if !ok {
		return
	}

	cmd, err := commands.NewAddMenuItemCommand(eateryID, kernel.NewUUID(), name, price, description)
	if err != nil {
		s.printf("Could not add the item: %v\n", err)
		return
	}

	if err = s.handlers.AddMenuItem.Handle(ctx, cmd); err != nil {
		s.printf("Could not add the item: %v\n", err)
		return
	}

	s.printf("Item added.\n")
}

// manageEateryOrders lists the eatery's orders and offers the next manual
// transition for each order that still has one.
func (s *Session) manageEateryOrders(ctx context.Context, eateryID kernel.UUID) {
	query, err := queries.NewGetEateryOrdersQuery(eateryID)
	if err != nil {
		s.printf("Could not load the orders: %v\n", err)
		return
	}

	views, err := s.handlers.GetEateryOrders.Handle(ctx, query)
	if err != nil {
		s.printf("Could not load the orders: %v\n", err)
		return
	}
	if len(views) == 0 {
		s.printf("No incoming orders.\n")
		return
	}

	for i, view := range views {
		s.printf("%d. %s - %s\n", i+1, view.Counterparty, strings.Join(view.Items, ", "))
		s.printf("   placed: %s  deadline: %s  status: %s\n",
			view.PlacedAt, view.Deadline, view.DisplayStatus)

		target, hasNext := view.Status.Next()
		if !hasNext {
			continue
		}

		answer, ok := s.prompt("   Mark as " + target.String() + "? (y/n): ")
		if !ok {
			return
		}
		if !strings.EqualFold(answer, "y") {
			continue
		}

		cmd, cmdErr := commands.NewAdvanceOrderCommand(view.ID, target)
		if cmdErr != nil {
			s.printf("   Could not update the order: %v\n", cmdErr)
			continue
		}

		if cmdErr = s.handlers.AdvanceOrder.Handle(ctx, cmd); cmdErr != nil {
			s.printf("   Could not update the order: %v\n", cmdErr)
			continue
		}

		s.printf("   Order marked as %s.\n", target)
	}
}
