package cli

import (
	"context"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
)

func (s *Session) adminMenu(ctx context.Context) {
	login, ok := s.prompt("Admin login: ")
	if !ok {
		return
	}
	password, ok := s.prompt("Admin password: ")
	if !ok {
		return
	}

	if login != s.adminLogin || password != s.adminPassword {
		s.printf("Invalid admin credentials.\n")
		return
	}

	for {
		s.sweep(ctx)

		s.printf("\n--- Admin ---\n")
		s.printf("1. List customers\n")
		s.printf("2. List eateries\n")
		s.printf("3. Order report\n")
		s.printf("0. Logout\n")

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.listAccounts(ctx, account.RoleCustomer)
		case "2":
			s.listAccounts(ctx, account.RoleEatery)
		case "3":
			s.showOrderReport(ctx)
		case "0":
			return
		default:
			s.printf("Invalid option.\n")
		}
	}
}

func (s *Session) listAccounts(ctx context.Context, role account.Role) {
	query, err := queries.NewListAccountsQuery(role)
	if err != nil {
		s.printf("Could not list accounts: %v\n", err)
		return
	}

	accounts, err := s.handlers.ListAccounts.Handle(ctx, query)
	if err != nil {
		s.printf("Could not list accounts: %v\n", err)
		return
	}
	if len(accounts) == 0 {
		s.printf("No accounts registered.\n")
		return
	}

	for i, acc := range accounts {
		s.printf("%d. %s (%s)\n", i+1, acc.Name, acc.Email)
	}
}

func (s *Session) showOrderReport(ctx context.Context) {
	report, err := s.handlers.GetOrderReport.Handle(ctx, queries.NewGetOrderReportQuery())
	if err != nil {
		s.printf("Could not build the report: %v\n", err)
		return
	}

	s.printf("Total orders: %d\n", report.TotalOrders)
	if len(report.TopItems) == 0 {
		return
	}

	s.printf("Most ordered items:\n")
	for i, item := range report.TopItems {
		s.printf("%d. %s (%d)\n", i+1, item.Name, item.Count)
	}
}
