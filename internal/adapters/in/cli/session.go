// Package cli implements the console surface of the ordering system. The
// session reads menu selections line by line, drives the command and query
// handlers, and runs a promotion sweep before every prompt so the state a
// user sees is current.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
)

// Handlers bundles every use case the console surface drives.
type Handlers struct {
	RegisterAccount commands.RegisterAccountCommandHandler
	AddMenuItem     commands.AddMenuItemCommandHandler
	PlaceOrder      commands.PlaceOrderCommandHandler
	AdvanceOrder    commands.AdvanceOrderCommandHandler
	PromoteOrders   commands.PromoteOrdersCommandHandler
	ResetPassword   commands.ResetPasswordCommandHandler

	Authenticate      queries.AuthenticateQueryHandler
	GetMenu           queries.GetMenuQueryHandler
	GetCustomerOrders queries.GetCustomerOrdersQueryHandler
	GetEateryOrders   queries.GetEateryOrdersQueryHandler
	ListAccounts      queries.ListAccountsQueryHandler
	GetOrderReport    queries.GetOrderReportQueryHandler
}

// Session is one interactive console session over an input and output
// stream. Input is consumed line by line; the session ends when the user
// exits or the input stream closes.
type Session struct {
	in            *bufio.Scanner
	out           io.Writer
	handlers      Handlers
	adminLogin    string
	adminPassword string
	logger        *slog.Logger
}

// NewSession creates a console session over the given streams.
func NewSession(
	in io.Reader,
	out io.Writer,
	handlers Handlers,
	adminLogin, adminPassword string,
	logger *slog.Logger,
) *Session {
	return &Session{
		in:            bufio.NewScanner(in),
		out:           out,
		handlers:      handlers,
		adminLogin:    adminLogin,
		adminPassword: adminPassword,
		logger:        logger.With("component", "cli_session"),
	}
}

// Run drives the main menu until the user exits or input ends.
func (s *Session) Run(ctx context.Context) error {
	for {
		s.sweep(ctx)

		s.printf("\n=== Food Delivery ===\n")
		s.printf("1. Customer\n")
		s.printf("2. Eatery\n")
		s.printf("3. Admin\n")
		s.printf("0. Exit\n")

		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			s.customerMenu(ctx)
		case "2":
			s.eateryMenu(ctx)
		case "3":
			s.adminMenu(ctx)
		case "0":
			s.printf("Goodbye!\n")
			return nil
		default:
			s.printf("Invalid option.\n")
		}
	}
}

// sweep runs one promotion pass so listings and prompts reflect the orders'
// current lifecycle state.
func (s *Session) sweep(ctx context.Context) {
	cmd := commands.NewPromoteOrdersCommand()
	if err := s.handlers.PromoteOrders.Handle(ctx, cmd); err != nil {
		s.logger.ErrorContext(ctx, "promotion sweep failed", "error", err)
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// prompt prints the label and reads one trimmed line. The second return is
// false when the input stream has ended.
func (s *Session) prompt(label string) (string, bool) {
	s.printf("%s", label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptFloat keeps asking until the user enters a valid non-negative
// number. Returns false when the input stream has ended.
func (s *Session) promptFloat(label string) (float64, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return 0, false
		}

		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			s.printf("Invalid price, try again.\n")
			continue
		}
		return value, true
	}
}

// promptIndex keeps asking until the user enters a number between 1 and
// limit. Returns false when the input stream has ended.
func (s *Session) promptIndex(label string, limit int) (int, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return 0, false
		}

		index, valid := parseIndex(raw, limit)
		if !valid {
			s.printf("Invalid selection, try again.\n")
			continue
		}
		return index, true
	}
}

// parseIndex validates a 1-based menu selection.
func parseIndex(raw string, limit int) (int, bool) {
	index, err := strconv.Atoi(raw)
	if err != nil || index < 1 || index > limit {
		return 0, false
	}
	return index, true
}
