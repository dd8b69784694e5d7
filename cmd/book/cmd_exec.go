package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"addressbook/internal/session"
)

var birthdayDays int

// execCmd runs one line command without entering the loop
var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run a single command against the saved book",
	Long: `Runs one assistant command, prints its reply and saves the book.

Examples:
  book exec add Ann 1234567890
  book exec add-birthday Ann 01.01.2000
  book exec all`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

// birthdaysCmd prints upcoming birthdays
var birthdaysCmd = &cobra.Command{
	Use:   "birthdays",
	Short: "List birthdays coming up",
	Long: `Lists contacts whose birthday falls within the lookahead window,
counting today. Weekend dates are moved to the following Monday.`,
	Args: cobra.NoArgs,
	RunE: runBirthdays,
}

func runExec(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	s, st, err := newSession(ctx, cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	reply, _ := s.Execute(strings.Join(args, " "))
	if err := s.Persist(ctx); err != nil {
		return err
	}
	if reply != "" {
		fmt.Fprintln(cmd.OutOrStdout(), reply)
	}
	return nil
}

func runBirthdays(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	st, err := openStore(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer st.Close()

	book, err := st.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load contacts: %w", err)
	}

	days := cfg.Birthdays.WindowDays
	if cmd.Flags().Changed("days") {
		if birthdayDays < 0 {
			return fmt.Errorf("--days must not be negative, got %d", birthdayDays)
		}
		days = birthdayDays
	}

	upcoming := book.UpcomingBirthdaysWithin(time.Now(), days)
	if len(upcoming) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No upcoming birthdays.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), session.FormatCongratulations(upcoming))
	return nil
}
