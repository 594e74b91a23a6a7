// Package cli implements the rentmate command line tool.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rentmate/internal/adapters/persistence/repositories"
	"rentmate/internal/app"
	"rentmate/internal/config"
	"rentmate/internal/core/services"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the rentmate command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rentmate",
		Short:         "RentMate rental management",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("data-dir", "", "Directory holding the JSON collections (overrides DATA_DIR)")
	rootCmd.PersistentFlags().String("session-db", "", "Session database path (overrides SESSION_DB)")

	rootCmd.AddCommand(
		ServeCmd(),
		SeedCmd(),
		StatsCmd(),
		UsersCmd(),
		OutstandingCmd(),
	)
	return rootCmd
}

// openApp loads configuration, applies flag overrides and opens storage
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		cfg.Storage.DataDir = dir
	}
	if path, _ := cmd.Flags().GetString("session-db"); path != "" {
		cfg.Storage.SessionDB = path
	}

	return app.New(cmd.Context(), cfg)
}

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and rent reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.Serve(ctx)
		},
	}
}

func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the demo dataset into missing collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			// app.New already seeded missing collections
			if reset, _ := cmd.Flags().GetBool("reset"); reset {
				if err := config.NewSeeder(a.Store, a.Logger).Reset(cmd.Context()); err != nil {
					return fmt.Errorf("failed to reset data: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Data ready in %s\n", a.Store.Dir())
			return nil
		},
	}

	cmd.Flags().Bool("reset", false, "Overwrite every collection with the demo dataset")
	return cmd
}

func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show totals across all collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			dashboard := services.NewDashboardService(
				repositories.NewUserRepository(a.Store),
				repositories.NewPropertyRepository(a.Store),
				repositories.NewPaymentRepository(a.Store),
				repositories.NewMaintenanceRepository(a.Store),
				repositories.NewApplicationRepository(a.Store),
			)
			data, err := dashboard.GetAdminDashboard(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-14s %d (admins %d, landlords %d, tenants %d)\n", "Users",
				data.TotalUsers, data.TotalAdmins, data.TotalLandlords, data.TotalTenants)
			fmt.Fprintf(out, "%-14s %d (vacant %d, occupied %d)\n", "Properties",
				data.TotalProperties, data.VacantProperties, data.OccupiedProperties)
			fmt.Fprintf(out, "%-14s %d (revenue %.2f)\n", "Payments", data.TotalPayments, data.TotalRevenue)
			fmt.Fprintf(out, "%-14s open %d, resolved %d\n", "Maintenance", data.OpenMaintenance, data.ResolvedMaintenance)
			fmt.Fprintf(out, "%-14s pending %d, approved %d, rejected %d\n", "Applications",
				data.PendingApplications, data.ApprovedApplications, data.RejectedApplications)
			return nil
		},
	}
}

func UsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			role, _ := cmd.Flags().GetString("role")
			users, err := services.NewUserService(repositories.NewUserRepository(a.Store)).ListUsers(cmd.Context(), role)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-38s  %-10s  %-24s  %s\n", "ID", "Role", "Name", "Email")
			for _, u := range users {
				fmt.Fprintf(out, "%-38s  %-10s  %-24s  %s\n", u.ID, u.Role, u.Name, u.Email)
			}
			return nil
		},
	}

	cmd.Flags().String("role", "", "Only list users with this role")
	cmd.AddCommand(clearUsersCmd())
	return cmd
}

func clearUsersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every user",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			auth := services.NewAuthService(cmd.Context(), repositories.NewUserRepository(a.Store), a.Store, a.Logger)
			if err := auth.ClearAllUsers(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All users cleared")
			return nil
		},
	}
}

func OutstandingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outstanding",
		Short: "List tenants with no rent payment in a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			at := time.Now()
			if month, _ := cmd.Flags().GetString("month"); month != "" {
				parsed, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid --month %q, want YYYY-MM", month)
				}
				at = parsed
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			reminder := services.NewRentReminderService(
				repositories.NewPropertyRepository(a.Store),
				repositories.NewPaymentRepository(a.Store),
				a.Logger,
			)
			due, err := reminder.Outstanding(cmd.Context(), at)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(due) == 0 {
				fmt.Fprintln(out, "No outstanding rent")
				return nil
			}
			for _, d := range due {
				fmt.Fprintf(out, "%s  %-24s  %-38s  %.2f\n", d.Month, d.PropertyTitle, d.TenantID, d.Rent)
			}
			return nil
		},
	}

	cmd.Flags().String("month", "", "Month to check as YYYY-MM (default current month)")
	return cmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
