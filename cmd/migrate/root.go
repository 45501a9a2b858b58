package main

import (
	"os"
	"strconv"

	"recruit/config"
	"recruit/internal/errors"

	"github.com/spf13/cobra"
)

// schemaMigrator is the part of *migration.Migrator the commands use.
type schemaMigrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (uint, bool, error)
	Force(version int) error
	PendingVersions() ([]uint, error)
	Close() error
}

type openFunc func(databaseURL string) (schemaMigrator, error)

// NewRootCmd creates the migrate CLI. The database URL comes from
// --database-url, then DATABASE_URL, then migration.databaseURL in config.yaml.
func NewRootCmd(open openFunc) *cobra.Command {
	var databaseURL string

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the recruit database schema",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL")

	run := func(fn func(cmd *cobra.Command, m schemaMigrator) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			url, err := resolveDatabaseURL(databaseURL)
			if err != nil {
				return err
			}

			m, err := open(url)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := m.Close(); closeErr != nil {
					cmd.PrintErrln("close:", closeErr)
				}
			}()

			return fn(cmd, m)
		}
	}

	cmd.AddCommand(
		newUpCmd(run),
		newDownCmd(run),
		newStepsCmd(run),
		newVersionCmd(run),
		newForceCmd(run),
		newPendingCmd(run),
	)

	return cmd
}

type runner func(fn func(cmd *cobra.Command, m schemaMigrator) error) func(*cobra.Command, []string) error

func newUpCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, m schemaMigrator) error {
			if err := m.Up(); err != nil {
				return err
			}
			cmd.Println("Migrations applied")

			return nil
		}),
	}
}

func newDownCmd(run runner) *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back every migration, dropping all tables",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, m schemaMigrator) error {
			if !confirmed {
				return errors.New("down drops all tables; rerun with --yes to confirm")
			}
			if err := m.Down(); err != nil {
				return err
			}
			cmd.Println("All migrations rolled back")

			return nil
		}),
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm dropping all tables")

	return cmd
}

func newStepsCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "steps N",
		Short: "Apply N migrations up, or -N down (pass -- before a negative N)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n == 0 {
				return errors.Errorf("steps must be a non-zero integer, got %q", args[0])
			}

			return run(func(cmd *cobra.Command, m schemaMigrator) error {
				if err := m.Steps(n); err != nil {
					return err
				}
				cmd.Printf("Migrated %d step(s)\n", n)

				return nil
			})(cmd, args)
		},
	}
}

func newVersionCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, m schemaMigrator) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			if dirty {
				cmd.Printf("%d (dirty)\n", version)
			} else {
				cmd.Printf("%d\n", version)
			}

			return nil
		}),
	}
}

func newForceCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "force VERSION",
		Short: "Mark VERSION as applied and clear the dirty flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Errorf("version must be an integer, got %q", args[0])
			}

			return run(func(cmd *cobra.Command, m schemaMigrator) error {
				if err := m.Force(version); err != nil {
					return err
				}
				cmd.Printf("Forced version %d\n", version)

				return nil
			})(cmd, args)
		},
	}
}

func newPendingCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List migrations not yet applied",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, m schemaMigrator) error {
			pending, err := m.PendingVersions()
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				cmd.Println("Schema is up to date")

				return nil
			}
			for _, v := range pending {
				cmd.Println(v)
			}

			return nil
		}),
	}
}

func resolveDatabaseURL(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url, nil
	}

	cfg, err := config.New()
	if err != nil {
		return "", errors.Wrap(err, "no --database-url or DATABASE_URL set and config could not be loaded")
	}
	if cfg.Migration == nil || cfg.Migration.DatabaseURL == "" {
		return "", errors.New("database URL is required: set --database-url, DATABASE_URL or migration.databaseURL")
	}

	return cfg.Migration.DatabaseURL, nil
}
