package migration

import (
	"errors"
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const migrationsDir = "migrations"

func sourceURL(rootDir string) string {
	return "file://" + path.Join(rootDir, migrationsDir)
}

func databaseURL(dsn string) string {
	return "mysql://" + dsn
}

func newMigrate(rootDir string, dsn string) (*migrate.Migrate, error) {
	return migrate.New(sourceURL(rootDir), databaseURL(dsn))
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

func closeMigrate(m *migrate.Migrate) {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		fmt.Println("[ERROR] close migration source:", sourceErr)
	}
	if dbErr != nil {
		fmt.Println("[ERROR] close migration database:", dbErr)
	}
}

func runWithMigrate(dsn string, fn func(m *migrate.Migrate) error) error {
	m, err := newMigrate(".", dsn)
	if err != nil {
		return err
	}
	defer closeMigrate(m)

	return fn(m)
}

// MigrateCommand creates the up, down, force and version subcommands
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "database schema migration",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "apply all up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithMigrate(dsn, func(m *migrate.Migrate) error {
				return ignoreNoChange(m.Up())
			})
		},
	}

	downCmd := &cobra.Command{
		Use:   "down [steps]",
		Short: "revert migrations, one step by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				steps = n
			}
			return runWithMigrate(dsn, func(m *migrate.Migrate) error {
				return ignoreNoChange(m.Steps(-steps))
			})
		},
	}

	forceCmd := &cobra.Command{
		Use:   "force [version]",
		Short: "set the migration version without running migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return runWithMigrate(dsn, func(m *migrate.Migrate) error {
				return m.Force(version)
			})
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithMigrate(dsn, func(m *migrate.Migrate) error {
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("No migration applied")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Println("Version:", version, "Dirty:", dirty)
				return nil
			})
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, forceCmd, versionCmd)
	return rootCmd
}

// MigrateUpForTesting drops everything then applies all migrations
func MigrateUpForTesting(rootDir string, dsn string) {
	m, err := newMigrate(rootDir, dsn)
	if err != nil {
		panic(err)
	}
	defer closeMigrate(m)

	err = m.Drop()
	if err != nil {
		panic(err)
	}

	// Drop also removes the schema_migrations table, so a new instance is needed
	m2, err := newMigrate(rootDir, dsn)
	if err != nil {
		panic(err)
	}
	defer closeMigrate(m2)

	err = ignoreNoChange(m2.Up())
	if err != nil {
		panic(err)
	}
}
