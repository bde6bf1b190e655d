package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// Supported subcommands:
// - migrate:    Create or update the catalog tables
// - token:      Issue an access token for the write routes
// - seed-zones: Replace the blacklisted zones in the configured redis or blob source

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	tokenSubject := tokenCmd.String("subject", "", "Subject recorded in the token (required)")
	tokenRoles := tokenCmd.String("roles", "catalog_admin", "Comma separated roles (catalog_admin, catalog_reader)")

	seedCmd := flag.NewFlagSet("seed-zones", flag.ExitOnError)
	seedPostcodes := seedCmd.String("postcodes", "", "Comma separated blacklisted postcodes")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	flags := ctlFlags{
		Migrate: migrateFlags{cmd: migrateCmd},
		Token: tokenFlags{
			cmd:     tokenCmd,
			subject: tokenSubject,
			roles:   tokenRoles,
		},
		Seed: seedFlags{
			cmd:       seedCmd,
			postcodes: seedPostcodes,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Migrate migrateFlags
	Token   tokenFlags
	Seed    seedFlags
}

type migrateFlags struct {
	cmd *flag.FlagSet
}

type tokenFlags struct {
	cmd     *flag.FlagSet
	subject *string
	roles   *string
}

type seedFlags struct {
	cmd       *flag.FlagSet
	postcodes *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
			return err
		}

		return runMigrate(ctx)
	case "token":
		if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
			return err
		}

		return runToken(*flags.Token.subject, *flags.Token.roles)
	case "seed-zones":
		if err := flags.Seed.cmd.Parse(os.Args[2:]); err != nil {
			return err
		}

		return runSeedZones(ctx, splitList(*flags.Seed.postcodes))
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return fmt.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

func printUsage() {
	fmt.Println(`catalogctl - address catalog maintenance

Usage:
  catalogctl <command> [flags]

Commands:
  migrate      Create or update the catalog tables
  token        Issue an access token for the write routes
  seed-zones   Replace the blacklisted zones in the configured source

Configuration is read from config.yaml and environment variables, as for the service.

Examples:
  catalogctl migrate
  catalogctl token -subject ops -roles catalog_admin
  catalogctl seed-zones -postcodes "M17 1BR,RG6 1PS"`)
}
