package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/vaultorg/pkg/audit"
	"github.com/doodlesbykumbi/vaultorg/pkg/collections"
	"github.com/doodlesbykumbi/vaultorg/pkg/config"
	"github.com/doodlesbykumbi/vaultorg/pkg/db"
	"github.com/doodlesbykumbi/vaultorg/pkg/flags"
	"github.com/doodlesbykumbi/vaultorg/pkg/reference"
	"github.com/doodlesbykumbi/vaultorg/pkg/server"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/endpoints"
	"github.com/doodlesbykumbi/vaultorg/pkg/server/middleware"
	gormstore "github.com/doodlesbykumbi/vaultorg/pkg/server/store/gorm"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

func defaultPort() string {
	if port := os.Getenv("PORT"); port != "" {
		return port
	}
	return "8000"
}

func defaultPortInt() int {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			return p
		}
	}
	return 8000
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the vaultorg application server",
	Long: `Run the vaultorg application server

To run the server requires the environment variable DATABASE_URL.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		if os.Getenv("DATABASE_URL") == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		database, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Println("Unable to connect to DB:", err)
			os.Exit(1)
		}

		cfg := config.Get()
		audit.SetEnabled(cfg.AuditEnabled)

		oracle, err := flags.NewFileOracle(cfg.FlagFile)
		if err != nil {
			fmt.Println("Unable to load feature flags:", err)
			os.Exit(1)
		}
		// Reload flags when the flag file changes on disk
		go func() {
			if err := oracle.Watch(make(chan struct{})); err != nil {
				log.Printf("Flag watch stopped: %v", err)
			}
		}()

		service := collections.NewService(
			gormstore.NewOrganizationsStore(database),
			gormstore.NewOrgUsersStore(database),
			gormstore.NewCollectionsStore(database),
			oracle,
			collections.AuditEventLogger{},
			reference.NewDefaultEmitter(),
		)

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		s := server.NewServer(
			database,
			service,
			gormstore.NewCiphersStore(database),
			oracle,
			middleware.NewJWTAuthenticator(nil),
			host,
			port,
		)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", defaultPort(), "server listen port")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
