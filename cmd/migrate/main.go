// Command migrate inspects and changes the blog database schema.
//
//	migrate status        show the schema plan and pending migrations
//	migrate up            apply pending SQL migrations (PostgreSQL)
//	migrate auto          run gorm AutoMigrate regardless of DB_SCHEMA_MODE
//	migrate down VERSION  revert one applied migration
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"blogapi/internal/config"
	"blogapi/internal/database"

	"gorm.io/gorm"
)

type command func(ctx context.Context, db *gorm.DB, cfg *config.Config, args []string) error

var commands = map[string]command{
	"status": status,
	"up":     up,
	"auto":   auto,
	"down":   down,
}

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: migrate <status|up|auto|down VERSION>")
	}
	flag.Parse()

	cmd, ok := commands[flag.Arg(0)]
	if !ok {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := cmd(context.Background(), db, cfg, flag.Args()[1:]); err != nil {
		log.Fatal(err)
	}
}

func status(ctx context.Context, db *gorm.DB, cfg *config.Config, _ []string) error {
	st, err := database.GetSchemaStatus(ctx, db, cfg)
	if err != nil {
		return err
	}
	log.Printf("env=%s mode=%s sql=%t auto=%t applied=%v", st.Environment, st.Mode, st.SQL, st.Auto, st.Applied)
	for _, m := range st.Pending {
		log.Printf("pending: %s", m.String())
	}
	return nil
}

func up(ctx context.Context, db *gorm.DB, cfg *config.Config, _ []string) error {
	if cfg.DBDriver == config.DriverSQLite {
		return fmt.Errorf("sql migrations target PostgreSQL; use auto for sqlite")
	}
	return database.NewMigrator(db).Up(ctx)
}

func auto(ctx context.Context, db *gorm.DB, cfg *config.Config, _ []string) error {
	cfg.DBSchemaMode = database.SchemaModeAuto
	return database.ApplySchema(ctx, db, cfg)
}

func down(ctx context.Context, db *gorm.DB, _ *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: migrate down VERSION")
	}
	version, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", args[0], err)
	}
	return database.NewMigrator(db).Down(ctx, version)
}
