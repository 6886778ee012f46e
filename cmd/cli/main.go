package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/smementor/internal/buildinfo"
	"github.com/dmitrijs2005/smementor/internal/client/api"
	"github.com/dmitrijs2005/smementor/internal/client/cli"
	"github.com/dmitrijs2005/smementor/internal/client/config"
	"github.com/dmitrijs2005/smementor/internal/client/services"
	"github.com/dmitrijs2005/smementor/internal/client/session"
	"github.com/dmitrijs2005/smementor/internal/client/storage"
	"github.com/dmitrijs2005/smementor/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	logger, err := logging.NewZapLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Error(ctx, "failed to open local database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	tokens := session.NewSQLiteStore(db)

	var app *cli.App
	client := api.New(cfg.APIBaseURL,
		api.WithTimeout(cfg.RequestTimeout),
		api.WithTokenStore(tokens),
		api.WithNavigator(api.NavigatorFunc(func(ctx context.Context, route string) {
			app.Navigate(ctx, route)
		})),
		api.WithLogger(logger.With("component", "api")),
	)

	sess := session.New(client.Auth(), tokens, logger.With("component", "session"))

	app = cli.NewApp(cli.Deps{
		Session:   sess,
		Catalog:   services.NewCatalogService(client.Courses()),
		Detail:    services.NewCourseDetailService(client.Courses()),
		Dashboard: services.NewDashboardService(client.Courses(), client.Mentor()),
		Score:     services.NewInvestorScoreService(client.Mentor()),
		Profile:   services.NewProfileService(client.Auth(), sess),
		Mentor:    client.Mentor(),
		Tokens:    tokens,
		BaseURL:   client.BaseURL(),
		Log:       logger.With("component", "cli"),
	})

	logger.Debug(ctx, "starting", "api", cfg.APIBaseURL, "db", cfg.DBPath)
	app.Run(ctx)
}
