package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/MKhiriev/go-codeblocks/codeblocks"
	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/thumbnail"
	"github.com/MKhiriev/go-codeblocks/internal/utils"
	"github.com/MKhiriev/go-codeblocks/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// defaultDSN keeps the cache in a local SQLite file when no database is
// configured.
const defaultDSN = "file:thumbnails.db?cache=shared"

func main() {
	printBuildInfo()

	log := logger.NewLogger("thumbnail")
	cfg, err := codeblocks.LoadConfiguration(os.Args[1:]...)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	dsn := cfg.DatabaseDSN()
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := codeblocks.OpenSQL(context.Background(), dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening thumbnail cache")
	}
	defer db.Close()

	api := codeblocks.NewAPI(
		codeblocks.WithConfiguration(cfg),
		codeblocks.WithTitle("Thumbnailer"),
		codeblocks.WithDescription("Cached 100x100 PNG thumbnails of remote images"),
		codeblocks.WithAuth(codeblocks.AuthFromConfiguration(cfg)),
		codeblocks.WithLogger(log),
	)

	service := thumbnail.NewService(codeblocks.NewBlobStorage(db), utils.NewHTTPClient(), log)
	err = api.AddRoute("/thumbnail", codeblocks.Handlers{"POST": service}, codeblocks.WithSummary("Create a thumbnail of the image at url"))
	if err != nil {
		log.Fatal().Err(err).Msg("error adding route")
	}

	host, portString, err := net.SplitHostPort(cfg.Address())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid server address")
	}
	port, err := strconv.Atoi(portString)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid server port")
	}

	if err := api.Run(host, port, cfg.Debug()); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
