package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/MKhiriev/go-codeblocks/codeblocks"
	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hello-api")
	cfg, err := codeblocks.LoadConfiguration(os.Args[1:]...)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api := codeblocks.NewAPI(
		codeblocks.WithConfiguration(cfg),
		codeblocks.WithAuth(codeblocks.AuthFromConfiguration(cfg)),
		codeblocks.WithLogger(log),
	)

	err = api.AddRoute("/hello", codeblocks.Handlers{
		"GET": codeblocks.NewFunction(hello),
	}, codeblocks.WithSummary("Say hi"))
	if err != nil {
		log.Fatal().Err(err).Msg("error adding route")
	}

	// GET is gated too: the route greets the authenticated caller
	err = api.AddRoute("/me", codeblocks.Handlers{
		"GET": codeblocks.HandlerFunc(me),
	}, codeblocks.RequireAuth(http.MethodGet), codeblocks.WithSummary("Greet the authenticated caller"))
	if err != nil {
		log.Fatal().Err(err).Msg("error adding route")
	}

	host, port, err := splitAddress(cfg.Address())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid server address")
	}

	if err := api.Run(host, port, cfg.Debug()); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func hello(_ *http.Request, args codeblocks.Args) (any, error) {
	if name, ok := args.String("name"); ok {
		return "hi " + name, nil
	}
	return "hi", nil
}

func me(r *http.Request, _ codeblocks.Args) (any, error) {
	subject, ok := codeblocks.SubjectFromContext(r.Context())
	if !ok {
		return "hi authenticated user!", nil
	}
	return "hi " + subject + "!", nil
}

func splitAddress(address string) (string, int, error) {
	host, portString, err := net.SplitHostPort(address)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portString)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
