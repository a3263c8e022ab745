package app

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/device-management-toolkit/redfish-inventory/config"
	"github.com/device-management-toolkit/redfish-inventory/internal/controller/http/fixture"
	"github.com/device-management-toolkit/redfish-inventory/pkg/httpserver"
	"github.com/device-management-toolkit/redfish-inventory/pkg/logger"
)

// FixtureParams selects what the fixture server serves and where.
type FixtureParams struct {
	// Dir holds the dataset JSON files. Empty serves the built-in sample.
	Dir  string
	Host string
	Port string
	TLS  bool
}

// FixtureParamsFromConfig serves the sample on the configured target address
// with its scheme.
func FixtureParamsFromConfig(cfg *config.Config) FixtureParams {
	return FixtureParams{
		Host: cfg.Target.Host,
		Port: strconv.Itoa(cfg.Target.Port),
		TLS:  cfg.Target.Scheme == "https",
	}
}

// ServeFixture serves a static Redfish tree until ctx is done. The target
// username and password, when set, guard every resource but the service
// root.
func ServeFixture(ctx context.Context, cfg *config.Config, log logger.Interface, params FixtureParams, opts ...httpserver.Option) error {
	data := fixture.SampleDataset()

	if params.Dir != "" {
		var err error

		data, err = fixture.LoadDataset(os.DirFS(params.Dir))
		if err != nil {
			return fmt.Errorf("app - ServeFixture - LoadDataset: %w", err)
		}
	}

	var fixtureOpts []fixture.Option
	if cfg.Target.Username != "" {
		fixtureOpts = append(fixtureOpts, fixture.Credentials(cfg.Target.Username, cfg.Target.Password))
	}

	serverOpts := append([]httpserver.Option{
		httpserver.Addr(params.Host, params.Port),
		httpserver.TLS(params.TLS, "", ""),
		httpserver.Logger(log),
	}, opts...)

	httpServer := httpserver.New(fixture.NewRouter(data, log, fixtureOpts...), serverOpts...)

	log.Info("app - ServeFixture - serving", "resources", len(data), "tls", params.TLS)

	select {
	case <-ctx.Done():
		return shutdown(log, httpServer)
	case err := <-httpServer.Notify():
		return fmt.Errorf("app - ServeFixture - httpServer.Notify: %w", err)
	}
}
