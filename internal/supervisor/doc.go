// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

/*
Package supervisor runs the long-lived parts of NEO Explorer under a suture
v4 supervisor tree.

# Layout

	RootSupervisor ("neoexplorer")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   ├── cache-janitor (when the NeoWs response cache is enabled)
	│   └── uptime
	└── APISupervisor ("api-layer")
	    └── http-server

Crashed services restart with suture's backoff. Failures are counted per
layer, so a janitor that keeps failing backs off on its own while the HTTP
server keeps serving.

# Logging

Supervisor events (service panics, restarts, backoff) are reported through
sutureslog to the slog logger passed to NewSupervisorTree. main builds that
logger with logging.NewSlogLogger so events land in the same zerolog stream
as everything else.

# Usage

	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMaintenanceService(services.NewCacheJanitor(client, time.Minute))
	tree.AddAPIService(services.NewHTTPServerService(srv, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

Service implementations live in the services subpackage.
*/
package supervisor
