package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/daemon"
	"github.com/kardianos/osext"
	"github.com/sirupsen/logrus"

	eventdesk "github.com/derWhity/eventdesk/internal"
	"github.com/derWhity/eventdesk/internal/ctxhelper"
	"github.com/derWhity/eventdesk/internal/log"
	"github.com/derWhity/eventdesk/internal/repos"
	eventrepo "github.com/derWhity/eventdesk/internal/repos/event/inmem"
	sessionrepo "github.com/derWhity/eventdesk/internal/repos/session/inmem"
)

const (
	appName         = "eventdesk"
	appVersion      = "0.1.0"
	shutdownTimeout = 10 * time.Second
)

func main() {
	execDir, err := osext.ExecutableFolder()
	if err != nil {
		panic(err)
	}
	if err := newRootCmd(filepath.Join(execDir, "config.json")).Execute(); err != nil {
		os.Exit(1)
	}
}

// serve runs the HTTP server until a stop signal is caught
func serve(configFile string) error {
	ctx := context.Background()

	// Initialize the logger
	logger := logrus.WithField(log.FldVersion, appVersion)
	logger.Infof("%s version %s is starting up...", appName, appVersion)
	ctx = ctxhelper.WithLogger(ctx, logger)

	// Load the main configuration file
	cs := eventdesk.NewConfigService(configFile)
	if err := cs.Load(ctx); err != nil {
		logger.WithError(err).Error("Cannot load config. Using defaults")
	}
	if err := cs.ApplyEnv(ctx); err != nil {
		return err
	}
	conf := cs.GetConfig(ctx)
	if err := log.Configure(logrus.StandardLogger(), conf.Log.Level, conf.Log.Format); err != nil {
		return err
	}

	// Every session gets its own event collection - the IDs are drawn from the process-wide sequence
	repoLogger := logger.WithField(log.FldTransport, "repo")
	sessionRepo := sessionrepo.New(
		conf.SessionTTL(),
		func() repos.EventRepo { return eventrepo.New(eventrepo.DefaultSequence, repoLogger) },
		repoLogger,
	)
	defer sessionRepo.Close()

	evSrv := eventdesk.NewEventService(logger)
	sessServ := eventdesk.NewSessionService(sessionRepo, logger)

	httpLogger := logger.WithField(log.FldTransport, "HTTP")
	logger.Infof("Serving static files from '%s'", conf.UIDir)
	h := eventdesk.MakeHTTPHandler(evSrv, sessServ, conf.UIDir, httpLogger)
	server := &http.Server{
		Addr:    conf.ListenAddress,
		Handler: h,
	}

	errs := make(chan error, 1)
	go func() {
		httpLogger.WithField(log.FldAddr, conf.ListenAddress).Info("Starting listening port")
		errs <- server.ListenAndServe()
	}()

	// Watchdog for systemd
	watchdogCtx, stopWatchdog := context.WithCancel(ctx)
	defer stopWatchdog()
	go watchdog(watchdogCtx, conf.ListenAddress, logger)

	// Notify systemd that we are ready to go (if available)
	daemon.SdNotify(false, "READY=1")

	stopCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errs:
		if err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("Server failed")
			return err
		}
	case <-stopCtx.Done():
		logger.Info("Caught signal to stop. Shutting down.")
	}

	daemon.SdNotify(false, "STOPPING=1")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		logger.WithError(err).Error("Server shutdown failed")
		return err
	}
	logger.Info("Shutdown complete")
	return nil
}

// watchdog pings systemd as long as the server answers on /alive
func watchdog(ctx context.Context, listenAddress string, logger *logrus.Entry) {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil || interval == 0 {
		return
	}
	logger.Info("Activating systemd watchdog goroutine")
	url := fmt.Sprintf("http://127.0.0.1:%s/alive", port(listenAddress))
	ticker := time.NewTicker(interval / 3)
	defer ticker.Stop()
	for {
		if resp, err := http.Get(url); err == nil {
			resp.Body.Close()
			daemon.SdNotify(false, "WATCHDOG=1")
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// port returns the port part of a listen address like ":3000" or "0.0.0.0:3000"
func port(listenAddress string) string {
	idx := strings.LastIndex(listenAddress, ":")
	if idx < 0 {
		return listenAddress
	}
	return listenAddress[idx+1:]
}
