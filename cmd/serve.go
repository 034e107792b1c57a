// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/canonical/chapter-service/internal/authorization"
	"github.com/canonical/chapter-service/internal/config"
	"github.com/canonical/chapter-service/internal/db"
	"github.com/canonical/chapter-service/internal/logging"
	"github.com/canonical/chapter-service/internal/monitoring/prometheus"
	"github.com/canonical/chapter-service/internal/storage"
	"github.com/canonical/chapter-service/internal/tracing"
	"github.com/canonical/chapter-service/pkg/authentication"
	"github.com/canonical/chapter-service/pkg/participant"
	"github.com/canonical/chapter-service/pkg/tenant"
	"github.com/canonical/chapter-service/pkg/web"
	"github.com/canonical/chapter-service/pkg/webhooks"
)

const serviceName = "chapter-service"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return fmt.Errorf("issues with environment sourcing: %w", err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			ConnectTimeout:  specs.DBConnectTimeout,
			AcquireTimeout:  specs.DBAcquireTimeout,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer, monitor, logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)

	ctx := context.Background()

	verifier, err := authentication.NewAuthenticator(
		ctx,
		authentication.Config{
			Mode:              specs.AuthenticationMode,
			OIDCIssuer:        specs.OIDCIssuer,
			OIDCJwksURL:       specs.OIDCJwksURL,
			OIDCRequiredScope: specs.OIDCRequiredScope,
			JWTSecret:         specs.JWTSecret,
			JWTIssuer:         specs.JWTIssuer,
			JWTAudience:       specs.JWTAudience,
			KratosPublicURL:   specs.KratosPublicURL,
		},
		tracer, monitor, logger,
	)
	if err != nil {
		return fmt.Errorf("failed to set up authentication: %w", err)
	}
	logger.Infof("Authentication mode: %s", specs.AuthenticationMode)

	authMiddleware := authentication.NewMiddleware(verifier, authorizer, tracer, monitor, logger)

	services := web.Services{
		Tenants:       tenant.NewService(s, authorizer, dbClient, tracer, monitor, logger),
		Participants:  participant.NewService(s, authorizer, tracer, monitor, logger),
		Registrations: webhooks.NewService(s, tracer, monitor, logger),
		DB:            dbClient,
	}

	// gRPC only carries the health service
	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%v", specs.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port: %w", err)
	}

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.UnaryInterceptor(authMiddleware.GRPCInterceptor),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	go func() {
		logger.Infof("Starting gRPC server on port %v", specs.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Errorf("gRPC server stopped: %v", err)
		}
	}()

	router := web.NewRouter(
		web.Config{CORSAllowedOrigins: specs.CORSAllowedOrigins, WebhookSecret: specs.WebhookSecret},
		services,
		authMiddleware,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	healthServer.Shutdown()
	grpcServer.GracefulStop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
