// Package main is the execution server entry point: it owns the one
// long-lived interactive shell and file editor for a single agent session
// and exposes them over the ToolRunner gRPC service.
package main

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/RaunakChhatwal/BashAgent/internal/editor"
	"github.com/RaunakChhatwal/BashAgent/internal/rpc"
	"github.com/RaunakChhatwal/BashAgent/internal/rpc/toolrunnerpb"
	"github.com/RaunakChhatwal/BashAgent/internal/shell"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := buildRootCmd(logger).Execute(); err != nil {
		logger.Error("toolrunner exited with error", "error", err)
		os.Exit(1)
	}
}

func buildRootCmd(logger *slog.Logger) *cobra.Command {
	var (
		listenAddr  string
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "toolrunner",
		Short: "Execution server backing the bash agent's tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(logger, listenAddr, metricsAddr)
		},
	}

	cmd.Flags().StringVar(&listenAddr, "listen", ":50051", "gRPC listen address")
	cmd.Flags().StringVar(&metricsAddr, "metrics-listen", ":9090", "Prometheus /metrics listen address")
	return cmd
}

func serve(logger *slog.Logger, listenAddr, metricsAddr string) error {
	oracle, err := shell.NewCompletionOracle()
	if err != nil {
		return err
	}

	sh, err := shell.Start(oracle, logger)
	if err != nil {
		return err
	}
	defer sh.Close()

	// A dead shell has no recovery path: exit the server with its status.
	go func() {
		<-sh.Exited
		code := 0
		if exitErr, ok := sh.ExitErr.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		} else if sh.ExitErr != nil {
			code = 1
		}
		logger.Error("shell exited", "error", sh.ExitErr)
		os.Exit(code)
	}()

	ed := editor.New()
	server := rpc.New(sh, ed, logger)

	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	grpcServer := grpc.NewServer()
	toolrunnerpb.RegisterToolRunnerServer(grpcServer, server)
	reflection.Register(grpcServer)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(metricsAddr, mux); err != nil {
			logger.Warn("metrics server stopped", "error", err)
		}
	}()

	logger.Info("toolrunner listening", "addr", listenAddr)
	return grpcServer.Serve(lis)
}
