// Package main is the agent CLI entry point: it reads prompts from stdin,
// drives the completion loop against a chosen provider, and dispatches tool
// calls to a remote execution server over gRPC.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/RaunakChhatwal/BashAgent/internal/agent"
	"github.com/RaunakChhatwal/BashAgent/internal/agent/providers"
	"github.com/RaunakChhatwal/BashAgent/internal/config"
	"github.com/RaunakChhatwal/BashAgent/internal/toolclient"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := buildRootCmd().Execute(); err != nil {
		slog.Error("agent exited with error", "error", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	var (
		server         string
		anthropicModel string
		openaiModel    string
		maxTokens      int
		temperature    float64
	)

	cmd := &cobra.Command{
		Use:     "bashagent",
		Short:   "An interactive LLM agent backed by a remote bash shell and file editor",
		Version: fmt.Sprintf("%s (%s)", version, commit),
		RunE: func(cmd *cobra.Command, args []string) error {
			if anthropicModel == "" && openaiModel == "" {
				return &agent.ConfigError{Message: "one of --anthropic or --openai is required"}
			}
			if anthropicModel != "" && openaiModel != "" {
				return &agent.ConfigError{Message: "--anthropic and --openai are mutually exclusive"}
			}

			cfg, err := config.Load(defaultConfigPath())
			if err != nil {
				return err
			}
			cfg.ApplyEnv()
			if server != "" {
				cfg.Server.Host = server
			}

			return run(cfg, anthropicModel, openaiModel, maxTokens, temperature)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "RPC peer hostname (port fixed at 50051)")
	cmd.Flags().StringVar(&anthropicModel, "anthropic", "", "Anthropic model name")
	cmd.Flags().StringVar(&openaiModel, "openai", "", "OpenAI model name")
	cmd.Flags().IntVar(&maxTokens, "max-tokens", 8192, "Maximum tokens per completion")
	cmd.Flags().Float64Var(&temperature, "temperature", 1.0, "Sampling temperature")
	return cmd
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/bashagent/config.yaml"
}

func run(cfg *config.Config, anthropicModel, openaiModel string, maxTokens int, temperature float64) error {
	providerName := "anthropic"
	model := anthropicModel
	if openaiModel != "" {
		providerName = "openai"
		model = openaiModel
	}

	apiKey, err := config.APIKey(providerName)
	if err != nil {
		return err
	}

	var provider providers.Provider
	switch providerName {
	case "anthropic":
		provider = providers.NewAnthropicProvider(apiKey)
	case "openai":
		provider = providers.NewOpenAIProvider(apiKey)
	}

	addr := fmt.Sprintf("%s:50051", cfg.Server.Host)
	client, err := toolclient.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	cancel := agent.NewCancelSignal()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		for range sigCh {
			cancel.Cancel()
		}
	}()

	loop := &agent.Loop{
		Provider: provider,
		Tools:    client,
		Out:      os.Stdout,
		Cancel:   cancel,
		Params: providers.RequestParams{
			Model:       model,
			MaxTokens:   maxTokens,
			Temperature: temperature,
			Tools:       agent.DefaultTools,
		},
	}

	// A redirected/piped stdin isn't a terminal, so skip the interactive
	// prompt: it would otherwise interleave with piped-in prompt text on
	// stdout with nothing to visually separate it.
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for {
		if interactive {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return &agent.IOError{Cause: err}
			}
			return nil // clean EOF
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}

		runCtx := context.Background()
		if err := loop.RunExchange(runCtx, prompt); err != nil {
			if err == agent.ErrCancelled {
				fmt.Println("\n(cancelled)")
				continue
			}
			slog.Error("exchange failed", "error", err)
		}
		fmt.Println()
	}
}
