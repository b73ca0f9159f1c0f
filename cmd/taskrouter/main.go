package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zen-systems/taskrouter/pkg/config"
	"github.com/zen-systems/taskrouter/pkg/handler"
	"github.com/zen-systems/taskrouter/pkg/history"
	"github.com/zen-systems/taskrouter/pkg/registry"
	"github.com/zen-systems/taskrouter/pkg/router"
	"github.com/zen-systems/taskrouter/pkg/task"
)

var (
	configFile string
	mockFlag   bool
	debugFlag  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskrouter",
		Short: "Capability-based task routing engine",
		Long: `Taskrouter analyzes a free-text task description, scores every
	registered specialist handler against it, dispatches to the best fit,
	and falls back to a default handler on failure.`,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to routing config file")
	rootCmd.PersistentFlags().BoolVar(&mockFlag, "mock", false, "use mock handlers instead of provider-backed ones")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")

	rootCmd.AddCommand(routeCmd())
	rootCmd.AddCommand(decideCmd())
	rootCmd.AddCommand(handlersCmd())
	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(statsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func routeCmd() *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "route [description]",
		Short: "Route a task description to the best-fit handler and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := buildRouter()
			if err != nil {
				return err
			}

			t := task.New(args[0])
			decision, outcome, result, err := r.Route(context.Background(), args[0], t)
			if err != nil {
				return err
			}

			if jsonFlag {
				return printJSON(map[string]any{
					"decision": decision,
					"outcome":  outcome,
					"result":   result,
				})
			}

			fmt.Printf("handler:    %s (confidence %.2f)\n", decision.HandlerID, decision.Confidence)
			fmt.Printf("task type:  %s\n", decision.Profile.Primary())
			if outcome.FallbackUsed {
				fmt.Printf("fallback:   used (%s)\n", result.Metadata["primary_error"])
			}
			fmt.Printf("duration:   %s\n", outcome.Duration)
			fmt.Println()
			fmt.Println(result.Content)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "emit JSON")
	return cmd
}

func decideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decide [description]",
		Short: "Show the routing decision without executing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := buildRouter()
			if err != nil {
				return err
			}

			decision, err := r.Decide(args[0])
			if err != nil {
				return err
			}
			return printJSON(decision)
		},
	}
}

func handlersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "handlers",
		Short: "List registered handlers and their capabilities",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := buildRegistry()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDESCRIPTION\tCAPABILITIES")
			for _, r := range reg.List() {
				fmt.Fprintf(w, "%s\t%s\t%v\n", r.Descriptor.ID, r.Descriptor.Description, r.Descriptor.Capabilities)
			}
			return w.Flush()
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Report per-handler and aggregate health",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := buildRouter()
			if err != nil {
				return err
			}
			return printJSON(r.HealthCheck())
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show aggregate routing statistics from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			journal, err := history.NewJournal(cfg.ConfigDir)
			if err != nil {
				return err
			}
			stats, err := journal.Stats()
			if err != nil {
				return err
			}
			return printJSON(stats)
		},
	}
}

func buildRouter() (*router.Router, error) {
	reg, cfg, err := buildRegistry()
	if err != nil {
		return nil, err
	}

	opts := []router.Option{router.WithDebug(debugFlag)}
	if journal, err := history.NewJournal(cfg.ConfigDir); err == nil {
		opts = append(opts, router.WithJournal(journal))
	}
	return router.New(reg, cfg.RouterConfig, opts...), nil
}

func buildRegistry() (*registry.Registry, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	reg := registry.New()
	for _, desc := range handler.DefaultDescriptors() {
		h, err := buildHandler(cfg, desc.ID)
		if err != nil {
			return nil, nil, err
		}
		if h == nil {
			continue // provider key not configured
		}
		reg.Register(desc, h)
	}

	if reg.Len() == 0 {
		return nil, nil, fmt.Errorf("no handlers available; configure API keys or use --mock")
	}
	return reg, cfg, nil
}

// providerPlans maps each specialist to its execution backend.
var providerPlans = map[string]struct {
	provider string
	model    string
}{
	"frontend":   {"anthropic", "claude-sonnet-4-20250514"},
	"backend":    {"anthropic", "claude-sonnet-4-20250514"},
	"database":   {"openai", "gpt-5.2-codex"},
	"devops":     {"openai", "gpt-5.2-codex"},
	"qa":         {"openai", "gpt-5.2-instant"},
	"docs":       {"openai", "gpt-5.2-instant"},
	"security":   {"anthropic", "claude-opus-4-20250514"},
	"research":   {"google", "gemini-2.0-pro"},
	"generalist": {"mock", ""},
}

func buildHandler(cfg *config.Config, id string) (handler.Handler, error) {
	plan, ok := providerPlans[id]
	if mockFlag || !ok || plan.provider == "mock" {
		return handler.NewMockHandler(id), nil
	}
	if !cfg.HasProvider(plan.provider) {
		return nil, nil
	}

	switch plan.provider {
	case "anthropic":
		return handler.NewAnthropicHandler(id, plan.model, cfg.AnthropicAPIKey)
	case "openai":
		return handler.NewOpenAIHandler(id, plan.model, cfg.OpenAIAPIKey)
	case "google":
		return handler.NewGoogleHandler(id, plan.model, cfg.GoogleAPIKey)
	default:
		return handler.NewMockHandler(id), nil
	}
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadWithRoutingFile(configFile)
	}
	return config.Load()
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
