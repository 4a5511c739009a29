package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"termfolio/internal/config"
	"termfolio/internal/content"
	"termfolio/internal/emailjs"
	"termfolio/internal/eventbus"
	"termfolio/internal/logging"
	"termfolio/internal/ui"
)

var (
	// Global flags
	configPath  string
	contentPath string
	debug       bool
	force       bool
)

var rootCmd = &cobra.Command{
	Use:   "termfolio",
	Short: "A personal portfolio in the terminal",
	Long: `termfolio renders a portfolio page in the terminal: a hero, content
sections, a résumé pager and a contact form that delivers messages through
EmailJS.

EmailJS credentials are read from EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and
EMAILJS_PUBLIC_KEY.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the termfolio configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := configService()
		if _, err := os.Stat(svc.Path()); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", svc.Path())
		}
		if err := svc.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svc.Path())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&contentPath, "content", "", "Portfolio content file (TOML); the built-in sample when empty")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	configInitCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func configService() config.ConfigService {
	if configPath != "" {
		return config.NewConfigServiceAt(configPath)
	}
	return config.NewConfigService()
}

func loadConfig() (*config.Config, error) {
	svc := configService()
	if configPath != "" {
		return svc.LoadFromPath(configPath)
	}
	return svc.Load()
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if contentPath != "" {
		cfg.Content.Path = contentPath
	}
	if debug {
		cfg.Log.Debug = true
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	profile, err := content.Load(cfg.Content.Path)
	if err != nil {
		return err
	}

	dispatchCfg, err := config.LoadDispatch()
	if err != nil {
		return err
	}
	client := emailjs.NewClient(dispatchCfg, nil, logger)
	if !client.Configured() {
		logger.Warn("EmailJS credentials missing, contact form messages will fail")
	}

	bus := eventbus.New(logger)
	model := ui.NewModel(bus, cfg, profile, client,
		ui.WithLogger(logger),
		ui.WithContext(ctx))
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	model.SetProgram(p)

	// Submission changes arrive on dispatch and timer goroutines
	unsubscribe := bus.Subscribe(eventbus.EventSubmissionChanged, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	defer unsubscribe()

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	logger.Info("starting UI",
		zap.String("profile", profile.Name),
		zap.Int("sections", len(profile.Sections)))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("UI exited normally")
	return nil
}
