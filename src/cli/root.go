// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/wallet-core/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/wallet-core/src/logger"
	"github.com/H0llyW00dzZ/wallet-core/src/prefs"
	"github.com/H0llyW00dzZ/wallet-core/src/repository"
	"github.com/H0llyW00dzZ/wallet-core/src/walletconfig"
)

// session carries per-invocation state from the persistent flags to the subcommands.
type session struct {
	log logger.Logger

	configPath string
	certsDir   string
	prefsFile  string

	provider *walletconfig.Provider
}

// Execute runs the root command with os.Args.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	root := NewRootCommand(version, log)
	if len(os.Args) > 0 {
		root.Use = posix.ExecutableName(os.Args[0], root.Use)
		root.SetArgs(os.Args[1:])
	}
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the wallet-core command tree.
// Diagnostics go to log; command output goes to the command's output writer.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger()
	}
	s := &session{log: log}

	root := &cobra.Command{
		Use:           "wallet-core",
		Short:         "Inspect the wallet runtime configuration",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.setup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&s.configPath, "config", "c", "", "CLI configuration file (.json, .yaml, .yml)")
	flags.StringVar(&s.certsDir, "certs-dir", "", "certificate repository directory appended after the bundled anchors")
	flags.StringVar(&s.prefsFile, "prefs", "", "YAML preference file consulted for the issuer override")

	root.AddCommand(newConfigCommand(s), newAnchorsCommand(s))
	return root
}

// setup resolves the effective configuration and wires the provider.
// Flags win over the environment, which wins over the configuration file.
func (s *session) setup() error {
	cfg, err := loadConfig(s.configPath)
	if err != nil {
		return err
	}
	if s.certsDir != "" {
		cfg.Repository.Directory = s.certsDir
	}
	if s.prefsFile != "" {
		cfg.Preferences.File = s.prefsFile
	}

	if cfg.Logging.Format == LogFormatJSON {
		s.log = logger.NewJSONLogger(os.Stderr, "wallet-core", false)
	}

	build := walletconfig.DefaultBuildInfo()
	build.DefaultIssuerURL = cfg.Issuer.DefaultURL

	opts := []walletconfig.Option{
		walletconfig.WithBuildInfo(build),
		walletconfig.WithLogger(s.log),
	}
	if cfg.Repository.Directory != "" {
		opts = append(opts, walletconfig.WithRepository(repository.NewDir(cfg.Repository.Directory)))
	}
	if cfg.Preferences.File != "" {
		opts = append(opts, walletconfig.WithPreferences(prefs.NewFile(cfg.Preferences.File)))
	}

	s.provider = walletconfig.NewProvider(opts...)
	return nil
}
