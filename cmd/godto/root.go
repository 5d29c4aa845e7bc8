package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/reoring/godto"
	"github.com/reoring/godto/i18n"
	"github.com/reoring/godto/schemadef"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the application entry point.
var rootCmd = &cobra.Command{
	Use:   "godto",
	Short: "Validate documents against typed DTO schemas",
	Long: `godto loads schema definitions from a YAML or JSON file and uses them to
construct typed objects from input documents, reporting the first violation
with its JSON Pointer path. It can also export schemas as JSON Schema.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
		i18n.SetLanguage(viper.GetString("lang"))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.godto.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringP("schemas", "s", "godto.yaml", "schema definition file (YAML or JSON)")
	rootCmd.PersistentFlags().String("lang", "en", "message language: en, ja")
	bindFlags(rootCmd.PersistentFlags())
}

// bindFlags exposes every flag of fs through viper under its own name, so
// values can also come from the config file or GODTO_* variables.
func bindFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "verbose" {
			return
		}
		_ = viper.BindPFlag(f.Name, f)
	})
}

// initConfig loads configuration from the config file and environment.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			slog.Error("failed to find home directory", "error", err)
			os.Exit(1)
		}

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".godto")
	}

	viper.SetEnvPrefix("GODTO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// loadRegistry reads the schema definition file named by the schemas setting.
func loadRegistry() (*godto.Registry, error) {
	path := viper.GetString("schemas")
	if path == "" {
		return nil, fmt.Errorf("no schema file given (use --schemas or GODTO_SCHEMAS)")
	}
	slog.Debug("loading schemas", "path", path)
	reg, err := schemadef.LoadFile(path, schemadef.Options{Logger: slog.Default()})
	if err != nil {
		return nil, fmt.Errorf("failed to load schemas: %w", err)
	}
	return reg, nil
}

// lookupSchema resolves the schema selected with --type.
func lookupSchema(reg *godto.Registry, name string) (*godto.Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("--type is required (known: %s)", strings.Join(reg.Names(), ", "))
	}
	s, ok := reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (known: %s)", name, strings.Join(reg.Names(), ", "))
	}
	return s, nil
}
