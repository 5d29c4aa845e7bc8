package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// schemaCmd exports a schema as JSON Schema.
var schemaCmd = &cobra.Command{
	Use:   "schema [--type Name]",
	Short: "Print the JSON Schema of a schema, or list schemas",
	Args:  cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, _ []string) {
		bindFlags(cmd.Flags())
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSchema(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	schemaCmd.Flags().StringP("type", "t", "", "schema to export (omit to list schemas)")
	schemaCmd.Flags().StringP("format", "f", "json", "output format: json, yaml")
}

func runSchema(out io.Writer) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	name := viper.GetString("type")
	if name == "" {
		for _, s := range reg.Schemas() {
			policy := "strict"
			if !s.Strict() {
				policy = "strip"
			}
			if _, err := fmt.Fprintf(out, "%s\t%d fields\t%s\n", s.Name(), len(s.Fields()), policy); err != nil {
				return err
			}
		}
		return nil
	}
	s, err := lookupSchema(reg, name)
	if err != nil {
		return err
	}
	js, err := s.JSONSchema()
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", name, err)
	}
	return writeValue(out, js, viper.GetString("format"))
}
