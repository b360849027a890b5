package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/mnint/internal/assets"
	"github.com/at-ishikawa/mnint/internal/parameters"
)

type FormatFlag string

// Set implements pflag.Value.
func (f *FormatFlag) Set(v string) error {
	switch v {
	case string(FormatYAML), string(FormatJSON), string(FormatText):
		*f = FormatFlag(v)
	default:
		return fmt.Errorf("invalid value %q, valid values are %q, %q or %q", v, FormatYAML, FormatJSON, FormatText)
	}
	return nil
}

// String implements pflag.Value.
func (f *FormatFlag) String() string {
	if f == nil {
		return ""
	}
	return string(*f)
}

// Type implements pflag.Value.
func (f *FormatFlag) Type() string {
	return "FormatFlag"
}

var (
	_ pflag.Value = (*FormatFlag)(nil)
)

const (
	FormatYAML FormatFlag = "yaml"
	FormatJSON FormatFlag = "json"
	FormatText FormatFlag = "text"
)

func newShowCommand() *cobra.Command {
	format := FormatYAML
	var templatePath string

	command := &cobra.Command{
		Use:   "show [parameters file]",
		Short: "Print a validated parameters document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := readableParametersPath(cmd, args)
			if err != nil {
				return err
			}
			cfg, err := parameters.Load(path)
			if err != nil {
				return err
			}
			return writeParameters(cmd.OutOrStdout(), path, cfg, format, templatePath)
		},
	}

	flags := command.Flags()
	flags.Var(&format, "format", "Output format. Options: yaml, json, text")
	flags.StringVar(&templatePath, "template", "", "text/template file used by --format text")

	return command
}

func writeParameters(output io.Writer, source string, cfg *parameters.Config, format FormatFlag, templatePath string) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(cfg); err != nil {
			return fmt.Errorf("encoder.Encode() > %w", err)
		}
	case FormatText:
		if err := assets.WriteReport(output, templatePath, newReport(source, cfg)); err != nil {
			return fmt.Errorf("assets.WriteReport() > %w", err)
		}
	default:
		encoder := yaml.NewEncoder(output)
		encoder.SetIndent(2)
		if err := encoder.Encode(cfg); err != nil {
			return fmt.Errorf("encoder.Encode() > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encoder.Close() > %w", err)
		}
	}
	return nil
}

func newReport(source string, cfg *parameters.Config) assets.ReportTemplate {
	nodes := cfg.Nodes
	return assets.ReportTemplate{
		Source: source,
		Nodes: []assets.ReportEntry{
			{Name: "tension kj (internal)", Value: formatFloat(nodes.TensionKj.Internal)},
			{Name: "tension kj (external)", Value: formatFloat(nodes.TensionKj.External)},
			{Name: "tension kj (top internal)", Value: formatFloat(nodes.TensionKj.TopInternal)},
			{Name: "tension kj (top external)", Value: formatFloat(nodes.TensionKj.TopExternal)},
			{Name: "tension kj (base)", Value: nodes.TensionKj.Base.String()},
			{Name: "compression kj", Value: formatFloat(nodes.CompressionKj)},
			{Name: "external rotation", Value: formatRotation(nodes.ExternalRotation)},
			{Name: "internal rotation", Value: formatRotation(nodes.InternalRotation)},
			{Name: "cracking rotation", Value: formatFloat(nodes.CrackingRotation)},
		},
		Elements: []assets.ReportEntry{
			{Name: "moment curvature", Value: string(cfg.Elements.MomentCurvature)},
			{Name: "moment-shear interaction", Value: strconv.FormatBool(cfg.Elements.MomentShearInteraction)},
			{Name: "shear formulation", Value: string(cfg.Elements.ShearFormulation)},
			{Name: "M-N domain", Value: string(cfg.Elements.DomainMN)},
		},
		Subassembly: []assets.ReportEntry{
			{Name: "hierarchy", Value: string(cfg.Subassembly.Hierarchy)},
			{Name: "stiffness", Value: string(cfg.Subassembly.Stiffness)},
		},
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatRotation(r parameters.Rotation) string {
	return fmt.Sprintf("yielding %s, ultimate %s rad", formatFloat(r.Yielding), formatFloat(r.Ultimate))
}
