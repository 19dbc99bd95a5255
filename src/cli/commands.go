// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/wallet-core/src/trust"
)

func newConfigCommand(s *session) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the assembled runtime configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := s.provider.Config(cmd.Context())
			if err != nil {
				return err
			}

			desc := cfg.Describe()
			if asYAML {
				return writeYAML(cmd.OutOrStdout(), desc)
			}
			return writeJSON(cmd.OutOrStdout(), desc)
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead of JSON")
	return cmd
}

func newAnchorsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "anchors",
		Short: "List the merged trust anchors as a markdown table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := s.provider.Report(cmd.Context())
			if err != nil {
				return err
			}
			return renderReport(cmd.OutOrStdout(), report)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return enc.Close()
}

// renderReport writes the anchors table followed by the skipped resources table, if any.
func renderReport(w io.Writer, report *trust.Report) error {
	if len(report.Anchors) == 0 {
		if _, err := fmt.Fprintln(w, "No trust anchors"); err != nil {
			return err
		}
	} else {
		rows := make([][]string, 0, len(report.Anchors))
		for i, a := range report.Anchors {
			resource := "-"
			if a.Origin == trust.OriginBundled {
				resource = a.Resource.Name
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				string(a.Origin),
				resource,
				a.Certificate.Subject.CommonName,
				a.Certificate.NotAfter.Format("2006-01-02"),
			})
		}
		if err := renderTable(w, []string{"#", "Origin", "Resource", "Subject", "Valid Until"}, rows); err != nil {
			return err
		}
	}

	if len(report.Skipped) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "\nSkipped %d bundled resource(s):\n\n", len(report.Skipped)); err != nil {
		return err
	}
	rows := make([][]string, 0, len(report.Skipped))
	for _, sk := range report.Skipped {
		rows = append(rows, []string{sk.Resource.Name, string(sk.Stage), sk.Err.Error()})
	}
	return renderTable(w, []string{"Resource", "Stage", "Error"}, rows)
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(headers)
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}
