package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/bnema/chanterm/internal/domain"
)

// newManCmd renders the in-session command vocabulary as manual
// pages. Without arguments it shows the full index.
func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man [command]",
		Short: "Show manual pages for the in-session commands",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var markdown string
			if len(args) == 0 {
				markdown = manIndexMarkdown()
			} else {
				name := strings.ToLower(strings.Join(args, " "))
				spec, ok := domain.LookupCommand(name)
				if !ok {
					return fmt.Errorf("no manual entry for %q", name)
				}
				markdown = manPageMarkdown(spec)
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				return fmt.Errorf("build renderer: %w", err)
			}

			rendered, err := renderer.Render(markdown)
			if err != nil {
				return fmt.Errorf("render manual: %w", err)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func manIndexMarkdown() string {
	var b strings.Builder
	b.WriteString("# chanterm session commands\n\n")
	b.WriteString("Commands typed at the `ct` prompt. Anything that matches none of them is sent as a message to the current channel.\n\n")
	b.WriteString("| command | description |\n|---|---|\n")
	for _, spec := range domain.Registry() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", spec.Usage, spec.Summary)
	}
	b.WriteString("\nRun `ct man <command>` for details.\n")
	return b.String()
}

func manPageMarkdown(spec domain.CommandSpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", spec.Name)
	fmt.Fprintf(&b, "```\n%s\n```\n\n", spec.Usage)
	fmt.Fprintf(&b, "%s.\n", spec.Summary)
	if len(spec.Aliases) > 0 {
		fmt.Fprintf(&b, "\nAliases: %s.\n", strings.Join(spec.Aliases, ", "))
	}
	if note := manGateNote(spec.Gate); note != "" {
		fmt.Fprintf(&b, "\n%s.\n", note)
	}
	if spec.Network {
		b.WriteString("\nThis command talks to the network and may take a moment.\n")
	}
	return b.String()
}

func manGateNote(gate domain.Gate) string {
	switch gate {
	case domain.GateConnected:
		return "Requires a connected wallet"
	case domain.GateJoined:
		return "Requires a joined channel"
	case domain.GateDelegated:
		return "Requires an active delegated session"
	}
	return ""
}
