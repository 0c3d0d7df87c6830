package domain

import (
	"sort"
	"strings"
)

// Gate is the minimum session state a command needs before it may run.
type Gate int

const (
	GateAny Gate = iota
	GateConnected
	GateJoined
	GateDelegated
)

type Command struct {
	Name string
	Args []string
	// Raw is the trimmed input line. The free-text fallback sends Raw
	// so message bodies keep their original spacing.
	Raw string
}

type CommandSpec struct {
	Name    string
	Aliases []string
	Usage   string
	Summary string
	Gate    Gate
	Network bool
}

// commandRegistry is the fixed vocabulary of the terminal. Multi-word
// names ("list channels", "session authorize") are matched before the
// single-token fallback in ParseCommand.
var commandRegistry = []CommandSpec{
	{Name: "help", Usage: "help", Summary: "List available commands", Gate: GateAny},
	{Name: "man", Usage: "man <command>", Summary: "Show the manual page for a command", Gate: GateAny},
	{Name: "connect", Usage: "connect", Summary: "Connect the wallet and probe the bundler", Gate: GateAny, Network: true},
	{Name: "disconnect", Aliases: []string{"logout"}, Usage: "disconnect", Summary: "Disconnect and reset all session state", Gate: GateAny},
	{Name: "whoami", Usage: "whoami", Summary: "Show the connected account", Gate: GateConnected},
	{Name: "username set", Usage: "username set <name>", Summary: "Set your directory username", Gate: GateConnected, Network: true},
	{Name: "create", Usage: "create #channel", Summary: "Create a channel on-chain", Gate: GateConnected, Network: true},
	{Name: "join", Usage: "join #channel", Summary: "Join an existing channel", Gate: GateConnected, Network: true},
	{Name: "leave", Usage: "leave", Summary: "Leave the current channel", Gate: GateJoined},
	{Name: "list channels", Usage: "list channels", Summary: "List channels known to the directory", Gate: GateConnected, Network: true},
	{Name: "history", Usage: "history [count]", Summary: "Show recent messages in the current channel", Gate: GateJoined, Network: true},
	{Name: "session status", Usage: "session status", Summary: "Show the delegated session state", Gate: GateConnected},
	{Name: "session authorize", Usage: "session authorize [hours]", Summary: "Authorize a delegated session signer", Gate: GateConnected, Network: true},
	{Name: "session revoke", Usage: "session revoke", Summary: "Revoke the delegated session signer", Gate: GateDelegated, Network: true},
	{Name: "clear", Usage: "clear", Summary: "Clear the screen", Gate: GateAny},
	{Name: "quit", Aliases: []string{"exit"}, Usage: "quit", Summary: "End the terminal session", Gate: GateAny},
}

// multiWordNames holds registry names with more than one word, longest
// first so the greedy prefix match prefers "session authorize" over a
// hypothetical shorter prefix.
var multiWordNames = func() []string {
	names := make([]string, 0, len(commandRegistry))
	for _, spec := range commandRegistry {
		if strings.Contains(spec.Name, " ") {
			names = append(names, spec.Name)
		}
	}
	sort.Slice(names, func(i, j int) bool { return len(names[i]) > len(names[j]) })
	return names
}()

func Registry() []CommandSpec {
	specs := make([]CommandSpec, len(commandRegistry))
	copy(specs, commandRegistry)
	return specs
}

// LookupCommand resolves a parsed command name, following aliases, to
// its registry entry.
func LookupCommand(name string) (CommandSpec, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, spec := range commandRegistry {
		if spec.Name == normalized {
			return spec, true
		}
		for _, alias := range spec.Aliases {
			if alias == normalized {
				return spec, true
			}
		}
	}
	return CommandSpec{}, false
}

// ParseCommand turns raw terminal input into a Command. Multi-word
// registry names are matched against the leading tokens first;
// otherwise the first token is the command name and the rest become
// arguments. Names match case-insensitively. Returns false for input
// that is empty after trimming.
func ParseCommand(raw string) (Command, bool) {
	trimmed := strings.TrimSpace(raw)
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return Command{}, false
	}

	for _, name := range multiWordNames {
		words := strings.Fields(name)
		if len(fields) < len(words) {
			continue
		}
		if strings.EqualFold(strings.Join(fields[:len(words)], " "), name) {
			return Command{Name: name, Args: tailArgs(fields, len(words)), Raw: trimmed}, true
		}
	}

	return Command{Name: strings.ToLower(fields[0]), Args: tailArgs(fields, 1), Raw: trimmed}, true
}

func tailArgs(fields []string, skip int) []string {
	if len(fields) <= skip {
		return nil
	}
	return fields[skip:]
}

// Format renders the command the way help text shows it; it is the
// inverse of ParseCommand for every registry entry.
func (c Command) Format() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}
