// Package parser maps typed shell input onto the app's command
// vocabulary, tolerating typos with levenshtein-scored matching.
package parser

import (
	"fmt"
	"strings"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

// DefaultRegistry holds the sorting and tracking vocabulary.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []CommandDef{
		{Canonical: "help", Aliases: []string{"commands"}, Usage: "help"},
		{Canonical: "items", Aliases: []string{"catalog", "list items"}, Usage: "items"},
		{Canonical: "search", Aliases: []string{"find", "lookup"}, MinArgs: 1, Usage: "search <text>"},
		{Canonical: "sort", Aliases: []string{"play", "challenge", "game"}, Usage: "sort"},
		{Canonical: "log", Aliases: []string{"track", "record"}, MinArgs: 1, MaxArgs: 2, Usage: "log <recycle|compost|trash>"},
		{Canonical: "logs", Aliases: []string{"history", "recent"}, MaxArgs: 1, Usage: "logs [n]"},
		{Canonical: "delete", Aliases: []string{"remove"}, MinArgs: 1, MaxArgs: 1, Usage: "delete <n|id>"},
		{Canonical: "stats", Aliases: []string{"summary", "impact"}, Usage: "stats"},
		{Canonical: "trend", Aliases: []string{"week", "chart"}, Usage: "trend"},
		{Canonical: "streak", Usage: "streak"},
		{Canonical: "region", Aliases: []string{"location"}, MaxArgs: 4, Usage: "region [name|clear]"},
		{Canonical: "regions", Usage: "regions"},
		{Canonical: "score", Aliases: []string{"leaderboard", "best"}, Usage: "score"},
		{Canonical: "quit", Aliases: []string{"exit", "q"}, Usage: "quit"},
	} {
		r.RegisterCommand(c)
	}
	return r
}

func (p *Parser) Parse(raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command, or help to list them."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	best, alternates := p.registry.matchCommand(tokens)
	if best.Canonical == "" || best.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "I couldn't map that to a command.",
			Options: p.registry.commandNames(),
		}
		return intent
	}

	if len(alternates) > 0 && best.Score < 1 && (best.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: []string{best.Canonical, alternates[0].Canonical},
		}
		return intent
	}

	intent.Verb = best.Canonical
	intent.Confidence = best.Score
	if best.Consumed < len(tokens) {
		intent.Args = tokens[best.Consumed:]
	}

	def, _ := p.registry.command(intent.Verb)
	if len(intent.Args) < def.MinArgs {
		intent.Clarify = &ClarifyQuestion{
			Prompt: fmt.Sprintf("%s needs an argument. Usage: %s", def.Canonical, def.Usage),
		}
		return intent
	}
	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = intent.Args[:def.MaxArgs]
	}
	return intent
}

// ArgText joins parsed arguments back into one query string.
func (i Intent) ArgText() string {
	return strings.Join(i.Args, " ")
}
