package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]CommandDef)}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, commandPhrase{
		canonical: c.Canonical,
		alias:     c.Canonical,
		tokens:    tokenise(c.Canonical),
	})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    tokenise(n),
		})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

func (r *Registry) commandNames() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type commandCandidate struct {
	Canonical string
	Alias     string
	Consumed  int
	Score     float64
}

func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}

	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if len(phrase.tokens) == 0 {
			continue
		}
		consumed := min(len(tokens), len(phrase.tokens))
		prefix := strings.Join(tokens[:consumed], " ")
		cands = append(cands, commandCandidate{
			Canonical: phrase.canonical,
			Alias:     phrase.alias,
			Consumed:  consumed,
			Score:     similarity(prefix, phrase.alias),
		})
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Score > cands[j].Score })

	best := cands[0]
	var alternates []commandCandidate
	for _, c := range cands[1:] {
		if c.Canonical == best.Canonical {
			continue
		}
		alternates = append(alternates, c)
		if len(alternates) == 3 {
			break
		}
	}
	return best, alternates
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len(a), len(b))
	if longest == 0 {
		return 0
	}
	d := levenshtein.ComputeDistance(a, b)
	if d >= longest {
		return 0
	}
	return 1 - float64(d)/float64(longest)
}
