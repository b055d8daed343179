package parser

// Intent is the parsed form of one line of shell input.
type Intent struct {
	Raw        string
	Normalised string
	Verb       string
	Args       []string
	Confidence float64
	Clarify    *ClarifyQuestion
}

// ClarifyQuestion asks the user to disambiguate or correct their input.
type ClarifyQuestion struct {
	Prompt  string
	Options []string
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	Usage     string
}
