package menu

const (
	// GlobalHelpName is the name of the statement built by GlobalHelp.
	GlobalHelpName = "help"
	// CommandHelpName is the name of the statement built by CommandHelp.
	CommandHelpName = "help on command"
)

// GlobalHelp returns a new statement matching "--help", "-h", "-?" or an
// empty argument vector. Its only flag, help, is set unless argv was empty.
// Each call returns a fresh statement so menus never share one.
func GlobalHelp() *Statement {
	return &Statement{
		name:      GlobalHelpName,
		summary:   "Show this help screen.",
		flags:     []*Flag{{names: []string{"help", "h", "?"}, reserved: true}},
		residue:   ResidueAllowed,
		residueOf: "ARGS",
		kind:      kindGlobalHelp,
	}
}

// CommandHelp returns a new statement matching "help <statement>". Menu.Parse
// rejects topics that do not name one of its statements.
func CommandHelp() *Statement {
	return &Statement{
		name:       CommandHelpName,
		summary:    "Show help for one statement.",
		verb:       "help",
		residue:    ResidueRequired,
		residueOf:  "STATEMENT",
		maxResidue: 1,
		kind:       kindCommandHelp,
	}
}

// Topic returns the statement name given to a command-help invocation.
func (inv *Invocation) Topic() string {
	if inv.statement.kind != kindCommandHelp || len(inv.rest) == 0 {
		return ""
	}
	return inv.rest[0]
}
