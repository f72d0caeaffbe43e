// Package stub parses the puzzle stub-generator DSL and renders solution
// scaffolds per language.
package stub

// VarType enumerates the DSL input types.
type VarType int

const (
	TypeInt VarType = iota
	TypeLong
	TypeFloat
	TypeBool
	TypeWord   // fixed-size token
	TypeString // whole line
)

func (t VarType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	case TypeWord:
		return "word"
	case TypeString:
		return "string"
	}
	return "unknown"
}

// Var is one input variable. MaxLen is set for word and string types;
// Comment carries the description from the INPUT section, when present.
type Var struct {
	Name    string
	Type    VarType
	MaxLen  int
	Comment string
}

type CmdKind int

const (
	CmdRead CmdKind = iota
	CmdWrite
	CmdLoop
	CmdLoopLine
)

// Cmd is one stub command. Loop commands nest exactly one body command.
type Cmd struct {
	Kind  CmdKind
	Vars  []Var  // read, loopline
	Text  string // write
	Count string // loop, loopline: literal number or variable name
	Body  *Cmd   // loop
}

// Stub is a parsed stub-generator program.
type Stub struct {
	Cmds          []Cmd
	Statement     string
	OutputComment string
}
