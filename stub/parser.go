package stub

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	varRe   = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*):(int|long|float|bool|word\(([1-9][0-9]*)\)|string\(([1-9][0-9]*)\))$`)
	identRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	numRe   = regexp.MustCompile(`^[0-9]+$`)
)

// Parse reads a stub-generator program. Commands are line-oriented; the
// STATEMENT, INPUT and OUTPUT sections collect the lines that follow them
// up to the next blank line. Unknown commands fail with an error naming the
// offending token.
func Parse(input string) (*Stub, error) {
	s := &Stub{}
	inputComments := map[string]string{}
	lines := strings.Split(input, "\n")

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "read", "loop", "loopline":
			cmd, err := parseCommand(fields)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
			s.Cmds = append(s.Cmds, *cmd)
		case "write":
			text := strings.TrimSpace(strings.TrimPrefix(line, "write"))
			if text == "" {
				return nil, fmt.Errorf("line %d: write needs text", i+1)
			}
			s.Cmds = append(s.Cmds, Cmd{Kind: CmdWrite, Text: text})
		case "STATEMENT":
			s.Statement, i = readSection(lines, i)
		case "OUTPUT":
			s.OutputComment, i = readSection(lines, i)
		case "INPUT":
			var section string
			section, i = readSection(lines, i)
			parseInputComments(section, inputComments)
		default:
			return nil, fmt.Errorf("line %d: unknown stub command %q", i+1, fields[0])
		}
	}

	if len(inputComments) > 0 {
		for i := range s.Cmds {
			applyComments(&s.Cmds[i], inputComments)
		}
	}
	return s, nil
}

func parseCommand(toks []string) (*Cmd, error) {
	switch toks[0] {
	case "read":
		vars, err := parseVars(toks[1:])
		if err != nil {
			return nil, err
		}
		if len(vars) == 0 {
			return nil, errors.New("read needs at least one variable")
		}
		return &Cmd{Kind: CmdRead, Vars: vars}, nil
	case "write":
		if len(toks) < 2 {
			return nil, errors.New("write needs text")
		}
		return &Cmd{Kind: CmdWrite, Text: strings.Join(toks[1:], " ")}, nil
	case "loop":
		if len(toks) < 3 {
			return nil, errors.New("loop needs a count and a command")
		}
		if err := validCount(toks[1]); err != nil {
			return nil, err
		}
		body, err := parseCommand(toks[2:])
		if err != nil {
			return nil, err
		}
		return &Cmd{Kind: CmdLoop, Count: toks[1], Body: body}, nil
	case "loopline":
		if len(toks) < 3 {
			return nil, errors.New("loopline needs a count and variables")
		}
		if err := validCount(toks[1]); err != nil {
			return nil, err
		}
		vars, err := parseVars(toks[2:])
		if err != nil {
			return nil, err
		}
		return &Cmd{Kind: CmdLoopLine, Count: toks[1], Vars: vars}, nil
	}
	return nil, fmt.Errorf("unknown stub command %q", toks[0])
}

func parseVars(toks []string) ([]Var, error) {
	var vars []Var
	for _, tok := range toks {
		m := varRe.FindStringSubmatch(tok)
		if m == nil {
			return nil, fmt.Errorf("bad variable %q", tok)
		}
		v := Var{Name: m[1]}
		switch {
		case m[2] == "int":
			v.Type = TypeInt
		case m[2] == "long":
			v.Type = TypeLong
		case m[2] == "float":
			v.Type = TypeFloat
		case m[2] == "bool":
			v.Type = TypeBool
		case m[3] != "":
			v.Type = TypeWord
			v.MaxLen = atoiSafe(m[3])
		default:
			v.Type = TypeString
			v.MaxLen = atoiSafe(m[4])
		}
		vars = append(vars, v)
	}
	return vars, nil
}

func validCount(tok string) error {
	if numRe.MatchString(tok) || identRe.MatchString(tok) {
		return nil
	}
	return fmt.Errorf("bad loop count %q", tok)
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

func readSection(lines []string, i int) (string, int) {
	var buf []string
	j := i + 1
	for ; j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		if t == "" {
			break
		}
		buf = append(buf, t)
	}
	return strings.Join(buf, "\n"), j
}

// parseInputComments reads "name: description" lines from the INPUT section.
func parseInputComments(section string, out map[string]string) {
	for _, line := range strings.Split(section, "\n") {
		name, desc, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		desc = strings.TrimSpace(desc)
		if name != "" && desc != "" {
			out[name] = desc
		}
	}
}

func applyComments(c *Cmd, comments map[string]string) {
	for i := range c.Vars {
		if desc, ok := comments[c.Vars[i].Name]; ok {
			c.Vars[i].Comment = desc
		}
	}
	if c.Body != nil {
		applyComments(c.Body, comments)
	}
}
