package stub

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Generate renders a solution scaffold for the parsed stub in the given
// language. Language names are case-insensitive and common aliases (py, js,
// rb, golang) resolve to the canonical name.
func Generate(s *Stub, language string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(language))
	if canonical, ok := languageAliases[name]; ok {
		name = canonical
	}
	e, ok := emitters[name]
	if !ok {
		return "", fmt.Errorf("unsupported language %q", language)
	}
	w := &writer{unit: e.unit()}
	g := &generator{w: w, e: e}
	e.prologue(w, s)
	for i := range s.Cmds {
		g.cmd(&s.Cmds[i], s)
	}
	e.epilogue(w, s)
	return w.b.String(), nil
}

// Languages lists the supported canonical language names.
func Languages() []string {
	names := make([]string, 0, len(emitters))
	for name := range emitters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var languageAliases = map[string]string{
	"golang":  "go",
	"py":      "python",
	"python3": "python",
	"rb":      "ruby",
	"js":      "javascript",
}

var emitters = map[string]emitter{
	"go":         goEmitter{},
	"python":     pyEmitter{},
	"ruby":       rubyEmitter{},
	"javascript": jsEmitter{},
	"c":          cEmitter{},
}

type emitter interface {
	unit() string
	prologue(w *writer, s *Stub)
	epilogue(w *writer, s *Stub)
	read(w *writer, vars []Var)
	write(w *writer, text string)
	loopHead(w *writer, count string)
	loopFoot(w *writer)
	loopline(w *writer, count string, vars []Var)
	ident(name string) string
	comment(text string) string
}

type writer struct {
	b      strings.Builder
	unit   string
	indent int
}

func (w *writer) linef(format string, args ...any) {
	w.b.WriteString(strings.Repeat(w.unit, w.indent))
	fmt.Fprintf(&w.b, format, args...)
	w.b.WriteByte('\n')
}

func (w *writer) blank() { w.b.WriteByte('\n') }

type generator struct {
	w           *writer
	e           emitter
	outputNoted bool
}

func (g *generator) cmd(c *Cmd, s *Stub) {
	switch c.Kind {
	case CmdRead:
		g.e.read(g.w, c.Vars)
	case CmdWrite:
		if !g.outputNoted && s.OutputComment != "" {
			for _, line := range strings.Split(s.OutputComment, "\n") {
				g.w.linef("%s", g.e.comment(line))
			}
			g.outputNoted = true
		}
		g.e.write(g.w, c.Text)
	case CmdLoop:
		g.e.loopHead(g.w, g.countExpr(c.Count))
		g.w.indent++
		g.cmd(c.Body, s)
		g.w.indent--
		g.e.loopFoot(g.w)
	case CmdLoopLine:
		g.e.loopline(g.w, g.countExpr(c.Count), c.Vars)
	}
}

func (g *generator) countExpr(count string) string {
	if numRe.MatchString(count) {
		return count
	}
	return g.e.ident(count)
}

// stubReads reports whether the program reads anything at all.
func stubReads(s *Stub) bool {
	var reads func(c *Cmd) bool
	reads = func(c *Cmd) bool {
		switch c.Kind {
		case CmdRead, CmdLoopLine:
			return true
		case CmdLoop:
			return reads(c.Body)
		}
		return false
	}
	for i := range s.Cmds {
		if reads(&s.Cmds[i]) {
			return true
		}
	}
	return false
}

// indexExpr is the token index of variable pos within an iteration of a
// loopline over stride variables.
func indexExpr(stride, pos int) string {
	if stride == 1 {
		return "i"
	}
	if pos == 0 {
		return fmt.Sprintf("%d * i", stride)
	}
	return fmt.Sprintf("%d * i + %d", stride, pos)
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// --- Go ---

type goEmitter struct{}

func (goEmitter) unit() string { return "\t" }
func (goEmitter) ident(name string) string { return name }
func (goEmitter) comment(t string) string { return "// " + t }

func (goEmitter) prologue(w *writer, s *Stub) {
	w.linef("package main")
	w.blank()
	if stubReads(s) {
		w.linef("import (")
		w.indent++
		w.linef(`"bufio"`)
		w.linef(`"fmt"`)
		w.linef(`"os"`)
		w.indent--
		w.linef(")")
	} else {
		w.linef(`import "fmt"`)
	}
	w.blank()
	w.linef("func main() {")
	w.indent++
	if stubReads(s) {
		w.linef("reader := bufio.NewReader(os.Stdin)")
	}
}

func (goEmitter) epilogue(w *writer, s *Stub) {
	w.indent--
	w.linef("}")
}

func goType(t VarType) string {
	switch t {
	case TypeLong:
		return "int64"
	case TypeFloat:
		return "float64"
	case TypeBool:
		return "bool"
	case TypeWord, TypeString:
		return "string"
	}
	return "int"
}

func (goEmitter) read(w *writer, vars []Var) {
	for _, v := range vars {
		suffix := ""
		if v.Comment != "" {
			suffix = " // " + v.Comment
		}
		if v.Type == TypeString {
			w.linef("%s, _ := reader.ReadString('\\n')%s", v.Name, suffix)
			continue
		}
		w.linef("var %s %s", v.Name, goType(v.Type))
		w.linef("fmt.Fscan(reader, &%s)%s", v.Name, suffix)
	}
}

func (goEmitter) write(w *writer, text string) {
	w.linef("fmt.Println(%s)", strconv.Quote(text))
}

func (goEmitter) loopHead(w *writer, count string) {
	w.linef("for i := 0; i < %s; i++ {", count)
}

func (goEmitter) loopFoot(w *writer) { w.linef("}") }

func (e goEmitter) loopline(w *writer, count string, vars []Var) {
	e.loopHead(w, count)
	w.indent++
	e.read(w, vars)
	w.indent--
	e.loopFoot(w)
}

// --- Python ---

type pyEmitter struct{}

func (pyEmitter) unit() string { return "    " }
func (pyEmitter) ident(name string) string { return toSnake(name) }
func (pyEmitter) comment(t string) string { return "# " + t }

func (pyEmitter) prologue(w *writer, s *Stub) {}
func (pyEmitter) epilogue(w *writer, s *Stub) {}

func pyCast(t VarType, expr string) string {
	switch t {
	case TypeInt, TypeLong:
		return "int(" + expr + ")"
	case TypeFloat:
		return "float(" + expr + ")"
	case TypeBool:
		return expr + ` != "0"`
	}
	return expr
}

func pySuffix(v Var) string {
	if v.Comment == "" {
		return ""
	}
	return "  # " + v.Comment
}

func (e pyEmitter) read(w *writer, vars []Var) {
	if len(vars) == 1 {
		v := vars[0]
		w.linef("%s = %s%s", e.ident(v.Name), pyCast(v.Type, "input()"), pySuffix(v))
		return
	}
	w.linef("inputs = input().split()")
	for i, v := range vars {
		w.linef("%s = %s%s", e.ident(v.Name), pyCast(v.Type, fmt.Sprintf("inputs[%d]", i)), pySuffix(v))
	}
}

func (pyEmitter) write(w *writer, text string) {
	w.linef("print(%s)", strconv.Quote(text))
}

func (pyEmitter) loopHead(w *writer, count string) {
	w.linef("for i in range(%s):", count)
}

func (pyEmitter) loopFoot(w *writer) {}

func (e pyEmitter) loopline(w *writer, count string, vars []Var) {
	w.linef("inputs = input().split()")
	w.linef("for i in range(%s):", count)
	w.indent++
	for pos, v := range vars {
		idx := fmt.Sprintf("inputs[%s]", indexExpr(len(vars), pos))
		w.linef("%s = %s%s", e.ident(v.Name), pyCast(v.Type, idx), pySuffix(v))
	}
	w.indent--
}

// --- Ruby ---

type rubyEmitter struct{}

func (rubyEmitter) unit() string { return "  " }
func (rubyEmitter) ident(name string) string { return toSnake(name) }
func (rubyEmitter) comment(t string) string { return "# " + t }

func (rubyEmitter) prologue(w *writer, s *Stub) {}
func (rubyEmitter) epilogue(w *writer, s *Stub) {}

func rubyCast(t VarType, expr, chomped string) string {
	switch t {
	case TypeInt, TypeLong:
		return expr + ".to_i"
	case TypeFloat:
		return expr + ".to_f"
	case TypeBool:
		return chomped + ` != "0"`
	}
	return chomped
}

func (e rubyEmitter) read(w *writer, vars []Var) {
	if len(vars) == 1 {
		v := vars[0]
		w.linef("%s = %s", e.ident(v.Name), rubyCast(v.Type, "gets", "gets.chomp"))
		return
	}
	w.linef("inputs = gets.split")
	for i, v := range vars {
		idx := fmt.Sprintf("inputs[%d]", i)
		w.linef("%s = %s", e.ident(v.Name), rubyCast(v.Type, idx, idx))
	}
}

func (rubyEmitter) write(w *writer, text string) {
	w.linef("puts %s", rubyQuote(text))
}

func (rubyEmitter) loopHead(w *writer, count string) {
	w.linef("%s.times do", count)
}

func (rubyEmitter) loopFoot(w *writer) { w.linef("end") }

func (e rubyEmitter) loopline(w *writer, count string, vars []Var) {
	w.linef("inputs = gets.split")
	w.linef("%s.times do |i|", count)
	w.indent++
	for pos, v := range vars {
		idx := fmt.Sprintf("inputs[%s]", indexExpr(len(vars), pos))
		w.linef("%s = %s", e.ident(v.Name), rubyCast(v.Type, idx, idx))
	}
	w.indent--
	w.linef("end")
}

func rubyQuote(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `#`, `\#`)
	return `"` + r.Replace(text) + `"`
}

// --- JavaScript ---

type jsEmitter struct{}

func (jsEmitter) unit() string { return "    " }
func (jsEmitter) ident(name string) string { return name }
func (jsEmitter) comment(t string) string { return "// " + t }

func (jsEmitter) prologue(w *writer, s *Stub) {}
func (jsEmitter) epilogue(w *writer, s *Stub) {}

func jsCast(t VarType, expr string) string {
	switch t {
	case TypeInt, TypeLong:
		return "parseInt(" + expr + ")"
	case TypeFloat:
		return "parseFloat(" + expr + ")"
	case TypeBool:
		return expr + ` !== "0"`
	}
	return expr
}

func (e jsEmitter) read(w *writer, vars []Var) {
	if len(vars) == 1 {
		v := vars[0]
		w.linef("const %s = %s;", v.Name, jsCast(v.Type, "readline()"))
		return
	}
	w.linef("var inputs = readline().split(' ');")
	for i, v := range vars {
		w.linef("const %s = %s;", v.Name, jsCast(v.Type, fmt.Sprintf("inputs[%d]", i)))
	}
}

func (jsEmitter) write(w *writer, text string) {
	w.linef("console.log(%s);", strconv.Quote(text))
}

func (jsEmitter) loopHead(w *writer, count string) {
	w.linef("for (let i = 0; i < %s; i++) {", count)
}

func (jsEmitter) loopFoot(w *writer) { w.linef("}") }

func (e jsEmitter) loopline(w *writer, count string, vars []Var) {
	w.linef("var inputs = readline().split(' ');")
	w.linef("for (let i = 0; i < %s; i++) {", count)
	w.indent++
	for pos, v := range vars {
		idx := fmt.Sprintf("inputs[%s]", indexExpr(len(vars), pos))
		w.linef("const %s = %s;", v.Name, jsCast(v.Type, idx))
	}
	w.indent--
	w.linef("}")
}

// --- C ---

type cEmitter struct{}

func (cEmitter) unit() string { return "    " }
func (cEmitter) ident(name string) string { return name }
func (cEmitter) comment(t string) string { return "// " + t }

func (cEmitter) prologue(w *writer, s *Stub) {
	w.linef("#include <stdio.h>")
	w.linef("#include <stdlib.h>")
	w.linef("#include <string.h>")
	w.blank()
	w.linef("int main()")
	w.linef("{")
	w.indent++
}

func (cEmitter) epilogue(w *writer, s *Stub) {
	w.blank()
	w.linef("return 0;")
	w.indent--
	w.linef("}")
}

func (cEmitter) read(w *writer, vars []Var) {
	for _, v := range vars {
		suffix := ""
		if v.Comment != "" {
			suffix = " // " + v.Comment
		}
		switch v.Type {
		case TypeLong:
			w.linef("long long %s;", v.Name)
			w.linef(`scanf("%%lld", &%s);%s`, v.Name, suffix)
		case TypeFloat:
			w.linef("float %s;", v.Name)
			w.linef(`scanf("%%f", &%s);%s`, v.Name, suffix)
		case TypeWord:
			w.linef("char %s[%d];", v.Name, v.MaxLen+1)
			w.linef(`scanf("%%s", %s);%s`, v.Name, suffix)
		case TypeString:
			w.linef("char %s[%d];", v.Name, v.MaxLen+1)
			w.linef("fgets(%s, %d, stdin);%s", v.Name, v.MaxLen+1, suffix)
		default:
			// int and bool both arrive as integers on the wire.
			w.linef("int %s;", v.Name)
			w.linef(`scanf("%%d", &%s);%s`, v.Name, suffix)
		}
	}
}

func (cEmitter) write(w *writer, text string) {
	w.linef(`printf("%s\n");`, cEscape(text))
}

func (cEmitter) loopHead(w *writer, count string) {
	w.linef("for (int i = 0; i < %s; i++) {", count)
}

func (cEmitter) loopFoot(w *writer) { w.linef("}") }

func (e cEmitter) loopline(w *writer, count string, vars []Var) {
	e.loopHead(w, count)
	w.indent++
	e.read(w, vars)
	w.indent--
	e.loopFoot(w)
}

func cEscape(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "%", "%%")
	return r.Replace(text)
}
