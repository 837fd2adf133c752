package test

import (
	"fmt"
	"math/rand"
	"strings"
)

var (
	names     = []string{"a", "b", "counter", "_tmp", "value2"}
	atoms     = []string{"1", "2.5", "0", "\"text\"", "\"\"", "true", "false", "nil", "a", "b", "counter"}
	binaryOps = []string{"+", "-", "*", "/", "==", "!=", "<", "<=", ">", ">=", "and", "or"}
	unaryOps  = []string{"-", "!"}
)

// GetRandomProgram returns size random top-level statements. The program is
// always syntactically valid, though it may fail when run.
func GetRandomProgram(size int) string {
	var b strings.Builder
	for i := 0; i < size; i++ {
		b.WriteString(statement(0, true))
		b.WriteByte('\n')
	}

	return b.String()
}

func pick(from []string) string {
	return from[rand.Intn(len(from))]
}

func expression(depth int) string {
	if depth > 2 {
		return pick(atoms)
	}

	switch rand.Intn(7) {
	case 0:
		return expression(depth+1) + " " + pick(binaryOps) + " " + expression(depth+1)
	case 1:
		return "(" + expression(depth+1) + ")"
	case 2:
		return pick(unaryOps) + expression(depth+1)
	case 3:
		return pick(names) + "(" + expression(depth+1) + ", " + pick(atoms) + ")"
	case 4:
		return pick(names) + "." + pick(names)
	case 5:
		// Only a whole expression can be an assignment
		if depth == 0 {
			return pick(names) + " = " + expression(depth+1)
		}

		return pick(atoms)
	default:
		return pick(atoms)
	}
}

// statement returns a random statement. Declarations only appear where the
// grammar accepts them: at the top level, in blocks and in function bodies.
func statement(depth int, declaration bool) string {
	n := 9
	if depth > 1 {
		n = 3
	}

	kind := rand.Intn(n)
	for !declaration && (kind == 0 || kind >= 7) {
		kind = rand.Intn(n)
	}

	switch kind {
	case 0:
		return fmt.Sprintf("var %s = %s;", pick(names), expression(0))
	case 1:
		return fmt.Sprintf("print %s;", expression(0))
	case 2:
		return fmt.Sprintf("%s.%s = %s;", pick(names), pick(names), expression(0))
	case 3:
		return fmt.Sprintf("{ %s %s }", statement(depth+1, true), statement(depth+1, true))
	case 4:
		return fmt.Sprintf("if (%s) %s else %s", expression(0), statement(depth+1, false), statement(depth+1, false))
	case 5:
		return fmt.Sprintf("while (%s) %s", expression(0), statement(depth+1, false))
	case 6:
		return fmt.Sprintf("for (var i = 0; i < %s; i = i + 1) %s", pick(atoms), statement(depth+1, false))
	case 7:
		return fmt.Sprintf("fun %s(x, y) { %s return %s; }", pick(names), statement(depth+1, true), expression(0))
	default:
		return fmt.Sprintf("class %s < Base { init(x) { this.x = x; } get() { return super.get(); } }",
			strings.ToUpper(pick(names)))
	}
}
