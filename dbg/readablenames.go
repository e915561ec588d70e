package dbg

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/seidel/engine"
)

// This converts arbitrary strings into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. This is helpful for turning pointer strings into
// something more easily distinguishable when debugging.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondetemrinistic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// DumpTrapezoids prints one colorized line per trapezoid: its readable
// name in cyan, green if classified inside the polygon, red if outside.
// A quick terminal-only companion to DrawTrapezoids for sessions without
// iTerm's inline image support.
func DumpTrapezoids(w io.Writer, t *engine.Triangulator) {
	for _, trap := range t.Trapezoids() {
		name := aurora.Cyan(Name(trap))
		status := aurora.Red("outside")
		if trap.Inside {
			status = aurora.Green("inside")
		}
		fmt.Fprintf(w, "%s: %s\n", name, status)
	}
}
