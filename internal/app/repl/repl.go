// Package repl implements the interactive read-eval-print loop that sits
// on top of a database.Database: one line in, one parsed statement
// executed, one table or error printed.
//
// The core engine never touches stdin/stdout directly; this thin wrapper
// owns the loop, the same split CentauriDB/main.go draws, and uses the
// bufio.Scanner-over-os.Stdin shape mjm918-tur's pkg/cli.REPL uses,
// simplified to a single-line statement model — no multi-line statements,
// no dot commands.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"centauri/internal/app/database"
	"centauri/internal/app/parse"
)

// REPL reads one statement per line from input and prints its result (or
// error) to output.
type REPL struct {
	db     *database.Database
	input  *bufio.Scanner
	output io.Writer
}

// New returns a REPL driving a fresh, empty Database.
func New(input io.Reader, output io.Writer) *REPL {
	return &REPL{
		db:     database.New(),
		input:  bufio.NewScanner(input),
		output: output,
	}
}

// Run reads and executes lines until "exit" or end of input. A per-query
// error is printed and the loop continues; only a read error on the
// underlying scanner stops the loop and is returned.
func (r *REPL) Run() error {
	for {
		fmt.Fprint(r.output, "> ")
		if !r.input.Scan() {
			return r.input.Err()
		}

		line := strings.TrimSpace(r.input.Text())
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}

		r.runOne(line)
	}
}

func (r *REPL) runOne(line string) {
	stmt, err := parse.Parse(line)
	if err != nil {
		fmt.Fprintln(r.output, err)
		return
	}

	table, err := r.db.Execute(stmt)
	if err != nil {
		fmt.Fprintln(r.output, err)
		return
	}
	if table != nil {
		fmt.Fprintln(r.output, table.String())
	}
}
