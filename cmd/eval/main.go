// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command eval is a thin front end over pkg/eval: it parses a FEN from
// the command line (or stdin, one per line), prints the static
// evaluation, and optionally dumps a per-term trace. It does not speak
// UCI; driving a search with this evaluation is an external
// collaborator's job (§3).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/corvidlab/corvid/pkg/chess/board"
	"github.com/corvidlab/corvid/pkg/eval"
	"github.com/corvidlab/corvid/pkg/eval/pktable"
)

func main() {
	trace := flag.Bool("trace", false, "print a per-term evaluation breakdown")
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 {
		run(args[0], *trace)
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fen := scanner.Text()
		if fen == "" {
			continue
		}
		run(fen, *trace)
	}
}

func run(fen string, trace bool) {
	b, err := board.New(fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if trace {
		var t eval.Trace
		score := eval.EvaluateTrace(b, &t)
		fmt.Printf("%s\n", fen)
		for i := 0; i < eval.TermCount; i++ {
			if n := t.FetchTerm(i); n != 0 {
				fmt.Printf("%-24s %+d\n", eval.TermName(i), n)
			}
		}
		fmt.Printf("cp %d\n", score)
		return
	}

	pk := pktable.New(0)
	score := eval.Evaluate(b, pk)
	fmt.Printf("%s\ncp %d\n", fen, score)
}
