package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"janggi/internal/janggi"
	"janggi/internal/notation"
)

func main() {
	fen := flag.String("fen", "", "position to inspect (default: initial position)")
	flag.Parse()

	g := janggi.NewGame()
	if *fen != "" {
		var err error
		if g, err = janggi.DecodePosition(*fen); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Println("FEN:", g.Encode())
	side := g.ToMove()
	fmt.Printf("to move: %s, in check: %v\n", side, g.InCheck(side))

	total := 0
	b := g.Board()
	for r := 0; r < janggi.Rows; r++ {
		for c := 0; c < janggi.Cols; c++ {
			sq := janggi.Sq(r, c)
			pc := b.At(sq)
			if pc == janggi.NoPiece || pc.Color() != side {
				continue
			}
			dst := g.Moves(sq)
			total += len(dst)
			fmt.Printf("%-4s %-16s %s\n", notation.Format(sq), pc, strings.Join(notation.FormatAll(dst), " "))
		}
	}
	fmt.Println("moves:", total)
}
