package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"xiangqi/internal/game"
	"xiangqi/internal/xiangqi"
)

func main() {
	orientation := flag.String("orientation", "north", "home side of the first player: north, south, east or west")
	river := flag.Bool("river", false, "enable river rules (elephants stay home, crossed soldiers step sideways)")
	layout := flag.String("layout", "", "encoded position to load instead of the opening")
	flag.Parse()

	var opts []xiangqi.Option
	if *river {
		opts = append(opts, xiangqi.WithRiverRules())
	}
	m := game.NewManager(opts...)

	var (
		g   *game.GameState
		err error
	)
	if *layout != "" {
		g, err = m.Load(*layout)
	} else {
		side, perr := xiangqi.ParseSide(*orientation)
		if perr != nil {
			log.Fatalf("bad -orientation: %v", perr)
		}
		g, err = m.NewGame(side)
	}
	if err != nil {
		log.Fatalf("failed to set up board: %v", err)
	}

	text, hash := g.Snapshot()
	log.Printf("game %s", g.ID)
	fmt.Println("Layout:", text)
	fmt.Printf("Hash: %016x\n", hash)

	g.Read(func(b *xiangqi.Board) {
		fmt.Print(b.String())
		for _, side := range b.Rules().Sides() {
			start := time.Now()
			moves, err := xiangqi.LegalMoves(context.Background(), b, side)
			if err != nil {
				log.Fatalf("move generation for %v failed: %v", side, err)
			}
			fmt.Printf("%v: %d moves (%v)\n", side, len(moves), time.Since(start))
		}
		if xiangqi.KingsFace(b) {
			fmt.Println("kings face each other")
		}
	})
}
