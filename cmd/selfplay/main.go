package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"janggi/internal/janggi"
)

type move struct{ from, to janggi.Square }

type tally struct {
	mu      sync.Mutex
	results map[janggi.Result]int
	plies   int
}

func (t *tally) add(r janggi.Result, plies int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results[r]++
	t.plies += plies
}

func main() {
	games := flag.Int("games", 100, "number of random games")
	workers := flag.Int("workers", runtime.GOMAXPROCS(0), "games played in parallel")
	maxMoves := flag.Int("maxmoves", 300, "ply cap per game")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			logrus.Infof("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				logrus.WithError(err).Warn("pprof failed")
			}
		}()
	}

	log := logrus.WithField("seed", *seed)
	t := &tally{results: make(map[janggi.Result]int)}
	start := time.Now()

	var g errgroup.Group
	g.SetLimit(*workers)
	for i := 0; i < *games; i++ {
		i := i
		rng := rand.New(rand.NewSource(*seed + int64(i)))
		g.Go(func() error {
			res, plies, err := playRandom(rng, *maxMoves)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			t.add(res, plies)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	log.WithFields(logrus.Fields{
		"games":      *games,
		"blue_won":   t.results[janggi.BlueWins],
		"red_won":    t.results[janggi.RedWins],
		"unfinished": t.results[janggi.Ongoing],
		"plies":      t.plies,
		"elapsed":    time.Since(start).Round(time.Millisecond),
	}).Info("selfplay finished")
}

// playRandom 双方随机走子直到分出胜负或到步数上限，每步后检查引擎不变量
func playRandom(rng *rand.Rand, maxMoves int) (janggi.Result, int, error) {
	g := janggi.NewGame()
	for ply := 0; ply < maxMoves; ply++ {
		if g.Result() != janggi.Ongoing {
			return g.Result(), ply, nil
		}
		cands := candidates(g)
		rng.Shuffle(len(cands), func(i, j int) { cands[i], cands[j] = cands[j], cands[i] })

		played := false
		for _, m := range cands {
			before := g.Board()
			turn := g.Turn()
			err := g.Play(m.from, m.to)
			if err != nil {
				if !errors.Is(err, janggi.ErrPassInCheck) && !errors.Is(err, janggi.ErrCaptureGeneral) {
					return g.Result(), ply, fmt.Errorf("generated move %v rejected: %w", m, err)
				}
				if g.Board() != before || g.Turn() != turn {
					return g.Result(), ply, fmt.Errorf("rejected move %v changed the game", m)
				}
				continue
			}
			if g.Turn() != turn+1 {
				return g.Result(), ply, fmt.Errorf("turn did not advance after %v", m)
			}
			if err := checkGenerals(g.Board()); err != nil {
				return g.Result(), ply, err
			}
			played = true
			break
		}
		if !played {
			// 自己露将又无处可逃，算未完成
			return g.Result(), ply, nil
		}
	}
	return g.Result(), maxMoves, nil
}

// candidates 收集轮到的一方所有生成出来的走法，外加每个子的停着
func candidates(g *janggi.Game) []move {
	side := g.ToMove()
	b := g.Board()
	var out []move
	for r := 0; r < janggi.Rows; r++ {
		for c := 0; c < janggi.Cols; c++ {
			from := janggi.Sq(r, c)
			pc := b.At(from)
			if pc == janggi.NoPiece || pc.Color() != side {
				continue
			}
			out = append(out, move{from, from})
			for _, to := range g.Moves(from) {
				out = append(out, move{from, to})
			}
		}
	}
	return out
}

func checkGenerals(b janggi.Board) error {
	var n [2]int
	for _, pc := range b.Squares {
		if pc.Kind() == janggi.KindGeneral {
			n[pc.Color()]++
		}
	}
	if n[janggi.Blue] != 1 || n[janggi.Red] != 1 {
		return fmt.Errorf("general count blue=%d red=%d", n[janggi.Blue], n[janggi.Red])
	}
	return nil
}
