// Command ordset is an example driver for the ordset package.
//
// It inserts a batch of unique random keys into a set, searches every key,
// then removes every key, reporting progress along the way. Its output is
// informational only.
package main

import (
	"cmp"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/go-faker/faker/v4"
	"github.com/guiguan/caster"
	"github.com/npillmayer/ordset"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

type progress struct {
	phase string
	done  int
	total int
}

func main() {
	n := flag.Int("n", 200000, "number of unique random keys to soak the set with")
	degree := flag.Int("degree", 2, "minimum degree of the backing B-tree")
	words := flag.Bool("words", false, "use go-faker word keys instead of integers")
	dot := flag.Bool("dot", false, "print the final pre-removal tree as Graphviz DOT (small n only)")
	verbose := flag.Bool("v", false, "trace structural events")
	flag.Parse()

	gtrace.CoreTracer = gologadapter.New()
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	}

	cast := caster.New(nil)
	done := make(chan struct{})
	go reportProgress(cast, done)

	var err error
	if *words {
		err = soak(wordKeys(*n), *degree, *dot, cast)
	} else {
		err = soak(intKeys(*n), *degree, *dot, cast)
	}
	cast.Close()
	<-done

	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "soak failed: %v\n", err)
		os.Exit(1)
	}
	color.New(color.FgGreen).Printf("soak of %d keys complete, set drained to size 0\n", *n)
}

// intKeys produces n unique pseudo-random integer keys.
func intKeys(n int) []int {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	seen := make(map[int]struct{}, n)
	keys := make([]int, 0, n)
	for len(keys) < n {
		k := r.Intn(1_000_000_000)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// wordKeys produces n unique word-shaped keys. The faker vocabulary is
// small, so a counter suffix guarantees uniqueness.
func wordKeys(n int) []string {
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		keys = append(keys, fmt.Sprintf("%s-%s-%d", faker.Word(), faker.Word(), i))
	}
	return keys
}

// soak drives the whole insert/search/remove cycle on a fresh set. The set
// is used from this goroutine only; cast carries progress messages to the
// reporting goroutine.
func soak[K cmp.Ordered](keys []K, degree int, dot bool, cast *caster.Caster) error {
	set, err := ordset.New[K](ordset.Degree(degree))
	if err != nil {
		return err
	}
	total := len(keys)
	for i, k := range keys {
		set.Insert(k)
		publish(cast, progress{phase: "insert", done: i + 1, total: total})
	}
	if set.Size() != total {
		return fmt.Errorf("size after inserts is %d, want %d", set.Size(), total)
	}
	for i, k := range keys {
		if _, err := set.Search(k); err != nil {
			return fmt.Errorf("search for %v: %w", k, err)
		}
		publish(cast, progress{phase: "search", done: i + 1, total: total})
	}
	if dot {
		ordset.Set2Dot(set, os.Stdout)
	}
	for i, k := range keys {
		if err := set.Delete(k); err != nil {
			return fmt.Errorf("remove of %v: %w", k, err)
		}
		publish(cast, progress{phase: "remove", done: i + 1, total: total})
	}
	if !set.IsEmpty() {
		return fmt.Errorf("size after removals is %d, want 0", set.Size())
	}
	return nil
}

func publish(cast *caster.Caster, p progress) {
	if p.done%10000 == 0 || p.done == p.total {
		cast.TryPub(p)
	}
}

// reportProgress prints progress messages published by the soak loop until
// the broadcaster is closed.
func reportProgress(cast *caster.Caster, done chan<- struct{}) {
	defer close(done)
	ch, ok := cast.Sub(nil, 32)
	if !ok {
		return
	}
	width := 80
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	for m := range ch {
		p, ok := m.(progress)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s %d/%d", p.phase, p.done, p.total)
		if len(line) > width {
			line = line[:width]
		}
		fmt.Println(line)
	}
}
