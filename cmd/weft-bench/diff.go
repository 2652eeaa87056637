package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/pkg/dom"
	"github.com/weft-ui/weft/pkg/reactive"
	"github.com/weft-ui/weft/pkg/reconcile"
	"github.com/weft-ui/weft/pkg/vdom"
)

func diffCmd() *cobra.Command {
	var (
		listSize int
		rounds   int
		seed     int64
	)

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Measure keyed list reconciliation throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := dom.NewMemory()
			rt := reactive.NewRuntime(nil)
			defer rt.Dispose()

			rec := reconcile.New(reconcile.Config{Document: doc, Runtime: rt})
			container := doc.CreateElement("main")

			rng := rand.New(rand.NewSource(seed))
			keys := make([]string, listSize)
			for i := range keys {
				keys[i] = fmt.Sprintf("row-%d", i)
			}

			build := func(order []string) *vdom.VNode {
				return vdom.Ul(vdom.Map(order, func(k string) *vdom.VNode {
					return vdom.Li(vdom.Key(k), vdom.Text(k))
				}))
			}

			if err := rec.Render(build(keys), container); err != nil {
				return err
			}

			mutations := 0
			doc.Observe(func(dom.Mutation) { mutations++ })

			start := time.Now()
			for i := 0; i < rounds; i++ {
				rng.Shuffle(len(keys), func(a, b int) {
					keys[a], keys[b] = keys[b], keys[a]
				})
				if err := rec.Render(build(keys), container); err != nil {
					return err
				}
			}
			elapsed := time.Since(start)

			fmt.Printf("list size:      %d\n", listSize)
			fmt.Printf("rounds:         %d\n", rounds)
			fmt.Printf("elapsed:        %s\n", elapsed)
			fmt.Printf("mutations:      %d (%.1f per round)\n", mutations, float64(mutations)/float64(rounds))
			fmt.Printf("rounds/sec:     %.0f\n", float64(rounds)/elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().IntVar(&listSize, "list-size", 1000, "keyed rows per list")
	cmd.Flags().IntVar(&rounds, "rounds", 1000, "shuffle-and-diff rounds")
	cmd.Flags().Int64Var(&seed, "seed", 1, "shuffle seed")

	return cmd
}
