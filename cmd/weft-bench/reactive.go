package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/weft-ui/weft/pkg/reactive"
)

func reactiveCmd() *cobra.Command {
	var (
		signals int
		writes  int
	)

	cmd := &cobra.Command{
		Use:   "reactive",
		Short: "Measure signal write and effect propagation throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt := reactive.NewRuntime(nil)
			defer rt.Dispose()

			sigs := make([]*reactive.Signal[int], signals)
			for i := range sigs {
				sigs[i] = reactive.NewSignal(rt, 0)
			}

			runs := 0
			reactive.NewEffect(rt, func() reactive.Cleanup {
				sum := 0
				for _, s := range sigs {
					sum += s.Get()
				}
				runs++
				return nil
			})

			start := time.Now()
			for i := 0; i < writes; i++ {
				reactive.Batch(rt, func() {
					for _, s := range sigs {
						s.Update(func(n int) int { return n + 1 })
					}
				})
				rt.RunPendingEffects()
			}
			elapsed := time.Since(start)

			totalWrites := signals * writes
			fmt.Printf("signals:        %d\n", signals)
			fmt.Printf("write turns:    %d\n", writes)
			fmt.Printf("effect runs:    %d (1 initial + 1 per turn)\n", runs)
			fmt.Printf("elapsed:        %s\n", elapsed)
			fmt.Printf("writes/sec:     %.0f\n", float64(totalWrites)/elapsed.Seconds())
			return nil
		},
	}

	cmd.Flags().IntVar(&signals, "signals", 100, "signals per batch")
	cmd.Flags().IntVar(&writes, "writes", 10000, "write turns")

	return cmd
}
