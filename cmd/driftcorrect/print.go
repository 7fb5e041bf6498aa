package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

func printNames(names []string) {
	pterm.Info.Println("Available algorithms")
	pterm.Println(strings.Join(names, "\n"))
}

func printResult(res Result) {
	pterm.Info.Printf("Run %s: %s, %d fixations on %d lines\n",
		res.RunID, res.Algorithm, len(res.After), len(res.Lines))

	data := [][]string{
		{"#", "X", "Y raw", "Y corrected", "Shift"},
	}
	for i := range res.After {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.1f", res.Before[i].X),
			fmt.Sprintf("%.1f", res.Before[i].Y),
			fmt.Sprintf("%.1f", res.After[i].Y),
			fmt.Sprintf("%+.1f", res.After[i].Y-res.Before[i].Y),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	if res.Gold != nil {
		pterm.Info.Printf("Gold standard agreement: %d/%d (%.1f%%)\n",
			res.Gold.Matching, res.Gold.N, 100*res.Gold.Accuracy)
	}
}
