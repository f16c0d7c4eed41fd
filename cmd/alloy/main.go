package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-tfc/internal/converter"
	"github.com/napolitain/solver-tfc/internal/loader"
	"github.com/napolitain/solver-tfc/internal/models"
	"github.com/napolitain/solver-tfc/internal/solver/alloy"
	"github.com/napolitain/solver-tfc/internal/tui"
)

var (
	dataDir     string
	alloyName   string
	ingots      int
	quiet       bool
	showStats   bool
	interactive bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "alloy",
		Short: "TerraFirmaCraft Alloy Smelting Optimizer",
		Long: `A combinatorial solver that decides which ores, in what quantities,
combine into a target amount of an alloy while keeping every
component within its percentage band.`,
		Run: runSolver,
	}

	rootCmd.Flags().StringVarP(&dataDir, "data", "d", "data", "Path to data directory")
	rootCmd.Flags().StringVarP(&alloyName, "alloy", "a", "Bronze", "Alloy to produce")
	rootCmd.Flags().IntVarP(&ingots, "ingots", "n", 3, "Target output in ingots")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	rootCmd.Flags().BoolVarP(&showStats, "stats", "s", false, "Show search statistics")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick the alloy interactively")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolver(cmd *cobra.Command, args []string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	errorColor := color.New(color.FgRed, color.Bold)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  TerraFirmaCraft          │")
		titleColor.Println("│  Alloy Smelting Optimizer │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	stock, err := loader.LoadStock(dataDir)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error loading stock: %v\n", err)
		os.Exit(1)
	}

	alloys, err := loader.LoadAlloys(dataDir)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error loading alloys: %v\n", err)
		os.Exit(1)
	}

	spec, ok := findAlloy(alloys, alloyName)
	if interactive {
		spec, ok, err = tui.PickAlloy(alloys)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if !ok {
			return
		}
	} else if !ok {
		errorColor.Fprintf(os.Stderr, "Unknown alloy %q. Available: %s\n",
			alloyName, alloyNames(alloys))
		os.Exit(1)
	}

	if !quiet {
		fmt.Printf("📦 Stock (%s total):\n", converter.FormatVolume(stock.TotalVolume()))
		printStock(stock)

		fmt.Printf("\n🔩 Alloy: %s\n", spec.Name)
		for _, c := range spec.Components {
			fmt.Printf("   %-10s %5.1f%% – %5.1f%%\n", c.ProducedType, c.MinPercent, c.MaxPercent)
		}

		fmt.Printf("\n🔄 Solving for %d ingots (%d mB)...\n", ingots, converter.IngotsToMB(ingots))
	}

	solver := alloy.NewSolver()
	result := solver.Solve(converter.IngotsToMB(ingots), spec, stock)

	if !result.Success {
		errorColor.Printf("\n✗ %s\n", result.Message)
		if showStats {
			printStats(result.Stats)
		}
		os.Exit(1)
	}

	successColor.Printf("\n✓ Found allocation for %s of %s!\n",
		converter.FormatVolume(result.OutputVolume), spec.Name)
	printAllocation(result.Allocation)

	if showStats {
		printStats(result.Stats)
	}
}

func findAlloy(alloys []models.AlloySpec, name string) (models.AlloySpec, bool) {
	for _, a := range alloys {
		if strings.EqualFold(a.Name, name) {
			return a, true
		}
	}
	return models.AlloySpec{}, false
}

func alloyNames(alloys []models.AlloySpec) string {
	names := make([]string, 0, len(alloys))
	for _, a := range alloys {
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func printStock(stock models.Stock) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Mineral", "Metal", "Yield (mB)", "Quantity", "Total (mB)"}),
	)

	for _, e := range stock {
		table.Append([]string{
			e.Mineral.Name,
			e.Mineral.ProducedType,
			fmt.Sprintf("%d", e.Mineral.YieldPerUnit),
			fmt.Sprintf("%d", e.Quantity),
			fmt.Sprintf("%d", e.Volume()),
		})
	}
	table.Render()
}

func printAllocation(allocation models.Allocation) {
	fmt.Println("\n📋 Minerals to smelt:")

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Mineral", "Metal", "Quantity", "Volume (mB)", "Share"}),
	)

	total := allocation.Volume()
	for _, e := range allocation {
		volume := e.Quantity * e.Mineral.YieldPerUnit
		table.Append([]string{
			e.Mineral.Name,
			e.Mineral.ProducedType,
			fmt.Sprintf("%d", e.Quantity),
			fmt.Sprintf("%d", volume),
			fmt.Sprintf("%.1f%%", float64(volume)/float64(total)*100),
		})
	}
	table.Render()

	fmt.Printf("\n   Total: %s\n", converter.FormatVolume(total))
}

func printStats(stats models.SolveStats) {
	fmt.Println("\n📊 Search statistics:")
	fmt.Printf("   Generation runs:     %d (accepts %d, declines %d)\n",
		stats.GenerationRuns, stats.GenerationAccepts, stats.GenerationDeclines)
	fmt.Printf("   Batches attempted:   %d (accepts %d, declines %d)\n",
		stats.BatchCount, stats.BatchAccepts, stats.BatchDeclines)
	fmt.Printf("   Scale efficiency:    %d extra batches\n", stats.ScaleEfficiency)
	fmt.Printf("   Backtrack potential: %d\n", stats.BacktrackPotential)
	fmt.Printf("   Elapsed: %.2f ms, memory delta: %.2f MB\n",
		stats.ElapsedTimeMs, stats.MemoryDeltaMB)
}
