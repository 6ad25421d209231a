package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/synbiolab/crngen/internal/browse"
	"github.com/synbiolab/crngen/internal/catalog"
	"github.com/synbiolab/crngen/internal/circuit"
	"github.com/synbiolab/crngen/internal/stats"
	"github.com/synbiolab/crngen/internal/storage"
)

var (
	dataDir string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crngen",
		Short: "chemical reaction network generator for gene expression circuits",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".crngen", "data directory")

	buildCmd := &cobra.Command{
		Use:   "build [circuit.yaml]",
		Short: "compile a circuit into a reaction network",
		Args:  cobra.ExactArgs(1),
		RunE:  buildCircuit,
	}
	buildCmd.Flags().BoolVar(&verbose, "verbose", false, "print the compiled network")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored builds",
		RunE:  listBuilds,
	}

	printCmd := &cobra.Command{
		Use:   "print [build_id]",
		Short: "print a stored network",
		Args:  cobra.ExactArgs(1),
		RunE:  printBuild,
	}

	mechanismsCmd := &cobra.Command{
		Use:   "mechanisms",
		Short: "list available mechanisms",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range catalog.NewRegistry().List() {
				fmt.Println(name)
			}
			return nil
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats [circuit.yaml]",
		Short: "compile a circuit and summarize its network",
		Args:  cobra.ExactArgs(1),
		RunE:  statsCircuit,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [build_id]",
		Short: "export a stored network to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [build_id]",
		Short: "export a stored network's reactions to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	browseCmd := &cobra.Command{
		Use:   "browse [build_id]",
		Short: "browse a stored network interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := storage.New(dataDir).Load(args[0])
			if err != nil {
				return err
			}
			return browse.Run(rec)
		},
	}

	rootCmd.AddCommand(buildCmd, listCmd, printCmd, mechanismsCmd, statsCmd, exportJSONCmd, exportCSVCmd, browseCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func compile(path string) (*circuit.Definition, *circuit.Result, error) {
	def, err := circuit.Load(path)
	if err != nil {
		return nil, nil, err
	}
	tbl, err := def.ParamTable()
	if err != nil {
		return nil, nil, err
	}
	result, err := circuit.Compile(context.Background(), def, tbl)
	if err != nil {
		return nil, nil, err
	}
	return def, result, nil
}

func buildCircuit(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	start := time.Now()
	def, result, err := compile(args[0])
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	warnings := make([]string, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		warnings = append(warnings, fmt.Sprintf("%s: %s", d.Mechanism, d.Message))
	}

	buildID, err := st.Save(def.Name, result.Network, warnings)
	if err != nil {
		return err
	}

	fmt.Printf("compiled %s in %v\n", def.Name, elapsed)
	fmt.Printf("build id: %s\n", buildID)
	fmt.Printf("species: %d\n", len(result.Network.Species))
	fmt.Printf("reactions: %d\n", len(result.Network.Reactions))
	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}
	if problems := result.Network.Validate(); len(problems) > 0 {
		for _, p := range problems {
			fmt.Printf("check: %s\n", p)
		}
	}

	if verbose {
		fmt.Println()
		fmt.Print(result.Network.PrettyPrint())
	}
	return nil
}

func listBuilds(cmd *cobra.Command, args []string) error {
	builds, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(builds) == 0 {
		fmt.Println("no builds found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCIRCUIT\tTIME\tSPECIES\tREACTIONS\tWARNINGS")
	for _, b := range builds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
			b.ID,
			b.Circuit,
			b.Timestamp.Format("2006-01-02 15:04:05"),
			b.Species,
			b.Reactions,
			len(b.Warnings),
		)
	}
	return w.Flush()
}

func printBuild(cmd *cobra.Command, args []string) error {
	rec, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("build: %s\n", rec.Meta.ID)
	fmt.Printf("circuit: %s\n\n", rec.Meta.Circuit)
	fmt.Printf("species (%d):\n", len(rec.Species))
	for _, sp := range rec.Species {
		fmt.Printf("  %s\n", sp.ID)
	}
	fmt.Printf("\nreactions (%d):\n", len(rec.Reactions))
	for i, r := range rec.Reactions {
		fmt.Printf("  %3d  %s\n", i, r.Display)
	}
	return nil
}

func statsCircuit(cmd *cobra.Command, args []string) error {
	def, result, err := compile(args[0])
	if err != nil {
		return err
	}

	summary := stats.Summarize(result.Network)
	fmt.Printf("circuit: %s\n", def.Name)
	fmt.Printf("species: %d\n", summary.Species)
	fmt.Printf("reactions: %d (%d reversible)\n\n", summary.Reactions, summary.Reversible)

	fmt.Println("by propensity kind:")
	for kind, n := range summary.KindCounts {
		fmt.Printf("  %s: %d\n", kind, n)
	}
	fmt.Println("\nby material:")
	for material, n := range summary.MaterialCounts {
		if material == "" {
			material = "(none)"
		}
		fmt.Printf("  %s: %d\n", material, n)
	}

	degrees := stats.Degrees(result.Network)
	series := stats.DegreeSeries(degrees)
	if len(series) >= 2 {
		fmt.Println()
		graph := asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("species degree (sorted)"),
		)
		fmt.Println(graph)
		fmt.Println()
		top := 5
		if top > len(degrees) {
			top = len(degrees)
		}
		fmt.Println("hubs:")
		for _, d := range degrees[:top] {
			fmt.Printf("  %s: %d reactions\n", d.Species, d.Count)
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	rec, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, rec)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	rec, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"index", "reaction", "kind", "rate"}); err != nil {
		return err
	}
	for i, r := range rec.Reactions {
		row := []string{
			strconv.Itoa(i),
			r.Display,
			r.Kind,
			strconv.FormatFloat(r.Rate, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
