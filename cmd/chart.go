package cmd

import (
	"fmt"
	"os"
	"strings"

	"bplan/internal/chart"
	"bplan/internal/cli"
	"bplan/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	flagChartSVG string

	chartCmd = &cobra.Command{
		Use:   "chart",
		Short: "Show the allocation breakdown as a chart",
		Long:  "Render the allocation breakdown as a terminal bar chart, or write an SVG pie chart with --svg.",
		RunE:  runChart,
	}
)

func init() {
	chartCmd.Flags().StringVar(&flagChartSVG, "svg", "", "Write an SVG pie chart to this file")
	rootCmd.AddCommand(chartCmd)
}

func runChart(_ *cobra.Command, _ []string) error {
	e, st, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	s := e.Snapshot()
	slices := chart.Slices(s.Categories)
	if slices == nil {
		fmt.Println("  Nothing allocated yet.")
		return nil
	}

	if flagChartSVG != "" {
		svg := renderSVG(s.Categories)
		if err := os.WriteFile(flagChartSVG, []byte(svg), 0o644); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		fmt.Printf("  Wrote %s\n", flagChartSVG)
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("ALLOCATION CHART"))
	fmt.Println()

	segs := make([]struct {
		Percentage float64
		Color      string
	}, len(slices))
	for i, sl := range slices {
		segs[i].Percentage = sl.Percentage
		segs[i].Color = sl.Color
	}
	fmt.Printf("  %s\n\n", cli.RenderSliceBar(segs, 48))

	sym := cfg.General.CurrencySymbol
	for _, sl := range slices {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(sl.Color)).Render("■")
		fmt.Printf("  %s %-20s %8s %12s\n", swatch, sl.Name,
			cli.FormatPercent(sl.Percentage),
			cli.FormatAmount(sym, s.Income*sl.Percentage/100))
	}
	fmt.Println()

	return nil
}

// renderSVG draws the pie as one SVG wedge per slice plus a legend
// column to the right.
func renderSVG(categories []model.Category) string {
	const (
		cx, cy, r = 150.0, 150.0, 120.0
		width     = 480
		height    = 300
	)

	arcs := chart.ArcSlices(categories, cx, cy, r)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	for _, a := range arcs {
		fmt.Fprintf(&b, `  <path d="%s" fill="%s" stroke="#100F0F" stroke-width="1"/>`+"\n", a.Path, a.Color)
	}
	for i, a := range arcs {
		y := 40 + i*24
		fmt.Fprintf(&b, `  <rect x="300" y="%d" width="14" height="14" fill="%s"/>`+"\n", y, a.Color)
		fmt.Fprintf(&b, `  <text x="322" y="%d" font-family="sans-serif" font-size="13">%s (%s)</text>`+"\n",
			y+12, svgEscape(a.Name), cli.FormatPercent(a.Percentage))
	}
	b.WriteString("</svg>\n")
	return b.String()
}

func svgEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
