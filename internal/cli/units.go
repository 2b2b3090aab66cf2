package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gebn/nibble/internal/quantity"
)

// UnitInfo is one unit symbol and its scale in bits or nanoseconds.
type UnitInfo struct {
	Symbol string `json:"symbol"`
	Scale  string `json:"scale"`
}

// CategoryInfo describes an information category.
type CategoryInfo struct {
	Symbol      string   `json:"symbol"`
	Description string   `json:"description"`
	Units       []string `json:"units"`
}

// UnitsResult is the output of the units command. Sections not requested
// are omitted.
type UnitsResult struct {
	Information []UnitInfo     `json:"information,omitempty"`
	Categories  []CategoryInfo `json:"categories,omitempty"`
	Duration    []UnitInfo     `json:"duration,omitempty"`
}

var unitSections = []string{"information", "categories", "duration"}

// NewUnitsCommand creates the units command.
func NewUnitsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "units [information|categories|duration]",
		Short: "List recognised units",
		Long: `List the unit symbols and categories accepted in expressions and format
specs. Information scales are in bits, duration scales in nanoseconds.

Examples:
  nibble units
  nibble units categories
  nibble units duration --format json`,
		Args:          maxArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) == 1 {
				section = args[0]
			}
			return runUnits(rootOpts, section, cmd)
		},
	}
}

func runUnits(opts *RootOptions, section string, cmd *cobra.Command) error {
	if section != "" && !containsString(unitSections, section) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("unknown section %q: must be one of %v", section, unitSections))
	}
	want := func(s string) bool { return section == "" || section == s }

	var result UnitsResult
	if want("information") {
		result.Information = unitInfos(quantity.InformationUnits())
	}
	if want("categories") {
		for _, c := range quantity.InformationCategories() {
			result.Categories = append(result.Categories, CategoryInfo{
				Symbol:      c.Symbol,
				Description: c.Description,
				Units:       c.Units,
			})
		}
	}
	if want("duration") {
		result.Duration = unitInfos(quantity.DurationUnits())
	}

	f := opts.formatter(cmd, "")
	if opts.Format == "json" {
		return f.Success(result)
	}
	return f.Success(strings.TrimSuffix(unitsText(result), "\n"))
}

func unitInfos(units []quantity.Unit) []UnitInfo {
	out := make([]UnitInfo, len(units))
	for i, u := range units {
		out[i] = UnitInfo{Symbol: u.Symbol, Scale: u.Scale.String()}
	}
	return out
}

func unitsText(r UnitsResult) string {
	var b strings.Builder
	section := func(title string) {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(title + "\n")
	}

	if len(r.Information) > 0 {
		section("Information units (bits):")
		for _, u := range r.Information {
			fmt.Fprintf(&b, "  %-14s %s\n", u.Symbol, u.Scale)
		}
	}
	if len(r.Categories) > 0 {
		section("Categories:")
		for _, c := range r.Categories {
			fmt.Fprintf(&b, "  %-4s %-14s %s\n", c.Symbol, c.Description, strings.Join(c.Units, " "))
		}
	}
	if len(r.Duration) > 0 {
		section("Duration units (nanoseconds):")
		for _, u := range r.Duration {
			fmt.Fprintf(&b, "  %-14s %s\n", u.Symbol, u.Scale)
		}
	}
	return b.String()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
