// Licensed under the MIT License. See LICENSE file in the project root for details.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kianostad/strncmp/internal/compare"
)

func newTiersCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List the comparator tiers runnable on this CPU",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTiers(a)
		},
	}
}

func printTiers(a *app) error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIER\tWIDTH\tNATIVE\tACTIVE")
	for _, tier := range compare.Tiers() {
		active := ""
		if tier == compare.Active() {
			active = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%t\t%s\n", tier, tier.Width(), tier.Native(), active)
	}
	return w.Flush()
}
