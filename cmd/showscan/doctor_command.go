package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"showscan/internal/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check availability of the external tools the scanner uses",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.ForConfig(cfg))
			rows := make([][]string, 0, len(statuses))
			missing := false
			for _, st := range statuses {
				state := "ok"
				if !st.Available {
					state = st.Detail
					if !st.Optional {
						missing = true
					}
				}
				rows = append(rows, []string{st.Name, st.Command, st.Description, state})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Command", "Purpose", "Status"},
				rows,
				nil,
			))
			if missing {
				return fmt.Errorf("required external tools are missing")
			}
			return nil
		},
	}
}
