package commands

import "github.com/spf13/cobra"

func newVersionCommand(a *app, version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		// No cluster settings needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return a.setupOutput() },
		RunE: func(cmd *cobra.Command, _ []string) error {
			type versionInfo struct {
				Version string `json:"version" yaml:"version"`
				Commit  string `json:"commit" yaml:"commit"`
				Built   string `json:"built" yaml:"built"`
			}

			return render(cmd.OutOrStdout(), a.output, versionInfo{
				Version: version,
				Commit:  commit,
				Built:   date,
			}, []property{
				{"Version", version},
				{"Commit", commit},
				{"Built", date},
			})
		},
	}
}
