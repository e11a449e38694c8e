package cmd

import (
	"github.com/jsphweid/keysound/constants"
	"github.com/spf13/cobra"
)

var (
	configPath string
	noBackup   bool
)

var rootCmd = &cobra.Command{
	Use:   "keysound",
	Short: "Edits keysound declarations in BMS charts",
	Long: `Edits keysound declarations in BMS charts: merges keysounds,
removes unused declarations and cleans up audio files nothing references.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return constants.LoadConfigFile(configPath)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().BoolVar(&noBackup, "no-backup", false, "do not copy the chart before editing it")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
