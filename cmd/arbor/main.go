package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "arbor",
		Short: "arbor grows classification decision trees from tabular data",
		Long:  `A tool to grow decision trees from CSV data with entropy-minimizing splits and use them to classify new samples`,
		Run: func(cmd *cobra.Command, args []string) {
			config.thresholdSet = cmd.Flags().Changed("threshold")
			config.run()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress to STDERR")
	rootCmd.Flags().StringVarP(&(config.data), "data", "d", "", "path to a CSV file with training rows, first row naming the columns (defaults to STDIN)")
	rootCmd.Flags().StringVarP(&(config.samples), "samples", "s", "", "path to a headerless CSV file with rows to classify after training, columns matching the training columns by index")
	rootCmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to which the grown tree will be written in JSON format")
	rootCmd.Flags().StringVar(&(config.configFile), "config", "", "path to a TOML file with discretization and growing defaults")
	rootCmd.Flags().StringVar(&(config.selection), "selection", "", "row/column sub-rectangle to train on, as rX-Y,cX-Y with either bound omittable")
	rootCmd.Flags().IntVarP(&(config.goal), "goal", "g", -1, "zero-based index of the column to predict (defaults to the last selected column)")
	rootCmd.Flags().IntVarP(&(config.threshold), "threshold", "t", 3, "stopping threshold: sample sets of this size or smaller become leaves")
	rootCmd.Flags().IntSliceVar(&(config.exclude), "exclude", nil, "comma-separated column indices to ignore during split selection")
	rootCmd.Flags().BoolVar(&(config.showConfig), "show-config", false, "print the effective configuration before training")
	rootCmd.Flags().BoolVar(&(config.printTable), "print-table", false, "print the ingested training table")
	rootCmd.Flags().BoolVar(&(config.printTree), "print-tree", false, "print the grown tree")
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}
