package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alantheprice/calcmenu/pkg/configuration"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "calcmenu",
	Short: "Numeric exercise menus for the console",
	Long: `Calcmenu offers small numeric exercises behind numbered console menus.
Pick an entry, type the numbers it asks for and read the result.

Available menus:
  basics   - grade averages, areas, temperature conversion, swapping
  applied  - arithmetic series, salary, driving time, seconds conversion
  funmath  - primes, Fibonacci, factorials and friends (loops until 0)
  modular  - single-entry demo

Running calcmenu without a subcommand opens the configured default menu.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runMenu(cmd, cfg, cfg.DefaultMenu)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.calcmenu/config.yaml)")
	rootCmd.PersistentFlags().String("log-file", "", "log file path (default is $HOME/.calcmenu/calcmenu.log)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "write log lines as JSON")
	rootCmd.PersistentFlags().String("echo", configuration.EchoAuto, "echo consumed input: auto, always or never")

	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("echo", rootCmd.PersistentFlags().Lookup("echo"))
}

func initConfig() {
	configuration.Prepare(viper.GetViper(), cfgFile)
}

func loadConfig() (*configuration.Config, error) {
	return configuration.Load(viper.GetViper())
}
