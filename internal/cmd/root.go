// Package cmd implements the CLI commands for sqlpeek.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "sqlpeek",
	Short: "Predict the result-set column names of a SQL SELECT from its text",
	Long:  "sqlpeek infers the ordered column names a SELECT statement would produce, without connecting to a database, and can check the prediction against expectation suites or a live PostgreSQL server.",
	// Default to columns if no subcommand given but args are present
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.Version = version

	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(suiteCmd)
	rootCmd.AddCommand(verifyCmd)
}

// Execute runs the root command. Called from main().
func Execute() error {
	// Default to columns when first arg isn't a known command
	if len(os.Args) > 1 {
		firstArg := os.Args[1]
		knownCommands := map[string]bool{
			"columns": true, "suite": true, "verify": true,
			"help": true, "completion": true,
		}
		if !knownCommands[firstArg] && firstArg != "--version" && firstArg != "--help" && firstArg != "-h" && firstArg != "-v" {
			// Prepend "columns" to args
			os.Args = append([]string{os.Args[0], "columns"}, os.Args[1:]...)
		}
	}
	return rootCmd.Execute()
}

// Connection flags used by the verify command.
type connFlags struct {
	DSN      string
	Host     string
	Port     int
	DBName   string
	User     string
	Password string
}

// Output flags shared by columns, suite, and verify commands.
type outputFlags struct {
	Format string
	Output string
}

func addConnFlags(cmd *cobra.Command, f *connFlags) {
	cmd.Flags().StringVar(&f.DSN, "dsn", "", "PostgreSQL connection URI (postgres://...)")
	cmd.Flags().StringVarP(&f.Host, "host", "H", "", "Database host")
	cmd.Flags().IntVarP(&f.Port, "port", "p", 5432, "Database port")
	cmd.Flags().StringVarP(&f.DBName, "dbname", "d", "", "Database name")
	cmd.Flags().StringVarP(&f.User, "user", "U", "", "Database user")
	cmd.Flags().StringVarP(&f.Password, "password", "W", "", "Database password")
}

func addOutputFlags(cmd *cobra.Command, f *outputFlags) {
	cmd.Flags().StringVarP(&f.Format, "format", "f", "text", "Report format (text, json, markdown)")
	cmd.Flags().StringVarP(&f.Output, "output", "o", "", "Output file path (default: stdout)")
}
