package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print version information including:
• Application version
• Go runtime version
• Git commit hash (if available)

The --version and -v flags on the root command print the same output.`,
	Run: func(cmd *cobra.Command, args []string) {
		printVersionInfo(cmd.OutOrStdout())
	},
}

// These variables are set at build time using -ldflags
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = ""
	goVersion = runtime.Version()
)

func init() {
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().BoolP("version", "v", false, "Print version information and exit")

	originalPreRun := rootCmd.PersistentPreRun
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			printVersionInfo(cmd.OutOrStdout())
			os.Exit(0)
		}
		if originalPreRun != nil {
			originalPreRun(cmd, args)
		}
	}
}

// printVersionInfo prints version, build and platform details
func printVersionInfo(w io.Writer) {
	info, hasInfo := debug.ReadBuildInfo()

	fmt.Fprintf(w, "calcmenu version %s\n", version)
	if buildDate != "unknown" {
		fmt.Fprintf(w, "Build date: %s\n", buildDate)
	}
	commit := gitCommit
	if commit == "" && hasInfo {
		commit = vcsCommit(info)
	}
	if commit != "" {
		fmt.Fprintf(w, "Git commit: %s\n", commit)
	}
	fmt.Fprintf(w, "Go version: %s\n", goVersion)

	if hasInfo {
		fmt.Fprintf(w, "Module: %s\n", info.Main.Path)
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			fmt.Fprintf(w, "Module version: %s\n", info.Main.Version)
		}
	}
	fmt.Fprintf(w, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// vcsCommit returns the short revision stamped by the go tool, marked when
// the tree was dirty at build time.
func vcsCommit(info *debug.BuildInfo) string {
	var revision string
	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		return ""
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if modified {
		revision += "-dirty"
	}
	return revision
}
