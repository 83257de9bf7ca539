package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/uniffi-php/fixturegen/bindgen"
	"github.com/uniffi-php/fixturegen/logutil"
	"github.com/uniffi-php/fixturegen/platform"
	"github.com/uniffi-php/fixturegen/workspace"
)

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Regenerate the PHP bindings for the uniffi test fixtures",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			slog.SetDefault(logutil.NewLogger(os.Stderr))
		},
	}

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		NewGenerateCmd(),
		NewEnvCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Reset out/ and run uniffi-bindgen-php against the fixtures library",
		Args:  cobra.NoArgs,
		RunE:  generateHandler,
	}

	cmd.Flags().String("root", "", "Project root (default: FIXTUREGEN_ROOT, then the executable's directory)")
	cmd.Flags().String("platform", "", "Override platform detection (darwin, linux or windows)")
	cmd.Flags().Bool("skip-checks", false, "Skip the build-artifact preflight checks")

	return cmd
}

func generateHandler(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	ws, err := workspace.Resolve(root)
	if err != nil {
		return err
	}

	var plat platform.Platform
	if tag, _ := cmd.Flags().GetString("platform"); tag != "" {
		plat, err = platform.Parse(tag)
	} else {
		plat, err = platform.Detect()
	}
	if err != nil {
		return err
	}

	slog.Debug("resolved workspace", "root", ws.Root, "platform", plat)

	runner := bindgen.NewRunner(ws, plat)
	runner.SkipChecks, _ = cmd.Flags().GetBool("skip-checks")
	return runner.Generate(cmd.Context())
}
