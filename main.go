package main

import (
	"context"
	"errors"
	"os"

	"github.com/uniffi-php/fixturegen/bindgen"
	"github.com/uniffi-php/fixturegen/cmd"
)

func main() {
	if err := cmd.NewCLI().ExecuteContext(context.Background()); err != nil {
		// Mirror the binding generator's own exit code when it ran and failed.
		var te *bindgen.ToolError
		if errors.As(err, &te) && te.ExitCode > 0 {
			os.Exit(te.ExitCode)
		}
		os.Exit(1)
	}
}
