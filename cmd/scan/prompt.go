package scan

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// promptForPaths opens a three-field form for the scan inputs, prefilled with
// whatever is already set from flags or history.
func promptForPaths(opts *scanOptions) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(inputLabels[0]).
				Placeholder("ex. /home/user/UnrealEngine").
				Value(&opts.projectRoot),
			huh.NewInput().
				Title(inputLabels[1]).
				Placeholder("ex. /home/user/UnrealEngine/Engine/Source/Runtime/Core/Public/Math.h").
				Value(&opts.entryPoint),
			huh.NewInput().
				Title(inputLabels[2]).
				Placeholder("ex. /home/user/UnrealEngine/rec_deps.txt").
				Value(&opts.outputFile),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("scan aborted")
		}
		return fmt.Errorf("prompt failed: %w", err)
	}

	return nil
}
