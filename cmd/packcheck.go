package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minhokang/baeum/internal/contentpack"
)

var packCheckCmd = &cobra.Command{
	Use:   "packcheck <pack.json>",
	Short: "Validate a content pack",
	Long:  "Check a content pack's structure and every card's answer spec, reporting all authoring errors at once.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pack, err := loadPack(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d categories, %d cards, all valid\n",
			pack.Name, pack.Version, len(pack.Categories), len(pack.Cards()))
		return nil
	},
}

// loadPack reads and fully validates a pack manifest from disk.
func loadPack(path string) (*contentpack.Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pack: %w", err)
	}
	pack, err := contentpack.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", path, err)
	}
	return pack, nil
}
