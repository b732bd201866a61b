package flags

import (
	"fmt"

	"github.com/spf13/cobra"
)

func AddLimit(cmd *cobra.Command, def int) {
	cmd.Flags().IntP("limit", "n", def, "Maximum number of results")
}

// HandleLimit returns the --limit value. Zero means no limit.
func HandleLimit(cmd *cobra.Command) (int, error) {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return 0, fmt.Errorf("error retrieving limit flag: %w", err)
	}
	if limit < 0 {
		return 0, fmt.Errorf("limit must not be negative, got %d", limit)
	}
	return limit, nil
}
