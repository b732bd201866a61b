package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// AddSearch binds --fuzzy and --content to the search config keys so the
// loaded config reflects them.
func AddSearch(cmd *cobra.Command) {
	cmd.Flags().BoolP("fuzzy", "f", false, "Use fuzzy matching instead of substring matching")
	cmd.Flags().BoolP("content", "c", false, "Also search note bodies when few titles match")
	viper.BindPFlag("search.fuzzy", cmd.Flags().Lookup("fuzzy"))
	viper.BindPFlag("search.content", cmd.Flags().Lookup("content"))
}

func AddTag(cmd *cobra.Command) {
	cmd.Flags().StringP("tag", "t", "", "Only include notes carrying this tag")
}

func HandleTag(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString("tag")
}
