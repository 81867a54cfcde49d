package cli

import (
	"github.com/reikouwu/House-Liber-Arce/engine/infra/repo"
	"github.com/reikouwu/House-Liber-Arce/pkg/config"
	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the configured store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			return repo.Migrate(ctx, config.FromContext(ctx))
		},
	}
	addStoreFlags(cmd.Flags())
	return cmd
}
