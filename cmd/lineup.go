package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mholweger/dualmeet/infra/logger"
)

var lineupCmd = &cobra.Command{
	Use:   "lineup",
	Short: "Build the best lineup for the home roster",
	RunE:  runLineup,
}

func init() {
	rootCmd.AddCommand(lineupCmd)
}

func runLineup(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("lineup-command").Errorf("service close: %v", err)
		}
	}()
	_, err = svc.RunSingle(ctx)
	return err
}
