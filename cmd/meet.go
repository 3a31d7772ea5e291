package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mholweger/dualmeet/infra/logger"
)

var meetCmd = &cobra.Command{
	Use:   "meet",
	Short: "Project a dual meet against the configured opponent",
	RunE:  runMeet,
}

func init() {
	rootCmd.AddCommand(meetCmd)
}

func runMeet(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("meet-command").Errorf("service close: %v", err)
		}
	}()
	_, err = svc.RunMeet(ctx)
	return err
}
