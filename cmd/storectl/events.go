package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"spi-eshop-be/pkg/events"
	pktNats "spi-eshop-be/pkg/nats"

	"github.com/spf13/cobra"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Inspect the store event stream",
}

var tailSubject string

var eventsTailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print store events as they are published",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.App.NatsURL == "" {
			return fmt.Errorf("NATS_URL is not set")
		}
		sub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
		if err != nil {
			return err
		}
		defer sub.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cc, err := sub.Subscribe(ctx, tailSubject, "", printEvent)
		if err != nil {
			return err
		}
		defer cc.Stop()

		okf("listening on %s (ctrl-c to stop)\n", tailSubject)
		<-ctx.Done()
		return nil
	},
}

func init() {
	eventsTailCmd.Flags().StringVarP(&tailSubject, "subject", "s", pktNats.SubjectPrefix+">", "subject filter")
	eventsCmd.AddCommand(eventsTailCmd)
	rootCmd.AddCommand(eventsCmd)
}

func printEvent(_ context.Context, event events.Event) error {
	data, err := json.Marshal(event.Payload())
	if err != nil {
		data = []byte("{}")
	}
	fmt.Printf("%s %s %s\n", dim(event.Timestamp().Format("15:04:05")), label(event.EventType()), data)
	return nil
}
