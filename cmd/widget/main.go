package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/visalkrishnan/shopify-product-countdown-timer/config"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/widget"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/countdown"
)

type watchOptions struct {
	url         string
	shop        string
	product     string
	collections string
	store       string
	timeout     time.Duration
}

func watch(opts watchOptions) error {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	baseURL := opts.url
	if baseURL == "" {
		baseURL = "http://" + conf.Server.HTTP.String()
	}

	client := widget.NewClient(baseURL, opts.timeout, logger)
	sel, ok := client.Fetch(ctx, widget.Request{
		Shop:          opts.shop,
		ProductID:     opts.product,
		CollectionIDs: countdown.ParseCollectionIDs(opts.collections),
	})
	if !ok {
		fmt.Println("no active countdown")
		return nil
	}

	resolver := widget.NewResolver(widget.NewFileStore(opts.store), time.Now, logger)
	expiry, err := resolver.Resolve(sel)
	if err != nil {
		logger.Warn("Resolve expiry failed", zap.String("promotion_id", sel.ID), zap.Error(err))
		return nil
	}

	handle := widget.Start(ctx, expiry, widget.NewTerminalRenderer(os.Stdout, sel), widget.ClockOptions{
		Display: sel.Display,
		Urgency: sel.Urgency,
		Period:  time.Second,
	})
	<-handle.Done()
	return nil
}

func watchCommand() *cobra.Command {
	opts := watchOptions{}
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "render the countdown of a product page in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return watch(opts)
		},
	}

	cmd.Flags().StringVar(&opts.url, "url", "", "base url of the countdown server")
	cmd.Flags().StringVar(&opts.shop, "shop", "", "shop domain")
	cmd.Flags().StringVar(&opts.product, "product", "", "product id")
	cmd.Flags().StringVar(&opts.collections, "collections", "", "comma separated collection ids")
	cmd.Flags().StringVar(&opts.store, "store", "countdown_visitor.json", "file keeping evergreen expiries")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 5*time.Second, "request timeout")
	_ = cmd.MarkFlagRequired("shop")
	_ = cmd.MarkFlagRequired("product")
	return cmd
}

func main() {
	rootCmd := cobra.Command{
		Use: "widget",
	}
	rootCmd.AddCommand(
		watchCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}
