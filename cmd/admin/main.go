package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"gopkg.in/yaml.v3"

	"github.com/visalkrishnan/shopify-product-countdown-timer/config"
	"github.com/visalkrishnan/shopify-product-countdown-timer/countdownrpc"
	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/otellib"
)

type rootOptions struct {
	addr    string
	shop    string
	timeout time.Duration
}

func (o rootOptions) dial() (*grpc.ClientConn, countdownrpc.CountdownServiceClient, error) {
	addr := o.addr
	if addr == "" {
		addr = config.Load().Server.GRPC.String()
	}

	conn, err := grpc.Dial(addr,
		grpc.WithInsecure(),
		grpc.WithChainUnaryInterceptor(otellib.UnaryClientInterceptor(trace.NewNoopTracerProvider())),
	)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "dial %s", addr)
	}
	return conn, countdownrpc.NewCountdownServiceClient(conn), nil
}

func (o rootOptions) run(fn func(ctx context.Context, client countdownrpc.CountdownServiceClient) error) error {
	conn, client, err := o.dial()
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	return fn(ctx, client)
}

func writeYAML(out io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// readInputs reads every yaml document of the file, one promotion per document
func readInputs(r io.Reader) ([]model.PromotionInput, error) {
	dec := yaml.NewDecoder(r)

	var inputs []model.PromotionInput
	for {
		var input model.PromotionInput
		err := dec.Decode(&input)
		if err == io.EOF {
			return inputs, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "decode promotion")
		}
		inputs = append(inputs, input)
	}
}

func listCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list promotions of the shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(ctx context.Context, client countdownrpc.CountdownServiceClient) error {
				resp, err := client.ListPromotions(ctx, &countdownrpc.ListPromotionsRequest{Shop: opts.shop})
				if err != nil {
					return err
				}
				return writeYAML(cmd.OutOrStdout(), resp.Promotions)
			})
		},
	}
}

func applyCommand(opts *rootOptions) *cobra.Command {
	var filename string
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "create or update promotions from a yaml file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(filename)
			if err != nil {
				return err
			}
			defer func() { _ = file.Close() }()

			inputs, err := readInputs(file)
			if err != nil {
				return err
			}

			return opts.run(func(ctx context.Context, client countdownrpc.CountdownServiceClient) error {
				for _, input := range inputs {
					resp, err := client.UpsertPromotion(ctx, &countdownrpc.UpsertPromotionRequest{
						Shop:      opts.shop,
						Promotion: input,
					})
					if err != nil {
						return errors.Wrapf(err, "apply promotion %q", input.Title)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "applied %s %s\n", resp.Promotion.ID, resp.Promotion.Title)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&filename, "file", "f", "", "yaml file of promotions")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func deleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "delete a promotion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(func(ctx context.Context, client countdownrpc.CountdownServiceClient) error {
				_, err := client.DeletePromotion(ctx, &countdownrpc.DeletePromotionRequest{
					Shop: opts.shop,
					ID:   args[0],
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func main() {
	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use: "admin",
	}
	rootCmd.PersistentFlags().StringVar(&opts.addr, "addr", "", "grpc address of the countdown server")
	rootCmd.PersistentFlags().StringVar(&opts.shop, "shop", "", "shop domain")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	_ = rootCmd.MarkPersistentFlagRequired("shop")

	rootCmd.AddCommand(
		listCommand(opts),
		applyCommand(opts),
		deleteCommand(opts),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
