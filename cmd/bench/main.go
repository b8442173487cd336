package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/visalkrishnan/shopify-product-countdown-timer/config"
	"github.com/visalkrishnan/shopify-product-countdown-timer/countdownrpc"
	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/cacheclient"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/leasecache"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/memtable"
	"github.com/visalkrishnan/shopify-product-countdown-timer/repository"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/admin"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/api"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/countdown"
)

const benchShop = "bench.myshopify.com"

type benchDeps struct {
	server      *api.Server
	admin       admin.IService
	viewCounter *countdown.ViewCountWorkers
}

func newBenchDeps(conf config.Config) *benchDeps {
	logger := zap.NewNop()

	db := conf.MySQL.MustConnect(logger)
	provider := repository.NewProvider(db)
	promotionRepo := repository.NewPromotion()
	storeRepo := repository.NewStore()

	client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
	cache := leasecache.New(memtable.New(8*1024*1024, time.Second), client,
		leasecache.WithWaitLeaseDurations(conf.Cache.WaitLeaseDurations()),
		leasecache.WithTTL(conf.Cache.RemoteTTLSeconds),
	)

	viewCounter := countdown.NewViewCountWorkers(provider, promotionRepo, logger, countdown.ViewCountOptions{
		QueueSize:     conf.ViewCount.QueueSize,
		NumWorkers:    conf.ViewCount.NumWorkers,
		FlushInterval: conf.ViewCount.FlushInterval(),
	})

	countdownService := countdown.NewService(provider, promotionRepo, storeRepo, cache, viewCounter)
	adminService := admin.NewService(provider, promotionRepo, storeRepo, cache)

	return &benchDeps{
		server:      api.NewServer(countdownService, adminService),
		admin:       adminService,
		viewCounter: viewCounter,
	}
}

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchSelectCommand(),
		seedDataCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func benchSelect(numThreads int, numElements int) {
	conf := config.Load()
	fmt.Println("NUM CONNS:", conf.Memcache.Conns())
	fmt.Println("MEMCACHE ADDR:", conf.Memcache.Addr())

	deps := newBenchDeps(conf)
	defer deps.viewCounter.Close()

	durations := make([][]time.Duration, numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < numElements; i++ {
				start := time.Now()
				resp, err := deps.server.Select(context.Background(), &countdownrpc.SelectRequest{
					Shop:          benchShop,
					ProductID:     fmt.Sprintf("%d", 1000+i%20),
					CollectionIDs: []string{"77"},
				})
				if err != nil {
					fmt.Println(resp, err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	printPercentiles(durations)
}

func printPercentiles(durations [][]time.Duration) {
	var history []time.Duration

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	if len(history) == 0 {
		return
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	numHistory := len(history)
	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("P999:", history[numHistory*999/1000])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("HISTORY LEN:", numHistory)
	fmt.Println("AVG:", total/time.Duration(numHistory))
}

func benchSelectCommand() *cobra.Command {
	var numThreads int
	var numElements int
	cmd := &cobra.Command{
		Use:   "select",
		Short: "benchmark countdown selection with memcached",
		Run: func(cmd *cobra.Command, args []string) {
			benchSelect(numThreads, numElements)
		},
	}
	cmd.Flags().IntVar(&numThreads, "threads", 50, "number of concurrent callers")
	cmd.Flags().IntVar(&numElements, "requests", 2000, "requests per caller")
	return cmd
}

func seedDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "seed promotions of the bench shop",
		Run: func(cmd *cobra.Command, args []string) {
			conf := config.Load()
			deps := newBenchDeps(conf)
			defer deps.viewCounter.Close()

			ctx := context.Background()
			err := deps.admin.InstallStore(ctx, benchShop, "bench-token")
			if err != nil {
				panic(err)
			}

			now := time.Now().UTC()
			inputs := []model.PromotionInput{
				{
					Title:       "Storewide",
					StartDate:   now.Add(-time.Hour).Format(time.RFC3339),
					EndDate:     now.Add(30 * 24 * time.Hour).Format(time.RFC3339),
					TargetScope: string(model.TargetScopeAll),
				},
				{
					Title:         "Collection Sale",
					StartDate:     now.Add(-time.Hour).Format(time.RFC3339),
					EndDate:       now.Add(7 * 24 * time.Hour).Format(time.RFC3339),
					TargetScope:   string(model.TargetScopeCollection),
					CollectionIDs: []string{"77"},
				},
			}
			for i := 0; i < 10; i++ {
				inputs = append(inputs, model.PromotionInput{
					Title:           fmt.Sprintf("Product %d", 1000+i),
					Mode:            string(model.TimerModeEvergreen),
					DurationMinutes: 30,
					StartDate:       now.Add(-time.Hour).Format(time.RFC3339),
					EndDate:         now.Add(24 * time.Hour).Format(time.RFC3339),
					TargetScope:     string(model.TargetScopeProduct),
					ProductIDs:      []string{fmt.Sprintf("%d", 1000+i)},
				})
			}

			for _, input := range inputs {
				_, err := deps.admin.UpsertPromotion(ctx, benchShop, input)
				if err != nil {
					panic(err)
				}
			}
			fmt.Println("SEEDED:", len(inputs))
		},
	}
}
