package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/visalkrishnan/shopify-product-countdown-timer/config"
	"github.com/visalkrishnan/shopify-product-countdown-timer/countdownrpc"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/cacheclient"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/grpclib"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/leasecache"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/memtable"
	"github.com/visalkrishnan/shopify-product-countdown-timer/pkg/otellib"
	"github.com/visalkrishnan/shopify-product-countdown-timer/repository"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/admin"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/api"
	"github.com/visalkrishnan/shopify-product-countdown-timer/service/countdown"
)

func payloadLogDecider(_ context.Context, fullMethodName string, _ interface{}) bool {
	return fullMethodName != "/"+countdownrpc.ServiceName+"/Select"
}

type dependencies struct {
	countdown countdown.IService
	admin     admin.IService
	closers   []func()
}

func (d *dependencies) close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func newDependencies(conf config.Config, logger *zap.Logger) *dependencies {
	db := conf.MySQL.MustConnect(logger)
	provider := repository.NewProvider(db)

	tracer := otel.GetTracerProvider().Tracer("server")
	promotionRepo := repository.NewPromotionWrapper(repository.NewPromotion(), tracer, "repo::")
	storeRepo := repository.NewStoreWrapper(repository.NewStore(), tracer, "repo::")

	memcacheClient := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
	localCache := memtable.New(
		conf.Cache.LocalSizeMB*1024*1024,
		time.Duration(conf.Cache.LocalTTLSeconds)*time.Second,
	)
	cache := leasecache.New(localCache, memcacheClient,
		leasecache.WithWaitLeaseDurations(conf.Cache.WaitLeaseDurations()),
		leasecache.WithFailedOnWaitFinished(conf.Cache.FailedOnWaitFinish),
		leasecache.WithTTL(conf.Cache.RemoteTTLSeconds),
		leasecache.WithLogger(logger),
	)

	viewCounter := countdown.NewViewCountWorkers(provider, promotionRepo, logger, countdown.ViewCountOptions{
		QueueSize:     conf.ViewCount.QueueSize,
		NumWorkers:    conf.ViewCount.NumWorkers,
		FlushInterval: conf.ViewCount.FlushInterval(),
	})

	countdownService := countdown.NewService(provider, promotionRepo, storeRepo, cache, viewCounter)
	adminService := admin.NewService(provider, promotionRepo, storeRepo, cache)

	return &dependencies{
		countdown: countdown.NewIServiceWrapper(countdownService, tracer, "countdown::"),
		admin:     admin.NewIServiceWrapper(adminService, tracer, "admin::"),
		closers: []func(){
			func() { _ = db.Close() },
			func() { _ = memcacheClient.Close() },
			viewCounter.Close,
		},
	}
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	tracerProvider, shutdown := otellib.InitOtel("countdown-server", conf.Log.Mode, conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	deps := newDependencies(conf, logger)
	defer deps.close()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(tracerProvider),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
			grpc_zap.PayloadUnaryServerInterceptor(logger, payloadLogDecider),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	countdownrpc.RegisterCountdownServiceServer(grpcServer, api.NewServer(deps.countdown, deps.admin))

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	startHTTPAndGRPCServers(conf, logger, grpcServer, api.NewHTTPHandler(deps.countdown, deps.admin))
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startHTTPAndGRPCServers(
	conf config.Config, logger *zap.Logger, grpcServer *grpc.Server, handler *api.HTTPHandler,
) {
	logger.Info("Listening",
		zap.String("grpc", conf.Server.GRPC.ListenString()),
		zap.String("http", conf.Server.HTTP.ListenString()),
	)

	mux := runtime.NewServeMux()
	err := handler.Register(mux)
	if err != nil {
		panic(err)
	}

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.Handle("/", otellib.SetTraceInfoHandler(logger, mux))

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           httpMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		logger.Info("Shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err = httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
