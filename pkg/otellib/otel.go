package otellib

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"

	"github.com/visalkrishnan/shopify-product-countdown-timer/config"
)

// InitOtel creates the tracer provider. Spans are exported to jaeger only when enabled,
// otherwise they are sampled and dropped in process.
func InitOtel(serviceName string, env string, conf config.JaegerConfig) (trace.TracerProvider, func()) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.DeploymentEnvironmentKey.String(env),
	)

	options := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
	}

	if conf.Enabled {
		exporter, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(conf.URL)))
		if err != nil {
			panic(err)
		}
		options = append(options,
			sdktrace.WithBatcher(exporter),
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(0.1))),
		)
	} else {
		options = append(options, sdktrace.WithSampler(sdktrace.NeverSample()))
	}

	tp := sdktrace.NewTracerProvider(options...)

	return tp, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := tp.Shutdown(ctx)
		if err != nil {
			fmt.Println("Shutdown tracer provider error:", err)
		}
	}
}

// UnaryServerInterceptor starts a span for every unary call
func UnaryServerInterceptor(tp trace.TracerProvider) grpc.UnaryServerInterceptor {
	return otelgrpc.UnaryServerInterceptor(otelgrpc.WithTracerProvider(tp))
}

// UnaryClientInterceptor propagates the span context to the server
func UnaryClientInterceptor(tp trace.TracerProvider) grpc.UnaryClientInterceptor {
	return otelgrpc.UnaryClientInterceptor(otelgrpc.WithTracerProvider(tp))
}
