// Command exampleserver wires the structured span-logging core
// (framework/tracing, framework/spanlogger) into a small Gin HTTP
// service, end to end: every request opens a span carrying
// request-scoped fields, the logging layer projects a chosen subset of
// those fields into each event's "extract" object, and the /panic route
// demonstrates that a logging call re-entering OnEvent while another
// one is still formatting does not deadlock.
//
// Run:
//
//	go run ./cmd/exampleserver
//
// Then:
//
//	curl http://localhost:8080/orders/42
//	curl http://localhost:8080/panic
package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/go-spanlog/spanlog/framework/config"
	commonlogger "github.com/go-spanlog/spanlog/framework/logger"
	middleware "github.com/go-spanlog/spanlog/framework/middleware/gin"
	"github.com/go-spanlog/spanlog/framework/spanlogger"
	"github.com/go-spanlog/spanlog/framework/trace"
	"github.com/go-spanlog/spanlog/framework/tracing"
)

// requestSpan and orderLookupEvent are call-site statics: their pointer
// identity is what framework/callsite keys a Record off of, so each must
// be constructed exactly once per call site, never per request.
var (
	requestSpan = &tracing.Metadata{
		IsSpan: true,
		Name:   "http_request",
		Fields: []tracing.FieldDescriptor{{Name: "method"}, {Name: "route"}, {Name: "request_id"}},
	}
	orderLookupEvent = &tracing.Metadata{
		Level:  tracing.LevelInfo,
		Target: "exampleserver/orders",
		Fields: []tracing.FieldDescriptor{{Name: "message"}, {Name: "order_id"}},
	}
	panicEvent = &tracing.Metadata{
		Level:  tracing.LevelWarn,
		Target: "exampleserver",
		Fields: []tracing.FieldDescriptor{{Name: "message"}, {Name: "detail"}},
	}
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewConfig(
		config.WithDefaults(map[string]any{
			"extract_fields": []string{"request_id"},
		}),
	)
	if err != nil {
		fmt.Printf("failed to load configuration: %v\n", err)
		return
	}

	tracerProvider, err := trace.InitTracerProvider(ctx, "exampleserver", nil, trace.ExporterStdout)
	if err != nil {
		fmt.Printf("failed to initialize tracer provider: %v\n", err)
		return
	}
	defer func() {
		if err := tracerProvider.Shutdown(ctx); err != nil {
			fmt.Printf("failed to shut down tracer provider: %v\n", err)
		}
	}()

	droppedWrites := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "exampleserver_spanlog_dropped_writes_total",
		Help: "Event lines dropped because the destination writer returned an error.",
	})
	prometheus.MustRegister(droppedWrites)

	spanLoggerCfg := config.LoadSpanLoggerConfig(cfg,
		config.WithSpanLoggerDroppedWrites(droppedWrites),
		config.WithSpanLoggerLogger(commonlogger.NewDefaultLogger()),
	)
	layer := spanlogger.NewLayer(spanLoggerCfg)
	registry := tracing.NewRegistry(layer)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.ConfigureDefaultMiddlewares(middleware.DefaultMiddlewareConfig{
		Logger:         commonlogger.NewDefaultLogger(),
		TracerProvider: tracerProvider,
	})...)
	router.Use(spanPerRequest(registry))

	router.GET("/orders/:id", func(c *gin.Context) {
		orderID := c.Param("id")
		registry.Event(c.Request.Context(), orderLookupEvent, func(v tracing.Visitor) {
			v.VisitField("message", 0, tracing.StringValue("order looked up"))
			v.VisitField("order_id", 1, tracing.StringValue(orderID))
		})
		c.JSON(http.StatusOK, gin.H{"order_id": orderID})
	})

	// /panic exercises the re-entrancy path: before panicking, the
	// handler logs an event through the registry whose field callback
	// makes a second, nested Event call on the same goroutine before the
	// first has finished formatting — simulating a Debug/Error
	// implementation that logs as a side effect. Without the fix that
	// lets OnEvent finish formatting before touching the writer lock,
	// this would deadlock. The panic itself is then recovered by the
	// Recovery middleware.
	router.GET("/panic", func(c *gin.Context) {
		registry.Event(c.Request.Context(), panicEvent, func(v tracing.Visitor) {
			v.VisitField("message", 0, tracing.StringValue("about to panic"))
			registry.Event(c.Request.Context(), panicEvent, func(v2 tracing.Visitor) {
				v2.VisitField("message", 0, tracing.StringValue("nested log during formatting"))
			})
			v.VisitField("detail", 1, tracing.StringValue("demonstration"))
		})
		panic("intentional panic for the /panic demonstration route")
	})

	if err := router.Run(":8080"); err != nil {
		fmt.Printf("failed to run server: %v\n", err)
	}
}

// spanPerRequest opens one http_request span per incoming request,
// carrying the method, route, and request ID as span fields — the
// fields the "extract" projection and the per-span JSON object in every
// event line during that request will draw from.
func spanPerRequest(registry *tracing.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, _ := middleware.GetRequestIDFromContext(c.Request.Context())
		ctx, _ := registry.NewSpan(c.Request.Context(), requestSpan, func(v tracing.Visitor) {
			v.VisitField("method", 0, tracing.StringValue(c.Request.Method))
			v.VisitField("route", 1, tracing.StringValue(c.FullPath()))
			v.VisitField("request_id", 2, tracing.StringValue(requestID))
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
