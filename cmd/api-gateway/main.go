package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/CarConnect/CarConnect/internal/common/discovery"
	"github.com/CarConnect/CarConnect/internal/common/logger"
	"github.com/CarConnect/CarConnect/internal/common/middleware"
	"github.com/CarConnect/CarConnect/internal/gateway"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var (
	listenAddr  = flag.String("listen", ":8080", "HTTP listen address")
	backendAddr = flag.String("backend", "localhost:50051", "carconnect-service gRPC address")
	consulHost  = flag.String("consul-host", "", "resolve backend via Consul instead of -backend")
	consulPort  = flag.Int("consul-port", 8500, "Consul port")
	backendName = flag.String("backend-name", "carconnect-service", "backend service name in Consul")
	logLevel    = flag.String("log-level", "info", "log level")
	rateQPS     = flag.Int64("rate-qps", 200, "token bucket refill rate per second")
	rateBurst   = flag.Int64("rate-burst", 400, "token bucket capacity")
)

func main() {
	flag.Parse()

	log, err := logger.NewLogger(*logLevel, "text", "stdout", "")
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 后端地址：默认直连，给了 -consul-host 则走 Consul 解析
	target := *backendAddr
	if *consulHost != "" {
		consulClient, err := discovery.NewConsulClient(*consulHost, *consulPort)
		if err != nil {
			log.Fatalf("failed to connect to Consul: %v", err)
		}
		discovery.NewConsulResolver(consulClient, *backendName)
		target = fmt.Sprintf("consul:///%s", *backendName)
	}

	// 懒连接，调用时按需建链
	conn, err := grpc.Dial(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatalf("failed to dial backend %s: %v", target, err)
	}
	defer conn.Close()

	gw := gateway.New(conn, log, gateway.Options{
		Limiter: middleware.NewTokenBucket(*rateBurst, *rateQPS),
		Breaker: middleware.NewCircuitBreaker("carconnect-backend", 5, 10*time.Second),
		Timeout: 5 * time.Second,
	})

	mux := http.NewServeMux()
	gw.Routes(mux)

	srv := &http.Server{
		Addr:              *listenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Infof("api-gateway listening on %s, backend %s", *listenAddr, target)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("api-gateway exited with error: %v", err)
	}
}
