package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	authpb "github.com/CarConnect/CarConnect/internal/api/proto/auth"
	bookingpb "github.com/CarConnect/CarConnect/internal/api/proto/booking"
	vehiclepb "github.com/CarConnect/CarConnect/internal/api/proto/vehicle"
	"github.com/CarConnect/CarConnect/internal/auth"
	"github.com/CarConnect/CarConnect/internal/booking"
	"github.com/CarConnect/CarConnect/internal/common/config"
	"github.com/CarConnect/CarConnect/internal/common/db"
	"github.com/CarConnect/CarConnect/internal/common/discovery"
	"github.com/CarConnect/CarConnect/internal/common/logger"
	"github.com/CarConnect/CarConnect/internal/common/server"
	"github.com/CarConnect/CarConnect/internal/common/tracing"
	"github.com/CarConnect/CarConnect/internal/notify"
	"github.com/CarConnect/CarConnect/internal/vehicle"
	"google.golang.org/grpc"
)

var (
	configPath  = flag.String("config", "configs/carconnect-service.json", "配置文件路径")
	consulKVKey = flag.String("consul-config", "", "从 Consul KV 加载配置（覆盖文件配置）")
)

func main() {
	flag.Parse()

	// 加载配置：文件打底，指定了 -consul-config 再用 Consul KV 覆盖
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if *consulKVKey != "" {
		consulClient, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port)
		if err != nil {
			panic(fmt.Sprintf("failed to connect to consul: %v", err))
		}
		cfg, err = config.LoadConfigFromConsulKV(consulClient, *consulKVKey)
		if err != nil {
			panic(fmt.Sprintf("failed to load config from consul kv: %v", err))
		}
	}

	// 初始化日志
	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.Path)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 初始化链路追踪
	tracer, closer, err := tracing.InitTracer(
		cfg.Server.Name,
		cfg.Jaeger.Endpoint,
		cfg.Jaeger.Sampler,
	)
	if err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}
	_ = tracer

	// 初始化数据库
	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&auth.User{},
		&vehicle.Vehicle{},
		&booking.BookingRequest{},
		&booking.UsageRecord{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// 会话存储（进程内，挑战-响应握手用）
	sessions := auth.NewSessionStore()

	// 通知总线 + WebSocket 推送入口（HTTP 监听交给服务模板一起管）
	hub := notify.NewHub(cfg.Notify.SendBuffer, time.Duration(cfg.Notify.WriteWaitMS)*time.Millisecond, log)
	mux := http.NewServeMux()
	mux.HandleFunc(cfg.Notify.Path, notify.Handler(hub, log))

	// 启动统一的服务模板（gRPC + 伴生 HTTP）
	if err := server.RunGRPCServer(cfg, log, func(s *grpc.Server) error {
		authpb.RegisterAuthServiceServer(s, auth.NewGRPCServer(gormDB, sessions, log))
		vehiclepb.RegisterVehicleServiceServer(s, vehicle.NewGRPCServer(gormDB, hub, log))
		bookingpb.RegisterBookingServiceServer(s, booking.NewGRPCServer(gormDB, hub, log))
		return nil
	}, server.WithHTTPHandler(mux)); err != nil {
		log.Fatalf("carconnect-service exited with error: %v", err)
	}
}
