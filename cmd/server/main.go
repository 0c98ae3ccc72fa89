package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"slotbook-api/internal/auth"
	"slotbook-api/internal/config"
	gweb "slotbook-api/internal/grpcweb"
	"slotbook-api/internal/handler"
	"slotbook-api/internal/middleware"
	"slotbook-api/internal/schedpb"
	"slotbook-api/internal/store/postgres"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := newLogger(cfg.LogLevel)

	// database
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db")
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("db ping")
	}
	log.Info().Msg("connected to postgres")

	// run migrations
	if migration, err := os.ReadFile("db/migrations/001_init.sql"); err != nil {
		log.Warn().Err(err).Msg("migration file not found, skipping")
	} else if _, err := pool.Exec(context.Background(), string(migration)); err != nil {
		log.Warn().Err(err).Msg("migration")
	} else {
		log.Info().Msg("migration applied")
	}

	st := postgres.New(pool, log)
	sessions := auth.NewSessions(st)
	h := handler.New(st, sessions)

	// grpc server
	srv := grpc.NewServer(
		grpc.ForceServerCodec(schedpb.Codec{}),
		grpc.ChainUnaryInterceptor(middleware.Auth(sessions)),
	)
	schedpb.RegisterAccountServiceServer(srv, h)
	schedpb.RegisterSessionServiceServer(srv, h)
	schedpb.RegisterEventServiceServer(srv, h)
	schedpb.RegisterScheduleServiceServer(srv, h)
	schedpb.RegisterAppointmentServiceServer(srv, h)
	grpc_health_v1.RegisterHealthServer(srv, health.NewServer())

	// start grpc on TCP
	lis, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
	go func() {
		log.Info().Str("port", cfg.Port).Msg("grpc listening")
		if err := srv.Serve(lis); err != nil {
			log.Error().Err(err).Msg("grpc serve")
		}
	}()

	// grpc-web bridge -> forwards browser requests to grpc on localhost
	bridge, err := gweb.New("localhost:"+cfg.Port, log)
	if err != nil {
		log.Fatal().Err(err).Msg("bridge")
	}
	defer bridge.Close()

	httpSrv := &http.Server{
		Addr:    ":" + cfg.WebPort,
		Handler: bridge.Handler(),
	}
	go func() {
		log.Info().Str("port", cfg.WebPort).Msg("grpc-web listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http serve")
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	log.Info().Msg("shutting down")
	srv.GracefulStop()
	httpSrv.Close()
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(lvl)
}
