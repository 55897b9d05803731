package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout-gateway/application"
	"checkout-gateway/presenters"
	"checkout-gateway/utils/configs"
	"checkout-gateway/utils/gpooling"
	logger2 "checkout-gateway/utils/logger"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	config, err := configs.LoadConfig()
	if err != nil {
		panic(err)
	}
	lg, _ := logger2.NewLogger(config.ENV)

	pool_go_routine, _ := gpooling.NewPooling(config.MaxPoolSize)

	app := application.NewGatewayApplication(config, lg, pool_go_routine)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					lg.With(zap.Field{
						Key:       "context",
						Interface: p,
						Type:      zapcore.ReflectType,
					}).Error("panic recovered")
					http.Error(w, "internal error", http.StatusInternalServerError)
				}
			}()

			started := time.Now()
			next.ServeHTTP(w, req)
			lg.With(
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Duration("duration", time.Since(started)),
			).Info("request")
		})
	})

	presenters.NewAPI(app).AppendRoutes(r)

	srv := &http.Server{
		Addr:    ":" + config.Port,
		Handler: r,
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	pool_go_routine.Submit(func() {
		<-sig
		lg.Warn("shutting down HTTP server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			lg.Error(err.Error())
		}
		pool_go_routine.Release()
	})

	lg.With(zap.Field{
		Key:    "port",
		Type:   zapcore.StringType,
		String: config.Port,
	}).Info("starting HTTP server...")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		panic(err)
	}
}
