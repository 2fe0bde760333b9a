package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/vatsalraicha/portfolio/config"
	"github.com/vatsalraicha/portfolio/internal/contact"
	"github.com/vatsalraicha/portfolio/internal/content"
	"github.com/vatsalraicha/portfolio/internal/emailjs"
	"github.com/vatsalraicha/portfolio/internal/server"
	"github.com/vatsalraicha/portfolio/internal/telemetry"
	"github.com/vatsalraicha/portfolio/internal/visits"
)

const serviceName = "portfolio"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.App.Version, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	mailer, err := emailjs.New(emailjs.Config{
		PublicKey:  cfg.EmailJS.PublicKey,
		PrivateKey: cfg.EmailJS.PrivateKey,
		BaseURL:    cfg.EmailJS.APIURL,
		Timeout:    cfg.EmailJS.Timeout,
	})
	if err != nil {
		log.Fatalf("Failed to create EmailJS client: %v", err)
	}

	controller, err := contact.NewController(mailer, cfg.EmailJS.ServiceID, cfg.EmailJS.TemplateID)
	if err != nil {
		log.Fatalf("Failed to create contact controller: %v", err)
	}

	var (
		store     *visits.Store
		scheduler *visits.Scheduler
	)
	if cfg.Visits.DBPath != "" {
		store, err = visits.Open(ctx, cfg.Visits.DBPath, cfg.Visits.Salt)
		if err != nil {
			log.Fatalf("Failed to open visits database: %v", err)
		}
		scheduler, err = visits.NewScheduler(store, cfg.Visits.PurgeSchedule, cfg.Visits.Retention)
		if err != nil {
			log.Fatalf("Failed to schedule visit purge: %v", err)
		}
		scheduler.PurgeNow()
		scheduler.Start()
		log.Println("Privacy: visitor tracking enabled with hashed IP addresses")
	}

	router := server.BuildRouter(server.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Profile:        content.Default,
		Contact:        controller,
		Limiter:        contact.NewLimiter(cfg.Contact.RatePerMinute, cfg.Contact.RateBurst),
		Visits:         store,
		ImagesDir:      cfg.Assets.ImagesDir,
		StaticDir:      cfg.Assets.StaticDir,
		TrustedProxies: cfg.Server.TrustedProxies,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Portfolio listening on :%s (%s)", cfg.Server.Port, cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if scheduler != nil {
		scheduler.Stop()
	}
	if store != nil {
		if err := store.Close(); err != nil {
			log.Printf("Failed to close visits database: %v", err)
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("Failed to flush traces: %v", err)
	}
	log.Println("Server exited")
}
