// Package server wires the portfolio's HTTP surface onto gin.
package server

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/vatsalraicha/portfolio/internal/contact"
	"github.com/vatsalraicha/portfolio/internal/content"
	"github.com/vatsalraicha/portfolio/internal/visits"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Profile     content.Profile
	Contact     *contact.Controller
	// Limiter may be nil to accept every submission.
	Limiter *contact.Limiter
	// Visits may be nil when tracking is disabled.
	Visits    *visits.Store
	ImagesDir string
	StaticDir string
	// TrustedProxies may forward the client address in X-Forwarded-For.
	// When empty the socket address is the client.
	TrustedProxies []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		log.Printf("[warn] operation=trusted_proxies error=%v, trusting none", err)
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(gin.Recovery(), requestID())
	if dep.Visits != nil {
		r.Use(trackVisits(dep.Visits))
	}

	if dep.ImagesDir != "" {
		r.Static("/images", dep.ImagesDir)
	}
	if dep.StaticDir != "" {
		r.Static("/static", dep.StaticDir)
	}

	health := NewHealthHandler(dep.ServiceName, dep.Version, dep.Visits)
	health.RegisterRoutes(r)

	site := &siteHandler{
		profile: dep.Profile,
		contact: dep.Contact,
		limiter: dep.Limiter,
		visits:  dep.Visits,
	}
	site.RegisterRoutes(r)

	r.NoRoute(site.notFound)
	return r
}
