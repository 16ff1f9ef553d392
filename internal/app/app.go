package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akhhatar/e-voting-project/internal/config"
	httpx "github.com/akhhatar/e-voting-project/internal/http"
	"github.com/akhhatar/e-voting-project/internal/http/handlers"
	"github.com/akhhatar/e-voting-project/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}

	citizenH := handlers.NewCitizenHandlers(c.VoterSvc, c.VotingSvc)
	adminH := handlers.NewAdminHandlers(c.AdminSvc)
	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.SessionRepo)
	casbinMW := middleware.NewCasbinMW(c.PolicySvc)

	r := httpx.BuildRouter(citizenH, adminH, jwtMW, casbinMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
