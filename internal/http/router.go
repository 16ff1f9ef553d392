package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/akhhatar/e-voting-project/internal/http/handlers"
	"github.com/akhhatar/e-voting-project/internal/http/middleware"
)

func BuildRouter(ch *handlers.CitizenHandlers, ah *handlers.AdminHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/register", ch.Register)
	auth.POST("/login", ch.Login)

	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.POST("/auth/logout", ch.Logout)
	v.GET("/vote/ballot", ch.Ballot)
	v.POST("/vote", ch.CastVote)

	// The admin login itself is public; everything behind it is role-gated.
	r.POST("/admin/login", ah.Login)

	adm := r.Group("/admin").Use(jwtmw.WithJWT(), cb.Enforce())
	adm.POST("/parties", ah.AddParty)
	adm.POST("/candidates", ah.AddCandidate)
	adm.GET("/voters/pending", ah.PendingVoters)
	adm.POST("/voters/:id/approve", ah.ApproveVoter)
	adm.POST("/results/unlock", ah.Results)

	return r
}
