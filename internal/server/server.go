package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/lottery"
	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/models"
)

// FantasyService is the slice of the service layer the HTTP API reads from.
type FantasyService interface {
	LeagueMetadata() (*models.LeagueMetadata, error)
	Standings() ([]models.TeamStanding, error)
	Matchups() ([]models.Matchup, error)
	LotteryOdds() ([]models.LotteryOddsEntry, error)
	RunLottery(mode lottery.Mode) (*models.LotteryReport, error)
	TradeValues() ([]models.TeamValue, error)
	PowerRankings() ([]models.PowerRanking, error)
}

// Server serves the dashboard's JSON API.
type Server struct {
	router  *gin.Engine
	service FantasyService
}

func New(fantasyService FantasyService) *Server {
	router := gin.Default()

	s := &Server{
		router:  router,
		service: fantasyService,
	}

	router.GET("/healthz", s.health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/league", s.getLeague)
		v1.GET("/standings", s.getStandings)
		v1.GET("/matchups", s.getMatchups)
		v1.GET("/lottery/odds", s.getLotteryOdds)
		v1.POST("/lottery/run", s.runLottery)
		v1.GET("/trade-values", s.getTradeValues)
		v1.GET("/power-rankings", s.getPowerRankings)
	}

	return s
}

// Run blocks serving HTTP on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
