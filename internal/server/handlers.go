package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Scott-VanSlyck/dookie-dynasty-dashboard-sub000/internal/lottery"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) getLeague(c *gin.Context) {
	metadata, err := s.service.LeagueMetadata()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metadata)
}

func (s *Server) getStandings(c *gin.Context) {
	standings, err := s.service.Standings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, standings)
}

func (s *Server) getMatchups(c *gin.Context) {
	matchups, err := s.service.Matchups()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, matchups)
}

func (s *Server) getLotteryOdds(c *gin.Context) {
	entries, err := s.service.LotteryOdds()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

type runLotteryRequest struct {
	Mode string `json:"mode"`
}

// runLottery draws a fresh draft order. An empty or absent body runs the
// default weighted draw.
func (s *Server) runLottery(c *gin.Context) {
	var req runLotteryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	mode, err := lottery.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := s.service.RunLottery(mode)
	if err != nil {
		if errors.Is(err, lottery.ErrNoTeams) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no eligible teams"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) getTradeValues(c *gin.Context) {
	values, err := s.service.TradeValues()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, values)
}

func (s *Server) getPowerRankings(c *gin.Context) {
	rankings, err := s.service.PowerRankings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rankings)
}
