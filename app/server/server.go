package server

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"aihub/app/api"
	"aihub/resume"
	"aihub/translate"
)

var config = fiber.Config{
	ErrorHandler: api.ErrorHandler,
}

type Server struct {
	listenAddr string
	logger     *slog.Logger
	app        *fiber.App
}

func NewServer(addr string) *Server {
	return &Server{
		listenAddr: addr,
		logger:     slog.Default(),
	}
}

func (s *Server) Stop() {
	if s.app != nil {
		s.app.Shutdown()
	}
	s.logger.Info("server stopped")
}

func (s *Server) Run() {
	ctx := context.Background()

	// Optional capabilities are probed once and shared read-only; absence
	// only narrows behavior, it is never an error.
	tagger := resume.NewLocationTagger()
	if tagger == nil {
		s.logger.Info("location tagger unavailable, locations will be empty")
	}
	var preferred resume.Extractor
	if remote := resume.DetectRemoteParser(ctx, s.logger); remote != nil {
		preferred = remote
	}
	orchestrator := resume.NewOrchestrator(preferred, resume.NewHeuristicExtractor(tagger), s.logger)

	var (
		app              = fiber.New(config)
		checkHandler     = api.NewCheckHandler()
		translateHandler = api.NewTranslateHandler(translate.NewClient())
		currencyHandler  = api.NewCurrencyHandler()
		portfolioHandler = api.NewPortfolioHandler(orchestrator)
		check            = app.Group("/check")
		apiv1            = app.Group("/api/v1")
	)
	s.app = app

	check.Get("/healthy", checkHandler.HandleHealthy)
	apiv1.Post("/translate", translateHandler.HandleTranslate)
	apiv1.Post("/currency", currencyHandler.HandleConvert)
	apiv1.Post("/portfolio", portfolioHandler.HandlePortfolio)

	if err := app.Listen(s.listenAddr); err != nil {
		s.logger.Error("error to start server", "error", err.Error())
		return
	}
}
