package web

import (
	"context"
	"log"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mzeman/facegate/internal/web/handlers"
)

func (s *Server) setupRoutes(deps Dependencies) {
	// Refresh the Q&A index in the background after each registration.
	var onRegister func()
	if deps.QA != nil {
		qaService := deps.QA
		onRegister = func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if _, err := qaService.Ingest(ctx); err != nil {
				log.Printf("Background index refresh failed: %v", err)
			}
		}
	}

	registerHandler := handlers.NewRegisterHandler(deps.Detector, deps.PersonWriter, onRegister)
	recognizeHandler := handlers.NewRecognizeHandler(deps.Detector, deps.PersonReader, s.config.Recognition.Threshold)
	metadataHandler := handlers.NewMetadataHandler(deps.PersonReader)
	healthHandler := handlers.NewHealthHandler(deps.PersonReader, deps.ProviderName)

	s.router.Get("/api/v1/health", healthHandler.Health)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", registerHandler.Register)
		r.Post("/recognize", recognizeHandler.Recognize)

		r.Get("/metadata/last", metadataHandler.Last)
		r.Get("/metadata/count", metadataHandler.Count)

		if deps.QA != nil {
			qaHandler := handlers.NewQAHandler(deps.QA)
			r.Post("/qa/ingest", qaHandler.Ingest)
			r.Post("/qa/query", qaHandler.Query)
		}
	})
}
