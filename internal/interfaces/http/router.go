package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/validador-doi/internal/application/document"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DocumentUC *document.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	h := NewDOIHandler(deps.DocumentUC)

	doiGroup := api.Group("/doi")
	doiGroup.Get("/types", h.ListTypes)
	doiGroup.Get("/types/:type", h.GetType)
	doiGroup.Get("/contexts", h.ListContexts)
	doiGroup.Get("/contexts/:context/types", h.ListSuitableTypes)
	doiGroup.Post("/sanitize", h.Sanitize)
	doiGroup.Post("/validate", h.Validate)
	doiGroup.Post("/validate/batch", h.ValidateBatch)

	rucGroup := api.Group("/ruc")
	rucGroup.Post("/check-digit", h.ComputeCheckDigit)
}
