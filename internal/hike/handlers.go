package hike

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/", func(c *fiber.Ctx) error {
		hikes, err := svc.ListHikes(c.Context())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(hikes)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		h, err := svc.GetHike(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "hike not found")
		}
		return c.JSON(h)
	})
}
