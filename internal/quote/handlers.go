package quote

import (
	"context"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, feed *Feed, authMiddleware fiber.Handler) {
	r.Get("/today", func(c *fiber.Ctx) error {
		q, err := svc.Get(c.Context(), Today())
		if err != nil {
			log.Printf("no quote document for %s: %v", Today(), err)
			return fiber.NewError(fiber.StatusNotFound, "quote not found")
		}
		return c.JSON(q)
	})

	// Live subscription: the current quote is sent on connect, then every
	// update until the client goes away.
	r.Get("/ws/:day", websocket.New(func(c *websocket.Conn) {
		day := c.Params("day")
		client := feed.Register(day)

		if q, err := svc.Get(context.Background(), day); err == nil {
			payload, _ := json.Marshal(q)
			if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
				feed.Unregister(client)
				return
			}
		} else {
			log.Printf("no quote document for %s: %v", day, err)
		}

		done := make(chan struct{})
		go func() {
			for msg := range client.Send {
				if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
					break
				}
			}
			close(done)
		}()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
		// Unregister closes the send channel, which lets the writer drain
		// and exit before the connection is torn down.
		feed.Unregister(client)
		<-done
	}))

	r.Get("/:day", func(c *fiber.Ctx) error {
		day := c.Params("day")
		q, err := svc.Get(c.Context(), day)
		if err != nil {
			log.Printf("no quote document for %s: %v", day, err)
			return fiber.NewError(fiber.StatusNotFound, "quote not found")
		}
		return c.JSON(q)
	})

	r.Put("/:day", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Quote string `json:"quote"`
		}
		if err := c.BodyParser(&body); err != nil || body.Quote == "" {
			return fiber.NewError(fiber.StatusBadRequest, "quote required")
		}
		q, err := svc.Set(c.Context(), c.Params("day"), body.Quote)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(q)
	})
}
