package api

import (
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Name("API")
	{
		auth := api.Group("/auth").Name("Auth API")
		{
			auth.Post("/sign-up", signUp)
			auth.Post("/sign-in", signIn)
		}

		api.Get("/users/me", authMiddleware, getUserinfo)

		agents := api.Group("/agents").Use(authMiddleware).Name("Agents API")
		{
			agents.Get("/", listAgent)
			agents.Post("/", createAgent)
			agents.Get("/:agentId", getAgent)
		}

		meetings := api.Group("/meetings").Use(authMiddleware).Name("Meetings API")
		{
			meetings.Get("/", listMeeting)
			meetings.Post("/", createMeeting)
			meetings.Post("/token", exchangeCallToken)
			meetings.Get("/:meetingId", getMeeting)
			meetings.Put("/:meetingId", editMeeting)
			meetings.Delete("/:meetingId", deleteMeeting)
		}
	}
}
