package controller

import (
	"context"
	"encoding/json"
	"errors"

	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/internal/pkg/serverutils"
	"spi-eshop-be/internal/service"
	internalWS "spi-eshop-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const aiControllerModule = "AIController"

type IAIController interface {
	RegisterRoutes(r fiber.Router)
	Search(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	Departments(ctx *fiber.Ctx) error
}

type aiController struct {
	aiService service.IAIService
	hub       *internalWS.Hub
	logger    logger.ILogger
}

func NewAIController(aiService service.IAIService, hub *internalWS.Hub, logger logger.ILogger) IAIController {
	return &aiController{
		aiService: aiService,
		hub:       hub,
		logger:    logger,
	}
}

func (c *aiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/ai")
	h.Post("/search", c.Search)
	h.Post("/chat", c.Chat)
	h.Get("/departments", c.Departments)
	h.Get("/chat/ws", c.upgradeOnly, websocket.New(c.serveChat))
}

// AI routes answer with a flat JSON body rather than the BaseResponse envelope.
func (c *aiController) Search(ctx *fiber.Ctx) error {
	var req dto.AISearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": serverutils.ValidationMessage(err)})
	}

	res, err := c.aiService.Search(ctx.UserContext(), &req)
	if err != nil {
		return c.fail(ctx, err, "Error processing AI search")
	}

	return ctx.JSON(res)
}

func (c *aiController) Chat(ctx *fiber.Ctx) error {
	var req dto.AIChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": serverutils.ValidationMessage(err)})
	}

	res, err := c.aiService.Chat(ctx.UserContext(), &req)
	if err != nil {
		return c.fail(ctx, err, "Error processing AI chat")
	}

	return ctx.JSON(res)
}

func (c *aiController) Departments(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get departments", c.aiService.Departments()))
}

func (c *aiController) fail(ctx *fiber.Ctx, err error, fallback string) error {
	var reqErr *service.RequestError
	if errors.As(err, &reqErr) {
		return ctx.Status(reqErr.Status).JSON(fiber.Map{"success": false, "message": reqErr.Message})
	}

	c.logger.Error(aiControllerModule, fallback, map[string]interface{}{"error": err.Error(), "path": ctx.Path()})
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": fallback})
}

func (c *aiController) upgradeOnly(ctx *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(ctx) {
		return ctx.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (c *aiController) serveChat(conn *websocket.Conn) {
	internalWS.ServeChat(c.hub, conn, c.respondFrame)
}

// respondFrame answers one websocket frame with the same body the HTTP chat route returns.
func (c *aiController) respondFrame(ctx context.Context, frame []byte) []byte {
	var req dto.AIChatRequest
	if err := json.Unmarshal(frame, &req); err != nil {
		return encodeFrame(fiber.Map{"success": false, "message": "Invalid message"})
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return encodeFrame(fiber.Map{"success": false, "message": serverutils.ValidationMessage(err)})
	}

	res, err := c.aiService.Chat(ctx, &req)
	if err != nil {
		var reqErr *service.RequestError
		if errors.As(err, &reqErr) {
			return encodeFrame(fiber.Map{"success": false, "message": reqErr.Message})
		}
		c.logger.Error(aiControllerModule, "Error processing AI chat", map[string]interface{}{"error": err.Error(), "channel": "ws"})
		return encodeFrame(fiber.Map{"success": false, "message": "Error processing AI chat"})
	}
	return encodeFrame(res)
}

func encodeFrame(v interface{}) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte(`{"success":false,"message":"Error processing AI chat"}`)
	}
	return b
}
