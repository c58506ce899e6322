package controller

import (
	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/pkg/serverutils"
	"spi-eshop-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	GetSystemLogs(ctx *fiber.Ctx) error
	GetSystemLogDetail(ctx *fiber.Ctx) error
	GetChatLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	adminService service.IAdminService
	auth         *serverutils.Auth
}

func NewAdminController(adminService service.IAdminService, auth *serverutils.Auth) IAdminController {
	return &adminController{
		adminService: adminService,
		auth:         auth,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(c.auth.JwtMiddleware, c.auth.AdminMiddleware)
	h.Get("/logs", c.GetSystemLogs)
	h.Get("/logs/:id", c.GetSystemLogDetail)
	h.Get("/chat-logs", c.GetChatLogs)
}

func (c *adminController) GetSystemLogs(ctx *fiber.Ctx) error {
	var req dto.LogQueryRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.GetSystemLogs(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *adminController) GetSystemLogDetail(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetSystemLogDetail(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get log detail", res))
}

func (c *adminController) GetChatLogs(ctx *fiber.Ctx) error {
	var req dto.PageRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	channel := ctx.Query("channel")
	if channel != "" && channel != entity.ChannelSearch && channel != entity.ChannelChat {
		return fiber.NewError(fiber.StatusBadRequest, "channel must be search or chat")
	}

	res, err := c.adminService.GetChatLogs(ctx.UserContext(), &req, channel)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
