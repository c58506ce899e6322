package controller

import (
	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/pkg/serverutils"
	"spi-eshop-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	ListOrders(ctx *fiber.Ctx) error
	CreateOrder(ctx *fiber.Ctx) error
	ListCustomers(ctx *fiber.Ctx) error
}

type orderController struct {
	orderService service.IOrderService
	auth         *serverutils.Auth
}

func NewOrderController(orderService service.IOrderService, auth *serverutils.Auth) IOrderController {
	return &orderController{
		orderService: orderService,
		auth:         auth,
	}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	orders := r.Group("/orders")
	orders.Use(c.auth.JwtMiddleware, c.auth.AdminMiddleware)
	orders.Get("", c.ListOrders)
	orders.Post("", c.CreateOrder)

	customers := r.Group("/customers")
	customers.Use(c.auth.JwtMiddleware, c.auth.AdminMiddleware)
	customers.Get("", c.ListCustomers)
}

func (c *orderController) ListOrders(ctx *fiber.Ctx) error {
	var req dto.PageRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orderService.ListOrders(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *orderController) CreateOrder(ctx *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orderService.CreateOrder(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create order", res))
}

func (c *orderController) ListCustomers(ctx *fiber.Ctx) error {
	var req dto.PageRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orderService.ListCustomers(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
