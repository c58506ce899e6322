package controller

import (
	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/pkg/serverutils"
	"spi-eshop-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProductController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
}

type productController struct {
	productService service.IProductService
	auth           *serverutils.Auth
}

func NewProductController(productService service.IProductService, auth *serverutils.Auth) IProductController {
	return &productController{
		productService: productService,
		auth:           auth,
	}
}

func (c *productController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/products")
	h.Get("", c.List)
	h.Get("/:id", c.Show)
	h.Post("", c.auth.JwtMiddleware, c.auth.AdminMiddleware, c.Import)
}

// List answers {data, meta} without the envelope.
func (c *productController) List(ctx *fiber.Ctx) error {
	var req dto.ListProductsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid product id")
	}

	res, err := c.productService.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

func (c *productController) Import(ctx *fiber.Ctx) error {
	var req dto.ImportProductsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.productService.Import(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success import products", res))
}
