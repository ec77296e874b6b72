package handler

import (
	"context"
	"net/http"

	"github.com/fekuna/omnipos-juicebar-service/internal/auth"
	"github.com/fekuna/omnipos-juicebar-service/internal/catalog"
	"github.com/fekuna/omnipos-juicebar-service/internal/catalog/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/logger"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/fekuna/omnipos-juicebar-service/internal/pricing"
	"github.com/fekuna/omnipos-juicebar-service/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Quoter interface {
	Quote(ctx context.Context, productID string) (*pricing.Quote, error)
}

type ServingsCounter interface {
	AvailableServings(ctx context.Context, productID string) (int, error)
}

type CatalogHandler struct {
	uc       catalog.UseCase
	quotes   Quoter
	servings ServingsCounter
	logger   logger.ZapLogger
}

func NewCatalogHandler(uc catalog.UseCase, quotes Quoter, servings ServingsCounter, log logger.ZapLogger) *CatalogHandler {
	return &CatalogHandler{
		uc:       uc,
		quotes:   quotes,
		servings: servings,
		logger:   log,
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	owner := auth.RequireRole(auth.RoleOwner)

	products := rg.Group("/products")
	products.GET("", h.ListProducts)
	products.GET("/:id", h.GetProduct)
	products.POST("", owner, h.CreateProduct)
	products.PUT("/:id", owner, h.UpdateProduct)
	products.PUT("/:id/markup", owner, h.SetMarkup)
	products.GET("/:id/recipe", h.GetRecipe)
	products.PUT("/:id/recipe", owner, h.UpdateRecipe)
}

// ProductView is a product with its live cost, price and stock position.
type ProductView struct {
	model.Product
	Cost              decimal.Decimal `json:"cost"`
	Price             decimal.Decimal `json:"price"`
	AvailableServings int             `json:"available_servings"`
	Unresolved        []string        `json:"unresolved_ingredients,omitempty"`
}

type createProductRequest struct {
	ID       string           `json:"id"`
	Name     string           `json:"name" binding:"required"`
	ImageURL string           `json:"image_url"`
	Markup   *decimal.Decimal `json:"markup"`
	IsActive *bool            `json:"is_active"`
}

type updateProductRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
	IsActive bool   `json:"is_active"`
}

type setMarkupRequest struct {
	Markup *decimal.Decimal `json:"markup" binding:"required"`
}

type updateRecipeRequest struct {
	Ingredients []dto.IngredientInput `json:"ingredients"`
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filters := &dto.ProductFilters{
		ActiveOnly:  c.Query("active") == "true",
		SearchQuery: c.Query("q"),
	}

	products, err := h.uc.ListProducts(c.Request.Context(), filters)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		response.HandleError(c, err)
		return
	}

	views := make([]ProductView, 0, len(products))
	for i := range products {
		view, err := h.view(c.Request.Context(), &products[i])
		if err != nil {
			response.HandleError(c, err)
			return
		}
		views = append(views, *view)
	}
	response.SuccessWithTotal(c, views, len(views))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.uc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}

	view, err := h.view(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, view)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &dto.CreateProductInput{
		ID:       req.ID,
		Name:     req.Name,
		ImageURL: req.ImageURL,
		Markup:   req.Markup,
		IsActive: req.IsActive,
	})
	if err != nil {
		h.logger.Warn("failed to create product", zap.Error(err))
		response.HandleError(c, err)
		return
	}
	response.Created(c, p)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), &dto.UpdateProductInput{
		ID:       c.Param("id"),
		Name:     req.Name,
		ImageURL: req.ImageURL,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, p)
}

func (h *CatalogHandler) SetMarkup(c *gin.Context) {
	var req setMarkupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p, err := h.uc.SetMarkup(c.Request.Context(), c.Param("id"), *req.Markup)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	view, err := h.view(c.Request.Context(), p)
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, view)
}

func (h *CatalogHandler) GetRecipe(c *gin.Context) {
	r, err := h.uc.GetRecipe(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.HandleError(c, err)
		return
	}
	if r == nil {
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "recipe not found")
		return
	}
	response.Success(c, r)
}

func (h *CatalogHandler) UpdateRecipe(c *gin.Context) {
	var req updateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.uc.UpdateRecipe(c.Request.Context(), &dto.UpdateRecipeInput{
		ProductID:   c.Param("id"),
		Ingredients: req.Ingredients,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}
	response.Success(c, res)
}

func (h *CatalogHandler) view(ctx context.Context, p *model.Product) (*ProductView, error) {
	q, err := h.quotes.Quote(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	servings, err := h.servings.AvailableServings(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return &ProductView{
		Product:           *p,
		Cost:              q.Cost,
		Price:             q.Price,
		AvailableServings: servings,
		Unresolved:        q.Unresolved,
	}, nil
}
