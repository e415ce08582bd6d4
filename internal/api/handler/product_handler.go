package handler

import (
	"net/http"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcenter/internal/api/response"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/service"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/RoyceAzure/lab/shopcenter/internal/validator"
)

type ProductHandler struct {
	productService service.IProductService
	rules          *validator.RuleBook
}

func NewProductHandler(productService service.IProductService, rules *validator.RuleBook) *ProductHandler {
	if productService == nil {
		panic("productService cannot be nil")
	}
	if rules == nil {
		panic("rules cannot be nil")
	}
	return &ProductHandler{
		productService: productService,
		rules:          rules,
	}
}

// @Summary list products
// @Description 只回傳 active 商品, 每頁 20 筆
// @Tags products
// @Produce json
// @Param page query int false "page, default 1"
// @Param category query string false "category filter"
// @Success 200 {object} response.Response{data=dto.ProductListResponse} "success"
// @Failure 500 {object} response.Response "Internal server error"
// @Router /products [get]
func (p *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	paging := util.NewPaging(r.URL.Query().Get("page"))

	var category *string
	if c := strings.TrimSpace(r.URL.Query().Get("category")); c != "" {
		category = &c
	}

	products, err := p.productService.ListProducts(r.Context(), category, paging)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Products fetched successfully", dto.ProductListResponse{
		Products: convertProductModelsToDTO(products),
		Page:     paging.Page,
		Limit:    paging.PageSize,
	})
}

// @Summary get product
// @Tags products
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} response.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} response.Response "product not found"
// @Router /products/{id} [get]
func (p *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	product, err := p.productService.GetProduct(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Product fetched successfully", convertProductModelToDTO(product))
}

// @Summary create product
// @Description 僅限 seller
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "product"
// @Success 201 {object} response.Response{data=dto.ProductDTO} "success"
// @Failure 401 {object} response.Response "authentication failed"
// @Failure 403 {object} response.Response "only sellers can create products"
// @Failure 422 {object} response.Response "validation error"
// @Security ApiKeyAuth
// @Router /products [post]
func (p *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	var req dto.CreateProductRequest
	if err := bindForm(r, p.rules, validator.FormProductCreate, &req); err != nil {
		response.Error(w, err)
		return
	}

	stock, err := toInt32("stock_quantity", req.StockQuantity)
	if err != nil {
		response.Error(w, err)
		return
	}

	arg := &model.CreateProductModel{
		SellerID:      caller.ID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: stock,
		Category:      req.Category,
	}
	if req.ImageURL != "" {
		arg.ImageURL = &req.ImageURL
	}

	product, err := p.productService.CreateProduct(r.Context(), caller, arg)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Product created successfully", convertProductModelToDTO(product))
}

// @Summary update product
// @Description 僅限擁有此商品的 seller, 未帶的欄位維持原值
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "product id"
// @Param product body dto.UpdateProductRequest true "fields to update"
// @Success 200 {object} response.Response{data=dto.ProductDTO} "success"
// @Failure 403 {object} response.Response "not the owner"
// @Failure 404 {object} response.Response "product not found"
// @Failure 422 {object} response.Response "validation error"
// @Security ApiKeyAuth
// @Router /products/{id} [put]
func (p *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	var req dto.UpdateProductRequest
	if err := bindForm(r, p.rules, validator.FormProductUpdate, &req); err != nil {
		response.Error(w, err)
		return
	}

	arg := &model.UpdateProductModel{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
		Status:      req.Status,
	}
	if req.StockQuantity != nil {
		stock, err := toInt32("stock_quantity", *req.StockQuantity)
		if err != nil {
			response.Error(w, err)
			return
		}
		arg.StockQuantity = &stock
	}

	product, err := p.productService.UpdateProduct(r.Context(), caller, arg)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Product updated successfully", convertProductModelToDTO(product))
}

// @Summary delete product
// @Description soft delete, 商品狀態改為 deleted
// @Tags products
// @Produce json
// @Param id path int true "product id"
// @Success 200 {object} response.Response "success"
// @Failure 403 {object} response.Response "not the owner"
// @Failure 404 {object} response.Response "product not found"
// @Security ApiKeyAuth
// @Router /products/{id} [delete]
func (p *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	caller, err := currentUser(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := p.productService.DeleteProduct(r.Context(), caller, id); err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Product deleted successfully", nil)
}

// @Summary list seller products
// @Description 該 seller 所有未刪除的商品
// @Tags products
// @Produce json
// @Param id path int true "seller id"
// @Param page query int false "page, default 1"
// @Success 200 {object} response.Response{data=dto.ProductListResponse} "success"
// @Router /sellers/{id}/products [get]
func (p *ProductHandler) ListSellerProducts(w http.ResponseWriter, r *http.Request) {
	sellerID, err := pathID(r, "id")
	if err != nil {
		response.Error(w, err)
		return
	}
	paging := util.NewPaging(r.URL.Query().Get("page"))

	products, err := p.productService.ListSellerProducts(r.Context(), sellerID, paging)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Products fetched successfully", dto.ProductListResponse{
		Products: convertProductModelsToDTO(products),
		Page:     paging.Page,
		Limit:    paging.PageSize,
	})
}
