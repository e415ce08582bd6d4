package service

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type IProductService interface {
	ListProducts(ctx context.Context, category *string, paging util.Paging) ([]model.ProductModel, error)
	GetProduct(ctx context.Context, id int64) (*model.ProductModel, error)
	CreateProduct(ctx context.Context, caller *model.UserModel, arg *model.CreateProductModel) (*model.ProductModel, error)
	UpdateProduct(ctx context.Context, caller *model.UserModel, arg *model.UpdateProductModel) (*model.ProductModel, error)
	DeleteProduct(ctx context.Context, caller *model.UserModel, id int64) error
	ListSellerProducts(ctx context.Context, sellerID int64, paging util.Paging) ([]model.ProductModel, error)
}

type ProductService struct {
	dbDao db.IStore
}

func NewProductService(dbDao db.IStore) *ProductService {
	if dbDao == nil {
		panic("NewProductService: dbDao cannot be nil")
	}
	return &ProductService{
		dbDao: dbDao,
	}
}

// ListProducts 只回傳 active 商品, category 為 nil 時不篩選
func (p *ProductService) ListProducts(ctx context.Context, category *string, paging util.Paging) ([]model.ProductModel, error) {
	products, err := p.dbDao.ListProducts(ctx, sqlc.ListProductsParams{
		Category: util.StringToPgText(category),
		Limit:    paging.Limit(),
		Offset:   paging.Offset(),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return convertRepoProductsToModel(products), nil
}

func (p *ProductService) GetProduct(ctx context.Context, id int64) (*model.ProductModel, error) {
	product, err := p.dbDao.GetProductByID(ctx, id)
	if err != nil {
		return nil, db.ClassifyError(err, "Product not found")
	}
	return convertRepoProductToModel(&product), nil
}

// CreateProduct 建立商品, 僅限 seller
// 參數:
//   - caller: 目前使用者
//   - arg: 商品資料, SellerID 會以 caller 覆蓋
//
// 錯誤:
//   - apperr.ForbiddenCode 403: caller 不是 seller
//   - apperr.InternalErrorCode 500: 內部處理錯誤
func (p *ProductService) CreateProduct(ctx context.Context, caller *model.UserModel, arg *model.CreateProductModel) (*model.ProductModel, error) {
	if !caller.IsSeller() {
		return nil, apperr.New(apperr.ForbiddenCode, "Only sellers can create products")
	}

	product, err := p.dbDao.CreateProduct(ctx, sqlc.CreateProductParams{
		SellerID:      caller.ID,
		Name:          arg.Name,
		Description:   arg.Description,
		Price:         arg.Price,
		StockQuantity: arg.StockQuantity,
		ImageUrl:      util.StringToPgText(arg.ImageURL),
		Category:      arg.Category,
		Status:        constants.ProductStatusActive,
	})
	if err != nil {
		return nil, db.ClassifyError(err, "")
	}
	return convertRepoProductToModel(&product), nil
}

// UpdateProduct 部分更新, 只寫入有提供的欄位
//
// 未提供的欄位 (特別是 stock_quantity) 由資料庫保留目前的值,
// 不會以讀到的舊資料覆蓋結帳時的扣庫存
// 錯誤:
//   - apperr.NotFoundCode 404: 商品不存在或已刪除
//   - apperr.ForbiddenCode 403: 不是商品擁有者
//   - apperr.BadRequestCode 400: status 不是 active/inactive
func (p *ProductService) UpdateProduct(ctx context.Context, caller *model.UserModel, arg *model.UpdateProductModel) (*model.ProductModel, error) {
	current, err := p.dbDao.GetProductByID(ctx, arg.ID)
	if err != nil {
		return nil, db.ClassifyError(err, "Product not found")
	}
	if current.SellerID != caller.ID {
		return nil, apperr.New(apperr.ForbiddenCode, "You can only update your own products")
	}

	params := sqlc.UpdateProductParams{
		ID:          current.ID,
		Name:        optionalText(arg.Name),
		Description: optionalText(arg.Description),
		Category:    optionalText(arg.Category),
	}
	if arg.Price != nil {
		params.Price = decimal.NewNullDecimal(*arg.Price)
	}
	if arg.StockQuantity != nil {
		params.StockQuantity = pgtype.Int4{Int32: *arg.StockQuantity, Valid: true}
	}
	if arg.ImageURL != nil {
		// 空字串代表移除圖片
		params.SetImageUrl = true
		params.ImageUrl = util.StringToPgText(arg.ImageURL)
	}
	if arg.Status != nil {
		switch *arg.Status {
		case constants.ProductStatusActive, constants.ProductStatusInactive:
			params.Status = optionalText(arg.Status)
		default:
			return nil, apperr.New(apperr.BadRequestCode, "Status must be active or inactive")
		}
	}

	product, err := p.dbDao.UpdateProduct(ctx, params)
	if err != nil {
		return nil, db.ClassifyError(err, "Product not found")
	}
	return convertRepoProductToModel(&product), nil
}

// optionalText nil 轉為 NULL, 讓 COALESCE 保留原值
func optionalText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// DeleteProduct 軟刪除, 商品狀態改為 deleted
func (p *ProductService) DeleteProduct(ctx context.Context, caller *model.UserModel, id int64) error {
	current, err := p.dbDao.GetProductByID(ctx, id)
	if err != nil {
		return db.ClassifyError(err, "Product not found")
	}
	if current.SellerID != caller.ID {
		return apperr.New(apperr.ForbiddenCode, "You can only delete your own products")
	}

	affected, err := p.dbDao.SoftDeleteProduct(ctx, id)
	if err != nil {
		return apperr.Internal(err)
	}
	if affected == 0 {
		return apperr.New(apperr.NotFoundCode, "Product not found")
	}
	return nil
}

func (p *ProductService) ListSellerProducts(ctx context.Context, sellerID int64, paging util.Paging) ([]model.ProductModel, error) {
	products, err := p.dbDao.ListProductsBySeller(ctx, sqlc.ListProductsBySellerParams{
		SellerID: sellerID,
		Limit:    paging.Limit(),
		Offset:   paging.Offset(),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return convertRepoProductsToModel(products), nil
}
