package service

import (
	"context"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
)

type IUserService interface {
	Register(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error)
	GetUserByID(ctx context.Context, id int64) (*model.UserModel, error)
	GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*model.UserModel, error)
	GetUserByEmail(ctx context.Context, email string) (*model.UserModel, error)
}

type UserService struct {
	dbDao db.IStore
}

func NewUserService(dbDao db.IStore) *UserService {
	if dbDao == nil {
		panic("NewUserService: dbDao cannot be nil")
	}
	return &UserService{
		dbDao: dbDao,
	}
}

// Register 建立新使用者
// 參數:
//   - ctx: 上下文
//   - arg: 註冊資料, role 不合法時改為 buyer
//
// 錯誤:
//   - apperr.ConflictCode 409: firebase uid 或 email 已存在
//   - apperr.InternalErrorCode 500: 內部處理錯誤
func (u *UserService) Register(ctx context.Context, arg *model.CreateUserModel) (*model.UserModel, error) {
	if _, err := u.dbDao.GetUserByFirebaseUID(ctx, arg.FirebaseUID); err == nil {
		return nil, apperr.New(apperr.ConflictCode, "User already exists")
	} else if !db.IsNoRows(err) {
		return nil, apperr.Internal(err)
	}

	if _, err := u.dbDao.GetUserByEmail(ctx, arg.Email); err == nil {
		return nil, apperr.New(apperr.ConflictCode, "User already exists")
	} else if !db.IsNoRows(err) {
		return nil, apperr.Internal(err)
	}

	role := arg.Role
	if !constants.IsValidRole(role) {
		role = constants.RoleBuyer
	}

	userEntity, err := u.dbDao.CreateUser(ctx, sqlc.CreateUserParams{
		FirebaseUid: arg.FirebaseUID,
		Email:       arg.Email,
		FullName:    arg.FullName,
		Phone:       arg.Phone,
		Role:        role,
		Status:      constants.UserStatusActive,
	})
	if err != nil {
		// 併發註冊時由 unique constraint 擋下
		if db.ErrorCode(err) == db.UniqueViolation {
			return nil, apperr.Wrap(apperr.ConflictCode, err, "User already exists")
		}
		return nil, db.ClassifyError(err, "")
	}

	return convertRepoUserToModel(&userEntity), nil
}

func (u *UserService) GetUserByID(ctx context.Context, id int64) (*model.UserModel, error) {
	userEntity, err := u.dbDao.GetUserByID(ctx, id)
	if err != nil {
		return nil, db.ClassifyError(err, "User not found")
	}
	return convertRepoUserToModel(&userEntity), nil
}

func (u *UserService) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*model.UserModel, error) {
	userEntity, err := u.dbDao.GetUserByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		return nil, db.ClassifyError(err, "User not found")
	}
	return convertRepoUserToModel(&userEntity), nil
}

func (u *UserService) GetUserByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	userEntity, err := u.dbDao.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, db.ClassifyError(err, "User not found")
	}
	return convertRepoUserToModel(&userEntity), nil
}
