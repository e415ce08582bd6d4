package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/RoyceAzure/lab/shopcenter/internal/apperr"
	"github.com/RoyceAzure/lab/shopcenter/internal/model"
	"github.com/RoyceAzure/lab/shopcenter/internal/util"
	"github.com/RoyceAzure/lab/shopcenter/internal/validator"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = apperr.New(apperr.BadRequestCode, "Invalid request body")

// readPayload 讀取 JSON body, 同時回傳原始內容與供驗證使用的 map
//
// 空 body 視為空物件, 數字保留為 json.Number
func readPayload(r *http.Request) ([]byte, map[string]any, error) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.BadRequestCode, err, errInvalidBody.Message)
	}

	payload := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return raw, payload, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, nil, apperr.Wrap(apperr.BadRequestCode, err, errInvalidBody.Message)
	}
	return raw, payload, nil
}

// bindJSON 解析 body 到 dst, 不做欄位驗證
func bindJSON(r *http.Request, dst any) error {
	raw, _, err := readPayload(r)
	if err != nil {
		return err
	}
	return unmarshalBody(raw, dst)
}

// bindForm 以 form 的規則驗證 body 後解析到 dst
//
// 錯誤:
//   - apperr.BadRequestCode 400: body 不是合法的 JSON 物件
//   - apperr.ValidationCode 422: 欄位驗證失敗
func bindForm(r *http.Request, rules *validator.RuleBook, form string, dst any) error {
	raw, payload, err := readPayload(r)
	if err != nil {
		return err
	}
	if errs := rules.Validate(form, payload); len(errs) > 0 {
		return apperr.Validation(errs)
	}
	return unmarshalBody(raw, dst)
}

func unmarshalBody(raw []byte, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperr.Wrap(apperr.BadRequestCode, err, errInvalidBody.Message)
	}
	return nil
}

// pathID 取得路徑上的數字 id, 路由已限制為數字, 超出範圍視為不存在
func pathID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.New(apperr.NotFoundCode, "Endpoint not found")
	}
	return id, nil
}

// currentUser 由 UserMiddleware 放入 context
func currentUser(r *http.Request) (*model.UserModel, error) {
	user := util.GetUserFromContext(r.Context())
	if user == nil {
		return nil, apperr.New(apperr.UnauthenticatedCode, "Authentication failed")
	}
	return user, nil
}

// toInt32 已通過 integer 規則的數值轉為 int32
func toInt32(field string, d decimal.Decimal) (int32, error) {
	if !d.IsInteger() || d.GreaterThan(decimal.NewFromInt(math.MaxInt32)) || d.LessThan(decimal.NewFromInt(math.MinInt32)) {
		return 0, apperr.Validation(map[string][]string{
			field: {fmt.Sprintf("%s is out of range", fieldLabel(field))},
		})
	}
	return int32(d.IntPart()), nil
}

func fieldLabel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

func toInt64(field string, d decimal.Decimal) (int64, error) {
	if !d.IsInteger() || d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || d.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, apperr.Validation(map[string][]string{
			field: {fmt.Sprintf("%s is out of range", fieldLabel(field))},
		})
	}
	return d.IntPart(), nil
}

func toInt16(field string, d decimal.Decimal) (int16, error) {
	v, err := toInt32(field, d)
	if err != nil {
		return 0, err
	}
	if v > math.MaxInt16 || v < math.MinInt16 {
		return 0, apperr.Validation(map[string][]string{
			field: {fmt.Sprintf("%s is out of range", fieldLabel(field))},
		})
	}
	return int16(v), nil
}
