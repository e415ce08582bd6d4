package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// 自訂 tag, 數值以 decimal 判斷以支援數字字串與 json.Number
const (
	tagPresent    = "present"
	tagFilled     = "filled"
	tagDecimal    = "decimal"
	tagDecimalInt = "decimal_int"
	tagDecimalGte = "decimal_gte"
	tagDecimalLte = "decimal_lte"
)

// engine 註冊完成後唯讀, validator.Validate 可供多個 goroutine 共用
var engine = newEngine()

func newEngine() *playground.Validate {
	v := playground.New()
	custom := map[string]playground.Func{
		tagPresent: func(fl playground.FieldLevel) bool {
			return !isBlank(fl.Field().Interface())
		},
		tagFilled: func(fl playground.FieldLevel) bool {
			return !isBlank(fl.Field().Interface())
		},
		tagDecimal: func(fl playground.FieldLevel) bool {
			_, ok := ToDecimal(fl.Field().Interface())
			return ok
		},
		tagDecimalInt: func(fl playground.FieldLevel) bool {
			d, ok := ToDecimal(fl.Field().Interface())
			return ok && d.IsInteger()
		},
		tagDecimalGte: func(fl playground.FieldLevel) bool {
			return compareBound(fl, func(d, bound decimal.Decimal) bool { return d.GreaterThanOrEqual(bound) })
		},
		tagDecimalLte: func(fl playground.FieldLevel) bool {
			return compareBound(fl, func(d, bound decimal.Decimal) bool { return d.LessThanOrEqual(bound) })
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validator: register %q: %v", tag, err))
		}
	}
	return v
}

// compareBound 非數值交給 numeric 規則處理, 這裡視為通過
func compareBound(fl playground.FieldLevel, cmp func(d, bound decimal.Decimal) bool) bool {
	d, ok := ToDecimal(fl.Field().Interface())
	if !ok {
		return true
	}
	bound, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return cmp(d, bound)
}

// Errors 欄位名稱 -> 錯誤訊息, 長度為 0 代表通過
type Errors map[string][]string

func (e Errors) add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Validate 依照 rules 驗證 payload
//
// required 一律檢查, filled 在欄位出現時檢查 (不可為空白),
// 其餘規則只在欄位有值時檢查, 同一欄位的所有錯誤都會回傳
func Validate(payload map[string]any, rules Rules) Errors {
	errs := Errors{}
	for field, fieldRules := range rules {
		value, ok := payload[field]
		present := ok && !isBlank(value)
		label := fieldLabel(field)

		for _, rule := range fieldRules {
			switch {
			case rule.Name == RuleRequired:
			case rule.Name == RuleFilled:
				if !ok {
					continue
				}
			case !present:
				continue
			}
			if err := run(rule, field, value, payload); err != nil {
				errs.add(field, message(err, label))
			}
		}
	}
	return errs
}

func run(rule Rule, field string, value any, payload map[string]any) error {
	switch rule.Name {
	case RuleRequired, RuleFilled:
		if value == nil {
			value = ""
		}
		return engine.Var(value, rule.Tag)
	case RuleNumeric, RuleInteger, RuleGte, RuleLte:
		return engine.Var(value, rule.Tag)
	case RuleConfirmed:
		return engine.VarWithValue(toString(value), toString(payload[field+"_confirmation"]), rule.Tag)
	default:
		// 字串類規則一律以字串形式檢查, 避免 validator 對非字串型別 panic
		return engine.Var(toString(value), rule.Tag)
	}
}

// message 將 validator 的 FieldError 轉成 API 的錯誤訊息
func message(err error, label string) string {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Sprintf("%s is invalid", label)
	}
	fe := verrs[0]

	switch fe.Tag() {
	case tagPresent:
		return fmt.Sprintf("%s is required", label)
	case tagFilled:
		return fmt.Sprintf("%s cannot be empty", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", label, fe.Param())
	case tagDecimal:
		return fmt.Sprintf("%s must be numeric", label)
	case tagDecimalInt:
		return fmt.Sprintf("%s must be an integer", label)
	case tagDecimalGte:
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case tagDecimalLte:
		return fmt.Sprintf("%s must not be greater than %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(fe.Param()), ", "))
	case "eqcsfield":
		return fmt.Sprintf("%s confirmation does not match", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// ToDecimal 將 JSON 數字或數字字串轉為 decimal
func ToDecimal(value any) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case float64:
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		return d, err == nil
	default:
		return decimal.Decimal{}, false
	}
}

func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

func toString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return decimal.NewFromFloat(v).String()
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// fieldLabel 首字大寫, 例如 full_name -> Full_name
func fieldLabel(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToUpper(r)) + field[size:]
}
