package validator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	RuleRequired  = "required"
	RuleEmail     = "email"
	RuleMin       = "min"
	RuleMax       = "max"
	RuleNumeric   = "numeric"
	RuleInteger   = "integer"
	RuleGte       = "gte"
	RuleLte       = "lte"
	RuleIn        = "in"
	RuleConfirmed = "confirmed"
	RuleFilled    = "filled"
)

// Rule 編譯後的單一驗證規則, Tag 為 go-playground/validator 的 tag
type Rule struct {
	Name string
	Tag  string
}

// FieldRules 單一欄位的規則, 依宣告順序檢查
type FieldRules []Rule

// Rules 欄位名稱 -> 規則
type Rules map[string]FieldRules

// ParseFieldRules 解析 "required|min:3" 形式的規則字串
//
// 錯誤:
//   - 未知的規則 (包含需要資料庫的 unique)
//   - 參數缺漏或格式錯誤
func ParseFieldRules(field, def string) (FieldRules, error) {
	var rules FieldRules
	for _, raw := range strings.Split(def, "|") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		name, param, hasParam := strings.Cut(raw, ":")
		rule := Rule{Name: name}

		switch name {
		case RuleRequired, RuleFilled, RuleEmail, RuleNumeric, RuleInteger, RuleConfirmed:
			if hasParam {
				return nil, fmt.Errorf("validator: rule %q on field %q takes no parameter", name, field)
			}
			rule.Tag = map[string]string{
				RuleRequired:  tagPresent,
				RuleFilled:    tagFilled,
				RuleEmail:     "email",
				RuleNumeric:   tagDecimal,
				RuleInteger:   tagDecimalInt,
				RuleConfirmed: "eqcsfield",
			}[name]
		case RuleMin, RuleMax:
			n, err := parseLength(param)
			if err != nil {
				return nil, fmt.Errorf("validator: rule %q on field %q: %w", name, field, err)
			}
			rule.Tag = fmt.Sprintf("%s=%d", name, n)
		case RuleGte, RuleLte:
			bound, err := decimal.NewFromString(strings.TrimSpace(param))
			if err != nil {
				return nil, fmt.Errorf("validator: rule %q on field %q: invalid bound %q", name, field, param)
			}
			tag := tagDecimalGte
			if name == RuleLte {
				tag = tagDecimalLte
			}
			rule.Tag = tag + "=" + bound.String()
		case RuleIn:
			var options []string
			for _, opt := range strings.Split(param, ",") {
				opt = strings.TrimSpace(opt)
				if opt == "" {
					continue
				}
				if strings.ContainsAny(opt, " \t'") {
					return nil, fmt.Errorf("validator: rule %q on field %q: invalid option %q", name, field, opt)
				}
				options = append(options, opt)
			}
			if len(options) == 0 {
				return nil, fmt.Errorf("validator: rule %q on field %q needs at least one option", name, field)
			}
			rule.Tag = "oneof=" + strings.Join(options, " ")
		default:
			return nil, fmt.Errorf("validator: unsupported rule %q on field %q", name, field)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// ParseRules 解析整個表單的規則
func ParseRules(defs map[string]string) (Rules, error) {
	rules := make(Rules, len(defs))
	for field, def := range defs {
		fieldRules, err := ParseFieldRules(field, def)
		if err != nil {
			return nil, err
		}
		rules[field] = fieldRules
	}
	return rules, nil
}

// MustParseRules 同 ParseRules, 失敗時 panic, 用於套件層級的固定規則
func MustParseRules(defs map[string]string) Rules {
	rules, err := ParseRules(defs)
	if err != nil {
		panic(err)
	}
	return rules
}

func parseLength(param string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(strings.TrimSpace(param), "%d", &n); err != nil || n < 0 {
		return 0, fmt.Errorf("invalid length %q", param)
	}
	return n, nil
}
