package validator

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	FormRegister      = "register"
	FormProductCreate = "product_create"
	FormProductUpdate = "product_update"
	FormCartAdd       = "cart_add"
	FormCartUpdate    = "cart_update"
	FormOrderCreate   = "order_create"
	FormOrderStatus   = "order_status"
	FormReviewCreate  = "review_create"
)

//go:embed rules.yaml
var defaultRules []byte

// RuleBook 所有表單的驗證規則, 建立後唯讀, 可供多個 goroutine 共用
type RuleBook struct {
	forms map[string]Rules
}

// NewRuleBook 載入內建的 rules.yaml
func NewRuleBook() (*RuleBook, error) {
	return LoadRuleBook(defaultRules)
}

// LoadRuleBook 從 yaml 內容建立 RuleBook
//
// 任何無法解析的規則都會回傳錯誤, 讓服務在啟動時就失敗
func LoadRuleBook(data []byte) (*RuleBook, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("validator: parse rule book: %w", err)
	}

	book := &RuleBook{forms: make(map[string]Rules, len(raw))}
	for form, defs := range raw {
		rules, err := ParseRules(defs)
		if err != nil {
			return nil, fmt.Errorf("validator: form %q: %w", form, err)
		}
		book.forms[form] = rules
	}
	return book, nil
}

// Rules 取得表單規則
func (b *RuleBook) Rules(form string) (Rules, bool) {
	rules, ok := b.forms[form]
	return rules, ok
}

// Validate 以指定表單的規則驗證 payload, 表單不存在時 panic (屬於程式錯誤)
func (b *RuleBook) Validate(form string, payload map[string]any) Errors {
	rules, ok := b.forms[form]
	if !ok {
		panic(fmt.Sprintf("validator: unknown form %q", form))
	}
	return Validate(payload, rules)
}
