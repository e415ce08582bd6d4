package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	rules := MustParseRules(map[string]string{
		"email":     "required|email",
		"full_name": "required|min:3|max:10",
		"price":     "numeric",
	})

	testCases := []struct {
		name    string
		payload map[string]any
		check   func(t *testing.T, errs Errors)
	}{
		{
			name: "valid",
			payload: map[string]any{
				"email":     "a@example.com",
				"full_name": "Alice",
				"price":     "10.50",
			},
			check: func(t *testing.T, errs Errors) {
				require.Empty(t, errs)
			},
		},
		{
			name:    "missing required fields",
			payload: map[string]any{},
			check: func(t *testing.T, errs Errors) {
				require.Equal(t, []string{"Email is required"}, errs["email"])
				require.Equal(t, []string{"Full_name is required"}, errs["full_name"])
				require.NotContains(t, errs, "price")
			},
		},
		{
			name: "blank string counts as missing",
			payload: map[string]any{
				"email":     "   ",
				"full_name": "Alice",
			},
			check: func(t *testing.T, errs Errors) {
				require.Equal(t, []string{"Email is required"}, errs["email"])
			},
		},
		{
			name: "invalid values",
			payload: map[string]any{
				"email":     "not-an-email",
				"full_name": "Al",
				"price":     "ten",
			},
			check: func(t *testing.T, errs Errors) {
				require.Equal(t, []string{"Email must be a valid email"}, errs["email"])
				require.Equal(t, []string{"Full_name must be at least 3 characters"}, errs["full_name"])
				require.Equal(t, []string{"Price must be numeric"}, errs["price"])
			},
		},
		{
			name: "too long",
			payload: map[string]any{
				"email":     "a@example.com",
				"full_name": "Alexander the Great",
			},
			check: func(t *testing.T, errs Errors) {
				require.Equal(t, []string{"Full_name must not exceed 10 characters"}, errs["full_name"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, Validate(tc.payload, rules))
		})
	}
}

func TestNumericZeroIsPresent(t *testing.T) {
	rules := MustParseRules(map[string]string{"stock_quantity": "required|numeric|integer|gte:0"})
	require.Empty(t, Validate(map[string]any{"stock_quantity": float64(0)}, rules))
	require.Empty(t, Validate(map[string]any{"stock_quantity": "0"}, rules))
}

func TestNumericBoundsAndInteger(t *testing.T) {
	rules := MustParseRules(map[string]string{"rating": "required|numeric|integer|gte:1|lte:5"})

	require.Empty(t, Validate(map[string]any{"rating": json.Number("5")}, rules))

	errs := Validate(map[string]any{"rating": 4.5}, rules)
	require.Equal(t, []string{"Rating must be an integer"}, errs["rating"])

	errs = Validate(map[string]any{"rating": float64(6)}, rules)
	require.Equal(t, []string{"Rating must not be greater than 5"}, errs["rating"])

	errs = Validate(map[string]any{"rating": "0"}, rules)
	require.Equal(t, []string{"Rating must be at least 1"}, errs["rating"])
}

func TestNumericRejectsNonNumbers(t *testing.T) {
	rules := MustParseRules(map[string]string{"price": "numeric"})
	for _, v := range []any{"NaN", "1e", true, []any{1}} {
		errs := Validate(map[string]any{"price": v}, rules)
		require.Len(t, errs["price"], 1, "value %v", v)
	}
}

func TestInAndConfirmed(t *testing.T) {
	rules := MustParseRules(map[string]string{
		"status":   "in:pending,shipped",
		"password": "confirmed",
	})

	errs := Validate(map[string]any{
		"status":                "lost",
		"password":              "secret",
		"password_confirmation": "other",
	}, rules)
	require.Equal(t, []string{"Status must be one of: pending, shipped"}, errs["status"])
	require.Equal(t, []string{"Password confirmation does not match"}, errs["password"])

	errs = Validate(map[string]any{
		"status":                "shipped",
		"password":              "secret",
		"password_confirmation": "secret",
	}, rules)
	require.Empty(t, errs)
}

func TestParseRulesRejectsUnknown(t *testing.T) {
	_, err := ParseRules(map[string]string{"email": "required|unique"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unique")

	_, err = ParseRules(map[string]string{"name": "min:abc"})
	require.Error(t, err)

	_, err = ParseRules(map[string]string{"status": "in:"})
	require.Error(t, err)

	_, err = ParseRules(map[string]string{"email": "email:strict"})
	require.Error(t, err)
}

func TestValidateIsolatedBetweenCalls(t *testing.T) {
	rules := MustParseRules(map[string]string{"email": "required"})
	first := Validate(map[string]any{}, rules)
	second := Validate(map[string]any{"email": "a@example.com"}, rules)

	require.Len(t, first, 1)
	require.Empty(t, second)
}

func TestRuleBook(t *testing.T) {
	book, err := NewRuleBook()
	require.NoError(t, err)

	for _, form := range []string{
		FormRegister, FormProductCreate, FormProductUpdate, FormCartAdd,
		FormCartUpdate, FormOrderCreate, FormOrderStatus, FormReviewCreate,
	} {
		_, ok := book.Rules(form)
		require.True(t, ok, form)
	}

	errs := book.Validate(FormRegister, map[string]any{
		"email":        "buyer@example.com",
		"full_name":    "Bob Buyer",
		"phone":        "0900000000",
		"firebase_uid": "uid-1",
		"role":         "buyer",
	})
	require.Empty(t, errs)

	require.Panics(t, func() { book.Validate("no_such_form", map[string]any{}) })
}

func TestLoadRuleBookFailsOnBadRule(t *testing.T) {
	_, err := LoadRuleBook([]byte("register:\n  email: required|unique\n"))
	require.Error(t, err)

	_, err = LoadRuleBook([]byte("register: [not, a, map]"))
	require.Error(t, err)
}

func TestFilledRejectsBlankWhenSent(t *testing.T) {
	rules := MustParseRules(map[string]string{"name": "filled|max:5"})

	require.Empty(t, Validate(map[string]any{}, rules))
	require.Empty(t, Validate(map[string]any{"name": "Lamp"}, rules))

	for _, v := range []any{"", "   ", nil} {
		errs := Validate(map[string]any{"name": v}, rules)
		require.Equal(t, []string{"Name cannot be empty"}, errs["name"], "value %v", v)
	}

	errs := Validate(map[string]any{"name": "Desk lamp"}, rules)
	require.Equal(t, []string{"Name must not exceed 5 characters"}, errs["name"])
}

func TestProductUpdateRejectsBlankStrings(t *testing.T) {
	book, err := NewRuleBook()
	require.NoError(t, err)

	errs := book.Validate(FormProductUpdate, map[string]any{
		"name":        "",
		"description": " ",
		"category":    "",
	})
	require.Equal(t, []string{"Name cannot be empty"}, errs["name"])
	require.Equal(t, []string{"Description cannot be empty"}, errs["description"])
	require.Equal(t, []string{"Category cannot be empty"}, errs["category"])

	require.Empty(t, book.Validate(FormProductUpdate, map[string]any{"price": json.Number("12.5")}))
	require.Empty(t, book.Validate(FormProductUpdate, map[string]any{"image_url": ""}))
}

func TestMultipleErrorsPerField(t *testing.T) {
	rules := MustParseRules(map[string]string{"rating": "integer|gte:1"})
	errs := Validate(map[string]any{"rating": "0.5"}, rules)
	require.Equal(t, []string{"Rating must be an integer", "Rating must be at least 1"}, errs["rating"])
}

func TestParseRulesCompilesTags(t *testing.T) {
	rules, err := ParseFieldRules("price", "required|numeric|gte:0.50|in:a,b")
	require.NoError(t, err)
	require.Equal(t, FieldRules{
		{Name: RuleRequired, Tag: "present"},
		{Name: RuleNumeric, Tag: "decimal"},
		{Name: RuleGte, Tag: "decimal_gte=0.5"},
		{Name: RuleIn, Tag: "oneof=a b"},
	}, rules)

	_, err = ParseFieldRules("status", "in:a b,c")
	require.Error(t, err)
}
