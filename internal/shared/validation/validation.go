// Package validation は入力スキーマ検証の共通基盤を提供します。
//
// go-playground/validator のタグ評価は宣言順なので、フィールドごとに
// 最初に違反したルールだけが報告されます。フィールド名は json タグから
// 解決し、(フィールド, ルール) ごとのメッセージ表でワイヤ上のメッセージに
// 変換します。
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"realty_backend/internal/api"
)

// MaxID は数値IDの上限です（32bit符号付き整数の最大値）。
const MaxID = 2147483647

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// フィリピンの携帯番号: +63 / 63 / 0 の任意の接頭辞 + 9始まり10桁
	phMobilePattern   = regexp.MustCompile(`^(\+?63|0)?9\d{9}$`)
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	zip4Pattern       = regexp.MustCompile(`^\d{4}$`)
	digitsPattern     = regexp.MustCompile(`^\d+$`)
)

var validate = newValidator()

// newValidator はカスタムルール登録済みのバリデータを生成します。
func newValidator() *validator.Validate {
	v := validator.New()

	// details[].field にはGoのフィールド名ではなくjsonタグ名を使う
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "email_format", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "person_name", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})
	// 空文字は「電話番号なし」として許容する
	mustRegister(v, "ph_mobile", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || phMobilePattern.MatchString(s)
	})
	mustRegister(v, "zip4", func(fl validator.FieldLevel) bool {
		return zip4Pattern.MatchString(fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: failed to register %q: %v", tag, err))
	}
}

// messages は (jsonフィールド名, バリデーションタグ) → メッセージの対応表です。
var messages = map[string]map[string]string{
	"email": {
		"required":     "Email is required",
		"email_format": "Invalid email format",
		"min":          "Email must be at least 5 characters",
		"max":          "Email must not exceed 100 characters",
	},
	"name": {
		"required":    "Name is required",
		"min":         "Name must be at least 2 characters",
		"max":         "Name must not exceed 100 characters",
		"person_name": "Name can only contain letters, spaces, hyphens, and apostrophes",
	},
	"phone": {
		"ph_mobile": "Invalid Philippine phone number format. Use: +639171234567, 09171234567, or 639171234567",
	},
	"ownerId": {
		"required": "Owner ID is required",
		"gt":       "Owner ID must be greater than zero",
		"lte":      "Owner ID exceeds maximum allowed value",
	},
	"address": {
		"required": "Address is required",
		"min":      "Address must be at least 5 characters",
		"max":      "Address must not exceed 200 characters",
	},
	"city": {
		"required":    "City is required",
		"min":         "City must be at least 2 characters",
		"max":         "City must not exceed 100 characters",
		"person_name": "City can only contain letters, spaces, hyphens, and apostrophes",
	},
	"province": {
		"required":    "Province is required",
		"min":         "Province must be at least 2 characters",
		"max":         "Province must not exceed 100 characters",
		"person_name": "Province can only contain letters, spaces, hyphens, and apostrophes",
	},
	"zipCode": {
		"zip4": "Zip code must be exactly 4 digits",
	},
	"latitude": {
		"gte": "Latitude must be between -90 and 90",
		"lte": "Latitude must be between -90 and 90",
	},
	"longitude": {
		"gte": "Longitude must be between -180 and 180",
		"lte": "Longitude must be between -180 and 180",
	},
}

// Struct は構造体のvalidateタグを検証し、違反をフィールド単位の詳細に変換します。
// 違反がなければnilを返します。
func Struct(s any) []api.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError等。呼び出し側のプログラミングエラーなので詳細なしで返す
		return []api.FieldError{{Field: "", Message: "Invalid input data"}}
	}

	details := make([]api.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, api.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe.Field(), fe.Tag()),
		})
	}
	return details
}

func messageFor(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return fmt.Sprintf("%s is invalid", field)
}

// ParseID はパスパラメータのIDを検証して数値に変換します。
// 数字以外を含む、0、または32bit符号付き整数の範囲を超える場合は違反を返します。
func ParseID(raw string) (uint, *api.FieldError) {
	if !digitsPattern.MatchString(raw) {
		return 0, &api.FieldError{Field: "id", Message: "ID must be a valid number"}
	}
	// 数字のみ確認済みなので、ここでのエラーはuint64の桁あふれのみ
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n > MaxID {
		return 0, &api.FieldError{Field: "id", Message: "ID exceeds maximum allowed value"}
	}
	if n == 0 {
		return 0, &api.FieldError{Field: "id", Message: "ID must be greater than 0"}
	}
	return uint(n), nil
}

// BindDetails はJSONデコード失敗をフィールド単位の詳細に変換します。
// 型不一致はフィールド名付きで、それ以外はボディ全体の違反として報告します。
func BindDetails(err error) []api.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []api.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("Expected %s, received %s", typeErr.Type.Kind(), typeErr.Value),
		}}
	}
	return []api.FieldError{{Field: "", Message: "Malformed JSON body"}}
}
