package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty_backend/internal/api"
	"realty_backend/internal/shared/validation"
)

// userInput はユーザー作成スキーマと同じルールを持つテスト用構造体です。
type userInput struct {
	Email string  `json:"email" validate:"required,email_format,min=5,max=100"`
	Name  string  `json:"name" validate:"required,min=2,max=100,person_name"`
	Phone *string `json:"phone" validate:"omitnil,ph_mobile"`
}

// propertyInput はプロパティ作成スキーマと同じルールを持つテスト用構造体です。
type propertyInput struct {
	OwnerID   *uint    `json:"ownerId" validate:"required,gt=0,lte=2147483647"`
	Address   string   `json:"address" validate:"required,min=5,max=200"`
	City      string   `json:"city" validate:"required,min=2,max=100,person_name"`
	ZipCode   *string  `json:"zipCode" validate:"omitnil,zip4"`
	Latitude  *float64 `json:"latitude" validate:"omitnil,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitnil,gte=-180,lte=180"`
}

func strPtr(s string) *string       { return &s }
func uintPtr(v uint) *uint          { return &v }
func floatPtr(v float64) *float64   { return &v }
func validUser() userInput          { return userInput{Email: "jane@example.com", Name: "Jane Doe"} }
func validProperty() propertyInput {
	return propertyInput{OwnerID: uintPtr(1), Address: "123 Main Street", City: "Metro City"}
}

// TestStruct_Valid は正常入力が違反なしで通ることを検証します。
func TestStruct_Valid(t *testing.T) {
	t.Parallel()

	u := validUser()
	u.Phone = strPtr("+639171234567")
	assert.Nil(t, validation.Struct(&u))

	p := validProperty()
	p.ZipCode = strPtr("1234")
	p.Latitude = floatPtr(14.5995)
	p.Longitude = floatPtr(120.9842)
	assert.Nil(t, validation.Struct(&p))
}

// TestStruct_FirstFailingRulePerField はフィールドごとに最初に違反した
// ルールだけが報告されることを検証します。
func TestStruct_FirstFailingRulePerField(t *testing.T) {
	t.Parallel()

	// "x" はフォーマットと最小長の両方に違反するが、先に宣言された
	// フォーマット違反だけが報告される
	u := validUser()
	u.Email = "x"
	details := validation.Struct(&u)
	require.Len(t, details, 1)
	assert.Equal(t, api.FieldError{Field: "email", Message: "Invalid email format"}, details[0])
}

// TestStruct_UserRules はユーザー入力の各ルールのメッセージを検証します。
func TestStruct_UserRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*userInput)
		expected api.FieldError
	}{
		{
			name:     "missing email",
			mutate:   func(u *userInput) { u.Email = "" },
			expected: api.FieldError{Field: "email", Message: "Email is required"},
		},
		{
			name:     "email too long",
			mutate:   func(u *userInput) { u.Email = strings.Repeat("a", 95) + "@example.com" },
			expected: api.FieldError{Field: "email", Message: "Email must not exceed 100 characters"},
		},
		{
			name:     "missing name",
			mutate:   func(u *userInput) { u.Name = "" },
			expected: api.FieldError{Field: "name", Message: "Name is required"},
		},
		{
			name:     "name too short",
			mutate:   func(u *userInput) { u.Name = "J" },
			expected: api.FieldError{Field: "name", Message: "Name must be at least 2 characters"},
		},
		{
			name:   "name with digits",
			mutate: func(u *userInput) { u.Name = "Jane 2nd" },
			expected: api.FieldError{
				Field:   "name",
				Message: "Name can only contain letters, spaces, hyphens, and apostrophes",
			},
		},
		{
			name:   "invalid phone",
			mutate: func(u *userInput) { u.Phone = strPtr("12345") },
			expected: api.FieldError{
				Field:   "phone",
				Message: "Invalid Philippine phone number format. Use: +639171234567, 09171234567, or 639171234567",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			details := validation.Struct(&u)

			require.Len(t, details, 1)
			assert.Equal(t, tt.expected, details[0])
		})
	}
}

// TestStruct_PhoneFormats は受理される電話番号の形式を検証します。
func TestStruct_PhoneFormats(t *testing.T) {
	t.Parallel()

	for _, phone := range []string{"+639171234567", "09171234567", "639171234567", "9171234567", ""} {
		u := validUser()
		u.Phone = strPtr(phone)
		assert.Nil(t, validation.Struct(&u), "phone %q should be accepted", phone)
	}

	// 電話番号なし（nil）も許容される
	u := validUser()
	assert.Nil(t, validation.Struct(&u))
}

// TestStruct_PropertyRules はプロパティ入力の各ルールのメッセージを検証します。
func TestStruct_PropertyRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*propertyInput)
		expected api.FieldError
	}{
		{
			name:     "missing owner id",
			mutate:   func(p *propertyInput) { p.OwnerID = nil },
			expected: api.FieldError{Field: "ownerId", Message: "Owner ID is required"},
		},
		{
			name:     "owner id above 32-bit range",
			mutate:   func(p *propertyInput) { p.OwnerID = uintPtr(2147483648) },
			expected: api.FieldError{Field: "ownerId", Message: "Owner ID exceeds maximum allowed value"},
		},
		{
			name:     "address too short",
			mutate:   func(p *propertyInput) { p.Address = "a st" },
			expected: api.FieldError{Field: "address", Message: "Address must be at least 5 characters"},
		},
		{
			name:   "city with digits",
			mutate: func(p *propertyInput) { p.City = "City 9" },
			expected: api.FieldError{
				Field:   "city",
				Message: "City can only contain letters, spaces, hyphens, and apostrophes",
			},
		},
		{
			name:     "zip code not 4 digits",
			mutate:   func(p *propertyInput) { p.ZipCode = strPtr("12345") },
			expected: api.FieldError{Field: "zipCode", Message: "Zip code must be exactly 4 digits"},
		},
		{
			name:     "latitude out of range",
			mutate:   func(p *propertyInput) { p.Latitude = floatPtr(90.5) },
			expected: api.FieldError{Field: "latitude", Message: "Latitude must be between -90 and 90"},
		},
		{
			name:     "longitude out of range",
			mutate:   func(p *propertyInput) { p.Longitude = floatPtr(-180.5) },
			expected: api.FieldError{Field: "longitude", Message: "Longitude must be between -180 and 180"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProperty()
			tt.mutate(&p)

			details := validation.Struct(&p)

			require.Len(t, details, 1)
			assert.Equal(t, tt.expected, details[0])
		})
	}
}

// TestStruct_MultipleViolations は複数フィールドの違反がすべて列挙されることを検証します。
func TestStruct_MultipleViolations(t *testing.T) {
	t.Parallel()

	u := userInput{Email: "", Name: ""}
	details := validation.Struct(&u)

	require.Len(t, details, 2)
	fields := []string{details[0].Field, details[1].Field}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "name")
}

// TestParseID はIDパスパラメータの検証と変換を検証します。
func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		expectedID uint
		wantErr    *api.FieldError
	}{
		{name: "valid", raw: "42", expectedID: 42},
		{name: "max 32-bit", raw: "2147483647", expectedID: 2147483647},
		{
			name:    "not a number",
			raw:     "abc",
			wantErr: &api.FieldError{Field: "id", Message: "ID must be a valid number"},
		},
		{
			name:    "negative",
			raw:     "-5",
			wantErr: &api.FieldError{Field: "id", Message: "ID must be a valid number"},
		},
		{
			name:    "decimal",
			raw:     "12.5",
			wantErr: &api.FieldError{Field: "id", Message: "ID must be a valid number"},
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: &api.FieldError{Field: "id", Message: "ID must be a valid number"},
		},
		{
			name:    "zero",
			raw:     "0",
			wantErr: &api.FieldError{Field: "id", Message: "ID must be greater than 0"},
		},
		{
			name:    "above 32-bit range",
			raw:     "2147483648",
			wantErr: &api.FieldError{Field: "id", Message: "ID exceeds maximum allowed value"},
		},
		{
			name:    "absurdly long digits",
			raw:     "999999999999999999999999999999",
			wantErr: &api.FieldError{Field: "id", Message: "ID exceeds maximum allowed value"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, fieldErr := validation.ParseID(tt.raw)

			if tt.wantErr != nil {
				require.NotNil(t, fieldErr)
				assert.Equal(t, *tt.wantErr, *fieldErr)
				return
			}
			require.Nil(t, fieldErr)
			assert.Equal(t, tt.expectedID, id)
		})
	}
}
