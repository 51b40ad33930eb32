package validate

// File: admin_server/utils/validate/enter.go
// Description: 参数校验模块，提供基于validator的参数校验、自定义规则及中文错误翻译功能

import (
	"admin_server/internal/utils/timex"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
)

// trans 全局翻译器实例，用于将验证错误信息转换为中文
var trans ut.Translator

func init() {
	uni := ut.New(zh.New())
	trans, _ = uni.GetTranslator("zh")

	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = zh_translations.RegisterDefaultTranslations(v, trans)

	// 优先使用label标签作为字段名展示
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		label := field.Tag.Get("label")
		if label == "" {
			return field.Name
		}
		return label
	})

	// date_time: 2006-01-02 或 2006-01-02 15:04:05
	_ = v.RegisterValidation("date_time", func(fl validator.FieldLevel) bool {
		return timex.Valid(fl.Field().String())
	})
	_ = v.RegisterTranslation("date_time", trans, func(ut ut.Translator) error {
		return ut.Add("date_time", "{0}格式必须为 2006-01-02 或 2006-01-02 15:04:05", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("date_time", fe.Field())
		return t
	})
}

// ValidateError 将validator验证错误转换为中文提示信息
func ValidateError(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	var list []string
	for _, e := range errs {
		list = append(list, e.Translate(trans))
	}
	return strings.Join(list, ";")
}
