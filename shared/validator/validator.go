package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"frontdesk/shared/base64"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

const megabyte = 1 << 20

var validate = newValidate()

var custom = map[string]val.Func{
	"isodate":     isoDate,
	"mimetypes":   mimeTypes,
	"maxfilesize": maxFileSize,
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}

		return name
	})

	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return v
}

// upload describes either a multipart file or a base64 data URL.
func upload(field val.FieldLevel) (contentType string, size int, ok bool) {
	switch v := field.Field().Interface().(type) {
	case multipart.FileHeader:
		return v.Header.Get(constant.RequestHeaderContentType), int(v.Size), true
	case *multipart.FileHeader:
		if v == nil {
			return "", 0, false
		}

		return v.Header.Get(constant.RequestHeaderContentType), int(v.Size), true
	case string:
		return base64.GetContentType(v), base64.DecodedLen(v), true
	default:
		return "", 0, false
	}
}

func mimeTypes(field val.FieldLevel) bool {
	contentType, _, ok := upload(field)
	if !ok || contentType == "" {
		return false
	}

	return slices.Contains(strings.Fields(field.Param()), contentType)
}

// maxFileSize takes its limit in megabytes, fractions allowed.
func maxFileSize(field val.FieldLevel) bool {
	_, size, ok := upload(field)
	if !ok {
		return false
	}

	limit, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	return float64(size) <= limit*megabyte
}

func isoDate(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if value == "" {
		return true
	}

	_, err := timezone.ParseISO(value)

	return err == nil
}

// Validate decodes a JSON body into data and validates the result.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
		}

		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
