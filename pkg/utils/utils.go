package utils

import (
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/breeew/datas-api/pkg/errors"
	"github.com/breeew/datas-api/pkg/i18n"
)

// FieldError describes one rejected input, located by loc (e.g. ["body", "sender"]).
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

var setupValidatorOnce sync.Once

// validation errors are reported with the json (or uri) name of the field
func setupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "uri"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return f.Name
	})
}

// BindJSONWithGin decodes the request body as json into req and validates it.
// The body must hold exactly one json value.
func BindJSONWithGin(c *gin.Context, req any) error {
	setupValidatorOnce.Do(setupValidator)
	body, err := c.GetRawData()
	if err != nil {
		return invalidArgument(c, err, DescribeBindError("body", err))
	}
	if len(body) > 0 {
		if err = json.Unmarshal(body, new(json.RawMessage)); err != nil {
			return invalidArgument(c, err, DescribeBindError("body", err))
		}
	}
	if err = binding.JSON.BindBody(body, req); err != nil {
		return invalidArgument(c, err, DescribeBindError("body", err))
	}
	return nil
}

// BindURIWithGin binds the route params into req and validates them.
func BindURIWithGin(c *gin.Context, req any) error {
	setupValidatorOnce.Do(setupValidator)
	if err := c.ShouldBindUri(req); err != nil {
		fields := DescribeBindError("path", err)
		var numErr *strconv.NumError
		if goerrors.As(err, &numErr) {
			for i := range fields {
				fields[i].Loc = locOf("path", paramOf(c.Params, numErr.Num))
			}
		}
		return invalidArgument(c, err, fields)
	}
	return nil
}

// paramOf returns the key of the first route param holding value.
func paramOf(params gin.Params, value string) string {
	for _, p := range params {
		if p.Value == value {
			return p.Key
		}
	}
	return ""
}

func invalidArgument(c *gin.Context, err error, fields []FieldError) error {
	return errors.New(fmt.Sprintf("Gin.ShouldBind.%s.%s", c.Request.Method, c.FullPath()), i18n.ERROR_INVALIDARGUMENT, err).
		Code(http.StatusUnprocessableEntity).
		Detail(fields)
}

// DescribeBindError turns a gin binding error into per-field errors.
func DescribeBindError(where string, err error) []FieldError {
	var (
		validationErrs validator.ValidationErrors
		typeErr        *json.UnmarshalTypeError
		syntaxErr      *json.SyntaxError
		numErr         *strconv.NumError
	)
	switch {
	case goerrors.As(err, &validationErrs):
		res := make([]FieldError, 0, len(validationErrs))
		for _, fe := range validationErrs {
			res = append(res, describeFieldError(where, fe))
		}
		return res
	case goerrors.As(err, &typeErr):
		return []FieldError{{
			Loc:  locOf(where, typeErr.Field),
			Msg:  "Input should be a valid " + kindName(typeErr.Type),
			Type: kindName(typeErr.Type) + "_type",
		}}
	case goerrors.As(err, &syntaxErr), goerrors.Is(err, io.ErrUnexpectedEOF):
		return []FieldError{{Loc: []string{where}, Msg: "JSON decode error", Type: "json_invalid"}}
	case goerrors.Is(err, io.EOF):
		return []FieldError{{Loc: []string{where}, Msg: "Field required", Type: "missing"}}
	case goerrors.As(err, &numErr):
		return []FieldError{{Loc: []string{where}, Msg: "Input should be a valid integer, unable to parse string as an integer", Type: "int_parsing"}}
	default:
		return []FieldError{{Loc: []string{where}, Msg: err.Error(), Type: "value_error"}}
	}
}

func describeFieldError(where string, fe validator.FieldError) FieldError {
	res := FieldError{Loc: locOf(where, fe.Field())}
	switch fe.Tag() {
	case "required":
		res.Msg, res.Type = "Field required", "missing"
	case "gt":
		res.Msg, res.Type = "Input should be greater than "+fe.Param(), "greater_than"
	default:
		res.Msg, res.Type = fe.Error(), fe.Tag()
	}
	return res
}

func locOf(where, field string) []string {
	if field == "" {
		return []string{where}
	}
	return append([]string{where}, strings.Split(field, ".")...)
}

func kindName(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "int"
	case reflect.Bool:
		return "bool"
	default:
		return t.Kind().String()
	}
}
